//go:build unit

package api_test

import (
	"net/http"
	"testing"

	"workspace-booking/internal/domain/account"
	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/domain/resource"
	"workspace-booking/internal/handler/api"
	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/pkg/ptr"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/tests/common/builder"
	"workspace-booking/tests/common/httptest"
	commandsmock "workspace-booking/tests/mock/commands"
	queriesmock "workspace-booking/tests/mock/queries"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ResourceHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockResourceCommands
	mockQueries  *queriesmock.MockResourceQueries
	mockBookings *queriesmock.MockBookingQueries
	handler      *api.ResourceHandler
	accountID    uuid.UUID
	role         account.Role
}

func (s *ResourceHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockResourceCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockResourceQueries(s.mockCtrl)
	s.mockBookings = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewResourceHandler(s.mockCommands, s.mockQueries, s.mockBookings)
	s.accountID = uuid.New()
	s.role = account.RoleAdmin

	auth := fakeAuth(&s.accountID, &s.role)
	s.router.GET("/resources", auth, s.handler.List)
	s.router.GET("/resources/:id", auth, s.handler.Get)
	s.router.GET("/resources/:id/bookings", auth, s.handler.ListBookings)
	s.router.GET("/resources/:id/availability", auth, s.handler.Availability)
	s.router.POST("/admin/resources", auth, s.handler.Create)
	s.router.PUT("/admin/resources/:id", auth, s.handler.Update)
	s.router.DELETE("/admin/resources/:id", auth, s.handler.Delete)
	s.router.GET("/admin/reports/accepted", auth, s.handler.Report)
}

func (s *ResourceHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestResourceHandlerSuite(t *testing.T) {
	suite.Run(t, new(ResourceHandlerTestSuite))
}

func resourceView(booked ...queries.BookedRange) *queries.ResourceView {
	r := builder.NewResourceBuilder()
	return &queries.ResourceView{
		ID:           r.ID,
		Name:         r.Name,
		Capacity:     int32(r.Capacity),
		Description:  r.Description,
		BookedRanges: booked,
		CreatedAt:    r.CreatedAt,
		UpdatedAt:    r.UpdatedAt,
	}
}

// ================================================================================
// TestList / TestGet
// ================================================================================

func (s *ResourceHandlerTestSuite) TestList() {
	booked := queries.BookedRange{
		BookingID: uuid.New(),
		StartDate: civil.Date{Year: 2025, Month: 4, Day: 1},
		EndDate:   civil.Date{Year: 2025, Month: 4, Day: 30},
	}
	withBooking := resourceView(booked)
	free := resourceView()

	s.mockQueries.EXPECT().List(gomock.Any()).Return([]*queries.ResourceView{withBooking, free}, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources", nil, "bearer-token")

	var body []resdto.ResourceResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 2)
	s.Equal(withBooking.ID.String(), body[0].ID)
	s.Equal([]resdto.BookedRangeResponse{{
		BookingID: booked.BookingID.String(),
		StartDate: "2025-04-01",
		EndDate:   "2025-04-30",
	}}, body[0].BookedRanges)
	s.NotNil(body[1].BookedRanges)
	s.Empty(body[1].BookedRanges)
}

func (s *ResourceHandlerTestSuite) TestGet() {
	view := resourceView()

	s.Run("success", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+view.ID.String(), nil, "bearer-token")

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.Name, body.Name)
		s.Equal(view.CreatedAt.Unix(), body.CreatedAt)
	})

	s.Run("error: 404 when deleted or unknown", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID).Return(nil, queries.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+view.ID.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "resource not found")
	})
}

// ================================================================================
// TestListBookings / TestAvailability
// ================================================================================

func (s *ResourceHandlerTestSuite) TestListBookings() {
	resourceID := uuid.New()
	views := []*queries.BookingView{
		builder.NewBookingBuilder().WithResourceID(resourceID).BuildView(),
	}
	s.mockBookings.EXPECT().ListByResource(gomock.Any(), resourceID).Return(views, nil).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/resources/"+resourceID.String()+"/bookings", nil, "bearer-token")

	var body []resdto.BookingResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 1)
	s.Equal(resourceID.String(), body[0].ResourceID)
}

func (s *ResourceHandlerTestSuite) TestAvailability() {
	resourceID := uuid.New()
	base := "/resources/" + resourceID.String() + "/availability"
	start := civil.Date{Year: 2025, Month: 5, Day: 1}
	end := civil.Date{Year: 2025, Month: 5, Day: 10}

	s.Run("success: free range", func() {
		s.mockBookings.EXPECT().CheckAvailability(gomock.Any(), resourceID, start, end).
			Return(&queries.AvailabilityView{ResourceID: resourceID, StartDate: start, EndDate: end, Available: true}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-05-01&end=2025-05-10", nil, "bearer-token")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.True(body.Available)
		s.Equal("2025-05-01", body.StartDate)
		s.NotNil(body.Conflicts)
	})

	s.Run("success: reports conflicts", func() {
		conflict := queries.BookedRange{BookingID: uuid.New(), StartDate: end, EndDate: end.AddDays(3)}
		s.mockBookings.EXPECT().CheckAvailability(gomock.Any(), resourceID, start, end).
			Return(&queries.AvailabilityView{
				ResourceID: resourceID, StartDate: start, EndDate: end,
				Conflicts: []queries.BookedRange{conflict},
			}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+"?start=2025-05-01&end=2025-05-10", nil, "bearer-token")

		var body resdto.AvailabilityResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Available)
		s.Require().Len(body.Conflicts, 1)
		s.Equal("2025-05-13", body.Conflicts[0].EndDate)
	})

	s.Run("error: 400 on missing or malformed dates", func() {
		for _, q := range []string{"", "?start=2025-05-01", "?start=01-05-2025&end=2025-05-10", "?start=2025-05-01&end=2025-02-30"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, base+q, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "date")
		}
	})
}

// ================================================================================
// Admin routes
// ================================================================================

func (s *ResourceHandlerTestSuite) TestCreate() {
	req := reqdto.CreateResourceRequest{Name: "Hot Desk Zone", Capacity: 12}
	created := builder.NewResourceBuilder().WithName("Hot Desk Zone").WithCapacity(12).BuildDomain()

	s.Run("success: 201", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), req.ToInput()).Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/resources", req, "bearer-token")

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal("Hot Desk Zone", body.Name)
		s.Equal(int32(12), body.Capacity)
	})

	s.Run("error: 409 on duplicate name", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), req.ToInput()).Return(nil, commands.ErrDuplicateResourceName).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/resources", req, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "already exists")
	})

	s.Run("error: 400 on invalid capacity", func() {
		bad := reqdto.CreateResourceRequest{Name: "Broken", Capacity: -1}
		s.mockCommands.EXPECT().Create(gomock.Any(), bad.ToInput()).Return(nil, resource.ErrInvalidCapacity).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/resources", bad, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "capacity")
	})

	s.Run("error: 400 without name", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, "/admin/resources", map[string]any{"capacity": 3}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}

func (s *ResourceHandlerTestSuite) TestUpdate() {
	id := uuid.New()
	updated := builder.NewResourceBuilder().WithID(id).WithCapacity(8).BuildDomain()
	req := reqdto.UpdateResourceRequest{Capacity: ptr.To(8)}

	s.Run("success", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, req.ToInput()).Return(updated, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/resources/"+id.String(), req, "bearer-token")

		var body resdto.ResourceResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(int32(8), body.Capacity)
	})

	s.Run("error: 404", func() {
		s.mockCommands.EXPECT().Update(gomock.Any(), id, req.ToInput()).Return(nil, commands.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, "/admin/resources/"+id.String(), req, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "resource not found")
	})
}

func (s *ResourceHandlerTestSuite) TestDelete() {
	id := uuid.New()

	s.Run("success: 204", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/resources/"+id.String(), nil, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
		s.Empty(rec.Body.String())
	})

	s.Run("error: 404 when already deleted", func() {
		s.mockCommands.EXPECT().Delete(gomock.Any(), id).Return(commands.ErrResourceNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodDelete, "/admin/resources/"+id.String(), nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "resource not found")
	})
}

func (s *ResourceHandlerTestSuite) TestReport() {
	from := civil.Date{Year: 2025, Month: 5, Day: 1}
	to := civil.Date{Year: 2025, Month: 5, Day: 31}
	accepted := builder.NewBookingBuilder().AsAccepted().BuildView()
	report := &queries.ResourceReportView{
		ID:            accepted.ResourceID,
		Name:          "Suite A",
		Capacity:      4,
		AcceptedCount: 1,
		BookedDays:    11,
		RevenueCents:  2500005,
		Bookings:      []*queries.BookingView{accepted},
	}

	s.Run("success: bounded window", func() {
		s.mockQueries.EXPECT().AcceptedReport(gomock.Any(), &from, &to).
			Return([]*queries.ResourceReportView{report}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reports/accepted?start=2025-05-01&end=2025-05-31", nil, "bearer-token")

		var body []*resdto.ResourceReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body, 1)
		s.Equal("Suite A", body[0].Name)
		s.Equal(1, body[0].AcceptedCount)
		s.Equal(11, body[0].BookedDays)
		s.Equal("25000.05", body[0].Revenue)
		s.Equal(int64(2500005), body[0].RevenueCents)
		s.Require().Len(body[0].Bookings, 1)
		s.Equal(accepted.ID.String(), body[0].Bookings[0].ID)
	})

	s.Run("success: no window", func() {
		s.mockQueries.EXPECT().AcceptedReport(gomock.Any(), (*civil.Date)(nil), (*civil.Date)(nil)).
			Return([]*queries.ResourceReportView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reports/accepted", nil, "bearer-token")

		var body []*resdto.ResourceReportResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body)
	})

	s.Run("success: start only", func() {
		s.mockQueries.EXPECT().AcceptedReport(gomock.Any(), &from, (*civil.Date)(nil)).
			Return([]*queries.ResourceReportView{}, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reports/accepted?start=2025-05-01", nil, "bearer-token")

		s.Equal(http.StatusOK, rec.Code)
	})

	s.Run("error: 400 on malformed date", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reports/accepted?end=31-05-2025", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid end date")
	})

	s.Run("error: 400 when start is after end", func() {
		s.mockQueries.EXPECT().AcceptedReport(gomock.Any(), &to, &from).
			Return(nil, booking.ErrInvalidDateRange).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/reports/accepted?start=2025-05-31&end=2025-05-01", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "start date must not be after end date")
	})
}
