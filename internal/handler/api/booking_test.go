//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"strings"
	"testing"

	"workspace-booking/internal/domain/account"
	"workspace-booking/internal/domain/booking"
	"workspace-booking/internal/handler/api"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/handler/middleware"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"
	"workspace-booking/internal/usecase/shared"
	"workspace-booking/tests/common/builder"
	"workspace-booking/tests/common/httptest"
	"workspace-booking/tests/common/testutil"
	commandsmock "workspace-booking/tests/mock/commands"
	queriesmock "workspace-booking/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type BookingHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockBookingCommands
	mockQueries  *queriesmock.MockBookingQueries
	handler      *api.BookingHandler
	accountID    uuid.UUID
	role         account.Role
}

// fakeAuth stands in for RequireAuth: any bearer header authenticates as the
// suite's account.
func fakeAuth(id *uuid.UUID, role *account.Role) gin.HandlerFunc {
	return func(c *gin.Context) {
		if c.GetHeader("Authorization") == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": gin.H{"message": "Unauthorized"}})
			return
		}
		middleware.SetAuthContext(c, *id, *role)
		c.Next()
	}
}

func (s *BookingHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockBookingCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockBookingQueries(s.mockCtrl)
	s.handler = api.NewBookingHandler(s.mockCommands, s.mockQueries)
	s.accountID = uuid.New()
	s.role = account.RoleMember

	auth := fakeAuth(&s.accountID, &s.role)
	s.router.POST("/bookings", auth, s.handler.Create)
	s.router.GET("/bookings", auth, s.handler.List)
	s.router.GET("/bookings/:id", auth, s.handler.Get)
	s.router.GET("/extension-options", s.handler.ExtensionOptions)
	s.router.GET("/admin/bookings", auth, s.handler.ListAll)
	s.router.PUT("/admin/bookings/:id/status", auth, s.handler.SetStatus)
	s.router.POST("/admin/bookings/:id/extend", auth, s.handler.Extend)
	s.router.PUT("/admin/bookings/:id/associations/:accountId", auth, s.handler.AttachDetails)
	s.router.PUT("/admin/bookings/:id/contract", auth, s.handler.AttachContract)
}

func (s *BookingHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestBookingHandlerSuite(t *testing.T) {
	suite.Run(t, new(BookingHandlerTestSuite))
}

type testCaseBooking struct {
	name       string
	mutate     func(m map[string]any)
	expectCode int
}

// ================================================================================
// TestCreate
// ================================================================================

func (s *BookingHandlerTestSuite) TestCreate() {
	url := "/bookings"

	b := builder.NewBookingBuilder()
	reqBody := b.BuildCreateRequestDTO()
	created := b.MustBuildDomain()

	s.Run("success: 201 with the pending booking", func() {
		s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.accountID, reqBody.ToInput()).
			Return(created, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.Equal(created.ID().String(), body.ID)
		s.Equal("pending", body.Status)
		s.Equal("2025-03-10", body.StartDate)
		s.Equal("2025-03-20", body.EndDate)
		s.Equal("25000.00", body.Price)
	})

	s.Run("error: 400 on binding errors", func() {
		cases := []testCaseBooking{
			{name: "missing resource_id", mutate: testutil.Field("resource_id", nil), expectCode: http.StatusBadRequest},
			{name: "missing full_name", mutate: testutil.Field("full_name", nil), expectCode: http.StatusBadRequest},
			{name: "missing telephone", mutate: testutil.Field("telephone", nil), expectCode: http.StatusBadRequest},
			{name: "missing email", mutate: testutil.Field("email", nil), expectCode: http.StatusBadRequest},
			{name: "full_name too long", mutate: testutil.Field("full_name", strings.Repeat("a", 256)), expectCode: http.StatusBadRequest},
			{name: "negative price", mutate: testutil.Field("price_cents", -1), expectCode: http.StatusBadRequest},
			{name: "zero price", mutate: testutil.Field("price_cents", 0), expectCode: http.StatusBadRequest},
			{name: "missing price", mutate: testutil.Field("price_cents", nil), expectCode: http.StatusBadRequest},
			{name: "malformed date", mutate: testutil.Field("start_date", "10/03/2025"), expectCode: http.StatusBadRequest},
			{name: "malformed resource id", mutate: testutil.Field("resource_id", "nope"), expectCode: http.StatusBadRequest},
		}
		for _, tc := range cases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectCode, "")
			})
		}
	})

	s.Run("error: 401 when unauthenticated", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusUnauthorized, "Unauthorized")
	})

	s.Run("error: maps usecase errors to statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "quota exceeded",
				commandsError:  booking.NewQuota(2).Check(2),
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "You have already reached the maximum of 2 bookings.",
			},
			{
				name:           "resource not found",
				commandsError:  commands.ErrResourceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "resource not found",
			},
			{
				name:           "inverted range",
				commandsError:  booking.ErrInvalidDateRange,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "start date must not be after end date",
			},
			{
				name:           "price too large",
				commandsError:  booking.ErrPriceTooLarge,
				expectedStatus: http.StatusBadRequest,
				expectedMsg:    "price is too large",
			},
			{
				name:           "unexpected error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().CreateBooking(gomock.Any(), s.accountID, gomock.Any()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

// ================================================================================
// TestList
// ================================================================================

func (s *BookingHandlerTestSuite) TestList() {
	views := []*queries.BookingView{
		builder.NewBookingBuilder().BuildView(),
		builder.NewBookingBuilder().BuildView(),
	}

	s.Run("success: first page with next cursor", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.accountID, (*queries.Cursor)(nil), 0).
			Return(views, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 2)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: passes cursor and limit through", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.accountID, &queries.Cursor{After: "abc"}, 5).
			Return(views[:1], nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=abc&limit=5", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Len(body.Items, 1)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on invalid limit", func() {
		for _, q := range []string{"limit=0", "limit=-3", "limit=ten"} {
			rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?"+q, nil, "bearer-token")
			httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
		}
	})

	s.Run("error: 400 on malformed cursor", func() {
		s.mockQueries.EXPECT().ListByRequester(gomock.Any(), s.accountID, gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings?after=%25%25", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

// ================================================================================
// TestListAll
// ================================================================================

func (s *BookingHandlerTestSuite) TestListAll() {
	view := builder.NewBookingBuilder().BuildView()
	view.ResourceName = "Board Room"
	view.Associations = []*queries.AssociationView{{
		AccountID:    uuid.New(),
		AccountName:  "Kasun",
		AccountEmail: "kasun@example.com",
	}}

	s.Run("success: renders resource name and accounts", func() {
		next := &queries.Cursor{After: "next-page"}
		s.mockQueries.EXPECT().ListAll(gomock.Any(), (*queries.Cursor)(nil), 0).
			Return([]*queries.BookingView{view}, next, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().Len(body.Items, 1)
		s.Equal("Board Room", body.Items[0].ResourceName)
		s.Require().Len(body.Items[0].Associations, 1)
		s.Equal("Kasun", body.Items[0].Associations[0].AccountName)
		s.Equal("kasun@example.com", body.Items[0].Associations[0].AccountEmail)
		s.Require().NotNil(body.NextCursor)
		s.Equal("next-page", *body.NextCursor)
	})

	s.Run("success: passes cursor and limit through", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), &queries.Cursor{After: "abc"}, 50).
			Return([]*queries.BookingView{}, nil, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?after=abc&limit=50", nil, "bearer-token")

		var body resdto.BookingListResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Empty(body.Items)
		s.Nil(body.NextCursor)
	})

	s.Run("error: 400 on invalid limit", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?limit=x", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid limit")
	})

	s.Run("error: 400 on malformed cursor", func() {
		s.mockQueries.EXPECT().ListAll(gomock.Any(), gomock.Any(), 0).
			Return(nil, nil, queries.ErrInvalidCursor).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/admin/bookings?after=zz", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid cursor")
	})
}

// ================================================================================
// TestGet
// ================================================================================

func (s *BookingHandlerTestSuite) TestGet() {
	view := builder.NewBookingBuilder().BuildView()
	url := "/bookings/" + view.ID.String()

	s.Run("success: passes the caller as actor", func() {
		s.role = account.RoleAdmin
		defer func() { s.role = account.RoleMember }()
		actor := shared.Actor{ID: s.accountID, Role: account.RoleAdmin}
		s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, actor).Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal(view.ID.String(), body.ID)
		s.Equal(view.Email, body.Email)
	})

	s.Run("error: 400 on malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/bookings/not-a-uuid", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid id")
	})

	s.Run("error: maps query errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
		}{
			{name: "not associated", err: queries.ErrBookingAccess, status: http.StatusForbidden},
			{name: "not found", err: queries.ErrBookingNotFound, status: http.StatusNotFound},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockQueries.EXPECT().GetByID(gomock.Any(), view.ID, gomock.Any()).Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.err.Error())
			})
		}
	})
}

// ================================================================================
// TestExtensionOptions
// ================================================================================

func (s *BookingHandlerTestSuite) TestExtensionOptions() {
	s.mockCommands.EXPECT().ExtensionOptions().Return(booking.Options()).Times(1)

	rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, "/extension-options", nil, "")

	var body []resdto.ExtensionOptionResponse
	httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
	s.Require().Len(body, 5)
	s.Equal(resdto.ExtensionOptionResponse{Value: "daily", Label: "+1 Day", Days: 1}, body[0])
	s.Equal(resdto.ExtensionOptionResponse{Value: "yearly", Label: "+1 Year", Days: 365}, body[4])
}

// ================================================================================
// TestSetStatus
// ================================================================================

func (s *BookingHandlerTestSuite) TestSetStatus() {
	accepted := builder.NewBookingBuilder().AsAccepted().MustBuildDomain()
	url := "/admin/bookings/" + accepted.ID().String() + "/status"

	s.Run("success: returns the updated booking", func() {
		s.mockCommands.EXPECT().SetStatus(gomock.Any(), accepted.ID(), "accepted").Return(accepted, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "accepted"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("accepted", body.Status)
	})

	s.Run("error: 400 without status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})

	s.Run("error: maps command errors", func() {
		testCases := []struct {
			name   string
			err    error
			status int
			msg    string
		}{
			{
				name:   "dates taken",
				err:    commands.ErrApprovalConflict,
				status: http.StatusConflict,
				msg:    "Booking cannot be approved because the selected date range is already reserved.",
			},
			{name: "not pending", err: booking.ErrInvalidTransition, status: http.StatusConflict, msg: "transition is not allowed"},
			{name: "unknown status", err: booking.ErrInvalidStatus, status: http.StatusBadRequest, msg: "invalid booking status"},
			{name: "unknown booking", err: commands.ErrBookingNotFound, status: http.StatusNotFound, msg: "booking not found"},
		}
		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().SetStatus(gomock.Any(), accepted.ID(), "accepted").Return(nil, tc.err).Times(1)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{"status": "accepted"}, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.status, tc.msg)
			})
		}
	})
}

// ================================================================================
// TestExtend
// ================================================================================

func (s *BookingHandlerTestSuite) TestExtend() {
	b := builder.NewBookingBuilder().AsAccepted()
	extended := b.WithPeriod(b.Start, b.End.AddDays(7)).MustBuildDomain()
	url := "/admin/bookings/" + extended.ID().String() + "/extend"

	s.Run("success: returns the new end date", func() {
		s.mockCommands.EXPECT().ExtendBooking(gomock.Any(), extended.ID(), "weekly").Return(extended, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"duration": "weekly"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Equal("2025-03-27", body.EndDate)
	})

	s.Run("error: 409 when the extension overlaps", func() {
		s.mockCommands.EXPECT().ExtendBooking(gomock.Any(), extended.ID(), "monthly").
			Return(nil, commands.ErrExtensionUnavailable).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"duration": "monthly"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusConflict, "The extension period is not available.")
	})

	s.Run("error: 400 on unknown tag", func() {
		s.mockCommands.EXPECT().ExtendBooking(gomock.Any(), extended.ID(), "fortnightly").
			Return(nil, booking.ErrUnknownDurationTag).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, map[string]any{"duration": "fortnightly"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "unknown extension duration")
	})
}

// ================================================================================
// TestAttachDetails
// ================================================================================

func (s *BookingHandlerTestSuite) TestAttachDetails() {
	bookingID := uuid.New()
	accountID := uuid.New()
	url := "/admin/bookings/" + bookingID.String() + "/associations/" + accountID.String()
	nic := "199012345678"
	reqBody := map[string]any{"nic_number": nic}

	expectedInput := commands.AttachDetailsInput{BookingID: bookingID, AccountID: accountID, NICNumber: &nic}

	s.Run("success: 201 when the association is new", func() {
		s.mockCommands.EXPECT().AttachDetails(gomock.Any(), expectedInput).Return(true, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.AttachDetailsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &body)
		s.True(body.Created)
		s.Equal(accountID.String(), body.AccountID)
	})

	s.Run("success: 200 when the association is updated", func() {
		s.mockCommands.EXPECT().AttachDetails(gomock.Any(), expectedInput).Return(false, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")

		var body resdto.AttachDetailsResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.False(body.Created)
	})

	s.Run("error: 404 for unknown account", func() {
		s.mockCommands.EXPECT().AttachDetails(gomock.Any(), expectedInput).Return(false, commands.ErrAccountNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "account not found")
	})

	s.Run("error: 400 on malformed account id", func() {
		bad := "/admin/bookings/" + bookingID.String() + "/associations/xyz"
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, bad, reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid accountId")
	})
}

// ================================================================================
// TestAttachContract
// ================================================================================

func (s *BookingHandlerTestSuite) TestAttachContract() {
	withContract := builder.NewBookingBuilder().AsAccepted().WithContractRef("CN-2025-0042").MustBuildDomain()
	url := "/admin/bookings/" + withContract.ID().String() + "/contract"

	s.Run("success: returns the reference", func() {
		s.mockCommands.EXPECT().AttachContract(gomock.Any(), withContract.ID(), "CN-2025-0042").
			Return(withContract, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url,
			map[string]any{"contract_reference": "CN-2025-0042"}, "bearer-token")

		var body resdto.BookingResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &body)
		s.Require().NotNil(body.ContractReference)
		s.Equal("CN-2025-0042", *body.ContractReference)
	})

	s.Run("error: 400 without reference", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPut, url, map[string]any{}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid request")
	})
}
