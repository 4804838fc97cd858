package api

import (
	"net/http"

	reqdto "workspace-booking/internal/handler/dto/request"
	resdto "workspace-booking/internal/handler/dto/response"
	"workspace-booking/internal/handler/httperr"
	"workspace-booking/internal/pkg/errs"
	"workspace-booking/internal/usecase/commands"
	"workspace-booking/internal/usecase/queries"

	"cloud.google.com/go/civil"
	"github.com/gin-gonic/gin"
)

var errInvalidDateParam = errs.New("invalid date parameter")

type ResourceHandler struct {
	cmds     commands.ResourceCommands
	q        queries.ResourceQueries
	bookings queries.BookingQueries
}

func NewResourceHandler(cmds commands.ResourceCommands, q queries.ResourceQueries, bookings queries.BookingQueries) *ResourceHandler {
	return &ResourceHandler{cmds: cmds, q: q, bookings: bookings}
}

// @Summary List resources
// @Description Live resources with the date ranges of their accepted bookings
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Success 200 {array} resdto.ResourceResponse
// @Router /api/resources [get]
func (h *ResourceHandler) List(c *gin.Context) {
	views, err := h.q.List(c.Request.Context())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromResourceViews(views)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Get resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id} [get]
func (h *ResourceHandler) Get(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromResourceView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List bookings of a resource
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 200 {array} resdto.BookingResponse
// @Failure 400 {object} httperr.Response
// @Router /api/resources/{id}/bookings [get]
func (h *ResourceHandler) ListBookings(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	views, err := h.bookings.ListByResource(c.Request.Context(), id)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromBookingViews(views))
}

// @Summary Check availability
// @Description Reports accepted bookings that share a day with [start, end]
// @Tags resources
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param start query string true "First day (YYYY-MM-DD)"
// @Param end query string true "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/resources/{id}/availability [get]
func (h *ResourceHandler) Availability(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	start, ok := parseDateQuery(c, "start")
	if !ok {
		return
	}
	end, ok := parseDateQuery(c, "end")
	if !ok {
		return
	}

	view, err := h.bookings.CheckAvailability(c.Request.Context(), id, start, end)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	res, err := resdto.FromAvailabilityView(view)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary Accepted bookings report
// @Description Live resources with their accepted bookings, booked days and revenue. start and end bound the booking start date and may be given alone.
// @Tags admin
// @Produce json
// @Security BearerAuth
// @Param start query string false "Earliest start date (YYYY-MM-DD)"
// @Param end query string false "Latest start date (YYYY-MM-DD)"
// @Success 200 {array} resdto.ResourceReportResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Router /api/admin/reports/accepted [get]
func (h *ResourceHandler) Report(c *gin.Context) {
	from, ok := parseOptionalDateQuery(c, "start")
	if !ok {
		return
	}
	to, ok := parseOptionalDateQuery(c, "end")
	if !ok {
		return
	}

	views, err := h.q.AcceptedReport(c.Request.Context(), from, to)
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResourceReports(views))
}

// @Summary Create resource
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.CreateResourceRequest true "Resource"
// @Success 201 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/resources [post]
func (h *ResourceHandler) Create(c *gin.Context) {
	var req reqdto.CreateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Create(c.Request.Context(), req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromResource(res))
}

// @Summary Update resource
// @Tags admin
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Param request body reqdto.UpdateResourceRequest true "Fields to change"
// @Success 200 {object} resdto.ResourceResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/admin/resources/{id} [put]
func (h *ResourceHandler) Update(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	var req reqdto.UpdateResourceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
		return
	}
	res, err := h.cmds.Update(c.Request.Context(), id, req.ToInput())
	if err != nil {
		httperr.Abort(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromResource(res))
}

// @Summary Delete resource
// @Description Soft delete; existing bookings keep their reference
// @Tags admin
// @Security BearerAuth
// @Param id path string true "Resource ID"
// @Success 204
// @Failure 404 {object} httperr.Response
// @Router /api/admin/resources/{id} [delete]
func (h *ResourceHandler) Delete(c *gin.Context) {
	id, ok := parseID(c, "id")
	if !ok {
		return
	}
	if err := h.cmds.Delete(c.Request.Context(), id); err != nil {
		httperr.Abort(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func parseDateQuery(c *gin.Context, key string) (civil.Date, bool) {
	d, err := civil.ParseDate(c.Query(key))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, errs.Wrap(err, errInvalidDateParam.Error()), "Invalid "+key+" date", nil)
		return civil.Date{}, false
	}
	return d, true
}

func parseOptionalDateQuery(c *gin.Context, key string) (*civil.Date, bool) {
	if c.Query(key) == "" {
		return nil, true
	}
	d, ok := parseDateQuery(c, key)
	if !ok {
		return nil, false
	}
	return &d, true
}
