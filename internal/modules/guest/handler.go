package guest

import (
	"net/http"

	"motionklub/internal/domain"
	"motionklub/internal/middleware"
	"motionklub/internal/modules/catalog"
	"motionklub/internal/pkg/response"
	"motionklub/internal/pkg/validator"
	"motionklub/internal/views"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	catalog Catalog
}

func NewHandler(catalog Catalog) *Handler {
	return &Handler{catalog: catalog}
}

// RegisterRoutes expects a group restricted to live guest sessions.
func (h *Handler) RegisterRoutes(guest *gin.RouterGroup) {
	screens := guest.Group("/screens")
	{
		screens.GET("/program", h.ProgramScreen)
		screens.GET("/my-activities", h.MyActivitiesScreen)
	}
}

func (h *Handler) ProgramScreen(c *gin.Context) {
	sess, ok := middleware.GuestSession(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Guest session required")
		return
	}

	var q ProgramScreenQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid filter")
		return
	}
	if errs := validator.Validate(q); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid filter", errs)
		return
	}
	rng := sess.StayPeriod
	if q.DateFrom != "" || q.DateTo != "" {
		rng = domain.DateRange{DateFrom: q.DateFrom, DateTo: q.DateTo}
	}

	ctx := c.Request.Context()
	program, err := h.catalog.GetProgram(ctx, rng.DateFrom, rng.DateTo, sess.Hotel.HotelID)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	bookings, err := h.catalog.GetUserBookings(ctx, sess.BNR)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}

	filter := views.ActivityFilter{Query: q.Query, Category: q.Category}
	response.Success(c, http.StatusOK, BuildProgramScreen(program, bookings, sess.Participants, filter, h.catalog.Now()))
}

func (h *Handler) MyActivitiesScreen(c *gin.Context) {
	sess, ok := middleware.GuestSession(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Guest session required")
		return
	}

	bookings, err := h.catalog.GetUserBookings(c.Request.Context(), sess.BNR)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, BuildMyActivitiesScreen(bookings, h.catalog.Now()))
}
