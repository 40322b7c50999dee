package animator

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

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

// RegisterRoutes mounts the staff screens under /animator. The group must
// already be restricted to animator sessions.
func (h *Handler) RegisterRoutes(protected *gin.RouterGroup) {
	animator := protected.Group("/animator")
	{
		animator.GET("/dashboard", h.Dashboard)
		animator.GET("/registrations", h.Registrations)
		animator.GET("/registrations/export", h.ExportRegistrations)
		animator.DELETE("/registrations/:id", h.RemoveRegistration)
		animator.GET("/reservations/:bnr", h.Reservation)
		animator.POST("/reservations/:bnr/registrations", h.AddRegistrations)
		animator.GET("/reservations/:bnr/registrations", h.ReservationRegistrations)
	}
}

func (h *Handler) Dashboard(c *gin.Context) {
	sess, ok := middleware.AnimatorSession(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Animator session required")
		return
	}

	now := h.catalog.Now()
	stats, err := h.catalog.Dashboard(c.Request.Context(), now)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, DashboardScreen{
		Animator: sess,
		Today:    now.Day(),
		Stats:    stats,
	})
}

func (h *Handler) Registrations(c *gin.Context) {
	q, ok := bindRegistrationsQuery(c)
	if !ok {
		return
	}

	ctx := c.Request.Context()
	res, err := h.catalog.GetAnimatorRegistrations(ctx, q.DateFrom, q.DateTo, q.ActivityID)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	program, err := h.catalog.GetProgram(ctx, "", "", "")
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, BuildRegistrationsScreen(res, program.Activities, q.Query, h.catalog.Now()))
}

func (h *Handler) ExportRegistrations(c *gin.Context) {
	q, ok := bindRegistrationsQuery(c)
	if !ok {
		return
	}

	res, err := h.catalog.GetAnimatorRegistrations(c.Request.Context(), q.DateFrom, q.DateTo, q.ActivityID)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	regs := views.FilterRegistrations(res.Registrations, views.RegistrationFilter{Query: q.Query})

	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", exportFilename(q)))
	c.Status(http.StatusOK)
	if err := views.WriteRegistrationsCSV(c.Writer, regs); err != nil {
		_ = c.Error(err)
	}
}

func exportFilename(q RegistrationsQuery) string {
	switch {
	case q.DateFrom != "" && q.DateTo != "":
		return fmt.Sprintf("registrations_%s_%s.csv", q.DateFrom, q.DateTo)
	case q.DateFrom != "":
		return fmt.Sprintf("registrations_from_%s.csv", q.DateFrom)
	case q.DateTo != "":
		return fmt.Sprintf("registrations_until_%s.csv", q.DateTo)
	}
	return "registrations.csv"
}

func bindRegistrationsQuery(c *gin.Context) (RegistrationsQuery, bool) {
	var q RegistrationsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid filter")
		return q, false
	}
	if errs := validator.Validate(q); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid filter", errs)
		return q, false
	}
	return q, true
}

// Reservation backs the add-registration search. An unknown BNR is a 404
// with an empty data payload so the screen can render "no results".
func (h *Handler) Reservation(c *gin.Context) {
	screen, err := h.reservationScreen(c, c.Param("bnr"))
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, screen)
}

func writeError(c *gin.Context, err error) {
	if errors.Is(err, catalog.ErrReservationNotFound) {
		response.ErrorWithData(c, http.StatusNotFound, response.CodeNotFound, "Reservation not found", gin.H{})
		return
	}
	catalog.WriteError(c, err)
}

func (h *Handler) reservationScreen(c *gin.Context, bnr string) (*ReservationScreen, error) {
	ctx := c.Request.Context()
	res, err := h.catalog.FindReservation(ctx, bnr)
	if err != nil {
		return nil, err
	}
	program, err := h.catalog.GetProgram(ctx, res.StayPeriod.DateFrom, res.StayPeriod.DateTo, res.Hotel.HotelID)
	if err != nil {
		return nil, err
	}
	regs, err := h.catalog.GetReservationRegistrations(ctx, res.BNR)
	if err != nil {
		return nil, err
	}
	screen := BuildReservationScreen(res, program, regs, h.catalog.Now())
	return &screen, nil
}

func (h *Handler) AddRegistrations(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Selections) == 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "selections are required")
		return
	}

	bnr := c.Param("bnr")
	result, err := h.catalog.Register(c.Request.Context(), bnr, req.Selections)
	if err != nil {
		writeError(c, err)
		return
	}

	screen, err := h.reservationScreen(c, bnr)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"status":      result.Status,
		"booking_ids": result.BookingIDs,
		"reservation": screen,
	})
}

// ReservationRegistrations backs the remove-registration search; unknown
// references yield an empty list rather than an error.
func (h *Handler) ReservationRegistrations(c *gin.Context) {
	bnr := c.Param("bnr")
	regs, err := h.catalog.GetReservationRegistrations(c.Request.Context(), bnr)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, BuildReservationRegistrationsScreen(bnr, regs, h.catalog.Now()))
}

func (h *Handler) RemoveRegistration(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid booking id")
		return
	}

	result, err := h.catalog.CancelRegistration(c.Request.Context(), id)
	if err != nil {
		catalog.WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, result)
}
