package catalog

import (
	"context"
	"errors"
	"net/http"
	"strconv"

	"motionklub/internal/domain"
	"motionklub/internal/middleware"
	"motionklub/internal/pkg/response"
	"motionklub/internal/pkg/validator"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// RegisterGuestRoutes expects a group restricted to live guest sessions.
func (h *Handler) RegisterGuestRoutes(guest *gin.RouterGroup) {
	guest.GET("/program", h.GetProgram)
	bookings := guest.Group("/bookings")
	{
		bookings.POST("", h.Book)
		bookings.GET("/me", h.GetMyBookings)
		bookings.POST("/:id/cancel", h.Cancel)
	}
}

// WriteError maps catalog errors onto the response envelope.
func WriteError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, context.Canceled):
		// client went away; nothing useful to send
		c.Abort()
	case errors.Is(err, ErrInvalidRange),
		errors.Is(err, ErrNoParticipants),
		errors.Is(err, ErrInvalidParticipant),
		errors.Is(err, ErrMissingReservation),
		errors.Is(err, ErrParticipantNotFound):
		response.Error(c, http.StatusBadRequest, response.CodeValidation, err.Error())
	case errors.Is(err, ErrHotelNotFound),
		errors.Is(err, ErrEventNotFound),
		errors.Is(err, ErrReservationNotFound),
		errors.Is(err, ErrBookingNotFound):
		response.Error(c, http.StatusNotFound, response.CodeNotFound, err.Error())
	case errors.Is(err, ErrCapacityExceeded):
		response.Error(c, http.StatusConflict, response.CodeCapacityExceeded, err.Error())
	case errors.Is(err, ErrDuplicateBooking):
		response.Error(c, http.StatusConflict, response.CodeDuplicateBooking, err.Error())
	case errors.Is(err, ErrAgeIneligible):
		response.Error(c, http.StatusUnprocessableEntity, response.CodeAgeNotEligible, err.Error())
	default:
		_ = c.Error(err)
		response.Error(c, http.StatusInternalServerError, response.CodeInternal, "Something went wrong")
	}
}

// GetProgram returns the program for the guest's stay. date_from/date_to
// override the stay period.
func (h *Handler) GetProgram(c *gin.Context) {
	sess, ok := middleware.GuestSession(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Guest session required")
		return
	}

	var q ProgramQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid date filter")
		return
	}
	if errs := validator.Validate(q); errs != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, response.CodeValidation, "Invalid date filter", errs)
		return
	}
	if q.DateFrom == "" && q.DateTo == "" {
		q.DateFrom, q.DateTo = sess.StayPeriod.DateFrom, sess.StayPeriod.DateTo
	}

	program, err := h.service.GetProgram(c.Request.Context(), q.DateFrom, q.DateTo, sess.Hotel.HotelID)
	if err != nil {
		WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, program)
}

// Book books the selected members of the guest's party and returns the
// event with fresh counters.
func (h *Handler) Book(c *gin.Context) {
	sess, ok := middleware.GuestSession(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Guest session required")
		return
	}

	var req BookRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "event_id and participant_ids are required")
		return
	}

	party := make([]domain.Participant, 0, len(req.ParticipantIDs))
	for _, id := range req.ParticipantIDs {
		p, ok := sess.Participant(id)
		if !ok {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Unknown participant "+id)
			return
		}
		party = append(party, p)
	}

	ctx := c.Request.Context()
	result, err := h.service.Book(ctx, sess.BNR, req.EventID, party)
	if err != nil {
		WriteError(c, err)
		return
	}

	_, event, err := h.service.GetEvent(ctx, req.EventID)
	if err != nil {
		WriteError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{
		"status":      result.Status,
		"booking_ids": result.BookingIDs,
		"event":       event,
	})
}

func (h *Handler) GetMyBookings(c *gin.Context) {
	sess, ok := middleware.GuestSession(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Guest session required")
		return
	}

	bookings, err := h.service.GetUserBookings(c.Request.Context(), sess.BNR)
	if err != nil {
		WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, bookings)
}

func (h *Handler) Cancel(c *gin.Context) {
	sess, ok := middleware.GuestSession(c)
	if !ok {
		response.Error(c, http.StatusUnauthorized, response.CodeUnauthorized, "Guest session required")
		return
	}

	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid booking id")
		return
	}
	var req CancelRequest
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Error(c, http.StatusBadRequest, response.CodeValidation, "Invalid request body")
			return
		}
	}

	ctx := c.Request.Context()
	result, err := h.service.Cancel(ctx, id, sess.BNR, req.EventID, req.ParticipantID)
	if err != nil {
		WriteError(c, err)
		return
	}

	bookings, err := h.service.GetUserBookings(ctx, sess.BNR)
	if err != nil {
		WriteError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{
		"status":   result.Status,
		"bookings": bookings,
	})
}
