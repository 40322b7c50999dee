package animator

import (
	"motionklub/internal/domain"
	"motionklub/internal/modules/catalog"
	"motionklub/internal/views"
)

type DashboardScreen struct {
	Animator *domain.AnimatorSession `json:"animator"`
	Today    string                  `json:"today"`
	Stats    *catalog.DashboardStats `json:"stats"`
}

type ActivityOption struct {
	ActivityID int64  `json:"activity_id"`
	Title      string `json:"title"`
}

type RegistrationsScreen struct {
	Range      domain.DateRange   `json:"range"`
	Total      int                `json:"total"`
	Shown      int                `json:"shown"`
	Groups     []views.HotelGroup `json:"groups"`
	Activities []ActivityOption   `json:"activities"`
}

type ParticipantOption struct {
	domain.Participant
	Eligible bool `json:"eligible"`
	Booked   bool `json:"booked"`
}

type ReservationEvent struct {
	ActivityID     int64                `json:"activity_id"`
	ActivityTitle  string               `json:"activity_title"`
	Category       string               `json:"category"`
	Location       domain.Location      `json:"location"`
	Event          domain.Event         `json:"event"`
	CapacityStatus views.CapacityStatus `json:"capacity_status"`
	Past           bool                 `json:"past"`
	Participants   []ParticipantOption  `json:"participants"`
}

type ReservationScreen struct {
	Reservation *domain.Reservation `json:"reservation"`
	Events      []ReservationEvent  `json:"events"`
}

type ReservationRegistrationsScreen struct {
	BNR   string            `json:"bnr"`
	Total int               `json:"total"`
	Slots []views.SlotGroup `json:"slots"`
}

type RegistrationsQuery struct {
	DateFrom   string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo     string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
	ActivityID int64  `form:"activity_id" validate:"gte=0"`
	Query      string `form:"q" validate:"max=100"`
}

// RegisterRequest maps event ids to the participant ids to register.
type RegisterRequest struct {
	Selections map[int64][]string `json:"selections" binding:"required"`
}
