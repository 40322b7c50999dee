package guest

import (
	"motionklub/internal/domain"
	"motionklub/internal/views"
)

type EventView struct {
	domain.Event
	CapacityStatus       views.CapacityStatus `json:"capacity_status"`
	CapacityLabel        string               `json:"capacity_label"`
	Bookable             bool                 `json:"bookable"`
	Past                 bool                 `json:"past"`
	EligibleParticipants []domain.Participant `json:"eligible_participants"`
	BookedParticipantIDs []string             `json:"booked_participant_ids"`
}

type ActivityView struct {
	ActivityID       int64           `json:"activity_id"`
	Title            string          `json:"title"`
	ShortDescription string          `json:"short_description"`
	LongDescription  string          `json:"long_description,omitempty"`
	Category         string          `json:"category"`
	Images           []domain.Image  `json:"images,omitempty"`
	Location         domain.Location `json:"location"`
	Events           []EventView     `json:"events"`
}

type ProgramScreen struct {
	Range      domain.DateRange `json:"range"`
	Hotel      domain.Hotel     `json:"hotel"`
	Categories []string         `json:"categories"`
	Total      int              `json:"total"`
	Shown      int              `json:"shown"`
	Activities []ActivityView   `json:"activities"`
}

type MyActivitiesScreen struct {
	BNR      string                  `json:"bnr"`
	Hotel    domain.Hotel            `json:"hotel"`
	Upcoming []domain.BookedActivity `json:"upcoming"`
	Past     []domain.BookedActivity `json:"past"`
}

type ProgramScreenQuery struct {
	Query    string `form:"q" validate:"max=100"`
	Category string `form:"category" validate:"max=50"`
	DateFrom string `form:"date_from" validate:"omitempty,datetime=2006-01-02"`
	DateTo   string `form:"date_to" validate:"omitempty,datetime=2006-01-02"`
}
