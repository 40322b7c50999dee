package domain

type ParticipantType string

const (
	ParticipantAdult  ParticipantType = "Adult"
	ParticipantChild  ParticipantType = "Child"
	ParticipantInfant ParticipantType = "Infant"
)

func (t ParticipantType) Valid() bool {
	switch t {
	case ParticipantAdult, ParticipantChild, ParticipantInfant:
		return true
	}
	return false
}

type Participant struct {
	ID          string          `json:"id" validate:"required"`
	Type        ParticipantType `json:"type" validate:"required,oneof=Adult Child Infant"`
	DisplayName string          `json:"display_name" validate:"required"`
	Age         int             `json:"age" validate:"gte=0,lte=120"`
}

// Reservation is a guest's stay identified by its booking reference (BNR).
type Reservation struct {
	BNR          string        `json:"bnr"`
	Email        string        `json:"email,omitempty"`
	Hotel        Hotel         `json:"hotel"`
	StayPeriod   DateRange     `json:"stay_period"`
	Participants []Participant `json:"participants"`
}

// Participant looks up a member of the travel party by id.
func (r Reservation) Participant(id string) (Participant, bool) {
	for _, p := range r.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}
