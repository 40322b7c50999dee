package domain

type Role string

const (
	RoleGuest    Role = "guest"
	RoleAnimator Role = "animator"
)

// Session is either a *GuestSession or an *AnimatorSession.
type Session interface {
	Role() Role
	isSession()
}

type GuestSession struct {
	BNR          string        `json:"bnr"`
	Email        string        `json:"email"`
	Hotel        Hotel         `json:"hotel"`
	StayPeriod   DateRange     `json:"stay_period"`
	Participants []Participant `json:"participants"`
}

func (*GuestSession) Role() Role { return RoleGuest }
func (*GuestSession) isSession() {}

// Participant looks up a member of the guest's travel party.
func (s *GuestSession) Participant(id string) (Participant, bool) {
	for _, p := range s.Participants {
		if p.ID == id {
			return p, true
		}
	}
	return Participant{}, false
}

type AnimatorSession struct {
	AnimatorID string `json:"animator_id"`
	Hotel      Hotel  `json:"hotel"`
	RoleTag    Role   `json:"role"`
}

func (*AnimatorSession) Role() Role { return RoleAnimator }
func (*AnimatorSession) isSession() {}
