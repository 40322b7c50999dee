package domain

type Capacity struct {
	Max       int `json:"max"`
	Confirmed int `json:"confirmed"`
	Available int `json:"available"`
}

// Normalize recomputes Available from Max and Confirmed, clamped at zero.
func (c Capacity) Normalize() Capacity {
	c.Available = c.Max - c.Confirmed
	if c.Available < 0 {
		c.Available = 0
	}
	return c
}

type AgeProfile struct {
	Min int `json:"min"`
	Max int `json:"max"`
}

// Allows reports whether age lies inside the inclusive range.
func (a AgeProfile) Allows(age int) bool {
	return age >= a.Min && age <= a.Max
}

type Location struct {
	Label string `json:"label"`
}

type Image struct {
	URL string `json:"url"`
}

type Event struct {
	EventID    int64      `json:"event_id"`
	ActivityID int64      `json:"-"`
	StartAt    LocalTime  `json:"start_at"`
	EndAt      LocalTime  `json:"end_at"`
	Capacity   Capacity   `json:"capacity"`
	AgeProfile AgeProfile `json:"age_profile"`
}

type Activity struct {
	ActivityID       int64    `json:"activity_id"`
	HotelID          string   `json:"-"`
	Title            string   `json:"title"`
	ShortDescription string   `json:"short_description"`
	LongDescription  string   `json:"long_description,omitempty"`
	Category         string   `json:"category"`
	Images           []Image  `json:"images,omitempty"`
	Location         Location `json:"location"`
	Events           []Event  `json:"events"`
}

// FindEvent returns the event with the given id, if the activity has it.
func (a Activity) FindEvent(eventID int64) (Event, bool) {
	for _, e := range a.Events {
		if e.EventID == eventID {
			return e, true
		}
	}
	return Event{}, false
}

type ProgramResponse struct {
	Range      DateRange  `json:"range"`
	Hotel      Hotel      `json:"hotel"`
	Activities []Activity `json:"activities"`
}
