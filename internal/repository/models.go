package repository

import (
	"time"

	"motionklub/internal/domain"
	"motionklub/internal/pkg/utils"
)

type hotelModel struct {
	HotelID    string `gorm:"column:hotel_id;primaryKey"`
	Name       string `gorm:"column:name"`
	ProviderID *int   `gorm:"column:provider_id"`
}

func (hotelModel) TableName() string { return "hotels" }

type activityModel struct {
	ID               int64   `gorm:"column:id;primaryKey;autoIncrement:false"`
	HotelID          string  `gorm:"column:hotel_id;index"`
	Title            string  `gorm:"column:title"`
	ShortDescription string  `gorm:"column:short_description"`
	LongDescription  *string `gorm:"column:long_description"`
	Category         string  `gorm:"column:category"`
	LocationLabel    string  `gorm:"column:location_label"`
	ImageURLs        *string `gorm:"column:image_urls;type:text"`

	Events []eventModel `gorm:"foreignKey:ActivityID"`
}

func (activityModel) TableName() string { return "activities" }

type eventModel struct {
	ID          int64     `gorm:"column:id;primaryKey;autoIncrement:false"`
	ActivityID  int64     `gorm:"column:activity_id;index"`
	StartAt     time.Time `gorm:"column:start_at"`
	EndAt       time.Time `gorm:"column:end_at"`
	MaxCapacity int       `gorm:"column:max_capacity"`
	Confirmed   int       `gorm:"column:confirmed"`
	Available   int       `gorm:"column:available"`
	AgeMin      int       `gorm:"column:age_min"`
	AgeMax      int       `gorm:"column:age_max"`
}

func (eventModel) TableName() string { return "events" }

type reservationModel struct {
	BNR      string `gorm:"column:bnr;primaryKey"`
	Email    string `gorm:"column:email"`
	HotelID  string `gorm:"column:hotel_id;index"`
	DateFrom string `gorm:"column:date_from"`
	DateTo   string `gorm:"column:date_to"`

	Participants []participantModel `gorm:"foreignKey:BNR;references:BNR"`
}

func (reservationModel) TableName() string { return "reservations" }

type participantModel struct {
	BNR         string `gorm:"column:bnr;primaryKey"`
	ID          string `gorm:"column:id;primaryKey"`
	Position    int    `gorm:"column:position"`
	Type        string `gorm:"column:type"`
	DisplayName string `gorm:"column:display_name"`
	Age         int    `gorm:"column:age"`
}

func (participantModel) TableName() string { return "participants" }

type bookingModel struct {
	ID              int64      `gorm:"column:id;primaryKey"`
	BNR             string     `gorm:"column:bnr;index"`
	EventID         int64      `gorm:"column:event_id;index"`
	ParticipantID   string     `gorm:"column:participant_id"`
	ParticipantType string     `gorm:"column:participant_type"`
	ParticipantName string     `gorm:"column:participant_name"`
	ParticipantAge  int        `gorm:"column:participant_age"`
	Status          string     `gorm:"column:status;index"`
	CreatedAt       time.Time  `gorm:"column:created_at"`
	UpdatedAt       time.Time  `gorm:"column:updated_at"`
	CancelledAt     *time.Time `gorm:"column:cancelled_at"`
}

func (bookingModel) TableName() string { return "bookings" }

type animatorModel struct {
	AnimatorID  string `gorm:"column:animator_id;primaryKey"`
	HotelID     string `gorm:"column:hotel_id"`
	DisplayName string `gorm:"column:display_name"`
	SecretHash  string `gorm:"column:secret_hash"`
}

func (animatorModel) TableName() string { return "animators" }

type sessionRecordModel struct {
	ClientID  string    `gorm:"column:client_id;primaryKey"`
	Key       string    `gorm:"column:record_key;primaryKey"`
	Payload   string    `gorm:"column:payload;type:text"`
	UpdatedAt time.Time `gorm:"column:updated_at;index"`
}

func (sessionRecordModel) TableName() string { return "session_records" }

func toDomainHotel(m hotelModel) domain.Hotel {
	return domain.Hotel{HotelID: m.HotelID, Name: m.Name, ProviderID: m.ProviderID}
}

func toDomainEvent(m eventModel) domain.Event {
	return domain.Event{
		EventID:    m.ID,
		ActivityID: m.ActivityID,
		StartAt:    domain.NewLocalTime(m.StartAt),
		EndAt:      domain.NewLocalTime(m.EndAt),
		Capacity: domain.Capacity{
			Max:       m.MaxCapacity,
			Confirmed: m.Confirmed,
			Available: m.Available,
		},
		AgeProfile: domain.AgeProfile{Min: m.AgeMin, Max: m.AgeMax},
	}
}

func toDomainActivity(m activityModel) domain.Activity {
	a := domain.Activity{
		ActivityID:       m.ID,
		HotelID:          m.HotelID,
		Title:            m.Title,
		ShortDescription: m.ShortDescription,
		Category:         m.Category,
		Location:         domain.Location{Label: m.LocationLabel},
		Events:           make([]domain.Event, 0, len(m.Events)),
	}
	if m.LongDescription != nil {
		a.LongDescription = *m.LongDescription
	}
	if m.ImageURLs != nil {
		a.Images = utils.StringToImages(*m.ImageURLs)
	}
	for _, e := range m.Events {
		a.Events = append(a.Events, toDomainEvent(e))
	}
	return a
}

func toActivityModel(a domain.Activity) activityModel {
	m := activityModel{
		ID:               a.ActivityID,
		HotelID:          a.HotelID,
		Title:            a.Title,
		ShortDescription: a.ShortDescription,
		Category:         a.Category,
		LocationLabel:    a.Location.Label,
	}
	if a.LongDescription != "" {
		v := a.LongDescription
		m.LongDescription = &v
	}
	if len(a.Images) > 0 {
		v := utils.ImagesToString(a.Images)
		m.ImageURLs = &v
	}
	for _, e := range a.Events {
		c := e.Capacity.Normalize()
		m.Events = append(m.Events, eventModel{
			ID:          e.EventID,
			ActivityID:  a.ActivityID,
			StartAt:     e.StartAt.Time,
			EndAt:       e.EndAt.Time,
			MaxCapacity: c.Max,
			Confirmed:   c.Confirmed,
			Available:   c.Available,
			AgeMin:      e.AgeProfile.Min,
			AgeMax:      e.AgeProfile.Max,
		})
	}
	return m
}

func toDomainBooking(m bookingModel) *domain.Booking {
	return &domain.Booking{
		ID:      m.ID,
		BNR:     m.BNR,
		EventID: m.EventID,
		Participant: domain.Participant{
			ID:          m.ParticipantID,
			Type:        domain.ParticipantType(m.ParticipantType),
			DisplayName: m.ParticipantName,
			Age:         m.ParticipantAge,
		},
		Status:      domain.BookingStatus(m.Status),
		CreatedAt:   m.CreatedAt,
		UpdatedAt:   m.UpdatedAt,
		CancelledAt: m.CancelledAt,
	}
}

func toBookingModel(b *domain.Booking) bookingModel {
	return bookingModel{
		ID:              b.ID,
		BNR:             b.BNR,
		EventID:         b.EventID,
		ParticipantID:   b.Participant.ID,
		ParticipantType: string(b.Participant.Type),
		ParticipantName: b.Participant.DisplayName,
		ParticipantAge:  b.Participant.Age,
		Status:          string(b.Status),
		CreatedAt:       b.CreatedAt,
		UpdatedAt:       b.UpdatedAt,
		CancelledAt:     b.CancelledAt,
	}
}
