package repository

import (
	"context"

	"motionklub/internal/domain"

	"gorm.io/gorm"
)

type ReservationRepository struct {
	db *gorm.DB
}

func NewReservationRepository(db *gorm.DB) *ReservationRepository {
	return &ReservationRepository{db: db}
}

func (r *ReservationRepository) Create(ctx context.Context, res domain.Reservation) error {
	m := reservationModel{
		BNR:      res.BNR,
		Email:    res.Email,
		HotelID:  res.Hotel.HotelID,
		DateFrom: res.StayPeriod.DateFrom,
		DateTo:   res.StayPeriod.DateTo,
	}
	for i, p := range res.Participants {
		m.Participants = append(m.Participants, participantModel{
			BNR:         res.BNR,
			ID:          p.ID,
			Position:    i,
			Type:        string(p.Type),
			DisplayName: p.DisplayName,
			Age:         p.Age,
		})
	}
	return conn(ctx, r.db).Create(&m).Error
}

// GetByBNR loads the reservation with its hotel and travel party.
func (r *ReservationRepository) GetByBNR(ctx context.Context, bnr string) (*domain.Reservation, error) {
	var m reservationModel
	err := conn(ctx, r.db).
		Preload("Participants", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		Where("bnr = ?", bnr).
		First(&m).Error
	if err != nil {
		return nil, notFound(err)
	}

	var h hotelModel
	if err := conn(ctx, r.db).Where("hotel_id = ?", m.HotelID).First(&h).Error; err != nil {
		return nil, notFound(err)
	}

	res := &domain.Reservation{
		BNR:          m.BNR,
		Email:        m.Email,
		Hotel:        toDomainHotel(h),
		StayPeriod:   domain.DateRange{DateFrom: m.DateFrom, DateTo: m.DateTo},
		Participants: make([]domain.Participant, 0, len(m.Participants)),
	}
	for _, p := range m.Participants {
		res.Participants = append(res.Participants, domain.Participant{
			ID:          p.ID,
			Type:        domain.ParticipantType(p.Type),
			DisplayName: p.DisplayName,
			Age:         p.Age,
		})
	}
	return res, nil
}

// HotelsByBNR maps each known reservation reference to its hotel.
func (r *ReservationRepository) HotelsByBNR(ctx context.Context) (map[string]domain.Hotel, error) {
	type row struct {
		BNR        string
		HotelID    string
		Name       string
		ProviderID *int
	}
	var rows []row
	err := conn(ctx, r.db).
		Table("reservations").
		Select("reservations.bnr, hotels.hotel_id, hotels.name, hotels.provider_id").
		Joins("JOIN hotels ON hotels.hotel_id = reservations.hotel_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}
	out := make(map[string]domain.Hotel, len(rows))
	for _, r := range rows {
		out[r.BNR] = domain.Hotel{HotelID: r.HotelID, Name: r.Name, ProviderID: r.ProviderID}
	}
	return out, nil
}
