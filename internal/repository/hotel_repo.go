package repository

import (
	"context"

	"motionklub/internal/domain"

	"gorm.io/gorm"
)

type HotelRepository struct {
	db *gorm.DB
}

func NewHotelRepository(db *gorm.DB) *HotelRepository {
	return &HotelRepository{db: db}
}

func (r *HotelRepository) Create(ctx context.Context, h domain.Hotel) error {
	m := hotelModel{HotelID: h.HotelID, Name: h.Name, ProviderID: h.ProviderID}
	return conn(ctx, r.db).Create(&m).Error
}

func (r *HotelRepository) GetByID(ctx context.Context, hotelID string) (*domain.Hotel, error) {
	var m hotelModel
	if err := conn(ctx, r.db).Where("hotel_id = ?", hotelID).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	h := toDomainHotel(m)
	return &h, nil
}

func (r *HotelRepository) List(ctx context.Context) ([]domain.Hotel, error) {
	var rows []hotelModel
	if err := conn(ctx, r.db).Order("name ASC").Find(&rows).Error; err != nil {
		return nil, err
	}
	out := make([]domain.Hotel, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainHotel(m))
	}
	return out, nil
}
