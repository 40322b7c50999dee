package repository

import (
	"context"

	"motionklub/internal/domain"

	"gorm.io/gorm"
)

type AnimatorRepository struct {
	db *gorm.DB
}

func NewAnimatorRepository(db *gorm.DB) *AnimatorRepository {
	return &AnimatorRepository{db: db}
}

func (r *AnimatorRepository) Create(ctx context.Context, a domain.Animator) error {
	m := animatorModel{
		AnimatorID:  a.AnimatorID,
		HotelID:     a.HotelID,
		DisplayName: a.DisplayName,
		SecretHash:  a.SecretHash,
	}
	return conn(ctx, r.db).Create(&m).Error
}

func (r *AnimatorRepository) GetByID(ctx context.Context, animatorID string) (*domain.Animator, error) {
	var m animatorModel
	if err := conn(ctx, r.db).Where("animator_id = ?", animatorID).First(&m).Error; err != nil {
		return nil, notFound(err)
	}
	return &domain.Animator{
		AnimatorID:  m.AnimatorID,
		HotelID:     m.HotelID,
		DisplayName: m.DisplayName,
		SecretHash:  m.SecretHash,
	}, nil
}
