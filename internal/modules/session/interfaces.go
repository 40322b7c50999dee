package session

import (
	"context"

	"motionklub/internal/domain"
	"motionklub/internal/pkg/jwt"
)

// Store persists opaque session payloads per client and key. Missing records
// are reported as repository.ErrNotFound.
type Store interface {
	Get(ctx context.Context, clientID, key string) ([]byte, error)
	Put(ctx context.Context, clientID, key string, payload []byte) error
	Delete(ctx context.Context, clientID string, keys ...string) error
}

type AnimatorRepository interface {
	GetByID(ctx context.Context, animatorID string) (*domain.Animator, error)
}

type HotelRepository interface {
	GetByID(ctx context.Context, hotelID string) (*domain.Hotel, error)
}

type jwtService interface {
	GenerateToken(clientID, role string) (string, error)
	ValidateToken(tokenStr string) (*jwt.Claims, error)
}
