package session

import "motionklub/internal/domain"

type GuestLoginRequest struct {
	ReservationRef string `json:"reservation_ref" binding:"required"`
	Email          string `json:"email" binding:"required"`
}

type AnimatorLoginRequest struct {
	AnimatorID string `json:"animator_id" binding:"required"`
	Secret     string `json:"secret" binding:"required"`
}

type LoginResponse struct {
	ClientID string         `json:"client_id"`
	Token    string         `json:"token"`
	Role     domain.Role    `json:"role"`
	Session  domain.Session `json:"session"`
}

type SessionResponse struct {
	Role    domain.Role    `json:"role"`
	Session domain.Session `json:"session"`
}
