package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"

	"motionklub/internal/domain"
	"motionklub/internal/repository"
	"motionklub/internal/seed"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// Durable record keys. A client holds at most one of them at a time.
const (
	GuestKey    = "motion_guest_session"
	AnimatorKey = "motion_animator_session"
)

type Service struct {
	store     Store
	animators AnimatorRepository
	hotels    HotelRepository
	jwt       jwtService
}

func NewService(store Store, animators AnimatorRepository, hotels HotelRepository, jwt jwtService) *Service {
	return &Service{
		store:     store,
		animators: animators,
		hotels:    hotels,
		jwt:       jwt,
	}
}

// ResolveClientID keeps the requested client id only when the bearer token
// was issued for that same id. Anyone else gets a fresh id, so a login can
// never overwrite a session it does not own.
func (s *Service) ResolveClientID(requested, bearer string) string {
	requested = strings.TrimSpace(requested)
	if requested == "" || bearer == "" {
		return uuid.NewString()
	}
	claims, err := s.jwt.ValidateToken(bearer)
	if err != nil || claims.ClientID != requested {
		return uuid.NewString()
	}
	return requested
}

// Current returns the live session of the client, or nil when there is none.
// The animator record wins when both records are present.
func (s *Service) Current(ctx context.Context, clientID string) (domain.Session, error) {
	if clientID == "" {
		return nil, nil
	}

	var animator domain.AnimatorSession
	ok, err := s.load(ctx, clientID, AnimatorKey, &animator)
	if err != nil {
		return nil, err
	}
	if ok {
		animator.RoleTag = domain.RoleAnimator
		return &animator, nil
	}

	var guest domain.GuestSession
	ok, err = s.load(ctx, clientID, GuestKey, &guest)
	if err != nil {
		return nil, err
	}
	if ok {
		return &guest, nil
	}
	return nil, nil
}

// load decodes one record. Unreadable payloads count as absent.
func (s *Service) load(ctx context.Context, clientID, key string, dst any) (bool, error) {
	raw, err := s.store.Get(ctx, clientID, key)
	if errors.Is(err, repository.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("read %s: %w", key, err)
	}
	if err := json.Unmarshal(raw, dst); err != nil {
		log.Printf("session_record_corrupt client_id=%s key=%s error=%q", clientID, key, err.Error())
		return false, nil
	}
	return true, nil
}

func (s *Service) save(ctx context.Context, clientID, key, other string, v any) error {
	payload, err := json.Marshal(v)
	if err != nil {
		return err
	}
	if err := s.store.Put(ctx, clientID, key, payload); err != nil {
		return fmt.Errorf("write %s: %w", key, err)
	}
	if err := s.store.Delete(ctx, clientID, other); err != nil {
		return fmt.Errorf("clear %s: %w", other, err)
	}
	return nil
}

// LoginGuest opens a guest session. The reservation reference is not checked:
// every guest gets the demo travel party, only the email is carried through.
func (s *Service) LoginGuest(ctx context.Context, clientID, reservationRef, email string) (*domain.GuestSession, string, error) {
	reservationRef = strings.TrimSpace(reservationRef)
	email = strings.TrimSpace(email)
	if clientID == "" || reservationRef == "" || email == "" {
		return nil, "", ErrMissingCredentials
	}

	sess := seed.DemoGuest(email)
	if err := s.save(ctx, clientID, GuestKey, AnimatorKey, sess); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(clientID, string(domain.RoleGuest))
	if err != nil {
		return nil, "", err
	}
	log.Printf("session_login role=guest client_id=%s bnr=%s", clientID, sess.BNR)
	return sess, token, nil
}

func (s *Service) LoginAnimator(ctx context.Context, clientID, animatorID, secret string) (*domain.AnimatorSession, string, error) {
	animatorID = strings.TrimSpace(animatorID)
	if clientID == "" || animatorID == "" || secret == "" {
		return nil, "", ErrMissingCredentials
	}

	animator, err := s.animators.GetByID(ctx, animatorID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, "", ErrInvalidCredentials
	}
	if err != nil {
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(animator.SecretHash), []byte(secret)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	hotel, err := s.hotels.GetByID(ctx, animator.HotelID)
	if err != nil {
		return nil, "", fmt.Errorf("animator hotel: %w", err)
	}

	sess := &domain.AnimatorSession{
		AnimatorID: animator.AnimatorID,
		Hotel:      *hotel,
		RoleTag:    domain.RoleAnimator,
	}
	if err := s.save(ctx, clientID, AnimatorKey, GuestKey, sess); err != nil {
		return nil, "", err
	}

	token, err := s.jwt.GenerateToken(clientID, string(domain.RoleAnimator))
	if err != nil {
		return nil, "", err
	}
	log.Printf("session_login role=animator client_id=%s animator_id=%s", clientID, sess.AnimatorID)
	return sess, token, nil
}

// Logout clears both records.
func (s *Service) Logout(ctx context.Context, clientID string) error {
	if clientID == "" {
		return ErrNoSession
	}
	return s.store.Delete(ctx, clientID, GuestKey, AnimatorKey)
}
