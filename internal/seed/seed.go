// Package seed holds the demo resort dataset: one hotel, its activity
// program, two reservations with their bookings and a demo animator.
// Every call returns fresh values, so callers never share mutable state.
package seed

import (
	"context"
	"fmt"
	"time"

	"motionklub/internal/domain"
	"motionklub/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

const (
	DemoBNR            = "191754321"
	SecondBNR          = "191754322"
	DemoAnimatorID     = "anim001"
	DemoAnimatorSecret = "motion123"
)

var seededAt = time.Date(2024, 12, 20, 9, 0, 0, 0, time.UTC)

func providerID(v int) *int { return &v }

func Hotel() domain.Hotel {
	return domain.Hotel{HotelID: "HER90079", Name: "Hotel Aurora", ProviderID: providerID(13)}
}

func event(id int64, start, end string, max, confirmed, ageMin, ageMax int) domain.Event {
	return domain.Event{
		EventID:    id,
		StartAt:    domain.MustLocalTime(start),
		EndAt:      domain.MustLocalTime(end),
		Capacity:   domain.Capacity{Max: max, Confirmed: confirmed}.Normalize(),
		AgeProfile: domain.AgeProfile{Min: ageMin, Max: ageMax},
	}
}

func Activities() []domain.Activity {
	hotelID := Hotel().HotelID
	return []domain.Activity{
		{
			ActivityID:       1001,
			HotelID:          hotelID,
			Title:            "Paddleboard",
			ShortDescription: "Paddleboard lesson at sea with an instructor",
			LongDescription:  "A complete paddleboard lesson with instruction, equipment included. Suitable for beginners and advanced riders.",
			Category:         "Sport",
			Images:           []domain.Image{{URL: "/images/activities/paddleboard.jpg"}},
			Location:         domain.Location{Label: "Beach bar"},
			Events: []domain.Event{
				event(1987, "2025-07-01T10:00:00", "2025-07-01T12:00:00", 30, 24, 15, 99),
				event(1988, "2025-07-02T14:00:00", "2025-07-02T16:00:00", 30, 18, 15, 99),
			},
		},
		{
			ActivityID:       1002,
			HotelID:          hotelID,
			Title:            "Kids Club",
			ShortDescription: "Fun programme for children with animators",
			LongDescription:  "Creative workshops, games and fun for children under the supervision of qualified animators.",
			Category:         "Kids",
			Location:         domain.Location{Label: "Kids club"},
			Events: []domain.Event{
				event(1989, "2025-07-01T09:00:00", "2025-07-01T12:00:00", 20, 8, 4, 12),
				event(1990, "2025-07-01T15:00:00", "2025-07-01T18:00:00", 20, 15, 4, 12),
			},
		},
		{
			ActivityID:       1003,
			HotelID:          hotelID,
			Title:            "Sunset Yoga",
			ShortDescription: "Relaxing yoga at sunset",
			LongDescription:  "A calm yoga session at sunset overlooking the sea. Suitable for all levels.",
			Category:         "Wellness",
			Images: []domain.Image{
				{URL: "/images/activities/sunset-yoga.jpg"},
				{URL: "/images/activities/sunset-yoga-terrace.jpg"},
			},
			Location: domain.Location{Label: "Sea view terrace"},
			Events: []domain.Event{
				event(1991, "2025-07-01T19:30:00", "2025-07-01T20:30:00", 15, 10, 16, 99),
				event(1992, "2025-07-02T19:30:00", "2025-07-02T20:30:00", 15, 5, 16, 99),
			},
		},
		{
			ActivityID:       1004,
			HotelID:          hotelID,
			Title:            "Aqua Aerobics",
			ShortDescription: "Water workout for all ages",
			LongDescription:  "An energetic workout in the pool with motivating music and a professional trainer.",
			Category:         "Sport",
			Location:         domain.Location{Label: "Pool"},
			Events: []domain.Event{
				event(1994, "2025-01-01T16:00:00", "2025-01-01T17:00:00", 35, 22, 18, 99),
				event(1995, "2024-12-29T16:00:00", "2024-12-29T17:00:00", 35, 28, 18, 99),
			},
		},
		{
			ActivityID:       1005,
			HotelID:          hotelID,
			Title:            "Paintball Tournament",
			ShortDescription: "Paintball tournament for teams",
			LongDescription:  "An adrenaline paintball tournament. Protective gear and briefing included.",
			Category:         "Sport",
			Location:         domain.Location{Label: "Paintball arena"},
			Events: []domain.Event{
				event(1996, "2024-12-27T14:00:00", "2024-12-27T16:30:00", 24, 20, 16, 55),
			},
		},
		{
			ActivityID:       1006,
			HotelID:          hotelID,
			Title:            "Kids Club - afternoon",
			ShortDescription: "Creative activities for children",
			LongDescription:  "Painting, craft workshops and games for children with animators.",
			Category:         "Kids",
			Location:         domain.Location{Label: "Kids club"},
			Events: []domain.Event{
				event(1993, "2024-12-30T15:00:00", "2024-12-30T17:00:00", 20, 15, 4, 12),
			},
		},
	}
}

func demoParticipants() []domain.Participant {
	return []domain.Participant{
		{ID: "1", Type: domain.ParticipantAdult, DisplayName: "Adam N.", Age: 45},
		{ID: "3", Type: domain.ParticipantAdult, DisplayName: "Petr S.", Age: 35},
		{ID: "5", Type: domain.ParticipantChild, DisplayName: "Eva N.", Age: 9},
	}
}

func Reservations() []domain.Reservation {
	stay := domain.DateRange{DateFrom: "2025-07-01", DateTo: "2025-07-08"}
	return []domain.Reservation{
		{
			BNR:          DemoBNR,
			Email:        "adam.n@example.com",
			Hotel:        Hotel(),
			StayPeriod:   stay,
			Participants: demoParticipants(),
		},
		{
			BNR:        SecondBNR,
			Email:      "marie.k@example.com",
			Hotel:      Hotel(),
			StayPeriod: stay,
			Participants: []domain.Participant{
				{ID: "10", Type: domain.ParticipantAdult, DisplayName: "Marie K.", Age: 32},
				{ID: "11", Type: domain.ParticipantChild, DisplayName: "Jan K.", Age: 7},
			},
		},
	}
}

// DemoGuest is the fixed guest profile every guest login receives.
func DemoGuest(email string) *domain.GuestSession {
	return &domain.GuestSession{
		BNR:          DemoBNR,
		Email:        email,
		Hotel:        Hotel(),
		StayPeriod:   domain.DateRange{DateFrom: "2025-07-01", DateTo: "2025-07-08"},
		Participants: demoParticipants(),
	}
}

func Bookings() []domain.Booking {
	p := demoParticipants()
	adam, petr, eva := p[0], p[1], p[2]
	marie := domain.Participant{ID: "10", Type: domain.ParticipantAdult, DisplayName: "Marie K.", Age: 32}

	b := func(id int64, bnr string, eventID int64, who domain.Participant) domain.Booking {
		return domain.Booking{
			ID:          id,
			BNR:         bnr,
			EventID:     eventID,
			Participant: who,
			Status:      domain.BookingConfirmed,
			CreatedAt:   seededAt,
		}
	}
	return []domain.Booking{
		b(555001, DemoBNR, 1987, adam),
		b(555010, DemoBNR, 1989, eva),
		b(555011, DemoBNR, 1991, adam),
		b(555012, DemoBNR, 1987, petr),
		b(555013, DemoBNR, 1992, adam),
		b(555014, DemoBNR, 1995, petr),
		b(555015, DemoBNR, 1993, eva),
		b(555016, DemoBNR, 1996, adam),
		b(555017, DemoBNR, 1996, petr),
		b(555018, DemoBNR, 1987, eva),
		b(555020, SecondBNR, 1991, marie),
	}
}

func Animators() ([]domain.Animator, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(DemoAnimatorSecret), bcrypt.MinCost)
	if err != nil {
		return nil, err
	}
	return []domain.Animator{
		{AnimatorID: DemoAnimatorID, HotelID: Hotel().HotelID, DisplayName: "Klara M.", SecretHash: string(hash)},
	}, nil
}

// Apply writes the demo dataset into an empty, migrated database.
func Apply(ctx context.Context, db *gorm.DB) error {
	hotels := repository.NewHotelRepository(db)
	activities := repository.NewActivityRepository(db)
	reservations := repository.NewReservationRepository(db)
	bookings := repository.NewBookingRepository(db)
	animators := repository.NewAnimatorRepository(db)

	return repository.NewTransactor(db).InTx(ctx, func(ctx context.Context) error {
		if err := hotels.Create(ctx, Hotel()); err != nil {
			return fmt.Errorf("seed hotel: %w", err)
		}
		for _, a := range Activities() {
			if err := activities.Create(ctx, a); err != nil {
				return fmt.Errorf("seed activity %d: %w", a.ActivityID, err)
			}
		}
		for _, r := range Reservations() {
			if err := reservations.Create(ctx, r); err != nil {
				return fmt.Errorf("seed reservation %s: %w", r.BNR, err)
			}
		}
		for _, b := range Bookings() {
			b := b
			if err := bookings.Create(ctx, &b); err != nil {
				return fmt.Errorf("seed booking %d: %w", b.ID, err)
			}
		}
		list, err := Animators()
		if err != nil {
			return err
		}
		for _, a := range list {
			if err := animators.Create(ctx, a); err != nil {
				return fmt.Errorf("seed animator %s: %w", a.AnimatorID, err)
			}
		}
		return nil
	})
}
