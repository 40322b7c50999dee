package catalog

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sort"
	"strings"
	"time"

	"motionklub/internal/domain"
	"motionklub/internal/pkg/validator"
	"motionklub/internal/repository"
	"motionklub/internal/views"
)

const recentChangesLimit = 10

type Service struct {
	activities   ActivityRepository
	bookings     BookingRepository
	reservations ReservationRepository
	hotels       HotelRepository
	tx           Transactor
	notifier     CapacityNotifier
	latency      time.Duration
	loc          *time.Location
	clock        func() time.Time
}

type noopNotifier struct{}

func (noopNotifier) CapacityChanged(int64, domain.Capacity) {}

func NewService(
	activities ActivityRepository,
	bookings BookingRepository,
	reservations ReservationRepository,
	hotels HotelRepository,
	tx Transactor,
	opts Options,
) *Service {
	s := &Service{
		activities:   activities,
		bookings:     bookings,
		reservations: reservations,
		hotels:       hotels,
		tx:           tx,
		notifier:     opts.Notifier,
		latency:      opts.Latency,
		loc:          opts.Location,
		clock:        opts.Clock,
	}
	if s.notifier == nil {
		s.notifier = noopNotifier{}
	}
	if s.loc == nil {
		s.loc = time.UTC
	}
	if s.clock == nil {
		s.clock = time.Now
	}
	return s
}

// Now is the current resort wall-clock time.
func (s *Service) Now() domain.LocalTime {
	return domain.WallClock(s.clock(), s.loc)
}

// delay simulates a slow backend. A cancelled context abandons the call
// before anything is read or written.
func (s *Service) delay(ctx context.Context) error {
	if s.latency <= 0 {
		return ctx.Err()
	}
	t := time.NewTimer(s.latency)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-t.C:
		return nil
	}
}

/* ---------- PROGRAM ---------- */

// GetProgram lists the activities of a hotel whose events fall inside the
// inclusive day range. Empty arguments leave that side unfiltered.
func (s *Service) GetProgram(ctx context.Context, dateFrom, dateTo, hotelID string) (*domain.ProgramResponse, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	rng := domain.DateRange{DateFrom: dateFrom, DateTo: dateTo}
	from, to, err := rng.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	var hotel domain.Hotel
	if hotelID != "" {
		h, err := s.hotels.GetByID(ctx, hotelID)
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrHotelNotFound
		}
		if err != nil {
			return nil, err
		}
		hotel = *h
	}

	activities, err := s.activities.ListByHotel(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	return &domain.ProgramResponse{
		Range:      rng,
		Hotel:      hotel,
		Activities: views.FilterActivities(activities, views.ActivityFilter{From: from, To: to}),
	}, nil
}

// GetEvent returns one event with its activity, for refreshing a screen
// after a mutation.
func (s *Service) GetEvent(ctx context.Context, eventID int64) (*domain.Activity, *domain.Event, error) {
	activity, event, err := s.activities.FindEvent(ctx, eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil, ErrEventNotFound
	}
	return activity, event, err
}

/* ---------- BOOKING ---------- */

// Book reserves one place per participant. Either every participant is
// booked and the counters move by exactly len(participants), or nothing
// changes.
func (s *Service) Book(ctx context.Context, reservationRef string, eventID int64, participants []domain.Participant) (*BookResult, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	reservationRef = strings.TrimSpace(reservationRef)
	if reservationRef == "" {
		return nil, ErrMissingReservation
	}

	var ids []int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		var err error
		ids, err = s.book(ctx, reservationRef, eventID, participants)
		return err
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, eventID)
	log.Printf("booking_confirmed bnr=%s event_id=%d participants=%d booking_ids=%v", reservationRef, eventID, len(ids), ids)
	return &BookResult{Status: StatusConfirmed, BookingIDs: ids}, nil
}

// Register books several events for one reservation in a single
// transaction. Participants are resolved from the reservation's travel
// party.
func (s *Service) Register(ctx context.Context, reservationRef string, selections map[int64][]string) (*BookResult, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	reservationRef = strings.TrimSpace(reservationRef)
	if reservationRef == "" {
		return nil, ErrMissingReservation
	}

	eventIDs := make([]int64, 0, len(selections))
	for id, pids := range selections {
		if len(pids) > 0 {
			eventIDs = append(eventIDs, id)
		}
	}
	if len(eventIDs) == 0 {
		return nil, ErrNoParticipants
	}
	sort.Slice(eventIDs, func(i, j int) bool { return eventIDs[i] < eventIDs[j] })

	var ids []int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		res, err := s.reservations.GetByBNR(ctx, reservationRef)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrReservationNotFound
		}
		if err != nil {
			return err
		}

		for _, eventID := range eventIDs {
			party := make([]domain.Participant, 0, len(selections[eventID]))
			for _, pid := range selections[eventID] {
				p, ok := res.Participant(pid)
				if !ok {
					return fmt.Errorf("%w: %s on reservation %s", ErrParticipantNotFound, pid, res.BNR)
				}
				party = append(party, p)
			}
			booked, err := s.book(ctx, res.BNR, eventID, party)
			if err != nil {
				return fmt.Errorf("event %d: %w", eventID, err)
			}
			ids = append(ids, booked...)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	for _, eventID := range eventIDs {
		s.publish(ctx, eventID)
	}
	log.Printf("registrations_added bnr=%s events=%v booking_ids=%v", reservationRef, eventIDs, ids)
	return &BookResult{Status: StatusConfirmed, BookingIDs: ids}, nil
}

// book must run inside a transaction.
func (s *Service) book(ctx context.Context, bnr string, eventID int64, participants []domain.Participant) ([]int64, error) {
	if len(participants) == 0 {
		return nil, ErrNoParticipants
	}

	_, event, err := s.activities.FindEvent(ctx, eventID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrEventNotFound
	}
	if err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(participants))
	for _, p := range participants {
		if errs := validator.Validate(p); errs != nil {
			return nil, fmt.Errorf("%w: %s %v", ErrInvalidParticipant, p.ID, errs)
		}
		if seen[p.ID] {
			return nil, fmt.Errorf("%w: %s selected twice", ErrDuplicateBooking, p.DisplayName)
		}
		seen[p.ID] = true

		if !views.Eligible(p, event.AgeProfile) {
			return nil, fmt.Errorf("%w: %s (%d) is outside %d-%d",
				ErrAgeIneligible, p.DisplayName, p.Age, event.AgeProfile.Min, event.AgeProfile.Max)
		}
		exists, err := s.bookings.ExistsConfirmed(ctx, bnr, eventID, p.ID)
		if err != nil {
			return nil, err
		}
		if exists {
			return nil, fmt.Errorf("%w: %s", ErrDuplicateBooking, p.DisplayName)
		}
	}

	ok, err := s.activities.ReserveSeats(ctx, eventID, len(participants))
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, fmt.Errorf("%w: %d requested, %d available",
			ErrCapacityExceeded, len(participants), event.Capacity.Available)
	}

	ids := make([]int64, 0, len(participants))
	for _, p := range participants {
		b := &domain.Booking{
			BNR:         bnr,
			EventID:     eventID,
			Participant: p,
			Status:      domain.BookingConfirmed,
		}
		if err := s.bookings.Create(ctx, b); err != nil {
			if errors.Is(err, repository.ErrDuplicate) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateBooking, p.DisplayName)
			}
			return nil, err
		}
		ids = append(ids, b.ID)
	}
	return ids, nil
}

// Cancel cancels a guest's own booking. A booking that does not match (wrong
// reservation, already cancelled, other event or participant) is left alone
// and the call still reports "cancelled".
func (s *Service) Cancel(ctx context.Context, bookingID int64, reservationRef string, eventID int64, participantID string) (*CancelResult, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	var released int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.FindConfirmed(ctx, bookingID, strings.TrimSpace(reservationRef))
		if errors.Is(err, repository.ErrNotFound) {
			return nil
		}
		if err != nil {
			return err
		}
		if eventID != 0 && b.EventID != eventID {
			return nil
		}
		if participantID != "" && b.Participant.ID != participantID {
			return nil
		}

		ok, err := s.cancel(ctx, b)
		if ok {
			released = b.EventID
		}
		return err
	})
	if err != nil {
		return nil, err
	}

	if released != 0 {
		s.publish(ctx, released)
		log.Printf("booking_cancelled booking_id=%d bnr=%s event_id=%d", bookingID, reservationRef, released)
	} else {
		log.Printf("booking_cancel_noop booking_id=%d bnr=%s", bookingID, reservationRef)
	}
	return &CancelResult{Status: StatusCancelled}, nil
}

// CancelRegistration removes a confirmed booking by id, for staff.
func (s *Service) CancelRegistration(ctx context.Context, bookingID int64) (*CancelResult, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	var eventID int64
	err := s.tx.InTx(ctx, func(ctx context.Context) error {
		b, err := s.bookings.GetByID(ctx, bookingID)
		if errors.Is(err, repository.ErrNotFound) {
			return ErrBookingNotFound
		}
		if err != nil {
			return err
		}
		if b.Status != domain.BookingConfirmed {
			return ErrBookingNotFound
		}

		ok, err := s.cancel(ctx, b)
		if err != nil {
			return err
		}
		if !ok {
			return ErrBookingNotFound
		}
		eventID = b.EventID
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.publish(ctx, eventID)
	log.Printf("registration_removed booking_id=%d event_id=%d", bookingID, eventID)
	return &CancelResult{Status: StatusCancelled}, nil
}

// cancel flips the booking and gives its seat back. It reports false when
// another request cancelled it first.
func (s *Service) cancel(ctx context.Context, b *domain.Booking) (bool, error) {
	ok, err := s.bookings.MarkCancelled(ctx, b.ID)
	if err != nil || !ok {
		return false, err
	}
	if err := s.activities.ReleaseSeat(ctx, b.EventID); err != nil && !errors.Is(err, repository.ErrNotFound) {
		return false, err
	}
	return true, nil
}

func (s *Service) publish(ctx context.Context, eventID int64) {
	c, err := s.activities.GetCapacity(context.WithoutCancel(ctx), eventID)
	if err != nil {
		log.Printf("capacity_publish_failed event_id=%d error=%q", eventID, err.Error())
		return
	}
	s.notifier.CapacityChanged(eventID, c)
}

/* ---------- QUERIES ---------- */

// GetUserBookings groups the reservation's confirmed bookings per event,
// ordered by event start.
func (s *Service) GetUserBookings(ctx context.Context, reservationRef string) (*domain.UserBookingsResponse, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	reservationRef = strings.TrimSpace(reservationRef)

	out := &domain.UserBookingsResponse{BNR: reservationRef, Activities: []domain.BookedActivity{}}
	if reservationRef == "" {
		return out, nil
	}

	res, err := s.reservations.GetByBNR(ctx, reservationRef)
	switch {
	case err == nil:
		out.Hotel = res.Hotel
	case !errors.Is(err, repository.ErrNotFound):
		return nil, err
	}

	bookings, err := s.bookings.ListConfirmedByBNR(ctx, reservationRef)
	if err != nil {
		return nil, err
	}
	index, err := s.eventIndex(ctx)
	if err != nil {
		return nil, err
	}

	byEvent := make(map[int64]int)
	for _, b := range bookings {
		ref, ok := index[b.EventID]
		if !ok {
			continue
		}
		i, ok := byEvent[b.EventID]
		if !ok {
			i = len(out.Activities)
			byEvent[b.EventID] = i
			out.Activities = append(out.Activities, domain.BookedActivity{
				EventID:  ref.event.EventID,
				Title:    ref.activity.Title,
				StartAt:  ref.event.StartAt,
				EndAt:    ref.event.EndAt,
				Location: ref.activity.Location,
				Bookings: []domain.BookingRef{},
			})
		}
		out.Activities[i].Bookings = append(out.Activities[i].Bookings, domain.BookingRef{
			BookingID:   b.ID,
			Participant: b.Participant,
		})
	}

	sort.SliceStable(out.Activities, func(i, j int) bool {
		return out.Activities[i].StartAt.Before(out.Activities[j].StartAt.Time)
	})
	return out, nil
}

// GetAnimatorRegistrations lists confirmed bookings whose event starts inside
// the inclusive day range, optionally for one activity only.
func (s *Service) GetAnimatorRegistrations(ctx context.Context, dateFrom, dateTo string, activityID int64) (*domain.RegistrationsResponse, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	rng := domain.DateRange{DateFrom: dateFrom, DateTo: dateTo}
	from, to, err := rng.Bounds()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidRange, err)
	}

	index, err := s.eventIndex(ctx)
	if err != nil {
		return nil, err
	}

	var eventIDs []int64
	if activityID != 0 {
		eventIDs = []int64{}
		for id, ref := range index {
			if ref.activity.ActivityID == activityID {
				eventIDs = append(eventIDs, id)
			}
		}
	}

	bookings, err := s.bookings.ListConfirmed(ctx, eventIDs)
	if err != nil {
		return nil, err
	}
	regs, err := s.registrations(ctx, bookings, index)
	if err != nil {
		return nil, err
	}

	return &domain.RegistrationsResponse{
		Range:         rng,
		Registrations: views.FilterRegistrations(regs, views.RegistrationFilter{From: from, To: to}),
	}, nil
}

// FindReservation looks up a reservation for the staff search screen.
func (s *Service) FindReservation(ctx context.Context, bnr string) (*domain.Reservation, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	bnr = strings.TrimSpace(bnr)
	if bnr == "" {
		return nil, ErrReservationNotFound
	}

	res, err := s.reservations.GetByBNR(ctx, bnr)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrReservationNotFound
	}
	return res, err
}

// GetReservationRegistrations returns the confirmed registrations of one
// reservation. Unknown references simply have none.
func (s *Service) GetReservationRegistrations(ctx context.Context, bnr string) ([]domain.Registration, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}
	bnr = strings.TrimSpace(bnr)
	if bnr == "" {
		return []domain.Registration{}, nil
	}

	bookings, err := s.bookings.ListConfirmedByBNR(ctx, bnr)
	if err != nil {
		return nil, err
	}
	if len(bookings) == 0 {
		return []domain.Registration{}, nil
	}
	index, err := s.eventIndex(ctx)
	if err != nil {
		return nil, err
	}
	return s.registrations(ctx, bookings, index)
}

// Dashboard summarises the booking activity as seen at now.
func (s *Service) Dashboard(ctx context.Context, now domain.LocalTime) (*DashboardStats, error) {
	if err := s.delay(ctx); err != nil {
		return nil, err
	}

	activities, err := s.activities.ListByHotel(ctx, "")
	if err != nil {
		return nil, err
	}
	bookings, err := s.bookings.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &DashboardStats{RecentChanges: []RecentChange{}}
	for _, a := range activities {
		upcoming := 0
		for _, e := range a.Events {
			if !views.IsPast(e.StartAt, now) {
				upcoming++
			}
		}
		if upcoming > 0 {
			stats.UpcomingActivities++
			stats.UpcomingEvents += upcoming
		}
	}

	today := now.Day()
	for _, b := range bookings {
		if b.Status == domain.BookingConfirmed {
			stats.TotalConfirmed++
		}
		if domain.WallClock(b.CreatedAt, s.loc).Day() == today {
			stats.RegistrationsToday++
		}
		if b.CancelledAt != nil && domain.WallClock(*b.CancelledAt, s.loc).Day() == today {
			stats.CancellationsToday++
		}
	}

	recent := bookings
	if len(recent) > recentChangesLimit {
		recent = recent[:recentChangesLimit]
	}
	index := indexActivities(activities)
	regs, err := s.registrations(ctx, recent, index)
	if err != nil {
		return nil, err
	}
	byID := make(map[int64]domain.Registration, len(regs))
	for _, r := range regs {
		byID[r.BookingID] = r
	}
	for _, b := range recent {
		r, ok := byID[b.ID]
		if !ok {
			continue
		}
		stats.RecentChanges = append(stats.RecentChanges, RecentChange{
			Registration: r,
			ChangedAt:    domain.WallClock(b.UpdatedAt, s.loc),
		})
	}
	return stats, nil
}

/* ---------- JOINS ---------- */

type eventRef struct {
	activity domain.Activity
	event    domain.Event
}

func indexActivities(activities []domain.Activity) map[int64]eventRef {
	index := make(map[int64]eventRef)
	for _, a := range activities {
		for _, e := range a.Events {
			index[e.EventID] = eventRef{activity: a, event: e}
		}
	}
	return index
}

func (s *Service) eventIndex(ctx context.Context) (map[int64]eventRef, error) {
	activities, err := s.activities.ListByHotel(ctx, "")
	if err != nil {
		return nil, err
	}
	return indexActivities(activities), nil
}

// registrations joins bookings to their event, activity and hotel. The
// hotel is the reservation's; the activity's hotel stands in for unknown
// reservations. Bookings of unknown events are skipped.
func (s *Service) registrations(ctx context.Context, bookings []domain.Booking, index map[int64]eventRef) ([]domain.Registration, error) {
	out := make([]domain.Registration, 0, len(bookings))
	if len(bookings) == 0 {
		return out, nil
	}

	byBNR, err := s.reservations.HotelsByBNR(ctx)
	if err != nil {
		return nil, err
	}
	hotels, err := s.hotels.List(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]domain.Hotel, len(hotels))
	for _, h := range hotels {
		byID[h.HotelID] = h
	}

	for _, b := range bookings {
		ref, ok := index[b.EventID]
		if !ok {
			continue
		}
		hotel, ok := byBNR[b.BNR]
		if !ok {
			hotel = byID[ref.activity.HotelID]
		}
		out = append(out, domain.Registration{
			BookingID:     b.ID,
			BNR:           b.BNR,
			Participant:   b.Participant,
			ActivityID:    ref.activity.ActivityID,
			ActivityTitle: ref.activity.Title,
			EventID:       b.EventID,
			StartAt:       ref.event.StartAt,
			EndAt:         ref.event.EndAt,
			Location:      ref.activity.Location,
			Hotel:         hotel,
			Status:        b.Status,
		})
	}
	return out, nil
}
