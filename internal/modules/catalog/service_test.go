package catalog

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"motionklub/internal/domain"
	"motionklub/internal/repository"
	"motionklub/internal/seed"
	"motionklub/internal/seed/seedtest"
	"motionklub/internal/views"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// Just before the demo stay starts: July events are upcoming, the winter
// ones are past.
var testNow = time.Date(2025, 6, 30, 12, 0, 0, 0, time.UTC)

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) CapacityChanged(eventID int64, capacity domain.Capacity) {
	m.Called(eventID, capacity)
}

type fixture struct {
	svc        *Service
	activities *repository.ActivityRepository
	bookings   *repository.BookingRepository
}

func newFixture(t *testing.T, opts Options) fixture {
	t.Helper()
	db := seedtest.NewDB(t)
	if opts.Clock == nil {
		opts.Clock = func() time.Time { return testNow }
	}
	f := fixture{
		activities: repository.NewActivityRepository(db),
		bookings:   repository.NewBookingRepository(db),
	}
	f.svc = NewService(
		f.activities,
		f.bookings,
		repository.NewReservationRepository(db),
		repository.NewHotelRepository(db),
		repository.NewTransactor(db),
		opts,
	)
	return f
}

func (f fixture) capacity(t *testing.T, eventID int64) domain.Capacity {
	t.Helper()
	c, err := f.activities.GetCapacity(context.Background(), eventID)
	require.NoError(t, err)
	return c
}

func adults(n int) []domain.Participant {
	out := make([]domain.Participant, 0, n)
	for i := 0; i < n; i++ {
		out = append(out, domain.Participant{
			ID:          fmt.Sprintf("t%d", i),
			Type:        domain.ParticipantAdult,
			DisplayName: fmt.Sprintf("Tester %d", i),
			Age:         30 + i,
		})
	}
	return out
}

func TestService_Book_CapacityScenario(t *testing.T) {
	notifier := new(mockNotifier)
	notifier.On("CapacityChanged", mock.Anything, mock.Anything).Return()
	f := newFixture(t, Options{Notifier: notifier})
	ctx := context.Background()

	assert.Equal(t, domain.Capacity{Max: 30, Confirmed: 24, Available: 6}, f.capacity(t, 1987))

	res, err := f.svc.Book(ctx, "TEST0001", 1987, adults(2))
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, res.Status)
	require.Len(t, res.BookingIDs, 2)

	after := f.capacity(t, 1987)
	assert.Equal(t, domain.Capacity{Max: 30, Confirmed: 26, Available: 4}, after)
	assert.Equal(t, views.CapacityLimited, views.ClassifyCapacity(after))
	notifier.AssertCalled(t, "CapacityChanged", int64(1987), domain.Capacity{Max: 30, Confirmed: 26, Available: 4})

	cancel, err := f.svc.Cancel(ctx, res.BookingIDs[0], "TEST0001", 1987, "")
	require.NoError(t, err)
	assert.Equal(t, StatusCancelled, cancel.Status)
	assert.Equal(t, domain.Capacity{Max: 30, Confirmed: 25, Available: 5}, f.capacity(t, 1987))
	notifier.AssertCalled(t, "CapacityChanged", int64(1987), domain.Capacity{Max: 30, Confirmed: 25, Available: 5})
}

func TestService_Book_StartTimeIsNotAGuard(t *testing.T) {
	f := newFixture(t, Options{})

	res, err := f.svc.Book(context.Background(), "TEST0001", 1994, adults(1))
	require.NoError(t, err, "a started event is only shown as past")
	require.Len(t, res.BookingIDs, 1)
	assert.Equal(t, 23, f.capacity(t, 1994).Confirmed)
}

func TestService_Book_RejectsWithoutSideEffects(t *testing.T) {
	eva := domain.Participant{ID: "5", Type: domain.ParticipantChild, DisplayName: "Eva N.", Age: 9}
	adam := domain.Participant{ID: "1", Type: domain.ParticipantAdult, DisplayName: "Adam N.", Age: 45}

	tests := []struct {
		name    string
		bnr     string
		eventID int64
		party   []domain.Participant
		wantErr error
	}{
		{"capacity exceeded", "TEST0001", 1991, adults(6), ErrCapacityExceeded},
		{"age not eligible", seed.DemoBNR, 1988, []domain.Participant{adam, eva}, ErrAgeIneligible},
		{"already booked", seed.DemoBNR, 1987, []domain.Participant{adam}, ErrDuplicateBooking},
		{"repeated in request", "TEST0001", 1988, []domain.Participant{adam, adam}, ErrDuplicateBooking},
		{"unknown event", "TEST0001", 4242, adults(1), ErrEventNotFound},
		{"nobody selected", "TEST0001", 1988, nil, ErrNoParticipants},
		{"missing reservation", " ", 1988, adults(1), ErrMissingReservation},
		{"invalid participant", "TEST0001", 1988, []domain.Participant{{ID: "x", Type: "Robot", DisplayName: "R2", Age: 30}}, ErrInvalidParticipant},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t, Options{})
			ctx := context.Background()
			before := f.capacity(t, 1988)
			beforeTarget := domain.Capacity{}
			if tt.eventID != 4242 {
				beforeTarget = f.capacity(t, tt.eventID)
			}
			all, err := f.bookings.List(ctx)
			require.NoError(t, err)

			_, err = f.svc.Book(ctx, tt.bnr, tt.eventID, tt.party)

			assert.ErrorIs(t, err, tt.wantErr)
			assert.Equal(t, before, f.capacity(t, 1988))
			if tt.eventID != 4242 {
				assert.Equal(t, beforeTarget, f.capacity(t, tt.eventID))
			}
			after, err := f.bookings.List(ctx)
			require.NoError(t, err)
			assert.Len(t, after, len(all))
		})
	}
}

func TestService_Book_ConcurrentRequestsNeverOverbook(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	require.Equal(t, 5, f.capacity(t, 1991).Available)

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		ok       int
		rejected int
	)
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, err := f.svc.Book(ctx, fmt.Sprintf("RACE%02d", i), 1991, adults(1))
			mu.Lock()
			defer mu.Unlock()
			if err == nil {
				ok++
			} else if assert.ErrorIs(t, err, ErrCapacityExceeded) {
				rejected++
			}
		}(i)
	}
	wg.Wait()

	assert.Equal(t, 5, ok)
	assert.Equal(t, 5, rejected)
	assert.Equal(t, domain.Capacity{Max: 15, Confirmed: 15, Available: 0}, f.capacity(t, 1991))
}

func TestService_Book_CancelledContextAppliesNothing(t *testing.T) {
	f := newFixture(t, Options{Latency: time.Hour})
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := f.svc.Book(ctx, "TEST0001", 1987, adults(1))

	assert.ErrorIs(t, err, context.Canceled)
	assert.Equal(t, 24, f.capacity(t, 1987).Confirmed)
}

func TestService_Cancel_NoMatchIsSilent(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	tests := []struct {
		name      string
		bookingID int64
		bnr       string
		eventID   int64
	}{
		{"other reservation", 555001, seed.SecondBNR, 1987},
		{"unknown booking", 999999, seed.DemoBNR, 1987},
		{"other event", 555001, seed.DemoBNR, 1988},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := f.svc.Cancel(ctx, tt.bookingID, tt.bnr, tt.eventID, "")
			require.NoError(t, err)
			assert.Equal(t, StatusCancelled, res.Status)
		})
	}

	assert.Equal(t, 24, f.capacity(t, 1987).Confirmed)
	b, err := f.bookings.GetByID(ctx, 555001)
	require.NoError(t, err)
	assert.Equal(t, domain.BookingConfirmed, b.Status)
}

func TestService_Cancel_Twice(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	_, err := f.svc.Cancel(ctx, 555001, seed.DemoBNR, 1987, "1")
	require.NoError(t, err)
	_, err = f.svc.Cancel(ctx, 555001, seed.DemoBNR, 1987, "1")
	require.NoError(t, err)

	assert.Equal(t, domain.Capacity{Max: 30, Confirmed: 23, Available: 7}, f.capacity(t, 1987))
}

func TestService_GetUserBookings(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	got, err := f.svc.GetUserBookings(ctx, seed.DemoBNR)
	require.NoError(t, err)
	assert.Equal(t, seed.DemoBNR, got.BNR)
	assert.Equal(t, "Hotel Aurora", got.Hotel.Name)
	require.Len(t, got.Activities, 7)
	assert.Equal(t, int64(1996), got.Activities[0].EventID, "ordered by event start")
	assert.Equal(t, int64(1992), got.Activities[6].EventID)

	var paddle domain.BookedActivity
	for _, a := range got.Activities {
		if a.EventID == 1987 {
			paddle = a
		}
	}
	assert.Equal(t, "Paddleboard", paddle.Title)
	assert.Equal(t, "Beach bar", paddle.Location.Label)
	assert.Len(t, paddle.Bookings, 3)

	_, err = f.svc.Cancel(ctx, 555012, seed.DemoBNR, 1987, "")
	require.NoError(t, err)

	got, err = f.svc.GetUserBookings(ctx, seed.DemoBNR)
	require.NoError(t, err)
	for _, a := range got.Activities {
		for _, b := range a.Bookings {
			assert.NotEqual(t, int64(555012), b.BookingID, "cancelled booking must not reappear")
		}
	}

	other, err := f.svc.GetUserBookings(ctx, seed.SecondBNR)
	require.NoError(t, err)
	require.Len(t, other.Activities, 1)
	assert.Equal(t, int64(555020), other.Activities[0].Bookings[0].BookingID)
}

func TestService_GetProgram(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()
	hotelID := seed.Hotel().HotelID

	all, err := f.svc.GetProgram(ctx, "", "", "")
	require.NoError(t, err)
	assert.Len(t, all.Activities, 6)

	day, err := f.svc.GetProgram(ctx, "2025-07-01", "2025-07-01", hotelID)
	require.NoError(t, err)
	assert.Equal(t, "Hotel Aurora", day.Hotel.Name)
	require.Len(t, day.Activities, 3)
	assert.Equal(t, int64(1001), day.Activities[0].ActivityID)
	require.Len(t, day.Activities[0].Events, 1)
	assert.Equal(t, int64(1987), day.Activities[0].Events[0].EventID)
	assert.Len(t, day.Activities[1].Events, 2)

	_, err = f.svc.GetProgram(ctx, "", "", "NOPE")
	assert.ErrorIs(t, err, ErrHotelNotFound)

	_, err = f.svc.GetProgram(ctx, "2025-07-08", "2025-07-01", "")
	assert.ErrorIs(t, err, ErrInvalidRange)
}

func TestService_GetAnimatorRegistrations(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	all, err := f.svc.GetAnimatorRegistrations(ctx, "", "", 0)
	require.NoError(t, err)
	assert.Len(t, all.Registrations, 11)

	yoga, err := f.svc.GetAnimatorRegistrations(ctx, "", "", 1003)
	require.NoError(t, err)
	require.Len(t, yoga.Registrations, 3)
	for _, r := range yoga.Registrations {
		assert.Equal(t, "Sunset Yoga", r.ActivityTitle)
		assert.Equal(t, "Hotel Aurora", r.Hotel.Name)
	}

	second, err := f.svc.GetAnimatorRegistrations(ctx, "2025-07-02", "2025-07-02", 1003)
	require.NoError(t, err)
	require.Len(t, second.Registrations, 1)
	assert.Equal(t, int64(1992), second.Registrations[0].EventID)
	assert.Equal(t, "2025-07-02", second.Range.DateFrom)

	none, err := f.svc.GetAnimatorRegistrations(ctx, "", "", 777)
	require.NoError(t, err)
	assert.Empty(t, none.Registrations)
}

func TestService_ReservationLookups(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	res, err := f.svc.FindReservation(ctx, " "+seed.SecondBNR+" ")
	require.NoError(t, err)
	assert.Len(t, res.Participants, 2)

	_, err = f.svc.FindReservation(ctx, "000000000")
	assert.ErrorIs(t, err, ErrReservationNotFound)

	regs, err := f.svc.GetReservationRegistrations(ctx, "000000000")
	require.NoError(t, err)
	assert.NotNil(t, regs)
	assert.Empty(t, regs)

	regs, err = f.svc.GetReservationRegistrations(ctx, seed.SecondBNR)
	require.NoError(t, err)
	require.Len(t, regs, 1)
	assert.Equal(t, "Marie K.", regs[0].Participant.DisplayName)
}

func TestService_Register(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	res, err := f.svc.Register(ctx, seed.SecondBNR, map[int64][]string{
		1992: {"10"},
		1994: {"10"},
	})
	require.NoError(t, err, "past events may be registered by staff")
	assert.Len(t, res.BookingIDs, 2)
	assert.Equal(t, 6, f.capacity(t, 1992).Confirmed)
	assert.Equal(t, 23, f.capacity(t, 1994).Confirmed)
}

func TestService_Register_AllOrNothing(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	// 1988 is booked first and must be rolled back when Jan fails on 1992.
	_, err := f.svc.Register(ctx, seed.SecondBNR, map[int64][]string{
		1988: {"10"},
		1992: {"11"},
	})
	assert.ErrorIs(t, err, ErrAgeIneligible)
	assert.Equal(t, 18, f.capacity(t, 1988).Confirmed)
	assert.Equal(t, 5, f.capacity(t, 1992).Confirmed)
	regs, err := f.svc.GetReservationRegistrations(ctx, seed.SecondBNR)
	require.NoError(t, err)
	assert.Len(t, regs, 1)

	_, err = f.svc.Register(ctx, seed.SecondBNR, map[int64][]string{1992: {"99"}})
	assert.ErrorIs(t, err, ErrParticipantNotFound)

	_, err = f.svc.Register(ctx, "000000000", map[int64][]string{1992: {"10"}})
	assert.ErrorIs(t, err, ErrReservationNotFound)

	_, err = f.svc.Register(ctx, seed.SecondBNR, map[int64][]string{1992: {}})
	assert.ErrorIs(t, err, ErrNoParticipants)
}

func TestService_CancelRegistration(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	_, err := f.svc.CancelRegistration(ctx, 555020)
	require.NoError(t, err)
	assert.Equal(t, 9, f.capacity(t, 1991).Confirmed)

	_, err = f.svc.CancelRegistration(ctx, 555020)
	assert.ErrorIs(t, err, ErrBookingNotFound)

	_, err = f.svc.CancelRegistration(ctx, 1)
	assert.ErrorIs(t, err, ErrBookingNotFound)
	assert.Equal(t, 9, f.capacity(t, 1991).Confirmed)
}

func TestService_Dashboard(t *testing.T) {
	f := newFixture(t, Options{})
	ctx := context.Background()

	stats, err := f.svc.Dashboard(ctx, f.svc.Now())
	require.NoError(t, err)
	assert.Equal(t, 11, stats.TotalConfirmed)
	assert.Equal(t, 3, stats.UpcomingActivities)
	assert.Equal(t, 6, stats.UpcomingEvents)
	assert.Zero(t, stats.RegistrationsToday)
	assert.Len(t, stats.RecentChanges, 10)

	booked, err := f.svc.Book(ctx, "TEST0001", 1988, adults(1))
	require.NoError(t, err)
	_, err = f.svc.CancelRegistration(ctx, 555020)
	require.NoError(t, err)

	today := domain.WallClock(time.Now(), time.UTC)
	stats, err = f.svc.Dashboard(ctx, today)
	require.NoError(t, err)
	assert.Equal(t, 11, stats.TotalConfirmed)
	assert.Equal(t, 1, stats.RegistrationsToday)
	assert.Equal(t, 1, stats.CancellationsToday)
	assert.Zero(t, stats.UpcomingActivities)

	recentIDs := []int64{stats.RecentChanges[0].BookingID, stats.RecentChanges[1].BookingID}
	assert.ElementsMatch(t, []int64{booked.BookingIDs[0], 555020}, recentIDs)
}
