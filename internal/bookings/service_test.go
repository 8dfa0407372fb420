package bookings

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeRepo is an in-memory repository mirroring the transactional semantics
// of the Postgres implementation: guarded decrements, conditional status
// flips, compensating increments.
type fakeRepo struct {
	mu       sync.Mutex
	seats    map[string]int
	bookings map[uuid.UUID]*Booking
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		seats:    make(map[string]int),
		bookings: make(map[uuid.UUID]*Booking),
	}
}

func slotKey(activityID uuid.UUID, date, slot string) string {
	return fmt.Sprintf("%s|%s|%s", activityID, date, slot)
}

func (r *fakeRepo) setSeats(activityID uuid.UUID, date, slot string, seats int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seats[slotKey(activityID, date, slot)] = seats
}

func (r *fakeRepo) remainingSeats(activityID uuid.UUID, date, slot string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.seats[slotKey(activityID, date, slot)]
}

func (r *fakeRepo) CreateBooking(ctx context.Context, booking *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeRepo) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.CodeBookingNotFound, "booking not found")
	}
	copied := *booking
	return &copied, nil
}

func (r *fakeRepo) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	booking, ok := r.bookings[id]
	if !ok || booking.Status != from {
		return apperrors.Conflict(apperrors.CodeInvalidTransition,
			fmt.Sprintf("booking is no longer %s", from))
	}
	booking.Status = to
	return nil
}

func (r *fakeRepo) CreateBookingWithSeatReservation(ctx context.Context, booking *Booking) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	key := slotKey(booking.ActivityID, booking.BookingDate, booking.Slot)
	seats, ok := r.seats[key]
	if !ok {
		return apperrors.NotFound(apperrors.CodeSlotNotFound, "no availability for selected date and slot")
	}
	if seats < booking.PartySize {
		return apperrors.Conflict(apperrors.CodeSlotFull,
			fmt.Sprintf("only %d seats remaining, requested %d", seats, booking.PartySize))
	}

	r.seats[key] = seats - booking.PartySize
	booking.ID = uuid.New()
	booking.CreatedAt = time.Now()
	copied := *booking
	r.bookings[booking.ID] = &copied
	return nil
}

func (r *fakeRepo) CancelBookingWithSeatRestore(ctx context.Context, id uuid.UUID, reason string) (*Booking, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	booking, ok := r.bookings[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.CodeBookingNotFound, "booking not found")
	}
	if booking.Status == StatusCancelled {
		return nil, apperrors.Conflict(apperrors.CodeAlreadyCancelled, "booking is already cancelled")
	}

	now := time.Now()
	booking.Status = StatusCancelled
	booking.CancellationReason = reason
	booking.CancelledAt = &now

	if booking.Slot != "" {
		r.seats[slotKey(booking.ActivityID, booking.BookingDate, booking.Slot)] += booking.PartySize
	}

	copied := *booking
	return &copied, nil
}

func (r *fakeRepo) GetBookingsByClientID(ctx context.Context, clientID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []Booking
	for _, b := range r.bookings {
		if b.ClientID != nil && *b.ClientID == clientID {
			result = append(result, *b)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeRepo) GetBookingsByProviderUserID(ctx context.Context, providerUserID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var result []Booking
	for _, b := range r.bookings {
		if b.BookedByProviderUserID != nil && *b.BookedByProviderUserID == providerUserID {
			result = append(result, *b)
		}
	}
	return result, int64(len(result)), nil
}

func (r *fakeRepo) GetSlotSeats(ctx context.Context, activityID uuid.UUID, date, slot string) (int, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	seats, ok := r.seats[slotKey(activityID, date, slot)]
	if !ok {
		return 0, apperrors.NotFound(apperrors.CodeSlotNotFound, "no availability for selected date and slot")
	}
	return seats, nil
}

type fakeCatalog struct {
	activities map[uuid.UUID]*ActivityInfo
}

func (c *fakeCatalog) GetActivityForBooking(ctx context.Context, id uuid.UUID) (*ActivityInfo, error) {
	activity, ok := c.activities[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.CodeActivityNotFound, "activity not found")
	}
	return activity, nil
}

type fakeLedger struct {
	mu            sync.Mutex
	invalidations []string
}

func (l *fakeLedger) InvalidateActivityDate(ctx context.Context, activityID uuid.UUID, date string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.invalidations = append(l.invalidations, slotKey(activityID, date, ""))
}

func (l *fakeLedger) count() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.invalidations)
}

type fakeEmitter struct {
	mu         sync.Mutex
	titles     []string
	recipients []uuid.UUID
}

func (e *fakeEmitter) Notify(ctx context.Context, userID uuid.UUID, title, description, icon string) {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.titles = append(e.titles, title)
	e.recipients = append(e.recipients, userID)
}

func (e *fakeEmitter) count() int {
	e.mu.Lock()
	defer e.mu.Unlock()
	return len(e.titles)
}

func (e *fakeEmitter) received(userID uuid.UUID, title string) bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	for i, t := range e.titles {
		if t == title && e.recipients[i] == userID {
			return true
		}
	}
	return false
}

type fakeUsers struct {
	clientUsers   map[uuid.UUID]uuid.UUID
	providerUsers map[uuid.UUID]uuid.UUID
}

func (u *fakeUsers) GetClientUserID(ctx context.Context, clientID uuid.UUID) (uuid.UUID, error) {
	userID, ok := u.clientUsers[clientID]
	if !ok {
		return uuid.Nil, apperrors.Validation("invalid client reference")
	}
	return userID, nil
}

func (u *fakeUsers) GetProviderUserID(ctx context.Context, providerID uuid.UUID) (uuid.UUID, error) {
	userID, ok := u.providerUsers[providerID]
	if !ok {
		return uuid.Nil, apperrors.Validation("invalid provider reference")
	}
	return userID, nil
}

type fixture struct {
	repo    *fakeRepo
	catalog *fakeCatalog
	ledger  *fakeLedger
	emitter *fakeEmitter
	users   *fakeUsers
	service Service

	recurringID         uuid.UUID
	oneTimeID           uuid.UUID
	providerID          uuid.UUID
	providerUserID      uuid.UUID
	otherProviderID     uuid.UUID
	otherProviderUserID uuid.UUID
	clientID            uuid.UUID
	clientUserID        uuid.UUID
	ownerClientID       uuid.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()

	f := &fixture{
		repo:                newFakeRepo(),
		ledger:              &fakeLedger{},
		emitter:             &fakeEmitter{},
		recurringID:         uuid.New(),
		oneTimeID:           uuid.New(),
		providerID:          uuid.New(),
		providerUserID:      uuid.New(),
		otherProviderID:     uuid.New(),
		otherProviderUserID: uuid.New(),
		clientID:            uuid.New(),
		clientUserID:        uuid.New(),
		ownerClientID:       uuid.New(),
	}

	f.catalog = &fakeCatalog{activities: map[uuid.UUID]*ActivityInfo{
		f.recurringID: {
			ID:         f.recurringID,
			ProviderID: f.providerID,
			Price:      45.00,
			Capacity:   8,
			Recurring:  true,
			Active:     true,
		},
		f.oneTimeID: {
			ID:         f.oneTimeID,
			ProviderID: f.providerID,
			Price:      30.00,
			Capacity:   20,
			Recurring:  false,
			Active:     true,
		},
	}}

	f.users = &fakeUsers{
		clientUsers: map[uuid.UUID]uuid.UUID{
			f.clientID: f.clientUserID,
			// ownerClientID belongs to the same user who owns the provider
			f.ownerClientID: f.providerUserID,
		},
		providerUsers: map[uuid.UUID]uuid.UUID{
			f.providerID:      f.providerUserID,
			f.otherProviderID: f.otherProviderUserID,
		},
	}

	f.service = NewService(f.repo, f.catalog, f.ledger, f.emitter, f.users)
	return f
}

func (f *fixture) createRequest() CreateBookingRequest {
	return CreateBookingRequest{
		ActivityID:  f.recurringID.String(),
		ClientID:    f.clientID.String(),
		BookingDate: "2026-09-15",
		Slot:        "10:00 AM",
		TotalPrice:  45.00,
	}
}

func TestReserve_RecurringDecrementsSeats(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	partySize := 3
	req.PartySize = &partySize
	req.TotalPrice = 135.00

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(StatusPending), booking.Status)
	assert.Equal(t, 3, booking.PartySize)
	assert.Equal(t, 135.00, booking.TotalPrice)
	assert.Equal(t, 5, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
	assert.Equal(t, 1, f.ledger.count())
}

func TestReserve_PartySizeDefaultsToOne(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	booking, err := f.service.Reserve(context.Background(), f.createRequest())
	require.NoError(t, err)

	assert.Equal(t, 1, booking.PartySize)
	assert.Equal(t, 45.00, booking.TotalPrice)
	assert.Equal(t, 7, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestReserve_OneTimeBypassesLedger(t *testing.T) {
	f := newFixture(t)

	req := f.createRequest()
	req.ActivityID = f.oneTimeID.String()
	req.Slot = ""

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(StatusPending), booking.Status)
	assert.Empty(t, booking.Slot)
	assert.Equal(t, 0, f.ledger.count(), "one-time bookings must not touch the ledger")
}

func TestReserve_NoAvailabilityForSlot(t *testing.T) {
	f := newFixture(t)
	// No ledger row for the requested date/slot

	_, err := f.service.Reserve(context.Background(), f.createRequest())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSlotNotFound))
}

func TestReserve_SlotFull(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 2)

	req := f.createRequest()
	partySize := 5
	req.PartySize = &partySize

	_, err := f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSlotFull))
	assert.Equal(t, 2, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"),
		"rejected reservation must not consume seats")
}

func TestReserve_SelfBookingForbidden(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	req.ClientID = f.ownerClientID.String()

	_, err := f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSelfBooking))
}

func TestReserve_ProviderOnBehalfOfWalkIn(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	req.ClientID = ""
	req.BookedByProviderUserID = f.otherProviderUserID.String()

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)

	assert.Empty(t, booking.ClientID)
	assert.Equal(t, f.otherProviderUserID.String(), booking.BookedByProviderUserID)
	assert.Equal(t, 7, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestReserve_ProviderSelfBookingForbidden(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	req.ClientID = ""
	req.BookedByProviderUserID = f.providerUserID.String()

	_, err := f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeSelfBooking))
	assert.Equal(t, 8, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestReserve_InvalidPartySize(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	partySize := 0
	req.PartySize = &partySize

	_, err := f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidPartySize))
}

func TestReserve_NonPositiveTotalPrice(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	req.TotalPrice = 0

	_, err := f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
	assert.Equal(t, 8, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestReserve_RequesterValidation(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	// Neither client nor provider
	req := f.createRequest()
	req.ClientID = ""
	_, err := f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	// Both client and provider
	req = f.createRequest()
	req.BookedByProviderUserID = f.providerUserID.String()
	_, err = f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestReserve_SlotRequiredForRecurring(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	req.Slot = ""

	_, err := f.service.Reserve(context.Background(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestReserve_InactiveActivity(t *testing.T) {
	f := newFixture(t)
	f.catalog.activities[f.recurringID].Active = false
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	_, err := f.service.Reserve(context.Background(), f.createRequest())
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestReserve_ConcurrentNoOverbook(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 5)

	const attempts = 25
	var wg sync.WaitGroup
	var mu sync.Mutex
	successes := 0

	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := f.service.Reserve(context.Background(), f.createRequest())
			if err == nil {
				mu.Lock()
				successes++
				mu.Unlock()
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 5, successes, "exactly as many reservations as seats must succeed")
	assert.Equal(t, 0, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestCancel_RestoresSeats(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	partySize := 4
	req.PartySize = &partySize

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 4, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))

	bookingID := uuid.MustParse(booking.ID)
	cancelled, err := f.service.Cancel(context.Background(), bookingID, "change of plans")
	require.NoError(t, err)

	assert.Equal(t, string(StatusCancelled), cancelled.Status)
	assert.Equal(t, "change of plans", cancelled.CancellationReason)
	assert.NotNil(t, cancelled.CancelledAt)
	assert.Equal(t, 8, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestCancel_DoubleCancelRejected(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	booking, err := f.service.Reserve(context.Background(), f.createRequest())
	require.NoError(t, err)

	bookingID := uuid.MustParse(booking.ID)
	_, err = f.service.Cancel(context.Background(), bookingID, "first")
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), bookingID, "second")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeAlreadyCancelled))

	// Seats restored exactly once
	assert.Equal(t, 8, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestCancel_OneTimeDoesNotTouchLedger(t *testing.T) {
	f := newFixture(t)

	req := f.createRequest()
	req.ActivityID = f.oneTimeID.String()
	req.Slot = ""

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)

	cancelled, err := f.service.Cancel(context.Background(), uuid.MustParse(booking.ID), "")
	require.NoError(t, err)
	assert.Equal(t, string(StatusCancelled), cancelled.Status)
	assert.Equal(t, 0, f.ledger.count())
}

func TestCancel_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.service.Cancel(context.Background(), uuid.New(), "")
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeBookingNotFound))
}

func TestUpdateStatus_PendingToConfirmed(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	booking, err := f.service.Reserve(context.Background(), f.createRequest())
	require.NoError(t, err)

	updated, err := f.service.UpdateStatus(context.Background(), uuid.MustParse(booking.ID), StatusConfirmed)
	require.NoError(t, err)
	assert.Equal(t, string(StatusConfirmed), updated.Status)
}

func TestUpdateStatus_CancelledIsTerminal(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	booking, err := f.service.Reserve(context.Background(), f.createRequest())
	require.NoError(t, err)

	bookingID := uuid.MustParse(booking.ID)
	_, err = f.service.Cancel(context.Background(), bookingID, "done")
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), bookingID, StatusConfirmed)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeInvalidTransition))
}

func TestUpdateStatus_CancellationRestoresSeats(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	partySize := 2
	req.PartySize = &partySize

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 6, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))

	updated, err := f.service.UpdateStatus(context.Background(), uuid.MustParse(booking.ID), StatusCancelled)
	require.NoError(t, err)

	assert.Equal(t, string(StatusCancelled), updated.Status)
	assert.Equal(t, 8, f.repo.remainingSeats(f.recurringID, "2026-09-15", "10:00 AM"))
}

func TestCheckAvailability(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 3)

	query := CheckAvailabilityQuery{
		ActivityID: f.recurringID.String(),
		Date:       "2026-09-15",
		Slot:       "10:00 AM",
		PartySize:  2,
	}

	result, err := f.service.CheckAvailability(context.Background(), query)
	require.NoError(t, err)
	assert.True(t, result.Available)
	assert.Equal(t, 3, result.SeatsRemaining)

	query.PartySize = 4
	result, err = f.service.CheckAvailability(context.Background(), query)
	require.NoError(t, err)
	assert.False(t, result.Available)
}

func TestCheckAvailability_OneTime(t *testing.T) {
	f := newFixture(t)

	query := CheckAvailabilityQuery{
		ActivityID: f.oneTimeID.String(),
		Date:       "2026-09-15",
	}

	result, err := f.service.CheckAvailability(context.Background(), query)
	require.NoError(t, err)
	assert.True(t, result.Available)
}

func TestReserve_EmitsNotification(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	_, err := f.service.Reserve(context.Background(), f.createRequest())
	require.NoError(t, err)

	// Emission is fire-and-forget on a goroutine
	require.Eventually(t, func() bool {
		return f.emitter.count() == 1
	}, time.Second, 10*time.Millisecond)
}

func TestCancel_NotifiesClientRequester(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	booking, err := f.service.Reserve(context.Background(), f.createRequest())
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), uuid.MustParse(booking.ID), "changed plans")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return f.emitter.received(f.clientUserID, "Booking Cancelled")
	}, time.Second, 10*time.Millisecond)
}

func TestCancel_NotifiesProviderRequester(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	req.ClientID = ""
	req.BookedByProviderUserID = f.otherProviderUserID.String()

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)

	_, err = f.service.Cancel(context.Background(), uuid.MustParse(booking.ID), "")
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return f.emitter.received(f.otherProviderUserID, "Booking Cancelled")
	}, time.Second, 10*time.Millisecond)
}

func TestUpdateStatus_ConfirmNotifiesProviderRequester(t *testing.T) {
	f := newFixture(t)
	f.repo.setSeats(f.recurringID, "2026-09-15", "10:00 AM", 8)

	req := f.createRequest()
	req.ClientID = ""
	req.BookedByProviderUserID = f.otherProviderUserID.String()

	booking, err := f.service.Reserve(context.Background(), req)
	require.NoError(t, err)

	_, err = f.service.UpdateStatus(context.Background(), uuid.MustParse(booking.ID), StatusConfirmed)
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return f.emitter.received(f.otherProviderUserID, "Booking Confirmed")
	}, time.Second, 10*time.Millisecond)
}
