package availability

import (
	"context"
	"testing"

	"adventura/internal/activities"
	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	slots   []AvailabilitySlot
	created []AvailabilitySlot
}

func (r *fakeRepo) CreateSlots(ctx context.Context, slots []AvailabilitySlot) error {
	r.created = append(r.created, slots...)
	r.slots = append(r.slots, slots...)
	return nil
}

func (r *fakeRepo) ListSlots(ctx context.Context, activityID uuid.UUID, date string) ([]AvailabilitySlot, error) {
	var result []AvailabilitySlot
	for _, s := range r.slots {
		if s.ActivityID == activityID && s.Date == date {
			result = append(result, s)
		}
	}
	return result, nil
}

func (r *fakeRepo) ListOpenDates(ctx context.Context, activityID uuid.UUID) ([]string, error) {
	seen := make(map[string]bool)
	var dates []string
	for _, s := range r.slots {
		if s.ActivityID == activityID && s.SeatsRemaining > 0 && !seen[s.Date] {
			seen[s.Date] = true
			dates = append(dates, s.Date)
		}
	}
	return dates, nil
}

type fakeCatalog struct {
	records map[uuid.UUID]*activities.Activity
}

func (c *fakeCatalog) GetActivityRecord(ctx context.Context, id uuid.UUID) (*activities.Activity, error) {
	activity, ok := c.records[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.CodeActivityNotFound, "activity not found")
	}
	return activity, nil
}

func newTestService(t *testing.T) (Service, *fakeRepo, uuid.UUID, uuid.UUID) {
	t.Helper()

	recurringID := uuid.New()
	oneTimeID := uuid.New()

	catalog := &fakeCatalog{records: map[uuid.UUID]*activities.Activity{
		recurringID: {
			ID:                 recurringID,
			Capacity:           10,
			ListingKind:        activities.ListingRecurring,
			AvailabilityStatus: true,
		},
		oneTimeID: {
			ID:                 oneTimeID,
			Capacity:           20,
			ListingKind:        activities.ListingOneTime,
			AvailabilityStatus: true,
		},
	}}

	repo := &fakeRepo{}
	return NewService(repo, catalog), repo, recurringID, oneTimeID
}

func TestCreateSlots(t *testing.T) {
	svc, repo, recurringID, _ := newTestService(t)

	created, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		ActivityID: recurringID.String(),
		Date:       "2026-09-20",
		Slots:      []string{"10:00 AM", "2:00 PM"},
		Seats:      6,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, created)
	require.Len(t, repo.created, 2)
	assert.Equal(t, 6, repo.created[0].SeatsRemaining)
	assert.Equal(t, "10:00 AM", repo.created[0].Slot)
}

func TestCreateSlots_RejectsOneTimeActivity(t *testing.T) {
	svc, _, _, oneTimeID := newTestService(t)

	_, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		ActivityID: oneTimeID.String(),
		Date:       "2026-09-20",
		Slots:      []string{"10:00 AM"},
		Seats:      5,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestCreateSlots_RejectsSeatsAboveCapacity(t *testing.T) {
	svc, _, recurringID, _ := newTestService(t)

	_, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		ActivityID: recurringID.String(),
		Date:       "2026-09-20",
		Slots:      []string{"10:00 AM"},
		Seats:      11,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestCreateSlots_UnknownActivity(t *testing.T) {
	svc, _, _, _ := newTestService(t)

	_, err := svc.CreateSlots(context.Background(), CreateSlotsRequest{
		ActivityID: uuid.New().String(),
		Date:       "2026-09-20",
		Slots:      []string{"10:00 AM"},
		Seats:      5,
	})
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeActivityNotFound))
}

func TestListOpenSlots_FiltersDepleted(t *testing.T) {
	svc, repo, recurringID, _ := newTestService(t)

	repo.slots = []AvailabilitySlot{
		{ActivityID: recurringID, Date: "2026-09-20", Slot: "10:00 AM", SeatsRemaining: 4},
		{ActivityID: recurringID, Date: "2026-09-20", Slot: "2:00 PM", SeatsRemaining: 0},
		{ActivityID: recurringID, Date: "2026-09-21", Slot: "10:00 AM", SeatsRemaining: 2},
	}

	open, err := svc.ListOpenSlots(context.Background(), recurringID, "2026-09-20")
	require.NoError(t, err)

	require.Len(t, open, 1)
	assert.Equal(t, "10:00 AM", open[0].Slot)
	assert.Equal(t, 4, open[0].SeatsRemaining)
}

func TestListOpenDates(t *testing.T) {
	svc, repo, recurringID, _ := newTestService(t)

	repo.slots = []AvailabilitySlot{
		{ActivityID: recurringID, Date: "2026-09-20", Slot: "10:00 AM", SeatsRemaining: 0},
		{ActivityID: recurringID, Date: "2026-09-21", Slot: "10:00 AM", SeatsRemaining: 3},
		{ActivityID: recurringID, Date: "2026-09-22", Slot: "2:00 PM", SeatsRemaining: 1},
	}

	dates, err := svc.ListOpenDates(context.Background(), recurringID)
	require.NoError(t, err)
	assert.Equal(t, []string{"2026-09-21", "2026-09-22"}, dates)
}
