package activities

import (
	"context"
	"testing"
	"time"

	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	records    map[uuid.UUID]*Activity
	trending   []uuid.UUID
	expiredIDs []uuid.UUID
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{records: make(map[uuid.UUID]*Activity)}
}

func (r *fakeRepo) Create(ctx context.Context, activity *Activity) error {
	activity.ID = uuid.New()
	activity.CreatedAt = time.Now()
	r.records[activity.ID] = activity
	return nil
}

func (r *fakeRepo) GetByID(ctx context.Context, id uuid.UUID) (*Activity, error) {
	activity, ok := r.records[id]
	if !ok {
		return nil, apperrors.NotFound(apperrors.CodeActivityNotFound, "activity not found")
	}
	copied := *activity
	return &copied, nil
}

func (r *fakeRepo) List(ctx context.Context, query ActivityListQuery) ([]Activity, int64, error) {
	var result []Activity
	for _, a := range r.records {
		if !query.IncludeAll && !a.AvailabilityStatus {
			continue
		}
		result = append(result, *a)
	}
	return result, int64(len(result)), nil
}

func (r *fakeRepo) Update(ctx context.Context, activity *Activity) error {
	copied := *activity
	r.records[activity.ID] = &copied
	return nil
}

func (r *fakeRepo) SetAvailabilityStatus(ctx context.Context, id uuid.UUID, active bool) error {
	activity, ok := r.records[id]
	if !ok {
		return apperrors.NotFound(apperrors.CodeActivityNotFound, "activity not found")
	}
	activity.AvailabilityStatus = active
	return nil
}

func (r *fakeRepo) DeactivateExpiredOneTime(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	for _, a := range r.records {
		if a.AvailabilityStatus && a.IsExpired(now) {
			a.AvailabilityStatus = false
			ids = append(ids, a.ID)
		}
	}
	r.expiredIDs = ids
	return ids, nil
}

func (r *fakeRepo) TrendingCandidates(ctx context.Context, since time.Time, minBookings int) ([]uuid.UUID, error) {
	return r.trending, nil
}

func (r *fakeRepo) ReplaceTrending(ctx context.Context, ids []uuid.UUID) error {
	for _, a := range r.records {
		a.IsTrending = false
	}
	for _, id := range ids {
		if a, ok := r.records[id]; ok {
			a.IsTrending = true
		}
	}
	return nil
}

func validCreateRequest() CreateActivityRequest {
	return CreateActivityRequest{
		Name:        "Sunrise Kayak Tour",
		Description: "Guided kayak tour",
		Location:    "Harbor Dock 4",
		Price:       45.00,
		Capacity:    8,
		ListingKind: string(ListingRecurring),
		FromTime:    "6:00 AM",
		ToTime:      "8:00 AM",
	}
}

func TestCreateActivity_Recurring(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	providerID := uuid.New()

	resp, err := svc.CreateActivity(context.Background(), providerID, validCreateRequest())
	require.NoError(t, err)

	assert.Equal(t, "Sunrise Kayak Tour", resp.Name)
	assert.True(t, resp.AvailabilityStatus)
	assert.Equal(t, string(ListingRecurring), resp.ListingKind)
}

func TestCreateActivity_RecurringRequiresTimes(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	req := validCreateRequest()
	req.FromTime = ""

	_, err := svc.CreateActivity(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))
}

func TestCreateActivity_OneTimeRequiresEventDate(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	req := validCreateRequest()
	req.ListingKind = string(ListingOneTime)
	req.FromTime = ""
	req.ToTime = ""

	_, err := svc.CreateActivity(context.Background(), uuid.New(), req)
	require.Error(t, err)
	assert.True(t, apperrors.HasCode(err, apperrors.CodeValidation))

	eventDate := time.Now().AddDate(0, 0, 7)
	req.EventDate = &eventDate
	resp, err := svc.CreateActivity(context.Background(), uuid.New(), req)
	require.NoError(t, err)
	assert.Equal(t, string(ListingOneTime), resp.ListingKind)
}

func TestUpdateActivity_OwnershipEnforced(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()

	resp, err := svc.CreateActivity(context.Background(), ownerID, validCreateRequest())
	require.NoError(t, err)
	activityID := uuid.MustParse(resp.ID)

	newName := "Sunset Kayak Tour"
	_, err = svc.UpdateActivity(context.Background(), activityID, uuid.New(), UpdateActivityRequest{Name: &newName})
	require.Error(t, err)

	updated, err := svc.UpdateActivity(context.Background(), activityID, ownerID, UpdateActivityRequest{Name: &newName})
	require.NoError(t, err)
	assert.Equal(t, "Sunset Kayak Tour", updated.Name)
}

func TestDeactivateActivity(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)
	ownerID := uuid.New()

	resp, err := svc.CreateActivity(context.Background(), ownerID, validCreateRequest())
	require.NoError(t, err)
	activityID := uuid.MustParse(resp.ID)

	require.NoError(t, svc.DeactivateActivity(context.Background(), activityID, ownerID))

	record, err := svc.GetActivityRecord(context.Background(), activityID)
	require.NoError(t, err)
	assert.False(t, record.IsActive())
}

func TestDeactivateExpiredOneTime(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	pastDate := time.Now().AddDate(0, 0, -3)
	futureDate := time.Now().AddDate(0, 0, 3)

	expired := &Activity{ListingKind: ListingOneTime, EventDate: &pastDate, AvailabilityStatus: true}
	upcoming := &Activity{ListingKind: ListingOneTime, EventDate: &futureDate, AvailabilityStatus: true}
	require.NoError(t, repo.Create(context.Background(), expired))
	require.NoError(t, repo.Create(context.Background(), upcoming))

	count, err := svc.DeactivateExpiredOneTime(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.False(t, repo.records[expired.ID].AvailabilityStatus)
	assert.True(t, repo.records[upcoming.ID].AvailabilityStatus)
}

func TestRefreshTrending(t *testing.T) {
	repo := newFakeRepo()
	svc := NewService(repo)

	hot := &Activity{ListingKind: ListingRecurring, AvailabilityStatus: true}
	cold := &Activity{ListingKind: ListingRecurring, AvailabilityStatus: true, IsTrending: true}
	require.NoError(t, repo.Create(context.Background(), hot))
	require.NoError(t, repo.Create(context.Background(), cold))
	repo.trending = []uuid.UUID{hot.ID}

	count, err := svc.RefreshTrending(context.Background(), 7*24*time.Hour, 3)
	require.NoError(t, err)

	assert.Equal(t, 1, count)
	assert.True(t, repo.records[hot.ID].IsTrending)
	assert.False(t, repo.records[cold.ID].IsTrending)
}
