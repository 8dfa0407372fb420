package availability

import (
	"context"

	"adventura/internal/activities"
	"adventura/internal/shared/apperrors"
	"adventura/internal/shared/constants"
	"adventura/pkg/cache"

	"github.com/google/uuid"
)

// ActivityCatalog interface for catalog lookups (to avoid circular dependency)
type ActivityCatalog interface {
	GetActivityRecord(ctx context.Context, id uuid.UUID) (*activities.Activity, error)
}

// Service interface defines the contract for availability ledger reads and
// administrative slot creation. Seat counters themselves are mutated only by
// the reservation service's transaction.
type Service interface {
	CreateSlots(ctx context.Context, req CreateSlotsRequest) (int, error)
	ListOpenSlots(ctx context.Context, activityID uuid.UUID, date string) ([]SlotInfo, error)
	ListOpenDates(ctx context.Context, activityID uuid.UUID) ([]string, error)

	// InvalidateActivityDate drops cached slot reads after a seat mutation.
	InvalidateActivityDate(ctx context.Context, activityID uuid.UUID, date string)

	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	catalog      ActivityCatalog
	cacheService cache.Service
}

func NewService(repo Repository, catalog ActivityCatalog) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

// CreateSlots defines capacity for one or more slot labels on a date.
// Only recurring, active activities carry ledger rows, and a slot can never
// be created with more seats than the activity's capacity.
func (s *service) CreateSlots(ctx context.Context, req CreateSlotsRequest) (int, error) {
	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return 0, apperrors.Validation("invalid activity_id")
	}

	activity, err := s.catalog.GetActivityRecord(ctx, activityID)
	if err != nil {
		return 0, err
	}
	if activity.ListingKind != activities.ListingRecurring {
		return 0, apperrors.Validation("availability slots only apply to recurring activities")
	}
	if !activity.IsActive() {
		return 0, apperrors.Validation("activity is deactivated")
	}
	if req.Seats > activity.Capacity {
		return 0, apperrors.Validation("seats exceed activity capacity")
	}

	slots := make([]AvailabilitySlot, 0, len(req.Slots))
	for _, label := range req.Slots {
		slots = append(slots, AvailabilitySlot{
			ActivityID:     activityID,
			Date:           req.Date,
			Slot:           label,
			SeatsRemaining: req.Seats,
		})
	}

	if err := s.repo.CreateSlots(ctx, slots); err != nil {
		return 0, err
	}

	s.InvalidateActivityDate(ctx, activityID, req.Date)
	return len(slots), nil
}

func (s *service) ListOpenSlots(ctx context.Context, activityID uuid.UUID, date string) ([]SlotInfo, error) {
	key := constants.AvailabilitySlotsKey(activityID.String(), date)

	if s.cacheService != nil {
		var cached []SlotInfo
		if err := s.cacheService.Get(ctx, key, &cached); err == nil {
			return cached, nil
		}
	}

	slots, err := s.repo.ListSlots(ctx, activityID, date)
	if err != nil {
		return nil, apperrors.Internal(err)
	}

	open := make([]SlotInfo, 0, len(slots))
	for _, slot := range slots {
		if slot.SeatsRemaining > 0 {
			open = append(open, SlotInfo{Slot: slot.Slot, SeatsRemaining: slot.SeatsRemaining})
		}
	}

	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, key, open, constants.TTL_AVAILABILITY)
	}
	return open, nil
}

func (s *service) ListOpenDates(ctx context.Context, activityID uuid.UUID) ([]string, error) {
	dates, err := s.repo.ListOpenDates(ctx, activityID)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return dates, nil
}

func (s *service) InvalidateActivityDate(ctx context.Context, activityID uuid.UUID, date string) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.AvailabilitySlotsKey(activityID.String(), date))
}
