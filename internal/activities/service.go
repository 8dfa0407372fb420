package activities

import (
	"context"
	"time"

	"adventura/internal/shared/apperrors"
	"adventura/internal/shared/constants"
	"adventura/pkg/cache"
	"adventura/pkg/logger"

	"github.com/google/uuid"
)

// Service interface defines the contract for catalog business logic
type Service interface {
	CreateActivity(ctx context.Context, providerID uuid.UUID, req CreateActivityRequest) (*ActivityResponse, error)
	GetActivity(ctx context.Context, id uuid.UUID) (*ActivityResponse, error)
	ListActivities(ctx context.Context, query ActivityListQuery) ([]ActivityResponse, int64, error)
	UpdateActivity(ctx context.Context, id, providerID uuid.UUID, req UpdateActivityRequest) (*ActivityResponse, error)
	DeactivateActivity(ctx context.Context, id, providerID uuid.UUID) error

	// Contract consumed by the reservation service (via adapter)
	GetActivityRecord(ctx context.Context, id uuid.UUID) (*Activity, error)

	// Background sweeps
	DeactivateExpiredOneTime(ctx context.Context) (int, error)
	RefreshTrending(ctx context.Context, window time.Duration, minBookings int) (int, error)

	SetCacheService(cacheService cache.Service)
}

type service struct {
	repo         Repository
	cacheService cache.Service
	log          *logger.Logger
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		log:  logger.GetDefault(),
	}
}

func (s *service) SetCacheService(cacheService cache.Service) {
	s.cacheService = cacheService
}

func (s *service) CreateActivity(ctx context.Context, providerID uuid.UUID, req CreateActivityRequest) (*ActivityResponse, error) {
	kind := ListingKind(req.ListingKind)
	if err := validateSchedule(kind, req); err != nil {
		return nil, err
	}

	activity := &Activity{
		ProviderID:         providerID,
		Name:               req.Name,
		Description:        req.Description,
		Location:           req.Location,
		Price:              req.Price,
		Capacity:           req.Capacity,
		ListingKind:        kind,
		FromTime:           req.FromTime,
		ToTime:             req.ToTime,
		EventDate:          req.EventDate,
		AvailabilityStatus: true,
	}

	if err := s.repo.Create(ctx, activity); err != nil {
		return nil, apperrors.Internal(err)
	}

	return toResponse(activity), nil
}

func (s *service) GetActivity(ctx context.Context, id uuid.UUID) (*ActivityResponse, error) {
	key := constants.ActivityDetailKey(id.String())

	if s.cacheService != nil {
		var cached ActivityResponse
		if err := s.cacheService.Get(ctx, key, &cached); err == nil {
			return &cached, nil
		}
	}

	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	resp := toResponse(activity)
	if s.cacheService != nil {
		_ = s.cacheService.Set(ctx, key, resp, constants.TTL_CATALOG_DETAIL)
	}
	return resp, nil
}

func (s *service) ListActivities(ctx context.Context, query ActivityListQuery) ([]ActivityResponse, int64, error) {
	records, total, err := s.repo.List(ctx, query)
	if err != nil {
		return nil, 0, apperrors.Internal(err)
	}

	responses := make([]ActivityResponse, len(records))
	for i := range records {
		responses[i] = *toResponse(&records[i])
	}
	return responses, total, nil
}

func (s *service) UpdateActivity(ctx context.Context, id, providerID uuid.UUID, req UpdateActivityRequest) (*ActivityResponse, error) {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if activity.ProviderID != providerID {
		return nil, apperrors.Forbidden(apperrors.CodeValidation, "activity does not belong to provider")
	}

	if req.Name != nil {
		activity.Name = *req.Name
	}
	if req.Description != nil {
		activity.Description = *req.Description
	}
	if req.Location != nil {
		activity.Location = *req.Location
	}
	if req.Price != nil {
		activity.Price = *req.Price
	}
	if req.FromTime != nil {
		activity.FromTime = *req.FromTime
	}
	if req.ToTime != nil {
		activity.ToTime = *req.ToTime
	}
	activity.UpdatedAt = time.Now()

	if err := s.repo.Update(ctx, activity); err != nil {
		return nil, apperrors.Internal(err)
	}

	s.invalidateDetail(ctx, id)
	return toResponse(activity), nil
}

// DeactivateActivity soft-deletes a listing. Bookings keep their reference;
// the reservation service rejects new bookings once the flag is off.
func (s *service) DeactivateActivity(ctx context.Context, id, providerID uuid.UUID) error {
	activity, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if activity.ProviderID != providerID {
		return apperrors.Forbidden(apperrors.CodeValidation, "activity does not belong to provider")
	}

	if err := s.repo.SetAvailabilityStatus(ctx, id, false); err != nil {
		return err
	}

	s.invalidateDetail(ctx, id)
	s.log.LogActivityDeactivated(ctx, id.String(), "provider request")
	return nil
}

func (s *service) GetActivityRecord(ctx context.Context, id uuid.UUID) (*Activity, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *service) DeactivateExpiredOneTime(ctx context.Context) (int, error) {
	ids, err := s.repo.DeactivateExpiredOneTime(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	for _, id := range ids {
		s.invalidateDetail(ctx, id)
		s.log.LogActivityDeactivated(ctx, id.String(), "event date passed")
	}
	return len(ids), nil
}

func (s *service) RefreshTrending(ctx context.Context, window time.Duration, minBookings int) (int, error) {
	since := time.Now().Add(-window)
	ids, err := s.repo.TrendingCandidates(ctx, since, minBookings)
	if err != nil {
		return 0, err
	}
	if err := s.repo.ReplaceTrending(ctx, ids); err != nil {
		return 0, err
	}
	if s.cacheService != nil {
		_ = s.cacheService.DeletePattern(ctx, constants.PATTERN_INVALIDATE_ACTIVITY_ALL)
	}
	return len(ids), nil
}

func (s *service) invalidateDetail(ctx context.Context, id uuid.UUID) {
	if s.cacheService == nil {
		return
	}
	_ = s.cacheService.Delete(ctx, constants.ActivityDetailKey(id.String()))
}

func validateSchedule(kind ListingKind, req CreateActivityRequest) error {
	switch kind {
	case ListingOneTime:
		if req.EventDate == nil {
			return apperrors.Validation("event_date is required for one_time listings")
		}
	case ListingRecurring:
		if req.FromTime == "" || req.ToTime == "" {
			return apperrors.Validation("from_time and to_time are required for recurring listings")
		}
	default:
		return apperrors.Validation("invalid listing kind")
	}
	return nil
}
