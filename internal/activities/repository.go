package activities

import (
	"context"
	"errors"
	"time"

	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	Create(ctx context.Context, activity *Activity) error
	GetByID(ctx context.Context, id uuid.UUID) (*Activity, error)
	List(ctx context.Context, query ActivityListQuery) ([]Activity, int64, error)
	Update(ctx context.Context, activity *Activity) error
	SetAvailabilityStatus(ctx context.Context, id uuid.UUID, active bool) error

	// Catalog sweeps
	DeactivateExpiredOneTime(ctx context.Context, now time.Time) ([]uuid.UUID, error)
	TrendingCandidates(ctx context.Context, since time.Time, minBookings int) ([]uuid.UUID, error)
	ReplaceTrending(ctx context.Context, ids []uuid.UUID) error
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) Create(ctx context.Context, activity *Activity) error {
	return r.db.WithContext(ctx).Create(activity).Error
}

func (r *repository) GetByID(ctx context.Context, id uuid.UUID) (*Activity, error) {
	var activity Activity
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&activity).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeActivityNotFound, "activity not found")
		}
		return nil, err
	}
	return &activity, nil
}

func (r *repository) List(ctx context.Context, query ActivityListQuery) ([]Activity, int64, error) {
	var result []Activity
	var totalCount int64

	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).Model(&Activity{})

	if !query.IncludeAll {
		baseQuery = baseQuery.Where("availability_status = ?", true)
	}
	if query.ListingKind != "" {
		baseQuery = baseQuery.Where("listing_kind = ?", query.ListingKind)
	}
	if query.Trending {
		baseQuery = baseQuery.Where("is_trending = ?", true)
	}
	if query.Search != "" {
		like := "%" + query.Search + "%"
		baseQuery = baseQuery.Where("name ILIKE ? OR location ILIKE ?", like, like)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&result).Error

	return result, totalCount, err
}

func (r *repository) Update(ctx context.Context, activity *Activity) error {
	return r.db.WithContext(ctx).Save(activity).Error
}

func (r *repository) SetAvailabilityStatus(ctx context.Context, id uuid.UUID, active bool) error {
	res := r.db.WithContext(ctx).
		Model(&Activity{}).
		Where("id = ?", id).
		Updates(map[string]interface{}{
			"availability_status": active,
			"updated_at":          time.Now(),
		})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return apperrors.NotFound(apperrors.CodeActivityNotFound, "activity not found")
	}
	return nil
}

// DeactivateExpiredOneTime flips the availability flag on one_time listings
// whose event date has passed and returns the affected IDs.
func (r *repository) DeactivateExpiredOneTime(ctx context.Context, now time.Time) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Model(&Activity{}).
		Where("listing_kind = ?", ListingOneTime).
		Where("availability_status = ?", true).
		Where("event_date IS NOT NULL AND event_date < ?", now.Format("2006-01-02")).
		Pluck("id", &ids).Error
	if err != nil {
		return nil, err
	}
	if len(ids) == 0 {
		return nil, nil
	}

	err = r.db.WithContext(ctx).
		Model(&Activity{}).
		Where("id IN ?", ids).
		Updates(map[string]interface{}{
			"availability_status": false,
			"updated_at":          time.Now(),
		}).Error
	if err != nil {
		return nil, err
	}
	return ids, nil
}

// TrendingCandidates returns activities with at least minBookings non-cancelled
// bookings created since the given time. The bookings table is read raw to
// keep the catalog package free of a bookings import.
func (r *repository) TrendingCandidates(ctx context.Context, since time.Time, minBookings int) ([]uuid.UUID, error) {
	var ids []uuid.UUID
	err := r.db.WithContext(ctx).
		Table("bookings").
		Select("activity_id").
		Where("created_at >= ?", since).
		Where("status <> ?", "cancelled").
		Group("activity_id").
		Having("COUNT(*) >= ?", minBookings).
		Pluck("activity_id", &ids).Error
	return ids, err
}

// ReplaceTrending resets the trending flag everywhere, then marks the given set.
func (r *repository) ReplaceTrending(ctx context.Context, ids []uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&Activity{}).
			Where("is_trending = ?", true).
			Update("is_trending", false).Error; err != nil {
			return err
		}
		if len(ids) == 0 {
			return nil
		}
		return tx.Model(&Activity{}).
			Where("id IN ?", ids).
			Update("is_trending", true).Error
	})
}
