package availability

import (
	"context"
	"strings"

	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	CreateSlots(ctx context.Context, slots []AvailabilitySlot) error
	ListSlots(ctx context.Context, activityID uuid.UUID, date string) ([]AvailabilitySlot, error)
	ListOpenDates(ctx context.Context, activityID uuid.UUID) ([]string, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateSlots(ctx context.Context, slots []AvailabilitySlot) error {
	err := r.db.WithContext(ctx).Create(&slots).Error
	if err != nil {
		// unique (activity_id, date, slot) violation means the slot already exists
		if strings.Contains(err.Error(), "idx_activity_date_slot") ||
			strings.Contains(err.Error(), "duplicate key") {
			return apperrors.Conflict(apperrors.CodeValidation, "slot already defined for this date")
		}
		return err
	}
	return nil
}

func (r *repository) ListSlots(ctx context.Context, activityID uuid.UUID, date string) ([]AvailabilitySlot, error) {
	var slots []AvailabilitySlot
	err := r.db.WithContext(ctx).
		Where("activity_id = ? AND date = ?", activityID, date).
		Order("slot ASC").
		Find(&slots).Error
	return slots, err
}

func (r *repository) ListOpenDates(ctx context.Context, activityID uuid.UUID) ([]string, error) {
	var dates []string
	err := r.db.WithContext(ctx).
		Model(&AvailabilitySlot{}).
		Where("activity_id = ? AND seats_remaining > 0", activityID).
		Distinct().
		Order("date ASC").
		Pluck("date", &dates).Error
	return dates, err
}
