package bookings

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type Repository interface {
	// Core booking operations
	CreateBooking(ctx context.Context, booking *Booking) error
	GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error)
	UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to Status) error

	// Concurrency-safe reservation and compensation
	CreateBookingWithSeatReservation(ctx context.Context, booking *Booking) error
	CancelBookingWithSeatRestore(ctx context.Context, id uuid.UUID, reason string) (*Booking, error)

	// Listing operations
	GetBookingsByClientID(ctx context.Context, clientID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)
	GetBookingsByProviderUserID(ctx context.Context, providerUserID uuid.UUID, query BookingListQuery) ([]Booking, int64, error)

	// Read-only seat probe for check-availability
	GetSlotSeats(ctx context.Context, activityID uuid.UUID, date, slot string) (int, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) CreateBooking(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Create(booking).Error
}

func (r *repository) GetBookingByID(ctx context.Context, id uuid.UUID) (*Booking, error) {
	var booking Booking
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&booking).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeBookingNotFound, "booking not found")
		}
		return nil, err
	}
	return &booking, nil
}

// UpdateBookingStatus flips status only when the row is still in the expected
// state, so concurrent updates cannot skip a transition.
func (r *repository) UpdateBookingStatus(ctx context.Context, id uuid.UUID, from, to Status) error {
	result := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where("id = ? AND status = ?", id, from).
		Updates(map[string]interface{}{
			"status":     to,
			"updated_at": time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return apperrors.Conflict(apperrors.CodeInvalidTransition,
			fmt.Sprintf("booking is no longer %s", from))
	}
	return nil
}

// slotRow is the subset of availability_slots touched by reservations.
// The table is addressed raw to keep this package free of an availability
// import (avoids circular dependency).
type slotRow struct {
	ID             uuid.UUID `gorm:"column:id"`
	SeatsRemaining int       `gorm:"column:seats_remaining"`
}

// CreateBookingWithSeatReservation reserves seats and records the booking in
// one transaction. The slot row is locked FOR UPDATE before the decrement, so
// two overlapping requests for the last seats serialize and the loser sees
// the depleted counter.
func (r *repository) CreateBookingWithSeatReservation(ctx context.Context, booking *Booking) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var slot slotRow

		err := tx.Table("availability_slots").
			Select("id, seats_remaining").
			Where("activity_id = ? AND date = ? AND slot = ?", booking.ActivityID, booking.BookingDate, booking.Slot).
			Clauses(clause.Locking{Strength: "UPDATE"}).
			First(&slot).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(apperrors.CodeSlotNotFound, "no availability for selected date and slot")
			}
			return fmt.Errorf("failed to lock availability slot: %w", err)
		}

		if slot.SeatsRemaining < booking.PartySize {
			return apperrors.Conflict(apperrors.CodeSlotFull,
				fmt.Sprintf("only %d seats remaining, requested %d", slot.SeatsRemaining, booking.PartySize))
		}

		// Guarded decrement: seats_remaining re-checked in the WHERE clause so
		// the counter can never go negative even if the lock is bypassed.
		result := tx.Table("availability_slots").
			Where("id = ? AND seats_remaining >= ?", slot.ID, booking.PartySize).
			Update("seats_remaining", gorm.Expr("seats_remaining - ?", booking.PartySize))
		if result.Error != nil {
			return fmt.Errorf("failed to reserve seats: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.Conflict(apperrors.CodeSlotFull, "slot filled up while processing the request")
		}

		if err := tx.Create(booking).Error; err != nil {
			return fmt.Errorf("failed to create booking: %w", err)
		}

		return nil
	})
}

// CancelBookingWithSeatRestore cancels a booking and returns its seats to the
// ledger in one transaction. The compensating increment happens only when the
// status flip succeeds, so a double cancel never restores seats twice.
func (r *repository) CancelBookingWithSeatRestore(ctx context.Context, id uuid.UUID, reason string) (*Booking, error) {
	var booking Booking

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		err := tx.
			Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("id = ?", id).
			First(&booking).Error
		if err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return apperrors.NotFound(apperrors.CodeBookingNotFound, "booking not found")
			}
			return fmt.Errorf("failed to lock booking: %w", err)
		}

		if booking.IsCancelled() {
			return apperrors.Conflict(apperrors.CodeAlreadyCancelled, "booking is already cancelled")
		}

		now := time.Now()
		result := tx.Model(&Booking{}).
			Where("id = ? AND status IN ?", id, []Status{StatusPending, StatusConfirmed}).
			Updates(map[string]interface{}{
				"status":              StatusCancelled,
				"cancellation_reason": reason,
				"cancelled_at":        now,
				"updated_at":          now,
			})
		if result.Error != nil {
			return fmt.Errorf("failed to cancel booking: %w", result.Error)
		}
		if result.RowsAffected == 0 {
			return apperrors.Conflict(apperrors.CodeAlreadyCancelled, "booking is already cancelled")
		}

		// Seats are restored only for ledger-backed (recurring) bookings.
		if booking.Slot != "" {
			err = tx.Table("availability_slots").
				Where("activity_id = ? AND date = ? AND slot = ?", booking.ActivityID, booking.BookingDate, booking.Slot).
				Update("seats_remaining", gorm.Expr("seats_remaining + ?", booking.PartySize)).Error
			if err != nil {
				return fmt.Errorf("failed to restore seats: %w", err)
			}
		}

		booking.Status = StatusCancelled
		booking.CancellationReason = reason
		booking.CancelledAt = &now
		return nil
	})
	if err != nil {
		return nil, err
	}
	return &booking, nil
}

func (r *repository) GetBookingsByClientID(ctx context.Context, clientID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	return r.listBookings(ctx, query, "client_id = ?", clientID)
}

func (r *repository) GetBookingsByProviderUserID(ctx context.Context, providerUserID uuid.UUID, query BookingListQuery) ([]Booking, int64, error) {
	return r.listBookings(ctx, query, "booked_by_provider_user_id = ?", providerUserID)
}

func (r *repository) listBookings(ctx context.Context, query BookingListQuery, cond string, args ...interface{}) ([]Booking, int64, error) {
	var bookings []Booking
	var totalCount int64

	// Set defaults
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}

	baseQuery := r.db.WithContext(ctx).
		Model(&Booking{}).
		Where(cond, args...)

	if query.Status != "" {
		baseQuery = baseQuery.Where("status = ?", query.Status)
	}

	if err := baseQuery.Count(&totalCount).Error; err != nil {
		return nil, 0, err
	}

	offset := (query.Page - 1) * query.Limit
	err := baseQuery.
		Order("created_at DESC").
		Offset(offset).
		Limit(query.Limit).
		Find(&bookings).Error

	return bookings, totalCount, err
}

func (r *repository) GetSlotSeats(ctx context.Context, activityID uuid.UUID, date, slot string) (int, error) {
	var row slotRow
	err := r.db.WithContext(ctx).
		Table("availability_slots").
		Select("id, seats_remaining").
		Where("activity_id = ? AND date = ? AND slot = ?", activityID, date, slot).
		First(&row).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, apperrors.NotFound(apperrors.CodeSlotNotFound, "no availability for selected date and slot")
		}
		return 0, err
	}
	return row.SeatsRemaining, nil
}

// Helper function to calculate total pages
func CalculateTotalPages(totalCount int64, limit int) int {
	if limit <= 0 {
		return 0
	}
	return int(math.Ceil(float64(totalCount) / float64(limit)))
}
