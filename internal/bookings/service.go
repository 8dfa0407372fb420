package bookings

import (
	"context"
	"time"

	"adventura/internal/shared/apperrors"
	"adventura/pkg/logger"

	"github.com/google/uuid"
)

// ActivityCatalog interface for catalog lookups (to avoid circular dependency)
type ActivityCatalog interface {
	GetActivityForBooking(ctx context.Context, id uuid.UUID) (*ActivityInfo, error)
}

// AvailabilityLedger interface for post-write cache invalidation
// (to avoid circular dependency)
type AvailabilityLedger interface {
	InvalidateActivityDate(ctx context.Context, activityID uuid.UUID, date string)
}

// NotificationEmitter interface for fire-and-forget user notifications
// (to avoid circular dependency)
type NotificationEmitter interface {
	Notify(ctx context.Context, userID uuid.UUID, title, description, icon string)
}

// UserDirectory interface resolves client/provider records to their owning
// user, used for the self-booking guard (to avoid circular dependency)
type UserDirectory interface {
	GetClientUserID(ctx context.Context, clientID uuid.UUID) (uuid.UUID, error)
	GetProviderUserID(ctx context.Context, providerID uuid.UUID) (uuid.UUID, error)
}

// ActivityInfo is the slice of a catalog record the reservation flow needs.
type ActivityInfo struct {
	ID         uuid.UUID `json:"id"`
	ProviderID uuid.UUID `json:"provider_id"`
	Price      float64   `json:"price"`
	Capacity   int       `json:"capacity"`
	Recurring  bool      `json:"recurring"`
	Active     bool      `json:"active"`
}

// Service interface defines the contract for the reservation workflow
type Service interface {
	Reserve(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error)
	CheckAvailability(ctx context.Context, query CheckAvailabilityQuery) (*AvailabilityCheckResponse, error)
	GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error)
	Cancel(ctx context.Context, id uuid.UUID, reason string) (*BookingResponse, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, target Status) (*BookingResponse, error)
	GetClientBookings(ctx context.Context, clientID uuid.UUID, query BookingListQuery) (*BookingListResponse, error)
	GetProviderBookings(ctx context.Context, providerUserID uuid.UUID, query BookingListQuery) (*BookingListResponse, error)
}

// service implements the Service interface
type service struct {
	repo    Repository
	catalog ActivityCatalog
	ledger  AvailabilityLedger
	emitter NotificationEmitter
	users   UserDirectory
	log     *logger.Logger
}

// NewService creates a new reservation service instance
func NewService(repo Repository, catalog ActivityCatalog, ledger AvailabilityLedger, emitter NotificationEmitter, users UserDirectory) Service {
	return &service{
		repo:    repo,
		catalog: catalog,
		ledger:  ledger,
		emitter: emitter,
		users:   users,
		log:     logger.GetDefault(),
	}
}

// Reserve places a booking. Recurring activities go through the seat ledger
// atomically; one-time activities are recorded directly because their
// capacity is not slot-managed.
func (s *service) Reserve(ctx context.Context, req CreateBookingRequest) (*BookingResponse, error) {
	requester, err := RequesterFromRequest(req)
	if err != nil {
		return nil, err
	}

	partySize := 1
	if req.PartySize != nil {
		partySize = *req.PartySize
	}
	if partySize < 1 {
		return nil, apperrors.ValidationCode(apperrors.CodeInvalidPartySize, "party_size must be at least 1")
	}
	if req.TotalPrice <= 0 {
		return nil, apperrors.Validation("total_price must be positive")
	}

	activityID, err := uuid.Parse(req.ActivityID)
	if err != nil {
		return nil, apperrors.Validation("invalid activity_id")
	}

	activity, err := s.catalog.GetActivityForBooking(ctx, activityID)
	if err != nil {
		return nil, err
	}
	if !activity.Active {
		return nil, apperrors.Validation("activity is not available for booking")
	}

	booking := &Booking{
		ActivityID:  activity.ID,
		BookingDate: req.BookingDate,
		PartySize:   partySize,
		TotalPrice:  req.TotalPrice,
		Status:      StatusPending,
	}

	var notifyUserID uuid.UUID
	switch requester.Kind {
	case RequesterClient:
		clientUserID, err := s.users.GetClientUserID(ctx, requester.ClientID)
		if err != nil {
			return nil, err
		}
		providerUserID, err := s.users.GetProviderUserID(ctx, activity.ProviderID)
		if err != nil {
			return nil, err
		}
		if clientUserID == providerUserID {
			return nil, apperrors.Forbidden(apperrors.CodeSelfBooking, "providers cannot book their own activities")
		}
		clientID := requester.ClientID
		booking.ClientID = &clientID
		notifyUserID = clientUserID
	case RequesterProvider:
		ownerUserID, err := s.users.GetProviderUserID(ctx, activity.ProviderID)
		if err != nil {
			return nil, err
		}
		if requester.ProviderUserID == ownerUserID {
			return nil, apperrors.Forbidden(apperrors.CodeSelfBooking, "providers cannot book their own activities")
		}
		providerUserID := requester.ProviderUserID
		booking.BookedByProviderUserID = &providerUserID
		notifyUserID = providerUserID
	}

	if activity.Recurring {
		if req.Slot == "" {
			return nil, apperrors.Validation("slot is required for recurring activities")
		}
		booking.Slot = req.Slot

		if err := s.repo.CreateBookingWithSeatReservation(ctx, booking); err != nil {
			if resolved := apperrors.Resolve(err); resolved.Code != apperrors.CodeInternal {
				s.log.LogReservationRejected(ctx, activity.ID.String(), req.Slot, string(resolved.Code))
			}
			return nil, err
		}
		s.ledger.InvalidateActivityDate(ctx, activity.ID, req.BookingDate)
	} else {
		if err := s.repo.CreateBooking(ctx, booking); err != nil {
			return nil, apperrors.Internal(err)
		}
	}

	s.log.LogReservationCreated(ctx, booking.ID.String(), activity.ID.String(), booking.Slot)
	s.notifyAsync(notifyUserID, "Booking Received",
		"Your booking has been placed and is awaiting confirmation.", "calendar")

	resp := toResponse(booking)
	return &resp, nil
}

// CheckAvailability answers whether a party would fit without reserving.
func (s *service) CheckAvailability(ctx context.Context, query CheckAvailabilityQuery) (*AvailabilityCheckResponse, error) {
	activityID, err := uuid.Parse(query.ActivityID)
	if err != nil {
		return nil, apperrors.Validation("invalid activity_id")
	}

	partySize := query.PartySize
	if partySize <= 0 {
		partySize = 1
	}

	activity, err := s.catalog.GetActivityForBooking(ctx, activityID)
	if err != nil {
		return nil, err
	}

	resp := &AvailabilityCheckResponse{
		ActivityID: query.ActivityID,
		Date:       query.Date,
		Slot:       query.Slot,
	}

	if !activity.Recurring {
		resp.Available = activity.Active
		return resp, nil
	}

	if query.Slot == "" {
		return nil, apperrors.Validation("slot is required for recurring activities")
	}

	seats, err := s.repo.GetSlotSeats(ctx, activityID, query.Date, query.Slot)
	if err != nil {
		return nil, err
	}
	resp.SeatsRemaining = seats
	resp.Available = activity.Active && seats >= partySize
	return resp, nil
}

func (s *service) GetBooking(ctx context.Context, id uuid.UUID) (*BookingResponse, error) {
	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(booking)
	return &resp, nil
}

// Cancel releases a booking and compensates the seat ledger. Cancelling an
// already-cancelled booking is rejected rather than silently repeated.
func (s *service) Cancel(ctx context.Context, id uuid.UUID, reason string) (*BookingResponse, error) {
	if reason == "" {
		reason = "cancelled by user"
	}

	booking, err := s.repo.CancelBookingWithSeatRestore(ctx, id, reason)
	if err != nil {
		return nil, err
	}

	seatsRestored := 0
	if booking.Slot != "" {
		seatsRestored = booking.PartySize
		s.ledger.InvalidateActivityDate(ctx, booking.ActivityID, booking.BookingDate)
	}
	s.log.LogBookingCancelled(ctx, booking.ID.String(), reason, seatsRestored)

	s.notifyAsync(s.requesterUserID(ctx, booking), "Booking Cancelled",
		"Your booking has been cancelled. Reason: "+reason, "x-circle")

	resp := toResponse(booking)
	return &resp, nil
}

// UpdateStatus drives the admin status machine. A transition to cancelled is
// routed through the compensating cancellation path so seats are returned.
func (s *service) UpdateStatus(ctx context.Context, id uuid.UUID, target Status) (*BookingResponse, error) {
	if !target.IsValid() {
		return nil, apperrors.Validation("invalid status")
	}

	booking, err := s.repo.GetBookingByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !booking.Status.CanTransitionTo(target) {
		return nil, apperrors.Conflict(apperrors.CodeInvalidTransition,
			"cannot transition from "+booking.Status.String()+" to "+target.String())
	}

	if target == StatusCancelled {
		return s.Cancel(ctx, id, "cancelled by admin")
	}

	if err := s.repo.UpdateBookingStatus(ctx, id, booking.Status, target); err != nil {
		return nil, err
	}
	booking.Status = target

	if target == StatusConfirmed {
		s.notifyAsync(s.requesterUserID(ctx, booking), "Booking Confirmed",
			"Your booking has been confirmed. See you there!", "check-circle")
	}

	resp := toResponse(booking)
	return &resp, nil
}

func (s *service) GetClientBookings(ctx context.Context, clientID uuid.UUID, query BookingListQuery) (*BookingListResponse, error) {
	bookings, totalCount, err := s.repo.GetBookingsByClientID(ctx, clientID, query)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return buildListResponse(bookings, totalCount, query), nil
}

func (s *service) GetProviderBookings(ctx context.Context, providerUserID uuid.UUID, query BookingListQuery) (*BookingListResponse, error) {
	bookings, totalCount, err := s.repo.GetBookingsByProviderUserID(ctx, providerUserID, query)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return buildListResponse(bookings, totalCount, query), nil
}

func buildListResponse(bookings []Booking, totalCount int64, query BookingListQuery) *BookingListResponse {
	if query.Page <= 0 {
		query.Page = 1
	}
	if query.Limit <= 0 {
		query.Limit = 10
	}
	return &BookingListResponse{
		Bookings:   toResponseList(bookings),
		TotalCount: totalCount,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: CalculateTotalPages(totalCount, query.Limit),
	}
}

// requesterUserID resolves the user behind a booking: the client's user for
// client bookings, the recording provider's user for on-behalf bookings.
// Returns uuid.Nil when the lookup fails so notifyAsync skips delivery.
func (s *service) requesterUserID(ctx context.Context, booking *Booking) uuid.UUID {
	if booking.ClientID != nil {
		userID, err := s.users.GetClientUserID(ctx, *booking.ClientID)
		if err != nil {
			return uuid.Nil
		}
		return userID
	}
	if booking.BookedByProviderUserID != nil {
		return *booking.BookedByProviderUserID
	}
	return uuid.Nil
}

// notifyAsync emits a notification without blocking or failing the request.
// The emitter logs and swallows its own delivery errors.
func (s *service) notifyAsync(userID uuid.UUID, title, description, icon string) {
	if s.emitter == nil || userID == uuid.Nil {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		s.emitter.Notify(ctx, userID, title, description, icon)
	}()
}
