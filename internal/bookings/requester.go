package bookings

import (
	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
)

// RequesterKind discriminates who is placing a booking.
type RequesterKind string

const (
	RequesterClient   RequesterKind = "client"
	RequesterProvider RequesterKind = "provider_on_behalf"
)

// Requester identifies the party a booking is recorded against: either a
// client booking for themselves, or a provider recording a walk-in on
// behalf of an unregistered customer. Exactly one ID is set per kind.
type Requester struct {
	Kind           RequesterKind
	ClientID       uuid.UUID
	ProviderUserID uuid.UUID
}

// ClientRequester builds a requester for a self-service client booking.
func ClientRequester(clientID uuid.UUID) Requester {
	return Requester{Kind: RequesterClient, ClientID: clientID}
}

// ProviderRequester builds a requester for a provider booking on behalf
// of a customer.
func ProviderRequester(providerUserID uuid.UUID) Requester {
	return Requester{Kind: RequesterProvider, ProviderUserID: providerUserID}
}

// RequesterFromRequest derives the requester from the optional ID pair on
// the create request. Exactly one of the two must be present.
func RequesterFromRequest(req CreateBookingRequest) (Requester, error) {
	hasClient := req.ClientID != ""
	hasProvider := req.BookedByProviderUserID != ""

	if hasClient == hasProvider {
		return Requester{}, apperrors.Validation("exactly one of client_id or booked_by_provider_user_id is required")
	}

	if hasClient {
		clientID, err := uuid.Parse(req.ClientID)
		if err != nil {
			return Requester{}, apperrors.Validation("invalid client_id")
		}
		return ClientRequester(clientID), nil
	}

	providerUserID, err := uuid.Parse(req.BookedByProviderUserID)
	if err != nil {
		return Requester{}, apperrors.Validation("invalid booked_by_provider_user_id")
	}
	return ProviderRequester(providerUserID), nil
}
