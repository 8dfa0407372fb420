package users

import (
	"context"

	"github.com/google/uuid"
)

// DirectoryAdapter implements the bookings UserDirectory interface using the
// users repository. This adapter prevents import cycles while allowing the
// reservation service to resolve clients and providers to their owning user.
type DirectoryAdapter struct {
	repo Repository
}

// NewDirectoryAdapter creates a new user directory adapter
func NewDirectoryAdapter(repo Repository) *DirectoryAdapter {
	return &DirectoryAdapter{
		repo: repo,
	}
}

func (da *DirectoryAdapter) GetClientUserID(ctx context.Context, clientID uuid.UUID) (uuid.UUID, error) {
	client, err := da.repo.GetClientByID(ctx, clientID)
	if err != nil {
		return uuid.Nil, err
	}
	return client.UserID, nil
}

func (da *DirectoryAdapter) GetProviderUserID(ctx context.Context, providerID uuid.UUID) (uuid.UUID, error) {
	provider, err := da.repo.GetProviderByID(ctx, providerID)
	if err != nil {
		return uuid.Nil, err
	}
	return provider.UserID, nil
}
