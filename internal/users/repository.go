package users

import (
	"context"
	"errors"

	"adventura/internal/shared/apperrors"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type Repository interface {
	GetUserByID(ctx context.Context, id uuid.UUID) (*User, error)
	GetClientByID(ctx context.Context, id uuid.UUID) (*Client, error)
	GetProviderByID(ctx context.Context, id uuid.UUID) (*Provider, error)
}

type repository struct {
	db *gorm.DB
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) GetUserByID(ctx context.Context, id uuid.UUID) (*User, error) {
	var user User
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NotFound(apperrors.CodeValidation, "user not found")
		}
		return nil, err
	}
	return &user, nil
}

func (r *repository) GetClientByID(ctx context.Context, id uuid.UUID) (*Client, error) {
	var client Client
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&client).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("invalid client reference")
		}
		return nil, err
	}
	return &client, nil
}

func (r *repository) GetProviderByID(ctx context.Context, id uuid.UUID) (*Provider, error) {
	var provider Provider
	err := r.db.WithContext(ctx).Preload("User").Where("id = ?", id).First(&provider).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.Validation("invalid provider reference")
		}
		return nil, err
	}
	return &provider, nil
}
