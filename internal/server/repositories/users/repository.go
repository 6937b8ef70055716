// Package users provides storage for account records.
package users

import (
	"context"

	"pokedex/internal/server/models"
)

// Repository is the data-access contract for account records.
//
// Create returns common.ErrorAlreadyExists when the username is taken and
// GetByUsername returns common.ErrorNotFound for unknown usernames, so
// services can match with errors.Is.
type Repository interface {
	Create(ctx context.Context, user *models.User) (*models.User, error)
	GetByUsername(ctx context.Context, username string) (*models.User, error)
}
