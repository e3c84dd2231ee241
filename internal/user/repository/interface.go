package repository

import (
	"context"

	"flight-concierge/internal/model"
)

// Repository defines data access for User records.
type Repository interface {
	CreateUser(ctx context.Context, opt CreateUserOptions) (model.User, error)
	GetUser(ctx context.Context, id string) (model.User, error)
	// GetUserByEmail returns the zero-value User (ID == "") when no account
	// matches; not-found is not an error here.
	GetUserByEmail(ctx context.Context, email string) (model.User, error)
}
