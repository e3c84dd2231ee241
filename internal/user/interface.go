package user

import (
	"context"

	"flight-concierge/internal/model"
)

//go:generate mockery --name UseCase
type UseCase interface {
	Register(ctx context.Context, input RegisterInput) (AuthOutput, error)
	Login(ctx context.Context, input LoginInput) (AuthOutput, error)
	Detail(ctx context.Context, sc model.Scope) (DetailOutput, error)
}
