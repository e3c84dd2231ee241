package usecase

import (
	"flight-concierge/internal/user"
	"flight-concierge/internal/user/repository"
	"flight-concierge/pkg/hasher"
	"flight-concierge/pkg/log"
	"flight-concierge/pkg/scope"
)

// implUseCase is the private implementation of user.UseCase.
type implUseCase struct {
	repo       repository.Repository
	hasher     hasher.Hasher
	jwtManager scope.Manager
	l          log.Logger
}

var _ user.UseCase = (*implUseCase)(nil)

// New creates a new user UseCase implementation.
func New(repo repository.Repository, h hasher.Hasher, jwtManager scope.Manager, l log.Logger) *implUseCase {
	return &implUseCase{
		repo:       repo,
		hasher:     h,
		jwtManager: jwtManager,
		l:          l,
	}
}
