package usecase

import (
	"context"
	"errors"
	"strings"

	"flight-concierge/internal/model"
	"flight-concierge/internal/user"
	"flight-concierge/internal/user/repository"
)

// Register creates a new account and returns it with a signed token.
func (uc *implUseCase) Register(ctx context.Context, input user.RegisterInput) (user.AuthOutput, error) {
	email := normalizeEmail(input.Email)

	existing, err := uc.repo.GetUserByEmail(ctx, email)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Register GetUserByEmail: %v", err)
		return user.AuthOutput{}, err
	}
	if existing.ID != "" {
		return user.AuthOutput{}, user.ErrEmailTaken
	}

	hash, err := uc.hasher.Hash(input.Password)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Register Hash: %v", err)
		return user.AuthOutput{}, err
	}

	created, err := uc.repo.CreateUser(ctx, repository.CreateUserOptions{
		Email:        email,
		Name:         strings.TrimSpace(input.Name),
		PasswordHash: hash,
	})
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Register CreateUser: %v", err)
		return user.AuthOutput{}, err
	}

	token, err := uc.jwtManager.Issue(created.ID)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Register Issue: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: created, Token: token}, nil
}

// Login verifies credentials and returns the account with a signed token.
// The same error covers unknown emails and wrong passwords.
func (uc *implUseCase) Login(ctx context.Context, input user.LoginInput) (user.AuthOutput, error) {
	account, err := uc.repo.GetUserByEmail(ctx, normalizeEmail(input.Email))
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Login GetUserByEmail: %v", err)
		return user.AuthOutput{}, err
	}
	if account.ID == "" {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	if err := uc.hasher.Compare(account.PasswordHash, input.Password); err != nil {
		return user.AuthOutput{}, user.ErrInvalidCredentials
	}

	token, err := uc.jwtManager.Issue(account.ID)
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Login Issue: %v", err)
		return user.AuthOutput{}, err
	}

	return user.AuthOutput{User: account, Token: token}, nil
}

// Detail returns the authenticated caller's account.
func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope) (user.DetailOutput, error) {
	account, err := uc.repo.GetUser(ctx, sc.UserID)
	if errors.Is(err, repository.ErrNotFound) {
		return user.DetailOutput{}, user.ErrUserNotFound
	}
	if err != nil {
		uc.l.Errorf(ctx, "user/usecase.Detail: %v", err)
		return user.DetailOutput{}, err
	}
	return user.DetailOutput{User: account}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
