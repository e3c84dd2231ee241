package usecase

import (
	"context"

	"flight-concierge/internal/model"
	"flight-concierge/internal/user/repository"
)

// Mock logger for testing
type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// Mock repository for testing
type mockRepository struct {
	createUserFunc     func(ctx context.Context, opt repository.CreateUserOptions) (model.User, error)
	getUserFunc        func(ctx context.Context, id string) (model.User, error)
	getUserByEmailFunc func(ctx context.Context, email string) (model.User, error)
}

func (m *mockRepository) CreateUser(ctx context.Context, opt repository.CreateUserOptions) (model.User, error) {
	if m.createUserFunc != nil {
		return m.createUserFunc(ctx, opt)
	}
	return model.User{
		ID:           "user-1",
		Email:        opt.Email,
		Name:         opt.Name,
		PasswordHash: opt.PasswordHash,
	}, nil
}

func (m *mockRepository) GetUser(ctx context.Context, id string) (model.User, error) {
	if m.getUserFunc != nil {
		return m.getUserFunc(ctx, id)
	}
	return model.User{ID: id, Email: "someone@example.com"}, nil
}

func (m *mockRepository) GetUserByEmail(ctx context.Context, email string) (model.User, error) {
	if m.getUserByEmailFunc != nil {
		return m.getUserByEmailFunc(ctx, email)
	}
	return model.User{}, nil
}
