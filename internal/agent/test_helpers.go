package agent

import (
	"context"

	"flight-concierge/pkg/flightsearch"
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

// Mock generative client for testing
type mockGemini struct {
	generateFunc func(ctx context.Context, prompt string) (string, error)
}

func (m *mockGemini) Generate(ctx context.Context, prompt string) (string, error) {
	if m.generateFunc != nil {
		return m.generateFunc(ctx, prompt)
	}
	return "", nil
}

func (m *mockGemini) Model() string { return "mock" }

// Mock flight search client for testing
type mockSearch struct {
	searchFunc func(ctx context.Context, req flightsearch.SearchRequest) ([]flightsearch.FlightOption, error)
}

func (m *mockSearch) Search(ctx context.Context, req flightsearch.SearchRequest) ([]flightsearch.FlightOption, error) {
	if m.searchFunc != nil {
		return m.searchFunc(ctx, req)
	}
	return nil, nil
}
