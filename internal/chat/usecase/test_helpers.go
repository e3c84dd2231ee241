package usecase

import (
	"context"
	"time"

	"flight-concierge/internal/agent"
	"flight-concierge/internal/chat/repository"
	"flight-concierge/internal/model"
	"flight-concierge/internal/router"
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

// Mock router for testing
type mockRouter struct {
	decideFunc func(ctx context.Context, message string, history []model.Message) router.Decision
}

func (m *mockRouter) Decide(ctx context.Context, message string, history []model.Message) router.Decision {
	if m.decideFunc != nil {
		return m.decideFunc(ctx, message, history)
	}
	return router.Decision{Agent: router.AgentPersonal}
}

// Mock assistant for testing
type mockAssistant struct {
	handleFunc func(ctx context.Context, message string, convCtx model.ConversationContext, recent []model.Message) agent.Reply
}

func (m *mockAssistant) Handle(ctx context.Context, message string, convCtx model.ConversationContext, recent []model.Message) agent.Reply {
	if m.handleFunc != nil {
		return m.handleFunc(ctx, message, convCtx, recent)
	}
	return agent.Reply{Text: "ok", Intent: agent.IntentGeneral}
}

// Mock repository for testing. Unset functions fall back to benign defaults
// keyed off the fixture session below.
type mockRepository struct {
	createSessionFunc  func(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error)
	getSessionFunc     func(ctx context.Context, id string) (model.Session, error)
	listSessionsFunc   func(ctx context.Context, userID string) ([]model.Session, error)
	updateSessionFunc  func(ctx context.Context, opt repository.UpdateSessionOptions) (model.Session, error)
	deleteSessionFunc  func(ctx context.Context, id string) error
	appendMessageFunc  func(ctx context.Context, opt repository.AppendMessageOptions) (model.Message, error)
	listMessagesFunc   func(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, int, error)
	recentMessagesFunc func(ctx context.Context, sessionID string, limit int) ([]model.Message, error)
	loadContextFunc    func(ctx context.Context, sessionID string) (model.ConversationContext, error)
	mergeContextFunc   func(ctx context.Context, sessionID string, updates model.ConversationContext) error
	clearContextFunc   func(ctx context.Context, sessionID string) error
}

const (
	testUserID    = "user-1"
	testSessionID = "session-1"
)

func testSession() model.Session {
	return model.Session{
		ID:        testSessionID,
		UserID:    testUserID,
		Title:     "Trip planning",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}

func (m *mockRepository) CreateSession(ctx context.Context, opt repository.CreateSessionOptions) (model.Session, error) {
	if m.createSessionFunc != nil {
		return m.createSessionFunc(ctx, opt)
	}
	return model.Session{ID: testSessionID, UserID: opt.UserID, Title: opt.Title}, nil
}

func (m *mockRepository) GetSession(ctx context.Context, id string) (model.Session, error) {
	if m.getSessionFunc != nil {
		return m.getSessionFunc(ctx, id)
	}
	s := testSession()
	s.ID = id
	return s, nil
}

func (m *mockRepository) ListSessions(ctx context.Context, userID string) ([]model.Session, error) {
	if m.listSessionsFunc != nil {
		return m.listSessionsFunc(ctx, userID)
	}
	return []model.Session{testSession()}, nil
}

func (m *mockRepository) UpdateSession(ctx context.Context, opt repository.UpdateSessionOptions) (model.Session, error) {
	if m.updateSessionFunc != nil {
		return m.updateSessionFunc(ctx, opt)
	}
	s := testSession()
	if opt.Title != "" {
		s.Title = opt.Title
	}
	return s, nil
}

func (m *mockRepository) DeleteSession(ctx context.Context, id string) error {
	if m.deleteSessionFunc != nil {
		return m.deleteSessionFunc(ctx, id)
	}
	return nil
}

func (m *mockRepository) AppendMessage(ctx context.Context, opt repository.AppendMessageOptions) (model.Message, error) {
	if m.appendMessageFunc != nil {
		return m.appendMessageFunc(ctx, opt)
	}
	return model.Message{SessionID: opt.SessionID, Role: opt.Role, Content: opt.Content}, nil
}

func (m *mockRepository) ListMessages(ctx context.Context, opt repository.ListMessagesOptions) ([]model.Message, int, error) {
	if m.listMessagesFunc != nil {
		return m.listMessagesFunc(ctx, opt)
	}
	return nil, 0, nil
}

func (m *mockRepository) RecentMessages(ctx context.Context, sessionID string, limit int) ([]model.Message, error) {
	if m.recentMessagesFunc != nil {
		return m.recentMessagesFunc(ctx, sessionID, limit)
	}
	return nil, nil
}

func (m *mockRepository) LoadContext(ctx context.Context, sessionID string) (model.ConversationContext, error) {
	if m.loadContextFunc != nil {
		return m.loadContextFunc(ctx, sessionID)
	}
	return model.ConversationContext{}, nil
}

func (m *mockRepository) MergeContext(ctx context.Context, sessionID string, updates model.ConversationContext) error {
	if m.mergeContextFunc != nil {
		return m.mergeContextFunc(ctx, sessionID, updates)
	}
	return nil
}

func (m *mockRepository) ClearContext(ctx context.Context, sessionID string) error {
	if m.clearContextFunc != nil {
		return m.clearContextFunc(ctx, sessionID)
	}
	return nil
}
