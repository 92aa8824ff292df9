package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	rtdto "tradepost/internal/application/realtime/dto"
	"tradepost/internal/domain/chat"
	"tradepost/internal/shared/logger"
)

type mockConversationRepo struct {
	mock.Mock
}

func (m *mockConversationRepo) FindOrCreateByPair(ctx context.Context, userA, userB uint) (*chat.Conversation, error) {
	args := m.Called(ctx, userA, userB)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Conversation), args.Error(1)
}

func (m *mockConversationRepo) FindByID(ctx context.Context, id uint) (*chat.Conversation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*chat.Conversation), args.Error(1)
}

func (m *mockConversationRepo) ListByUserID(ctx context.Context, userID uint) ([]*chat.Conversation, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*chat.Conversation), args.Error(1)
}

func (m *mockConversationRepo) TouchLastMessage(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockMessageRepo struct {
	mock.Mock
}

func (m *mockMessageRepo) Create(ctx context.Context, msg *chat.Message) error {
	args := m.Called(ctx, msg)
	return args.Error(0)
}

func (m *mockMessageRepo) ListByConversationID(ctx context.Context, conversationID uint, limit, offset int) ([]*chat.Message, int64, error) {
	args := m.Called(ctx, conversationID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*chat.Message), args.Get(1).(int64), args.Error(2)
}

func (m *mockMessageRepo) MarkReadByConversation(ctx context.Context, conversationID, readerID uint) error {
	args := m.Called(ctx, conversationID, readerID)
	return args.Error(0)
}

func (m *mockMessageRepo) CountUnreadByUserID(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// mockPresence records every push by recipient so tests can assert on exactly
// which connections were targeted.
type mockPresence struct {
	online map[uint]bool
	pushed map[uint][]*rtdto.Envelope
}

func newMockPresence(onlineUsers ...uint) *mockPresence {
	online := make(map[uint]bool)
	for _, id := range onlineUsers {
		online[id] = true
	}
	return &mockPresence{
		online: online,
		pushed: make(map[uint][]*rtdto.Envelope),
	}
}

func (m *mockPresence) PushToChat(userID uint, msg *rtdto.Envelope) bool {
	if !m.online[userID] {
		return false
	}
	m.pushed[userID] = append(m.pushed[userID], msg)
	return true
}

func (m *mockPresence) IsOnline(userID uint) bool {
	return m.online[userID]
}

type mockOfflineNotifier struct {
	mock.Mock
}

func (m *mockOfflineNotifier) NotifyNewMessage(ctx context.Context, userID uint, senderName, preview string, conversationID uint) {
	m.Called(ctx, userID, senderName, preview, conversationID)
}

type mockUnreadPusher struct {
	mock.Mock
}

func (m *mockUnreadPusher) Execute(ctx context.Context, userID uint) {
	m.Called(ctx, userID)
}

// passthroughSanitizer leaves content untouched.
type passthroughSanitizer struct{}

func (passthroughSanitizer) CleanText(input string) string {
	return input
}

type nopLogger struct{}

func (nopLogger) Debug(msg string, args ...any) {}
func (nopLogger) Info(msg string, args ...any)  {}
func (nopLogger) Warn(msg string, args ...any)  {}
func (nopLogger) Error(msg string, args ...any) {}

func (l nopLogger) With(args ...any) logger.Interface  { return l }
func (l nopLogger) Named(name string) logger.Interface { return l }

func (nopLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (nopLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (nopLogger) Errorw(msg string, keysAndValues ...interface{}) {}
