package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	rtdto "tradepost/internal/application/realtime/dto"
	"tradepost/internal/domain/notification"
	"tradepost/internal/shared/logger"
)

type mockNotificationRepo struct {
	mock.Mock
}

func (m *mockNotificationRepo) Create(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockNotificationRepo) FindByID(ctx context.Context, id uint) (*notification.Notification, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*notification.Notification), args.Error(1)
}

func (m *mockNotificationRepo) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*notification.Notification, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*notification.Notification), args.Get(1).(int64), args.Error(2)
}

func (m *mockNotificationRepo) CountUnreadByUserID(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *mockNotificationRepo) Update(ctx context.Context, n *notification.Notification) error {
	args := m.Called(ctx, n)
	return args.Error(0)
}

func (m *mockNotificationRepo) MarkAllAsReadByUserID(ctx context.Context, userID uint) error {
	args := m.Called(ctx, userID)
	return args.Error(0)
}

type mockMessageCounter struct {
	mock.Mock
}

func (m *mockMessageCounter) CountUnreadByUserID(ctx context.Context, userID uint) (int64, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).(int64), args.Error(1)
}

// mockPresence records pushed envelopes per user and simulates a fixed number
// of live connections. With saturated set, every send queue rejects frames
// while the connections stay registered.
type mockPresence struct {
	connections map[uint]int
	pushed      map[uint][]*rtdto.Envelope
	saturated   bool
}

func newMockPresence(connections map[uint]int) *mockPresence {
	if connections == nil {
		connections = make(map[uint]int)
	}
	return &mockPresence{
		connections: connections,
		pushed:      make(map[uint][]*rtdto.Envelope),
	}
}

func (m *mockPresence) PushToNotify(userID uint, msg *rtdto.Envelope) int {
	if m.saturated {
		return 0
	}
	n := m.connections[userID]
	if n > 0 {
		m.pushed[userID] = append(m.pushed[userID], msg)
	}
	return n
}

func (m *mockPresence) IsOnline(userID uint) bool {
	return m.connections[userID] > 0
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
