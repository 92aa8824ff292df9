package usecases

import (
	"context"

	"github.com/stretchr/testify/mock"

	"tradepost/internal/domain/order"
	"tradepost/internal/shared/logger"
)

type mockOrderRepo struct {
	mock.Mock
}

func (m *mockOrderRepo) Create(ctx context.Context, o *order.Order) error {
	args := m.Called(ctx, o)
	return args.Error(0)
}

func (m *mockOrderRepo) FindByID(ctx context.Context, id uint) (*order.Order, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepo) FindByNumber(ctx context.Context, number string) (*order.Order, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Order), args.Error(1)
}

func (m *mockOrderRepo) ListByUserID(ctx context.Context, userID uint, limit, offset int) ([]*order.Order, int64, error) {
	args := m.Called(ctx, userID, limit, offset)
	if args.Get(0) == nil {
		return nil, args.Get(1).(int64), args.Error(2)
	}
	return args.Get(0).([]*order.Order), args.Get(1).(int64), args.Error(2)
}

func (m *mockOrderRepo) Update(ctx context.Context, o *order.Order, expectedVersion int) error {
	args := m.Called(ctx, o, expectedVersion)
	return args.Error(0)
}

func (m *mockOrderRepo) Delete(ctx context.Context, id uint) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockReviewRepo struct {
	mock.Mock
}

func (m *mockReviewRepo) Create(ctx context.Context, r *order.Review) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *mockReviewRepo) ExistsByOrderAndReviewer(ctx context.Context, orderID, reviewerID uint) (bool, error) {
	args := m.Called(ctx, orderID, reviewerID)
	return args.Bool(0), args.Error(1)
}

func (m *mockReviewRepo) ListByOrderID(ctx context.Context, orderID uint) ([]*order.Review, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*order.Review), args.Error(1)
}

type mockListingReader struct {
	mock.Mock
}

func (m *mockListingReader) FindByID(ctx context.Context, id uint) (*order.Listing, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*order.Listing), args.Error(1)
}

type mockNumberGenerator struct {
	mock.Mock
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	args := m.Called(ctx)
	return args.String(0), args.Error(1)
}

type mockOrderNotifier struct {
	mock.Mock
}

func (m *mockOrderNotifier) NotifyOrderEvent(ctx context.Context, userID uint, title, message string, orderID uint) {
	m.Called(ctx, userID, title, message, orderID)
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
