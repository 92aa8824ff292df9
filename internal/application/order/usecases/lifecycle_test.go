package usecases

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"tradepost/internal/domain/order"
	vo "tradepost/internal/domain/order/valueobjects"
	"tradepost/internal/shared/errors"
)

const (
	buyerID  uint = 10
	sellerID uint = 20
)

func testOrder(t *testing.T, status vo.OrderStatus, version int) *order.Order {
	t.Helper()

	now := time.Now().UTC()
	o, err := order.ReconstructOrder(
		1, "ORD-20260830-AB12CD34", 5, buyerID, sellerID, 120.50,
		status, "Central Station", nil, "",
		nil, nil, nil, "", nil,
		version, now, now,
	)
	require.NoError(t, err)
	return o
}

func TestConfirmOrderUseCase_Execute(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusPending, 3)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)
	// The optimistic check must use the version at load time, not the bumped one.
	orderRepo.On("Update", mock.Anything, o, 3).Return(nil)
	notifier.On("NotifyOrderEvent", mock.Anything, buyerID, "Order confirmed", mock.Anything, uint(1)).Return()

	uc := NewConfirmOrderUseCase(orderRepo, notifier, nopLogger{})

	result, err := uc.Execute(context.Background(), ConfirmOrderCommand{OrderID: 1, ActorID: sellerID})

	require.NoError(t, err)
	assert.Equal(t, "confirmed", result.Status)
	orderRepo.AssertExpectations(t)
	notifier.AssertExpectations(t)
}

func TestConfirmOrderUseCase_NotSeller(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusPending, 3)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)

	uc := NewConfirmOrderUseCase(orderRepo, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), ConfirmOrderCommand{OrderID: 1, ActorID: buyerID})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	orderRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything, mock.Anything)
	notifier.AssertNotCalled(t, "NotifyOrderEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestConfirmOrderUseCase_InvalidTransition(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusCompleted, 3)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)

	uc := NewConfirmOrderUseCase(orderRepo, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), ConfirmOrderCommand{OrderID: 1, ActorID: sellerID})

	require.Error(t, err)
	assert.True(t, errors.IsStateConflictError(err))
}

func TestConfirmOrderUseCase_VersionConflict(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusPending, 3)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)
	orderRepo.On("Update", mock.Anything, o, 3).
		Return(errors.NewStateConflictError("order was modified concurrently"))

	uc := NewConfirmOrderUseCase(orderRepo, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), ConfirmOrderCommand{OrderID: 1, ActorID: sellerID})

	require.Error(t, err)
	assert.True(t, errors.IsStateConflictError(err))
	notifier.AssertNotCalled(t, "NotifyOrderEvent", mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestCancelOrderUseCase_Execute(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusPending, 1)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)
	orderRepo.On("Update", mock.Anything, o, 1).Return(nil)
	// The counterpart of the cancelling buyer is the seller.
	notifier.On("NotifyOrderEvent", mock.Anything, sellerID, "Order cancelled", mock.Anything, uint(1)).Return()

	uc := NewCancelOrderUseCase(orderRepo, notifier, nopLogger{})

	result, err := uc.Execute(context.Background(), CancelOrderCommand{
		OrderID: 1,
		ActorID: buyerID,
		Reason:  "found a better deal",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)
	notifier.AssertExpectations(t)
}

func TestCancelOrderUseCase_ConfirmedOrderIsStateConflict(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusConfirmed, 2)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)

	uc := NewCancelOrderUseCase(orderRepo, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), CancelOrderCommand{OrderID: 1, ActorID: buyerID})

	require.Error(t, err)
	assert.True(t, errors.IsStateConflictError(err))
}

func TestRejectOrderUseCase_Execute(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusConfirmed, 2)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)
	orderRepo.On("Update", mock.Anything, o, 2).Return(nil)
	notifier.On("NotifyOrderEvent", mock.Anything, buyerID, mock.Anything, mock.Anything, uint(1)).Return()

	uc := NewRejectOrderUseCase(orderRepo, notifier, nopLogger{})

	result, err := uc.Execute(context.Background(), RejectOrderCommand{
		OrderID: 1,
		ActorID: sellerID,
		Reason:  "item damaged in storage",
	})

	require.NoError(t, err)
	assert.Equal(t, "cancelled", result.Status)
}

func TestRejectOrderUseCase_BuyerCannotReject(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusConfirmed, 2)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)

	uc := NewRejectOrderUseCase(orderRepo, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), RejectOrderCommand{OrderID: 1, ActorID: buyerID})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCompleteOrderUseCase_Execute(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusConfirmed, 2)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)
	orderRepo.On("Update", mock.Anything, o, 2).Return(nil)
	notifier.On("NotifyOrderEvent", mock.Anything, sellerID, mock.Anything, mock.Anything, uint(1)).Return()

	uc := NewCompleteOrderUseCase(orderRepo, notifier, nopLogger{})

	result, err := uc.Execute(context.Background(), CompleteOrderCommand{OrderID: 1, ActorID: buyerID})

	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestRefundOrderUseCase_RequiresAdmin(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	uc := NewRefundOrderUseCase(orderRepo, notifier, nopLogger{})

	_, err := uc.Execute(context.Background(), RefundOrderCommand{
		OrderID: 1,
		ActorID: buyerID,
		IsAdmin: false,
	})

	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
	orderRepo.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestRefundOrderUseCase_Execute(t *testing.T) {
	orderRepo := new(mockOrderRepo)
	notifier := new(mockOrderNotifier)

	o := testOrder(t, vo.StatusCompleted, 4)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)
	orderRepo.On("Update", mock.Anything, o, 4).Return(nil)
	// Both parties are notified.
	notifier.On("NotifyOrderEvent", mock.Anything, buyerID, "Order refunded", mock.Anything, uint(1)).Return()
	notifier.On("NotifyOrderEvent", mock.Anything, sellerID, "Order refunded", mock.Anything, uint(1)).Return()

	uc := NewRefundOrderUseCase(orderRepo, notifier, nopLogger{})

	result, err := uc.Execute(context.Background(), RefundOrderCommand{
		OrderID: 1,
		ActorID: 777,
		IsAdmin: true,
	})

	require.NoError(t, err)
	assert.Equal(t, "refunded", result.Status)
	notifier.AssertExpectations(t)
}

func TestDeleteOrderUseCase_Execute(t *testing.T) {
	orderRepo := new(mockOrderRepo)

	o := testOrder(t, vo.StatusCancelled, 2)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)
	orderRepo.On("Delete", mock.Anything, uint(1)).Return(nil)

	uc := NewDeleteOrderUseCase(orderRepo, nopLogger{})

	err := uc.Execute(context.Background(), DeleteOrderCommand{OrderID: 1, ActorID: buyerID})

	require.NoError(t, err)
	orderRepo.AssertExpectations(t)
}

func TestDeleteOrderUseCase_CompletedOrderIsProtected(t *testing.T) {
	orderRepo := new(mockOrderRepo)

	o := testOrder(t, vo.StatusCompleted, 3)
	orderRepo.On("FindByID", mock.Anything, uint(1)).Return(o, nil)

	uc := NewDeleteOrderUseCase(orderRepo, nopLogger{})

	err := uc.Execute(context.Background(), DeleteOrderCommand{OrderID: 1, ActorID: buyerID})

	require.Error(t, err)
	assert.True(t, errors.IsStateConflictError(err))
	orderRepo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}
