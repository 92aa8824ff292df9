package valueobjects

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	tests := []struct {
		from    OrderStatus
		to      OrderStatus
		allowed bool
	}{
		{StatusPending, StatusConfirmed, true},
		{StatusPending, StatusCancelled, true},
		{StatusPending, StatusCompleted, false},
		{StatusPending, StatusRefunded, false},
		{StatusConfirmed, StatusCompleted, true},
		{StatusConfirmed, StatusCancelled, true},
		{StatusConfirmed, StatusPending, false},
		{StatusCompleted, StatusRefunded, true},
		{StatusCompleted, StatusCancelled, false},
		{StatusCancelled, StatusRefunded, true},
		{StatusCancelled, StatusConfirmed, false},
		{StatusRefunded, StatusPending, false},
		{StatusRefunded, StatusCancelled, false},
	}

	for _, tt := range tests {
		t.Run(tt.from.String()+"->"+tt.to.String(), func(t *testing.T) {
			assert.Equal(t, tt.allowed, tt.from.CanTransitionTo(tt.to))
		})
	}
}

func TestOrderStatus_IsTerminal(t *testing.T) {
	assert.False(t, StatusPending.IsTerminal())
	assert.False(t, StatusConfirmed.IsTerminal())
	assert.True(t, StatusCompleted.IsTerminal())
	assert.True(t, StatusCancelled.IsTerminal())
	assert.True(t, StatusRefunded.IsTerminal())
}

func TestOrderStatus_IsDeletable(t *testing.T) {
	assert.True(t, StatusPending.IsDeletable())
	assert.True(t, StatusCancelled.IsDeletable())
	assert.False(t, StatusConfirmed.IsDeletable())
	assert.False(t, StatusCompleted.IsDeletable())
	assert.False(t, StatusRefunded.IsDeletable())
}

func TestNewOrderStatus(t *testing.T) {
	status, err := NewOrderStatus("pending")
	assert.NoError(t, err)
	assert.Equal(t, StatusPending, status)

	_, err = NewOrderStatus("shipped")
	assert.Error(t, err)

	_, err = NewOrderStatus("")
	assert.Error(t, err)
}
