package valueobjects

import "fmt"

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusCompleted OrderStatus = "completed"
	StatusCancelled OrderStatus = "cancelled"
	StatusRefunded  OrderStatus = "refunded"
)

var validOrderStatuses = map[OrderStatus]bool{
	StatusPending:   true,
	StatusConfirmed: true,
	StatusCompleted: true,
	StatusCancelled: true,
	StatusRefunded:  true,
}

// orderStatusTransitions is the full edge set of the lifecycle. Refunded is
// reachable only through a separate administrative path; no command surface
// exposes it.
var orderStatusTransitions = map[OrderStatus][]OrderStatus{
	StatusPending: {
		StatusConfirmed,
		StatusCancelled,
	},
	StatusConfirmed: {
		StatusCompleted,
		StatusCancelled,
	},
	StatusCompleted: {
		StatusRefunded,
	},
	StatusCancelled: {
		StatusRefunded,
	},
	StatusRefunded: {},
}

func (s OrderStatus) String() string {
	return string(s)
}

func (s OrderStatus) IsValid() bool {
	return validOrderStatuses[s]
}

func (s OrderStatus) CanTransitionTo(newStatus OrderStatus) bool {
	allowedTransitions, ok := orderStatusTransitions[s]
	if !ok {
		return false
	}

	for _, allowed := range allowedTransitions {
		if allowed == newStatus {
			return true
		}
	}
	return false
}

func (s OrderStatus) IsPending() bool {
	return s == StatusPending
}

func (s OrderStatus) IsConfirmed() bool {
	return s == StatusConfirmed
}

func (s OrderStatus) IsCompleted() bool {
	return s == StatusCompleted
}

func (s OrderStatus) IsCancelled() bool {
	return s == StatusCancelled
}

func (s OrderStatus) IsRefunded() bool {
	return s == StatusRefunded
}

// IsTerminal reports whether no user-facing transition leaves this status.
func (s OrderStatus) IsTerminal() bool {
	return s == StatusCompleted || s == StatusCancelled || s == StatusRefunded
}

// IsDeletable reports whether an order in this status may be hard-removed.
func (s OrderStatus) IsDeletable() bool {
	return s == StatusPending || s == StatusCancelled
}

func NewOrderStatus(s string) (OrderStatus, error) {
	status := OrderStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid order status: %s", s)
	}
	return status, nil
}
