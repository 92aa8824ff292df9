package usecases

import (
	stderrors "errors"

	"tradepost/internal/domain/order"
	"tradepost/internal/shared/errors"
)

// mapGuardError translates domain guard failures onto the transport error
// taxonomy. An invalid transition is a state conflict (the order moved on);
// a role failure is forbidden. Anything else passes through untouched.
func mapGuardError(err error) error {
	switch {
	case stderrors.Is(err, order.ErrInvalidTransition):
		return errors.NewStateConflictError(err.Error())
	case stderrors.Is(err, order.ErrNotBuyer),
		stderrors.Is(err, order.ErrNotSeller),
		stderrors.Is(err, order.ErrNotParticipant):
		return errors.NewForbiddenError(err.Error())
	default:
		return err
	}
}
