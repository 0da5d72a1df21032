package lifecycle

import (
	"errors"
	"fmt"

	"github.com/chris/bidding-wars/pkg/models"
)

var (
	// ErrForbidden is returned when the caller's role does not allow the action.
	ErrForbidden = errors.New("forbidden")
	// ErrInvalidTransition is wrapped by every TransitionError.
	ErrInvalidTransition = errors.New("invalid transition")
	// ErrWrongItemKind is returned for a fulfillment action that does not apply to the item's kind.
	ErrWrongItemKind = errors.New("wrong item kind")
	// ErrValidation is returned for malformed input.
	ErrValidation = errors.New("validation failed")
)

// TransitionError reports an action attempted from a status that does not allow it.
type TransitionError struct {
	AuctionId string
	From      models.AuctionStatus
	Action    string
	Reason    string
}

func (e *TransitionError) Error() string {
	msg := fmt.Sprintf("cannot %s auction %s in status %s", e.Action, e.AuctionId, e.From)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	return msg
}

func (e *TransitionError) Unwrap() error {
	return ErrInvalidTransition
}

func forbidden(action string) error {
	return fmt.Errorf("%w: caller may not %s", ErrForbidden, action)
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%w: %s", ErrValidation, fmt.Sprintf(format, args...))
}
