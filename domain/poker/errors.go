package poker

import (
	"errors"
	"fmt"
)

// ErrHandDead marks an unrecoverable hand-level failure (deck exhaustion,
// inconsistent pot). The current hand cannot continue; the error carries
// the underlying cause.
var ErrHandDead = errors.New("poker: hand aborted")

// ErrGameOver is returned when fewer than two seats remain in the game.
var ErrGameOver = errors.New("poker: not enough seats to continue")

// IllegalActionError rejects an action that is out of turn, out of phase,
// or breaks a betting rule. The table state is guaranteed untouched.
type IllegalActionError struct {
	Reason string
}

func (e *IllegalActionError) Error() string {
	return "poker: illegal action: " + e.Reason
}

// IsIllegalAction reports whether err is a recoverable action rejection
// rather than a hand-level failure.
func IsIllegalAction(err error) bool {
	var e *IllegalActionError
	return errors.As(err, &e)
}

func illegalf(format string, args ...interface{}) error {
	return &IllegalActionError{Reason: fmt.Sprintf(format, args...)}
}
