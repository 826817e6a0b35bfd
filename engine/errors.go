package engine

import "errors"

// Error taxonomy. Everything except ErrEmptyPile is recoverable: the
// resolver returns the unchanged state plus the error, and the same
// seat may retry with a legal action.
var (
	// ErrIllegalAction — the action does not belong to the current
	// phase's legal set, or it is not the actor's turn.
	ErrIllegalAction = errors.New("illegal action")

	// ErrInvalidTarget — out-of-range slot/seat index, or a self-target
	// where the power requires another seat.
	ErrInvalidTarget = errors.New("invalid target")

	// ErrIllegalCall — Cambio called a second time in the same match.
	ErrIllegalCall = errors.New("illegal cambio call")

	// ErrEmptyPile — both piles exhausted. Fatal: the match moves to
	// PhaseAborted, distinct from a normal game over.
	ErrEmptyPile = errors.New("empty pile")
)

// ErrorTag maps a resolver error to a stable string tag for the
// environment's info channel. Unknown errors map to "internal".
func ErrorTag(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, ErrIllegalAction):
		return "illegal_action"
	case errors.Is(err, ErrInvalidTarget):
		return "invalid_target"
	case errors.Is(err, ErrIllegalCall):
		return "illegal_call"
	case errors.Is(err, ErrEmptyPile):
		return "empty_pile"
	default:
		return "internal"
	}
}

// IsFatal reports whether the error terminates the match.
func IsFatal(err error) bool { return errors.Is(err, ErrEmptyPile) }
