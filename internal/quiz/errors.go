package quiz

import "errors"

var (
	// ErrInsufficientEntities is returned when a session is started with fewer
	// countries than a single round needs.
	ErrInsufficientEntities = errors.New("not enough countries for a round")
	// ErrDuplicateEntity is returned when two countries share a name.
	ErrDuplicateEntity = errors.New("duplicate country")
	// ErrInvalidState is returned when an operation is not allowed in the current phase.
	ErrInvalidState = errors.New("operation not allowed in current phase")
	// ErrOutOfRange is returned when a choice index is outside the current round.
	ErrOutOfRange = errors.New("choice index out of range")
)
