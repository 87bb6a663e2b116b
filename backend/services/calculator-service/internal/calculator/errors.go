package calculator

import "errors"

var (
	// ErrInvalidRange reports a state-of-charge percentage outside [0,100].
	ErrInvalidRange = errors.New("percentages must be between 0 and 100")
	// ErrInvalidDirection reports an end percentage that does not exceed the start.
	ErrInvalidDirection = errors.New("end percentage must be greater than start percentage")
	// ErrDurationOverflow reports a charging time that is not finite or too large to express in hours.
	ErrDurationOverflow = errors.New("charging time is too long to represent")
)
