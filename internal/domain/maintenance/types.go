package maintenance

import "errors"

var (
	ErrEmptyType            = errors.New("maintenance type cannot be empty")
	ErrNonPositiveFrequency = errors.New("frequency must be positive")
	ErrNegativeUsage        = errors.New("usage reading cannot be negative")
)
