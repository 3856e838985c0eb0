package inventory

import "errors"

var (
	ErrEmptyCode            = errors.New("identification code cannot be empty")
	ErrNegativeQuantity     = errors.New("quantity cannot be negative")
	ErrNegativeMinimumStock = errors.New("minimum stock cannot be negative")
)
