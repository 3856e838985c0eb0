package equipment

import "errors"

var (
	ErrEmptyFicha     = errors.New("ficha cannot be empty")
	ErrMalformedFicha = errors.New("ficha must match AA-###")
)
