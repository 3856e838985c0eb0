package request

// UpdateThresholdsRequest carries the raw threshold pair. Pointers keep
// zero distinguishable from absent; normalization happens in the domain.
type UpdateThresholdsRequest struct {
	Critical   *float64 `json:"critical" binding:"required"`
	Preventive *float64 `json:"preventive" binding:"required"`
}
