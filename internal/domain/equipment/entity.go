package equipment

import (
	"regexp"
	"strings"

	"fleetsync/internal/pkg/fielddiff"
)

// Ficha format: two uppercase letters, dash, three digits (e.g. AC-010).
var fichaPattern = regexp.MustCompile(`^[A-Z]{2}-\d{3}$`)

// Equipment is a reconciliation record keyed by its ficha. The ficha is
// immutable once assigned; merges never rewrite it.
type Equipment struct {
	Ficha            string
	Name             string
	Make             string
	Model            string
	SerialNumber     string
	Plate            string
	Category         string
	Active           bool
	InactivityReason string
}

// ValidateFicha reports whether s can serve as a natural key. Matching is
// case-sensitive: the source data is expected to normalize case upstream.
func ValidateFicha(s string) error {
	if strings.TrimSpace(s) == "" {
		return ErrEmptyFicha
	}
	if !fichaPattern.MatchString(s) {
		return ErrMalformedFicha
	}
	return nil
}

func (e Equipment) NaturalKey() string {
	return e.Ficha
}

// Validate checks the minimally required fields for staging an insert.
func (e Equipment) Validate() error {
	return ValidateFicha(e.Ficha)
}

// Diff compares the tracked fields of an incoming candidate against the
// live record. Ficha is the match key and therefore never diffed; the
// inactivity reason rides along on updates but does not count as a change.
func (e Equipment) Diff(candidate Equipment) []string {
	var cl fielddiff.ChangeList
	cl.String("name", e.Name, candidate.Name)
	cl.String("make", e.Make, candidate.Make)
	cl.String("model", e.Model, candidate.Model)
	cl.String("serial", e.SerialNumber, candidate.SerialNumber)
	cl.String("plate", e.Plate, candidate.Plate)
	cl.String("category", e.Category, candidate.Category)
	cl.Bool("active", e.Active, candidate.Active)
	return cl.Changes()
}

// Merge returns the live record with the candidate's fields applied,
// preserving the immutable ficha.
func (e Equipment) Merge(candidate Equipment) Equipment {
	merged := candidate
	merged.Ficha = e.Ficha
	return merged
}
