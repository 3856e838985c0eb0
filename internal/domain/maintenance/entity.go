package maintenance

import (
	"strings"
	"time"

	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/pkg/fielddiff"
)

// Schedule is one preventive-maintenance plan for a piece of equipment,
// keyed by (ficha, maintenance type). NextDue and Remaining are derived
// caches: they are always rewritten from Recompute output and never
// accepted as-is from an external source.
type Schedule struct {
	Ficha              string
	Type               string
	EquipmentName      string
	CurrentUsage       float64
	Frequency          float64
	UsageAtLastService float64
	LastServiceDate    *time.Time
	NextDue            float64
	Remaining          float64
	Active             bool
}

// Key identifies a schedule. The type half is matched case-insensitively,
// mirroring how the source data keys the pair.
type Key struct {
	Ficha string
	Type  string
}

func (k Key) String() string {
	return k.Ficha + " · " + k.Type
}

func NewKey(ficha, typ string) Key {
	return Key{Ficha: ficha, Type: strings.ToLower(typ)}
}

func (s Schedule) NaturalKey() Key {
	return NewKey(s.Ficha, s.Type)
}

// DisplayKey keeps the type's original casing for summaries and warnings.
func (s Schedule) DisplayKey() string {
	return s.Ficha + " · " + s.Type
}

func (s Schedule) Validate() error {
	if err := equipment.ValidateFicha(s.Ficha); err != nil {
		return err
	}
	if strings.TrimSpace(s.Type) == "" {
		return ErrEmptyType
	}
	if s.Frequency <= 0 {
		return ErrNonPositiveFrequency
	}
	if s.CurrentUsage < 0 {
		return ErrNegativeUsage
	}
	if s.UsageAtLastService < 0 {
		return ErrNegativeUsage
	}
	return nil
}

// Diff compares the tracked fields. Remaining and NextDue are derived and
// deliberately excluded; so is UsageAtLastService, which only moves when a
// completed service is registered, not through snapshot imports.
func (s Schedule) Diff(candidate Schedule) []string {
	var cl fielddiff.ChangeList
	cl.Float("current usage", s.CurrentUsage, candidate.CurrentUsage)
	cl.Float("frequency", s.Frequency, candidate.Frequency)
	cl.Date("last service date", s.LastServiceDate, candidate.LastServiceDate)
	return cl.Changes()
}

// Merge applies the candidate's stored fields onto the live schedule,
// preserving the natural key. The caller must run Recompute on the result
// before committing it.
func (s Schedule) Merge(candidate Schedule) Schedule {
	merged := candidate
	merged.Ficha = s.Ficha
	merged.Type = s.Type
	return merged
}
