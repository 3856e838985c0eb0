package inventory

import (
	"strings"

	"fleetsync/internal/pkg/fielddiff"
)

// Item is an inventory record keyed by its identification code.
type Item struct {
	Code              string
	Name              string
	Type              string
	EquipmentCategory string
	Supplier          string
	Quantity          int
	MinimumStock      int
	Active            bool
	CompatibleMakes   []string
	CompatibleModels  []string
}

func (i Item) NaturalKey() string {
	return i.Code
}

func (i Item) Validate() error {
	if strings.TrimSpace(i.Code) == "" {
		return ErrEmptyCode
	}
	if i.Quantity < 0 {
		return ErrNegativeQuantity
	}
	if i.MinimumStock < 0 {
		return ErrNegativeMinimumStock
	}
	return nil
}

// LowStock reports whether the item is at or below its minimum stock.
func (i Item) LowStock() bool {
	return i.Quantity <= i.MinimumStock
}

// Diff compares the tracked fields only. Compatible makes/models and the
// equipment category ride along on updates without counting as changes.
func (i Item) Diff(candidate Item) []string {
	var cl fielddiff.ChangeList
	cl.String("name", i.Name, candidate.Name)
	cl.String("type", i.Type, candidate.Type)
	cl.Int("quantity", i.Quantity, candidate.Quantity)
	cl.Int("minimum stock", i.MinimumStock, candidate.MinimumStock)
	cl.String("supplier", i.Supplier, candidate.Supplier)
	cl.Bool("active", i.Active, candidate.Active)
	return cl.Changes()
}

func (i Item) Merge(candidate Item) Item {
	merged := candidate
	merged.Code = i.Code
	return merged
}
