//go:build unit

package builder

import (
	"fleetsync/internal/domain/inventory"
)

type InventoryBuilder struct {
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

func NewInventoryBuilder() *InventoryBuilder {
	return &InventoryBuilder{
		Code:              "FIL-001",
		Name:              "Oil Filter",
		Type:              "Filtro",
		EquipmentCategory: "Excavadora",
		Supplier:          "Filtros del Este",
		Quantity:          12,
		MinimumStock:      4,
		Active:            true,
		CompatibleMakes:   []string{"Caterpillar"},
		CompatibleModels:  []string{"320D"},
	}
}

func (b *InventoryBuilder) With(mutate func(*InventoryBuilder)) *InventoryBuilder {
	mutate(b)
	return b
}

func (b *InventoryBuilder) Build() inventory.Item {
	return inventory.Item{
		Code:              b.Code,
		Name:              b.Name,
		Type:              b.Type,
		EquipmentCategory: b.EquipmentCategory,
		Supplier:          b.Supplier,
		Quantity:          b.Quantity,
		MinimumStock:      b.MinimumStock,
		Active:            b.Active,
		CompatibleMakes:   b.CompatibleMakes,
		CompatibleModels:  b.CompatibleModels,
	}
}
