//go:build unit

package builder

import (
	"fleetsync/internal/domain/equipment"
)

type EquipmentBuilder struct {
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

func NewEquipmentBuilder() *EquipmentBuilder {
	return &EquipmentBuilder{
		Ficha:        "AC-010",
		Name:         "Excavator 320",
		Make:         "Caterpillar",
		Model:        "320D",
		SerialNumber: "CAT00320D",
		Plate:        "EX-01-AB",
		Category:     "Excavadora",
		Active:       true,
	}
}

func (b *EquipmentBuilder) With(mutate func(*EquipmentBuilder)) *EquipmentBuilder {
	mutate(b)
	return b
}

func (b *EquipmentBuilder) Build() equipment.Equipment {
	return equipment.Equipment{
		Ficha:            b.Ficha,
		Name:             b.Name,
		Make:             b.Make,
		Model:            b.Model,
		SerialNumber:     b.SerialNumber,
		Plate:            b.Plate,
		Category:         b.Category,
		Active:           b.Active,
		InactivityReason: b.InactivityReason,
	}
}
