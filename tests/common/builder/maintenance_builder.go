//go:build unit

package builder

import (
	"time"

	"fleetsync/internal/domain/maintenance"
)

type MaintenanceBuilder struct {
	Ficha              string
	Type               string
	EquipmentName      string
	CurrentUsage       float64
	Frequency          float64
	UsageAtLastService float64
	LastServiceDate    *time.Time
	Active             bool
}

func NewMaintenanceBuilder() *MaintenanceBuilder {
	lastService := time.Date(2026, 5, 2, 0, 0, 0, 0, time.UTC)
	return &MaintenanceBuilder{
		Ficha:              "AC-010",
		Type:               "Engrase",
		EquipmentName:      "Excavator 320",
		CurrentUsage:       1180,
		Frequency:          250,
		UsageAtLastService: 1000,
		LastServiceDate:    &lastService,
		Active:             true,
	}
}

func (b *MaintenanceBuilder) With(mutate func(*MaintenanceBuilder)) *MaintenanceBuilder {
	mutate(b)
	return b
}

// Build returns the schedule with its window derived, the shape a live
// record has after any commit.
func (b *MaintenanceBuilder) Build() maintenance.Schedule {
	s := b.BuildRaw()
	if recomputed, err := maintenance.Recompute(s); err == nil {
		return recomputed
	}
	return s
}

// BuildRaw leaves NextDue and Remaining zero, the shape a snapshot
// candidate arrives in.
func (b *MaintenanceBuilder) BuildRaw() maintenance.Schedule {
	return maintenance.Schedule{
		Ficha:              b.Ficha,
		Type:               b.Type,
		EquipmentName:      b.EquipmentName,
		CurrentUsage:       b.CurrentUsage,
		Frequency:          b.Frequency,
		UsageAtLastService: b.UsageAtLastService,
		LastServiceDate:    b.LastServiceDate,
		Active:             b.Active,
	}
}
