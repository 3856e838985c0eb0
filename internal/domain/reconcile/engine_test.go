//go:build unit

package reconcile_test

import (
	"testing"

	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/domain/maintenance"
	"fleetsync/internal/domain/reconcile"
	"fleetsync/tests/common/builder"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMergeInsertsUnknownRecords(t *testing.T) {
	snapshot := reconcile.Snapshot{
		Equipment:   []equipment.Equipment{builder.NewEquipmentBuilder().Build()},
		Inventory:   []inventory.Item{builder.NewInventoryBuilder().Build()},
		Maintenance: []maintenance.Schedule{builder.NewMaintenanceBuilder().BuildRaw()},
	}

	merged, summary := reconcile.Merge(reconcile.LiveSet{}, snapshot)

	assert.Equal(t, []string{"AC-010"}, summary.Equipment.Inserted)
	assert.Equal(t, []string{"FIL-001"}, summary.Inventory.Inserted)
	assert.Equal(t, []string{"AC-010 · Engrase"}, summary.Maintenance.Inserted)
	assert.Equal(t, 3, summary.TotalChanges)
	assert.Empty(t, summary.Warnings)

	require.Len(t, merged.Maintenance, 1)
	// Window is derived on insert even though the snapshot carried none.
	assert.InDelta(t, 1250, merged.Maintenance[0].NextDue, 1e-9)
	assert.InDelta(t, 70, merged.Maintenance[0].Remaining, 1e-9)
}

func TestMergeUpdatesMatchedRecords(t *testing.T) {
	live := reconcile.LiveSet{
		Equipment:   []equipment.Equipment{builder.NewEquipmentBuilder().Build()},
		Maintenance: []maintenance.Schedule{builder.NewMaintenanceBuilder().Build()},
	}

	snapshot := reconcile.Snapshot{
		Equipment: []equipment.Equipment{
			builder.NewEquipmentBuilder().With(func(b *builder.EquipmentBuilder) {
				b.Name = "Excavator 330"
			}).Build(),
		},
		Maintenance: []maintenance.Schedule{
			builder.NewMaintenanceBuilder().With(func(b *builder.MaintenanceBuilder) {
				b.CurrentUsage = 1300
			}).BuildRaw(),
		},
	}

	merged, summary := reconcile.Merge(live, snapshot)

	require.Len(t, summary.Equipment.Updated, 1)
	assert.Equal(t, "AC-010", summary.Equipment.Updated[0].Key)
	assert.Equal(t, []string{"name: Excavator 320 → Excavator 330"}, summary.Equipment.Updated[0].Changes)

	require.Len(t, summary.Maintenance.Updated, 1)
	assert.Equal(t, []string{"current usage: 1180 → 1300"}, summary.Maintenance.Updated[0].Changes)

	// Record count is stable: updates never duplicate.
	assert.Len(t, merged.Equipment, 1)
	assert.Len(t, merged.Maintenance, 1)

	// Window follows the new usage.
	assert.InDelta(t, -50, merged.Maintenance[0].Remaining, 1e-9)
	assert.Equal(t, 2, summary.TotalChanges)
}

func TestMergeIsNonDestructive(t *testing.T) {
	// A record absent from the snapshot survives untouched.
	stays := builder.NewEquipmentBuilder().With(func(b *builder.EquipmentBuilder) {
		b.Ficha = "GR-201"
		b.Name = "Crane 70t"
	}).Build()

	live := reconcile.LiveSet{Equipment: []equipment.Equipment{stays}}
	snapshot := reconcile.Snapshot{
		Equipment: []equipment.Equipment{builder.NewEquipmentBuilder().Build()},
	}

	merged, summary := reconcile.Merge(live, snapshot)

	require.Len(t, merged.Equipment, 2)
	assert.Empty(t, cmp.Diff(stays, merged.Equipment[0]))
	assert.Equal(t, []string{"AC-010"}, summary.Equipment.Inserted)
}

func TestMergeSkipsInvalidRecords(t *testing.T) {
	snapshot := reconcile.Snapshot{
		Equipment: []equipment.Equipment{
			builder.NewEquipmentBuilder().With(func(b *builder.EquipmentBuilder) { b.Ficha = "bad-ficha" }).Build(),
			builder.NewEquipmentBuilder().Build(),
		},
		Inventory: []inventory.Item{
			builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) { b.Quantity = -5 }).Build(),
		},
		Maintenance: []maintenance.Schedule{
			builder.NewMaintenanceBuilder().With(func(b *builder.MaintenanceBuilder) { b.Frequency = 0 }).BuildRaw(),
		},
	}

	merged, summary := reconcile.Merge(reconcile.LiveSet{}, snapshot)

	// One warning per skipped record; the valid sibling still lands.
	assert.Len(t, summary.Warnings, 3)
	assert.Equal(t, []string{"AC-010"}, summary.Equipment.Inserted)
	assert.Len(t, merged.Equipment, 1)
	assert.Empty(t, merged.Inventory)
	assert.Empty(t, merged.Maintenance)
	assert.Equal(t, 1, summary.TotalChanges)
}

func TestMergeMatchesMaintenanceTypeCaseInsensitively(t *testing.T) {
	live := reconcile.LiveSet{
		Maintenance: []maintenance.Schedule{builder.NewMaintenanceBuilder().Build()},
	}
	snapshot := reconcile.Snapshot{
		Maintenance: []maintenance.Schedule{
			builder.NewMaintenanceBuilder().With(func(b *builder.MaintenanceBuilder) {
				b.Type = "ENGRASE"
				b.CurrentUsage = 1200
			}).BuildRaw(),
		},
	}

	merged, summary := reconcile.Merge(live, snapshot)

	// Matched, not duplicated; live record keeps its type casing.
	require.Len(t, merged.Maintenance, 1)
	assert.Equal(t, "Engrase", merged.Maintenance[0].Type)
	assert.Empty(t, summary.Maintenance.Inserted)
	assert.Len(t, summary.Maintenance.Updated, 1)
}

func TestMergeIsIdempotent(t *testing.T) {
	snapshot := reconcile.Snapshot{
		Equipment:   []equipment.Equipment{builder.NewEquipmentBuilder().Build()},
		Inventory:   []inventory.Item{builder.NewInventoryBuilder().Build()},
		Maintenance: []maintenance.Schedule{builder.NewMaintenanceBuilder().BuildRaw()},
	}

	first, firstSummary := reconcile.Merge(reconcile.LiveSet{}, snapshot)
	require.Equal(t, 3, firstSummary.TotalChanges)

	second, secondSummary := reconcile.Merge(first, snapshot)

	assert.Equal(t, 0, secondSummary.TotalChanges)
	assert.Empty(t, secondSummary.Warnings)
	assert.Empty(t, cmp.Diff(first, second))
}

func TestMergeDoesNotMutateInputs(t *testing.T) {
	liveEquipment := builder.NewEquipmentBuilder().Build()
	live := reconcile.LiveSet{Equipment: []equipment.Equipment{liveEquipment}}

	snapshot := reconcile.Snapshot{
		Equipment: []equipment.Equipment{
			builder.NewEquipmentBuilder().With(func(b *builder.EquipmentBuilder) {
				b.Name = "Renamed"
			}).Build(),
		},
	}

	_, _ = reconcile.Merge(live, snapshot)

	assert.Equal(t, "Excavator 320", live.Equipment[0].Name)
}

func TestMergeEmptySnapshotIsNoop(t *testing.T) {
	live := reconcile.LiveSet{
		Equipment: []equipment.Equipment{builder.NewEquipmentBuilder().Build()},
	}

	merged, summary := reconcile.Merge(live, reconcile.Snapshot{})

	assert.Equal(t, 0, summary.TotalChanges)
	assert.Empty(t, summary.Warnings)
	assert.Len(t, merged.Equipment, 1)
}
