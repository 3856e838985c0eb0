// Package reconcile merges an externally supplied snapshot of equipment,
// inventory and scheduled-maintenance records into the live set. The merge
// is additive and corrective only: a record missing from the snapshot is
// untouched, never deactivated or deleted. Malformed candidates degrade to
// warnings and are skipped; nothing aborts the merge.
package reconcile

import (
	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/domain/maintenance"
)

// Snapshot holds the candidate records of one import.
type Snapshot struct {
	Equipment   []equipment.Equipment
	Inventory   []inventory.Item
	Maintenance []maintenance.Schedule
}

// LiveSet is the current state of the three reconciled collections.
type LiveSet struct {
	Equipment   []equipment.Equipment
	Inventory   []inventory.Item
	Maintenance []maintenance.Schedule
}

// Merge reconciles snapshot into live and returns the merged set together
// with a summary of what changed. It is a pure function: the inputs are
// not mutated, no I/O happens, and merging the same snapshot into its own
// result yields zero changes. The three entity types are independent, so
// their passes could run concurrently; they are kept sequential here only
// because each pass is trivially cheap.
func Merge(live LiveSet, snapshot Snapshot) (LiveSet, Summary) {
	var summary Summary

	merged := LiveSet{
		Equipment:   mergeEquipment(live.Equipment, snapshot.Equipment, &summary),
		Inventory:   mergeInventory(live.Inventory, snapshot.Inventory, &summary),
		Maintenance: mergeMaintenance(live.Maintenance, snapshot.Maintenance, &summary),
	}

	summary.finalize()
	return merged, summary
}

func mergeEquipment(live, candidates []equipment.Equipment, summary *Summary) []equipment.Equipment {
	merged := make([]equipment.Equipment, len(live))
	copy(merged, live)

	index := make(map[string]int, len(merged))
	for i, e := range merged {
		index[e.NaturalKey()] = i
	}

	for _, candidate := range candidates {
		if err := equipment.ValidateFicha(candidate.Ficha); err != nil {
			summary.warnf("skipped equipment %q (%s): %v", candidate.Ficha, orUnnamed(candidate.Name), err)
			continue
		}

		pos, found := index[candidate.NaturalKey()]
		if !found {
			merged = append(merged, candidate)
			index[candidate.NaturalKey()] = len(merged) - 1
			summary.Equipment.Inserted = append(summary.Equipment.Inserted, candidate.Ficha)
			continue
		}

		changes := merged[pos].Diff(candidate)
		if len(changes) == 0 {
			continue
		}
		merged[pos] = merged[pos].Merge(candidate)
		summary.Equipment.Updated = append(summary.Equipment.Updated, RecordChange{
			Key:     candidate.Ficha,
			Changes: changes,
		})
	}

	return merged
}

func mergeInventory(live, candidates []inventory.Item, summary *Summary) []inventory.Item {
	merged := make([]inventory.Item, len(live))
	copy(merged, live)

	index := make(map[string]int, len(merged))
	for i, item := range merged {
		index[item.NaturalKey()] = i
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			summary.warnf("skipped inventory item %q (%s): %v", candidate.Code, orUnnamed(candidate.Name), err)
			continue
		}

		pos, found := index[candidate.NaturalKey()]
		if !found {
			merged = append(merged, candidate)
			index[candidate.NaturalKey()] = len(merged) - 1
			summary.Inventory.Inserted = append(summary.Inventory.Inserted, candidate.Code)
			continue
		}

		changes := merged[pos].Diff(candidate)
		if len(changes) == 0 {
			continue
		}
		merged[pos] = merged[pos].Merge(candidate)
		summary.Inventory.Updated = append(summary.Inventory.Updated, RecordChange{
			Key:     candidate.Code,
			Changes: changes,
		})
	}

	return merged
}

func mergeMaintenance(live, candidates []maintenance.Schedule, summary *Summary) []maintenance.Schedule {
	merged := make([]maintenance.Schedule, len(live))
	copy(merged, live)

	index := make(map[maintenance.Key]int, len(merged))
	for i, s := range merged {
		index[s.NaturalKey()] = i
	}

	for _, candidate := range candidates {
		if err := candidate.Validate(); err != nil {
			summary.warnf("skipped maintenance %q (%s): %v", candidate.DisplayKey(), orUnnamed(candidate.EquipmentName), err)
			continue
		}

		// Derived fields are never trusted from the snapshot.
		recomputed, err := maintenance.Recompute(candidate)
		if err != nil {
			summary.warnf("skipped maintenance %q (%s): %v", candidate.DisplayKey(), orUnnamed(candidate.EquipmentName), err)
			continue
		}

		pos, found := index[candidate.NaturalKey()]
		if !found {
			merged = append(merged, recomputed)
			index[recomputed.NaturalKey()] = len(merged) - 1
			summary.Maintenance.Inserted = append(summary.Maintenance.Inserted, recomputed.DisplayKey())
			continue
		}

		changes := merged[pos].Diff(candidate)
		if len(changes) == 0 {
			continue
		}
		applied, err := maintenance.Recompute(merged[pos].Merge(candidate))
		if err != nil {
			summary.warnf("skipped maintenance %q (%s): %v", candidate.DisplayKey(), orUnnamed(candidate.EquipmentName), err)
			continue
		}
		merged[pos] = applied
		summary.Maintenance.Updated = append(summary.Maintenance.Updated, RecordChange{
			Key:     merged[pos].DisplayKey(),
			Changes: changes,
		})
	}

	return merged
}

func orUnnamed(name string) string {
	if name == "" {
		return "unnamed"
	}
	return name
}
