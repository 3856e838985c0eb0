package commands

import (
	"context"
	"log/slog"

	"fleetsync/internal/domain/reconcile"
	"fleetsync/internal/pkg/errs"
	"fleetsync/internal/pkg/metrics"
	"fleetsync/internal/usecase/shared"
)

var ErrSnapshotRead = errs.New("failed to read snapshot")

// SyncCommands drives one reconciliation: read the snapshot, merge it
// against the live set, and commit the staged rows atomically.
type SyncCommands interface {
	ImportSnapshot(ctx context.Context, source shared.SnapshotSource) (*reconcile.Summary, error)
}

type syncUseCaseImpl struct {
	uow     shared.UnitOfWork
	logger  *slog.Logger
	metrics *metrics.Registry
}

func NewSyncUseCase(uow shared.UnitOfWork, logger *slog.Logger, m *metrics.Registry) SyncCommands {
	return &syncUseCaseImpl{uow: uow, logger: logger, metrics: m}
}

// ImportSnapshot runs the whole merge inside one transaction so a store
// failure on any staged row rolls back every other row of the run.
// Record-level problems never surface here: they are already folded into
// the summary's warnings by the engine.
func (uc *syncUseCaseImpl) ImportSnapshot(ctx context.Context, source shared.SnapshotSource) (*reconcile.Summary, error) {
	snapshot, err := source.Read(ctx)
	if err != nil {
		return nil, errs.Mark(err, ErrSnapshotRead)
	}

	var summary reconcile.Summary
	err = uc.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		live, err := loadLiveSet(ctx, tx)
		if err != nil {
			return err
		}

		merged, result := reconcile.Merge(live, snapshot)
		summary = result

		if err := commitEquipment(ctx, tx, merged, result); err != nil {
			return err
		}
		if err := commitInventory(ctx, tx, merged, result); err != nil {
			return err
		}
		return commitMaintenance(ctx, tx, merged, result)
	})
	if err != nil {
		return nil, err
	}

	uc.metrics.ObserveSync(summary)
	uc.logger.Info("snapshot reconciled",
		"total_changes", summary.TotalChanges,
		"equipment_inserted", len(summary.Equipment.Inserted),
		"equipment_updated", len(summary.Equipment.Updated),
		"inventory_inserted", len(summary.Inventory.Inserted),
		"inventory_updated", len(summary.Inventory.Updated),
		"maintenance_inserted", len(summary.Maintenance.Inserted),
		"maintenance_updated", len(summary.Maintenance.Updated),
		"warnings", len(summary.Warnings),
	)
	return &summary, nil
}

func loadLiveSet(ctx context.Context, tx shared.Tx) (reconcile.LiveSet, error) {
	var live reconcile.LiveSet
	var err error

	if live.Equipment, err = tx.Equipment().All(ctx); err != nil {
		return reconcile.LiveSet{}, err
	}
	if live.Inventory, err = tx.Inventory().All(ctx); err != nil {
		return reconcile.LiveSet{}, err
	}
	if live.Maintenance, err = tx.Maintenance().All(ctx); err != nil {
		return reconcile.LiveSet{}, err
	}
	return live, nil
}

// Only rows the summary names are written back; untouched records never
// reach the store, which keeps the merge non-destructive at the SQL level
// as well.
func commitEquipment(ctx context.Context, tx shared.Tx, merged reconcile.LiveSet, summary reconcile.Summary) error {
	touched := touchedKeys(summary.Equipment)
	for _, e := range merged.Equipment {
		if !touched[e.Ficha] {
			continue
		}
		if err := tx.Equipment().Upsert(ctx, e); err != nil {
			return err
		}
	}
	return nil
}

func commitInventory(ctx context.Context, tx shared.Tx, merged reconcile.LiveSet, summary reconcile.Summary) error {
	touched := touchedKeys(summary.Inventory)
	for _, item := range merged.Inventory {
		if !touched[item.Code] {
			continue
		}
		if err := tx.Inventory().Upsert(ctx, item); err != nil {
			return err
		}
	}
	return nil
}

func commitMaintenance(ctx context.Context, tx shared.Tx, merged reconcile.LiveSet, summary reconcile.Summary) error {
	touched := touchedKeys(summary.Maintenance)
	for _, s := range merged.Maintenance {
		if !touched[s.DisplayKey()] {
			continue
		}
		if err := tx.Maintenance().Upsert(ctx, s); err != nil {
			return err
		}
	}
	return nil
}

func touchedKeys(ec reconcile.EntityChanges) map[string]bool {
	keys := make(map[string]bool, len(ec.Inserted)+len(ec.Updated))
	for _, k := range ec.Inserted {
		keys[k] = true
	}
	for _, u := range ec.Updated {
		keys[u.Key] = true
	}
	return keys
}
