//go:build unit

package commands_test

import (
	"context"
	"io"
	"log/slog"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/domain/maintenance"
	"fleetsync/internal/domain/reconcile"
	"fleetsync/internal/usecase/shared"
)

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fakeStore is an in-memory stand-in for the transactional store. One
// instance backs every repository a fake transaction hands out.
type fakeStore struct {
	equipment   map[string]equipment.Equipment
	inventory   map[string]inventory.Item
	maintenance map[maintenance.Key]maintenance.Schedule

	openSlots map[string]alert.Intent
	policy    alert.Policy

	upsertErr error
	createErr error
	loadErr   error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		equipment:   make(map[string]equipment.Equipment),
		inventory:   make(map[string]inventory.Item),
		maintenance: make(map[maintenance.Key]maintenance.Schedule),
		openSlots:   make(map[string]alert.Intent),
		policy:      alert.DefaultPolicy(),
	}
}

func (s *fakeStore) All(_ context.Context) ([]equipment.Equipment, error) {
	out := make([]equipment.Equipment, 0, len(s.equipment))
	for _, e := range s.equipment {
		out = append(out, e)
	}
	return out, nil
}

func (s *fakeStore) Upsert(_ context.Context, e equipment.Equipment) error {
	if s.upsertErr != nil {
		return s.upsertErr
	}
	s.equipment[e.Ficha] = e
	return nil
}

type fakeInventoryRepo struct{ s *fakeStore }

func (r fakeInventoryRepo) All(_ context.Context) ([]inventory.Item, error) {
	out := make([]inventory.Item, 0, len(r.s.inventory))
	for _, item := range r.s.inventory {
		out = append(out, item)
	}
	return out, nil
}

func (r fakeInventoryRepo) Upsert(_ context.Context, item inventory.Item) error {
	if r.s.upsertErr != nil {
		return r.s.upsertErr
	}
	r.s.inventory[item.Code] = item
	return nil
}

type fakeMaintenanceRepo struct{ s *fakeStore }

func (r fakeMaintenanceRepo) All(_ context.Context) ([]maintenance.Schedule, error) {
	out := make([]maintenance.Schedule, 0, len(r.s.maintenance))
	for _, sched := range r.s.maintenance {
		out = append(out, sched)
	}
	return out, nil
}

func (r fakeMaintenanceRepo) Upsert(_ context.Context, sched maintenance.Schedule) error {
	if r.s.upsertErr != nil {
		return r.s.upsertErr
	}
	r.s.maintenance[sched.NaturalKey()] = sched
	return nil
}

type fakeNotificationRepo struct{ s *fakeStore }

func (r fakeNotificationRepo) CreateIfAbsent(_ context.Context, intent alert.Intent) (bool, error) {
	if r.s.createErr != nil {
		return false, r.s.createErr
	}
	if _, open := r.s.openSlots[intent.DedupeKey()]; open {
		return false, nil
	}
	r.s.openSlots[intent.DedupeKey()] = intent
	return true, nil
}

type fakeConfigRepo struct{ s *fakeStore }

func (r fakeConfigRepo) Load(_ context.Context) (alert.Policy, error) {
	if r.s.loadErr != nil {
		return alert.Policy{}, r.s.loadErr
	}
	return r.s.policy, nil
}

func (r fakeConfigRepo) Save(_ context.Context, p alert.Policy) error {
	r.s.policy = p
	return nil
}

type fakeTx struct{ s *fakeStore }

func (t fakeTx) Equipment() shared.EquipmentRepository { return t.s }

func (t fakeTx) Inventory() shared.InventoryRepository { return fakeInventoryRepo{t.s} }

func (t fakeTx) Maintenance() shared.MaintenanceRepository { return fakeMaintenanceRepo{t.s} }

func (t fakeTx) Notifications() shared.NotificationRepository { return fakeNotificationRepo{t.s} }

func (t fakeTx) Config() shared.ConfigRepository { return fakeConfigRepo{t.s} }

type fakeUoW struct{ s *fakeStore }

func (u fakeUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{u.s})
}

func (u fakeUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return fn(ctx, fakeTx{u.s})
}

type staticSource struct {
	snapshot reconcile.Snapshot
	err      error
}

func (s staticSource) Read(context.Context) (reconcile.Snapshot, error) {
	return s.snapshot, s.err
}

type recordingSink struct {
	published []alert.Intent
	err       error
}

func (s *recordingSink) Publish(_ context.Context, intent alert.Intent) error {
	if s.err != nil {
		return s.err
	}
	s.published = append(s.published, intent)
	return nil
}
