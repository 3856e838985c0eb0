package shared

import (
	"context"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/domain/maintenance"
	"fleetsync/internal/domain/reconcile"
)

// UnitOfWork bounds one atomic interaction with the live store. A whole
// merge commits inside a single Within call: partial results are never
// visible, and a caller-side timeout aborts the transaction as one unit.
type UnitOfWork interface {
	// Within: full read-write transaction with retry on serialization failures
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: consistent multi-table snapshot reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
}

type Tx interface {
	Equipment() EquipmentRepository
	Inventory() InventoryRepository
	Maintenance() MaintenanceRepository
	Notifications() NotificationRepository
	Config() ConfigRepository
}

// EquipmentRepository is the write side of the equipment collection.
// Upsert matches on the ficha; it never deletes.
type EquipmentRepository interface {
	All(ctx context.Context) ([]equipment.Equipment, error)
	Upsert(ctx context.Context, e equipment.Equipment) error
}

type InventoryRepository interface {
	All(ctx context.Context) ([]inventory.Item, error)
	Upsert(ctx context.Context, item inventory.Item) error
}

type MaintenanceRepository interface {
	All(ctx context.Context) ([]maintenance.Schedule, error)
	Upsert(ctx context.Context, s maintenance.Schedule) error
}

// NotificationRepository persists accepted intents. CreateIfAbsent is the
// history dedupe the deriver itself does not know about: it reports false
// when an open (unread, undismissed) notification already occupies the
// (kind, subject) slot.
type NotificationRepository interface {
	CreateIfAbsent(ctx context.Context, intent alert.Intent) (bool, error)
}

// ConfigRepository reads and writes the threshold row. Load is called
// fresh on every run; implementations must not cache.
type ConfigRepository interface {
	Load(ctx context.Context) (alert.Policy, error)
	Save(ctx context.Context, p alert.Policy) error
}

// SnapshotSource supplies the candidate records of one import.
// Deserialization and schema handling beyond minimally required fields is
// the source's job, not the engine's.
type SnapshotSource interface {
	Read(ctx context.Context) (reconcile.Snapshot, error)
}

// NotificationSink forwards accepted intents to external delivery
// (email, WhatsApp, browser push). Fan-out and channel selection live
// behind this boundary.
type NotificationSink interface {
	Publish(ctx context.Context, intent alert.Intent) error
}
