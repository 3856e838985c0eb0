//go:build unit

package commands_test

import (
	"context"
	"errors"
	"testing"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/pkg/metrics"
	"fleetsync/internal/usecase/commands"
	"fleetsync/tests/common/builder"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAlertFixture(store *fakeStore, sink *recordingSink) commands.AlertCommands {
	return commands.NewAlertUseCase(fakeUoW{store}, fakeNotificationStore{}, sink, discardLogger(), metrics.New())
}

// fakeNotificationStore satisfies the write store the sweep tests never
// touch.
type fakeNotificationStore struct{}

func (fakeNotificationStore) MarkRead(context.Context, uuid.UUID) error { return nil }

func (fakeNotificationStore) Dismiss(context.Context, uuid.UUID) error { return nil }

func TestSweep(t *testing.T) {
	t.Run("persists and publishes new intents", func(t *testing.T) {
		store := newFakeStore()
		store.equipment["AC-010"] = builder.NewEquipmentBuilder().Build()
		overdue := builder.NewMaintenanceBuilder().Build()
		overdue.CurrentUsage = 1400
		overdue.Remaining = -150
		store.maintenance[overdue.NaturalKey()] = overdue

		lowStock := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) {
			b.Quantity = 2
		}).Build()
		store.inventory[lowStock.Code] = lowStock

		sink := &recordingSink{}
		result, err := newAlertFixture(store, sink).Sweep(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 2, result.Proposed)
		assert.Equal(t, 2, result.Created)
		assert.Empty(t, result.Warnings)
		assert.Len(t, sink.published, 2)
		assert.Len(t, store.openSlots, 2)
	})

	t.Run("open slots suppress duplicates across sweeps", func(t *testing.T) {
		store := newFakeStore()
		store.equipment["AC-010"] = builder.NewEquipmentBuilder().Build()
		overdue := builder.NewMaintenanceBuilder().Build()
		overdue.Remaining = -10
		store.maintenance[overdue.NaturalKey()] = overdue

		sink := &recordingSink{}
		uc := newAlertFixture(store, sink)

		first, err := uc.Sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, first.Created)

		second, err := uc.Sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, second.Proposed)
		assert.Equal(t, 0, second.Created)

		// Only the first sweep published.
		assert.Len(t, sink.published, 1)
	})

	t.Run("publish failure degrades to a warning", func(t *testing.T) {
		store := newFakeStore()
		store.equipment["AC-010"] = builder.NewEquipmentBuilder().Build()
		overdue := builder.NewMaintenanceBuilder().Build()
		overdue.Remaining = -10
		store.maintenance[overdue.NaturalKey()] = overdue

		sink := &recordingSink{err: errors.New("broker down")}
		result, err := newAlertFixture(store, sink).Sweep(context.Background())

		require.NoError(t, err)
		assert.Equal(t, 1, result.Created)
		assert.Len(t, result.Warnings, 1)
		// The notification is persisted regardless.
		assert.Len(t, store.openSlots, 1)
	})

	t.Run("thresholds are read fresh from the store", func(t *testing.T) {
		store := newFakeStore()
		store.equipment["AC-010"] = builder.NewEquipmentBuilder().Build()
		s := builder.NewMaintenanceBuilder().Build()
		s.Remaining = 70
		store.maintenance[s.NaturalKey()] = s

		sink := &recordingSink{}
		uc := newAlertFixture(store, sink)

		// Default policy: 70 remaining is ok, nothing proposed.
		result, err := uc.Sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 0, result.Proposed)

		// Raise the preventive threshold; the same schedule now alerts.
		store.policy = alert.Policy{Critical: 15, Preventive: 100}
		result, err = uc.Sweep(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 1, result.Proposed)
	})

	t.Run("config load failure aborts the sweep", func(t *testing.T) {
		store := newFakeStore()
		store.loadErr = errors.New("config table gone")

		_, err := newAlertFixture(store, &recordingSink{}).Sweep(context.Background())
		assert.Error(t, err)
	})
}

func TestUpdateThresholds(t *testing.T) {
	t.Run("persists the normalized pair", func(t *testing.T) {
		store := newFakeStore()
		uc := commands.NewConfigUseCase(fakeUoW{store})

		result, err := uc.UpdateThresholds(context.Background(), commands.ThresholdUpdate{Critical: 20, Preventive: 80})

		require.NoError(t, err)
		assert.Empty(t, result.Warnings)
		assert.Equal(t, alert.Policy{Critical: 20, Preventive: 80}, store.policy)
	})

	t.Run("clamps inverted pairs and reports it", func(t *testing.T) {
		store := newFakeStore()
		uc := commands.NewConfigUseCase(fakeUoW{store})

		result, err := uc.UpdateThresholds(context.Background(), commands.ThresholdUpdate{Critical: 90, Preventive: 30})

		require.NoError(t, err)
		assert.Len(t, result.Warnings, 1)
		assert.Equal(t, alert.Policy{Critical: 90, Preventive: 90}, store.policy)
	})
}
