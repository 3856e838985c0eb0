//go:build unit

package queries_test

import (
	"context"
	"testing"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/usecase/queries"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeFleetStore struct {
	equipment   []*queries.EquipmentView
	maintenance []*queries.MaintenanceView
	inventory   []*queries.InventoryItemView
	policy      alert.Policy
	err         error
}

func (f *fakeFleetStore) EquipmentWithSchedules(context.Context) ([]*queries.EquipmentView, error) {
	return f.equipment, f.err
}

func (f *fakeFleetStore) ScheduledMaintenance(context.Context) ([]*queries.MaintenanceView, error) {
	return f.maintenance, f.err
}

func (f *fakeFleetStore) InventoryItems(context.Context) ([]*queries.InventoryItemView, error) {
	return f.inventory, f.err
}

func (f *fakeFleetStore) Thresholds(context.Context) (alert.Policy, error) {
	return f.policy, f.err
}

func TestListEquipment(t *testing.T) {
	t.Run("classifies each schedule and orders most urgent first", func(t *testing.T) {
		store := &fakeFleetStore{
			policy: alert.DefaultPolicy(),
			equipment: []*queries.EquipmentView{
				{
					Ficha: "AC-010",
					Schedules: []queries.ScheduleView{
						{Type: "Engrase", Remaining: 70},
						{Type: "Cambio de aceite", Remaining: -5},
						{Type: "Filtros", Remaining: 10},
					},
				},
			},
		}
		q := queries.NewFleetQueries(store)

		views, err := q.ListEquipment(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 1)

		schedules := views[0].Schedules
		require.Len(t, schedules, 3)
		assert.Equal(t, "Cambio de aceite", schedules[0].Type)
		assert.Equal(t, string(alert.StatusOverdue), schedules[0].Status)
		assert.Equal(t, string(alert.StatusCritical), schedules[1].Status)
		assert.Equal(t, string(alert.StatusOK), schedules[2].Status)
	})

	t.Run("equipment without schedules keeps an empty slice", func(t *testing.T) {
		store := &fakeFleetStore{
			policy:    alert.DefaultPolicy(),
			equipment: []*queries.EquipmentView{{Ficha: "AC-011", Schedules: []queries.ScheduleView{}}},
		}
		q := queries.NewFleetQueries(store)

		views, err := q.ListEquipment(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 1)
		assert.NotNil(t, views[0].Schedules)
		assert.Empty(t, views[0].Schedules)
	})
}

func TestListMaintenance(t *testing.T) {
	t.Run("stamps status from the current policy", func(t *testing.T) {
		store := &fakeFleetStore{
			policy: alert.DefaultPolicy(),
			maintenance: []*queries.MaintenanceView{
				{Ficha: "AC-010", Type: "Engrase", Remaining: -20},
				{Ficha: "AC-011", Type: "Filtros", Remaining: 40},
			},
		}
		q := queries.NewFleetQueries(store)

		views, err := q.ListMaintenance(context.Background())
		require.NoError(t, err)
		require.Len(t, views, 2)
		assert.Equal(t, string(alert.StatusOverdue), views[0].Status)
		assert.Equal(t, string(alert.StatusPreventive), views[1].Status)
	})

	t.Run("custom thresholds change the classification", func(t *testing.T) {
		policy, warnings := alert.NewPolicy(5, 30)
		require.Empty(t, warnings)
		store := &fakeFleetStore{
			policy:      policy,
			maintenance: []*queries.MaintenanceView{{Ficha: "AC-010", Type: "Engrase", Remaining: 10}},
		}
		q := queries.NewFleetQueries(store)

		views, err := q.ListMaintenance(context.Background())
		require.NoError(t, err)
		assert.Equal(t, string(alert.StatusPreventive), views[0].Status)
	})
}
