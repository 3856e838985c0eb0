package queries

import (
	"context"
	"sort"
	"time"

	"fleetsync/internal/domain/alert"
)

// EquipmentView is one fleet row joined with its maintenance windows.
type EquipmentView struct {
	Ficha            string         `json:"ficha"`
	Name             string         `json:"name"`
	Make             string         `json:"make"`
	Model            string         `json:"model"`
	SerialNumber     string         `json:"serial_number"`
	Plate            string         `json:"plate"`
	Category         string         `json:"category"`
	Active           bool           `json:"active"`
	InactivityReason string         `json:"inactivity_reason,omitempty"`
	Schedules        []ScheduleView `json:"schedules"`
}

type ScheduleView struct {
	Type            string     `json:"type"`
	CurrentUsage    float64    `json:"current_usage"`
	Frequency       float64    `json:"frequency"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	NextDue         float64    `json:"next_due"`
	Remaining       float64    `json:"remaining"`
	Active          bool       `json:"active"`
	Status          string     `json:"status"`
}

// MaintenanceView is one schedule flattened with its equipment key.
type MaintenanceView struct {
	Ficha           string     `json:"ficha"`
	Type            string     `json:"type"`
	CurrentUsage    float64    `json:"current_usage"`
	Frequency       float64    `json:"frequency"`
	LastServiceDate *time.Time `json:"last_service_date,omitempty"`
	NextDue         float64    `json:"next_due"`
	Remaining       float64    `json:"remaining"`
	Active          bool       `json:"active"`
	Status          string     `json:"status"`
}

type InventoryItemView struct {
	Code         string `json:"code"`
	Name         string `json:"name"`
	Type         string `json:"type"`
	Supplier     string `json:"supplier"`
	Quantity     int    `json:"quantity"`
	MinimumStock int    `json:"minimum_stock"`
	Active       bool   `json:"active"`
	LowStock     bool   `json:"low_stock"`
}

// FleetReadStore provides the joined view rows. Status classification is
// applied in the usecase so the store stays policy-free.
type FleetReadStore interface {
	EquipmentWithSchedules(ctx context.Context) ([]*EquipmentView, error)
	ScheduledMaintenance(ctx context.Context) ([]*MaintenanceView, error)
	InventoryItems(ctx context.Context) ([]*InventoryItemView, error)
	Thresholds(ctx context.Context) (alert.Policy, error)
}

type FleetQueries interface {
	ListEquipment(ctx context.Context) ([]*EquipmentView, error)
	ListMaintenance(ctx context.Context) ([]*MaintenanceView, error)
	ListInventory(ctx context.Context) ([]*InventoryItemView, error)
	Thresholds(ctx context.Context) (alert.Policy, error)
}

type fleetQueriesImpl struct {
	store FleetReadStore
}

func NewFleetQueries(store FleetReadStore) FleetQueries {
	return &fleetQueriesImpl{store: store}
}

func (q *fleetQueriesImpl) ListEquipment(ctx context.Context) ([]*EquipmentView, error) {
	policy, err := q.store.Thresholds(ctx)
	if err != nil {
		return nil, err
	}
	views, err := q.store.EquipmentWithSchedules(ctx)
	if err != nil {
		return nil, err
	}

	for _, v := range views {
		for i := range v.Schedules {
			v.Schedules[i].Status = string(policy.Classify(v.Schedules[i].Remaining))
		}
		// Most urgent window first.
		sort.SliceStable(v.Schedules, func(a, b int) bool {
			return v.Schedules[a].Remaining < v.Schedules[b].Remaining
		})
	}
	return views, nil
}

func (q *fleetQueriesImpl) ListMaintenance(ctx context.Context) ([]*MaintenanceView, error) {
	policy, err := q.store.Thresholds(ctx)
	if err != nil {
		return nil, err
	}
	views, err := q.store.ScheduledMaintenance(ctx)
	if err != nil {
		return nil, err
	}
	for _, v := range views {
		v.Status = string(policy.Classify(v.Remaining))
	}
	return views, nil
}

func (q *fleetQueriesImpl) ListInventory(ctx context.Context) ([]*InventoryItemView, error) {
	return q.store.InventoryItems(ctx)
}

func (q *fleetQueriesImpl) Thresholds(ctx context.Context) (alert.Policy, error) {
	return q.store.Thresholds(ctx)
}
