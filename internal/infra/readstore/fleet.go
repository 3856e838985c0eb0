package readstore

import (
	"context"
	"time"

	"fleetsync/internal/domain/alert"
	"fleetsync/internal/infra"
	"fleetsync/internal/infra/repository"
	"fleetsync/internal/usecase/queries"

	"github.com/georgysavva/scany/v2/pgxscan"
)

type FleetReadStore struct {
	db repository.DBTX
}

func NewFleetReadStore(db repository.DBTX) *FleetReadStore {
	return &FleetReadStore{db: db}
}

type equipmentViewRow struct {
	Ficha            string  `db:"ficha"`
	Name             string  `db:"name"`
	Make             string  `db:"make"`
	Model            string  `db:"model"`
	SerialNumber     string  `db:"serial_number"`
	Plate            string  `db:"plate"`
	Category         string  `db:"category"`
	Active           bool    `db:"active"`
	InactivityReason *string `db:"inactivity_reason"`
}

type scheduleViewRow struct {
	Ficha           string     `db:"ficha"`
	MaintenanceType string     `db:"maintenance_type"`
	CurrentUsage    float64    `db:"current_usage"`
	Frequency       float64    `db:"frequency"`
	LastServiceDate *time.Time `db:"last_service_date"`
	NextDue         float64    `db:"next_due"`
	Remaining       float64    `db:"remaining"`
	Active          bool       `db:"active"`
}

// EquipmentWithSchedules loads the fleet and its windows in two queries
// and groups in memory. Fleets are small enough that a lateral join buys
// nothing here.
func (s *FleetReadStore) EquipmentWithSchedules(ctx context.Context) ([]*queries.EquipmentView, error) {
	var equipmentRows []equipmentViewRow
	err := pgxscan.Select(ctx, s.db, &equipmentRows, `
		SELECT ficha, name, make, model, serial_number, plate, category, active, inactivity_reason
		FROM equipment
		ORDER BY ficha`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment views", err)
	}

	var scheduleRows []scheduleViewRow
	err = pgxscan.Select(ctx, s.db, &scheduleRows, `
		SELECT ficha, maintenance_type, current_usage, frequency,
		       last_service_date, next_due, remaining, active
		FROM scheduled_maintenance
		ORDER BY ficha, maintenance_type`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list schedule views", err)
	}

	byFicha := make(map[string][]queries.ScheduleView, len(equipmentRows))
	for _, row := range scheduleRows {
		byFicha[row.Ficha] = append(byFicha[row.Ficha], queries.ScheduleView{
			Type:            row.MaintenanceType,
			CurrentUsage:    row.CurrentUsage,
			Frequency:       row.Frequency,
			LastServiceDate: row.LastServiceDate,
			NextDue:         row.NextDue,
			Remaining:       row.Remaining,
			Active:          row.Active,
		})
	}

	views := make([]*queries.EquipmentView, 0, len(equipmentRows))
	for _, row := range equipmentRows {
		view := &queries.EquipmentView{
			Ficha:        row.Ficha,
			Name:         row.Name,
			Make:         row.Make,
			Model:        row.Model,
			SerialNumber: row.SerialNumber,
			Plate:        row.Plate,
			Category:     row.Category,
			Active:       row.Active,
			Schedules:    byFicha[row.Ficha],
		}
		if row.InactivityReason != nil {
			view.InactivityReason = *row.InactivityReason
		}
		if view.Schedules == nil {
			view.Schedules = []queries.ScheduleView{}
		}
		views = append(views, view)
	}
	return views, nil
}

// ScheduledMaintenance is the flat window list, most urgent first.
func (s *FleetReadStore) ScheduledMaintenance(ctx context.Context) ([]*queries.MaintenanceView, error) {
	var rows []scheduleViewRow
	err := pgxscan.Select(ctx, s.db, &rows, `
		SELECT ficha, maintenance_type, current_usage, frequency,
		       last_service_date, next_due, remaining, active
		FROM scheduled_maintenance
		ORDER BY remaining, ficha, maintenance_type`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list maintenance views", err)
	}

	views := make([]*queries.MaintenanceView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.MaintenanceView{
			Ficha:           row.Ficha,
			Type:            row.MaintenanceType,
			CurrentUsage:    row.CurrentUsage,
			Frequency:       row.Frequency,
			LastServiceDate: row.LastServiceDate,
			NextDue:         row.NextDue,
			Remaining:       row.Remaining,
			Active:          row.Active,
		})
	}
	return views, nil
}

type inventoryViewRow struct {
	Code         string `db:"code"`
	Name         string `db:"name"`
	Type         string `db:"type"`
	Supplier     string `db:"supplier"`
	Quantity     int    `db:"quantity"`
	MinimumStock int    `db:"minimum_stock"`
	Active       bool   `db:"active"`
}

func (s *FleetReadStore) InventoryItems(ctx context.Context) ([]*queries.InventoryItemView, error) {
	var rows []inventoryViewRow
	err := pgxscan.Select(ctx, s.db, &rows, `
		SELECT code, name, type, supplier, quantity, minimum_stock, active
		FROM inventory_items
		ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory views", err)
	}

	views := make([]*queries.InventoryItemView, 0, len(rows))
	for _, row := range rows {
		views = append(views, &queries.InventoryItemView{
			Code:         row.Code,
			Name:         row.Name,
			Type:         row.Type,
			Supplier:     row.Supplier,
			Quantity:     row.Quantity,
			MinimumStock: row.MinimumStock,
			Active:       row.Active,
			LowStock:     row.Quantity <= row.MinimumStock,
		})
	}
	return views, nil
}

type thresholdRow struct {
	CriticalThreshold   float64 `db:"critical_threshold"`
	PreventiveThreshold float64 `db:"preventive_threshold"`
}

func (s *FleetReadStore) Thresholds(ctx context.Context) (alert.Policy, error) {
	var row thresholdRow
	err := pgxscan.Get(ctx, s.db, &row, `
		SELECT critical_threshold, preventive_threshold
		FROM system_config
		WHERE id = 1`)
	if err != nil {
		if pgxscan.NotFound(err) {
			return alert.DefaultPolicy(), nil
		}
		return alert.Policy{}, infra.WrapRepoErr("failed to load thresholds", err)
	}
	policy, _ := alert.NewPolicy(row.CriticalThreshold, row.PreventiveThreshold)
	return policy, nil
}
