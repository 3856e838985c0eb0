package repository

import (
	"context"
	"time"

	"fleetsync/internal/domain/maintenance"
	"fleetsync/internal/infra"

	"github.com/georgysavva/scany/v2/pgxscan"
)

type maintenanceRow struct {
	Ficha              string     `db:"ficha"`
	MaintenanceType    string     `db:"maintenance_type"`
	EquipmentName      string     `db:"equipment_name"`
	CurrentUsage       float64    `db:"current_usage"`
	Frequency          float64    `db:"frequency"`
	UsageAtLastService float64    `db:"usage_at_last_service"`
	LastServiceDate    *time.Time `db:"last_service_date"`
	NextDue            float64    `db:"next_due"`
	Remaining          float64    `db:"remaining"`
	Active             bool       `db:"active"`
}

type MaintenanceRepository struct {
	db DBTX
}

func NewMaintenanceRepository(db DBTX) *MaintenanceRepository {
	return &MaintenanceRepository{db: db}
}

func (r *MaintenanceRepository) All(ctx context.Context) ([]maintenance.Schedule, error) {
	var rows []maintenanceRow
	err := pgxscan.Select(ctx, r.db, &rows, `
		SELECT ficha, maintenance_type, equipment_name, current_usage, frequency,
		       usage_at_last_service, last_service_date, next_due, remaining, active
		FROM scheduled_maintenance
		ORDER BY ficha, maintenance_type`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list scheduled maintenance", err)
	}

	out := make([]maintenance.Schedule, 0, len(rows))
	for _, row := range rows {
		out = append(out, maintenance.Schedule{
			Ficha:              row.Ficha,
			Type:               row.MaintenanceType,
			EquipmentName:      row.EquipmentName,
			CurrentUsage:       row.CurrentUsage,
			Frequency:          row.Frequency,
			UsageAtLastService: row.UsageAtLastService,
			LastServiceDate:    row.LastServiceDate,
			NextDue:            row.NextDue,
			Remaining:          row.Remaining,
			Active:             row.Active,
		})
	}
	return out, nil
}

func (r *MaintenanceRepository) Upsert(ctx context.Context, s maintenance.Schedule) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO scheduled_maintenance (ficha, maintenance_type, equipment_name, current_usage,
		                                   frequency, usage_at_last_service, last_service_date,
		                                   next_due, remaining, active)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (ficha, lower(maintenance_type)) DO UPDATE SET
			equipment_name = EXCLUDED.equipment_name,
			current_usage = EXCLUDED.current_usage,
			frequency = EXCLUDED.frequency,
			usage_at_last_service = EXCLUDED.usage_at_last_service,
			last_service_date = EXCLUDED.last_service_date,
			next_due = EXCLUDED.next_due,
			remaining = EXCLUDED.remaining,
			active = EXCLUDED.active,
			updated_at = now()`,
		s.Ficha, s.Type, s.EquipmentName, s.CurrentUsage, s.Frequency,
		s.UsageAtLastService, s.LastServiceDate, s.NextDue, s.Remaining, s.Active)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert scheduled maintenance", err)
	}
	return nil
}
