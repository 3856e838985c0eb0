package repository

import (
	"context"

	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/infra"

	"github.com/georgysavva/scany/v2/pgxscan"
)

type equipmentRow struct {
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

type EquipmentRepository struct {
	db DBTX
}

func NewEquipmentRepository(db DBTX) *EquipmentRepository {
	return &EquipmentRepository{db: db}
}

func (r *EquipmentRepository) All(ctx context.Context) ([]equipment.Equipment, error) {
	var rows []equipmentRow
	err := pgxscan.Select(ctx, r.db, &rows, `
		SELECT ficha, name, make, model, serial_number, plate, category, active, inactivity_reason
		FROM equipment
		ORDER BY ficha`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list equipment", err)
	}

	out := make([]equipment.Equipment, 0, len(rows))
	for _, row := range rows {
		out = append(out, equipment.Equipment{
			Ficha:            row.Ficha,
			Name:             row.Name,
			Make:             row.Make,
			Model:            row.Model,
			SerialNumber:     row.SerialNumber,
			Plate:            row.Plate,
			Category:         row.Category,
			Active:           row.Active,
			InactivityReason: deref(row.InactivityReason),
		})
	}
	return out, nil
}

func (r *EquipmentRepository) Upsert(ctx context.Context, e equipment.Equipment) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO equipment (ficha, name, make, model, serial_number, plate, category, active, inactivity_reason)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NULLIF($9, ''))
		ON CONFLICT (ficha) DO UPDATE SET
			name = EXCLUDED.name,
			make = EXCLUDED.make,
			model = EXCLUDED.model,
			serial_number = EXCLUDED.serial_number,
			plate = EXCLUDED.plate,
			category = EXCLUDED.category,
			active = EXCLUDED.active,
			inactivity_reason = EXCLUDED.inactivity_reason,
			updated_at = now()`,
		e.Ficha, e.Name, e.Make, e.Model, e.SerialNumber, e.Plate, e.Category, e.Active, e.InactivityReason)
	if err != nil {
		return infra.WrapRepoErr("failed to upsert equipment", err)
	}
	return nil
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
