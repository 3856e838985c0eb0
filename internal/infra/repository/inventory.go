package repository

import (
	"context"

	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/infra"

	"github.com/georgysavva/scany/v2/pgxscan"
)

type inventoryRow struct {
	Code              string   `db:"code"`
	Name              string   `db:"name"`
	Type              string   `db:"type"`
	EquipmentCategory string   `db:"equipment_category"`
	Supplier          string   `db:"supplier"`
	Quantity          int      `db:"quantity"`
	MinimumStock      int      `db:"minimum_stock"`
	Active            bool     `db:"active"`
	CompatibleMakes   []string `db:"compatible_makes"`
	CompatibleModels  []string `db:"compatible_models"`
}

type InventoryRepository struct {
	db DBTX
}

func NewInventoryRepository(db DBTX) *InventoryRepository {
	return &InventoryRepository{db: db}
}

func (r *InventoryRepository) All(ctx context.Context) ([]inventory.Item, error) {
	var rows []inventoryRow
	err := pgxscan.Select(ctx, r.db, &rows, `
		SELECT code, name, type, equipment_category, supplier, quantity, minimum_stock,
		       active, compatible_makes, compatible_models
		FROM inventory_items
		ORDER BY code`)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list inventory items", err)
	}

	out := make([]inventory.Item, 0, len(rows))
	for _, row := range rows {
		out = append(out, inventory.Item{
			Code:              row.Code,
			Name:              row.Name,
			Type:              row.Type,
			EquipmentCategory: row.EquipmentCategory,
			Supplier:          row.Supplier,
			Quantity:          row.Quantity,
			MinimumStock:      row.MinimumStock,
			Active:            row.Active,
			CompatibleMakes:   row.CompatibleMakes,
			CompatibleModels:  row.CompatibleModels,
		})
	}
	return out, nil
}

func (r *InventoryRepository) Upsert(ctx context.Context, item inventory.Item) error {
	_, err := r.db.Exec(ctx, `
		INSERT INTO inventory_items (code, name, type, equipment_category, supplier, quantity,
		                             minimum_stock, active, compatible_makes, compatible_models)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (code) DO UPDATE SET
			name = EXCLUDED.name,
			type = EXCLUDED.type,
			equipment_category = EXCLUDED.equipment_category,
			supplier = EXCLUDED.supplier,
			quantity = EXCLUDED.quantity,
			minimum_stock = EXCLUDED.minimum_stock,
			active = EXCLUDED.active,
			compatible_makes = EXCLUDED.compatible_makes,
			compatible_models = EXCLUDED.compatible_models,
			updated_at = now()`,
		item.Code, item.Name, item.Type, item.EquipmentCategory, item.Supplier,
		item.Quantity, item.MinimumStock, item.Active,
		emptyIfNil(item.CompatibleMakes), emptyIfNil(item.CompatibleModels))
	if err != nil {
		return infra.WrapRepoErr("failed to upsert inventory item", err)
	}
	return nil
}

func emptyIfNil(ss []string) []string {
	if ss == nil {
		return []string{}
	}
	return ss
}
