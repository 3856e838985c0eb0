package snapshot

import (
	"context"
	"io"
	"strconv"
	"strings"

	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/domain/maintenance"
	"fleetsync/internal/domain/reconcile"
	"fleetsync/internal/pkg/errs"

	"github.com/xuri/excelize/v2"
)

const (
	sheetEquipment   = "Equipos"
	sheetInventory   = "Inventarios"
	sheetMaintenance = "Mantenimientos"
)

// ExcelSource reads an xlsx workbook with one sheet per collection.
// Missing sheets are fine; a workbook carrying only maintenance rows is a
// valid partial snapshot. Row 1 of each sheet is the header.
type ExcelSource struct {
	r io.Reader
}

func NewExcelSource(r io.Reader) *ExcelSource {
	return &ExcelSource{r: r}
}

func (s *ExcelSource) Read(_ context.Context) (reconcile.Snapshot, error) {
	f, err := excelize.OpenReader(s.r)
	if err != nil {
		return reconcile.Snapshot{}, errs.Mark(errs.Wrap(err, "failed to open xlsx snapshot"), errs.ErrSnapshotUnreadable)
	}
	defer f.Close()

	var snap reconcile.Snapshot

	if rows, err := f.GetRows(sheetEquipment); err == nil {
		snap.Equipment = equipmentFromRows(rows)
	}
	if rows, err := f.GetRows(sheetInventory); err == nil {
		snap.Inventory = inventoryFromRows(rows)
	}
	if rows, err := f.GetRows(sheetMaintenance); err == nil {
		snap.Maintenance = maintenanceFromRows(rows)
	}

	return snap, nil
}

// Equipos columns: ficha, nombre, marca, modelo, numero de serie, placa,
// categoria, activo, motivo de inactividad.
func equipmentFromRows(rows [][]string) []equipment.Equipment {
	var out []equipment.Equipment
	for _, row := range dataRows(rows) {
		out = append(out, equipment.Equipment{
			Ficha:            cell(row, 0),
			Name:             cell(row, 1),
			Make:             cell(row, 2),
			Model:            cell(row, 3),
			SerialNumber:     cell(row, 4),
			Plate:            cell(row, 5),
			Category:         cell(row, 6),
			Active:           parseBool(cell(row, 7)),
			InactivityReason: cell(row, 8),
		})
	}
	return out
}

// Inventarios columns: codigo, nombre, tipo, categoria de equipo,
// suplidor, cantidad, stock minimo, activo, marcas, modelos.
func inventoryFromRows(rows [][]string) []inventory.Item {
	var out []inventory.Item
	for _, row := range dataRows(rows) {
		out = append(out, inventory.Item{
			Code:              cell(row, 0),
			Name:              cell(row, 1),
			Type:              cell(row, 2),
			EquipmentCategory: cell(row, 3),
			Supplier:          cell(row, 4),
			Quantity:          parseInt(cell(row, 5)),
			MinimumStock:      parseInt(cell(row, 6)),
			Active:            parseBool(cell(row, 7)),
			CompatibleMakes:   splitList(cell(row, 8)),
			CompatibleModels:  splitList(cell(row, 9)),
		})
	}
	return out
}

// Mantenimientos columns: ficha, tipo, nombre de equipo, horas/km
// actuales, frecuencia, horas/km ultimo mantenimiento, fecha ultimo
// mantenimiento, activo.
func maintenanceFromRows(rows [][]string) []maintenance.Schedule {
	var out []maintenance.Schedule
	for _, row := range dataRows(rows) {
		date := cell(row, 6)
		out = append(out, maintenance.Schedule{
			Ficha:              cell(row, 0),
			Type:               cell(row, 1),
			EquipmentName:      cell(row, 2),
			CurrentUsage:       parseFloat(cell(row, 3)),
			Frequency:          parseFloat(cell(row, 4)),
			UsageAtLastService: parseFloat(cell(row, 5)),
			LastServiceDate:    parseLegacyDate(&date),
			Active:             parseBool(cell(row, 7)),
		})
	}
	return out
}

func dataRows(rows [][]string) [][]string {
	if len(rows) <= 1 {
		return nil
	}
	return rows[1:]
}

func cell(row []string, idx int) string {
	if idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}

func parseBool(s string) bool {
	switch strings.ToLower(s) {
	case "", "1", "true", "si", "sí", "activo", "yes":
		return true
	default:
		return false
	}
}

func parseInt(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

func parseFloat(s string) float64 {
	f, err := strconv.ParseFloat(strings.ReplaceAll(s, ",", ""), 64)
	if err != nil {
		return 0
	}
	return f
}

func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ";")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if trimmed := strings.TrimSpace(p); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
