// Package snapshot decodes externally produced fleet snapshots into
// candidate records. Two formats are supported: the legacy JSON export of
// the previous fleet system (Spanish field names) and xlsx workbooks.
package snapshot

import (
	"context"
	"encoding/json"
	"io"
	"time"

	"fleetsync/internal/domain/equipment"
	"fleetsync/internal/domain/inventory"
	"fleetsync/internal/domain/maintenance"
	"fleetsync/internal/domain/reconcile"
	"fleetsync/internal/pkg/errs"
)

// legacy export field names are kept verbatim so old dumps keep importing
type legacyBundle struct {
	Equipos                   []legacyEquipment   `json:"equipos"`
	Inventarios               []legacyInventory   `json:"inventarios"`
	MantenimientosProgramados []legacyMaintenance `json:"mantenimientosProgramados"`
}

type legacyEquipment struct {
	Ficha             string  `json:"ficha"`
	Nombre            string  `json:"nombre"`
	Marca             string  `json:"marca"`
	Modelo            string  `json:"modelo"`
	NumeroSerie       string  `json:"numeroSerie"`
	Placa             string  `json:"placa"`
	Categoria         string  `json:"categoria"`
	Activo            bool    `json:"activo"`
	MotivoInactividad *string `json:"motivoInactividad"`
}

type legacyInventory struct {
	CodigoIdentificacion string   `json:"codigoIdentificacion"`
	Nombre               string   `json:"nombre"`
	Tipo                 string   `json:"tipo"`
	CategoriaEquipo      string   `json:"categoriaEquipo"`
	EmpresaSuplidora     string   `json:"empresaSuplidora"`
	Cantidad             int      `json:"cantidad"`
	StockMinimo          int      `json:"stockMinimo"`
	Activo               bool     `json:"activo"`
	MarcasCompatibles    []string `json:"marcasCompatibles"`
	ModelosCompatibles   []string `json:"modelosCompatibles"`
}

type legacyMaintenance struct {
	Ficha                      string  `json:"ficha"`
	NombreEquipo               string  `json:"nombreEquipo"`
	TipoMantenimiento          string  `json:"tipoMantenimiento"`
	HorasKmActuales            float64 `json:"horasKmActuales"`
	Frecuencia                 float64 `json:"frecuencia"`
	HorasKmUltimoMantenimiento float64 `json:"horasKmUltimoMantenimiento"`
	FechaUltimoMantenimiento   *string `json:"fechaUltimoMantenimiento"`
	Activo                     bool    `json:"activo"`
}

// JSONSource reads one legacy JSON bundle.
type JSONSource struct {
	r io.Reader
}

func NewJSONSource(r io.Reader) *JSONSource {
	return &JSONSource{r: r}
}

func (s *JSONSource) Read(_ context.Context) (reconcile.Snapshot, error) {
	var bundle legacyBundle
	dec := json.NewDecoder(s.r)
	if err := dec.Decode(&bundle); err != nil {
		return reconcile.Snapshot{}, errs.Mark(errs.Wrap(err, "failed to decode snapshot bundle"), errs.ErrSnapshotUnreadable)
	}
	return bundle.toSnapshot(), nil
}

func (b legacyBundle) toSnapshot() reconcile.Snapshot {
	var snap reconcile.Snapshot

	for _, e := range b.Equipos {
		snap.Equipment = append(snap.Equipment, equipment.Equipment{
			Ficha:            e.Ficha,
			Name:             e.Nombre,
			Make:             e.Marca,
			Model:            e.Modelo,
			SerialNumber:     e.NumeroSerie,
			Plate:            e.Placa,
			Category:         e.Categoria,
			Active:           e.Activo,
			InactivityReason: derefOrEmpty(e.MotivoInactividad),
		})
	}

	for _, i := range b.Inventarios {
		snap.Inventory = append(snap.Inventory, inventory.Item{
			Code:              i.CodigoIdentificacion,
			Name:              i.Nombre,
			Type:              i.Tipo,
			EquipmentCategory: i.CategoriaEquipo,
			Supplier:          i.EmpresaSuplidora,
			Quantity:          i.Cantidad,
			MinimumStock:      i.StockMinimo,
			Active:            i.Activo,
			CompatibleMakes:   i.MarcasCompatibles,
			CompatibleModels:  i.ModelosCompatibles,
		})
	}

	for _, m := range b.MantenimientosProgramados {
		snap.Maintenance = append(snap.Maintenance, maintenance.Schedule{
			Ficha:              m.Ficha,
			Type:               m.TipoMantenimiento,
			EquipmentName:      m.NombreEquipo,
			CurrentUsage:       m.HorasKmActuales,
			Frequency:          m.Frecuencia,
			UsageAtLastService: m.HorasKmUltimoMantenimiento,
			LastServiceDate:    parseLegacyDate(m.FechaUltimoMantenimiento),
			Active:             m.Activo,
		})
	}

	return snap
}

// parseLegacyDate accepts the date shapes seen in old exports. Anything
// unparseable becomes nil rather than failing the whole import; the merge
// reports per-record problems, not the decoder.
func parseLegacyDate(s *string) *time.Time {
	if s == nil || *s == "" {
		return nil
	}
	for _, layout := range []string{"2006-01-02", time.RFC3339, "02/01/2006"} {
		if t, err := time.Parse(layout, *s); err == nil {
			return &t
		}
	}
	return nil
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
