//go:build unit

package snapshot_test

import (
	"bytes"
	"context"
	"testing"

	"fleetsync/internal/infra/snapshot"
	"fleetsync/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func buildWorkbook(t *testing.T, sheets map[string][][]string) *bytes.Reader {
	t.Helper()

	f := excelize.NewFile()
	for name, rows := range sheets {
		_, err := f.NewSheet(name)
		require.NoError(t, err)
		for i, row := range rows {
			cell, err := excelize.CoordinatesToCellName(1, i+1)
			require.NoError(t, err)
			require.NoError(t, f.SetSheetRow(name, cell, &row))
		}
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return bytes.NewReader(buf.Bytes())
}

func TestExcelSource(t *testing.T) {
	t.Run("reads one sheet per collection", func(t *testing.T) {
		r := buildWorkbook(t, map[string][][]string{
			"Equipos": {
				{"Ficha", "Nombre", "Marca", "Modelo", "Serie", "Placa", "Categoria", "Activo", "Motivo"},
				{"AC-010", "Excavadora 320", "Caterpillar", "320D", "CAT00320D", "EX-01-AB", "Excavadora", "si", ""},
			},
			"Inventarios": {
				{"Codigo", "Nombre", "Tipo", "Categoria", "Suplidor", "Cantidad", "Minimo", "Activo", "Marcas", "Modelos"},
				{"FIL-001", "Filtro de aceite", "Filtro", "Excavadora", "Filtros del Este", "12", "4", "true", "Caterpillar; Komatsu", "320D"},
			},
			"Mantenimientos": {
				{"Ficha", "Tipo", "Equipo", "Actuales", "Frecuencia", "Ultimo", "Fecha", "Activo"},
				{"AC-010", "Engrase", "Excavadora 320", "1180", "250", "1000", "2026-05-02", "1"},
			},
		})

		snap, err := snapshot.NewExcelSource(r).Read(context.Background())
		require.NoError(t, err)

		require.Len(t, snap.Equipment, 1)
		assert.Equal(t, "AC-010", snap.Equipment[0].Ficha)
		assert.True(t, snap.Equipment[0].Active)

		require.Len(t, snap.Inventory, 1)
		assert.Equal(t, 12, snap.Inventory[0].Quantity)
		assert.Equal(t, []string{"Caterpillar", "Komatsu"}, snap.Inventory[0].CompatibleMakes)

		require.Len(t, snap.Maintenance, 1)
		assert.InDelta(t, 250, snap.Maintenance[0].Frequency, 1e-9)
		require.NotNil(t, snap.Maintenance[0].LastServiceDate)
	})

	t.Run("missing sheets yield a partial snapshot", func(t *testing.T) {
		r := buildWorkbook(t, map[string][][]string{
			"Mantenimientos": {
				{"Ficha", "Tipo", "Equipo", "Actuales", "Frecuencia", "Ultimo", "Fecha", "Activo"},
				{"AC-010", "Engrase", "", "100", "250", "0", "", "si"},
			},
		})

		snap, err := snapshot.NewExcelSource(r).Read(context.Background())
		require.NoError(t, err)
		assert.Empty(t, snap.Equipment)
		assert.Empty(t, snap.Inventory)
		assert.Len(t, snap.Maintenance, 1)
		assert.Nil(t, snap.Maintenance[0].LastServiceDate)
	})

	t.Run("header-only sheet yields no records", func(t *testing.T) {
		r := buildWorkbook(t, map[string][][]string{
			"Equipos": {
				{"Ficha", "Nombre"},
			},
		})

		snap, err := snapshot.NewExcelSource(r).Read(context.Background())
		require.NoError(t, err)
		assert.Empty(t, snap.Equipment)
	})

	t.Run("garbage bytes map to the snapshot sentinel", func(t *testing.T) {
		_, err := snapshot.NewExcelSource(bytes.NewReader([]byte("not a workbook"))).Read(context.Background())
		assert.ErrorIs(t, err, errs.ErrSnapshotUnreadable)
	})
}
