//go:build unit

package inventory_test

import (
	"testing"

	"fleetsync/internal/domain/inventory"
	"fleetsync/tests/common/builder"

	"github.com/stretchr/testify/assert"
)

func TestItemValidate(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*builder.InventoryBuilder)
		errIs  error
	}{
		{name: "valid item", mutate: func(*builder.InventoryBuilder) {}},
		{name: "empty code", mutate: func(b *builder.InventoryBuilder) { b.Code = "" }, errIs: inventory.ErrEmptyCode},
		{name: "whitespace code", mutate: func(b *builder.InventoryBuilder) { b.Code = "  " }, errIs: inventory.ErrEmptyCode},
		{name: "negative quantity", mutate: func(b *builder.InventoryBuilder) { b.Quantity = -1 }, errIs: inventory.ErrNegativeQuantity},
		{name: "negative minimum stock", mutate: func(b *builder.InventoryBuilder) { b.MinimumStock = -1 }, errIs: inventory.ErrNegativeMinimumStock},
		{name: "zero quantity is valid", mutate: func(b *builder.InventoryBuilder) { b.Quantity = 0 }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			err := builder.NewInventoryBuilder().With(tc.mutate).Build().Validate()
			if tc.errIs == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.errIs)
			}
		})
	}
}

func TestLowStock(t *testing.T) {
	cases := []struct {
		name     string
		quantity int
		minimum  int
		expected bool
	}{
		{name: "below minimum", quantity: 2, minimum: 4, expected: true},
		{name: "at minimum", quantity: 4, minimum: 4, expected: true},
		{name: "above minimum", quantity: 5, minimum: 4, expected: false},
		{name: "zero stock zero minimum", quantity: 0, minimum: 0, expected: true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			item := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) {
				b.Quantity = tc.quantity
				b.MinimumStock = tc.minimum
			}).Build()

			assert.Equal(t, tc.expected, item.LowStock())
		})
	}
}

func TestItemDiff(t *testing.T) {
	t.Run("quantity change is tracked", func(t *testing.T) {
		live := builder.NewInventoryBuilder().Build()
		candidate := live
		candidate.Quantity = 3

		changes := live.Diff(candidate)
		assert.Equal(t, []string{"quantity: 12 → 3"}, changes)
	})

	t.Run("compatibility lists ride along silently", func(t *testing.T) {
		live := builder.NewInventoryBuilder().Build()
		candidate := live
		candidate.CompatibleMakes = []string{"Komatsu"}
		candidate.EquipmentCategory = "Grúa"

		assert.Empty(t, live.Diff(candidate))
	})
}

func TestItemMerge(t *testing.T) {
	live := builder.NewInventoryBuilder().Build()
	candidate := builder.NewInventoryBuilder().With(func(b *builder.InventoryBuilder) {
		b.Code = "OTHER-999"
		b.Quantity = 1
	}).Build()

	merged := live.Merge(candidate)

	assert.Equal(t, "FIL-001", merged.Code)
	assert.Equal(t, 1, merged.Quantity)
}
