package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestPricingService_GetPrice(t *testing.T) {
	ctx := context.Background()
	service := NewPricingService(zap.NewNop())

	t.Run("sums price times quantity", func(t *testing.T) {
		// bagels 4.99 * 5 + milk 3.00 * 1 = 27.95
		total, err := service.GetPrice(ctx, "order-1", []PricedItem{
			{Name: "bagels", Quantity: 5},
			{Name: "milk", Quantity: 1},
		})

		require.NoError(t, err)
		require.InDelta(t, 27.95, total, 1e-9)
	})

	t.Run("empty order costs zero", func(t *testing.T) {
		total, err := service.GetPrice(ctx, "order-2", nil)

		require.NoError(t, err)
		require.Equal(t, 0.0, total)
	})

	t.Run("unknown item is an error", func(t *testing.T) {
		total, err := service.GetPrice(ctx, "order-3", []PricedItem{
			{Name: "caviar", Quantity: 1},
		})

		require.Error(t, err)
		require.Contains(t, err.Error(), "caviar")
		require.Equal(t, 0.0, total)
	})

	t.Run("every catalog aisle is priced", func(t *testing.T) {
		// По одному товару из каждого отдела
		total, err := service.GetPrice(ctx, "order-4", []PricedItem{
			{Name: "white_bread", Quantity: 1}, // 3.99
			{Name: "eggs", Quantity: 1},        // 3.99
			{Name: "turkey", Quantity: 1},      // 8.00
			{Name: "bananas", Quantity: 1},     // 0.99
			{Name: "balloons", Quantity: 1},    // 4.99
		})

		require.NoError(t, err)
		require.InDelta(t, 21.96, total, 1e-9)
	})
}
