package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/shestoi/GoGrocery/services/ordering/internal/domain"
	"github.com/shestoi/GoGrocery/services/ordering/internal/service/mocks"
)

func TestClassifyOutcome(t *testing.T) {
	requested := []domain.LineItem{
		{Name: "milk", Quantity: 3},
		{Name: "cheese", Quantity: 2},
	}

	tests := []struct {
		name       string
		fulfilled  []domain.FulfilledItem
		wantStatus domain.AisleStatus
		wantItems  []domain.FulfilledItem
	}{
		{
			name: "everything fulfilled",
			fulfilled: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 3},
				{Name: "cheese", QuantityFulfilled: 2},
			},
			wantStatus: domain.AisleFulfilled,
			wantItems: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 3},
				{Name: "cheese", QuantityFulfilled: 2},
			},
		},
		{
			name: "one item short means partial",
			fulfilled: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 3},
				{Name: "cheese", QuantityFulfilled: 1},
			},
			wantStatus: domain.AislePartial,
			wantItems: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 3},
				{Name: "cheese", QuantityFulfilled: 1},
			},
		},
		{
			name: "missing item is dropped from result",
			fulfilled: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 3},
			},
			wantStatus: domain.AislePartial,
			wantItems: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 3},
			},
		},
		{
			name:       "nothing fulfilled means unavailable",
			fulfilled:  []domain.FulfilledItem{},
			wantStatus: domain.AisleUnavailable,
			wantItems:  []domain.FulfilledItem{},
		},
		{
			name: "zero quantities mean unavailable",
			fulfilled: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 0},
				{Name: "cheese", QuantityFulfilled: 0},
			},
			wantStatus: domain.AisleUnavailable,
			wantItems:  []domain.FulfilledItem{},
		},
		{
			name: "over-fulfillment is capped at requested",
			fulfilled: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 10},
				{Name: "cheese", QuantityFulfilled: 2},
			},
			wantStatus: domain.AisleFulfilled,
			wantItems: []domain.FulfilledItem{
				{Name: "milk", QuantityFulfilled: 3},
				{Name: "cheese", QuantityFulfilled: 2},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			outcome := classifyOutcome(requested, tt.fulfilled)

			require.Equal(t, tt.wantStatus, outcome.Status)
			require.Equal(t, tt.wantItems, outcome.Items)
		})
	}
}

func TestOrderService_Dispatch(t *testing.T) {
	ctx := context.Background()

	newService := func(t *testing.T, aisles map[domain.Category]AisleClient, aisleTimeout time.Duration) *OrderService {
		return NewOrderService(
			zap.NewNop(),
			aisles,
			mocks.NewPricingClient(t),
			mocks.NewTelemetryPublisher(t),
			aisleTimeout,
			time.Second,
		)
	}

	t.Run("empty aisles are not dispatched", func(t *testing.T) {
		// Arrange
		breadClient := mocks.NewAisleClient(t)
		breadClient.On("FulfillAisle", mock.Anything, "customer-1", domain.CategoryBread, domain.OrderTypeGrocery,
			[]domain.LineItem{{Name: "bagels", Quantity: 2}}).
			Return([]domain.FulfilledItem{{Name: "bagels", QuantityFulfilled: 2}}, nil).Once()

		aisles := map[domain.Category]AisleClient{
			domain.CategoryBread:   breadClient,
			domain.CategoryDairy:   mocks.NewAisleClient(t),
			domain.CategoryMeat:    mocks.NewAisleClient(t),
			domain.CategoryProduce: mocks.NewAisleClient(t),
			domain.CategoryParty:   mocks.NewAisleClient(t),
		}
		service := newService(t, aisles, time.Second)

		order, verr := domain.NewOrder("customer-1", "GROCERY_ORDER", map[string][]domain.LineItem{
			"bread": {{Name: "bagels", Quantity: 2}},
		})
		require.Nil(t, verr)

		// Act
		outcomes := service.dispatch(ctx, order)

		// Assert: пять слотов в каноническом порядке, пустые отделы вакуумно FULFILLED
		require.Len(t, outcomes, 5)
		require.Equal(t, domain.AisleFulfilled, outcomes[0].Status)
		require.Equal(t, []domain.FulfilledItem{{Name: "bagels", QuantityFulfilled: 2}}, outcomes[0].Items)
		for i := 1; i < 5; i++ {
			require.Equal(t, domain.AisleFulfilled, outcomes[i].Status)
			require.Empty(t, outcomes[i].Items)
		}
	})

	t.Run("aisle error degrades only its own slot", func(t *testing.T) {
		// Arrange
		breadClient := mocks.NewAisleClient(t)
		breadClient.On("FulfillAisle", mock.Anything, "customer-1", domain.CategoryBread, domain.OrderTypeGrocery, mock.Anything).
			Return(nil, errors.New("connection refused")).Once()

		dairyClient := mocks.NewAisleClient(t)
		dairyClient.On("FulfillAisle", mock.Anything, "customer-1", domain.CategoryDairy, domain.OrderTypeGrocery, mock.Anything).
			Return([]domain.FulfilledItem{{Name: "milk", QuantityFulfilled: 1}}, nil).Once()

		aisles := map[domain.Category]AisleClient{
			domain.CategoryBread:   breadClient,
			domain.CategoryDairy:   dairyClient,
			domain.CategoryMeat:    mocks.NewAisleClient(t),
			domain.CategoryProduce: mocks.NewAisleClient(t),
			domain.CategoryParty:   mocks.NewAisleClient(t),
		}
		service := newService(t, aisles, time.Second)

		order, verr := domain.NewOrder("customer-1", "GROCERY_ORDER", map[string][]domain.LineItem{
			"bread": {{Name: "bagels", Quantity: 2}},
			"dairy": {{Name: "milk", Quantity: 1}},
		})
		require.Nil(t, verr)

		// Act
		outcomes := service.dispatch(ctx, order)

		// Assert
		require.Equal(t, domain.AisleUnavailable, outcomes[0].Status)
		require.Empty(t, outcomes[0].Items)
		require.Equal(t, domain.AisleFulfilled, outcomes[1].Status)
	})

	t.Run("slow aisle times out, siblings are not cancelled", func(t *testing.T) {
		// Arrange
		slowClient := mocks.NewAisleClient(t)
		slowClient.On("FulfillAisle", mock.Anything, "customer-1", domain.CategoryBread, domain.OrderTypeGrocery, mock.Anything).
			Return(func(callCtx context.Context, _ string, _ domain.Category, _ domain.OrderType, _ []domain.LineItem) ([]domain.FulfilledItem, error) {
				// Имитация зависшего отдела: отдаём управление только по таймауту
				<-callCtx.Done()
				return nil, callCtx.Err()
			}).Once()

		dairyClient := mocks.NewAisleClient(t)
		dairyClient.On("FulfillAisle", mock.Anything, "customer-1", domain.CategoryDairy, domain.OrderTypeGrocery, mock.Anything).
			Return([]domain.FulfilledItem{{Name: "milk", QuantityFulfilled: 1}}, nil).Once()

		aisles := map[domain.Category]AisleClient{
			domain.CategoryBread:   slowClient,
			domain.CategoryDairy:   dairyClient,
			domain.CategoryMeat:    mocks.NewAisleClient(t),
			domain.CategoryProduce: mocks.NewAisleClient(t),
			domain.CategoryParty:   mocks.NewAisleClient(t),
		}
		service := newService(t, aisles, 50*time.Millisecond)

		order, verr := domain.NewOrder("customer-1", "GROCERY_ORDER", map[string][]domain.LineItem{
			"bread": {{Name: "bagels", Quantity: 2}},
			"dairy": {{Name: "milk", Quantity: 1}},
		})
		require.Nil(t, verr)

		// Act
		start := time.Now()
		outcomes := service.dispatch(ctx, order)
		elapsed := time.Since(start)

		// Assert: join-барьер дождался таймаута, но не дольше
		require.GreaterOrEqual(t, elapsed, 50*time.Millisecond)
		require.Less(t, elapsed, time.Second)
		require.Equal(t, domain.AisleUnavailable, outcomes[0].Status)
		require.Equal(t, domain.AisleFulfilled, outcomes[1].Status)
	})
}
