package bcex

import (
	"testing"

	"gotest.tools/assert"
)

func TestOrdersContainerFlow(t *testing.T) {
	container := newOrdersContainer([]string{"BTC-USD"})

	openOrder := OrderResponse{
		OrderID:     100,
		Symbol:      "BTC-USD",
		OrderStatus: OrderStatusOpen,
	}

	t.Run("upsert keeps live orders", func(t *testing.T) {
		terminal := container.handleUpdate(openOrder)
		assert.Check(t, !terminal)

		order, ok := container.get("BTC-USD", 100)
		assert.Check(t, ok)
		assert.Equal(t, order.OrderStatus, OrderStatusOpen)

		order, ok = container.find(100)
		assert.Check(t, ok)
		assert.Equal(t, order.OrderID, int64(100))
	})

	t.Run("update replaces in place", func(t *testing.T) {
		updated := openOrder
		updated.OrderStatus = OrderStatusPending
		container.handleUpdate(updated)

		assert.Equal(t, len(container.open()), 1)
		order, _ := container.get("BTC-USD", 100)
		assert.Equal(t, order.OrderStatus, OrderStatusPending)
	})

	t.Run("terminal status removes the order", func(t *testing.T) {
		filled := openOrder
		filled.OrderStatus = OrderStatusFilled
		terminal := container.handleUpdate(filled)
		assert.Check(t, terminal)

		_, ok := container.get("BTC-USD", 100)
		assert.Check(t, !ok, "terminal orders are not open")
		assert.Equal(t, len(container.open()), 0)
	})

	t.Run("unknown symbol still tracked", func(t *testing.T) {
		container.handleUpdate(OrderResponse{
			OrderID:     200,
			Symbol:      "XLM-USD",
			OrderStatus: OrderStatusOpen,
		})
		_, ok := container.find(200)
		assert.Check(t, ok, "bulk cancel can touch markets we never subscribed")
	})

	t.Run("open filters by symbol", func(t *testing.T) {
		container.handleUpdate(openOrder)
		assert.Equal(t, len(container.open("BTC-USD")), 1)
		assert.Equal(t, len(container.open("XLM-USD")), 1)
		assert.Equal(t, len(container.open()), 2)
		assert.Equal(t, len(container.bySymbol("BTC-USD")), 1)
	})

	t.Run("remove drops one order", func(t *testing.T) {
		container.remove("BTC-USD", 100)
		_, ok := container.get("BTC-USD", 100)
		assert.Check(t, !ok)
	})
}
