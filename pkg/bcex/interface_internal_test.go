package bcex

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gotest.tools/assert"
)

func newTestExchange(t *testing.T) (*ExchangeInterface, *mockConnecter) {
	t.Helper()
	exchange, err := NewExchangeInterface(zap.NewNop(), Options{Symbols: []string{"BTC-USD"}})
	assert.NilError(t, err)
	mock := newMockConnecter()
	exchange.client.setConn(mock)

	exchange.client.handleMessage([]byte(`{"seqnum":0,"event":"snapshot","channel":"symbols","symbol":"BTC-USD",
		"base_currency":"BTC","base_currency_scale":8,"counter_currency":"USD","counter_currency_scale":2,
		"min_price_increment":10,"min_price_increment_scale":2,"min_order_size":20,"min_order_size_scale":5,
		"max_order_size":100,"max_order_size_scale":2,"lot_size":5,"lot_size_scale":8,"status":"open","id":1}`))
	return exchange, mock
}

func TestNewExchangeInterface_RequiredChannels(t *testing.T) {
	exchange, err := NewExchangeInterface(zap.NewNop(), Options{
		Symbols:  []string{"BTC-USD"},
		Channels: []Channel{ChannelHeartbeat, ChannelL2},
	})
	assert.NilError(t, err)

	for _, required := range requiredChannels {
		found := false
		for _, ch := range exchange.client.channels {
			if ch == required {
				found = true
			}
		}
		assert.Check(t, found, required.String())
	}
}

func TestExchangeInterface_PlaceOrderScaling(t *testing.T) {
	exchange, mock := newTestExchange(t)

	err := exchange.PlaceOrder(PlaceOrderParams{
		Symbol:    "BTC-USD",
		Side:      OrderSideBuy,
		OrderType: OrderTypeLimit,
		Quantity:  decimal.RequireFromString("0.123456789"),
		Price:     decimal.RequireFromString("31000.57"),
	})
	assert.NilError(t, err)

	frames := mock.sentFrames()
	assert.Equal(t, len(frames), 1)

	var payload map[string]interface{}
	assert.NilError(t, jsoniter.Unmarshal(frames[0], &payload))
	assert.Equal(t, payload["orderQty"], 0.12345679, "rounded to base currency scale")
	assert.Equal(t, payload["price"], 31000.5, "floored to the tick")
	assert.Equal(t, payload["timeInForce"], "GTC", "default time in force")
}

func TestExchangeInterface_PlaceOrderLimits(t *testing.T) {
	exchange, mock := newTestExchange(t)

	err := exchange.PlaceOrder(PlaceOrderParams{
		Symbol:    "BTC-USD",
		Side:      OrderSideBuy,
		OrderType: OrderTypeLimit,
		Quantity:  decimal.RequireFromString("0.0001"),
		Price:     decimal.RequireFromString("31000"),
	})
	assert.ErrorContains(t, err, "outside limits")

	err = exchange.PlaceOrder(PlaceOrderParams{
		Symbol:    "BTC-USD",
		Side:      OrderSideSell,
		OrderType: OrderTypeLimit,
		Quantity:  decimal.RequireFromString("5"),
		Price:     decimal.RequireFromString("31000"),
	})
	assert.ErrorContains(t, err, "outside limits", "above the declared max")

	assert.Equal(t, len(mock.sentFrames()), 0, "rejected orders never reach the wire")
}

func TestExchangeInterface_PlaceOrderNoDetails(t *testing.T) {
	exchange, err := NewExchangeInterface(zap.NewNop(), Options{Symbols: []string{"ETH-USD"}})
	assert.NilError(t, err)
	exchange.client.setConn(newMockConnecter())

	err = exchange.PlaceOrder(PlaceOrderParams{
		Symbol:    "ETH-USD",
		Side:      OrderSideBuy,
		OrderType: OrderTypeLimit,
		Quantity:  decimal.RequireFromString("1"),
		Price:     decimal.RequireFromString("1800"),
	})
	assert.ErrorContains(t, err, "no trading rules")
}

func TestExchangeInterface_CheckBalance(t *testing.T) {
	exchange, mock := newTestExchange(t)

	exchange.client.handleMessage([]byte(`{"seqnum":1,"event":"snapshot","channel":"balances","balances":[
		{"currency":"USD","available":100.0,"balance":100.0},
		{"currency":"BTC","available":2.0,"balance":2.0}]}`))

	buyTooBig := PlaceOrderParams{
		Symbol:       "BTC-USD",
		Side:         OrderSideBuy,
		OrderType:    OrderTypeLimit,
		Quantity:     decimal.RequireFromString("0.01"),
		Price:        decimal.RequireFromString("31000"),
		CheckBalance: true,
	}
	err := exchange.PlaceOrder(buyTooBig)
	assert.ErrorContains(t, err, "insufficient USD funds")
	assert.Equal(t, len(mock.sentFrames()), 0)

	sellCovered := PlaceOrderParams{
		Symbol:       "BTC-USD",
		Side:         OrderSideSell,
		OrderType:    OrderTypeLimit,
		Quantity:     decimal.RequireFromString("0.5"),
		Price:        decimal.RequireFromString("31000"),
		CheckBalance: true,
	}
	assert.NilError(t, exchange.PlaceOrder(sellCovered))
	assert.Equal(t, len(mock.sentFrames()), 1)
}

func TestExchangeInterface_CancelOrdersForSymbol(t *testing.T) {
	exchange, mock := newTestExchange(t)

	exchange.client.orders.handleUpdate(OrderResponse{OrderID: 1, Symbol: "BTC-USD", OrderStatus: OrderStatusOpen})
	exchange.client.orders.handleUpdate(OrderResponse{OrderID: 2, Symbol: "BTC-USD", OrderStatus: OrderStatusOpen})
	exchange.client.orders.handleUpdate(OrderResponse{OrderID: 3, Symbol: "ETH-USD", OrderStatus: OrderStatusOpen})

	assert.NilError(t, exchange.CancelOrdersForSymbol("BTC-USD"))
	assert.Equal(t, len(mock.sentFrames()), 2, "one cancel per open order of the symbol")
}
