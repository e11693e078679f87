package bcex

import (
	"testing"

	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
	"gotest.tools/assert"
)

func TestOrder_EncodePlace(t *testing.T) {
	order, err := NewOrder(OrderTypeLimit,
		WithSymbol("BTC-USD"),
		WithSide(OrderSideBuy),
		WithQuantity(decimal.RequireFromString("0.5")),
		WithPrice(decimal.RequireFromString("31000.25")),
		WithTimeInForce(TimeInForceGTC),
	)
	assert.NilError(t, err)

	data, err := order.encode()
	assert.NilError(t, err)

	var payload map[string]interface{}
	assert.NilError(t, jsoniter.Unmarshal(data, &payload))

	assert.Equal(t, payload["action"], "NewOrderSingle")
	assert.Equal(t, payload["channel"], "trading")
	assert.Equal(t, payload["symbol"], "BTC-USD")
	assert.Equal(t, payload["ordType"], "limit")
	assert.Equal(t, payload["side"], "buy")
	assert.Equal(t, payload["timeInForce"], "GTC")
	assert.Equal(t, payload["clOrdID"], order.ClientOrderID.String())
	// quantities and prices go out as bare numbers, not strings
	assert.Equal(t, payload["orderQty"], 0.5)
	assert.Equal(t, payload["price"], 31000.25)
	_, ok := payload["stopPx"]
	assert.Check(t, !ok, "no stop price on a limit order")
	_, ok = payload["minQty"]
	assert.Check(t, !ok, "no minQty outside IOC")
	_, ok = payload["expireDate"]
	assert.Check(t, !ok, "no expireDate outside GTD")
}

func TestOrder_EncodeStopLimitGTD(t *testing.T) {
	order, err := NewOrder(OrderTypeStopLimit,
		WithSymbol("ETH-USD"),
		WithSide(OrderSideSell),
		WithQuantity(decimal.RequireFromString("3")),
		WithPrice(decimal.RequireFromString("1800")),
		WithStopPrice(decimal.RequireFromString("1850")),
		WithTimeInForce(TimeInForceGTD),
		WithExpiryDate(20261231),
	)
	assert.NilError(t, err)

	data, err := order.encode()
	assert.NilError(t, err)

	var payload map[string]interface{}
	assert.NilError(t, jsoniter.Unmarshal(data, &payload))

	assert.Equal(t, payload["ordType"], "stopLimit")
	assert.Equal(t, payload["stopPx"], float64(1850))
	assert.Equal(t, payload["expireDate"], float64(20261231))
}

func TestOrder_EncodeCancel(t *testing.T) {
	order, err := NewOrder(OrderTypeCancel, WithOrderID(11111))
	assert.NilError(t, err)

	data, err := order.encode()
	assert.NilError(t, err)
	assert.Equal(t, string(data), `{"action":"CancelOrderRequest","channel":"trading","orderID":11111}`)

	order, err = NewOrder(OrderTypeCancel, WithOrderID(BulkCancelOrderID))
	assert.NilError(t, err)

	data, err = order.encode()
	assert.NilError(t, err)
	assert.Equal(t, string(data), `{"action":"BulkCancelOrderRequest","channel":"trading","orderID":-999}`)
}
