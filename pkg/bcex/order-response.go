package bcex

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// OrderResponse is the exchange-side state of one of our orders, rebuilt from
// each trading-channel update.
type OrderResponse struct {
	OrderID       int64
	ClientOrderID ClientOrderID
	ExecID        string
	Symbol        string
	Side          OrderSide
	OrderType     OrderType
	OrderStatus   OrderStatus
	Price         decimal.Decimal
	AveragePrice  decimal.Decimal
	OrderQty      decimal.Decimal
	CumQty        decimal.Decimal
	LeavesQty     decimal.Decimal
	Timestamp     int64
}

func (o *OrderResponse) String() string {
	return "clOrdID: " + o.ClientOrderID.String() +
		", orderID: " + strconv.FormatInt(o.OrderID, 10) +
		", execID: " + o.ExecID +
		", ordStatus: " + o.OrderStatus.String() +
		", symbol: " + o.Symbol
}
