package bcex

import (
	"strconv"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// BulkCancelOrderID is the reserved order id that turns a cancel into a
// venue-wide bulk cancel across all instruments.
const BulkCancelOrderID int64 = -999

// Order is an outbound order intent. It is built once through NewOrder, which
// validates the kind-specific required-field contract, and is immutable after
// construction.
type Order struct {
	Action        Action
	OrderType     OrderType
	Symbol        string
	Side          OrderSide
	TimeInForce   TimeInForce
	Quantity      decimal.Decimal
	Price         decimal.Decimal
	StopPrice     decimal.Decimal
	MinimumQty    decimal.Decimal
	ExpiryDate    int64 // YYYYMMDD
	OrderID       int64
	ClientOrderID ClientOrderID

	hasSide     bool
	hasTIF      bool
	hasQuantity bool
	hasPrice    bool
	hasStopPx   bool
	hasMinQty   bool
	hasOrderID  bool
}

type OrderOption func(*Order)

func WithSymbol(symbol string) OrderOption {
	return func(o *Order) { o.Symbol = symbol }
}

func WithSide(side OrderSide) OrderOption {
	return func(o *Order) {
		o.Side = side
		o.hasSide = true
	}
}

func WithTimeInForce(tif TimeInForce) OrderOption {
	return func(o *Order) {
		o.TimeInForce = tif
		o.hasTIF = true
	}
}

func WithQuantity(qty decimal.Decimal) OrderOption {
	return func(o *Order) {
		o.Quantity = qty
		o.hasQuantity = true
	}
}

func WithPrice(px decimal.Decimal) OrderOption {
	return func(o *Order) {
		o.Price = px
		o.hasPrice = true
	}
}

func WithStopPrice(px decimal.Decimal) OrderOption {
	return func(o *Order) {
		o.StopPrice = px
		o.hasStopPx = true
	}
}

// WithMinimumQuantity sets the minimum fill required for an IOC order.
func WithMinimumQuantity(qty decimal.Decimal) OrderOption {
	return func(o *Order) {
		o.MinimumQty = qty
		o.hasMinQty = true
	}
}

// WithExpiryDate sets the GTD expiry as an int of the form YYYYMMDD.
func WithExpiryDate(date int64) OrderOption {
	return func(o *Order) { o.ExpiryDate = date }
}

func WithOrderID(id int64) OrderOption {
	return func(o *Order) {
		o.OrderID = id
		o.hasOrderID = true
	}
}

// NewOrder builds and validates an order intent of the given kind. A cancel
// kind with the bulk sentinel id becomes a bulk cancel; every other cancel
// requires the exchange order id. Validation failures are *InvalidOrderError.
func NewOrder(ot OrderType, opts ...OrderOption) (*Order, error) {
	order := &Order{
		OrderType:     ot,
		ClientOrderID: ClientOrderIDGenerate(),
	}
	for _, opt := range opts {
		opt(order)
	}

	if ot == OrderTypeCancel {
		if order.hasOrderID && order.OrderID == BulkCancelOrderID {
			order.Action = ActionBulkCancel
		} else {
			order.Action = ActionCancelOrder
		}
	} else {
		order.Action = ActionPlaceOrder
	}

	if err := order.validate(); err != nil {
		return nil, err
	}
	return order, nil
}

func (o *Order) validate() error {
	if o.Action == ActionBulkCancel {
		return nil
	}
	if o.Action == ActionCancelOrder {
		if !o.hasOrderID {
			return missingField(o.OrderType, "orderID")
		}
		return nil
	}

	if o.Symbol == "" {
		return missingField(o.OrderType, "symbol")
	}
	if !o.hasSide {
		return missingField(o.OrderType, "side")
	}
	if !o.hasQuantity {
		return missingField(o.OrderType, "orderQty")
	}
	if !o.hasTIF {
		return missingField(o.OrderType, "timeInForce")
	}

	if o.OrderType.HasPrice() && !o.hasPrice {
		return missingField(o.OrderType, "price")
	}
	if o.OrderType == OrderTypeMarket && o.hasPrice {
		return forbiddenField(o.OrderType, "price")
	}
	if o.OrderType.HasStopPrice() && !o.hasStopPx {
		return missingField(o.OrderType, "stopPx")
	}
	if o.TimeInForce == TimeInForceIOC && !o.hasMinQty {
		return missingField(o.OrderType, "minQty")
	}
	if o.TimeInForce == TimeInForceGTD && o.ExpiryDate == 0 {
		return missingField(o.OrderType, "expireDate")
	}
	return nil
}

func (o *Order) String() string {
	if o.Action == ActionBulkCancel {
		return "bulk cancel all orders"
	}
	if o.Action == ActionCancelOrder {
		return "cancel order " + strconv.FormatInt(o.OrderID, 10)
	}
	return o.ClientOrderID.String() + " - " + o.Side.String() + " " +
		o.Quantity.String() + "@" + o.Price.String() + " " + o.Symbol
}

// wireDecimal marshals a decimal as a bare JSON number, which is what the
// gateway expects for quantities and prices.
type wireDecimal decimal.Decimal

func (d wireDecimal) MarshalJSON() ([]byte, error) {
	return []byte(decimal.Decimal(d).String()), nil
}

func wireDecimalPtr(d decimal.Decimal, present bool) *wireDecimal {
	if !present {
		return nil
	}
	w := wireDecimal(d)
	return &w
}

type placeOrderPayload struct {
	Action      Action        `json:"action"`
	Channel     Channel       `json:"channel"`
	ClOrdID     ClientOrderID `json:"clOrdID"`
	Symbol      string        `json:"symbol"`
	OrdType     OrderType     `json:"ordType"`
	TimeInForce TimeInForce   `json:"timeInForce"`
	Side        OrderSide     `json:"side"`
	OrderQty    wireDecimal   `json:"orderQty"`
	Price       *wireDecimal  `json:"price,omitempty"`
	StopPx      *wireDecimal  `json:"stopPx,omitempty"`
	MinQty      *wireDecimal  `json:"minQty,omitempty"`
	ExpireDate  int64         `json:"expireDate,omitempty"`
}

type cancelOrderPayload struct {
	Action  Action  `json:"action"`
	Channel Channel `json:"channel"`
	OrderID int64   `json:"orderID"`
}

// encode serializes the order to its wire frame. Field inclusion follows the
// kind/timeInForce matrix: price for limit and stopLimit, stopPx for stop and
// stopLimit, minQty for IOC, expireDate for GTD.
func (o *Order) encode() ([]byte, error) {
	switch o.Action {
	case ActionCancelOrder:
		return jsoniter.Marshal(cancelOrderPayload{
			Action:  ActionCancelOrder,
			Channel: ChannelTrading,
			OrderID: o.OrderID,
		})
	case ActionBulkCancel:
		return jsoniter.Marshal(cancelOrderPayload{
			Action:  ActionBulkCancel,
			Channel: ChannelTrading,
			OrderID: BulkCancelOrderID,
		})
	case ActionPlaceOrder:
		payload := placeOrderPayload{
			Action:      ActionPlaceOrder,
			Channel:     ChannelTrading,
			ClOrdID:     o.ClientOrderID,
			Symbol:      o.Symbol,
			OrdType:     o.OrderType,
			TimeInForce: o.TimeInForce,
			Side:        o.Side,
			OrderQty:    wireDecimal(o.Quantity),
			Price:       wireDecimalPtr(o.Price, o.OrderType.HasPrice()),
			StopPx:      wireDecimalPtr(o.StopPrice, o.OrderType.HasStopPrice()),
			MinQty:      wireDecimalPtr(o.MinimumQty, o.TimeInForce == TimeInForceIOC),
		}
		if o.TimeInForce == TimeInForceGTD {
			payload.ExpireDate = o.ExpiryDate
		}
		return jsoniter.Marshal(payload)
	}
	return nil, errors.New("invalid order action: " + strconv.Itoa(int(o.Action)))
}
