package bcex

import (
	"context"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// requiredChannels must always be subscribed for the interface to work:
// symbols feeds the scaling rules, ticker and trades feed the price queries.
var requiredChannels = []Channel{ChannelSymbols, ChannelTicker, ChannelTrades}

// ExchangeInterface wraps a Client with order construction conveniences:
// quantities and prices are scaled to the instrument rules published on the
// symbols channel before an order goes out.
type ExchangeInterface struct {
	logger *zap.Logger
	client *Client
}

// PlaceOrderParams describe one order to place. Zero TimeInForce means GTC.
type PlaceOrderParams struct {
	Symbol    string
	Side      OrderSide
	OrderType OrderType
	Quantity  decimal.Decimal
	// Price is required for limit and stop limit orders.
	Price decimal.Decimal
	// StopPrice is required for stop and stop limit orders.
	StopPrice   decimal.Decimal
	TimeInForce TimeInForce
	// MinimumQuantity is required for IOC orders.
	MinimumQuantity decimal.Decimal
	// ExpiryDate is required for GTD orders, as YYYYMMDD.
	ExpiryDate int64
	// CheckBalance verifies the available funds cover the order before
	// sending. Limit orders only.
	CheckBalance bool
}

// NewExchangeInterface builds the client underneath, forcing the channels the
// interface cannot work without into the subscription set.
func NewExchangeInterface(logger *zap.Logger, opts Options) (*ExchangeInterface, error) {
	if opts.Channels != nil {
		for _, required := range requiredChannels {
			found := false
			for _, ch := range opts.Channels {
				if ch == required {
					found = true
					break
				}
			}
			if !found {
				opts.Channels = append(opts.Channels, required)
			}
		}
	}
	client, err := NewClient(logger, opts)
	if err != nil {
		return nil, err
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ExchangeInterface{logger: logger, client: client}, nil
}

// Client exposes the underlying session for direct access.
func (e *ExchangeInterface) Client() *Client {
	return e.client
}

// Connect opens the underlying session.
func (e *ExchangeInterface) Connect(ctx context.Context) error {
	return e.client.Connect(ctx)
}

// Close tears the session down.
func (e *ExchangeInterface) Close() {
	e.client.Exit()
}

// IsOpen reports whether the session is connected and alive.
func (e *ExchangeInterface) IsOpen() bool {
	return e.client.IsOpen()
}

// Authenticated reports whether the private channels are available.
func (e *ExchangeInterface) Authenticated() bool {
	return e.client.Authenticated()
}

// PlaceOrder scales the requested quantity and prices to the instrument
// rules, validates the result against the venue limits and submits the order.
func (e *ExchangeInterface) PlaceOrder(params PlaceOrderParams) error {
	details, ok := e.client.SymbolDetails(params.Symbol)
	if !ok {
		return errors.Errorf("no trading rules for %s yet, wait for the symbols snapshot", params.Symbol)
	}

	quantity := details.RoundQuantity(params.Quantity)
	if !details.QuantityWithinLimits(quantity) {
		e.logger.Error("order quantity outside the venue limits",
			zap.String("symbol", params.Symbol),
			zap.String("quantity", quantity.String()),
			zap.String("min", details.MinOrderQty().String()),
			zap.String("max", details.MaxOrderQty().String()))
		return errors.Errorf("quantity %s outside limits of %s", quantity, params.Symbol)
	}

	opts := []OrderOption{
		WithSymbol(params.Symbol),
		WithSide(params.Side),
		WithQuantity(quantity),
		WithTimeInForce(params.TimeInForce),
	}
	price := params.Price
	if params.OrderType.HasPrice() {
		price = details.FloorToTick(price)
		opts = append(opts, WithPrice(price))
	}
	if params.OrderType.HasStopPrice() {
		opts = append(opts, WithStopPrice(details.FloorToTick(params.StopPrice)))
	}
	if params.TimeInForce == TimeInForceIOC {
		opts = append(opts, WithMinimumQuantity(details.RoundQuantity(params.MinimumQuantity)))
	}
	if params.TimeInForce == TimeInForceGTD {
		opts = append(opts, WithExpiryDate(params.ExpiryDate))
	}

	if params.CheckBalance && params.OrderType == OrderTypeLimit {
		if err := e.checkAvailableBalance(details, params.Side, quantity, price); err != nil {
			return err
		}
	}

	order, err := NewOrder(params.OrderType, opts...)
	if err != nil {
		return err
	}
	return e.client.Send(order)
}

// checkAvailableBalance compares the order notional against the free funds:
// a buy spends the counter currency, a sell spends the base currency.
func (e *ExchangeInterface) checkAvailableBalance(details SymbolDetails, side OrderSide, quantity, price decimal.Decimal) error {
	currency := details.BaseCurrency
	required := quantity
	if side == OrderSideBuy {
		currency = details.CounterCurrency
		required = quantity.Mul(price)
	}
	available := e.client.AvailableBalance(currency)
	if available.LessThan(required) {
		e.logger.Error("insufficient funds for order",
			zap.String("currency", currency),
			zap.String("required", required.String()),
			zap.String("available", available.String()))
		return errors.Errorf("insufficient %s funds, need %s but only %s available",
			currency, required, available)
	}
	return nil
}

// CancelOrder cancels one order by exchange id.
func (e *ExchangeInterface) CancelOrder(orderID int64) error {
	return e.client.CancelOrder(orderID)
}

// CancelAllOrders cancels every open order across all instruments.
func (e *ExchangeInterface) CancelAllOrders() error {
	return e.client.CancelAllOrders()
}

// CancelOrdersForSymbol cancels every tracked open order of one instrument.
func (e *ExchangeInterface) CancelOrdersForSymbol(symbol string) error {
	for orderID := range e.client.OpenOrders(symbol) {
		if err := e.client.CancelOrder(orderID); err != nil {
			return err
		}
	}
	return nil
}

// LastTradedPrice returns the last matched price of the symbol.
func (e *ExchangeInterface) LastTradedPrice(symbol string) (decimal.Decimal, bool) {
	return e.client.LastTradedPrice(symbol)
}

// BestBid returns the top of the bid side.
func (e *ExchangeInterface) BestBid(symbol string) (PriceLevel, bool) {
	return e.client.BestBid(symbol)
}

// BestAsk returns the top of the ask side.
func (e *ExchangeInterface) BestAsk(symbol string) (PriceLevel, bool) {
	return e.client.BestAsk(symbol)
}

// Balances returns the latest balance snapshot.
func (e *ExchangeInterface) Balances() map[string]Balance {
	return e.client.Balances()
}

// AvailableBalance returns the free funds of one currency.
func (e *ExchangeInterface) AvailableBalance(currency string) decimal.Decimal {
	return e.client.AvailableBalance(currency)
}

// OpenOrders returns the live open orders for the given symbols, all symbols
// when none are given.
func (e *ExchangeInterface) OpenOrders(symbols ...string) map[int64]OrderResponse {
	return e.client.OpenOrders(symbols...)
}

// OrderDetails finds one open order by exchange id.
func (e *ExchangeInterface) OrderDetails(orderID int64) (OrderResponse, bool) {
	return e.client.OrderDetails(orderID)
}

// Candles returns the recent candle history of the symbol, oldest first.
func (e *ExchangeInterface) Candles(symbol string) []Candle {
	return e.client.Candles(symbol)
}

// MarketTrades returns the recent trade prints of the symbol, oldest first.
func (e *ExchangeInterface) MarketTrades(symbol string) []MarketTrade {
	return e.client.MarketTrades(symbol)
}

// TickSize returns the price increment of the instrument.
func (e *ExchangeInterface) TickSize(symbol string) (decimal.Decimal, bool) {
	details, ok := e.client.SymbolDetails(symbol)
	if !ok {
		return decimal.Decimal{}, false
	}
	return details.TickSize(), true
}

// LotSize returns the quantity increment of the instrument.
func (e *ExchangeInterface) LotSize(symbol string) (decimal.Decimal, bool) {
	details, ok := e.client.SymbolDetails(symbol)
	if !ok {
		return decimal.Decimal{}, false
	}
	return details.LotQty(), true
}
