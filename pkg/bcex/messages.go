package bcex

import (
	"github.com/shopspring/decimal"
)

// inboundFrame is the envelope every frame carries. Channel and event stay
// raw strings here so an unknown value is routed to the protocol-error logs
// instead of failing the decode.
type inboundFrame struct {
	SeqNum  *int64 `json:"seqnum"`
	Channel string `json:"channel"`
	Event   string `json:"event"`
	Symbol  string `json:"symbol"`
	Text    string `json:"text"`
}

type l2Message struct {
	Symbol string       `json:"symbol"`
	Bids   []PriceLevel `json:"bids"`
	Asks   []PriceLevel `json:"asks"`
}

type tickerMessage struct {
	Symbol         string           `json:"symbol"`
	LastTradePrice *decimal.Decimal `json:"last_trade_price"`
	Price24h       *decimal.Decimal `json:"price_24h"`
	Volume24h      *decimal.Decimal `json:"volume_24h"`
}

type pricesMessage struct {
	Symbol string  `json:"symbol"`
	Price  *Candle `json:"price"`
}

type heartbeatMessage struct {
	Timestamp string `json:"timestamp"`
}

type tradeMessage struct {
	Symbol    string          `json:"symbol"`
	Timestamp string          `json:"timestamp"`
	Side      string          `json:"side"`
	Qty       decimal.Decimal `json:"qty"`
	Price     decimal.Decimal `json:"price"`
	TradeID   string          `json:"trade_id"`
}

func (m *tradeMessage) marketTrade() (MarketTrade, error) {
	side, err := OrderSideStrToType(m.Side)
	if err != nil {
		return MarketTrade{}, err
	}
	return MarketTrade{
		Symbol:    m.Symbol,
		Price:     m.Price,
		Qty:       m.Qty,
		Side:      side,
		Timestamp: m.Timestamp,
		TradeID:   m.TradeID,
	}, nil
}

type balancesMessage struct {
	Balances []Balance `json:"balances"`
}

type orderMessage struct {
	OrderID   int64           `json:"orderID"`
	ClOrdID   ClientOrderID   `json:"clOrdID"`
	ExecID    string          `json:"execID"`
	Symbol    string          `json:"symbol"`
	Side      OrderSide       `json:"side"`
	OrdType   OrderType       `json:"ordType"`
	OrdStatus OrderStatus     `json:"ordStatus"`
	Price     decimal.Decimal `json:"price"`
	AvgPx     decimal.Decimal `json:"avgPx"`
	OrderQty  decimal.Decimal `json:"orderQty"`
	CumQty    decimal.Decimal `json:"cumQty"`
	LeavesQty decimal.Decimal `json:"leavesQty"`
	Timestamp int64           `json:"timestamp"`
}

func (m *orderMessage) orderResponse() OrderResponse {
	return OrderResponse{
		OrderID:       m.OrderID,
		ClientOrderID: m.ClOrdID,
		ExecID:        m.ExecID,
		Symbol:        m.Symbol,
		Side:          m.Side,
		OrderType:     m.OrdType,
		OrderStatus:   m.OrdStatus,
		Price:         m.Price,
		AveragePrice:  m.AvgPx,
		OrderQty:      m.OrderQty,
		CumQty:        m.CumQty,
		LeavesQty:     m.LeavesQty,
		Timestamp:     m.Timestamp,
	}
}

type tradingSnapshotMessage struct {
	Orders []orderMessage `json:"orders"`
}

type orderRejectMessage struct {
	OrderID int64  `json:"orderID"`
	Text    string `json:"text"`
}

// subscribeRequest is the outbound subscription frame. Per-channel extra
// options (e.g. candle granularity) ride alongside the fixed fields, which is
// why this is an open map rather than a struct.
func subscribeRequest(ch Channel, symbol string, params map[string]interface{}) map[string]interface{} {
	request := map[string]interface{}{
		"action":  "subscribe",
		"channel": ch.String(),
	}
	if symbol != "" {
		request["symbol"] = symbol
	}
	for key, value := range params {
		request[key] = value
	}
	return request
}

type authRequest struct {
	Channel Channel `json:"channel"`
	Action  string  `json:"action"`
	Token   string  `json:"token"`
}
