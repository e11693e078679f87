package bcex

import "github.com/shopspring/decimal"

// MarketTrade is one public trade print from the trades channel.
type MarketTrade struct {
	Symbol    string
	Price     decimal.Decimal
	Qty       decimal.Decimal
	Side      OrderSide
	Timestamp string
	TradeID   string
}

// sameAs reports whether two prints are the same trade. The venue tags prints
// with trade_id; when it is present on both, the id decides.
func (t MarketTrade) sameAs(other MarketTrade) bool {
	if t.TradeID != "" && other.TradeID != "" {
		return t.TradeID == other.TradeID
	}
	return t.Symbol == other.Symbol &&
		t.Timestamp == other.Timestamp &&
		t.Side == other.Side &&
		t.Price.Equal(other.Price) &&
		t.Qty.Equal(other.Qty)
}
