package bcex

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Ticker is the rolling market summary of one symbol. last_trade_price is not
// always present on the wire, so updates merge field by field.
type Ticker struct {
	LastTradePrice decimal.Decimal
	Price24h       decimal.Decimal
	Volume24h      decimal.Decimal
}

type tickerStore struct {
	mx      sync.RWMutex
	symbols map[string]Ticker
}

func newTickerStore() *tickerStore {
	return &tickerStore{symbols: make(map[string]Ticker)}
}

// merge applies the fields present in the message, keeping prior values for
// the absent ones.
func (s *tickerStore) merge(symbol string, lastTradePrice, price24h, volume24h *decimal.Decimal) {
	s.mx.Lock()
	defer s.mx.Unlock()
	ticker := s.symbols[symbol]
	if lastTradePrice != nil {
		ticker.LastTradePrice = *lastTradePrice
	}
	if price24h != nil {
		ticker.Price24h = *price24h
	}
	if volume24h != nil {
		ticker.Volume24h = *volume24h
	}
	s.symbols[symbol] = ticker
}

func (s *tickerStore) get(symbol string) (Ticker, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	ticker, ok := s.symbols[symbol]
	return ticker, ok
}
