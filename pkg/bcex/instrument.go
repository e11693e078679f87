package bcex

import (
	"sync"

	"github.com/shopspring/decimal"
)

// SymbolDetails is the instrument metadata published on the symbols channel.
// Integer fields paired with a scale encode fixed-point values, e.g. a
// min_price_increment of 10 at scale 2 is a tick of 0.10. It arrives
// asynchronously: an instrument may have no details before the first snapshot.
type SymbolDetails struct {
	Symbol                 string `json:"symbol"`
	BaseCurrency           string `json:"base_currency"`
	BaseCurrencyScale      int32  `json:"base_currency_scale"`
	CounterCurrency        string `json:"counter_currency"`
	CounterCurrencyScale   int32  `json:"counter_currency_scale"`
	MinPriceIncrement      int64  `json:"min_price_increment"`
	MinPriceIncrementScale int32  `json:"min_price_increment_scale"`
	MinOrderSize           int64  `json:"min_order_size"`
	MinOrderSizeScale      int32  `json:"min_order_size_scale"`
	MaxOrderSize           int64  `json:"max_order_size"`
	MaxOrderSizeScale      int32  `json:"max_order_size_scale"`
	LotSize                int64  `json:"lot_size"`
	LotSizeScale           int32  `json:"lot_size_scale"`
	Status                 string `json:"status"`
	ID                     int64  `json:"id"`
}

// TickSize is the smallest valid price increment.
func (d SymbolDetails) TickSize() decimal.Decimal {
	return decimal.New(d.MinPriceIncrement, -d.MinPriceIncrementScale)
}

// MinOrderQty is the smallest order size the venue accepts.
func (d SymbolDetails) MinOrderQty() decimal.Decimal {
	return decimal.New(d.MinOrderSize, -d.MinOrderSizeScale)
}

// MaxOrderQty is the largest order size the venue accepts. Zero means the
// venue declares no upper bound.
func (d SymbolDetails) MaxOrderQty() decimal.Decimal {
	return decimal.New(d.MaxOrderSize, -d.MaxOrderSizeScale)
}

// LotQty is the quantity increment of the instrument.
func (d SymbolDetails) LotQty() decimal.Decimal {
	return decimal.New(d.LotSize, -d.LotSizeScale)
}

// RoundQuantity rounds a quantity to the declared base currency scale.
func (d SymbolDetails) RoundQuantity(qty decimal.Decimal) decimal.Decimal {
	return qty.Round(d.BaseCurrencyScale)
}

// FloorToTick floors a price to the nearest valid increment, on both sides.
func (d SymbolDetails) FloorToTick(price decimal.Decimal) decimal.Decimal {
	tick := d.TickSize()
	if tick.IsZero() {
		return price
	}
	return price.Div(tick).Floor().Mul(tick)
}

// QuantityWithinLimits checks the declared min/max order size bounds.
func (d SymbolDetails) QuantityWithinLimits(qty decimal.Decimal) bool {
	if qty.LessThan(d.MinOrderQty()) {
		return false
	}
	maxQty := d.MaxOrderQty()
	if maxQty.IsZero() {
		return true
	}
	return !qty.GreaterThan(maxQty)
}

type symbolDetailsStore struct {
	mx      sync.RWMutex
	symbols map[string]SymbolDetails
}

func newSymbolDetailsStore() *symbolDetailsStore {
	return &symbolDetailsStore{symbols: make(map[string]SymbolDetails)}
}

func (s *symbolDetailsStore) set(symbol string, details SymbolDetails) {
	s.mx.Lock()
	s.symbols[symbol] = details
	s.mx.Unlock()
}

func (s *symbolDetailsStore) get(symbol string) (SymbolDetails, bool) {
	s.mx.RLock()
	defer s.mx.RUnlock()
	details, ok := s.symbols[symbol]
	return details, ok
}
