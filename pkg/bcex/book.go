package bcex

import (
	"sync"

	"github.com/google/btree"
	"github.com/shopspring/decimal"
)

// PriceLevel is one (price, aggregate resting size) pair in the book.
type PriceLevel struct {
	Px  decimal.Decimal `json:"px"`
	Qty decimal.Decimal `json:"qty"`
}

func levelLess(a, b PriceLevel) bool {
	return a.Px.LessThan(b.Px)
}

// OrderBook is the L2 book of one instrument: bid and ask sides price-sorted
// in a B-tree so best-price lookup stays logarithmic on the quoting hot path.
// The receive loop is the only writer.
type OrderBook struct {
	mx   sync.RWMutex
	bids *btree.BTreeG[PriceLevel]
	asks *btree.BTreeG[PriceLevel]
}

func newOrderBook() *OrderBook {
	return &OrderBook{
		bids: btree.NewG(8, levelLess),
		asks: btree.NewG(8, levelLess),
	}
}

// applySnapshot replaces both sides wholesale.
func (b *OrderBook) applySnapshot(bids, asks []PriceLevel) {
	freshBids := btree.NewG(8, levelLess)
	for _, level := range bids {
		if !level.Qty.IsZero() {
			freshBids.ReplaceOrInsert(level)
		}
	}
	freshAsks := btree.NewG(8, levelLess)
	for _, level := range asks {
		if !level.Qty.IsZero() {
			freshAsks.ReplaceOrInsert(level)
		}
	}

	b.mx.Lock()
	b.bids = freshBids
	b.asks = freshAsks
	b.mx.Unlock()
}

// applyDelta upserts each level; a size of exactly zero means the price level
// is gone, never an order of size zero. Removing an absent level is a no-op.
func (b *OrderBook) applyDelta(bids, asks []PriceLevel) {
	b.mx.Lock()
	defer b.mx.Unlock()
	applySideDelta(b.bids, bids)
	applySideDelta(b.asks, asks)
}

func applySideDelta(side *btree.BTreeG[PriceLevel], levels []PriceLevel) {
	for _, level := range levels {
		if level.Qty.IsZero() {
			side.Delete(level)
		} else {
			side.ReplaceOrInsert(level)
		}
	}
}

// BestBid returns the highest bid level, ok is false when the side is empty.
func (b *OrderBook) BestBid() (PriceLevel, bool) {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.bids.Max()
}

// BestAsk returns the lowest ask level, ok is false when the side is empty.
func (b *OrderBook) BestAsk() (PriceLevel, bool) {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return b.asks.Min()
}

// Bids returns the bid side in ascending price order.
func (b *OrderBook) Bids() []PriceLevel {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return collectSide(b.bids)
}

// Asks returns the ask side in ascending price order.
func (b *OrderBook) Asks() []PriceLevel {
	b.mx.RLock()
	defer b.mx.RUnlock()
	return collectSide(b.asks)
}

func collectSide(side *btree.BTreeG[PriceLevel]) []PriceLevel {
	levels := make([]PriceLevel, 0, side.Len())
	side.Ascend(func(level PriceLevel) bool {
		levels = append(levels, level)
		return true
	})
	return levels
}
