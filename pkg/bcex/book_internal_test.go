package bcex

import (
	"testing"

	"github.com/shopspring/decimal"
	"gotest.tools/assert"
)

func level(px, qty string) PriceLevel {
	return PriceLevel{
		Px:  decimal.RequireFromString(px),
		Qty: decimal.RequireFromString(qty),
	}
}

func TestOrderBookFlow(t *testing.T) {
	book := newOrderBook()

	_, ok := book.BestBid()
	assert.Check(t, !ok, "empty book has no best bid")
	_, ok = book.BestAsk()
	assert.Check(t, !ok, "empty book has no best ask")

	book.applySnapshot(
		[]PriceLevel{level("100", "1"), level("99", "2"), level("98", "3")},
		[]PriceLevel{level("101", "1"), level("102", "2")},
	)

	t.Run("best levels after snapshot", func(t *testing.T) {
		bid, ok := book.BestBid()
		assert.Check(t, ok)
		assert.Check(t, bid.Px.Equal(decimal.RequireFromString("100")), "best bid is highest")

		ask, ok := book.BestAsk()
		assert.Check(t, ok)
		assert.Check(t, ask.Px.Equal(decimal.RequireFromString("101")), "best ask is lowest")
	})

	t.Run("delta replaces level size", func(t *testing.T) {
		book.applyDelta([]PriceLevel{level("99", "5")}, nil)
		bids := book.Bids()
		assert.Equal(t, len(bids), 3)
		assert.Check(t, bids[1].Qty.Equal(decimal.RequireFromString("5")), "size replaced, not accumulated")
	})

	t.Run("zero size removes the level", func(t *testing.T) {
		book.applyDelta([]PriceLevel{level("100", "0")}, nil)
		bid, ok := book.BestBid()
		assert.Check(t, ok)
		assert.Check(t, bid.Px.Equal(decimal.RequireFromString("99")), "next level became best")
	})

	t.Run("removing an absent level is a no-op", func(t *testing.T) {
		book.applyDelta([]PriceLevel{level("97.5", "0")}, nil)
		assert.Equal(t, len(book.Bids()), 2)
	})

	t.Run("new snapshot replaces both sides wholesale", func(t *testing.T) {
		book.applySnapshot(
			[]PriceLevel{level("200", "1")},
			[]PriceLevel{level("201", "1")},
		)
		assert.Equal(t, len(book.Bids()), 1)
		assert.Equal(t, len(book.Asks()), 1)
		bid, _ := book.BestBid()
		assert.Check(t, bid.Px.Equal(decimal.RequireFromString("200")))
	})

	t.Run("sides stay price sorted", func(t *testing.T) {
		book.applyDelta(
			[]PriceLevel{level("199", "1"), level("199.5", "2")},
			[]PriceLevel{level("203", "1"), level("202", "2")},
		)
		bids := book.Bids()
		for i := 1; i < len(bids); i++ {
			assert.Check(t, bids[i-1].Px.LessThan(bids[i].Px), "ascending bids")
		}
		asks := book.Asks()
		for i := 1; i < len(asks); i++ {
			assert.Check(t, asks[i-1].Px.LessThan(asks[i].Px), "ascending asks")
		}
	})
}
