package bcex

import (
	"sync"

	"github.com/shopspring/decimal"
)

// Balance is the venue-side funds of one currency.
type Balance struct {
	Currency  string          `json:"currency"`
	Available decimal.Decimal `json:"available"`
	Balance   decimal.Decimal `json:"balance"`
}

// balanceStore holds the latest balance snapshot. The venue never patches
// balances incrementally, every snapshot replaces the whole mapping.
type balanceStore struct {
	mx         sync.RWMutex
	currencies map[string]Balance
}

func newBalanceStore() *balanceStore {
	return &balanceStore{currencies: make(map[string]Balance)}
}

func (s *balanceStore) replace(balances []Balance) {
	fresh := make(map[string]Balance, len(balances))
	for _, balance := range balances {
		fresh[balance.Currency] = balance
	}
	s.mx.Lock()
	s.currencies = fresh
	s.mx.Unlock()
}

func (s *balanceStore) available(currency string) decimal.Decimal {
	s.mx.RLock()
	defer s.mx.RUnlock()
	return s.currencies[currency].Available
}

func (s *balanceStore) all() map[string]Balance {
	s.mx.RLock()
	defer s.mx.RUnlock()
	result := make(map[string]Balance, len(s.currencies))
	for currency, balance := range s.currencies {
		result[currency] = balance
	}
	return result
}
