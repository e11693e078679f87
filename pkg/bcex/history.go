package bcex

import "sync"

// history is a bounded most-recent-N buffer. Appends evict the oldest entry
// first, arrival order is preserved.
type history[T any] struct {
	mx    sync.RWMutex
	items []T
	limit int
}

func newHistory[T any](limit int) *history[T] {
	return &history[T]{limit: limit}
}

func (h *history[T]) append(item T) {
	h.mx.Lock()
	defer h.mx.Unlock()
	h.items = append(h.items, item)
	if len(h.items) > h.limit {
		h.items = h.items[len(h.items)-h.limit:]
	}
}

// last returns the most recently appended item.
func (h *history[T]) last() (T, bool) {
	h.mx.RLock()
	defer h.mx.RUnlock()
	if len(h.items) == 0 {
		var zero T
		return zero, false
	}
	return h.items[len(h.items)-1], true
}

// list returns a copy, oldest first.
func (h *history[T]) list() []T {
	h.mx.RLock()
	defer h.mx.RUnlock()
	result := make([]T, len(h.items))
	copy(result, h.items)
	return result
}

func (h *history[T]) len() int {
	h.mx.RLock()
	defer h.mx.RUnlock()
	return len(h.items)
}

// historySet keys bounded histories by symbol, creating them on demand.
type historySet[T any] struct {
	mx      sync.Mutex
	limit   int
	symbols map[string]*history[T]
}

func newHistorySet[T any](limit int) *historySet[T] {
	return &historySet[T]{limit: limit, symbols: make(map[string]*history[T])}
}

func (s *historySet[T]) get(symbol string) *history[T] {
	s.mx.Lock()
	defer s.mx.Unlock()
	hist, ok := s.symbols[symbol]
	if !ok {
		hist = newHistory[T](s.limit)
		s.symbols[symbol] = hist
	}
	return hist
}

func (s *historySet[T]) list(symbol string) []T {
	return s.get(symbol).list()
}
