package bcex

import (
	"sync"
)

// ordersContainer keeps the live open orders per symbol, keyed by exchange
// order id. It is written only by the receive loop; reads from application
// goroutines go through the RWMutex.
type ordersContainer struct {
	mx      sync.RWMutex
	symbols map[string]map[int64]OrderResponse
}

func newOrdersContainer(symbols []string) *ordersContainer {
	con := &ordersContainer{
		symbols: make(map[string]map[int64]OrderResponse, len(symbols)),
	}
	for _, symbol := range symbols {
		con.symbols[symbol] = make(map[int64]OrderResponse)
	}
	return con
}

// handleUpdate upserts the order, then removes it right away when its status
// is terminal. Reports whether the order reached a terminal state. A symbol
// outside the configured set still gets tracked: a bulk cancel can touch
// orders on markets this client never subscribed to.
func (con *ordersContainer) handleUpdate(resp OrderResponse) (terminal bool) {
	con.mx.Lock()
	defer con.mx.Unlock()
	orders, ok := con.symbols[resp.Symbol]
	if !ok {
		orders = make(map[int64]OrderResponse)
		con.symbols[resp.Symbol] = orders
	}
	orders[resp.OrderID] = resp
	if resp.OrderStatus.IsTerminal() {
		delete(orders, resp.OrderID)
		return true
	}
	return false
}

func (con *ordersContainer) remove(symbol string, orderID int64) {
	con.mx.Lock()
	defer con.mx.Unlock()
	delete(con.symbols[symbol], orderID)
}

func (con *ordersContainer) get(symbol string, orderID int64) (OrderResponse, bool) {
	con.mx.RLock()
	defer con.mx.RUnlock()
	order, ok := con.symbols[symbol][orderID]
	return order, ok
}

// find looks the order up across every symbol.
func (con *ordersContainer) find(orderID int64) (OrderResponse, bool) {
	con.mx.RLock()
	defer con.mx.RUnlock()
	for _, orders := range con.symbols {
		if order, ok := orders[orderID]; ok {
			return order, true
		}
	}
	return OrderResponse{}, false
}

// bySymbol returns a copy of the open orders for one symbol.
func (con *ordersContainer) bySymbol(symbol string) map[int64]OrderResponse {
	con.mx.RLock()
	defer con.mx.RUnlock()
	orders := con.symbols[symbol]
	result := make(map[int64]OrderResponse, len(orders))
	for id, order := range orders {
		result[id] = order
	}
	return result
}

// open returns a copy of the open orders for the given symbols, or for every
// tracked symbol when none are given.
func (con *ordersContainer) open(symbols ...string) map[int64]OrderResponse {
	con.mx.RLock()
	defer con.mx.RUnlock()
	if len(symbols) == 0 {
		symbols = make([]string, 0, len(con.symbols))
		for symbol := range con.symbols {
			symbols = append(symbols, symbol)
		}
	}
	result := make(map[int64]OrderResponse)
	for _, symbol := range symbols {
		for id, order := range con.symbols[symbol] {
			result[id] = order
		}
	}
	return result
}
