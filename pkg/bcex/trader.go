package bcex

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const defaultTraderInterval = time.Second

// OrderHandler is a trading strategy callback, invoked on every trader tick
// with the live exchange state.
type OrderHandler interface {
	HandleOrders(exchange *ExchangeInterface)
}

// Trader drives an OrderHandler against one exchange session at a fixed
// interval until the session dies or the context is cancelled.
type Trader struct {
	logger   *zap.Logger
	exchange *ExchangeInterface
	handler  OrderHandler
	interval time.Duration
}

func NewTrader(logger *zap.Logger, exchange *ExchangeInterface, handler OrderHandler, interval time.Duration) *Trader {
	if logger == nil {
		logger = zap.NewNop()
	}
	if interval <= 0 {
		interval = defaultTraderInterval
	}
	return &Trader{logger: logger, exchange: exchange, handler: handler, interval: interval}
}

// Run connects the session and ticks the handler. It returns when the context
// is cancelled, after closing the session, or with an error when the session
// exits underneath us.
func (t *Trader) Run(ctx context.Context) error {
	if err := t.exchange.Connect(ctx); err != nil {
		return errors.WithMessage(err, "fail connect exchange")
	}
	t.logger.Info("trader started", zap.Duration("interval", t.interval))

	ticker := time.NewTicker(t.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			t.logger.Info("trader stopping")
			t.exchange.Close()
			return nil
		case <-ticker.C:
			if !t.exchange.IsOpen() {
				return errors.New("exchange session exited")
			}
			t.handler.HandleOrders(t.exchange)
		}
	}
}
