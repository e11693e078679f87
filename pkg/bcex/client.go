package bcex

import (
	"context"
	"os"
	"sync"
	"sync/atomic"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

const (
	// MaxCandlesLen bounds the per-symbol candle history.
	MaxCandlesLen = 200
	// MaxTradesLen bounds the per-symbol market trade history.
	MaxTradesLen = 200

	heartbeatWarnAfter  = 5 * time.Second
	heartbeatFatalAfter = 10 * time.Second

	subscribeRetries  = 5
	subscribePollWait = time.Second
	authRetries       = 50
	authPollWait      = 100 * time.Millisecond
)

// APISecretEnvVar is consulted when no explicit credential is configured.
const APISecretEnvVar = "BCEX_API_SECRET"

// Options configure one client session.
type Options struct {
	// Symbols the client subscribes to on every symbol-specific channel.
	Symbols []string
	// Channels to subscribe. Defaults to every channel except l3.
	Channels []Channel
	// ChannelParams are extra per-channel subscription options, e.g. candle
	// granularity for the prices channel. Merged over the defaults.
	ChannelParams map[Channel]map[string]interface{}
	Env           Environment
	// APISecret authenticates the private channels. Falls back to the
	// BCEX_API_SECRET environment variable; without either, private channels
	// stay unavailable.
	APISecret string
	// CancelOnExit sends a bulk cancel for all open orders during teardown of
	// an authenticated session.
	CancelOnExit bool
}

// Client maintains one synchronized session against the exchange websocket:
// subscription state, order books, balances, open orders and market history,
// all mutated by the single receive loop.
type Client struct {
	logger *zap.Logger

	env           Environment
	symbols       []string
	channels      []Channel
	channelParams map[Channel]map[string]interface{}
	apiSecret     string
	cancelOnExit  bool

	connMx sync.RWMutex
	conn   connecter

	status   *channelStatusStore
	books    map[string]*OrderBook
	balances *balanceStore
	orders   *ordersContainer
	tickers  *tickerStore
	details  *symbolDetailsStore
	candles  *historySet[Candle]
	trades   *historySet[MarketTrade]

	guard         sequenceGuard
	lastHeartbeat atomic.Int64
	exited        uint32
}

// NewClient builds a client; it does not touch the network until Connect.
func NewClient(logger *zap.Logger, opts Options) (*Client, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	if len(opts.Symbols) == 0 {
		return nil, errors.New("at least one symbol is required")
	}

	channels := opts.Channels
	if channels == nil {
		for _, ch := range AllChannels {
			if ch != ChannelL3 {
				channels = append(channels, ch)
			}
		}
	}

	params := map[Channel]map[string]interface{}{
		ChannelPrices: {"granularity": 60},
	}
	for ch, extra := range opts.ChannelParams {
		if params[ch] == nil {
			params[ch] = make(map[string]interface{})
		}
		for key, value := range extra {
			params[ch][key] = value
		}
	}

	secret := opts.APISecret
	if secret == "" {
		secret = os.Getenv(APISecretEnvVar)
	}

	books := make(map[string]*OrderBook, len(opts.Symbols))
	for _, symbol := range opts.Symbols {
		books[symbol] = newOrderBook()
	}

	return &Client{
		logger:        logger,
		env:           opts.Env,
		symbols:       opts.Symbols,
		channels:      channels,
		channelParams: params,
		apiSecret:     secret,
		cancelOnExit:  opts.CancelOnExit,
		status:        newChannelStatusStore(opts.Symbols),
		books:         books,
		balances:      newBalanceStore(),
		orders:        newOrdersContainer(opts.Symbols),
		tickers:       newTickerStore(),
		details:       newSymbolDetailsStore(),
		candles:       newHistorySet[Candle](MaxCandlesLen),
		trades:        newHistorySet[MarketTrade](MaxTradesLen),
	}, nil
}

// Connect opens the websocket, then drives the subscription sequencing:
// public channels first, then authentication and private channels when a
// credential is configured. Returns ErrConnectTimeout or ErrAuthTimeout when
// the bounded waits expire.
func (c *Client) Connect(ctx context.Context) error {
	conn, err := dialWebsocket(ctx, c.env, c.logger)
	if err != nil {
		return err
	}
	c.setConn(conn)
	readyState.WithLabelValues(c.env.String()).Set(1)

	conn.run(c.handleMessage, c.onPing, c.onAbnormalClose)
	return c.subscribeChannels(ctx)
}

func (c *Client) setConn(conn connecter) {
	c.connMx.Lock()
	c.conn = conn
	c.connMx.Unlock()
}

func (c *Client) getConn() connecter {
	c.connMx.RLock()
	defer c.connMx.RUnlock()
	return c.conn
}

type subscriptionKey struct {
	channel Channel
	symbol  string
}

func (c *Client) subscribeChannels(ctx context.Context) error {
	c.waitForConfirmation(ctx, c.sendSubscriptions(c.selectChannels(true)))

	if c.apiSecret == "" {
		c.logger.Warn("private channels will not be available because no api secret was provided")
		return nil
	}
	if err := c.authenticate(ctx); err != nil {
		return err
	}
	c.waitForConfirmation(ctx, c.sendSubscriptions(c.selectChannels(false)))
	return nil
}

// selectChannels filters the configured channels by visibility; the auth
// channel is never returned, its subscription is implicit in authentication.
func (c *Client) selectChannels(public bool) []Channel {
	var result []Channel
	for _, ch := range c.channels {
		if ch == ChannelAuth || ch.IsPublic() != public {
			continue
		}
		result = append(result, ch)
	}
	return result
}

// sendSubscriptions issues one subscribe request per channel, and per symbol
// for symbol-specific channels, marking each pair waiting_confirmation first.
func (c *Client) sendSubscriptions(channels []Channel) []subscriptionKey {
	var pending []subscriptionKey
	for _, ch := range channels {
		params := c.channelParams[ch]
		symbols := []string{""}
		if ch.IsSymbolSpecific() {
			symbols = c.symbols
		}
		for _, symbol := range symbols {
			data, err := jsoniter.Marshal(subscribeRequest(ch, symbol, params))
			if err != nil {
				c.logger.Error("fail marshal subscribe request", zap.Error(err), zap.String("channel", ch.String()))
				continue
			}
			c.status.set(ch, symbol, ChannelStatusWaitingConfirmation)
			c.logger.Info("subscribe", zap.ByteString("msg", data))
			if err := c.send(data); err != nil {
				c.logger.Error("fail send subscribe request", zap.Error(err), zap.String("channel", ch.String()))
				continue
			}
			pending = append(pending, subscriptionKey{channel: ch, symbol: symbol})
		}
	}
	return pending
}

// waitForConfirmation polls until every requested pair left the
// waiting_confirmation state. Best effort: on timeout it warns and proceeds,
// some channels may legitimately confirm late.
func (c *Client) waitForConfirmation(ctx context.Context, pending []subscriptionKey) {
	for i := 0; i < subscribeRetries; i++ {
		select {
		case <-ctx.Done():
			return
		case <-time.After(subscribePollWait):
		}
		allAnswered := true
		for _, key := range pending {
			if c.status.get(key.channel, key.symbol) == ChannelStatusWaitingConfirmation {
				allAnswered = false
				break
			}
		}
		if allAnswered {
			return
		}
	}
	c.logger.Warn("could not subscribe to all channels in time")
}

func (c *Client) authenticate(ctx context.Context) error {
	data, err := jsoniter.Marshal(authRequest{Channel: ChannelAuth, Action: "subscribe", Token: c.apiSecret})
	if err != nil {
		return errors.WithMessage(err, "fail marshal auth request")
	}
	c.status.set(ChannelAuth, "", ChannelStatusWaitingConfirmation)
	c.logger.Info("authenticating")
	if err := c.send(data); err != nil {
		return errors.WithMessage(err, "fail send auth request")
	}

	for i := 0; i < authRetries; i++ {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(authPollWait):
		}
		if c.Authenticated() {
			c.logger.Info("successfully authenticated")
			return nil
		}
	}
	c.logger.Error("could not authenticate connection in time, exiting")
	c.Exit()
	return ErrAuthTimeout
}

// onPing runs on every transport liveness tick and is the heartbeat watchdog:
// quiet under 5s, warns between 5 and 10s, kills the session past 10s.
func (c *Client) onPing() {
	if c.status.get(ChannelHeartbeat, "") != ChannelStatusSubscribed {
		return
	}
	now := time.Now()
	last := c.lastHeartbeat.Load()
	if last == 0 {
		c.lastHeartbeat.Store(now.UnixNano())
		return
	}
	elapsed := now.Sub(time.Unix(0, last))
	switch {
	case elapsed > heartbeatFatalAfter:
		c.logger.Error("heartbeat is stale, exiting", zap.Duration("since_last", elapsed))
		c.Exit()
	case elapsed >= heartbeatWarnAfter:
		c.logger.Warn("heartbeat is late, waiting few more seconds", zap.Duration("since_last", elapsed))
	default:
		c.logger.Debug("heartbeat", zap.Duration("since_last", elapsed))
	}
}

func (c *Client) onAbnormalClose() {
	if c.Exited() {
		return
	}
	c.logger.Warn("websocket closed")
	c.Exit()
}

// Exit tears the session down: optionally bulk-cancels open orders of an
// authenticated session, closes the transport and resets every subscription
// to unsubscribed. Idempotent and safe to call from the error path, the
// watchdog and an external shutdown concurrently.
func (c *Client) Exit() {
	if !atomic.CompareAndSwapUint32(&c.exited, 0, 1) {
		return
	}
	if c.cancelOnExit && c.Authenticated() {
		c.logger.Info("cancelling all orders before exiting")
		order, err := NewOrder(OrderTypeCancel, WithOrderID(BulkCancelOrderID))
		if err == nil {
			if err := c.transmit(order); err != nil {
				c.logger.Warn("fail cancel all orders on exit", zap.Error(err))
			}
		}
	}
	if conn := c.getConn(); conn != nil {
		_ = conn.Close()
	}
	c.status.reset()
	readyState.WithLabelValues(c.env.String()).Set(0)
	c.logger.Warn("websocket session exited")
}

// Exited reports whether the session was torn down.
func (c *Client) Exited() bool {
	return atomic.LoadUint32(&c.exited) == 1
}

// IsOpen reports whether the session connected and has not exited yet.
func (c *Client) IsOpen() bool {
	return c.getConn() != nil && !c.Exited()
}

// Authenticated reports whether the auth channel confirmed our credential.
func (c *Client) Authenticated() bool {
	return c.status.get(ChannelAuth, "") == ChannelStatusSubscribed
}

// handleMessage is the router: sequence guard first, then dispatch by channel
// tag to exactly one handler. Runs on the receive loop only, in wire order.
func (c *Client) handleMessage(raw []byte) {
	var frame inboundFrame
	if err := jsoniter.Unmarshal(raw, &frame); err != nil {
		c.logger.Error("fail parse frame", zap.Error(err), zap.ByteString("msg", raw))
		return
	}

	if frame.SeqNum == nil {
		c.logger.Error("seqnum missing from frame", zap.ByteString("msg", raw))
	} else {
		switch c.guard.check(*frame.SeqNum) {
		case seqGap:
			from, to := c.guard.missingRange(*frame.SeqNum)
			sequenceGaps.Inc()
			c.logger.Error("missing messages, exiting",
				zap.Int64("from_seqnum", from), zap.Int64("to_seqnum", to))
			c.Exit()
			return
		case seqDelayed:
			c.logger.Warn("received message with delay", zap.Int64("seqnum", *frame.SeqNum))
		}
	}

	channel, err := ChannelStrToType(frame.Channel)
	if err != nil {
		c.logger.Error("unknown channel", zap.String("channel", frame.Channel))
		return
	}
	messageCounters.WithLabelValues(channel.String()).Inc()

	switch channel {
	case ChannelHeartbeat:
		c.onHeartbeat(frame, raw)
	case ChannelL2:
		c.onL2(frame, raw)
	case ChannelL3:
		c.onL3(frame)
	case ChannelPrices:
		c.onPrices(frame, raw)
	case ChannelSymbols:
		c.onSymbols(frame, raw)
	case ChannelTicker:
		c.onTicker(frame, raw)
	case ChannelTrades:
		c.onMarketTrades(frame, raw)
	case ChannelAuth:
		c.onAuth(frame)
	case ChannelBalances:
		c.onBalances(frame, raw)
	case ChannelTrading:
		c.onTrading(frame, raw)
	}
}

func (c *Client) parseEvent(frame inboundFrame, ch Channel) (Event, bool) {
	event, err := EventStrToType(frame.Event)
	if err != nil {
		c.logger.Error("unknown event",
			zap.String("channel", ch.String()), zap.String("event", frame.Event))
		return 0, false
	}
	return event, true
}

func (c *Client) onUnsupportedEvent(ch Channel, event Event) {
	c.logger.Warn("event not supported by client",
		zap.String("channel", ch.String()), zap.String("event", event.String()))
}

func (c *Client) onSubscribed(frame inboundFrame, ch Channel) {
	c.status.set(ch, frame.Symbol, ChannelStatusSubscribed)
	c.logger.Info("successfully subscribed",
		zap.String("channel", ch.String()), zap.String("symbol", frame.Symbol))
}

func (c *Client) onRejectedSubscription(frame inboundFrame, ch Channel) {
	c.status.set(ch, frame.Symbol, ChannelStatusRejected)
	reason := frame.Text
	if reason == "" {
		reason = "not provided"
	}
	c.logger.Warn("subscription rejected",
		zap.String("channel", ch.String()), zap.String("symbol", frame.Symbol),
		zap.String("reason", reason))
}

func (c *Client) onHeartbeat(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelHeartbeat)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelHeartbeat)
	case EventRejected:
		c.onRejectedSubscription(frame, ChannelHeartbeat)
	case EventUpdated:
		var msg heartbeatMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse heartbeat", zap.Error(err))
			return
		}
		ts, err := time.Parse(time.RFC3339Nano, msg.Timestamp)
		if err != nil {
			c.logger.Error("fail parse heartbeat timestamp",
				zap.Error(err), zap.String("timestamp", msg.Timestamp))
			return
		}
		c.lastHeartbeat.Store(ts.UnixNano())
		c.logger.Debug("heartbeat updated", zap.Time("timestamp", ts))
	default:
		c.onUnsupportedEvent(ChannelHeartbeat, event)
	}
}

func (c *Client) onL2(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelL2)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelL2)
	case EventRejected:
		c.onRejectedSubscription(frame, ChannelL2)
	case EventSnapshot, EventUpdated:
		book, ok := c.books[frame.Symbol]
		if !ok {
			c.logger.Warn("book update for unknown symbol", zap.String("symbol", frame.Symbol))
			return
		}
		var msg l2Message
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse l2 message", zap.Error(err), zap.String("symbol", frame.Symbol))
			return
		}
		if event == EventSnapshot {
			book.applySnapshot(msg.Bids, msg.Asks)
		} else {
			book.applyDelta(msg.Bids, msg.Asks)
		}
	default:
		c.onUnsupportedEvent(ChannelL2, event)
	}
}

func (c *Client) onL3(frame inboundFrame) {
	// recognized but not implemented
	c.logger.Warn("messages from channel l3 not supported by client",
		zap.String("event", frame.Event))
}

func (c *Client) onPrices(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelPrices)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelPrices)
	case EventRejected:
		c.onRejectedSubscription(frame, ChannelPrices)
	case EventUpdated:
		var msg pricesMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse candle update", zap.Error(err), zap.String("symbol", frame.Symbol))
			return
		}
		if msg.Price == nil {
			c.logger.Warn("received a price update without price information",
				zap.String("symbol", frame.Symbol))
			return
		}
		hist := c.candles.get(frame.Symbol)
		if last, ok := hist.last(); ok && last.equal(*msg.Price) {
			c.logger.Debug("skip replayed candle", zap.String("symbol", frame.Symbol))
			return
		}
		hist.append(*msg.Price)
	default:
		c.onUnsupportedEvent(ChannelPrices, event)
	}
}

func (c *Client) onSymbols(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelSymbols)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelSymbols)
	case EventRejected:
		c.onRejectedSubscription(frame, ChannelSymbols)
	case EventSnapshot:
		var details SymbolDetails
		if err := jsoniter.Unmarshal(raw, &details); err != nil {
			c.logger.Error("fail parse symbol details", zap.Error(err), zap.String("symbol", frame.Symbol))
			return
		}
		c.details.set(frame.Symbol, details)
	case EventUpdated:
		// merge on top of the current details, absent fields keep their value
		details, _ := c.details.get(frame.Symbol)
		if err := jsoniter.Unmarshal(raw, &details); err != nil {
			c.logger.Error("fail parse symbol details update", zap.Error(err), zap.String("symbol", frame.Symbol))
			return
		}
		c.details.set(frame.Symbol, details)
	default:
		c.onUnsupportedEvent(ChannelSymbols, event)
	}
}

func (c *Client) onTicker(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelTicker)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelTicker)
	case EventRejected:
		c.onRejectedSubscription(frame, ChannelTicker)
	case EventSnapshot, EventUpdated:
		var msg tickerMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse ticker", zap.Error(err), zap.String("symbol", frame.Symbol))
			return
		}
		c.tickers.merge(frame.Symbol, msg.LastTradePrice, msg.Price24h, msg.Volume24h)
	default:
		c.onUnsupportedEvent(ChannelTicker, event)
	}
}

func (c *Client) onMarketTrades(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelTrades)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelTrades)
	case EventRejected:
		c.onRejectedSubscription(frame, ChannelTrades)
	case EventUpdated:
		var msg tradeMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse market trade", zap.Error(err), zap.String("symbol", frame.Symbol))
			return
		}
		trade, err := msg.marketTrade()
		if err != nil {
			c.logger.Error("invalid market trade", zap.Error(err), zap.String("symbol", frame.Symbol))
			return
		}
		hist := c.trades.get(frame.Symbol)
		if last, ok := hist.last(); ok && last.sameAs(trade) {
			c.logger.Debug("skip replayed trade", zap.String("symbol", frame.Symbol))
			return
		}
		hist.append(trade)
	default:
		c.onUnsupportedEvent(ChannelTrades, event)
	}
}

func (c *Client) onAuth(frame inboundFrame) {
	event, ok := c.parseEvent(frame, ChannelAuth)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelAuth)
	case EventRejected:
		if c.Authenticated() {
			c.logger.Warn("trying to authenticate while already authenticated")
			return
		}
		c.onRejectedSubscription(frame, ChannelAuth)
	default:
		c.onUnsupportedEvent(ChannelAuth, event)
	}
}

func (c *Client) onBalances(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelBalances)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelBalances)
	case EventRejected:
		c.onRejectedSubscription(frame, ChannelBalances)
	case EventSnapshot:
		var msg balancesMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse balances", zap.Error(err))
			return
		}
		c.balances.replace(msg.Balances)
	default:
		c.onUnsupportedEvent(ChannelBalances, event)
	}
}

func (c *Client) onTrading(frame inboundFrame, raw []byte) {
	event, ok := c.parseEvent(frame, ChannelTrading)
	if !ok {
		return
	}
	switch event {
	case EventSubscribed:
		c.onSubscribed(frame, ChannelTrading)
	case EventUpdated:
		var msg orderMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse order update", zap.Error(err))
			return
		}
		c.applyOrderUpdate(msg.orderResponse())
	case EventSnapshot:
		// a snapshot is a batch of order updates, applied in message order
		var msg tradingSnapshotMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse orders snapshot", zap.Error(err))
			return
		}
		for i := range msg.Orders {
			c.applyOrderUpdate(msg.Orders[i].orderResponse())
		}
	case EventRejected:
		if c.status.get(ChannelTrading, "") != ChannelStatusSubscribed {
			c.onRejectedSubscription(frame, ChannelTrading)
			return
		}
		var msg orderRejectMessage
		if err := jsoniter.Unmarshal(raw, &msg); err != nil {
			c.logger.Error("fail parse order rejection", zap.Error(err))
			return
		}
		c.orders.remove(frame.Symbol, msg.OrderID)
		c.logger.Info("order rejected, removing from open orders",
			zap.Int64("orderID", msg.OrderID), zap.String("reason", msg.Text))
	default:
		c.onUnsupportedEvent(ChannelTrading, event)
	}
}

func (c *Client) applyOrderUpdate(resp OrderResponse) {
	if c.orders.handleUpdate(resp) {
		c.logger.Info("order in terminal state", zap.String("order", resp.String()))
	}
}

// Send transmits an order unless its symbol is outside the locally-subscribed
// set; the bulk-cancel sentinel bypasses the check since it targets all
// instruments.
func (c *Client) Send(order *Order) error {
	if order.OrderID != BulkCancelOrderID && !c.isConfiguredSymbol(order.Symbol) {
		c.logger.Error("sending orders for a symbol without subscribing to the market is not safe",
			zap.String("symbol", order.Symbol), zap.String("order", order.String()))
		return ErrNotSubscribed
	}
	return c.SendForce(order)
}

// SendForce transmits unconditionally, bypassing the subscription check. An
// escape hatch for intentional cross-instrument operations.
func (c *Client) SendForce(order *Order) error {
	return c.sendOrder(order)
}

func (c *Client) sendOrder(order *Order) error {
	if c.Exited() {
		return ErrNotConnected
	}
	return c.transmit(order)
}

// transmit bypasses the exited check. Teardown uses it for the final bulk
// cancel, which goes out after the session is already flagged as exiting.
func (c *Client) transmit(order *Order) error {
	data, err := order.encode()
	if err != nil {
		return errors.WithMessage(err, "fail encode order")
	}
	requestCounters.WithLabelValues(order.Action.String()).Inc()
	c.logger.Info("send order", zap.ByteString("msg", data))
	conn := c.getConn()
	if conn == nil {
		return ErrNotConnected
	}
	return conn.Send(data)
}

func (c *Client) send(data []byte) error {
	if c.Exited() {
		return ErrNotConnected
	}
	conn := c.getConn()
	if conn == nil {
		return ErrNotConnected
	}
	return conn.Send(data)
}

func (c *Client) isConfiguredSymbol(symbol string) bool {
	for _, s := range c.symbols {
		if s == symbol {
			return true
		}
	}
	return false
}

// CancelOrder cancels one order by its exchange order id.
func (c *Client) CancelOrder(orderID int64) error {
	opts := []OrderOption{WithOrderID(orderID)}
	if tracked, ok := c.orders.find(orderID); ok {
		opts = append(opts, WithSymbol(tracked.Symbol))
	}
	order, err := NewOrder(OrderTypeCancel, opts...)
	if err != nil {
		return err
	}
	return c.Send(order)
}

// CancelAllOrders issues the venue-wide bulk cancel.
func (c *Client) CancelAllOrders() error {
	order, err := NewOrder(OrderTypeCancel, WithOrderID(BulkCancelOrderID))
	if err != nil {
		return err
	}
	return c.Send(order)
}

// Symbols returns the configured instrument set.
func (c *Client) Symbols() []string {
	return c.symbols
}

// SubscriptionStatus returns the current status of one (channel, symbol)
// pair; symbol is ignored for channels that are not symbol-specific.
func (c *Client) SubscriptionStatus(ch Channel, symbol string) ChannelStatus {
	return c.status.get(ch, symbol)
}

// Book returns the live order book of the symbol, nil when not configured.
func (c *Client) Book(symbol string) *OrderBook {
	return c.books[symbol]
}

// BestBid returns the highest bid of the symbol's book.
func (c *Client) BestBid(symbol string) (PriceLevel, bool) {
	book, ok := c.books[symbol]
	if !ok {
		return PriceLevel{}, false
	}
	return book.BestBid()
}

// BestAsk returns the lowest ask of the symbol's book.
func (c *Client) BestAsk(symbol string) (PriceLevel, bool) {
	book, ok := c.books[symbol]
	if !ok {
		return PriceLevel{}, false
	}
	return book.BestAsk()
}

// Balances returns a copy of the latest balance snapshot.
func (c *Client) Balances() map[string]Balance {
	return c.balances.all()
}

// AvailableBalance returns the available funds of one currency, zero when the
// currency is unknown.
func (c *Client) AvailableBalance(currency string) decimal.Decimal {
	return c.balances.available(currency)
}

// OpenOrders returns a copy of the live open orders for the given symbols, or
// all symbols when none are given.
func (c *Client) OpenOrders(symbols ...string) map[int64]OrderResponse {
	return c.orders.open(symbols...)
}

// OrderDetails finds one open order by exchange id across all symbols.
func (c *Client) OrderDetails(orderID int64) (OrderResponse, bool) {
	return c.orders.find(orderID)
}

// Ticker returns the latest market summary of the symbol.
func (c *Client) Ticker(symbol string) (Ticker, bool) {
	return c.tickers.get(symbol)
}

// LastTradedPrice returns the last matched price of the symbol.
func (c *Client) LastTradedPrice(symbol string) (decimal.Decimal, bool) {
	ticker, ok := c.tickers.get(symbol)
	if !ok {
		return decimal.Decimal{}, false
	}
	return ticker.LastTradePrice, true
}

// Candles returns the bounded candle history of the symbol, oldest first.
func (c *Client) Candles(symbol string) []Candle {
	return c.candles.list(symbol)
}

// MarketTrades returns the bounded market trade history of the symbol,
// oldest first.
func (c *Client) MarketTrades(symbol string) []MarketTrade {
	return c.trades.list(symbol)
}

// SymbolDetails returns the instrument metadata, ok is false until the first
// symbols-channel snapshot arrived.
func (c *Client) SymbolDetails(symbol string) (SymbolDetails, bool) {
	return c.details.get(symbol)
}
