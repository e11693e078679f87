package bcex

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gorilla/websocket"
	"github.com/pkg/errors"
	"go.uber.org/zap"
)

const (
	connectTimeout = 5 * time.Second
	// pingInterval drives both the transport-level ping and the heartbeat
	// watchdog tick. The venue gives no ping/pong guarantee, so the watchdog
	// on the heartbeat channel is the primary dead-connection detector.
	pingInterval = 5 * time.Second
	readTimeout  = 60 * time.Second
)

// connecter is the duplex transport under one session. The real one is a
// websocket; tests plug a mock.
type connecter interface {
	Send(data []byte) error
	Close() error
}

type wsConnection struct {
	logger    *zap.Logger
	conn      *websocket.Conn
	writeMx   sync.Mutex
	done      chan struct{}
	closeOnce sync.Once
}

func dialWebsocket(ctx context.Context, env Environment, logger *zap.Logger) (*wsConnection, error) {
	dialer := websocket.Dialer{HandshakeTimeout: connectTimeout}
	header := make(http.Header)
	header.Set("Origin", env.OriginURL())

	ctx, cancel := context.WithTimeout(ctx, connectTimeout)
	defer cancel()

	conn, _, err := dialer.DialContext(ctx, env.WebsocketURL(), header)
	if err != nil {
		var netErr net.Error
		if errors.Is(err, context.DeadlineExceeded) || (errors.As(err, &netErr) && netErr.Timeout()) {
			return nil, ErrConnectTimeout
		}
		return nil, errors.WithMessage(err, "fail dial websocket")
	}
	logger.Info("websocket opened", zap.String("url", env.WebsocketURL()))
	return &wsConnection{
		logger: logger,
		conn:   conn,
		done:   make(chan struct{}),
	}, nil
}

// run starts the receive loop and the liveness ticker. onMessage is invoked
// sequentially, one frame at a time, in wire arrival order.
func (c *wsConnection) run(onMessage func([]byte), onTick func(), onClose func()) {
	go c.readLoop(onMessage, onClose)
	go c.tickLoop(onTick)
}

func (c *wsConnection) readLoop(onMessage func([]byte), onClose func()) {
	for {
		if err := c.conn.SetReadDeadline(time.Now().Add(readTimeout)); err != nil {
			c.closed(err, onClose)
			return
		}
		_, msg, err := c.conn.ReadMessage()
		if err != nil {
			c.closed(err, onClose)
			return
		}
		onMessage(msg)
	}
}

func (c *wsConnection) closed(err error, onClose func()) {
	select {
	case <-c.done:
		// expected after Close
	default:
		c.logger.Warn("websocket read error", zap.Error(err))
	}
	c.Close()
	onClose()
}

func (c *wsConnection) tickLoop(onTick func()) {
	ticker := time.NewTicker(pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.done:
			return
		case <-ticker.C:
			c.writeMx.Lock()
			err := c.conn.WriteControl(websocket.PingMessage, nil, time.Now().Add(pingInterval))
			c.writeMx.Unlock()
			if err != nil {
				c.logger.Warn("websocket ping error", zap.Error(err))
			}
			onTick()
		}
	}
}

func (c *wsConnection) Send(data []byte) error {
	c.writeMx.Lock()
	defer c.writeMx.Unlock()
	if err := c.conn.WriteMessage(websocket.TextMessage, data); err != nil {
		return errors.WithMessage(err, "fail send websocket frame")
	}
	return nil
}

// Close is safe to call from the error path, the watchdog and an external
// shutdown at the same time.
func (c *wsConnection) Close() error {
	c.closeOnce.Do(func() {
		close(c.done)
		if err := c.conn.Close(); err != nil {
			c.logger.Warn("websocket close error", zap.Error(err))
		}
	})
	return nil
}
