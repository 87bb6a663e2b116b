package ws

import (
	"context"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	readLimit    = 64 * 1024
	pongWait     = 60 * time.Second
	pingInterval = 30 * time.Second
	sendBuffer   = 16
)

// Connection represents one live-estimate browser connection.
type Connection struct {
	id           string
	ws           *websocket.Conn
	send         chan []byte
	logger       *zap.Logger
	processor    MessageProcessor
	writeTimeout time.Duration
	onClose      func(id string)
}

// NewConnection builds connection wrapper.
func NewConnection(id string, ws *websocket.Conn, processor MessageProcessor, writeTimeout time.Duration, logger *zap.Logger, onClose func(string)) *Connection {
	return &Connection{
		id:           id,
		ws:           ws,
		send:         make(chan []byte, sendBuffer),
		logger:       logger,
		processor:    processor,
		writeTimeout: writeTimeout,
		onClose:      onClose,
	}
}

// ID returns identifier.
func (c *Connection) ID() string {
	return c.id
}

// Start runs the write pump in the background and reads until the peer goes away.
// The write pump owns the socket: it is the only writer and closes it on exit.
func (c *Connection) Start(ctx context.Context) {
	go c.writePump(ctx)
	c.readPump(ctx)
}

func (c *Connection) readPump(ctx context.Context) {
	defer c.cleanup()
	c.ws.SetReadLimit(readLimit)
	_ = c.ws.SetReadDeadline(time.Now().Add(pongWait))
	c.ws.SetPongHandler(func(string) error {
		return c.ws.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		select {
		case <-ctx.Done():
			return
		default:
		}

		messageType, message, err := c.ws.ReadMessage()
		if err != nil {
			c.logger.Debug("live connection read closed", zap.String("conn_id", c.id), zap.Error(err))
			return
		}
		if messageType != websocket.TextMessage {
			continue
		}

		response, err := c.processor.Process(ctx, message)
		if err != nil {
			c.logger.Warn("failed to process live message", zap.String("conn_id", c.id), zap.Error(err))
			continue
		}
		if response != nil {
			c.Send(response)
		}
	}
}

func (c *Connection) writePump(ctx context.Context) {
	ticker := time.NewTicker(pingInterval)
	defer func() {
		ticker.Stop()
		_ = c.ws.Close()
	}()

	for {
		select {
		case <-ctx.Done():
			return
		case msg, ok := <-c.send:
			if !ok {
				_ = c.write(websocket.CloseMessage, []byte{})
				return
			}
			if err := c.write(websocket.TextMessage, msg); err != nil {
				return
			}
		case <-ticker.C:
			if err := c.write(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Send enqueues a message for writing; a full buffer drops it.
// Only the read pump sends, and it closes the channel itself, so Send never races the close.
func (c *Connection) Send(msg []byte) {
	select {
	case c.send <- msg:
	default:
		c.logger.Warn("dropping outgoing message, buffer full", zap.String("conn_id", c.id))
	}
}

func (c *Connection) write(messageType int, data []byte) error {
	_ = c.ws.SetWriteDeadline(time.Now().Add(c.writeTimeout))
	return c.ws.WriteMessage(messageType, data)
}

func (c *Connection) cleanup() {
	close(c.send)
	if c.onClose != nil {
		c.onClose(c.id)
	}
}
