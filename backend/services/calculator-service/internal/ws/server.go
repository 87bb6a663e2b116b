package ws

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

// Server upgrades HTTP connections to WebSockets for live estimates.
type Server struct {
	ctx          context.Context
	manager      *Manager
	processor    MessageProcessor
	logger       *zap.Logger
	writeTimeout time.Duration
	upgrader     websocket.Upgrader
}

// NewServer builds ws server. Connections are closed when ctx is cancelled.
func NewServer(ctx context.Context, manager *Manager, processor MessageProcessor, writeTimeout time.Duration, logger *zap.Logger) *Server {
	if writeTimeout <= 0 {
		writeTimeout = 10 * time.Second
	}
	return &Server{
		ctx:          ctx,
		manager:      manager,
		processor:    processor,
		logger:       logger,
		writeTimeout: writeTimeout,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// HandleWS is HTTP handler for /ws/estimate endpoint.
func (s *Server) HandleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}

	id := uuid.New().String()
	connection := NewConnection(id, conn, s.processor, s.writeTimeout, s.logger, s.manager.Remove)
	s.manager.Add(connection)

	go connection.Start(s.ctx)
	s.logger.Debug("live client connected", zap.String("conn_id", id))
}
