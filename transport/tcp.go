// Package transport is the bundled host adapter: a line-oriented TCP server
// that issues connection ids, feeds the three core event handlers, and
// resolves ids back to sockets for delivery. The core never sees a socket.
package transport

import (
	"bufio"
	"chat-relay/observability"
	"chat-relay/services"
	"context"
	stderrors "errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"

	"github.com/google/uuid"
)

type Server struct {
	handler  services.IHandler
	registry *Registry
	metrics  *observability.ChatMetrics
	log      *slog.Logger

	listener net.Listener
	wg       sync.WaitGroup
}

func NewServer(handler services.IHandler, registry *Registry, metrics *observability.ChatMetrics, log *slog.Logger) *Server {
	return &Server{handler: handler, registry: registry, metrics: metrics, log: log}
}

// Listen binds the address without accepting yet, so callers can read the
// bound address (tests bind port 0).
func (s *Server) Listen(address string) error {
	listener, err := net.Listen("tcp", address)
	if err != nil {
		return fmt.Errorf("listen on %s: %w", address, err)
	}
	s.listener = listener
	s.log.Info("Listening", "address", listener.Addr().String())
	return nil
}

func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Serve accepts until the context is canceled, one goroutine per connection.
// It returns after every connection handler has finished.
func (s *Server) Serve(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)
	go func() {
		select {
		case <-ctx.Done():
			_ = s.listener.Close()
			s.registry.CloseAll()
		case <-done:
		}
	}()

	for {
		conn, err := s.listener.Accept()
		if err != nil {
			s.wg.Wait()
			if ctx.Err() != nil || stderrors.Is(err, net.ErrClosed) {
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			s.handleConnection(conn)
		}()
	}
}

// handleConnection owns one socket for its whole life: issue an id, register
// it, replay the connect/message/disconnect events into the core, clean up.
// Events for one connection are sequential; connections run concurrently
// with no shared state outside the record store.
func (s *Server) handleConnection(conn net.Conn) {
	connectionID := uuid.NewString()
	log := s.log.With("connection_id", connectionID, "remote", conn.RemoteAddr().String())

	s.registry.Add(connectionID, conn)
	s.metrics.ConnectionOpened()
	defer func() {
		s.registry.Remove(connectionID)
		s.handler.HandleDisconnect(connectionID)
		s.metrics.ConnectionClosed()
		if err := conn.Close(); err != nil && !stderrors.Is(err, net.ErrClosed) {
			log.Warn("Closing connection", "error", err)
		}
		log.Info("Connection closed")
	}()

	if err := s.handler.HandleConnect(connectionID); err != nil {
		log.Error("Connect event failed", "error", err)
		return
	}
	log.Info("Connection accepted")

	scanner := bufio.NewScanner(conn)
	scanner.Buffer(make([]byte, 0, 4096), 64*1024)
	for scanner.Scan() {
		line := strings.TrimRight(scanner.Text(), "\r")
		s.metrics.MessageHandled()
		if err := s.handler.HandleMessage(connectionID, line); err != nil {
			// The event fails whole; no partial retry here. The peer
			// keeps its connection and may simply try again.
			s.metrics.HandlerFailure()
			log.Error("Message event failed", "error", err)
		}
	}
	if err := scanner.Err(); err != nil && !stderrors.Is(err, io.EOF) && !stderrors.Is(err, net.ErrClosed) {
		log.Warn("Read loop ended", "error", err)
	}
}
