//go:generate go run go.uber.org/mock/mockgen -source=sender.go -destination=../mocks/mock_sender.go -package=mocks
// Package delivery pushes messages to connections through the transport
// capability and feeds transport-reported dead connections back into the
// directory.
package delivery

import (
	"chat-relay/directory"
	"chat-relay/errors"
	stderrors "errors"
	"log/slog"
)

// Transport is the outbound half of the connection transport capability.
// Send returns ErrConnectionClosed when the peer is gone; any other error is
// a transient transport fault.
type Transport interface {
	Send(connectionID string, payload []byte) error
}

type ISender interface {
	Send(connectionID, message string)
	Broadcast(connectionIDs []string, message string)
}

type Sender struct {
	transport Transport
	directory directory.IDirectory
	log       *slog.Logger
}

func NewSender(transport Transport, dir directory.IDirectory, log *slog.Logger) Sender {
	return Sender{transport: transport, directory: dir, log: log}
}

// Send pushes one message to one connection, fire-and-forget. A closed
// connection is the only place dead peers are discovered outside explicit
// disconnect events, so it triggers directory cleanup on the spot. Nothing
// is surfaced to any user either way.
func (s Sender) Send(connectionID, message string) {
	err := s.transport.Send(connectionID, []byte(message))
	if err == nil {
		return
	}
	if stderrors.Is(err, errors.ErrConnectionClosed) {
		s.log.Info("Connection reported closed by transport", "connection_id", connectionID)
		s.directory.DeleteConnection(connectionID)
		return
	}
	s.log.Error("Send failed", "connection_id", connectionID, "error", err)
}

// Broadcast fans the message out to every recipient independently. One
// recipient's failure (and its cleanup) never stops delivery to the rest;
// there is no ordering or atomicity across recipients.
func (s Sender) Broadcast(connectionIDs []string, message string) {
	s.log.Debug("Broadcast start", "connections", len(connectionIDs))
	for _, id := range connectionIDs {
		s.Send(id, message)
	}
	s.log.Debug("Broadcast end", "connections", len(connectionIDs))
}
