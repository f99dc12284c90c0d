package transport

import (
	"chat-relay/errors"
	stderrors "errors"
	"fmt"
	"net"
	"sync"
	"syscall"
)

// Registry tracks the live TCP connections by their issued ids and is the
// outbound half of the transport capability: Send resolves an id to its
// socket. An id that is unknown or whose socket is closed reports
// ErrConnectionClosed, which delivery turns into directory cleanup.
type Registry struct {
	conns sync.Map
}

func NewRegistry() *Registry {
	return &Registry{}
}

func (r *Registry) Add(connectionID string, conn net.Conn) {
	r.conns.Store(connectionID, conn)
}

func (r *Registry) Remove(connectionID string) {
	r.conns.Delete(connectionID)
}

// Send writes the payload as one line to the connection's socket.
func (r *Registry) Send(connectionID string, payload []byte) error {
	value, ok := r.conns.Load(connectionID)
	if !ok {
		return fmt.Errorf("%w: unknown connection %s", errors.ErrConnectionClosed, connectionID)
	}
	conn := value.(net.Conn)

	data := append(append(make([]byte, 0, len(payload)+1), payload...), '\n')
	total := 0
	for total < len(data) {
		n, err := conn.Write(data[total:])
		if err != nil {
			if isClosedConnError(err) {
				return fmt.Errorf("%w: %v", errors.ErrConnectionClosed, err)
			}
			return err
		}
		total += n
	}
	return nil
}

// CloseAll shuts every live socket, used on server stop.
func (r *Registry) CloseAll() {
	r.conns.Range(func(key, value any) bool {
		_ = value.(net.Conn).Close()
		r.conns.Delete(key)
		return true
	})
}

func isClosedConnError(err error) bool {
	if stderrors.Is(err, net.ErrClosed) || stderrors.Is(err, syscall.EPIPE) || stderrors.Is(err, syscall.ECONNRESET) {
		return true
	}
	var opErr *net.OpError
	return stderrors.As(err, &opErr)
}
