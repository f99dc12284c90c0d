package errors

import "fmt"

var (
	// ErrStore wraps every failure of the underlying record store.
	ErrStore = fmt.Errorf("record store unavailable")
	// ErrConnectionClosed is reported by a transport when the peer is gone.
	ErrConnectionClosed = fmt.Errorf("connection closed")
)
