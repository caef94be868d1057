package dispatch

import "errors"

var (
	// ErrUnknownPeer is returned by Send when no entry exists for peer_id.
	ErrUnknownPeer = errors.New("dispatch: unknown peer")
	// ErrNotConnected is returned by Send when the entry exists but is not Connected.
	ErrNotConnected = errors.New("dispatch: peer not connected")
	// ErrTimeout is returned by Connect when connection_timeout elapses before Connected.
	ErrTimeout = errors.New("dispatch: connect timed out")
	// ErrHandshakeFailed is returned by Connect when the peer reaches Failed.
	ErrHandshakeFailed = errors.New("dispatch: handshake failed")
)
