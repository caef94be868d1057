package peer

import "errors"

var (
	// ErrChannelClosed is returned by Send when the data channel is not open.
	ErrChannelClosed = errors.New("peer: channel closed")
	// ErrHandshakeFailed names a connection attempt that reached StateFailed.
	// No function in this package returns it; Peer reports failure through
	// StateFailed and OnStateChange.
	ErrHandshakeFailed = errors.New("peer: handshake failed")
	// ErrTimeout names a connection attempt that exceeded its deadline. No
	// function in this package returns it; Peer enforces no connect deadline.
	ErrTimeout = errors.New("peer: connection timed out")
)
