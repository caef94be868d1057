// Package transport defines the FrameTransport interface used to exchange
// already-encoded MXP frames, along with a concrete pure-Go UDP overlay
// implementation.
package transport

import "context"

// FrameTransport exchanges complete, already-encoded MXP frames (64-byte
// header + payload, per pkg/frame) as opaque byte slices. Implementations
// handle datagram framing and connection management internally; callers
// are responsible for frame.Encode/frame.Decode.
type FrameTransport interface {
	// Send transmits one encoded frame. The context may carry deadlines or
	// cancellation.
	Send(ctx context.Context, encodedFrame []byte) error

	// Recv blocks until one complete encoded frame arrives.
	Recv(ctx context.Context) (encodedFrame []byte, err error)

	// Close shuts down the transport. Safe to call concurrently with
	// Send/Recv; blocked operations return an error.
	Close() error
}
