// Package peer implements the per-peer connection lifecycle: data-channel
// setup via the host's peer-connection facility, heartbeat, and the
// send/receive path for wire frames.
package peer

import "context"

// IceCandidate is an opaque host-supplied candidate blob. The core never
// inspects its contents, only buffers and replays it in order.
type IceCandidate []byte

// SessionDescription is an opaque offer/answer blob (e.g. SDP) produced and
// consumed by the host's peer-connection library.
type SessionDescription []byte

// ConnectionState mirrors the subset of the underlying peer-connection
// library's state that the state machine needs to observe.
type ConnectionState int

const (
	ConnStateNew ConnectionState = iota
	ConnStateConnecting
	ConnStateConnected
	ConnStateDisconnected
	ConnStateFailed
	ConnStateClosed
)

// Connection is the host environment's peer-connection object. Implementations
// wrap a WebRTC (or equivalent) peer connection.
type Connection interface {
	CreateOffer(ctx context.Context) (SessionDescription, error)
	CreateAnswer(ctx context.Context) (SessionDescription, error)
	SetLocalDescription(ctx context.Context, sdp SessionDescription) error
	SetRemoteDescription(ctx context.Context, sdp SessionDescription) error
	AddICECandidate(ctx context.Context, c IceCandidate) error

	// CreateDataChannel opens a channel named label. ordered and maxRetransmits
	// follow ChannelMode: Reliable implies ordered with unlimited retransmits;
	// any other mode implies unordered with zero retransmits.
	CreateDataChannel(label string, ordered bool, maxRetransmits int) (DataChannel, error)

	// OnDataChannel fires when the remote party creates the data channel
	// (Responder role never calls CreateDataChannel itself).
	OnDataChannel(func(DataChannel))

	OnICECandidate(func(IceCandidate))
	OnConnectionStateChange(func(ConnectionState))

	Close() error
}

// DataChannel is the host environment's bidirectional binary data channel.
type DataChannel interface {
	Send(data []byte) error
	Close() error
	OnOpen(func())
	OnClose(func())
	OnMessage(func(data []byte))
}

// RNG supplies 64-bit identifiers. In production this is backed by the
// system CSPRNG; tests substitute a deterministic sequence.
type RNG interface {
	Uint64() uint64
}
