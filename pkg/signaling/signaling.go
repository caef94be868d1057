// Package signaling implements the out-of-band offer/answer/candidate
// exchange used to establish a peer's data channel. Signaling never flows
// through the frame codec; it is a side channel with its own small
// message shape and pluggable backends.
package signaling

import "context"

// Kind identifies the type of a signaling message.
type Kind string

// Signaling message kinds.
const (
	KindOffer        Kind = "offer"
	KindAnswer       Kind = "answer"
	KindIceCandidate Kind = "ice-candidate"
	KindHangup       Kind = "hangup"
)

// Message is one signaling exchange. Payload is an opaque blob supplied by
// the underlying peer-connection library (an SDP blob, an ICE candidate,
// etc); this package never inspects it.
type Message struct {
	Kind    Kind   `json:"kind"`
	From    string `json:"from"`
	To      string `json:"to"`
	Payload []byte `json:"payload"`
}

// Handler is invoked for every signaling message a Provider delivers.
type Handler func(Message)

// Provider is anything that can asynchronously exchange signaling messages
// with a remote peer. Send may be called concurrently from multiple peers
// but is expected to be safe to invoke serially from a single event loop.
type Provider interface {
	Send(ctx context.Context, msg Message) error
	OnMessage(h Handler)
	LocalID() string
}
