package frame

import "github.com/mxproto/mxp-go/pkg/mxpid"

// Frame is an immutable-at-send MXP message. Once built it is encoded,
// transmitted, and discarded; nothing about a Frame is mutated after
// construction.
type Frame struct {
	Version       byte
	Kind          Kind
	Flags         Flags
	Priority      byte
	MessageID     uint64
	TraceID       uint64
	CorrelationID uint64
	Payload       []byte
}

// newRoot builds a root frame (not derived from any cause): a fresh message id
// and a fresh trace id.
func newRoot(kind Kind, payload []byte) *Frame {
	return &Frame{
		Version:   Version,
		Kind:      kind,
		MessageID: mxpid.New(),
		TraceID:   mxpid.New(),
		Payload:   payload,
	}
}

// newDerived builds a frame causally derived from cause: a fresh message id
// of its own, but the cause's trace id and (by default) its message id as
// the correlation id.
func newDerived(kind Kind, payload []byte, cause *Frame) *Frame {
	return &Frame{
		Version:       Version,
		Kind:          kind,
		MessageID:     mxpid.New(),
		TraceID:       cause.TraceID,
		CorrelationID: cause.MessageID,
		Payload:       payload,
	}
}

// newRootWithID builds a root frame using caller-supplied ids instead of
// drawing them from mxpid.New(). Used by hosts that inject their own RNG
// (spec §6.6) for frames they originate directly, such as a peer's
// heartbeat.
func newRootWithID(kind Kind, payload []byte, messageID, traceID uint64) *Frame {
	return &Frame{
		Version:   Version,
		Kind:      kind,
		MessageID: messageID,
		TraceID:   traceID,
		Payload:   payload,
	}
}

// newDerivedWithID builds a frame causally derived from cause using a
// caller-supplied message id instead of one drawn from mxpid.New().
func newDerivedWithID(kind Kind, payload []byte, messageID uint64, cause *Frame) *Frame {
	return &Frame{
		Version:       Version,
		Kind:          kind,
		MessageID:     messageID,
		TraceID:       cause.TraceID,
		CorrelationID: cause.MessageID,
		Payload:       payload,
	}
}

// Call builds a request frame. It carries no correlation id of its own;
// replies correlate back to its MessageID.
func Call(payload []byte) *Frame {
	return newRoot(KindCall, payload)
}

// Response builds a reply to cause, correlated by cause's MessageID.
func Response(payload []byte, cause *Frame) *Frame {
	return newDerived(KindResponse, payload, cause)
}

// ErrorFrame builds an error reply to cause, correlated by cause's MessageID.
func ErrorFrame(payload []byte, cause *Frame) *Frame {
	return newDerived(KindError, payload, cause)
}

// Notify builds a one-way notification with no expected reply.
func Notify(payload []byte) *Frame {
	return newRoot(KindNotify, payload)
}

// StreamOpen opens a new stream. The returned frame's MessageID is the
// stream identifier for the lifetime of the stream; there is no separate
// stream id.
func StreamOpen(payload []byte) *Frame {
	return newRoot(KindStreamOpen, payload)
}

// StreamChunk builds one chunk of a stream opened by open.
func StreamChunk(payload []byte, open *Frame) *Frame {
	return newDerived(KindStreamChunk, payload, open)
}

// StreamClose closes the stream opened by open. It carries no payload.
func StreamClose(open *Frame) *Frame {
	return newDerived(KindStreamClose, nil, open)
}

// Ping builds a liveness probe.
func Ping() *Frame {
	return newRoot(KindPing, nil)
}

// PingWithID builds a liveness probe using caller-supplied message and
// trace ids instead of drawing them from mxpid.New(). Hosts that inject
// their own RNG (spec §6.6) use this so heartbeat frames originate from
// that id source rather than the package-level default.
func PingWithID(messageID, traceID uint64) *Frame {
	return newRootWithID(KindPing, nil, messageID, traceID)
}

// Pong replies to ping, correlated by ping's MessageID and inheriting its
// trace id.
func Pong(ping *Frame) *Frame {
	return newDerived(KindPong, nil, ping)
}

// PongWithID replies to ping using a caller-supplied message id, inheriting
// ping's trace id and correlating by ping's message id.
func PongWithID(messageID uint64, ping *Frame) *Frame {
	return newDerivedWithID(KindPong, nil, messageID, ping)
}

// IsStreaming reports whether the frame is part of a stream open/chunk/close
// triple.
func (f *Frame) IsStreaming() bool {
	return f.Kind.IsStreaming()
}

// RequiresResponse reports whether the frame expects a reply.
func (f *Frame) RequiresResponse() bool {
	return f.Kind.RequiresResponse()
}
