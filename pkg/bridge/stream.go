package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/mxproto/mxp-go/pkg/a2a"
	"github.com/mxproto/mxp-go/pkg/frame"
	"github.com/mxproto/mxp-go/pkg/mxpid"
)

// ToMXPStreamOpen opens a message/stream. The returned frame's MessageID is
// the stream identifier for every subsequent chunk and the close.
func ToMXPStreamOpen(msg a2a.Message) (*frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: MethodMessageStream, Message: &msg})
	if err != nil {
		return nil, fmt.Errorf("bridge: marshal message/stream envelope: %w", err)
	}
	return frame.StreamOpen(payload), nil
}

// ToMXPStreamChunk emits one chunk of text on the stream identified by
// streamID (the opener's MessageID). Chunk payloads are raw UTF-8 bytes,
// not a JSON envelope.
func ToMXPStreamChunk(text string, streamID uint64) *frame.Frame {
	return &frame.Frame{
		Version:       frame.Version,
		Kind:          frame.KindStreamChunk,
		MessageID:     mxpid.New(),
		TraceID:       mxpid.New(),
		CorrelationID: streamID,
		Payload:       []byte(text),
	}
}

// ToMXPStreamClose closes the stream identified by streamID.
func ToMXPStreamClose(streamID uint64) *frame.Frame {
	return &frame.Frame{
		Version:       frame.Version,
		Kind:          frame.KindStreamClose,
		MessageID:     mxpid.New(),
		TraceID:       mxpid.New(),
		CorrelationID: streamID,
	}
}
