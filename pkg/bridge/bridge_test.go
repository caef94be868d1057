package bridge

import (
	"testing"

	"github.com/mxproto/mxp-go/pkg/a2a"
	"github.com/mxproto/mxp-go/pkg/frame"
	"github.com/stretchr/testify/require"
)

func TestMessageSendRoundTripThroughWire(t *testing.T) {
	msg := a2a.UserText("Search for Rust tutorials")

	f, err := ToMXP(msg)
	require.NoError(t, err)

	wire := frame.Encode(f)
	decoded, err := frame.Decode(wire)
	require.NoError(t, err)

	result, err := FromMXP(decoded)
	require.NoError(t, err)

	require.Equal(t, MethodMessageSend, result.Method)
	require.NotNil(t, result.Message)
	require.Equal(t, a2a.RoleUser, result.Message.Role)
	require.Equal(t, "Search for Rust tutorials", result.Message.TextContent())
}

func TestMethodInferredWhenEnvelopeOmitsIt(t *testing.T) {
	f := frame.Call([]byte(`{"message":{"role":"user","parts":[],"contextId":"c","messageId":"m"}}`))
	result, err := FromMXP(f)
	require.NoError(t, err)
	require.Equal(t, MethodMessageSend, result.Method)

	open := frame.StreamOpen(nil)
	result, err = FromMXP(open)
	require.NoError(t, err)
	require.Equal(t, MethodMessageStream, result.Method)
}

func TestStreamLifecycleSharesCorrelationID(t *testing.T) {
	open, err := ToMXPStreamOpen(a2a.AgentText("starting"))
	require.NoError(t, err)

	chunk := ToMXPStreamChunk("partial output", open.MessageID)
	closeFrame := ToMXPStreamClose(open.MessageID)

	require.Equal(t, open.MessageID, chunk.CorrelationID)
	require.Equal(t, open.MessageID, closeFrame.CorrelationID)
	require.Equal(t, "partial output", string(chunk.Payload))
}

func TestTaskCallRoundTrip(t *testing.T) {
	task := a2a.NewTask("task-1", "ctx-1")

	f, err := ToMXPTaskCall(MethodTasksGet, task)
	require.NoError(t, err)
	require.Equal(t, frame.KindCall, f.Kind)

	result, err := FromMXP(f)
	require.NoError(t, err)
	require.Equal(t, MethodTasksGet, result.Method)
	require.NotNil(t, result.Task)
	require.Equal(t, "task-1", result.Task.ID)
}

func TestErrorFrameCarriesStructuredError(t *testing.T) {
	cause := frame.Call([]byte(`{"method":"tasks/get"}`))

	errFrame, err := ToMXPErrorFrame(cause, -32001, "task not found")
	require.NoError(t, err)
	require.Equal(t, frame.KindError, errFrame.Kind)
	require.Equal(t, cause.MessageID, errFrame.CorrelationID)

	result, err := FromMXP(errFrame)
	require.NoError(t, err)
	require.NotNil(t, result.Error)
	require.Equal(t, -32001, result.Error.Code)
}

func TestFromMXPRejectsMalformedEnvelope(t *testing.T) {
	f := frame.Call([]byte("not json"))
	_, err := FromMXP(f)
	require.Error(t, err)
}
