// Package bridge losslessly maps the A2A message/task model onto MXP
// frames. A2A semantics are carried in the frame payload as a small JSON
// envelope; the mapping is symmetric so a frame produced by ToMXP can be
// recovered exactly by FromMXP on the other side.
package bridge

import (
	"encoding/json"
	"fmt"

	"github.com/mxproto/mxp-go/pkg/a2a"
	"github.com/mxproto/mxp-go/pkg/frame"
)

// Method identifies the A2A operation carried by a frame.
type Method string

// A2A methods supported by the bridge.
const (
	MethodMessageSend   Method = "message/send"
	MethodMessageStream Method = "message/stream"
	MethodTasksSend     Method = "tasks/send"
	MethodTasksGet      Method = "tasks/get"
	MethodTasksCancel   Method = "tasks/cancel"
)

// envelope is the wire shape carried in a frame payload.
type envelope struct {
	Method  Method       `json:"method,omitempty"`
	Message *a2a.Message `json:"message,omitempty"`
	Task    *a2a.Task    `json:"task,omitempty"`
	Error   *ErrorBody   `json:"error,omitempty"`
}

// ErrorBody is the structured error carried by an Error-kind frame.
type ErrorBody struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Result is what FromMXP recovers from a frame.
type Result struct {
	Method  Method
	Message *a2a.Message
	Task    *a2a.Task
	Error   *ErrorBody
	Raw     []byte
}

// ToMXP encodes msg as a message/send Call frame.
func ToMXP(msg a2a.Message) (*frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: MethodMessageSend, Message: &msg})
	if err != nil {
		return nil, fmt.Errorf("bridge: marshal message/send envelope: %w", err)
	}
	return frame.Call(payload), nil
}

// ToMXPTaskCall encodes a tasks/* request as a Call frame.
func ToMXPTaskCall(method Method, task *a2a.Task) (*frame.Frame, error) {
	payload, err := json.Marshal(envelope{Method: method, Task: task})
	if err != nil {
		return nil, fmt.Errorf("bridge: marshal %s envelope: %w", method, err)
	}
	return frame.Call(payload), nil
}

// ToMXPResponse encodes a reply to cause carrying either a message or a
// task result.
func ToMXPResponse(cause *frame.Frame, msg *a2a.Message, task *a2a.Task) (*frame.Frame, error) {
	env := envelope{Message: msg, Task: task}
	payload, err := json.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("bridge: marshal response envelope: %w", err)
	}
	return frame.Response(payload, cause), nil
}

// ToMXPErrorFrame encodes a structured bridge/task error as an Error frame
// replying to cause.
func ToMXPErrorFrame(cause *frame.Frame, code int, message string) (*frame.Frame, error) {
	payload, err := json.Marshal(envelope{Error: &ErrorBody{Code: code, Message: message}})
	if err != nil {
		return nil, fmt.Errorf("bridge: marshal error envelope: %w", err)
	}
	return frame.ErrorFrame(payload, cause), nil
}

// FromMXP recovers A2A semantics from a frame. If the envelope carries no
// explicit method, one is inferred from the frame's kind.
func FromMXP(f *frame.Frame) (*Result, error) {
	var env envelope
	if len(f.Payload) > 0 {
		if err := json.Unmarshal(f.Payload, &env); err != nil {
			return nil, fmt.Errorf("bridge: malformed envelope: %w", err)
		}
	}

	method := env.Method
	if method == "" {
		method = inferMethod(f.Kind)
	}

	return &Result{
		Method:  method,
		Message: env.Message,
		Task:    env.Task,
		Error:   env.Error,
		Raw:     f.Payload,
	}, nil
}

func inferMethod(k frame.Kind) Method {
	switch {
	case k == frame.KindCall || k == frame.KindResponse:
		return MethodMessageSend
	case k.IsStreaming():
		return MethodMessageStream
	default:
		return ""
	}
}
