// Package frame implements the MXP wire codec: the fixed 64-byte header,
// the typed Frame value, and the factory helpers that build frames with the
// correct correlation and trace semantics.
package frame

// Kind identifies the semantic category of a frame on the wire.
type Kind byte

// Frame kinds. Values are fixed by the wire format and must not be
// renumbered.
const (
	KindCall           Kind = 0x01
	KindResponse       Kind = 0x02
	KindError          Kind = 0x03
	KindNotify         Kind = 0x04
	KindStreamOpen     Kind = 0x10
	KindStreamChunk    Kind = 0x11
	KindStreamClose    Kind = 0x12
	KindAgentRegister  Kind = 0x20
	KindAgentDiscover  Kind = 0x21
	KindAgentHeartbeat Kind = 0x22
	KindPing           Kind = 0xF0
	KindPong           Kind = 0xF1
)

// kindNames maps kinds to human-readable identifiers for logging.
var kindNames = map[Kind]string{
	KindCall:           "CALL",
	KindResponse:       "RESPONSE",
	KindError:          "ERROR",
	KindNotify:         "NOTIFY",
	KindStreamOpen:     "STREAM_OPEN",
	KindStreamChunk:    "STREAM_CHUNK",
	KindStreamClose:    "STREAM_CLOSE",
	KindAgentRegister:  "AGENT_REGISTER",
	KindAgentDiscover:  "AGENT_DISCOVER",
	KindAgentHeartbeat: "AGENT_HEARTBEAT",
	KindPing:           "PING",
	KindPong:           "PONG",
}

// String returns the human-readable name of the kind, or "UNKNOWN" for
// values not in the kind table.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return "UNKNOWN"
}

// IsStreaming reports whether k is one of the three streaming kinds.
func (k Kind) IsStreaming() bool {
	switch k {
	case KindStreamOpen, KindStreamChunk, KindStreamClose:
		return true
	default:
		return false
	}
}

// RequiresResponse reports whether a frame of this kind expects a reply.
func (k Kind) RequiresResponse() bool {
	switch k {
	case KindCall, KindPing:
		return true
	default:
		return false
	}
}
