package a2a

import "github.com/google/uuid"

// Message is a single turn in a conversation between a user and an agent.
// ContextID and MessageID are 128-bit-strong opaque identifiers, distinct
// from the 64-bit ids carried by the MXP frame that transports a message.
type Message struct {
	Role      Role           `json:"role"`
	Parts     []Part         `json:"parts"`
	ContextID string         `json:"contextId"`
	MessageID string         `json:"messageId"`
	TaskID    string         `json:"taskId,omitempty"`
	Metadata  map[string]any `json:"metadata,omitempty"`
}

// NewMessage creates a message with the given role and parts, assigning
// fresh context and message identifiers.
func NewMessage(role Role, parts ...Part) Message {
	return Message{
		Role:      role,
		Parts:     parts,
		ContextID: uuid.NewString(),
		MessageID: uuid.NewString(),
	}
}

// UserText builds a single-part text message from the user.
func UserText(text string) Message {
	return NewMessage(RoleUser, Text(text))
}

// AgentText builds a single-part text message from the agent.
func AgentText(text string) Message {
	return NewMessage(RoleAgent, Text(text))
}

// WithContext returns a copy of m grouped under contextID.
func (m Message) WithContext(contextID string) Message {
	m.ContextID = contextID
	return m
}

// WithTask returns a copy of m linked to taskID.
func (m Message) WithTask(taskID string) Message {
	m.TaskID = taskID
	return m
}

// TextContent concatenates the text of every text-kind part, in order.
// Returns the empty string if the message has no text parts.
func (m Message) TextContent() string {
	var out string
	for _, p := range m.Parts {
		if p.Kind == PartKindText {
			out += p.Text
		}
	}
	return out
}
