package a2a

// Role identifies the originator of a Message.
type Role string

const (
	// RoleUser marks a message sent by the human or calling application.
	RoleUser Role = "user"
	// RoleAgent marks a message sent by the agent.
	RoleAgent Role = "agent"
)
