package a2a

// ProtocolVersion is the fixed A2A protocol version string advertised by
// every AgentCard produced by this package.
const ProtocolVersion = "0.3.0"

// AgentCard is the discovery document an agent publishes describing itself.
type AgentCard struct {
	ProtocolVersion string            `json:"protocolVersion"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	URL             string            `json:"url"`
	Provider        *AgentProvider    `json:"provider,omitempty"`
	Version         string            `json:"version,omitempty"`
	Capabilities    AgentCapabilities `json:"capabilities"`
	Skills          []AgentSkill      `json:"skills"`

	DefaultInputModes    []string         `json:"defaultInputModes,omitempty"`
	DefaultOutputModes   []string         `json:"defaultOutputModes,omitempty"`
	AdditionalInterfaces []AgentInterface `json:"additionalInterfaces,omitempty"`
	SecuritySchemes      map[string]any   `json:"securitySchemes,omitempty"`
}

// AgentProvider identifies the organization publishing the agent.
type AgentProvider struct {
	Organization string `json:"organization"`
	URL          string `json:"url"`
}

// AgentCapabilities advertises optional protocol features.
type AgentCapabilities struct {
	Streaming              bool   `json:"streaming,omitempty"`
	PushNotifications      bool   `json:"pushNotifications,omitempty"`
	StateTransitionHistory bool   `json:"stateTransitionHistory,omitempty"`
	MXPTransport           bool   `json:"mxpTransport,omitempty"`
	MXPEndpoint            string `json:"mxpEndpoint,omitempty"`
}

// AgentSkill describes one capability the agent exposes.
type AgentSkill struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Description string   `json:"description,omitempty"`
	Tags        []string `json:"tags,omitempty"`
	Examples    []string `json:"examples,omitempty"`
	InputModes  []string `json:"inputModes,omitempty"`
	OutputModes []string `json:"outputModes,omitempty"`
}

// AgentInterface advertises an additional transport endpoint for the agent,
// alongside the primary URL.
type AgentInterface struct {
	Protocol string `json:"protocol"`
	URL      string `json:"url"`
}

// NewAgentCard creates a card with the fixed protocol version and no
// capabilities or skills set; callers fill those in before publishing.
func NewAgentCard(name, description, url string) *AgentCard {
	return &AgentCard{
		ProtocolVersion: ProtocolVersion,
		Name:            name,
		Description:     description,
		URL:             url,
	}
}

// WithMXPTransport advertises an MXP endpoint both in Capabilities and as a
// mirrored entry in AdditionalInterfaces, per the discovery document
// contract.
func (c *AgentCard) WithMXPTransport(endpoint string) *AgentCard {
	c.Capabilities.MXPTransport = true
	c.Capabilities.MXPEndpoint = endpoint
	c.AdditionalInterfaces = append(c.AdditionalInterfaces, AgentInterface{
		Protocol: "mxp",
		URL:      endpoint,
	})
	return c
}
