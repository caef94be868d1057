package a2a

import (
	"encoding/json"
	"testing"
)

func TestAgentCardRoundTrip(t *testing.T) {
	card := NewAgentCard("search-agent", "finds things", "https://agent.example/").
		WithMXPTransport("mxp://agent.example:7777")
	card.Skills = []AgentSkill{{ID: "search", Name: "Search", InputModes: []string{"text"}, OutputModes: []string{"text"}}}

	b, err := json.Marshal(card)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var decoded AgentCard
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}

	if decoded.ProtocolVersion != ProtocolVersion {
		t.Errorf("ProtocolVersion = %q, want %q", decoded.ProtocolVersion, ProtocolVersion)
	}
	if !decoded.Capabilities.MXPTransport {
		t.Error("Capabilities.MXPTransport should round-trip true")
	}
	if decoded.Capabilities.MXPEndpoint != "mxp://agent.example:7777" {
		t.Errorf("MXPEndpoint = %q", decoded.Capabilities.MXPEndpoint)
	}
	if len(decoded.AdditionalInterfaces) != 1 || decoded.AdditionalInterfaces[0].URL != "mxp://agent.example:7777" {
		t.Errorf("AdditionalInterfaces not mirrored: %+v", decoded.AdditionalInterfaces)
	}
}
