package a2a

import "github.com/google/uuid"

// Artifact is a named output produced by a task.
type Artifact struct {
	ArtifactID  string         `json:"artifactId"`
	Name        string         `json:"name"`
	Parts       []Part         `json:"parts"`
	Description string         `json:"description,omitempty"`
	Metadata    map[string]any `json:"metadata,omitempty"`
}

// NewArtifact creates an artifact with a fresh id.
func NewArtifact(name string, parts ...Part) Artifact {
	return Artifact{
		ArtifactID: uuid.NewString(),
		Name:       name,
		Parts:      parts,
	}
}
