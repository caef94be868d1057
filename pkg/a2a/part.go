package a2a

// PartKind discriminates which content slot of a Part is populated.
type PartKind string

const (
	PartKindText PartKind = "text"
	PartKindFile PartKind = "file"
	PartKindData PartKind = "data"
)

// FileContent describes a file, either inlined as base64 bytes or
// referenced by URI. Exactly one of Bytes or URI is set.
type FileContent struct {
	MimeType string `json:"mimeType,omitempty"`
	Name     string `json:"name,omitempty"`
	Bytes    string `json:"bytes,omitempty"` // base64-encoded inline content
	URI      string `json:"uri,omitempty"`
}

// Part is a tagged variant over text, file, and structured data content.
// Kind selects which of Text, File, or Data is populated; the other two are
// left zero. Unknown keys encountered while decoding are ignored.
type Part struct {
	Kind     PartKind       `json:"kind"`
	Text     string         `json:"text,omitempty"`
	File     *FileContent   `json:"file,omitempty"`
	Data     any            `json:"data,omitempty"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

// Text builds a text Part.
func Text(s string) Part {
	return Part{Kind: PartKindText, Text: s}
}

// FileInline builds a Part carrying a file's content inline as base64.
func FileInline(mimeType, base64Data string) Part {
	return Part{Kind: PartKindFile, File: &FileContent{MimeType: mimeType, Bytes: base64Data}}
}

// FileURI builds a Part referencing a file by URI.
func FileURI(mimeType, uri string) Part {
	return Part{Kind: PartKindFile, File: &FileContent{MimeType: mimeType, URI: uri}}
}

// Data builds a Part carrying arbitrary structured data.
func Data(v any) Part {
	return Part{Kind: PartKindData, Data: v}
}
