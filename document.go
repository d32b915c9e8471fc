package epitome

// Document is an opaque unit of text to be summarized. Content is the only
// field this package reads; Metadata belongs to the caller and travels with
// the document untouched.
type Document struct {
	Content  string         `json:"content"`
	Metadata map[string]any `json:"metadata,omitempty"`
}
