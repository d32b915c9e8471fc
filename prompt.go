package epitome

import (
	"fmt"
	"strings"
)

// DefaultPrompt is the system instruction used when no prompt is configured.
const DefaultPrompt = "You are a helpful assistant that summarizes text. " +
	"Please provide a concise summary of the documents provided by the user."

// separator sits between consecutive document contents in the user message.
// No separator appears before the first or after the last document.
const separator = "---\n\n"

// promptString validates a configured prompt value. Nil selects DefaultPrompt,
// a string is used verbatim, anything else is ErrInvalidPrompt. Validation is
// eager so a bad configuration never reaches a model call.
func promptString(prompt any) (string, error) {
	switch p := prompt.(type) {
	case nil:
		return DefaultPrompt, nil
	case string:
		return p, nil
	default:
		return "", fmt.Errorf("%w: got %T", ErrInvalidPrompt, p)
	}
}

// buildPrompt produces the prompt for a run: exactly one system message
// followed by exactly one user message holding the inlined documents.
// Pure and deterministic; an empty document list yields an empty user message.
func buildPrompt(system string, docs []Document) []Message {
	var b strings.Builder
	for i, doc := range docs {
		if i > 0 {
			b.WriteString(separator)
		}
		b.WriteString(doc.Content)
	}

	return []Message{
		{Role: RoleSystem, Content: system},
		{Role: RoleUser, Content: b.String()},
	}
}
