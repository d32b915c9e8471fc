// Package source builds document lists from external representations.
package source

import (
	"fmt"
	"os"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"

	"github.com/epitome-ai/epitome"
)

// FromStrings wraps plain strings as documents, in the given order.
func FromStrings(contents ...string) []epitome.Document {
	list := make([]epitome.Document, len(contents))
	for i, content := range contents {
		list[i] = epitome.Document{Content: content}
	}
	return list
}

// FromJSON selects document contents out of a JSON payload with a JSONPath
// expression. String matches become document contents verbatim; other values
// are rendered back to JSON. Match order follows the expression's traversal
// of the payload. No matches yields an empty list, not an error.
func FromJSON(data []byte, path string) ([]epitome.Document, error) {
	expr, err := jp.ParseString(path)
	if err != nil {
		return nil, fmt.Errorf("invalid JSONPath expression: %w", err)
	}

	value, err := oj.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse JSON: %w", err)
	}

	matches := expr.Get(value)
	list := make([]epitome.Document, 0, len(matches))
	for _, match := range matches {
		content, ok := match.(string)
		if !ok {
			content = oj.JSON(match)
		}
		list = append(list, epitome.Document{Content: content})
	}
	return list, nil
}

// FromFile reads a JSON file and selects document contents with path.
func FromFile(filename, path string) ([]epitome.Document, error) {
	data, err := os.ReadFile(filename) // #nosec G304 - caller-provided documents file
	if err != nil {
		return nil, fmt.Errorf("read file: %w", err)
	}
	return FromJSON(data, path)
}
