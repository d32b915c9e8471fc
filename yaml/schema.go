// Package yaml loads summarization workflow definitions from YAML.
package yaml

import (
	"fmt"

	"github.com/epitome-ai/epitome"
)

// Definition describes a summarization workflow in YAML.
type Definition struct {
	Name        string `yaml:"name"`
	Description string `yaml:"description,omitempty"`

	// Prompt is the system prompt. Absent keeps the default instruction; a
	// non-string value is a configuration error, reported by Validate.
	Prompt any `yaml:"prompt,omitempty"`

	Model  ModelConfig   `yaml:"model"`
	Source *SourceConfig `yaml:"source,omitempty"`
}

// ModelConfig selects and tunes the backing model.
type ModelConfig struct {
	Provider    string   `yaml:"provider"`
	Name        string   `yaml:"name"`
	Temperature *float64 `yaml:"temperature,omitempty"`
	MaxTokens   *int     `yaml:"max_tokens,omitempty"`
}

// SourceConfig tells the runner where a run's documents come from: a JSON
// file and a JSONPath selecting document contents within it.
type SourceConfig struct {
	File string `yaml:"file"`
	Path string `yaml:"path,omitempty"`
}

// DefaultPath selects every element of a top-level JSON array.
const DefaultPath = "$[*]"

// Validate checks the definition for structural problems. An invalid prompt
// type is reported here, before any model client is constructed.
func (d *Definition) Validate() error {
	if d.Name == "" {
		return fmt.Errorf("workflow name is required")
	}

	switch d.Prompt.(type) {
	case nil, string:
	default:
		return fmt.Errorf("%w: got %T", epitome.ErrInvalidPrompt, d.Prompt)
	}

	if d.Model.Provider == "" {
		return fmt.Errorf("model provider is required")
	}
	if d.Model.Name == "" {
		return fmt.Errorf("model name is required")
	}

	if d.Source != nil && d.Source.File == "" {
		return fmt.Errorf("source file is required")
	}

	return nil
}

// SourcePath returns the definition's JSONPath, or DefaultPath when unset.
func (d *Definition) SourcePath() string {
	if d.Source != nil && d.Source.Path != "" {
		return d.Source.Path
	}
	return DefaultPath
}
