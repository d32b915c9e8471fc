package yaml

import (
	"fmt"
	"io"
	"os"
	"strings"

	goyaml "github.com/goccy/go-yaml"
)

// Parse reads and validates a workflow definition.
func Parse(r io.Reader) (*Definition, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read definition: %w", err)
	}

	var def Definition
	if err := goyaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parse YAML: %w", err)
	}

	if err := def.Validate(); err != nil {
		return nil, fmt.Errorf("invalid workflow definition: %w", err)
	}

	return &def, nil
}

// ParseFile reads and validates a workflow definition from a file.
func ParseFile(filename string) (*Definition, error) {
	file, err := os.Open(filename) // #nosec G304 - caller-provided workflow file
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer func() { _ = file.Close() }()

	return Parse(file)
}

// ParseString reads and validates a workflow definition from a string.
func ParseString(s string) (*Definition, error) {
	return Parse(strings.NewReader(s))
}
