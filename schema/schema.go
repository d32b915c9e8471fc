// Package schema validates workflow inputs and outputs at the run boundary
// using JSON Schema. The views are plain structs; validation here is the
// projection convention made checkable, not a runtime type system.
package schema

import (
	"encoding/json"
	"fmt"

	"github.com/xeipuuv/gojsonschema"

	"github.com/epitome-ai/epitome"
)

// inputSchema constrains the caller-facing input view: a documents array
// whose entries carry string content and an optional metadata object.
// An empty array is valid; non-empty is recommended, not enforced.
const inputSchema = `{
	"type": "object",
	"required": ["documents"],
	"additionalProperties": false,
	"properties": {
		"documents": {
			"type": "array",
			"items": {
				"type": "object",
				"required": ["content"],
				"additionalProperties": false,
				"properties": {
					"content": {"type": "string"},
					"metadata": {"type": "object"}
				}
			}
		}
	}
}`

// outputSchema constrains the caller-facing output view: a single summary string.
const outputSchema = `{
	"type": "object",
	"required": ["summary"],
	"additionalProperties": false,
	"properties": {
		"summary": {"type": "string"}
	}
}`

// Validator checks run inputs and outputs against the boundary schemas.
type Validator struct {
	input  *gojsonschema.Schema
	output *gojsonschema.Schema
}

// NewValidator compiles the boundary schemas.
func NewValidator() (*Validator, error) {
	input, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(inputSchema))
	if err != nil {
		return nil, fmt.Errorf("compile input schema: %w", err)
	}

	output, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(outputSchema))
	if err != nil {
		return nil, fmt.Errorf("compile output schema: %w", err)
	}

	return &Validator{input: input, output: output}, nil
}

// ValidateInput checks a run input. A nil document list is treated as empty.
func (v *Validator) ValidateInput(input epitome.Input) error {
	if input.Documents == nil {
		input.Documents = []epitome.Document{}
	}
	return validate(v.input, input)
}

// ValidateInputJSON checks a raw JSON payload against the input contract.
func (v *Validator) ValidateInputJSON(data []byte) error {
	return validateBytes(v.input, data)
}

// ValidateOutput checks a run output.
func (v *Validator) ValidateOutput(output epitome.Output) error {
	return validate(v.output, output)
}

func validate(schema *gojsonschema.Schema, value any) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("marshal value: %w", err)
	}
	return validateBytes(schema, data)
}

func validateBytes(schema *gojsonschema.Schema, data []byte) error {
	result, err := schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	if !result.Valid() {
		var errMsg string
		for i, resultErr := range result.Errors() {
			if i > 0 {
				errMsg += "; "
			}
			errMsg += resultErr.String()
		}
		return fmt.Errorf("schema validation failed: %s", errMsg)
	}

	return nil
}
