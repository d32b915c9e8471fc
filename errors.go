package epitome

import "errors"

// Common errors.
var (
	// ErrInvalidPrompt is returned when a configured prompt is neither absent
	// nor a string. It is detected at assembly time, before any model call.
	ErrInvalidPrompt = errors.New("epitome: prompt must be a string or nil")

	// ErrNoModel is returned when a workflow is assembled without a model.
	ErrNoModel = errors.New("epitome: no model bound")

	// ErrNodeNotFound is returned when the runner follows an edge to a node
	// that does not exist in the workflow.
	ErrNodeNotFound = errors.New("epitome: node not found")
)
