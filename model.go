package epitome

import "context"

// Response is the result of a model invocation.
type Response interface {
	// Text extracts the textual content of the response. It returns an error
	// when the response carries no extractable text.
	Text() (string, error)
}

// Invocation is the outcome delivered on a model's suspending path.
type Invocation struct {
	Response Response
	Err      error
}

// Model is the invocation capability a workflow is bound to. Implementations
// must offer both a blocking and a suspending path with identical behavior
// for the same messages. Cancellation and timeouts are the model's contract;
// the workflow passes its context through unmodified.
type Model interface {
	// Invoke sends messages to the model and blocks until the response arrives.
	Invoke(ctx context.Context, messages []Message) (Response, error)

	// InvokeAsync sends messages without blocking the caller. The returned
	// channel delivers exactly one Invocation and is then closed.
	InvokeAsync(ctx context.Context, messages []Message) <-chan Invocation
}
