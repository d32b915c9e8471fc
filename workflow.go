package epitome

import (
	"context"
	"fmt"
)

// NodeSummarize is the name of the single node in a summarization workflow.
const NodeSummarize = "summarize"

// End is the terminal marker in a workflow's edge map.
const End = "end"

// defaultName identifies workflows assembled without WithName.
const defaultName = "inline-summarization"

// options holds configuration collected by Option values.
type options struct {
	name   string
	prompt any
	logger Logger
}

// Option configures a Workflow.
type Option func(*options)

// WithPrompt sets the system prompt. The value must be a string; anything
// else fails New with ErrInvalidPrompt. Nil keeps DefaultPrompt.
func WithPrompt(prompt any) Option {
	return func(o *options) {
		o.prompt = prompt
	}
}

// WithName overrides the workflow's name.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger adds debug tracing to the workflow runner.
func WithLogger(logger Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// Workflow is a one-node directed graph: entry at the summarize node, a
// single edge from that node to End. Assemble it once with New and run it
// any number of times; runs never share state.
type Workflow struct {
	name   string
	nodes  map[string]*SummarizeNode
	edges  map[string]string
	start  string
	logger Logger
}

// New assembles a summarization workflow around the given model.
// Configuration errors (an invalid prompt, a missing model) surface here,
// before any run is started.
func New(model Model, opts ...Option) (*Workflow, error) {
	o := options{name: defaultName}
	for _, opt := range opts {
		opt(&o)
	}

	node, err := NewSummarizeNode(model, o.prompt)
	if err != nil {
		return nil, err
	}

	return &Workflow{
		name:   o.name,
		nodes:  map[string]*SummarizeNode{node.Name(): node},
		edges:  map[string]string{node.Name(): End},
		start:  node.Name(),
		logger: o.logger,
	}, nil
}

// Name returns the workflow's name.
func (w *Workflow) Name() string {
	return w.name
}

// Start returns the name of the workflow's entry node.
func (w *Workflow) Start() string {
	return w.start
}

// Nodes returns the names of the workflow's nodes.
func (w *Workflow) Nodes() []string {
	names := make([]string, 0, len(w.nodes))
	for name := range w.nodes {
		names = append(names, name)
	}
	return names
}

// Edges returns a copy of the workflow's edge map.
func (w *Workflow) Edges() map[string]string {
	edges := make(map[string]string, len(w.edges))
	for from, to := range w.edges {
		edges[from] = to
	}
	return edges
}

// RunResult is delivered on a workflow's suspending path.
type RunResult struct {
	Output Output
	Err    error
}

// Run executes the workflow on the blocking path. A failed run produces no
// output and returns the originating error wrapped with the node name.
func (w *Workflow) Run(ctx context.Context, input Input) (Output, error) {
	state := State{Documents: input.Documents}

	for current := w.start; current != End; current = w.edges[current] {
		node, ok := w.nodes[current]
		if !ok {
			return Output{}, fmt.Errorf("%w: %s", ErrNodeNotFound, current)
		}

		w.debug(ctx, "executing node", "workflow", w.name, "node", current)

		update, err := node.Run(ctx, state)
		if err != nil {
			return Output{}, fmt.Errorf("node %s: %w", current, err)
		}
		state = state.apply(update)
	}

	return Output{Summary: state.Summary}, nil
}

// RunAsync executes the workflow on the suspending path. The returned channel
// delivers exactly one RunResult and is then closed. The caller's scheduler
// decides how to interleave other work while the model call is outstanding.
func (w *Workflow) RunAsync(ctx context.Context, input Input) <-chan RunResult {
	out := make(chan RunResult, 1)
	go func() {
		defer close(out)

		state := State{Documents: input.Documents}

		for current := w.start; current != End; current = w.edges[current] {
			node, ok := w.nodes[current]
			if !ok {
				out <- RunResult{Err: fmt.Errorf("%w: %s", ErrNodeNotFound, current)}
				return
			}

			w.debug(ctx, "executing node", "workflow", w.name, "node", current)

			result := <-node.RunAsync(ctx, state)
			if result.Err != nil {
				out <- RunResult{Err: fmt.Errorf("node %s: %w", current, result.Err)}
				return
			}
			state = state.apply(result.Update)
		}

		out <- RunResult{Output: Output{Summary: state.Summary}}
	}()
	return out
}

func (w *Workflow) debug(ctx context.Context, msg string, keysAndValues ...any) {
	if w.logger != nil {
		w.logger.Debug(ctx, msg, keysAndValues...)
	}
}
