package epitome

import "context"

// NodeResult is delivered on the summarize node's suspending path.
type NodeResult struct {
	Update Update
	Err    error
}

// SummarizeNode drives one model call per workflow run and folds the response
// text into a partial-state update. It has no side effects beyond that single
// outbound call: no retries, no timeouts, no logging.
type SummarizeNode struct {
	name   string
	model  Model
	system string
}

// NewSummarizeNode builds a summarize node bound to the given model. The
// prompt must be a string or nil; nil selects DefaultPrompt.
func NewSummarizeNode(model Model, prompt any) (*SummarizeNode, error) {
	if model == nil {
		return nil, ErrNoModel
	}

	system, err := promptString(prompt)
	if err != nil {
		return nil, err
	}

	return &SummarizeNode{
		name:   NodeSummarize,
		model:  model,
		system: system,
	}, nil
}

// Name returns the node's identifier in the workflow graph.
func (n *SummarizeNode) Name() string {
	return n.name
}

// Prompt returns the messages the node would send for the given state.
func (n *SummarizeNode) Prompt(state State) []Message {
	return buildPrompt(n.system, state.Documents)
}

// Run executes the node's blocking path: build the prompt, invoke the model
// once, extract the response text. Model and extraction failures propagate
// unmodified.
func (n *SummarizeNode) Run(ctx context.Context, state State) (Update, error) {
	resp, err := n.model.Invoke(ctx, n.Prompt(state))
	if err != nil {
		return Update{}, err
	}
	return n.fold(resp)
}

// RunAsync executes the node's suspending path. The returned channel delivers
// exactly one NodeResult and is then closed. For a deterministic model the
// result is identical to Run: same prompt, same extraction, same update.
func (n *SummarizeNode) RunAsync(ctx context.Context, state State) <-chan NodeResult {
	out := make(chan NodeResult, 1)
	go func() {
		defer close(out)

		inv := <-n.model.InvokeAsync(ctx, n.Prompt(state))
		if inv.Err != nil {
			out <- NodeResult{Err: inv.Err}
			return
		}

		update, err := n.fold(inv.Response)
		out <- NodeResult{Update: update, Err: err}
	}()
	return out
}

// fold extracts the response text into the node's state update.
func (n *SummarizeNode) fold(resp Response) (Update, error) {
	text, err := resp.Text()
	if err != nil {
		return Update{}, err
	}
	return Update{Summary: text}, nil
}
