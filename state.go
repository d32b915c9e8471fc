package epitome

// State carries a single run's data through the workflow. Each run gets a
// fresh State and it is never shared between runs. Summary is set exactly
// once, when the runner merges the summarize node's update.
type State struct {
	Documents []Document `json:"documents"`
	Summary   string     `json:"summary,omitempty"`
}

// apply merges a node's partial update into a copy of the state.
func (s State) apply(u Update) State {
	s.Summary = u.Summary
	return s
}

// Input is the caller-facing projection of the state for starting a run.
type Input struct {
	Documents []Document `json:"documents"`
}

// Output is the caller-facing projection of a completed run.
type Output struct {
	Summary string `json:"summary"`
}

// Update is the summarize node's partial-state contribution. The runner folds
// it into the run's state; nothing else mutates the state within a run.
type Update struct {
	Summary string `json:"summary"`
}
