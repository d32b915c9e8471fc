/*
Package epitome builds one-node summarization workflows that turn a list of
documents into a single summary by delegating to a language model.

A workflow is assembled once from a model and an optional system prompt, then
run any number of times. Each run builds a two-message prompt (one system
message, one user message holding the inlined documents), makes exactly one
model call, and folds the response text into the run's output.

Basic usage:

	model, err := openai.New(openai.Config{APIKey: key})
	if err != nil {
		log.Fatal(err)
	}

	wf, err := epitome.New(model, epitome.WithPrompt("Summarize in one paragraph."))
	if err != nil {
		log.Fatal(err)
	}

	out, err := wf.Run(ctx, epitome.Input{
		Documents: []epitome.Document{
			{Content: "First report..."},
			{Content: "Second report..."},
		},
	})
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(out.Summary)

Suspending execution:

	result := <-wf.RunAsync(ctx, input)
	if result.Err != nil {
		log.Fatal(result.Err)
	}
	fmt.Println(result.Output.Summary)

The workflow introduces no concurrency of its own: the only suspension point
is the outbound model call. An assembled workflow is safe for concurrent runs;
each run gets a fresh state and only the bound model reference is shared.
*/
package epitome
