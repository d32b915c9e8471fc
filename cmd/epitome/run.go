package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epitome-ai/epitome"
	"github.com/epitome-ai/epitome/model/openai"
	"github.com/epitome-ai/epitome/schema"
	"github.com/epitome-ai/epitome/source"
	"github.com/epitome-ai/epitome/yaml"
)

var (
	docsFile string
	docsPath string
)

var runCmd = &cobra.Command{
	Use:   "run <workflow.yaml>",
	Short: "Execute a summarization workflow",
	Long: `Run loads a workflow definition, gathers its documents, and prints
the resulting summary to stdout.

Documents come from the definition's source block, or from --docs when
given. Both are JSON files; --path selects document contents within them.`,
	Args: cobra.ExactArgs(1),
	RunE: runWorkflow,
}

func init() {
	runCmd.Flags().StringVar(&docsFile, "docs", "", "JSON file with run documents (overrides the definition's source)")
	runCmd.Flags().StringVar(&docsPath, "path", yaml.DefaultPath, "JSONPath selecting document contents in --docs")
	rootCmd.AddCommand(runCmd)
}

func runWorkflow(cmd *cobra.Command, args []string) error {
	def, err := yaml.ParseFile(args[0])
	if err != nil {
		return err
	}

	environment, err := loadEnv()
	if err != nil {
		return err
	}

	model, err := buildModel(def, environment)
	if err != nil {
		return err
	}

	wf, err := epitome.New(model,
		epitome.WithName(def.Name),
		epitome.WithPrompt(def.Prompt),
		epitome.WithLogger(newLogger(verbose)),
	)
	if err != nil {
		return err
	}

	docs, err := loadDocuments(def, docsFile, docsPath)
	if err != nil {
		return err
	}

	validator, err := schema.NewValidator()
	if err != nil {
		return err
	}

	input := epitome.Input{Documents: docs}
	if err := validator.ValidateInput(input); err != nil {
		return err
	}

	out, err := wf.Run(cmd.Context(), input)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), out.Summary)
	return nil
}

// buildModel constructs the model client named by the definition.
func buildModel(def *yaml.Definition, environment Env) (epitome.Model, error) {
	switch def.Model.Provider {
	case "openai":
		return openai.New(openai.Config{
			APIKey:      environment.OpenAIAPIKey,
			BaseURL:     environment.OpenAIBaseURL,
			Model:       def.Model.Name,
			Temperature: def.Model.Temperature,
			MaxTokens:   def.Model.MaxTokens,
		})
	default:
		return nil, fmt.Errorf("unknown model provider: %s", def.Model.Provider)
	}
}

// loadDocuments resolves the run's documents: an explicit --docs file wins
// over the definition's source block.
func loadDocuments(def *yaml.Definition, file, path string) ([]epitome.Document, error) {
	if file != "" {
		return source.FromFile(file, path)
	}
	if def.Source != nil {
		return source.FromFile(def.Source.File, def.SourcePath())
	}
	return nil, fmt.Errorf("no documents: definition has no source and --docs was not given")
}
