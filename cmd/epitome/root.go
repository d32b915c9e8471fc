package main

import (
	"github.com/spf13/cobra"
)

// Global flags.
var verbose bool

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "epitome",
	Short: "Inline document summarization workflows",
	Long: `Epitome runs one-node summarization workflows: a list of documents
goes in, a language model is called once, a single summary comes out.

Workflows are defined in YAML and executed against a configured model
provider. Documents are read from JSON files with a JSONPath selector.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable verbose output")
	rootCmd.CompletionOptions.DisableDefaultCmd = true
}
