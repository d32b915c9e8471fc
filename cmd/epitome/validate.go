package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/epitome-ai/epitome/yaml"
)

var validateCmd = &cobra.Command{
	Use:   "validate <workflow.yaml>",
	Short: "Validate a workflow definition without executing it",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		def, err := yaml.ParseFile(args[0])
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "workflow %q is valid\n", def.Name)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(validateCmd)
}
