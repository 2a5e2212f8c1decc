package cmd

import (
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "classad",
	Short: "ClassAd expression engine developer tool",
	Long: `classad is a small manual-testing entry point for the ClassAd
expression engine: parse or evaluate a record or expression and print
the result.

It is deliberately minimal; it is not a driving shell for an external
matchmaking service, configuration system, or persistence layer.`,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringP("attr", "a", "", "evaluate only this attribute")
}
