package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/classad-go/classad/pkg/classad"
)

var parseCmd = &cobra.Command{
	Use:   "parse [file]",
	Short: "Parse ClassAd source and print the unparsed AST",
	Long: `Parse ClassAd source text and print its canonical textual form.

Reads from the given file, or from stdin if no file is given.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runParse,
}

func init() {
	rootCmd.AddCommand(parseCmd)
}

func runParse(_ *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	expr, err := classad.Parse(input)
	if err != nil {
		return err
	}
	fmt.Println(expr.Unparse())
	return nil
}

func readInput(args []string) (string, error) {
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("reading %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("reading stdin: %w", err)
	}
	return string(data), nil
}
