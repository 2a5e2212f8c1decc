package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/classad-go/classad/pkg/classad"
)

var evalTargetFile string

var evalCmd = &cobra.Command{
	Use:   "eval [file]",
	Short: "Parse a record and evaluate one attribute, or all of them",
	Long: `Parse ClassAd record source and evaluate one named attribute
(--attr) or every attribute in definition order.

Reads from the given file, or from stdin if no file is given. Pass
--target to supply a second record to evaluate against (the
matchmaking peer).`,
	Args: cobra.MaximumNArgs(1),
	RunE: runEval,
}

func init() {
	rootCmd.AddCommand(evalCmd)
	evalCmd.Flags().StringVar(&evalTargetFile, "target", "", "file holding the target (peer) record")
}

func runEval(cmd *cobra.Command, args []string) error {
	input, err := readInput(args)
	if err != nil {
		return err
	}
	rec, err := classad.ParseRecord(input)
	if err != nil {
		return err
	}

	var target *classad.Record
	if evalTargetFile != "" {
		data, err := readInput([]string{evalTargetFile})
		if err != nil {
			return err
		}
		target, err = classad.ParseRecord(data)
		if err != nil {
			return err
		}
	}

	attr, _ := cmd.Flags().GetString("attr")
	if attr != "" {
		fmt.Println(rec.Evaluate(attr, target).String())
		return nil
	}
	for _, name := range rec.Names() {
		fmt.Printf("%s = %s\n", name, rec.Evaluate(name, target).String())
	}
	return nil
}
