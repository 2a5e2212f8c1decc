// Command classad is a small manual-testing entry point for the
// ClassAd expression engine: parse or evaluate a file or stdin and
// print the result. See cmd/classad/cmd for the parse/eval subcommands.
package main

import (
	"fmt"
	"os"

	"github.com/classad-go/classad/cmd/classad/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
