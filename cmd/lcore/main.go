// Command lcore is the CLI entry point: no arguments starts a REPL,
// -f/--file runs a script, -c/--code evaluates an inline program (§6).
package main

import (
	"fmt"
	"os"

	"github.com/cwbudde/lcore/cmd/lcore/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
