// Package repl implements the interactive read-eval-print loop described
// in §6: prompt `(> `, continuation prompt ` > ` while the buffer does
// not yet parse as a complete program, CTRL+C or `(quit)` to exit, and a
// leading `-> ` on every non-Null top-level result.
//
// Line editing and history are provided by github.com/peterh/liner, the
// same terminal line-editor the rest of this example family reaches for
// in front of a REPL loop.
package repl

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/peterh/liner"

	"github.com/cwbudde/lcore/internal/module"
	"github.com/cwbudde/lcore/internal/parser"
	"github.com/cwbudde/lcore/internal/value"
)

const (
	promptStart     = "(> "
	promptContinued = " > "
)

// Run starts the interactive loop, reading from and writing to the
// terminal via a liner.State, until CTRL+C, CTRL+D, or `(quit)` (which
// exits the process directly — see builtins.biQuit).
func Run(out io.Writer) error {
	line := liner.NewLiner()
	defer line.Close()
	line.SetCtrlCAborts(true)

	env := module.NewRootEnvironment()
	env.SetOutput(out)

	var buf strings.Builder
	prompt := promptStart

	for {
		input, err := line.Prompt(prompt)
		if err != nil {
			if errors.Is(err, liner.ErrPromptAborted) || errors.Is(err, io.EOF) {
				return nil
			}
			return err
		}

		var appendHistory bool
		prompt, appendHistory = step(env, out, &buf, input)
		if appendHistory {
			line.AppendHistory(input)
		}
	}
}

// step feeds one line of input into buf, evaluates the accumulated buffer
// against env, and reports the prompt to show next. It is the one piece
// of Run's loop with no dependency on liner's terminal, so it is the seam
// the tests drive directly to cover the continuation-prompt contract
// (§6): an incomplete program (parser.ErrIncomplete) switches to
// promptContinued without resetting buf or touching history; any other
// error is printed and resets buf; a successful evaluation prints a
// leading `-> ` for a non-Null result, resets buf, and asks the caller to
// append input to history.
func step(env *value.Environment, out io.Writer, buf *strings.Builder, input string) (nextPrompt string, appendHistory bool) {
	if buf.Len() > 0 {
		buf.WriteString(" ")
	}
	buf.WriteString(input)

	result, err := module.EvalSource("<repl>", buf.String(), env)
	if err != nil {
		if errors.Is(err, parser.ErrIncomplete) {
			return promptContinued, false
		}
		fmt.Fprintln(out, err.Error())
		buf.Reset()
		return promptStart, false
	}

	if !isNull(result) {
		fmt.Fprintf(out, "-> %s\n", value.Format(result, false))
	}
	buf.Reset()
	return promptStart, true
}

func isNull(v value.Value) bool {
	_, ok := v.(value.NullValue)
	return ok
}
