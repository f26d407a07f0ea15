package builtins

import (
	"os"

	"github.com/cwbudde/lcore/internal/value"
)

// biQuit implements `quit`/`exit`: terminate the process with status 0,
// matching lcore_quit in the reference implementation.
func biQuit(_ []value.Value, _ *value.Environment) (value.Value, error) {
	os.Exit(0)
	return value.Null, nil
}
