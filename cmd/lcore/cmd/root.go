package cmd

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/cwbudde/lcore/internal/module"
	"github.com/cwbudde/lcore/internal/repl"
)

var (
	// Version information (set by build flags).
	Version   = "0.1.0-dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

var (
	fileFlag string
	codeFlag string
)

var rootCmd = &cobra.Command{
	Use:   "lcore",
	Short: "An interpreter for the language core",
	Long: `lcore is an interpreter for a small parenthesized, prefix-notation
expression language in the Lisp family.

With no arguments it starts an interactive REPL. Use -f to run a file or
-c to evaluate an inline program.`,
	Version: Version,
	RunE:    runRoot,
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.SetVersionTemplate(fmt.Sprintf(`{{with .Name}}{{printf "%%s " .}}{{end}}{{printf "version %%s" .Version}}
Commit: %s
Built:  %s
`, GitCommit, BuildDate))

	rootCmd.Flags().StringVarP(&fileFlag, "file", "f", "", "parse and evaluate FILE, then exit")
	rootCmd.Flags().StringVarP(&codeFlag, "code", "c", "", "parse and evaluate CODE, then exit")
}

func runRoot(_ *cobra.Command, _ []string) error {
	switch {
	case fileFlag != "" && codeFlag != "":
		return fmt.Errorf("-f/--file and -c/--code are mutually exclusive")

	case fileFlag != "":
		return runFile(os.Stdout, fileFlag)

	case codeFlag != "":
		return runCode(os.Stdout, codeFlag)

	default:
		return repl.Run(os.Stdout)
	}
}

// runFile reads path and evaluates it against a fresh root environment,
// writing program output and any top-level error to out. An evaluation
// error stops the program, is written to out, and is not returned, so the
// process still exits with status 0; only a failure to read the file is
// returned.
func runFile(out io.Writer, path string) error {
	src, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read file %s: %w", path, err)
	}
	env := module.NewRootEnvironment()
	env.SetOutput(out)
	if _, err := module.EvalSource(path, string(src), env); err != nil {
		fmt.Fprintln(out, err.Error())
	}
	return nil
}

// runCode evaluates code inline against a fresh root environment.
func runCode(out io.Writer, code string) error {
	env := module.NewRootEnvironment()
	env.SetOutput(out)
	if _, err := module.EvalSource("<code>", code, env); err != nil {
		fmt.Fprintln(out, err.Error())
	}
	return nil
}
