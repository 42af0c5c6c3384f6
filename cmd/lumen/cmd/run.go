/*
File    : lumen/cmd/lumen/cmd/run.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"
	"os"

	"github.com/akashmaji946/lumen/environment"
	"github.com/akashmaji946/lumen/eval"
	"github.com/akashmaji946/lumen/lexer"
	"github.com/akashmaji946/lumen/object"
	"github.com/akashmaji946/lumen/parser"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var runCmd = &cobra.Command{
	Use:   "run [file]",
	Short: "Run a Lumen source file",
	Args:  cobra.ExactArgs(1),
	RunE:  runFile,
}

func init() {
	rootCmd.AddCommand(runCmd)
}

func runFile(cmd *cobra.Command, args []string) error {
	source, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("could not read file %q: %w", args[0], err)
	}
	executeFileWithRecovery(string(source))
	return nil
}

// executeFileWithRecovery parses and evaluates source, exiting with
// status 1 on any parse error, runtime error, or panic. File execution
// mode is strict in a way the REPL is not: a bad program should fail
// visibly and stop, not leave a dangling session.
func executeFileWithRecovery(source string) {
	redColor := color.New(color.FgRed)
	yellowColor := color.New(color.FgYellow)

	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(os.Stderr, "[RUNTIME ERROR] %v\n", recovered)
			os.Exit(1)
		}
	}()

	l := lexer.New(source)
	p := parser.New(l)
	program := p.ParseProgram()

	if len(p.Errors()) != 0 {
		for _, msg := range p.Errors() {
			redColor.Fprintf(os.Stderr, "[PARSE ERROR] %s\n", msg)
		}
		os.Exit(1)
	}

	env := environment.New(nil)
	eval.SetOutput(os.Stdout)
	result := eval.Eval(program, env)

	if result == nil {
		return
	}
	if object.IsError(result) {
		redColor.Fprintf(os.Stderr, "%s\n", result.Inspect())
		os.Exit(1)
	}
	if result.Type() != object.NULL {
		yellowColor.Fprintf(os.Stdout, "%s\n", result.Inspect())
	}
}
