/*
File    : lumen/cmd/lumen/cmd/root.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"os"

	"github.com/akashmaji946/lumen/repl"
	"github.com/spf13/cobra"
)

// Version, Author and License are reported by `lumen version` and shown
// in the REPL banner.
var (
	Version = "v1.0.0"
	Author  = "akashmaji(@iisc.ac.in)"
	License = "MIT"
)

const (
	prompt = "lumen >>> "
	line   = "----------------------------------------------------------------"
	banner = `
  888      888     888 888b     d888 8888888888 888b    888
  888      888     888 8888b   d888 8888       8888b   888
  888      888     888 88888b.d8888 8888       88888b  888
  888      888     888 888Y88888P888 8888888    888Y88b 888
  888      888     888 888 Y888P 888 8888       888 Y88b888
  888      888     888 888  Y8P  888 8888       888  Y88888
  888      Y88b. .d88P 888   "   888 8888       888   Y8888
  88888888  "Y88888P"  888       888 8888888888 888    Y888
`
)

var rootCmd = &cobra.Command{
	Use:   "lumen",
	Short: "Lumen: a small interpreted scripting language",
	Long: `Lumen is a tree-walking interpreter for a small scripting language:
integers, booleans, strings, arrays, functions, closures, and if/let/return.

Run with no arguments to start an interactive REPL.`,
	Version: Version,
	RunE: func(cmd *cobra.Command, args []string) error {
		repler := repl.NewRepl(banner, Version, Author, line, License, prompt)
		repler.Start(os.Stdin, os.Stdout)
		return nil
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
