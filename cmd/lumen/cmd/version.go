/*
File    : lumen/cmd/lumen/cmd/version.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print version information",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("lumen version %s\n", Version)
		fmt.Printf("License: %s\n", License)
		fmt.Printf("Author : %s\n", Author)
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
