/*
File    : lumen/cmd/lumen/cmd/server.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package cmd

import (
	"fmt"
	"net"
	"os"

	"github.com/akashmaji946/lumen/repl"
	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var serverCmd = &cobra.Command{
	Use:   "server [port]",
	Short: "Start a TCP REPL server, one session per connection",
	Args:  cobra.ExactArgs(1),
	RunE:  startServer,
}

func init() {
	rootCmd.AddCommand(serverCmd)
}

func startServer(cmd *cobra.Command, args []string) error {
	cyanColor := color.New(color.FgCyan)
	redColor := color.New(color.FgRed)

	port := args[0]
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		return fmt.Errorf("failed to start server on port %s: %w", port, err)
	}
	defer listener.Close()
	cyanColor.Printf("Lumen REPL server listening on :%s\n", port)

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor := color.New(color.FgCyan)
	cyanColor.Printf("new client connected from %s\n", conn.RemoteAddr())
	repler := repl.NewRepl(banner, Version, Author, line, License, prompt)
	repler.Start(conn, conn)
	cyanColor.Printf("client disconnected from %s\n", conn.RemoteAddr())
}
