// Package cmd implements the dummyserver command line.
package cmd

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

// Version is set at build time via ldflags.
var Version = "dev"

func Execute(args []string) error {
	root := NewRootCmd()
	root.SetArgs(args)
	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		return err
	}
	return nil
}

func NewRootCmd() *cobra.Command {
	var configPath string

	root := &cobra.Command{
		Use:           "dummyserver",
		Short:         "Programmable HTTP test-double server",
		Version:       Version,
		SilenceUsage:  true,
		SilenceErrors: true,
		Example: strings.TrimSpace(`
  # Serve the built-in routes on a random port
  dummyserver serve

  # Fixed port, shorter /sleep, Prometheus on a side port
  dummyserver serve --port 8089 --sleep 250ms --metrics-listen 127.0.0.1:9090

  # Show what would be served
  dummyserver routes --config dummy-server.toml
`),
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "Manifest path (default $DUMMY_SERVER_CONFIG or dummy-server.toml)")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newRoutesCmd(&configPath))
	return root
}
