package cmd

import (
	"fmt"

	"github.com/joeydtaylor/steeze-dummy/pkg/manifest"
	"github.com/joeydtaylor/steeze-dummy/pkg/server"
	"github.com/spf13/cobra"
)

func newRoutesCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print the route table, one METHOD path per line",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := manifest.LoadConfig(*configPath)
			if err != nil {
				return err
			}
			s, err := server.New(cfg, nil)
			if err != nil {
				return err
			}
			for _, k := range s.Registry().Keys() {
				fmt.Fprintln(cmd.OutOrStdout(), k.String())
			}
			return nil
		},
	}
}
