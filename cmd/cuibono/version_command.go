package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/cuibono/internal/buildconfig"
)

func newVersionCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print build information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), buildconfig.Get().String())
			return err
		},
	}
}
