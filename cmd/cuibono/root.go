package main

import (
	"github.com/spf13/cobra"
)

func newRootCommand() *cobra.Command {
	ctx := newCommandContext()

	rootCmd := &cobra.Command{
		Use:           "cuibono",
		Short:         "Score competing accounts of an event from contradictions and beneficiaries",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.ensureConfig()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			ctx.sync()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	rootCmd.AddCommand(newAnalyzeCommand(ctx))
	rootCmd.AddCommand(newLexiconCommand())
	rootCmd.AddCommand(newVersionCommand())

	return rootCmd
}
