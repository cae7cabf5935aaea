package main

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/cuibono/internal/codec"
	"github.com/Harshitk-cp/cuibono/internal/lexicon"
)

func newLexiconCommand() *cobra.Command {
	var name string
	var format string

	cmd := &cobra.Command{
		Use:   "lexicon",
		Short: "Print a built-in lexicon as a starting point for a custom one",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := codec.ParseFormat(format)
			if err != nil {
				return err
			}
			lex, err := lexicon.Builtin(name)
			if err != nil {
				return err
			}
			return codec.Encode(cmd.OutOrStdout(), f, lex.Tables())
		},
	}

	cmd.Flags().StringVar(&name, "name", lexicon.DefaultName,
		"Built-in lexicon ("+strings.Join(lexicon.BuiltinNames(), ", ")+")")
	cmd.Flags().StringVar(&format, "format", string(codec.FormatYAML), "Output format (yaml, toml or json)")
	return cmd
}
