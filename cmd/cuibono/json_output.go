package main

import (
	"github.com/spf13/cobra"

	"github.com/Harshitk-cp/cuibono/internal/codec"
)

// writeJSON encodes v as indented JSON to the command's stdout.
func writeJSON(cmd *cobra.Command, v any) error {
	return codec.Encode(cmd.OutOrStdout(), codec.FormatJSON, v)
}
