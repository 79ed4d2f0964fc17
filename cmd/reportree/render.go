package main

import (
	"github.com/spf13/cobra"

	"github.com/montaguethomas/reportree/codec"
	"github.com/montaguethomas/reportree/report"
)

var renderCmd = &cobra.Command{
	Use:   "render FILE",
	Short: "Print a stored tree in the configured output format",
	Long: `Reads a tree from FILE (.json, .yaml, .yml or .gob) and prints it as an
HTML document, an outline, or re-encoded in another format.

Example:
  reportree render report.yaml --format outline`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	root, _, err := codec.DecodeFile[report.Content](args[0])
	if err != nil {
		return err
	}
	return write(cmd.OutOrStdout(), cfg, root)
}
