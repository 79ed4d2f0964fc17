package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/montaguethomas/reportree/codec"
	"github.com/montaguethomas/reportree/log"
	"github.com/montaguethomas/reportree/report"
)

var spliceCmd = &cobra.Command{
	Use:   "splice FILE before|after|replace PLACE ID KIND VALUE",
	Short: "Insert or replace a node relative to another one",
	Long: `Reads a tree from FILE, creates a node ID of kind KIND (section, html,
markdown or text) holding VALUE and places it before, after or instead of the
node PLACE. The resulting tree is printed in the format of FILE unless
--format is given.

Targeting the root's own identifier with before/after prepends/appends to the
root; replacing the root is refused.

Example:
  reportree splice report.json after intro summary text "All good."`,
	Args: cobra.ExactArgs(6),
	RunE: runSplice,
}

func runSplice(cmd *cobra.Command, args []string) error {
	path, op, place, id := args[0], args[1], args[2], args[3]

	kind, err := report.ParseKind(args[4])
	if err != nil {
		return err
	}
	content, err := report.NewContent(kind, args[5])
	if err != nil {
		return err
	}

	root, f, err := codec.DecodeFile[report.Content](path)
	if err != nil {
		return err
	}

	switch op {
	case "before":
		_, err = root.Before(place, id, content)
	case "after":
		_, err = root.After(place, id, content)
	case "replace":
		_, err = root.Replace(place, id, content)
	default:
		return errors.Errorf("unknown operation %q, want before, after or replace", op)
	}
	if err != nil {
		return errors.WithMessagef(err, "%s %q", op, place)
	}
	log.Debugf("%s %q: placed %q", op, place, id)

	out := *cfg
	if format == "" {
		out.Format = string(f)
	}
	return write(cmd.OutOrStdout(), &out, root)
}
