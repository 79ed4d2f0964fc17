package main

import (
	"github.com/spf13/cobra"

	"github.com/montaguethomas/reportree/constants"
	"github.com/montaguethomas/reportree/log"
	"github.com/montaguethomas/reportree/report"
)

var demoCmd = &cobra.Command{
	Use:   "demo",
	Short: "Build a sample report with every splice operation and print it",
	Args:  cobra.NoArgs,
	RunE:  runDemo,
}

// demoReport builds the sample report. Every step is a splice relative to an
// identifier, so the result documents what each operation does.
func demoReport(title string) (*report.Node, error) {
	r := report.New("doc", title)

	a := r.Section("a", "Section A")
	a.AddText("a.intro", "Appended first.")

	if _, err := r.Before("a", "b", report.Section("Section B")); err != nil {
		return nil, err
	}
	if _, err := r.After("a", "c", report.Section("Section C")); err != nil {
		return nil, err
	}
	if _, err := r.Replace("c", "cc", report.Section("Section CC")); err != nil {
		return nil, err
	}

	a.Section("d", "Section D").
		AddMarkdown("d.md", "Found with a **deep** search.").
		AddHTML("d.html", "<p>Raw <em>HTML</em> is kept as is.</p>\n")

	// d lives below a, so only the deep search finds it from the root
	d, ok := r.Get("d")
	if !ok {
		return nil, constants.ErrNodeNotFound
	}
	report.Build(d).WithText("Text added through a deep lookup.")
	return r.Node, nil
}

func runDemo(cmd *cobra.Command, args []string) error {
	root, err := demoReport(cfg.Title)
	if err != nil {
		return err
	}
	log.Debugf("demo report has %d nodes", root.Count())
	return write(cmd.OutOrStdout(), cfg, root)
}
