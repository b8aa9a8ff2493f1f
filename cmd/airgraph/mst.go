package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"airgraph/pkg/mst"
)

func NewMSTCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "mst"
	cmd.Short = "Print the minimum spanning forest of the route network"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runMST(cmd, v, fs) }

	cmd.Flags().Bool("summary", false, "Print one line per component instead of every edge")

	return cmd
}

func runMST(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	summaryOnly := v.GetBool("summary")

	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}
	f := mst.Build(g)

	w := cmd.OutOrStdout()
	printTitle(w, format, fmt.Sprintf("Minimum spanning forest: %d tree(s), %d edge(s), %s km",
		len(f.Trees), f.EdgeCount(), km(f.TotalWeight)))

	if summaryOnly {
		t := newTable(w, table.Row{"component", "airports", "edges", "total_km"})
		alignRight(t, 1, 2, 3, 4)
		for _, tr := range f.Trees {
			t.AppendRow(table.Row{tr.ComponentID, len(tr.Members), len(tr.Edges), km(tr.TotalWeight)})
		}
		render(t, format)
		return nil
	}

	t := newTable(w, table.Row{"component", "from", "to", "distance_km"})
	alignRight(t, 1, 4)
	for _, tr := range f.Trees {
		for _, e := range tr.Edges {
			t.AppendRow(table.Row{tr.ComponentID, e.A, e.B, km(e.Weight)})
		}
	}
	render(t, format)
	return nil
}
