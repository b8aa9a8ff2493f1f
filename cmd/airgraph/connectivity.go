package main

import (
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"airgraph/pkg/graph"
)

func NewConnectivityCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "connectivity"
	cmd.Short = "Report whether every airport is reachable from every other"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runConnectivity(cmd, v, fs) }
	return cmd
}

func runConnectivity(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	comps := graph.Components(g)
	largest := graph.LargestComponent(g).Size

	printTitle(cmd.OutOrStdout(), format, "Connectivity")
	t := newTable(cmd.OutOrStdout(), table.Row{"airports", "routes", "components", "largest", "connected"})
	t.AppendRow(table.Row{g.VertexCount(), g.EdgeCount(), len(comps), largest, len(comps) == 1})
	render(t, format)
	return nil
}

func NewComponentsCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "components"
	cmd.Aliases = []string{"cc"}
	cmd.Short = "List connected components in discovery order"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runComponents(cmd, v, fs) }

	cmd.Flags().Int("limit", 0, "Print at most `n` components (0 prints all)")
	cmd.Flags().Int("min-size", 1, "Skip components with fewer airports")

	return cmd
}

func runComponents(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	limit := v.GetInt("limit")
	minSize := v.GetInt("min-size")

	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	comps := graph.Components(g)
	printTitle(cmd.OutOrStdout(), format, "Components: ", len(comps))

	t := newTable(cmd.OutOrStdout(), table.Row{"#", "size", "airports"})
	alignRight(t, 1, 2)
	n := 0
	for _, c := range comps {
		if c.Size < minSize {
			continue
		}
		if limit > 0 && n >= limit {
			break
		}
		t.AppendRow(table.Row{strconv.Itoa(c.ID), c.Size, strings.Join(c.Codes, " ")})
		n++
	}
	render(t, format)
	return nil
}
