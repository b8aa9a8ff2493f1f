package main

import (
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"airgraph/pkg/graph"
	"airgraph/pkg/routing"
)

var infoKeys = []string{"Code", "Name", "City", "Country", "Latitude", "Longitude"}

func NewAirportCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "airport CODE"
	cmd.Short = "Show an airport and its direct connections"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runAirport(cmd, v, fs, args[0]) }

	cmd.Flags().Bool("neighbors", false, "Also list directly connected airports")

	return cmd
}

func runAirport(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, code string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	n, ok := g.Vertex(code)
	if !ok {
		return errors.Wrapf(graph.ErrNotFound, "airport %q", graph.NormalizeCode(code))
	}

	w := cmd.OutOrStdout()
	printTitle(w, format, n.String())

	info := n.Info()
	t := newTable(w, table.Row{"field", "value"})
	for _, k := range infoKeys {
		t.AppendRow(table.Row{k, info[k]})
	}
	render(t, format)

	if !v.GetBool("neighbors") {
		return nil
	}
	nbrs := g.Neighbors(n.Code)
	printTitle(w, format, "Direct routes: ", len(nbrs))
	nt := newTable(w, table.Row{"code", "city", "country", "distance_km"})
	alignRight(nt, 4)
	for _, nb := range nbrs {
		m, _ := g.Vertex(nb.Code)
		nt.AppendRow(table.Row{m.Code, m.City, m.Country, km(nb.Weight)})
	}
	render(nt, format)
	return nil
}

func NewNearestCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "nearest"
	cmd.Short = "Find the airport closest to a coordinate"
	cmd.Args = cobra.NoArgs
	cmd.RunE = func(cmd *cobra.Command, _ []string) error { return runNearest(cmd, v, fs) }

	cmd.Flags().Float64("lat", 0, "Latitude in degrees")
	cmd.Flags().Float64("lng", 0, "Longitude in degrees")
	_ = cmd.MarkFlagRequired("lat")
	_ = cmd.MarkFlagRequired("lng")

	return cmd
}

func runNearest(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	res, err := routing.NewEngine(g).Nearest(v.GetFloat64("lat"), v.GetFloat64("lng"))
	if err != nil {
		return err
	}

	t := newTable(cmd.OutOrStdout(), table.Row{"code", "name", "city", "country", "distance_km"})
	alignRight(t, 5)
	t.AppendRow(table.Row{res.Node.Code, res.Node.Name, res.Node.City, res.Node.Country, km(res.DistanceKm)})
	render(t, format)
	return nil
}
