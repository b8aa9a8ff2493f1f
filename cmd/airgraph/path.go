package main

import (
	"github.com/cockroachdb/errors"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"airgraph/pkg/geo"
	"airgraph/pkg/graph"
	"airgraph/pkg/routing"
)

func NewPathCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "path FROM TO"
	cmd.Aliases = []string{"route"}
	cmd.Short = "Find the shortest route between two airports"
	cmd.Args = cobra.ExactArgs(2)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runPath(cmd, v, fs, args[0], args[1]) }
	return cmd
}

func runPath(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, from, to string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	path, dist := routing.NewEngine(g).ShortestPath(from, to)
	if path == nil {
		return errors.Newf("no route from %s to %s", graph.NormalizeCode(from), graph.NormalizeCode(to))
	}

	w := cmd.OutOrStdout()
	printTitle(w, format, path[0].String(), " -> ", path[len(path)-1].String(), ": ", km(dist), " km")

	t := newTable(w, table.Row{"#", "code", "name", "city", "country", "leg_km", "total_km"})
	alignRight(t, 1, 6, 7)
	total := 0.0
	for i, n := range path {
		leg := 0.0
		if i > 0 {
			prev := path[i-1]
			leg = geo.Haversine(prev.Lat, prev.Lon, n.Lat, n.Lon)
		}
		total += leg
		t.AppendRow(table.Row{i, n.Code, n.Name, n.City, n.Country, km(leg), km(total)})
	}
	render(t, format)
	return nil
}

func NewFarthestCommand(v *viper.Viper, fs afero.Fs) *cobra.Command {
	cmd := &cobra.Command{}
	cmd.Use = "farthest CODE"
	cmd.Short = "List the airports farthest from CODE by shortest route"
	cmd.Args = cobra.ExactArgs(1)
	cmd.RunE = func(cmd *cobra.Command, args []string) error { return runFarthest(cmd, v, fs, args[0]) }

	cmd.Flags().IntP("top", "k", routing.DefaultFarthestK, "Number of airports to list")

	return cmd
}

func runFarthest(cmd *cobra.Command, v *viper.Viper, fs afero.Fs, code string) error {
	format := v.GetString("format")
	if err := checkFormat(format); err != nil {
		return err
	}
	g, err := loadGraph(cmd, v, fs)
	if err != nil {
		return err
	}

	ranked, err := routing.NewEngine(g).Farthest(code, v.GetInt("top"))
	if err != nil {
		return err
	}

	w := cmd.OutOrStdout()
	src, _ := g.Vertex(code)
	printTitle(w, format, "Farthest from ", src.String())

	t := newTable(w, table.Row{"#", "code", "name", "city", "country", "distance_km"})
	alignRight(t, 1, 6)
	for i, r := range ranked {
		t.AppendRow(table.Row{i + 1, r.Node.Code, r.Node.Name, r.Node.City, r.Node.Country, km(r.Distance)})
	}
	render(t, format)
	return nil
}
