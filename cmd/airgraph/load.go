package main

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"airgraph/pkg/graph"
	"airgraph/pkg/routes"
)

// loadGraph parses the configured route file and builds the airport graph.
func loadGraph(cmd *cobra.Command, v *viper.Viper, fs afero.Fs) (*graph.Graph, error) {
	bbox, err := parseBBox(v.GetString("bbox"))
	if err != nil {
		return nil, err
	}

	start := time.Now()
	res, err := routes.ParseFile(cmd.Context(), fs, v.GetString("routes"), routes.ParseOptions{BBox: bbox})
	if err != nil {
		return nil, err
	}
	g := graph.Build(res)

	slog.Info("Graph built",
		"airports", g.VertexCount(),
		"routes", g.EdgeCount(),
		"rows", res.Rows,
		"skipped", res.Skipped,
		"filtered", res.Filtered,
		"elapsed", time.Since(start).Round(time.Millisecond),
	)
	return g, nil
}

// parseBBox reads "minLat,minLng,maxLat,maxLng". An empty string means no
// filter.
func parseBBox(s string) (routes.BBox, error) {
	if s == "" {
		return routes.BBox{}, nil
	}
	var minLat, minLng, maxLat, maxLng float64
	if _, err := fmt.Sscanf(s, "%f,%f,%f,%f", &minLat, &minLng, &maxLat, &maxLng); err != nil {
		return routes.BBox{}, errors.Wrapf(err, "invalid bbox %q (expected minLat,minLng,maxLat,maxLng)", s)
	}
	if minLat > maxLat || minLng > maxLng {
		return routes.BBox{}, errors.Newf("invalid bbox %q: min exceeds max", s)
	}
	return routes.BBox{MinLat: minLat, MaxLat: maxLat, MinLng: minLng, MaxLng: maxLng}, nil
}
