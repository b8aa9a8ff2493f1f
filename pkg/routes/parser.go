package routes

import (
	"context"
	"encoding/csv"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/spf13/afero"

	"airgraph/pkg/geo"
)

// ErrMissingColumn is returned when the header lacks a required column.
var ErrMissingColumn = errors.New("missing required column")

// Column names of the route dataset.
const (
	ColSourceCode    = "Source Airport Code"
	ColSourceName    = "Source Airport Name"
	ColSourceCity    = "Source Airport City"
	ColSourceCountry = "Source Airport Country"
	ColSourceLat     = "Source Airport Latitude"
	ColSourceLon     = "Source Airport Longitude"
	ColDestCode      = "Destination Airport Code"
	ColDestName      = "Destination Airport Name"
	ColDestCity      = "Destination Airport City"
	ColDestCountry   = "Destination Airport Country"
	ColDestLat       = "Destination Airport Latitude"
	ColDestLon       = "Destination Airport Longitude"
)

var requiredColumns = []string{
	ColSourceCode, ColSourceName, ColSourceCity, ColSourceCountry, ColSourceLat, ColSourceLon,
	ColDestCode, ColDestName, ColDestCity, ColDestCountry, ColDestLat, ColDestLon,
}

// Airport is one endpoint of a route record, already trimmed and with an
// upper-cased code.
type Airport struct {
	Code    string
	Name    string
	City    string
	Country string
	Lat     float64
	Lon     float64
}

// RawRoute is a validated route record.
type RawRoute struct {
	Source Airport
	Dest   Airport
}

// ParseResult holds the output of parsing a route file.
type ParseResult struct {
	Routes   []RawRoute
	Rows     int // data rows read, excluding the header
	Skipped  int // malformed rows
	Filtered int // rows dropped by the bounding box
}

// BBox defines a geographic bounding box for filtering.
// If non-zero, only routes with both endpoints inside the box are kept.
type BBox struct {
	MinLat, MaxLat float64
	MinLng, MaxLng float64
}

// IsZero returns true if the bbox is unset.
func (b BBox) IsZero() bool {
	return b.MinLat == 0 && b.MaxLat == 0 && b.MinLng == 0 && b.MaxLng == 0
}

// Contains returns true if the point is inside the bounding box.
func (b BBox) Contains(lat, lng float64) bool {
	return lat >= b.MinLat && lat <= b.MaxLat && lng >= b.MinLng && lng <= b.MaxLng
}

// ParseOptions configures the route parser.
type ParseOptions struct {
	BBox  BBox // if non-zero, filter routes to this bounding box
	Comma rune // field delimiter, ',' when zero
}

// ParseFile opens path on fs and parses it.
func ParseFile(ctx context.Context, fs afero.Fs, path string, opts ...ParseOptions) (*ParseResult, error) {
	f, err := fs.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open routes file %s", path)
	}
	defer f.Close()

	slog.Info("Loading routes", "path", path)
	return Parse(ctx, f, opts...)
}

// Parse reads delimited route records with a header row. Rows with a blank
// code or a missing, non-numeric or out-of-range coordinate are skipped.
func Parse(ctx context.Context, r io.Reader, opts ...ParseOptions) (*ParseResult, error) {
	var opt ParseOptions
	if len(opts) > 0 {
		opt = opts[0]
	}
	useBBox := !opt.BBox.IsZero()

	cr := csv.NewReader(r)
	if opt.Comma != 0 {
		cr.Comma = opt.Comma
	}
	cr.FieldsPerRecord = -1
	cr.ReuseRecord = true

	header, err := cr.Read()
	if err == io.EOF {
		return &ParseResult{}, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "read header")
	}
	cols, err := indexColumns(header)
	if err != nil {
		return nil, err
	}

	res := &ParseResult{}
	for {
		if res.Rows%1000 == 0 {
			if err := ctx.Err(); err != nil {
				return nil, err
			}
		}

		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				res.Rows++
				res.Skipped++
				slog.Debug("Skipping unreadable row", "line", perr.Line, "err", perr.Err)
				continue
			}
			return nil, errors.Wrap(err, "read routes")
		}
		res.Rows++

		src, srcOk := cols.airport(rec, cols.src)
		dst, dstOk := cols.airport(rec, cols.dst)
		if !srcOk || !dstOk {
			res.Skipped++
			slog.Debug("Skipping malformed row", "row", res.Rows)
			continue
		}

		if useBBox && (!opt.BBox.Contains(src.Lat, src.Lon) || !opt.BBox.Contains(dst.Lat, dst.Lon)) {
			res.Filtered++
			continue
		}

		res.Routes = append(res.Routes, RawRoute{Source: src, Dest: dst})
	}

	if res.Skipped > 0 {
		slog.Warn("Skipped malformed route rows", "count", res.Skipped)
	}
	if res.Filtered > 0 {
		slog.Info("Filtered routes outside bounding box", "count", res.Filtered)
	}
	slog.Info("Parsed routes", "rows", res.Rows, "routes", len(res.Routes))

	return res, nil
}

// endpointCols holds column indices for one side of a route.
type endpointCols struct {
	code, name, city, country, lat, lon int
}

type columnIndex struct {
	src, dst endpointCols
}

func indexColumns(header []string) (*columnIndex, error) {
	pos := make(map[string]int, len(header))
	for i, h := range header {
		// Strip a UTF-8 BOM some spreadsheet exports put on the first cell.
		h = strings.TrimPrefix(strings.TrimSpace(h), "\ufeff")
		pos[h] = i
	}
	for _, c := range requiredColumns {
		if _, ok := pos[c]; !ok {
			return nil, errors.Wrapf(ErrMissingColumn, "%q", c)
		}
	}
	return &columnIndex{
		src: endpointCols{
			code: pos[ColSourceCode], name: pos[ColSourceName], city: pos[ColSourceCity],
			country: pos[ColSourceCountry], lat: pos[ColSourceLat], lon: pos[ColSourceLon],
		},
		dst: endpointCols{
			code: pos[ColDestCode], name: pos[ColDestName], city: pos[ColDestCity],
			country: pos[ColDestCountry], lat: pos[ColDestLat], lon: pos[ColDestLon],
		},
	}, nil
}

func (ci *columnIndex) airport(rec []string, ec endpointCols) (Airport, bool) {
	field := func(i int) string {
		if i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}

	code := strings.ToUpper(field(ec.code))
	if code == "" {
		return Airport{}, false
	}
	lat, err := strconv.ParseFloat(field(ec.lat), 64)
	if err != nil {
		return Airport{}, false
	}
	lon, err := strconv.ParseFloat(field(ec.lon), 64)
	if err != nil {
		return Airport{}, false
	}
	if !geo.ValidCoord(lat, lon) {
		return Airport{}, false
	}

	return Airport{
		Code:    code,
		Name:    field(ec.name),
		City:    field(ec.city),
		Country: field(ec.country),
		Lat:     lat,
		Lon:     lon,
	}, true
}
