package main

import (
	"fmt"
	"io"
	"slices"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
)

var formats = []string{"table", "md", "csv", "tsv", "html"}

func checkFormat(format string) error {
	if !slices.Contains(formats, format) {
		return errors.Newf("unknown format: %s", format)
	}
	return nil
}

func newTable(w io.Writer, header table.Row) table.Writer {
	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.AppendHeader(header)
	return t
}

// alignRight right-aligns the given 1-based columns in table output.
func alignRight(t table.Writer, cols ...int) {
	cfgs := make([]table.ColumnConfig, len(cols))
	for i, c := range cols {
		cfgs[i] = table.ColumnConfig{Number: c, Align: text.AlignRight}
	}
	t.SetColumnConfigs(cfgs)
}

func render(t table.Writer, format string) {
	switch format {
	case "table":
		t.Render()
	case "md":
		t.RenderMarkdown()
	case "csv":
		t.RenderCSV()
	case "tsv":
		t.RenderTSV()
	case "html":
		t.RenderHTML()
	default:
		t.Render()
	}
}

// printTitle writes a colored heading. Machine-readable formats get none.
func printTitle(w io.Writer, format string, a ...any) {
	if format != "table" {
		return
	}
	fmt.Fprintln(w, color.CyanString(fmt.Sprint(a...)))
}

func km(d float64) string {
	return fmt.Sprintf("%.2f", d)
}
