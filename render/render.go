// SPDX-License-Identifier: MIT

// Package render writes analysis results either as lipgloss-styled tables
// for a terminal or as JSON for scripts.
//
// Values are rounded for display only: 3 decimals for closeness, 5 for
// betweenness, none for degree. JSON output carries the exact values.
package render

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/katalvlaran/socialgraph/analysis"
)

// ErrBadFormat is returned for an unknown output format.
var ErrBadFormat = errors.New("render: unknown output format")

// Format selects the output encoding.
type Format string

const (
	// FormatTable renders styled terminal tables.
	FormatTable Format = "table"
	// FormatJSON renders indented JSON documents.
	FormatJSON Format = "json"
)

// ParseFormat maps a configuration value to a Format; "" means table.
func ParseFormat(name string) (Format, error) {
	switch Format(name) {
	case "", FormatTable:
		return FormatTable, nil
	case FormatJSON:
		return FormatJSON, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrBadFormat, name)
	}
}

// Precision returns the display decimals for a metric name.
func Precision(metric string) int {
	switch metric {
	case analysis.MetricCloseness:
		return 3
	case analysis.MetricBetweenness:
		return 5
	default:
		return 0
	}
}

// Renderer writes results to one writer in one format.
type Renderer struct {
	w      io.Writer
	format Format
}

// New returns a Renderer for w.
func New(w io.Writer, format Format) *Renderer {
	if format == "" {
		format = FormatTable
	}

	return &Renderer{w: w, format: format}
}

// Format reports the configured output format.
func (r *Renderer) Format() Format {
	return r.format
}

func (r *Renderer) json(v any) error {
	enc := json.NewEncoder(r.w)
	enc.SetIndent("", "  ")

	return enc.Encode(v)
}

func (r *Renderer) println(s string) error {
	_, err := fmt.Fprintln(r.w, s)

	return err
}

func newTable(headers ...string) *table.Table {
	return table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(Styles.Border).
		Headers(headers...)
}

func formatValue(v float64, decimals int) string {
	return strconv.FormatFloat(v, 'f', decimals, 64)
}

func joinLabels(labels []int64, sep string) string {
	parts := make([]string, len(labels))
	for i, l := range labels {
		parts[i] = strconv.FormatInt(l, 10)
	}

	return strings.Join(parts, sep)
}

// Ranking writes a whole-graph ranking, lowest value first.
func (r *Renderer) Ranking(rk *analysis.Ranking) error {
	if r.format == FormatJSON {
		return r.json(rk)
	}

	decimals := Precision(rk.Metric)
	rows := make([][]string, len(rk.Scores))
	for i, s := range rk.Scores {
		rows[i] = []string{strconv.Itoa(i + 1), strconv.FormatInt(s.Node, 10), formatValue(s.Value, decimals)}
	}
	t := newTable("#", "NODE", strings.ToUpper(rk.Metric)).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Styles.Header
			case col == 0:
				return Styles.Muted.Padding(0, 1)
			case col == 2:
				return Styles.Number
			default:
				return Styles.Cell
			}
		})

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("%s (%d nodes)", rk.Metric, len(rk.Scores))))
	b.WriteString("\n")
	b.WriteString(t.String())
	if len(rk.Undefined) > 0 {
		b.WriteString("\n")
		b.WriteString(Styles.Muted.Render("undefined: " + joinLabels(rk.Undefined, ", ")))
	}

	return r.println(b.String())
}

// Paths writes every geodesic of a pair.
func (r *Renderer) Paths(rep *analysis.PathReport) error {
	if r.format == FormatJSON {
		return r.json(rep)
	}

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("paths %d → %d", rep.Start, rep.End)))
	b.WriteString("\n")
	if rep.Length < 0 {
		b.WriteString(Styles.Fail.Render("unreachable"))
		return r.println(b.String())
	}

	rows := make([][]string, len(rep.Paths))
	for i, p := range rep.Paths {
		rows[i] = []string{strconv.Itoa(i + 1), joinLabels(p, " → ")}
	}
	t := newTable("#", fmt.Sprintf("PATH (%d hops)", rep.Length)).
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == table.HeaderRow {
				return Styles.Header
			}
			return Styles.Cell
		})
	b.WriteString(t.String())
	if rep.Truncated {
		b.WriteString("\n")
		b.WriteString(Styles.Warn.Render(fmt.Sprintf("truncated after %d paths", len(rep.Paths))))
	}

	return r.println(b.String())
}

// Distances writes the hop distance to every reachable node.
func (r *Renderer) Distances(rep *analysis.DistanceReport) error {
	if r.format == FormatJSON {
		return r.json(rep)
	}

	rows := make([][]string, len(rep.Distances))
	for i, d := range rep.Distances {
		rows[i] = []string{strconv.FormatInt(d.Node, 10), strconv.Itoa(d.Hops)}
	}
	t := newTable("NODE", "HOPS").
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return Styles.Header
			case col == 1:
				return Styles.Number
			default:
				return Styles.Cell
			}
		})

	var b strings.Builder
	b.WriteString(Styles.Title.Render(fmt.Sprintf("distances from %d", rep.Source)))
	b.WriteString("\n")
	b.WriteString(t.String())
	if rep.Closeness != nil {
		b.WriteString("\ncloseness: ")
		b.WriteString(formatValue(*rep.Closeness, Precision(analysis.MetricCloseness)))
	}
	if len(rep.Unreachable) > 0 {
		b.WriteString("\n")
		b.WriteString(Styles.Muted.Render("unreachable: " + joinLabels(rep.Unreachable, ", ")))
	}

	return r.println(b.String())
}

// Search writes the outcome and visit order of a reachability search.
func (r *Renderer) Search(rep *analysis.SearchReport, trace bool) error {
	if r.format == FormatJSON {
		if !trace {
			out := *rep
			out.Visited = nil
			return r.json(out)
		}
		return r.json(rep)
	}

	verdict := Styles.Fail.Render("not found")
	if rep.Found {
		verdict = Styles.OK.Render("found")
	}
	line := fmt.Sprintf("search %d from %d: %s (%d visited)", rep.Target, rep.Root, verdict, len(rep.Visited))
	if trace {
		line += "\n" + Styles.Muted.Render("order: "+joinLabels(rep.Visited, " "))
	}

	return r.println(line)
}

// Triple writes one betweenness fraction.
func (r *Renderer) Triple(rep *analysis.TripleReport) error {
	if r.format == FormatJSON {
		return r.json(rep)
	}

	return r.println(fmt.Sprintf("betweenness of %d on %d → %d: %s",
		rep.Via, rep.Start, rep.End, formatValue(rep.Value, Precision(analysis.MetricBetweenness))))
}

// Error writes a failed operation without stopping the caller.
func (r *Renderer) Error(err error) error {
	if r.format == FormatJSON {
		return r.json(map[string]string{"error": err.Error()})
	}

	return r.println(Styles.Fail.Render("error: ") + err.Error())
}
