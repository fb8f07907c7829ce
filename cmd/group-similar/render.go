package main

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/goccy/go-json"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/mattn/go-isatty"

	"github.com/TrevorS/groupsimilar"
)

var (
	representativeColors = text.Colors{text.FgGreen, text.Bold}
	matchColors          = text.Colors{text.Faint, text.Italic}
)

const matchIndent = "   "

// lineResult maps a grouping of records back to their original lines,
// dropping clusters without matches unless all is set.
func lineResult(r *groupsimilar.Result[record], all bool) *groupsimilar.Result[string] {
	clusters := r.Clusters
	if !all {
		clusters = r.NonTrivial()
	}
	out := &groupsimilar.Result[string]{
		Clusters: make([]groupsimilar.Cluster[string], 0, len(clusters)),
		Steps:    r.Steps,
	}
	for _, c := range clusters {
		matches := make([]string, len(c.Matches))
		for i, m := range c.Matches {
			matches[i] = m.text
		}
		out.Clusters = append(out.Clusters, groupsimilar.Cluster[string]{
			Representative: c.Representative.text,
			Index:          c.Index,
			Matches:        matches,
			MatchIndices:   c.MatchIndices,
			Dissimilarity:  c.Dissimilarity,
		})
	}
	return out
}

func renderText(w io.Writer, r *groupsimilar.Result[string], colorize bool) error {
	paint := func(c text.Colors, s string) string {
		if !colorize {
			return s
		}
		return c.Sprint(s)
	}

	var b strings.Builder
	for _, c := range r.Clusters {
		b.WriteString(paint(representativeColors, c.Representative))
		b.WriteByte('\n')
		for _, m := range c.Matches {
			b.WriteString(matchIndent)
			b.WriteString(paint(matchColors, m))
			b.WriteByte('\n')
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}

// renderJSON writes the result as one object mapping each representative to
// its matches. Keys are sorted.
func renderJSON(w io.Writer, r *groupsimilar.Result[string]) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(groupsimilar.AsMap(r))
}

func renderGroupTable(w io.Writer, r *groupsimilar.Result[string]) error {
	rows := make([][]string, 0, len(r.Clusters))
	for _, c := range r.Clusters {
		rows = append(rows, []string{
			c.Representative,
			strings.Join(c.Matches, ", "),
			strconv.Itoa(1 + len(c.Matches)),
			formatDissimilarity(c.Dissimilarity),
		})
	}
	out := renderTable(
		[]string{"Representative", "Matches", "Size", "Dissimilarity"},
		rows,
		[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight},
	)
	_, err := fmt.Fprintln(w, out)
	return err
}

func renderSummary(w io.Writer, s groupsimilar.Summary) error {
	rows := [][]string{
		{"Records", strconv.Itoa(s.Records)},
		{"Clusters", strconv.Itoa(s.Clusters)},
		{"Groups", strconv.Itoa(s.Groups)},
		{"Singletons", strconv.Itoa(s.Singletons)},
		{"Largest", strconv.Itoa(s.Largest)},
		{"Mean size", formatDissimilarity(s.MeanSize)},
		{"Std dev size", formatDissimilarity(s.StdDevSize)},
		{"Mean dissimilarity", formatDissimilarity(s.MeanDissimilarity)},
		{"Max dissimilarity", formatDissimilarity(s.MaxDissimilarity)},
	}
	out := renderTable([]string{"Metric", "Value"}, rows, []columnAlignment{alignLeft, alignRight})
	_, err := fmt.Fprintln(w, out)
	return err
}

func formatDissimilarity(v float64) string {
	return strconv.FormatFloat(v, 'f', 4, 64)
}

type columnAlignment int

const (
	alignLeft columnAlignment = iota
	alignRight
)

func renderTable(headers []string, rows [][]string, aligns []columnAlignment) string {
	columns := len(headers)
	if columns == 0 {
		return ""
	}

	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.Style().Format.Header = text.FormatDefault

	header := make(table.Row, columns)
	for i := 0; i < columns; i++ {
		header[i] = headers[i]
	}
	tw.AppendHeader(header)

	for _, row := range rows {
		r := make(table.Row, columns)
		for i := 0; i < columns; i++ {
			if i < len(row) {
				r[i] = row[i]
			}
		}
		tw.AppendRow(r)
	}

	columnConfigs := make([]table.ColumnConfig, 0, columns)
	for i := 0; i < columns; i++ {
		align := text.AlignLeft
		if i < len(aligns) && aligns[i] == alignRight {
			align = text.AlignRight
		}
		columnConfigs = append(columnConfigs, table.ColumnConfig{
			Number:      i + 1,
			Align:       align,
			AlignHeader: text.AlignLeft,
		})
	}
	tw.SetColumnConfigs(columnConfigs)

	return tw.Render()
}

// shouldColorize resolves a color mode against the writer.
func shouldColorize(mode string, writer io.Writer) bool {
	switch mode {
	case colorAlways:
		return true
	case colorNever:
		return false
	}
	return isTerminal(writer)
}

func isTerminal(writer io.Writer) bool {
	file, ok := writer.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
