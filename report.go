package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
)

// WriteReport prints one aggregation as a two-column table, newest week
// first. Partial weeks carry a * and a footnote so a truncated count is
// never mistaken for a quiet week.
func WriteReport(w io.Writer, agg Aggregation, results []WeeklyResult) {
	title := color.New(color.Bold)
	fmt.Fprintf(w, "%s\n\n", title.Sprintf("%s for channel %s", agg.Metric, agg.ChannelID))

	table := tablewriter.NewTable(w,
		tablewriter.WithConfig(tablewriter.Config{
			Header: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoFormat: tw.Off},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
			Row: tw.CellConfig{
				Formatting: tw.CellFormatting{AutoWrap: tw.WrapNone},
				Alignment:  tw.CellAlignment{Global: tw.AlignLeft},
			},
		}),
		tablewriter.WithRendition(tw.Rendition{
			Borders: tw.BorderNone,
			Settings: tw.Settings{
				Separators: tw.Separators{ShowHeader: tw.Off},
			},
		}),
	)
	table.Header([]string{"Week", agg.Metric})

	partial := false
	rows := make([][]string, 0, len(results))
	for _, res := range results {
		count := strconv.Itoa(res.Count)
		if res.Partial {
			count += "*"
			partial = true
		}
		rows = append(rows, []string{res.Window.String(), count})
	}
	table.Bulk(rows)
	table.Render()

	if partial {
		note := color.New(color.Faint)
		fmt.Fprintf(w, "%s\n", note.Sprint("* incomplete week: pagination stopped early, count is a lower bound"))
	}
	fmt.Fprintln(w)
}
