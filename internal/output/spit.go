// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"encoding/json"
	"fmt"
	"image/color"
	"io"
	"os"
	"reflect"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss/v2"
	"github.com/charmbracelet/lipgloss/v2/table"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tripctl/tripctl/internal/attrs"
	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/filters"
	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/report"
)

// InterfaceToString converts supported primitive or composite values to a
// string. A custom empty value may be provided.
func InterfaceToString(value interface{}, emptyValue ...string) string {
	if len(emptyValue) == 0 {
		emptyValue = []string{""}
	}

	if value == nil || reflect.ValueOf(value).IsZero() {
		return emptyValue[0]
	}

	switch value := value.(type) {
	case string:
		return value
	case int:
		return strconv.Itoa(value)
	case float64:
		// Report values are counts, so we just return an integer.
		return fmt.Sprintf("%.0f", value)
	case bool:
		return strconv.FormatBool(value)
	default:
		jsonBytes, err := json.Marshal(value)
		if err != nil {
			return fmt.Sprintf("%v", value)
		}
		return string(jsonBytes)
	}
}

// SliceDiceSpit projects, sorts, transforms and renders the already filtered
// records according to command flags and attribute specifications. Output is
// written to w, or os.Stdout when w is nil.
func SliceDiceSpit(recs []report.Record,
	attrList attrs.AttrList,
	cmd *cli.Command,
	pres config.Presentation,
	w io.Writer) error {

	// Default to stdout.
	if w == nil {
		w = os.Stdout
	}

	// If raw, just dump the rows as found and go home.
	output := cmd.String("output")
	if output == "raw" {
		return writeRaw(recs, w)
	}

	// Work on a copy so flag driven transforms don't leak into the caller's
	// list.
	attrList = append(attrs.AttrList(nil), attrList...)

	dataset := make([]map[string]interface{}, 0, len(recs))
	for _, rec := range recs {
		row := make(map[string]interface{}, len(attrList))
		for _, attr := range attrList {
			if attr.Key == "*" {
				continue
			}
			row[attr.OutputKey] = rec.Value(attr.Key)
		}
		dataset = append(dataset, row)
	}

	// Sort before transforming so dates order by value and not by their
	// humanized text.
	SortDataset(dataset, cmd.String("sort"))

	if cmd.Bool("local") {
		for a := range attrList {
			attrList[a].TransformSpec += "T"
		}
	}

	// Transform each value in each row.
	for _, row := range dataset {
		for _, attr := range attrList {
			if attr.TransformSpec != "" && attr.Key != "*" {
				row[attr.OutputKey] = attr.Transform(row[attr.OutputKey])
			}
		}
	}

	switch output {
	case "json":
		jsonOutput, err := json.Marshal(visible(dataset, attrList))
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, _ = w.Write(append(jsonOutput, '\n'))
	case "yaml":
		yamlOutput, err := yaml.Marshal(visible(dataset, attrList))
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, _ = w.Write(yamlOutput)
	default:
		TableWriter(dataset, attrList, cmd, pres, w)
	}

	return nil
}

// TableWriter renders the result set in a tabular form honoring color,
// titles and padding options. Output is written to w. If w is nil, os.Stdout
// is used.
func TableWriter(
	resultSet []map[string]interface{},
	attrList attrs.AttrList,
	cmd *cli.Command,
	pres config.Presentation,
	w io.Writer) {

	if w == nil {
		w = os.Stdout
	}

	// We initialize the table styles.
	var (
		headerStyle  = lipgloss.NewStyle().Align(lipgloss.Left).Bold(true)
		cellStyle    = lipgloss.NewStyle().Padding(0, 0).Align(lipgloss.Left)
		evenRowStyle = cellStyle
		oddRowStyle  = cellStyle
	)

	// And then color styles if --color is present.
	colored := cmd.Bool("color")
	if colored {
		headerColor, evenColor, oddColor := getColors(pres)

		headerStyle = headerStyle.Foreground(headerColor)
		evenRowStyle = evenRowStyle.Foreground(evenColor)
		oddRowStyle = oddRowStyle.Foreground(oddColor)
	}

	// We render the header if present.
	if header, ok := cmd.Metadata["header"].(string); ok {
		fmt.Fprintln(w, headerStyle.Render(header))
	}

	if len(resultSet) > 0 {
		fmt.Fprintln(w, buildTable(resultSet, attrList, cmd, pres, colored,
			headerStyle, evenRowStyle, oddRowStyle))
	}

	// We render the footer if present.
	if footer, ok := cmd.Metadata["footer"].(string); ok {
		fmt.Fprintln(w, headerStyle.Render(footer))
	}
}

// buildTable lays the rows out as a borderless lipgloss table. The trips
// column is tagged with its bucket color when colored is set.
func buildTable(
	resultSet []map[string]interface{},
	attrList attrs.AttrList,
	cmd *cli.Command,
	pres config.Presentation,
	colored bool,
	headerStyle, evenRowStyle, oddRowStyle lipgloss.Style) *table.Table {

	tripsCol := -1
	var headers []string
	for _, attr := range attrList {
		if !attr.Include {
			continue
		}
		if attr.Key == report.KeyTrips {
			tripsCol = len(headers)
		}
		headers = append(headers, attr.OutputKey)
	}

	// We build the table rows and remember each row's trip bucket.
	rows := make([][]string, 0, len(resultSet))
	buckets := make([]filters.TripBucket, 0, len(resultSet))
	for _, result := range resultSet {
		row := make([]string, 0, len(headers))
		for _, attr := range attrList {
			if !attr.Include {
				continue
			}
			row = append(row, cellString(result[attr.OutputKey]))
			if attr.Key == report.KeyTrips {
				trips, _ := result[attr.OutputKey].(int)
				buckets = append(buckets, filters.BucketOf(trips))
			}
		}
		rows = append(rows, row)
	}

	pad := pres.Padding
	if cmd.IsSet("padding") {
		pad = cmd.Int("padding")
	}

	log.Tracef("table: rows=%d cols=%d tripsCol=%d pad=%d", len(rows), len(headers), tripsCol, pad)

	t := table.New().
		BorderBottom(false).
		BorderTop(false).
		BorderLeft(false).
		BorderRight(false).
		Border(lipgloss.HiddenBorder()).
		StyleFunc(func(row, col int) lipgloss.Style {
			var style lipgloss.Style
			switch {
			case row == table.HeaderRow:
				style = headerStyle
			case row%2 == 0:
				style = evenRowStyle
			default:
				style = oddRowStyle
			}

			if colored && col == tripsCol && row >= 0 && row < len(buckets) {
				style = style.Foreground(lipgloss.Color(pres.TripColor(int(buckets[row]))))
			}

			if col > 0 {
				style = style.PaddingLeft(pad)
			}

			return style
		}).
		Headers().
		Rows(rows...)

	// We add column headers if titles are enabled.
	if cmd.Bool("titles") {
		// https://github.com/charmbracelet/lipgloss/issues/261
		t = t.Headers(headers...).BorderHeader(false)
	}

	return t
}

// cellString is InterfaceToString with "-" for empty cells. A zero count is
// still a value.
func cellString(value interface{}) string {
	if n, ok := value.(int); ok {
		return strconv.Itoa(n)
	}
	return InterfaceToString(value, "-")
}

// visible drops the columns that are only used for sorting.
func visible(dataset []map[string]interface{}, attrList attrs.AttrList) []map[string]interface{} {
	for _, attr := range attrList {
		if attr.Include {
			continue
		}
		for _, row := range dataset {
			delete(row, attr.OutputKey)
		}
	}
	return dataset
}

// writeRaw writes the rows as they appeared in the source, as a JSON array.
func writeRaw(recs []report.Record, w io.Writer) error {
	raws := make([]string, 0, len(recs))
	for _, rec := range recs {
		raws = append(raws, rec.Raw.Raw)
	}

	_, err := fmt.Fprintf(w, "[%s]\n", strings.Join(raws, ","))
	return err
}

// getColors returns the title, even and odd row colors. Each color comes from
// the presentation when set; otherwise it is selected based on terminal
// background so output is reasonably visible for all(?) terminal themes.
func getColors(pres config.Presentation) (header, even, odd color.Color) {
	isDark := lipgloss.HasDarkBackground(os.Stdin, os.Stdout)

	resolveColor := func(configured string, light string, dark string) color.Color {
		if configured != "" {
			return lipgloss.Color(configured)
		}

		if isDark {
			return lipgloss.Color(dark)
		}
		return lipgloss.Color(light)
	}

	header = resolveColor(pres.TitleColor, "#b08800", "#f6be00")
	even = resolveColor(pres.EvenColor, "#333333", "#ffffff")
	odd = resolveColor(pres.OddColor, "#0088a0", "#00c8f0")

	return
}
