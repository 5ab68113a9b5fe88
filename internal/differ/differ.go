// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package differ

import (
	"fmt"
	"io"
	"os"

	"github.com/yudai/gojsondiff"
	"github.com/yudai/gojsondiff/formatter"

	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/report"
)

// Identical is printed when the filters removed nothing.
const Identical = "No rows were filtered out."

// Diff writes the delta from full to kept to w (stdout if nil). Rows are
// keyed by ID so removed rows show up by name; when IDs are missing or
// repeated the row position is used instead.
func Diff(w io.Writer, full, kept []report.Record, coloring bool) error {
	if w == nil {
		w = os.Stdout
	}

	log.Debugf("diff: full=%d kept=%d", len(full), len(kept))

	keys := rowKeys(full)
	left := make(map[string]interface{}, len(full))
	index := make(map[int]string, len(full))
	for i, rec := range full {
		left[keys[i]] = rec.Raw.Value()
		index[rec.Pos] = keys[i]
	}

	right := make(map[string]interface{}, len(kept))
	for _, rec := range kept {
		key, ok := index[rec.Pos]
		if !ok {
			return fmt.Errorf("kept row %q is not in the full row set", rec.ID)
		}
		right[key] = rec.Raw.Value()
	}

	delta := gojsondiff.New().CompareObjects(left, right)
	if !delta.Modified() {
		fmt.Fprintln(w, Identical)
		return nil
	}

	config := formatter.AsciiFormatterConfig{
		ShowArrayIndex: false,
		Coloring:       coloring,
	}

	diffString, err := formatter.NewAsciiFormatter(left, config).Format(delta)
	if err != nil {
		return fmt.Errorf("failed to format diff: %w", err)
	}

	fmt.Fprint(w, diffString)
	return nil
}

// rowKeys returns the object key of each row.
func rowKeys(recs []report.Record) []string {
	seen := make(map[string]int, len(recs))
	for _, rec := range recs {
		seen[rec.ID]++
	}

	keys := make([]string, len(recs))
	for i, rec := range recs {
		if rec.ID != "" && seen[rec.ID] == 1 {
			keys[i] = rec.ID
		} else {
			keys[i] = fmt.Sprintf("#%d", i)
		}
	}
	return keys
}
