// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strings"

	"github.com/tripctl/tripctl/internal/dates"
)

// ShouldIncludeRow returns true if row passes every enabled filter category
// in state. Categories combine with AND; within the date category the
// specific date and the range combine with OR.
func ShouldIncludeRow(row Row, state FilterState, flags CategoryFlags) bool {
	if !ApplyDateFiltering(row.RowDate(), state.SpecificDate, state.RangeStart, state.RangeEnd) {
		return false
	}

	if !ApplyZoneFiltering(row.RowZone(), state.Zone) {
		return false
	}

	// A disabled category is ignored whatever its selector says.
	if flags.TripCount && !ApplyTripCountFiltering(row.TripsBucket(), state.TripCount) {
		return false
	}

	return true
}

// ApplyDateFiltering returns true if rowDate satisfies the date category.
//
// With no date criteria the row passes. Otherwise the row passes when it is
// the specific date or falls inside the inclusive [start, end] range. The
// range only takes part once both bounds are entered; a lone bound behaves
// as if it were blank. Criteria that were entered but do not parse never
// match.
func ApplyDateFiltering(rowDate dates.Date, specific, start, end DateInput) bool {
	rangeSet := start.Active() && end.Active()

	// No date constraint, so go home early.
	if !specific.Active() && !rangeSet {
		return true
	}

	specificMatch := specific.usable() && rowDate.Equal(specific.Date)

	rangeMatch := false
	if rangeSet && start.usable() && end.usable() {
		rangeMatch = rowDate.Between(start.Date, end.Date)
	}

	return specificMatch || rangeMatch
}

// ApplyZoneFiltering returns true if selected is blank or exactly equal to
// rowZone.
func ApplyZoneFiltering(rowZone, selected string) bool {
	if strings.TrimSpace(selected) == "" {
		return true
	}
	return rowZone == selected
}

// ApplyTripCountFiltering returns true if selector is TripCountAll or names
// exactly bucket. There is no 3+ selector, so bucket 3+ rows only pass under
// TripCountAll.
func ApplyTripCountFiltering(bucket TripBucket, selector TripCount) bool {
	want, ok := selector.Bucket()
	if !ok {
		return true
	}
	return bucket == want
}

// FilterRows returns the rows that pass ShouldIncludeRow, in source order.
// The input slice is not modified.
func FilterRows[R Row](rows []R, state FilterState, flags CategoryFlags) []R {
	// Don't prealloc; a narrow filter keeps only a handful of rows.
	//nolint:prealloc
	var kept []R

	for _, row := range rows {
		if ShouldIncludeRow(row, state, flags) {
			kept = append(kept, row)
		}
	}

	return kept
}
