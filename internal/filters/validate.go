// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"strings"

	"github.com/tripctl/tripctl/internal/dates"
)

// IsValidDate reports whether s is blank or a parseable calendar date. Blank
// is valid because every date criterion is optional.
func IsValidDate(s string) bool {
	if strings.TrimSpace(s) == "" {
		return true
	}
	_, err := dates.Parse(s)
	return err == nil
}

// ValidateDateRange reports whether start and end form an acceptable range.
//
// A range with either side blank is still being entered and is valid. A
// malformed side is invalid. A complete range is valid only when start is on
// or before end.
func ValidateDateRange(start, end string) bool {
	if strings.TrimSpace(start) == "" || strings.TrimSpace(end) == "" {
		return true
	}
	if !IsValidDate(start) || !IsValidDate(end) {
		return false
	}

	s, _ := dates.Parse(start)
	e, _ := dates.Parse(end)
	return !s.After(e)
}

// ValidateState applies ValidateDateRange to a FilterState.
func ValidateState(state FilterState) bool {
	return ValidateDateRange(state.RangeStart.Raw, state.RangeEnd.Raw)
}

// HasAnyActiveFilters reports whether any criterion in state would be applied.
// A lone range bound counts as active even though it cannot match by itself.
// The trip count selector only counts when its category is enabled.
func HasAnyActiveFilters(state FilterState, flags CategoryFlags) bool {
	switch {
	case state.SpecificDate.Active():
		return true
	case hasRangeFilter(state):
		return true
	case strings.TrimSpace(state.Zone) != "":
		return true
	case flags.TripCount && state.TripCount != TripCountAll:
		return true
	}
	return false
}

// HasBothDateFilters reports whether a specific date and a range (either
// bound) are both active, meaning OR logic is in play for the date category.
func HasBothDateFilters(state FilterState) bool {
	return state.SpecificDate.Active() && hasRangeFilter(state)
}

func hasRangeFilter(state FilterState) bool {
	return state.RangeStart.Active() || state.RangeEnd.Active()
}
