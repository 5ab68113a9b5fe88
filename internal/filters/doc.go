// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package filters decides which trip report rows belong in a filtered view.
//
// A FilterState carries up to five independent criteria: a specific date, a
// date range (start and end), a zone, and a trip count selector. Unset fields
// impose no constraint. The criteria are grouped into three categories:
//
//   - date: specific date OR date range
//   - zone: exact, case-sensitive zone match
//   - trip count: row trip bucket equals the selector (0, 1 or 2)
//
// Categories combine with AND, so a row is included when
//
//	(specificMatch || rangeMatch) && zoneMatch && tripMatch
//
// The trip count category can be switched off per view with CategoryFlags,
// in which case its selector is ignored entirely.
//
// Range bounds are inclusive. A range needs both bounds before it matches
// anything; a lone bound is treated as if it were blank.
//
// Validation:
//
// IsValidDate and ValidateDateRange check raw user input without blocking
// evaluation. An empty field is valid, a malformed one is not, and a complete
// range whose start is after its end is not. Evaluation proceeds regardless;
// an unparseable date simply never matches.
//
// Nothing in this package keeps state between calls. ShouldIncludeRow may be
// called concurrently, and FilterRowsParallel spreads evaluation over a pool
// of goroutines while preserving source order.
package filters
