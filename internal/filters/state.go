// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package filters

import (
	"errors"
	"fmt"
	"strings"

	"github.com/tripctl/tripctl/internal/dates"
)

// ErrTripCountInvalid is returned by ParseTripCount for selectors other than
// all, 0, 1 or 2.
var ErrTripCountInvalid = errors.New("invalid trip count selector")

// TripCount selects rows by trip bucket. The zero value selects all rows.
type TripCount int

const (
	TripCountAll TripCount = iota
	TripCountZero
	TripCountOne
	TripCountTwo
)

// ParseTripCount converts a selector as typed by a user. "", "all", "0", "1"
// and "2" are accepted, ignoring case and surrounding whitespace.
func ParseTripCount(s string) (TripCount, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "all":
		return TripCountAll, nil
	case "0":
		return TripCountZero, nil
	case "1":
		return TripCountOne, nil
	case "2":
		return TripCountTwo, nil
	}
	return TripCountAll, fmt.Errorf("%w: %q (want all, 0, 1 or 2)", ErrTripCountInvalid, s)
}

// Bucket returns the bucket selected by tc. The second result is false for
// TripCountAll, which selects no single bucket.
func (tc TripCount) Bucket() (TripBucket, bool) {
	switch tc {
	case TripCountZero:
		return 0, true
	case TripCountOne:
		return 1, true
	case TripCountTwo:
		return 2, true
	}
	return 0, false
}

func (tc TripCount) String() string {
	if b, ok := tc.Bucket(); ok {
		return b.String()
	}
	return "all"
}

// MarshalText implements encoding.TextMarshaler.
func (tc TripCount) MarshalText() ([]byte, error) {
	return []byte(tc.String()), nil
}

// TripBucket is a row's trip count clamped to 0, 1, 2 or 3 (meaning 3+).
type TripBucket int

// MaxTripBucket is the open-ended "3+" bucket.
const MaxTripBucket TripBucket = 3

// BucketOf clamps a raw trip count into a TripBucket. Negative counts land in
// bucket 0.
func BucketOf(trips int) TripBucket {
	switch {
	case trips <= 0:
		return 0
	case trips >= int(MaxTripBucket):
		return MaxTripBucket
	}
	return TripBucket(trips)
}

func (b TripBucket) String() string {
	if b >= MaxTripBucket {
		return "3+"
	}
	return fmt.Sprintf("%d", int(b))
}

// DateInput is a date criterion as entered by a user, parsed once. Raw is kept
// so that activity checks agree with what the user typed, even when it does
// not parse.
type DateInput struct {
	Raw   string
	Date  dates.Date
	Valid bool
}

// ParseDateInput parses s. Blank input yields an inactive DateInput;
// unparseable input yields an active but invalid one.
func ParseDateInput(s string) DateInput {
	in := DateInput{Raw: s}
	if !in.Active() {
		return in
	}
	if d, err := dates.Parse(s); err == nil {
		in.Date = d
		in.Valid = true
	}
	return in
}

// DateInputOf wraps an already-parsed date.
func DateInputOf(d dates.Date) DateInput {
	return DateInput{Raw: d.String(), Date: d, Valid: !d.IsZero()}
}

// Active reports whether the user entered anything at all.
func (in DateInput) Active() bool {
	return strings.TrimSpace(in.Raw) != ""
}

// usable reports whether the input is both active and parseable.
func (in DateInput) usable() bool {
	return in.Active() && in.Valid
}

// FilterState is a snapshot of every filter criterion for one evaluation
// pass. It is a plain value; evaluation never modifies it.
type FilterState struct {
	SpecificDate DateInput `json:"specificDate" yaml:"specificDate"`
	RangeStart   DateInput `json:"rangeStart" yaml:"rangeStart"`
	RangeEnd     DateInput `json:"rangeEnd" yaml:"rangeEnd"`
	Zone         string    `json:"zone" yaml:"zone"`
	TripCount    TripCount `json:"tripCount" yaml:"tripCount"`
}

// NewFilterState builds a FilterState from raw strings, parsing each date
// once.
func NewFilterState(specific, start, end, zone string, trips TripCount) FilterState {
	return FilterState{
		SpecificDate: ParseDateInput(specific),
		RangeStart:   ParseDateInput(start),
		RangeEnd:     ParseDateInput(end),
		Zone:         zone,
		TripCount:    trips,
	}
}

// CategoryFlags enables or disables optional filter categories for a view.
type CategoryFlags struct {
	TripCount bool `json:"tripCount" yaml:"tripCount"`
}

// DefaultCategoryFlags enables every optional category.
func DefaultCategoryFlags() CategoryFlags {
	return CategoryFlags{TripCount: true}
}

// Row is the view of a data row needed for filtering.
type Row interface {
	RowDate() dates.Date
	RowZone() string
	TripsBucket() TripBucket
}
