// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

package dates

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    Date
		wantErr bool
	}{
		{name: "padded", input: "2024-02-01", want: New(2024, time.February, 1)},
		{name: "unpadded", input: "2024-2-1", want: New(2024, time.February, 1)},
		{name: "slashes", input: "2024/03/15", want: New(2024, time.March, 15)},
		{name: "surrounding whitespace", input: "  2024-03-15\t", want: New(2024, time.March, 15)},
		{name: "rfc3339 keeps its own day", input: "2024-03-15T23:30:00+09:00", want: New(2024, time.March, 15)},
		{name: "datetime without zone", input: "2024-03-15T08:00", want: New(2024, time.March, 15)},
		{name: "leap day", input: "2024-02-29", want: New(2024, time.February, 29)},
		{name: "not a leap year", input: "2023-02-29", wantErr: true},
		{name: "day out of range", input: "2024-04-31", wantErr: true},
		{name: "month out of range", input: "2024-13-01", wantErr: true},
		{name: "garbage", input: "not-a-date", wantErr: true},
		{name: "empty", input: "", wantErr: true},
		{name: "blank", input: "   ", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Parse(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCompare(t *testing.T) {
	a := New(2024, time.January, 31)
	b := New(2024, time.February, 1)
	c := New(2025, time.January, 1)

	assert.Equal(t, -1, a.Compare(b))
	assert.Equal(t, 1, b.Compare(a))
	assert.Equal(t, 0, a.Compare(a))
	assert.Equal(t, -1, b.Compare(c))
	assert.True(t, a.Before(b))
	assert.True(t, c.After(b))
	assert.True(t, a.Equal(New(2024, time.January, 31)))
}

// String comparison would order "2024-10-01" before "2024-9-30"; calendar
// comparison must not.
func TestCompare_NotLexicographic(t *testing.T) {
	sept, err := Parse("2024-9-30")
	require.NoError(t, err)
	oct, err := Parse("2024-10-01")
	require.NoError(t, err)

	assert.True(t, sept.Before(oct))
}

func TestBetween(t *testing.T) {
	start := New(2024, time.March, 1)
	end := New(2024, time.March, 31)

	assert.True(t, start.Between(start, end))
	assert.True(t, end.Between(start, end))
	assert.True(t, New(2024, time.March, 15).Between(start, end))
	assert.False(t, New(2024, time.February, 29).Between(start, end))
	assert.False(t, New(2024, time.April, 1).Between(start, end))
	assert.False(t, New(2024, time.March, 15).Between(end, start))
}

func TestString(t *testing.T) {
	assert.Equal(t, "2024-02-01", New(2024, time.February, 1).String())
	assert.Equal(t, "", Date{}.String())
}

func TestNew_Normalizes(t *testing.T) {
	assert.Equal(t, New(2024, time.March, 1), New(2024, time.February, 30))
}

func TestTextRoundTrip(t *testing.T) {
	var d Date
	require.NoError(t, d.UnmarshalText([]byte("2024-2-9")))
	assert.Equal(t, New(2024, time.February, 9), d)

	text, err := d.MarshalText()
	require.NoError(t, err)
	assert.Equal(t, "2024-02-09", string(text))

	require.NoError(t, d.UnmarshalText([]byte("")))
	assert.True(t, d.IsZero())

	assert.Error(t, d.UnmarshalText([]byte("bogus")))
}

func TestTime(t *testing.T) {
	d := New(2024, time.March, 15)
	assert.Equal(t, time.Date(2024, time.March, 15, 0, 0, 0, 0, time.UTC), d.Time(nil))
}
