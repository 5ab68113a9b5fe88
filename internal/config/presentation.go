// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package config

// Presentation holds the display settings for table output. It is built once
// per command from the config and passed by value to the output layer; the
// filter engine never sees it.
type Presentation struct {
	// Padding is the left padding of every column after the first.
	Padding int
	// Colors for the title row and alternating body rows. Empty means pick a
	// default suited to the terminal background.
	TitleColor string
	EvenColor  string
	OddColor   string
	// TripColors tags the trips column per bucket: index 0, 1, 2 and 3 (3+).
	TripColors [4]string
}

// DefaultTripColors are the bucket tag colors used when the config has none.
var DefaultTripColors = [4]string{"#8a8a8a", "#2e9d4f", "#d18f00", "#c7372f"}

// LoadPresentation reads the colors.* and padding keys from the config.
// Missing keys fall back to defaults; a bad value is treated as missing.
func LoadPresentation() Presentation {
	p := Presentation{TripColors: DefaultTripColors}

	if n, err := GetInt("padding", 2); err == nil && n >= 0 {
		p.Padding = n
	} else {
		p.Padding = 2
	}
	p.TitleColor, _ = GetString("colors.title", "")
	p.EvenColor, _ = GetString("colors.even", "")
	p.OddColor, _ = GetString("colors.odd", "")

	for i, key := range []string{"0", "1", "2", "3"} {
		if c, err := GetString("colors.trips." + key); err == nil && c != "" {
			p.TripColors[i] = c
		}
	}

	return p
}

// TripColor returns the tag color for bucket. Buckets past 3 share the 3+
// color.
func (p Presentation) TripColor(bucket int) string {
	switch {
	case bucket < 0:
		bucket = 0
	case bucket > 3:
		bucket = 3
	}
	return p.TripColors[bucket]
}
