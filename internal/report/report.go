// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package report

import (
	"errors"
	"fmt"

	"github.com/tidwall/gjson"

	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/dates"
	"github.com/tripctl/tripctl/internal/driller"
	"github.com/tripctl/tripctl/internal/filters"
	"github.com/tripctl/tripctl/internal/log"
)

var (
	// ErrNotJSON is returned when the document is not valid JSON.
	ErrNotJSON = errors.New("report is not valid JSON")
	// ErrNotArray is returned when the rows value is not a JSON array.
	ErrNotArray = errors.New("report rows are not a JSON array")
)

// Canonical column names. Attrs using these read the decoded Record fields;
// any other key is drilled out of the raw row.
const (
	KeyID    = "id"
	KeyDate  = "date"
	KeyZone  = "zone"
	KeyTrips = "trips"
)

// Fields holds the driller paths of each row field. Root, when set, is the
// path of the rows array inside the document.
type Fields struct {
	Root  string
	ID    string
	Date  string
	Zone  string
	Trips string
}

// DefaultFields expects a top level array of flat row objects.
func DefaultFields() Fields {
	return Fields{
		ID:    KeyID,
		Date:  KeyDate,
		Zone:  KeyZone,
		Trips: KeyTrips,
	}
}

// FieldsFromConfig overlays the fields.* config keys on DefaultFields.
func FieldsFromConfig() Fields {
	f := DefaultFields()
	f.Root, _ = config.GetString("fields.root", f.Root)
	f.ID, _ = config.GetString("fields.id", f.ID)
	f.Date, _ = config.GetString("fields.date", f.Date)
	f.Zone, _ = config.GetString("fields.zone", f.Zone)
	f.Trips, _ = config.GetString("fields.trips", f.Trips)
	return f
}

// Record is one report row.
type Record struct {
	ID    string
	Date  dates.Date
	Zone  string
	Trips int
	// Pos is the row's index in the source array.
	Pos int
	// Raw is the row object as found in the document.
	Raw gjson.Result
}

// RowDate implements filters.Row.
func (r Record) RowDate() dates.Date { return r.Date }

// RowZone implements filters.Row.
func (r Record) RowZone() string { return r.Zone }

// TripsBucket implements filters.Row.
func (r Record) TripsBucket() filters.TripBucket { return filters.BucketOf(r.Trips) }

// Value returns the output value of key for this row. Canonical keys come
// from the decoded fields; anything else is drilled out of Raw.
func (r Record) Value(key string) interface{} {
	switch key {
	case KeyID:
		return r.ID
	case KeyDate:
		return r.Date.String()
	case KeyZone:
		return r.Zone
	case KeyTrips:
		return r.Trips
	default:
		return driller.Drill(r.Raw, key).Value()
	}
}

// Parse decodes doc into Records. A row whose date cannot be parsed is kept
// with a zero Date so it never matches a date filter; such rows are counted
// and reported once as a warning.
func Parse(doc []byte, fields Fields) ([]Record, error) {
	if !gjson.ValidBytes(doc) {
		return nil, ErrNotJSON
	}

	rows := gjson.ParseBytes(doc)
	if fields.Root != "" {
		rows = driller.Drill(rows, fields.Root+"[*]")
	}
	if !rows.IsArray() {
		return nil, fmt.Errorf("%w: root=%q", ErrNotArray, fields.Root)
	}

	elements := rows.Array()
	records := make([]Record, 0, len(elements))
	badDates := 0

	for i, row := range elements {
		if !row.IsObject() {
			log.Warnf("skipping row %d: not an object", i)
			continue
		}

		rec := Record{
			ID:    driller.Drill(row, fields.ID).String(),
			Zone:  driller.Drill(row, fields.Zone).String(),
			Trips: int(driller.Drill(row, fields.Trips).Int()),
			Pos:   i,
			Raw:   row,
		}

		if raw := driller.Drill(row, fields.Date).String(); raw != "" {
			d, err := dates.Parse(raw)
			if err != nil {
				badDates++
				log.Tracef("row %d: %v", i, err)
			} else {
				rec.Date = d
			}
		}

		records = append(records, rec)
	}

	if badDates > 0 {
		log.Warnf("%d of %d rows have an unparseable date", badDates, len(records))
	}
	log.Debugf("parsed %d records", len(records))

	return records, nil
}
