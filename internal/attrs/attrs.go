// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package attrs

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/tripctl/tripctl/internal/dates"
	"github.com/tripctl/tripctl/internal/log"
)

// Attr is one output column. Key is a canonical row field (id, date, zone,
// trips) or a dot path into the raw row object.
type Attr struct {
	Key string `yaml:"key" json:"Key"`
	// Include is false for columns that only feed sorting.
	Include bool `yaml:"include" json:"Include"`
	// OutputKey names the column in json/yaml output and titles it in text
	// output.
	OutputKey string `yaml:"outputKey" json:"OutputKey"`
	// TransformSpec is a comma list of case (u, l), length (n, -n) and time
	// (t, T) transforms. Later entries override earlier ones.
	TransformSpec string `yaml:"transformSpec" json:"TransformSpec"`
}

var lengthRe = regexp.MustCompile(`-?\d+`)

// Transform applies the attribute's transform spec to a value. Only strings
// change; maps and scalars such as trip counts pass through.
func (a *Attr) Transform(value interface{}) interface{} {
	result, ok := value.(string)
	if !ok {
		log.Tracef("untransformed value: value=%v", value)
		return value
	}

	if strings.ContainsAny(a.TransformSpec, "tT") {
		result = transformTime(result, strings.Contains(a.TransformSpec, "T"))
	}

	// A global spec is prepended, so the last case letter is the column's own.
	// '*::U,zone::l' lowers zone.
	lastL := strings.LastIndexAny(a.TransformSpec, "lL")
	lastU := strings.LastIndexAny(a.TransformSpec, "uU")
	switch {
	case lastL > lastU:
		result = strings.ToLower(result)
	case lastU > lastL:
		result = strings.ToUpper(result)
	}

	if match := lengthRe.FindAllString(a.TransformSpec, -1); len(match) != 0 {
		l, _ := strconv.Atoi(match[len(match)-1])
		result = shorten(result, l)
	}

	log.Tracef("transformed: spec=%s, result=%s", a.TransformSpec, result)
	return result
}

// shorten cuts s to at most |l| runes. A positive l keeps the head; a
// negative l keeps both ends joined by "..", falling back to the head when
// |l| is too small to hold either end.
func shorten(s string, l int) string {
	runes := []rune(s)
	n := int(math.Abs(float64(l)))
	if len(runes) <= n {
		return s
	}

	if l < 0 {
		if keep := n/2 - 1; keep >= 1 {
			return string(runes[:keep]) + ".." + string(runes[len(runes)-keep:])
		}
	}
	return string(runes[:n])
}

// AttrList is a collection of Attr used to shape output fields.
type AttrList []Attr

// Defaults returns the canonical columns every report row has.
func Defaults() AttrList {
	var a AttrList
	for _, key := range []string{"id", "date", "zone", "trips"} {
		a = append(a, Attr{Key: key, Include: true, OutputKey: key})
	}
	return a
}

// Set parses a comma list of --attrs specs into the list. A spec naming a
// column already present (a default or a repeat) rewrites that column in
// place, so defaults keep their position.
func (a *AttrList) Set(value string) error {
	if value == "" || value == "*" {
		log.Debugf("nothing to set: value=%s", value)
		return nil
	}

	for _, spec := range strings.Split(value, ",") {
		attr := parseSpec(spec)
		if i := a.index(attr.Key); i >= 0 {
			(*a)[i].Include = attr.Include
			(*a)[i].OutputKey = attr.OutputKey
			(*a)[i].TransformSpec = attr.TransformSpec
			log.Tracef("attr replaced: i=%d, key=%s", i, attr.Key)
			continue
		}
		*a = append(*a, attr)
		log.Tracef("attr added: key=%s", attr.Key)
	}

	return nil
}

// parseSpec reads one key[:title[:transform]] spec. A leading ! hides the
// column, a leading . is dropped, and the title defaults to the last segment
// of the key path (vehicle.plate becomes plate). The * key carries the global
// transform and is never shown.
func parseSpec(spec string) Attr {
	fields := strings.SplitN(spec, ":", 3)

	key := strings.TrimSpace(fields[0])
	hidden := strings.HasPrefix(key, "!")
	key = strings.TrimPrefix(strings.TrimPrefix(key, "!"), ".")

	attr := Attr{Key: key, Include: !hidden && key != "*"}

	switch {
	case len(fields) == 1:
		attr.OutputKey = key[strings.LastIndex(key, ".")+1:]
	case strings.TrimSpace(fields[1]) == "":
		attr.OutputKey = key
	default:
		attr.OutputKey = strings.TrimSpace(fields[1])
	}

	if len(fields) == 3 {
		attr.TransformSpec = strings.TrimSpace(fields[2])
	}
	return attr
}

// index finds the column for key, matching either its key or its title.
func (a AttrList) index(key string) int {
	for i := range a {
		if a[i].Key == key || a[i].OutputKey == key {
			return i
		}
	}
	return -1
}

// SetGlobalTransformSpec prefixes every column's spec with the spec of the
// first * entry. Column specs come later and so win ties.
func (a *AttrList) SetGlobalTransformSpec() error {
	i := a.index("*")
	if i < 0 || (*a)[i].TransformSpec == "" {
		return nil
	}

	global := (*a)[i].TransformSpec
	for j := range *a {
		(*a)[j].TransformSpec = global + "," + (*a)[j].TransformSpec
	}
	log.Debugf("global spec applied: spec=%s", global)
	return nil
}

// String renders the list back in --attrs form.
func (a *AttrList) String() string {
	result := make([]string, 0, len(*a))
	for _, attr := range *a {
		result = append(result, fmt.Sprintf("%s:%s:%s", attr.Key, attr.OutputKey, attr.TransformSpec))
	}

	resultStr := strings.Join(result, ",")
	log.Debugf("string built: result=%s", resultStr)
	return resultStr
}

// Type returns the flag type for use with the flag.Value interface.
func (a *AttrList) Type() string { return "list" }

// transformTime renders an RFC3339 timestamp in the local zone, or relative
// to now when ago is set. A plain calendar date only has a relative form.
// Anything else is returned unchanged.
func transformTime(value string, ago bool) string {
	if t, err := time.Parse(time.RFC3339, value); err == nil {
		local := t.In(time.Local)
		if ago {
			log.Tracef("time ago: value=%s", value)
			return humanize.Time(local)
		}
		log.Tracef("time local: value=%s", value)
		return local.Format("2006-01-02T15:04:05MST")
	}

	d, err := dates.Parse(value)
	if err != nil || !ago {
		return value
	}
	return humanizeDay(d, dates.Of(time.Now()))
}

// dayMagnitudes is humanize.defaultMagnitudes cut off at one day.
var dayMagnitudes = []humanize.RelTimeMagnitude{
	{D: time.Second, Format: "today", DivBy: time.Second},
	{D: 2 * humanize.Day, Format: "1 day %s", DivBy: 1},
	{D: humanize.Week, Format: "%d days %s", DivBy: humanize.Day},
	{D: 2 * humanize.Week, Format: "1 week %s", DivBy: 1},
	{D: humanize.Month, Format: "%d weeks %s", DivBy: humanize.Week},
	{D: 2 * humanize.Month, Format: "1 month %s", DivBy: 1},
	{D: humanize.Year, Format: "%d months %s", DivBy: humanize.Month},
	{D: 18 * humanize.Month, Format: "1 year %s", DivBy: 1},
	{D: 2 * humanize.Year, Format: "2 years %s", DivBy: 1},
	{D: humanize.LongTime, Format: "%d years %s", DivBy: humanize.Year},
	{D: math.MaxInt64, Format: "a long while %s", DivBy: 1},
}

// humanizeDay describes d relative to today at day granularity. Both days
// are taken at UTC midnight so differences are whole days.
func humanizeDay(d, today dates.Date) string {
	return humanize.CustomRelTime(d.Time(time.UTC), today.Time(time.UTC), "ago", "from now", dayMagnitudes)
}
