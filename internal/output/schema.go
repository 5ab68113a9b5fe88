// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package output

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/tidwall/gjson"

	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/report"
)

// maxSchemaDepth limits how far into nested row objects keys are reported.
const maxSchemaDepth = 1

// DumpSchema writes the sorted list of keys found in the rows to w. These are
// the keys usable with the --attrs and --sort flags. If w is nil, os.Stdout is
// used.
func DumpSchema(recs []report.Record, w io.Writer) {
	if w == nil {
		w = os.Stdout
	}

	fmt.Fprintln(w,
		`Row level keys that are directly available to the --attrs flag. The
canonical id, date, zone and trips keys are always available.`)
	fmt.Fprintln(w, "")

	seen := map[string]bool{}
	for _, rec := range recs {
		schemaWalker("", rec.Raw, 0, seen)
	}

	if len(seen) == 0 {
		log.Debugf("no keys found in %d rows", len(recs))
		return
	}

	keys := make([]string, 0, len(seen))
	for key := range seen {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		fmt.Fprintln(w, key)
	}
}

// schemaWalker records the dot path of every key of obj into seen,
// descending into nested objects up to maxSchemaDepth.
func schemaWalker(holder string, obj gjson.Result, depth int, seen map[string]bool) {
	if !obj.IsObject() {
		return
	}

	obj.ForEach(func(key, value gjson.Result) bool {
		name := key.String()
		if holder != "" {
			name = holder + "." + name
		}
		seen[name] = true

		if depth < maxSchemaDepth && value.IsObject() {
			schemaWalker(name, value, depth+1, seen)
		}
		return true
	})
}
