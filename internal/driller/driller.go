// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package driller

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/tidwall/gjson"
)

var segmentRe = regexp.MustCompile(`^([a-zA-Z0-9_-]+)(\[(\d+|\*)?\])?$`)

// Drill walks a dot path through a parsed row. A segment may carry an index
// ("legs[1]"); a bare segment over a one element array unwraps it, and "[]"
// or "[*]" keeps the whole array.
func Drill(current gjson.Result, path string) gjson.Result {
	if path == "" {
		return gjson.Result{}
	}

	for _, p := range strings.Split(path, ".") {
		matches := segmentRe.FindStringSubmatch(p)
		if len(matches) == 0 {
			return gjson.Result{}
		}

		key := matches[1]

		index := -1
		if matches[3] != "" && matches[3] != "*" {
			i, err := strconv.Atoi(matches[3])
			if err != nil {
				return gjson.Result{}
			}
			index = i
		}

		val := current.Get(key)
		if val.IsArray() {
			arr := val.Array()
			switch {
			case index == -1:
				if len(arr) == 1 && matches[2] == "" {
					val = arr[0]
				}
			case index < len(arr):
				val = arr[index]
			default:
				return gjson.Result{}
			}
		}

		current = val
	}

	return current
}
