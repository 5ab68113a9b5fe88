// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package differ renders the rows a filter removed as a JSON delta between
// the full and the filtered row sets.
package differ
