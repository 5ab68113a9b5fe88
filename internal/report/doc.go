// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package report decodes a JSON report document into Records, the row type
// the filter engine evaluates. Field locations are configurable dot paths so
// reports with nested or renamed fields need no preprocessing.
package report
