// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package driller walks JSON report documents with a dot path so report
// fields can live at any depth of a row object.
package driller
