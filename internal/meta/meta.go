// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package meta

// Meta is the per-run state handed to every command: the raw arguments and
// the default report source.
type Meta struct {
	Args []string
	// Source is a file path, "-" for stdin, or an s3:// URL.
	Source string
}
