// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package backend resolves a report source (a local file, stdin, or an S3
// object) to a Backend that yields the report body.
package backend
