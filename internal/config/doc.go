// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0
// no-cloc

// Package config provides loading and typed accessors for tripctl's user
// configuration. The configuration is a YAML document located by the
// TRIPCTL_CFG_FILE environment variable or, failing that, in the user's
// configuration directory, typically:
//   - Linux/macOS: $XDG_CONFIG_HOME/tripctl.yaml or $HOME/.config/tripctl.yaml
//   - Windows: %APPDATA%/tripctl.yaml
//
// Keys are dotted paths ("fields.date"). When a Namespace is set, the
// namespaced key ("rq.zone") is tried before the bare one.
package config
