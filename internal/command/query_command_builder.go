// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/tripctl/tripctl/internal/meta"
)

// QueryCommandBuilder is a helper that constructs a cli.Command for the
// subcommands that filter report rows, using a consistent pattern. It accepts
// the command name, usage text, optional UsageText, custom flags, the action
// handler, and meta. The builder wires metadata, adds the filter flags and,
// unless Bare is set, the global output flags, then sets up validators.
type QueryCommandBuilder struct {
	Name      string
	Usage     string
	UsageText string
	Flags     []cli.Flag
	Action    func(context.Context, *cli.Command) error
	Meta      meta.Meta
	// Bare limits the shared flags to the display ones.
	Bare bool
}

// Build returns a configured cli.Command from the builder.
func (qcb *QueryCommandBuilder) Build() *cli.Command {
	params := configParams(qcb.Name)

	shared := NewGlobalFlags(params...)
	if qcb.Bare {
		shared = NewDisplayFlags(params...)
	}

	flags := append([]cli.Flag{}, qcb.Flags...)
	flags = append(flags, NewFilterFlags(params...)...)
	flags = append(flags, shared...)

	return &cli.Command{
		Name:      qcb.Name,
		Usage:     qcb.Usage,
		UsageText: qcb.UsageText,
		Metadata: map[string]any{
			"meta": qcb.Meta,
		},
		Flags: flags,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			return ctx, GlobalFlagsValidator(ctx, c)
		},
		Action: qcb.Action,
	}
}
