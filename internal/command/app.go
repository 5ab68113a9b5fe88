// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"sort"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/meta"
)

func InitApp(ctx context.Context, args []string) (*cli.Command, error) {

	// The arg[1] immediately following the binary (arg[0]) is the tripctl
	// subcommand and also represents the namespace key to be used when
	// retrieving config values. arg[1] could be -h/--help, so ignore it if it
	// appears to be a flag.
	var ns string
	if len(args) > 1 && !strings.HasPrefix(args[1], "-") {
		ns = args[1]
	}

	// A missing config file is fine; every key has a default.
	config.Config.Namespace = ns
	if _, err := config.Load(); err != nil {
		log.Debugf("config not loaded: err=%v", err)
	}

	// The source may come from the config when the command line has none.
	source, _ := config.GetString("source", "")

	meta := meta.Meta{
		Args:   args,
		Source: source,
	}

	app := &cli.Command{
		Name:  "tripctl",
		Usage: "Trip report filter",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "version",
				Aliases:     []string{"v"},
				Usage:       "tripctl version info",
				HideDefault: true,
			},
		},
	}

	app.Commands = append(app.Commands,
		fsCommandBuilder(meta),
		rqCommandBuilder(meta),
		completionCommandBuilder(meta),
	)

	// Make sure flags are sorted for the --help text.
	for _, cmd := range app.Commands {
		sort.Slice(cmd.Flags, func(i, j int) bool {
			return cmd.Flags[i].Names()[0] < cmd.Flags[j].Names()[0]
		})
	}

	return app, nil
}
