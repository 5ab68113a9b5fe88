// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/dustin/go-humanize"
	"github.com/urfave/cli/v3"

	"github.com/tripctl/tripctl/internal/attrs"
	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/differ"
	"github.com/tripctl/tripctl/internal/filters"
	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/meta"
	"github.com/tripctl/tripctl/internal/output"
)

// rqCommandAction is the action handler for the "rq" subcommand. It reads
// the report rows from the source, filters them, and emits the kept rows per
// the common flags. --schema and --diff replace the normal output.
func rqCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	recs, err := LoadRecords(ctx, cmd)
	if err != nil {
		return err
	}

	w := stdout(cmd)

	if cmd.Bool("schema") {
		output.DumpSchema(recs, w)
		return nil
	}

	state, flags, err := FilterStateFromFlags(cmd)
	if err != nil {
		return err
	}

	// A backwards or malformed range still filters; it just matches nothing.
	if !filters.ValidateState(state) {
		fmt.Fprintf(stderr(cmd), "warning: date range %q to %q is invalid\n",
			state.RangeStart.Raw, state.RangeEnd.Raw)
	}
	if filters.HasBothDateFilters(state) {
		log.Debugf("specific date and range are both set, either may match")
	}

	kept := recs
	if filters.HasAnyActiveFilters(state, flags) {
		kept, err = filters.FilterRowsParallel(ctx, recs, state, flags, cmd.Int("workers"))
		if err != nil {
			return err
		}
	}
	log.Debugf("rows kept: kept=%d total=%d", len(kept), len(recs))

	if cmd.Bool("diff") {
		return differ.Diff(w, recs, kept, cmd.Bool("color"))
	}

	if cmd.Bool("summary") {
		cmd.Metadata["footer"] = fmt.Sprintf("\n%s of %s rows",
			humanize.Comma(int64(len(kept))),
			humanize.Comma(int64(len(recs))))
	}

	attrList := BuildAttrs(cmd, attrs.Defaults())
	log.Debugf("attrs: %v", attrList)

	return output.SliceDiceSpit(kept, attrList, cmd, config.LoadPresentation(), w)
}

// rqCommandBuilder constructs the cli.Command for "rq", wiring metadata,
// flags, and action handlers.
func rqCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "rq",
		Usage:     "report query",
		UsageText: "tripctl rq [SOURCE] [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "diff",
				Usage:       "show the rows removed by the filters as a JSON diff",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "schema",
				Usage:       "list the attribute paths found in the rows",
				HideDefault: true,
			},
			&cli.BoolFlag{
				Name:        "summary",
				Usage:       "add a footer with kept and total row counts",
				HideDefault: true,
			},
			&cli.IntFlag{
				Name:  "workers",
				Usage: "goroutines used to evaluate filters, 0 for one per CPU",
				Value: 0,
				Sources: cli.NewValueSourceChain(
					cli.EnvVar("TRIPCTL_WORKERS"),
				),
			},
		},
		Action: rqCommandAction,
		Meta:   meta,
	}).Build()
}
