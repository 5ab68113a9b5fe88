// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/tripctl/tripctl/internal/attrs"
	"github.com/tripctl/tripctl/internal/backend"
	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/filters"
	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/meta"
	"github.com/tripctl/tripctl/internal/report"
)

// BuildAttrs constructs an AttrList with defaults and optional extras from
// --attrs, then applies the global transform spec.
func BuildAttrs(cmd *cli.Command, defaults attrs.AttrList) (al attrs.AttrList) {
	al = append(al, defaults...)
	//nolint:errcheck
	{
		if extras := cmd.String("attrs"); extras != "" {
			al.Set(extras)
		}
		al.SetGlobalTransformSpec()
	}
	return
}

// GetMeta returns the meta.Meta stored in the command's Metadata. If missing
// or of an unexpected type, it returns the zero value.
func GetMeta(cmd *cli.Command) meta.Meta {
	if cmd == nil || cmd.Metadata == nil {
		return meta.Meta{}
	}
	if m, ok := cmd.Metadata["meta"].(meta.Meta); ok {
		return m
	}
	return meta.Meta{}
}

// FilterStateFromFlags builds the filter state and category flags from the
// filter flags. The trip category is on unless the config's
// categories.trips or --no-trips turns it off.
func FilterStateFromFlags(cmd *cli.Command) (filters.FilterState, filters.CategoryFlags, error) {
	trips, err := filters.ParseTripCount(cmd.String("trips"))
	if err != nil {
		return filters.FilterState{}, filters.CategoryFlags{}, err
	}

	state := filters.NewFilterState(
		cmd.String("date"),
		cmd.String("from"),
		cmd.String("to"),
		cmd.String("zone"),
		trips,
	)

	flags := filters.DefaultCategoryFlags()
	if enabled, err := config.GetBool("categories.trips", true); err == nil {
		flags.TripCount = enabled
	}
	if cmd.Bool("no-trips") {
		flags.TripCount = false
	}

	log.Debugf("filter state: state=%+v flags=%+v", state, flags)
	return state, flags, nil
}

// LoadRecords reads the command's source and parses it into records. The
// source is the first positional argument, falling back to the one in meta.
func LoadRecords(ctx context.Context, cmd *cli.Command) ([]report.Record, error) {
	source := cmd.Args().First()
	if source == "" {
		source = GetMeta(cmd).Source
	}

	be, err := backend.NewBackend(ctx, source)
	if err != nil {
		return nil, err
	}
	log.Debugf("backend: type=%s source=%s", be.Type(), be.String())

	body, err := be.Body()
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", be.String(), err)
	}

	recs, err := report.Parse(body, report.FieldsFromConfig())
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", be.String(), err)
	}

	return recs, nil
}

// stdout returns the writer the app was configured with.
func stdout(cmd *cli.Command) io.Writer {
	if w := cmd.Root().Writer; w != nil {
		return w
	}
	return os.Stdout
}

// stderr returns the error writer the app was configured with.
func stderr(cmd *cli.Command) io.Writer {
	if w := cmd.Root().ErrWriter; w != nil {
		return w
	}
	return os.Stderr
}
