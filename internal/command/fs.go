// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v2"

	"github.com/tripctl/tripctl/internal/attrs"
	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/filters"
	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/meta"
	"github.com/tripctl/tripctl/internal/output"
)

// ErrInvalidFilters is returned by fs --strict when a date or the range is
// not usable.
var ErrInvalidFilters = errors.New("filters are invalid")

// FilterStatus is the validation report fs prints for a set of filter flags.
type FilterStatus struct {
	Date         string `json:"date" yaml:"date"`
	DateValid    bool   `json:"dateValid" yaml:"dateValid"`
	From         string `json:"from" yaml:"from"`
	FromValid    bool   `json:"fromValid" yaml:"fromValid"`
	To           string `json:"to" yaml:"to"`
	ToValid      bool   `json:"toValid" yaml:"toValid"`
	RangeValid   bool   `json:"rangeValid" yaml:"rangeValid"`
	Zone         string `json:"zone" yaml:"zone"`
	Trips        string `json:"trips" yaml:"trips"`
	TripCategory bool   `json:"tripCategory" yaml:"tripCategory"`
	AnyActive    bool   `json:"anyActive" yaml:"anyActive"`
	BothDates    bool   `json:"bothDates" yaml:"bothDates"`
}

// NewFilterStatus evaluates every validation predicate over state.
func NewFilterStatus(state filters.FilterState, flags filters.CategoryFlags) FilterStatus {
	return FilterStatus{
		Date:         state.SpecificDate.Raw,
		DateValid:    filters.IsValidDate(state.SpecificDate.Raw),
		From:         state.RangeStart.Raw,
		FromValid:    filters.IsValidDate(state.RangeStart.Raw),
		To:           state.RangeEnd.Raw,
		ToValid:      filters.IsValidDate(state.RangeEnd.Raw),
		RangeValid:   filters.ValidateState(state),
		Zone:         state.Zone,
		Trips:        state.TripCount.String(),
		TripCategory: flags.TripCount,
		AnyActive:    filters.HasAnyActiveFilters(state, flags),
		BothDates:    filters.HasBothDateFilters(state),
	}
}

// Valid reports whether every entered date parses and the range is in order.
func (fs FilterStatus) Valid() bool {
	return fs.DateValid && fs.FromValid && fs.ToValid && fs.RangeValid
}

// rows lays the status out as check/value pairs for the table writer.
func (fs FilterStatus) rows() []map[string]interface{} {
	pairs := []struct {
		check string
		value string
	}{
		{"date", fs.Date},
		{"date valid", strconv.FormatBool(fs.DateValid)},
		{"from", fs.From},
		{"from valid", strconv.FormatBool(fs.FromValid)},
		{"to", fs.To},
		{"to valid", strconv.FormatBool(fs.ToValid)},
		{"range valid", strconv.FormatBool(fs.RangeValid)},
		{"zone", fs.Zone},
		{"trips", fs.Trips},
		{"trip category", strconv.FormatBool(fs.TripCategory)},
		{"any active", strconv.FormatBool(fs.AnyActive)},
		{"both dates", strconv.FormatBool(fs.BothDates)},
	}

	rows := make([]map[string]interface{}, 0, len(pairs))
	for _, p := range pairs {
		rows = append(rows, map[string]interface{}{"check": p.check, "value": p.value})
	}
	return rows
}

// fsCommandAction is the action handler for the "fs" subcommand. It reports
// how the filter flags would be interpreted without reading any rows.
func fsCommandAction(ctx context.Context, cmd *cli.Command) error {
	m := GetMeta(cmd)
	log.Debugf("Executing action for %v", m.Args[1:])

	state, flags, err := FilterStateFromFlags(cmd)
	if err != nil {
		return err
	}
	status := NewFilterStatus(state, flags)

	w := stdout(cmd)
	switch cmd.String("output") {
	case "json", "raw":
		out, err := json.Marshal(status)
		if err != nil {
			return fmt.Errorf("json marshal: %w", err)
		}
		_, _ = w.Write(append(out, '\n'))
	case "yaml":
		out, err := yaml.Marshal(status)
		if err != nil {
			return fmt.Errorf("yaml marshal: %w", err)
		}
		_, _ = w.Write(out)
	default:
		var al attrs.AttrList
		_ = al.Set("check,value")
		output.TableWriter(status.rows(), al, cmd, config.LoadPresentation(), w)
	}

	if cmd.Bool("strict") && !status.Valid() {
		return ErrInvalidFilters
	}
	return nil
}

// fsCommandBuilder constructs the cli.Command for "fs".
func fsCommandBuilder(meta meta.Meta) *cli.Command {
	return (&QueryCommandBuilder{
		Name:      "fs",
		Usage:     "filter status",
		UsageText: "tripctl fs [options]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:        "strict",
				Usage:       "exit non-zero when a date or the range is invalid",
				HideDefault: true,
				Sources:     configSources("strict", configParams("fs")...),
			},
		},
		Action: fsCommandAction,
		Meta:   meta,
		Bare:   true,
	}).Build()
}
