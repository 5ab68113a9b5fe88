// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v3"

	"github.com/tripctl/tripctl/internal/filters"
	"github.com/tripctl/tripctl/internal/log"
)

type FlagValidatorType func(any) error

func FlagValidators(value any, validators ...FlagValidatorType) error {
	for _, v := range validators {
		if err := v(value); err != nil {
			return err
		}
	}
	return nil
}

// GlobalFlagsValidator checks the flags that depend on each other. Date
// problems are not errors here; the filters treat them as "no match" and the
// action warns about them.
func GlobalFlagsValidator(ctx context.Context, c *cli.Command) error {
	if c.Int("workers") < 0 {
		return fmt.Errorf("--workers must not be negative")
	}
	if c.Int("padding") < 0 {
		return fmt.Errorf("--padding must not be negative")
	}
	if c.Bool("diff") && c.Bool("schema") {
		return fmt.Errorf("--diff and --schema cannot be combined")
	}
	log.Tracef("flags validated: cmd=%s", c.Name)
	return nil
}

func OutputValidator(value any) error {
	var validOutputFlagValues = []string{"text", "json", "raw", "yaml"}
	valid := false
	for _, v := range validOutputFlagValues {
		if v == value {
			valid = true
			break
		}
	}
	if !valid {
		return fmt.Errorf("must be one of %v", validOutputFlagValues)
	}
	return nil
}

// TripsValidator accepts the selectors filters.ParseTripCount does.
func TripsValidator(value any) error {
	s, ok := value.(string)
	if !ok {
		return fmt.Errorf("trips must be a string, got %T", value)
	}
	_, err := filters.ParseTripCount(s)
	return err
}
