// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	altsrc "github.com/urfave/cli-altsrc/v3"
	yaml "github.com/urfave/cli-altsrc/v3/yaml"
	"github.com/urfave/cli/v3"

	"github.com/tripctl/tripctl/internal/config"
)

// NewGlobalFlags returns the output shaping flags shared by the row
// commands.
func NewGlobalFlags(params ...string) (flags []cli.Flag) {
	flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "attrs",
			Aliases: []string{"a"},
			Usage:   "comma-separated list of attributes to include in results",
		},
		&cli.StringFlag{
			Name:    "sort",
			Aliases: []string{"s"},
			Usage:   "comma-separated list of attributes to sort the results by",
		},
		&cli.BoolFlag{
			Name:    "local",
			Aliases: []string{"l"},
			Usage:   "show dates relative to today",
			Value:   false,
		},
	}

	flags = append(flags, NewDisplayFlags(params...)...)
	return
}

// NewDisplayFlags returns the flags every command that renders output
// carries.
func NewDisplayFlags(params ...string) (flags []cli.Flag) {
	output := &cli.StringFlag{
		Name:    "output",
		Aliases: []string{"o"},
		Usage:   "output format",
		Value:   "text",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TRIPCTL_OUTPUT"),
		),
		Validator: func(value string) error {
			return FlagValidators(value, OutputValidator)
		},
	}
	if len(params) == 2 {
		output = NameSpacedValueChainFlagFromConfigFile(params[0], params[1], output)
	}

	flags = []cli.Flag{
		&cli.BoolFlag{
			Name:    "color",
			Aliases: []string{"c"},
			Usage:   "enable colored text output",
			Value:   false,
		},
		output,
		&cli.IntFlag{
			Name:  "padding",
			Usage: "column padding for text output",
			Value: 2,
		},
		&cli.BoolFlag{
			Name:    "titles",
			Aliases: []string{"t"},
			Usage:   "show titles with text output",
			Value:   false,
		},
	}

	return
}

// NewFilterFlags returns the filter criteria flags. params[0] is the command
// namespace and params[1] the config file; when both are given each string
// flag also takes its default from "<ns>.<flag>" or "<flag>" in the config.
func NewFilterFlags(params ...string) (flags []cli.Flag) {
	date := &cli.StringFlag{
		Name:    "date",
		Aliases: []string{"d"},
		Usage:   "only rows on this date (YYYY-MM-DD)",
		Sources: cli.NewValueSourceChain(),
	}
	from := &cli.StringFlag{
		Name:    "from",
		Usage:   "start of an inclusive date range",
		Sources: cli.NewValueSourceChain(),
	}
	to := &cli.StringFlag{
		Name:    "to",
		Usage:   "end of an inclusive date range",
		Sources: cli.NewValueSourceChain(),
	}
	zone := &cli.StringFlag{
		Name:    "zone",
		Aliases: []string{"z"},
		Usage:   "only rows in this zone (exact match)",
		Sources: cli.NewValueSourceChain(
			cli.EnvVar("TRIPCTL_ZONE"),
		),
	}
	trips := &cli.StringFlag{
		Name:    "trips",
		Usage:   "only rows with this many trips: all, 0, 1 or 2",
		Value:   "all",
		Sources: cli.NewValueSourceChain(),
		Validator: func(value string) error {
			return FlagValidators(value, TripsValidator)
		},
	}

	if len(params) == 2 {
		for _, f := range []*cli.StringFlag{date, from, to, zone, trips} {
			NameSpacedValueChainFlagFromConfigFile(params[0], params[1], f)
		}
	}

	flags = []cli.Flag{
		date,
		from,
		to,
		zone,
		trips,
		&cli.BoolFlag{
			Name:  "no-trips",
			Usage: "disable the trip count filter",
			Value: false,
		},
	}

	return
}

// configParams returns the namespace and config file pair used to chain flag
// sources, or nil when no config file was loaded.
func configParams(ns string) []string {
	if config.Config.Source == "" {
		return nil
	}
	return []string{ns, config.Config.Source}
}

// NameSpacedValueChainFlagFromConfigFile adds namespaced and global config file
// sources to the given flag's Sources chain.
func NameSpacedValueChainFlagFromConfigFile(ns string, path string, flag *cli.StringFlag) *cli.StringFlag {
	flag.Sources.Chain = append(flag.Sources.Chain, configSources(flag.Name, ns, path).Chain...)
	return flag
}

// configSources returns the "<ns>.<name>" then "<name>" config file sources
// for a flag of any type. It is empty unless params holds a namespace and a
// path.
func configSources(name string, params ...string) cli.ValueSourceChain {
	chain := cli.NewValueSourceChain()
	if len(params) != 2 {
		return chain
	}
	ns, path := params[0], params[1]

	chain.Chain = append(chain.Chain,
		yaml.YAML(ns+"."+name, altsrc.StringSourcer(path)),
		yaml.YAML(name, altsrc.StringSourcer(path)),
	)
	return chain
}
