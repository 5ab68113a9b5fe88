// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

// docsgen writes a markdown page and a tldr page per tripctl subcommand.
// Flags and usage come from the live command tree; examples and notes come
// from an optional <docs>/templates/tripctl.yaml.
package main

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"sort"
	"strings"
	"text/template"
	"time"

	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"

	"github.com/tripctl/tripctl/internal/command"
)

type Config struct {
	Subcommands []Subcommand `yaml:"subcommands"`
}

type Subcommand struct {
	ID          string    `yaml:"id"`
	Short       string    `yaml:"short"`
	Description string    `yaml:"description"`
	Usage       string    `yaml:"usage"`
	Flags       []Flag    `yaml:"flags"`
	Examples    []Example `yaml:"examples"`
	Notes       []string  `yaml:"notes,omitempty"`
}

type Flag struct {
	ID          string `yaml:"id"`
	Syntax      string `yaml:"syntax"`
	Description string `yaml:"description"`
	Default     string `yaml:"default,omitempty"`
}

type Example struct {
	Command     string `yaml:"command"`
	Description string `yaml:"description"`
}

type TemplateData struct {
	Subcommand
	Date    string
	Version string
}

type Outputs struct {
	Template string
	Folder   string
	Prefix   string
	Suffix   string
}

const mdTemplate = `# tripctl {{ .ID }}

{{ .Short }}

{{ if .Description }}{{ .Description }}

{{ end }}## Usage

    {{ .Usage }}

## Flags

| Flag | Description | Default |
|------|-------------|---------|
{{ range .Flags }}| ` + "`{{ .Syntax }}`" + ` | {{ .Description }} | {{ .Default }} |
{{ end }}{{ if .Examples }}
## Examples
{{ range .Examples }}
{{ .Description }}

    {{ .Command }}
{{ end }}{{ end }}{{ if .Notes }}
## Notes
{{ range .Notes }}
- {{ . }}{{ end }}
{{ end }}
_Generated {{ .Date }} for tripctl {{ .Version }}._
`

const tldrTemplate = `# tripctl {{ .ID }}

> {{ .Short }}

{{ range .Examples }}- {{ .Description }}:

` + "`{{ .Command }}`" + `

{{ end }}`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, "usage: docsgen DOCS_DIR")
		os.Exit(1)
	}
	docs := os.Args[1]

	// Hand written examples and notes are optional.
	var extra Config
	if data, err := os.ReadFile(filepath.Join(docs, "templates", "tripctl.yaml")); err == nil {
		if err := yaml.Unmarshal(data, &extra); err != nil {
			panic(err)
		}
	}

	app, err := command.InitApp(context.Background(), []string{"tripctl"})
	if err != nil {
		panic(err)
	}

	types := []Outputs{
		{Template: mdTemplate, Folder: filepath.Join(docs, "commands"), Suffix: ".md"},
		{Template: tldrTemplate, Folder: filepath.Join(docs, "tldr"), Prefix: "tripctl-", Suffix: ".md"},
	}

	for _, cmd := range app.Commands {
		sub := subcommandOf(cmd)
		mergeExtra(&sub, extra)

		metadata := TemplateData{
			Subcommand: sub,
			Date:       time.Now().Format("January 2, 2006"),
			Version:    getVersion(),
		}

		for _, t := range types {
			if err := os.MkdirAll(t.Folder, 0755); err != nil {
				panic(err)
			}

			path := filepath.Join(t.Folder, t.Prefix+sub.ID+t.Suffix)
			fmt.Println("Generating", path)
			if err := render(path, t.Template, metadata); err != nil {
				panic(err)
			}
		}
	}
}

// subcommandOf describes cmd and its visible flags.
func subcommandOf(cmd *cli.Command) Subcommand {
	sub := Subcommand{
		ID:          cmd.Name,
		Short:       cmd.Usage,
		Description: cmd.Description,
		Usage:       cmd.UsageText,
	}
	if sub.Usage == "" {
		sub.Usage = "tripctl " + cmd.Name + " [options]"
	}

	for _, f := range cmd.Flags {
		if vf, ok := f.(cli.VisibleFlag); ok && !vf.IsVisible() {
			continue
		}

		names := f.Names()
		syntax := make([]string, 0, len(names))
		for _, n := range names {
			if len(n) == 1 {
				syntax = append(syntax, "-"+n)
			} else {
				syntax = append(syntax, "--"+n)
			}
		}

		flag := Flag{ID: names[0], Syntax: strings.Join(syntax, ", ")}
		if df, ok := f.(cli.DocGenerationFlag); ok {
			flag.Description = df.GetUsage()
			if df.TakesValue() {
				flag.Default = df.GetValue()
			}
		}
		sub.Flags = append(sub.Flags, flag)
	}

	sort.Slice(sub.Flags, func(i, j int) bool {
		return sub.Flags[i].ID < sub.Flags[j].ID
	})
	return sub
}

// mergeExtra copies the hand written parts for sub out of extra.
func mergeExtra(sub *Subcommand, extra Config) {
	for _, e := range extra.Subcommands {
		if e.ID != sub.ID {
			continue
		}
		if e.Description != "" {
			sub.Description = e.Description
		}
		sub.Examples = e.Examples
		sub.Notes = e.Notes
	}
}

func render(path, text string, data TemplateData) error {
	tmpl, err := template.New(filepath.Base(path)).Parse(text)
	if err != nil {
		return err
	}

	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	return tmpl.Execute(file, data)
}

// getVersion returns the version string from git tags, stripping the leading
// "v" prefix. Falls back to "dev" if git describe fails.
func getVersion() string {
	out, err := exec.Command("git", "describe", "--tags", "--abbrev=0").Output()
	if err != nil {
		return "dev"
	}

	version := strings.TrimSpace(string(out))
	return strings.TrimPrefix(version, "v")
}
