// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package command

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/urfave/cli/v3"

	"github.com/tripctl/tripctl/internal/meta"
)

const bashCompletionScript = `# bash completion for tripctl
# Fallback if bash-completion is not installed
if ! declare -F _get_comp_words_by_ref >/dev/null 2>&1; then
  _get_comp_words_by_ref() {
    cur=${COMP_WORDS[COMP_CWORD]}
    prev=${COMP_WORDS[COMP_CWORD-1]}
  }
fi

_tripctl()
{
    local cur prev cmd
    COMPREPLY=()
    _get_comp_words_by_ref -n : cur prev

    if [[ ${COMP_CWORD} -eq 1 ]]; then
        COMPREPLY=( $(compgen -W "fs rq completion --help --version" -- "$cur") )
        return 0
    fi

    cmd=${COMP_WORDS[1]}
    local display="--color -c --output -o --padding --titles -t"
    local filters="--date -d --from --to --zone -z --trips --no-trips"

    case "$cmd" in
        fs)
            local opts="$display $filters --strict"
            ;;
        rq)
            local opts="$display $filters --attrs -a --local -l --sort -s --diff --schema --summary --workers"
            ;;
        completion)
            COMPREPLY=( $(compgen -W "bash zsh" -- "$cur") )
            return 0
            ;;
        *)
            local opts="$display"
            ;;
    esac

    case "$prev" in
        --output|-o)
            COMPREPLY=( $(compgen -W "text json raw yaml" -- "$cur") )
            return 0
            ;;
        --trips)
            COMPREPLY=( $(compgen -W "all 0 1 2" -- "$cur") )
            return 0
            ;;
    esac

    if [[ "$cur" == -* || "$cmd" == "fs" ]]; then
        COMPREPLY=( $(compgen -W "$opts" -- "$cur") )
        return 0
    fi

    # Otherwise we're on the rq SOURCE positional, complete files.
    COMPREPLY=( $(compgen -f -- "$cur") )
    return 0
}

complete -F _tripctl tripctl
`

const zshCompletionScript = `#compdef tripctl

_tripctl() {
  local -a cmds
  cmds=(
    'fs:filter status'
    'rq:report query'
    'completion:generate shell completion script'
  )

  local -a display
  display=(
  '(-c --color)'{-c,--color}'[enable colored text]'
  '(-o --output)'{-o,--output}'[output format]:format:(text json raw yaml)'
  '--padding[column padding]:padding'
  '(-t --titles)'{-t,--titles}'[show titles]'
  )

  local -a filters
  filters=(
  '(-d --date)'{-d,--date}'[specific date]:date'
  '--from[range start]:date'
  '--to[range end]:date'
  '(-z --zone)'{-z,--zone}'[zone]:zone'
  '--trips[trip count]:trips:(all 0 1 2)'
  '--no-trips[disable the trip count filter]'
  )

  if (( CURRENT == 2 )); then
    _describe -t commands 'tripctl commands' cmds
    return
  fi

  local curcontext="$curcontext" state line
  case $words[2] in
    fs)
      _arguments -C \
        $display \
        $filters \
        '--strict[exit non-zero on invalid filters]'
      ;;
    rq)
      _arguments -C \
        $display \
        $filters \
        '(-a --attrs)'{-a,--attrs}'[attributes to include]:attrs' \
        '(-l --local)'{-l,--local}'[relative dates]' \
        '(-s --sort)'{-s,--sort}'[sort attributes]:attrs' \
        '--diff[show removed rows]' \
        '--schema[list attribute paths]' \
        '--summary[row count footer]' \
        '--workers[filter goroutines]:workers' \
        '::SOURCE:_files'
      ;;
    completion)
      _arguments '1: :((bash zsh))'
      ;;
    *)
      _arguments -C $display
      ;;
  esac
}

# If this file is sourced directly (not autoloaded via fpath), ensure compsys
# is initialized and register the completion
if ! typeset -f compdef >/dev/null 2>&1; then
  autoload -Uz compinit && compinit -i
fi
compdef _tripctl tripctl
`

func completionCommandAction(ctx context.Context, cmd *cli.Command) error {
	shell := ""
	if args := cmd.Args().Slice(); len(args) > 0 {
		shell = args[0]
	}

	w := stdout(cmd)
	switch shell {
	case "bash":
		fmt.Fprint(w, bashCompletionScript)
	case "zsh":
		fmt.Fprint(w, zshCompletionScript)
	default:
		// Try to detect from SHELL or print help
		sh := os.Getenv("SHELL")
		switch {
		case strings.HasSuffix(sh, "zsh"):
			fmt.Fprint(w, zshCompletionScript)
		case strings.HasSuffix(sh, "bash"):
			fmt.Fprint(w, bashCompletionScript)
		default:
			fmt.Fprintln(stderr(cmd), "usage: tripctl completion [bash|zsh]")
			return nil
		}
	}
	return nil
}

func completionCommandBuilder(meta meta.Meta) *cli.Command {
	return &cli.Command{
		Name:      "completion",
		Usage:     "generate shell completion script",
		UsageText: "tripctl completion [bash|zsh]",
		Metadata: map[string]any{
			"meta": meta,
		},
		Action: completionCommandAction,
	}
}
