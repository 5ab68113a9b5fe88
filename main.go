// Copyright (c) 2026 Steve Taranto <staranto@gmail.com>.
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/tripctl/tripctl/internal/command"
	"github.com/tripctl/tripctl/internal/config"
	"github.com/tripctl/tripctl/internal/log"
	"github.com/tripctl/tripctl/internal/version"
)

var ctx = context.Background()

func main() {
	os.Exit(realMain())
}

// handleVersion checks for --version/-v and returns whether it was handled.
func handleVersion(args []string, w io.Writer) bool {
	for _, a := range args {
		if a == "--version" || a == "-v" {
			fmt.Fprintln(w, version.Version)
			return true
		}
	}
	return false
}

// handleNakedCommand appends --help if no command is provided.
func handleNakedCommand(args []string) []string {
	if len(args) <= 1 {
		return append(args, "--help")
	}
	return args
}

// hasHelp reports whether --help or -h appears anywhere in args.
func hasHelp(args []string) bool {
	for _, a := range args {
		if a == "--help" || a == "-h" {
			return true
		}
	}
	return false
}

// processCommandArgs handles command-specific argument processing.
func processCommandArgs(args []string) []string {
	switch {
	case len(args) > 1 && args[1] == "completion":
		// Short-circuit completion: pass args directly.
		return args
	default:
		args = processSetOnly(args, func(key string) []string {
			entries, _ := config.GetStringSlice(key)
			return entries
		})
		log.Debugf("args after set processing: args=%v", args)
		return args
	}
}

// initAndRunApp initializes the app and runs it, returning the exit code.
func initAndRunApp(args []string) int {
	app, err := command.InitApp(ctx, args)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app init err: err=%v", err)
		return 1
	}

	if err := app.Run(ctx, args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		log.Debugf("app run err: err=%v", err)
		return 2
	}

	return 0
}

func realMain() int {
	log.InitLogger()

	args := os.Args
	log.Debugf("args captured: args=%v", args)

	if handleVersion(args, os.Stdout) {
		return 0
	}

	args = handleNakedCommand(args)

	// If --help appears anywhere, skip command processing and let the CLI
	// handle it.
	if !hasHelp(args) {
		args = processCommandArgs(args)
	}

	return initAndRunApp(args)
}

// processSetOnly expands the first @set argument found after the command into
// the entries of the "<command>.<set>" config list, at the @set position. A
// bare "@" expands "<command>.defaults". Each entry may hold several
// space-separated args. lookup returns the entries for a config key.
func processSetOnly(args []string, lookup func(key string) []string) []string {
	// Look for an explicit @set argument starting from index 2.
	idx := 2
	if len(args) <= idx {
		return args
	}

	set := ""
	removeIdx := -1
	for i, a := range args[idx:] {
		if strings.HasPrefix(a, "@") {
			set = a[1:]
			removeIdx = idx + i
			break
		}
	}
	if removeIdx == -1 {
		return args
	}
	if set == "" {
		set = "defaults"
	}

	var expanded []string
	for _, entry := range lookup(args[1] + "." + set) {
		expanded = append(expanded, strings.Fields(entry)...)
	}

	result := make([]string, 0, len(args)-1+len(expanded))
	result = append(result, args[:removeIdx]...)
	result = append(result, expanded...)
	result = append(result, args[removeIdx+1:]...)
	return result
}
