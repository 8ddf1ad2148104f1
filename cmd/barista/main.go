// Copyright (c) 2026 Z5Labs and Contributors
//
// This software is released under the MIT License.
// https://opensource.org/licenses/MIT

// Command barista brews, orders and renders coffee from the command line.
//
// Configuration is read from an embedded default, then the file given by
// --config, if any, and finally from BARISTA_ prefixed environment
// variables, e.g. BARISTA_MACHINE_SETTINGS_SIZE=large.
package main

import (
	"context"
	"errors"
	"os"
	"os/signal"

	"github.com/z5labs/barista/internal/try"
)

func main() {
	os.Exit(run(os.Args[1:]...))
}

func run(args ...string) int {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	cmd := newRootCmd()
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(ctx)
	if err == nil {
		return 0
	}

	var perr try.PanicError
	if errors.As(err, &perr) {
		return 2
	}
	return 1
}
