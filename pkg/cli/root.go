/*
Copyright © 2025 the mensad authors
SPDX-License-Identifier: Apache-2.0
*/

// Package cli implements the mensad command line interface.
package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/urfave/cli/v3"
)

const (
	name           = "mensad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags
	version = versionDefault
)

// Execute runs the root command. This is called by main.main().
func Execute() {
	// Handle SIGINT/SIGTERM for graceful shutdown
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cmd := &cli.Command{
		Name:    name,
		Usage:   "Karlsruhe Mensa menus for your terminal",
		Version: version,
		Commands: []*cli.Command{
			serveCommand(),
			showCommand(),
		},
	}

	if err := cmd.Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
