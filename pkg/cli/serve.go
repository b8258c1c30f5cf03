/*
Copyright © 2025 the mensad authors
SPDX-License-Identifier: Apache-2.0
*/

package cli

import (
	"context"

	"github.com/urfave/cli/v3"

	"github.com/frcl/mensad/pkg/api"
	"github.com/frcl/mensad/pkg/fetch"
)

// serveCmdOptions holds parsed options for the serve command.
type serveCmdOptions struct {
	address  string
	port     int
	upstream string
	logLevel string
}

func parseServeCmdOptions(cmd *cli.Command) *serveCmdOptions {
	return &serveCmdOptions{
		address:  cmd.String("address"),
		port:     int(cmd.Int("port")),
		upstream: cmd.String("upstream"),
		logLevel: cmd.String("log-level"),
	}
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "run the menu HTTP server",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:    "port",
				Aliases: []string{"p"},
				Value:   8080,
				Usage:   "port to listen on",
				Sources: cli.EnvVars("PORT"),
			},
			&cli.StringFlag{
				Name:  "address",
				Usage: "address to bind (default all interfaces)",
			},
			&cli.StringFlag{
				Name:    "upstream",
				Value:   fetch.DefaultURL,
				Usage:   "upstream menu page URL",
				Sources: cli.EnvVars("MENSA_UPSTREAM_URL"),
			},
			&cli.StringFlag{
				Name:    "log-level",
				Value:   "info",
				Usage:   "log level (debug, info, warn, error)",
				Sources: cli.EnvVars("LOG_LEVEL"),
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			opts := parseServeCmdOptions(cmd)
			return api.Serve(ctx, api.Config{
				Address:     opts.address,
				Port:        opts.port,
				UpstreamURL: opts.upstream,
				LogLevel:    opts.logLevel,
			})
		},
	}
}
