package api

import (
	"context"
	"log/slog"

	"github.com/frcl/mensad/pkg/fetch"
	"github.com/frcl/mensad/pkg/logging"
	"github.com/frcl/mensad/pkg/menu"
	"github.com/frcl/mensad/pkg/server"
)

const (
	name           = "mensad"
	versionDefault = "dev"
)

var (
	// overridden during build with ldflags to reflect actual version info
	// e.g., -X "github.com/frcl/mensad/pkg/api.version=1.0.0"
	version = versionDefault
	commit  = "unknown"
	date    = "unknown"
)

// Config carries the service-level settings supplied by the CLI.
type Config struct {
	Address     string
	Port        int
	UpstreamURL string
	LogLevel    string
}

// Serve starts the menu server and blocks until shutdown.
// It configures logging, sets up routes, and handles graceful shutdown.
// Returns an error if the server fails to start or encounters a fatal error.
func Serve(ctx context.Context, cfg Config) error {
	logging.SetDefaultStructuredLoggerWithLevel(name, version, cfg.LogLevel)
	slog.Info("starting",
		"name", name,
		"version", version,
		"commit", commit,
		"date", date,
	)

	client := fetch.New(cfg.UpstreamURL)
	svc := menu.NewService(NewUpstreamLoader(client))

	scfg := server.NewConfig()
	scfg.Name = name
	scfg.Version = version
	if cfg.Port != 0 {
		scfg.Port = cfg.Port
	}
	if cfg.Address != "" {
		scfg.Address = cfg.Address
	}

	slog.Info("server config",
		"address", scfg.Address,
		"port", scfg.Port,
		"upstream", client.URL(),
	)

	s := server.New(
		server.WithConfig(scfg),
		server.WithHandler(svc.Routes()),
	)

	if err := s.Run(ctx); err != nil {
		slog.Error("server exited with error", "error", err)
		return err
	}

	return nil
}
