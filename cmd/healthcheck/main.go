// Command healthcheck probes GET /health of a running recipe-box server and
// exits non-zero when it is unhealthy. It is meant for container health
// checks.
//
// Usage:
//
//	healthcheck [-a http://localhost:5000] [-t 5s] [-require-db]
package main

import (
	"context"
	"os"

	"github.com/MKhiriev/go-recipe-box/internal/adapter"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
)

func main() {
	log := logger.NewLogger("recipe-box-healthcheck")

	opts, err := parseOptions(os.Args[1:])
	if err != nil {
		log.Err(err).Msg("error parsing flags")
		os.Exit(2)
	}

	client, err := adapter.NewHTTPRecipeBoxClient(adapter.Config{Address: opts.address, Timeout: opts.timeout}, log)
	if err != nil {
		log.Err(err).Msg("error creating client")
		os.Exit(2)
	}

	health, err := check(context.Background(), client, opts.requireDB)
	if err != nil {
		log.Err(err).Str("address", opts.address).Msg("server is unhealthy")
		os.Exit(1)
	}

	log.Info().
		Str("status", health.Status).
		Str("database", health.Database).
		Str("version", health.Version).
		Msg("server is healthy")
}
