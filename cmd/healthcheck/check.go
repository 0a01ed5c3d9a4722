package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"time"

	"github.com/MKhiriev/go-recipe-box/internal/adapter"
	"github.com/MKhiriev/go-recipe-box/models"
)

const (
	defaultAddress = "http://localhost:5000"
	defaultTimeout = 5 * time.Second

	statusOK      = "ok"
	databaseReady = "ready"
)

var (
	errUnhealthy        = errors.New("server reported unhealthy status")
	errDatabaseNotReady = errors.New("database is not ready")
)

type options struct {
	address   string
	timeout   time.Duration
	requireDB bool
}

func parseOptions(args []string) (options, error) {
	var opts options

	fs := flag.NewFlagSet("healthcheck", flag.ContinueOnError)
	fs.StringVar(&opts.address, "a", defaultAddress, "server base URL")
	fs.DurationVar(&opts.timeout, "t", defaultTimeout, "request timeout")
	fs.BoolVar(&opts.requireDB, "require-db", false, "fail unless the database pool is ready")

	if err := fs.Parse(args); err != nil {
		return options{}, err
	}

	return opts, nil
}

func check(ctx context.Context, client adapter.RecipeBoxClient, requireDB bool) (models.Health, error) {
	health, err := client.Health(ctx)
	if err != nil {
		return models.Health{}, err
	}

	if health.Status != statusOK {
		return health, fmt.Errorf("%w: %q", errUnhealthy, health.Status)
	}
	if requireDB && health.Database != databaseReady {
		return health, fmt.Errorf("%w: %s", errDatabaseNotReady, health.Database)
	}

	return health, nil
}
