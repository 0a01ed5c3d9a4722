// Command dbcheck prints the first rows of a database table.
//
// Usage:
//
//	dbcheck [table]
//
// The table defaults to "users". Connection settings are read from the
// STORAGE_DB_* environment variables and the optional CONFIG file.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
)

const defaultTable = "users"

func main() {
	log := logger.NewLogger("recipe-box-dbcheck")

	table := defaultTable
	if len(os.Args) > 1 {
		table = os.Args[1]
	}
	if !validTableName(table) {
		fmt.Fprintln(os.Stderr, "Invalid table name. Use only letters, numbers, and underscores.")
		os.Exit(1)
	}

	dbCfg, err := config.GetDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting database configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := store.NewPool(dbCfg, false, log)
	defer pool.Close()

	if err := pool.Initialize(ctx); err != nil {
		log.Warn().Err(err).Msg("database pool is not verified")
	}

	preview, err := peekTable(ctx, pool, table)
	if err != nil {
		log.Err(err).Str("table", table).Msg("error querying database")
		return
	}

	fmt.Printf("Fetched %d rows from table '%s':\n", len(preview.rows), table)
	fmt.Println(preview.render())
}
