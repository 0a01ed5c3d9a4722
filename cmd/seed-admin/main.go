// Command seed-admin creates an administrator account.
//
// Usage:
//
//	seed-admin [email] [password]
//
// Both arguments are optional and default to admin@example.com and admin.
// An existing account with the same email is left untouched.
package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MKhiriev/go-recipe-box/internal/config"
	"github.com/MKhiriev/go-recipe-box/internal/logger"
	"github.com/MKhiriev/go-recipe-box/internal/store"
)

const (
	defaultEmail    = "admin@example.com"
	defaultPassword = "admin"
)

func main() {
	log := logger.NewLogger("recipe-box-seed-admin")

	email, password := defaultEmail, defaultPassword
	if len(os.Args) > 1 {
		email = os.Args[1]
	}
	if len(os.Args) > 2 {
		password = os.Args[2]
	}

	dbCfg, err := config.GetDBConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting database configs")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	pool := store.NewPool(dbCfg, false, log)
	if err := pool.Initialize(ctx); err != nil {
		log.Warn().Err(err).Msg("database pool is not verified")
	}

	user, created, err := seedAdmin(ctx, store.NewUserRepository(pool, log), email, password)
	_ = pool.Close()
	if err != nil {
		log.Fatal().Err(err).Msg("error creating admin user")
	}

	if !created {
		log.Info().Any("user", user.Identity()).Msg("user already exists")
		return
	}
	log.Info().Any("user", user.Identity()).Msg("admin user created")
}
