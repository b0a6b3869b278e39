// migrations/sqlite applies the embedded schema migrations to a database
// file without starting the monitor.
package main

import (
	"errors"
	"log"

	"github.com/jessevdk/go-flags"

	"github.com/p3dcommunity/minerscan-backend/internal/repository/sqlite"
)

type config struct {
	SQLitePath string `long:"sqlite-path" env:"MIGRATIONS_SQLITE_PATH" default:"minerscan.db" description:"sqlite database file"`
}

func main() {
	cfg := config{}
	if _, err := flags.Parse(&cfg); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		log.Fatalf("failed to parse flags: %v", err)
	}

	repo, err := sqlite.NewRepository(cfg.SQLitePath, nil)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer func() {
		if err := repo.Close(); err != nil {
			log.Printf("close database: %v", err)
		}
	}()

	if err := repo.Migrate(); err != nil {
		log.Fatalf("migration run failed: %v", err)
	}

	log.Println("migrations applied")
}
