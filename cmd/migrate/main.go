package main

import (
	"context"
	"flag"
	"log"
	"os"
	"time"

	"career-match/internal/config"
	dbpostgres "career-match/internal/database/postgres"
	"career-match/internal/database/migration"
	"career-match/internal/database/seeder"
	"career-match/migrations"
)

func main() {
	seed := flag.Bool("seed", false, "insert demo data after migrating")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger := log.New(os.Stdout, "", log.LstdFlags)

	connCtx, connCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer connCancel()
	db, err := dbpostgres.Connect(connCtx, cfg.Database)
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}
	defer func() {
		_ = db.Close()
	}()

	migCtx, migCancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer migCancel()
	r := migration.Runner{Dir: cfg.App.MigrationsDir, Source: migrations.FS, Logger: logger}
	applied, err := r.Run(migCtx, db.SQLDB())
	if err != nil {
		log.Fatalf("migration failed: %v", err)
	}
	logger.Printf("[Migration] %d applied", applied)

	if !*seed {
		return
	}

	loc := cfg.App.Location()
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer seedCancel()
	sr := seeder.Runner{
		Seeders: seeder.Defaults(func() time.Time { return time.Now().In(loc) }),
		Logger:  logger,
	}
	if err := sr.Run(seedCtx, db); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
}
