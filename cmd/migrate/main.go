package main

import (
	"errors"
	"log"
	"os"

	"gis-arcade/internal/config"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
)

const migrationsSource = "file://db/migrations"

func main() {
	if err := config.LoadDotEnv(".env"); err != nil {
		log.Printf("failed to load .env: %v", err)
	}
	dsn := os.Getenv("DATABASE_URL")
	if dsn == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	m, err := migrate.New(migrationsSource, dsn)
	if err != nil {
		log.Fatalf("open migrations: %v", err)
	}
	switch err := m.Up(); {
	case err == nil:
		log.Println("migrations applied")
	case errors.Is(err, migrate.ErrNoChange):
		log.Println("schema already up to date")
	default:
		log.Fatalf("apply migrations: %v", err)
	}
}
