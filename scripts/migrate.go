package main

import (
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"
)

func main() {
	fmt.Println("applying migrations...")

	err := godotenv.Load()
	if err != nil {
		log.Println("warning: .env file not found, use system environment variables.")
	}

	DSN := os.Getenv("DB_DSN")
	if DSN == "" {
		log.Fatal("DB_DSN is not set")
	}

	m, err := migrate.New("file://migrations", DSN)
	if err != nil {
		log.Fatalf("cannot create migrate instance: %v", err)
	}

	if err := m.Up(); err != nil && !errors.Is(err, migrate.ErrNoChange) {
		log.Fatalf("cannot apply migrations: %v", err)
	}

	fmt.Println("migrations applied successfully!")
}
