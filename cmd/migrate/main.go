package main

import (
	"flag"
	"log"

	"github.com/sipwell/hydrokit-backend/config"
	"github.com/sipwell/hydrokit-backend/internal/database"
)

func main() {
	dir := flag.String("dir", "migrations", "migrations directory")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.RunMigrations(db, *dir); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	log.Println("Migrations complete")
}
