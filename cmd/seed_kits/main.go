package main

import (
	"context"
	"log"

	"github.com/sipwell/hydrokit-backend/config"
	"github.com/sipwell/hydrokit-backend/internal/database"
	"github.com/sipwell/hydrokit-backend/internal/service"
)

// Seeds the kit catalog. Safe to run repeatedly; existing kits are left
// untouched.
func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.NewGorm(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := service.NewKitService(db).SeedCatalog(context.Background()); err != nil {
		log.Fatalf("Failed to seed kit catalog: %v", err)
	}

	log.Println("Kit catalog seeded")
}
