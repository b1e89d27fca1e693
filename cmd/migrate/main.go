// Command main applies the database schema migrations for Spotted.
// AutoMigrate runs automatically outside production; production deploys run
// this explicitly.
package main

import (
	"log"

	"spotted/internal/config"
	"spotted/internal/database"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(db); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migration complete")
}
