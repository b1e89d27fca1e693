// Command main runs the database seeder for Spotted.
package main

import (
	"flag"
	"log"

	"spotted/internal/config"
	"spotted/internal/database"
	"spotted/internal/seed"
)

func main() {
	numUsers := flag.Int("users", 50, "Number of users to create")
	numPlaces := flag.Int("places", 30, "Number of places to create")
	numPosts := flag.Int("posts", 200, "Number of posts to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	flag.Parse()

	log.Println("🌱 Database Seeder")
	log.Println("==================")
	log.Printf("Target: %d users, %d places, %d posts, clean=%v\n",
		*numUsers, *numPlaces, *numPosts, *shouldClean)

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	if _, err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := seed.Seed(database.DB, seed.Options{
		NumUsers:    *numUsers,
		NumPlaces:   *numPlaces,
		NumPosts:    *numPosts,
		ShouldClean: *shouldClean,
	}); err != nil {
		log.Fatalf("❌ Seeding failed: %v", err)
	}
}
