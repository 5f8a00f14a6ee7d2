// Command seed populates the database with development data.
package main

import (
	"flag"
	"log"

	"inkspot/internal/config"
	"inkspot/internal/database"
	"inkspot/internal/seed"
)

func main() {
	numClients := flag.Int("clients", 20, "Number of client users to create")
	numTattooers := flag.Int("tattooers", 10, "Number of tattooers to create")
	postsPer := flag.Int("posts", 5, "Posts per tattooer")
	numReviews := flag.Int("reviews", 40, "Number of reviews to create")
	numNotifications := flag.Int("notifications", 30, "Number of notifications to create")
	shouldClean := flag.Bool("clean", true, "Clean database before seeding")
	skipBcrypt := flag.Bool("skip-bcrypt", false, "Store plaintext passwords for faster seeding")
	flag.Parse()

	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	opts := seed.Options{
		NumClients:       *numClients,
		NumTattooers:     *numTattooers,
		PostsPerTattooer: *postsPer,
		NumReviews:       *numReviews,
		NumNotifications: *numNotifications,
		MaxDays:          90,
		SkipBcrypt:       *skipBcrypt,
		ShouldClean:      *shouldClean,
	}
	if err := seed.Seed(db, opts); err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}

	log.Println("All done. Test users share the password: password123")
}
