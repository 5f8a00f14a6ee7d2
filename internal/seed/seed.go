package seed

import (
	"fmt"
	"log"
	"math/rand"

	"inkspot/internal/models"

	"gorm.io/gorm"
)

// Options configuration for the seeder
type Options struct {
	NumClients       int
	NumTattooers     int
	PostsPerTattooer int
	NumReviews       int
	NumNotifications int
	MaxDays          int
	SkipBcrypt       bool
	ShouldClean      bool
}

// DefaultOptions returns a seed profile sized for local development.
func DefaultOptions() Options {
	return Options{
		NumClients:       20,
		NumTattooers:     10,
		PostsPerTattooer: 5,
		NumReviews:       40,
		NumNotifications: 30,
		MaxDays:          90,
	}
}

// Seed populates the database with test data
func Seed(db *gorm.DB, opts Options) error {
	log.Printf("Starting database seeding: %d clients, %d tattooers...", opts.NumClients, opts.NumTattooers)

	if opts.ShouldClean {
		if err := clearData(db); err != nil {
			log.Println("Warning: could not clear all existing data, continuing anyway")
		}
	}

	factory := NewFactory(db, opts)

	clients := make([]*models.User, 0, opts.NumClients)
	for i := 0; i < opts.NumClients; i++ {
		user, err := factory.CreateClient()
		if err != nil {
			log.Printf("Failed to create client: %v", err)
			continue
		}
		clients = append(clients, user)
	}
	log.Printf("%d client users created", len(clients))

	tattooers := make([]*models.User, 0, opts.NumTattooers)
	for i := 0; i < opts.NumTattooers; i++ {
		user, err := factory.CreateTattooer()
		if err != nil {
			log.Printf("Failed to create tattooer: %v", err)
			continue
		}
		tattooers = append(tattooers, user)
	}
	log.Printf("%d tattooers created", len(tattooers))

	if len(tattooers) == 0 || len(clients) == 0 {
		return fmt.Errorf("seeding produced no users")
	}

	postCount := 0
	for _, tattooer := range tattooers {
		for i := 0; i < opts.PostsPerTattooer; i++ {
			if _, err := factory.CreatePost(tattooer); err != nil {
				log.Printf("Failed to create post: %v", err)
				continue
			}
			postCount++
		}
	}
	log.Printf("%d posts created", postCount)

	for i := 0; i < opts.NumReviews; i++ {
		client := clients[rand.Intn(len(clients))]
		tattooer := tattooers[rand.Intn(len(tattooers))]
		if _, err := factory.CreateReview(client, tattooer); err != nil {
			log.Printf("Failed to create review: %v", err)
		}
	}
	log.Printf("%d reviews created", opts.NumReviews)

	for i := 0; i < opts.NumNotifications; i++ {
		recipient := tattooers[rand.Intn(len(tattooers))]
		sender := clients[rand.Intn(len(clients))]
		if _, err := factory.CreateNotification(recipient, sender); err != nil {
			log.Printf("Failed to create notification: %v", err)
		}
	}
	log.Printf("%d notifications created", opts.NumNotifications)

	log.Println("Database seeding completed")
	return nil
}

func clearData(db *gorm.DB) error {
	log.Println("Clearing existing data...")
	sql := `TRUNCATE TABLE notifications, reviews, posts, profiles, users RESTART IDENTITY CASCADE;`
	return db.Exec(sql).Error
}
