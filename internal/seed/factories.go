// Package seed provides helpers to create test and demo data for the
// application database. These helpers are intended for development and
// testing only.
package seed

import (
	"encoding/json"
	"fmt"
	"log"
	"math/rand"
	"time"

	"inkspot/internal/models"

	"github.com/brianvoe/gofakeit/v6"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var tattooCategories = []string{
	"traditional", "realism", "blackwork", "watercolor", "japanese",
	"tribal", "neo-traditional", "fine-line", "geometric", "lettering",
}

// Factory builds domain entities and persists them to the database.
// It is a thin helper used by seed presets and tests.
type Factory struct {
	db   *gorm.DB
	opts Options
}

// NewFactory creates a new Factory bound to the provided Gorm DB.
func NewFactory(db *gorm.DB, opts Options) *Factory {
	gofakeit.Seed(time.Now().UnixNano())
	return &Factory{db: db, opts: opts}
}

func (f *Factory) hashedPassword() string {
	if f.opts.SkipBcrypt {
		return "password123"
	}
	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	return string(hashed)
}

// CreateClient constructs and persists a sample client user.
// Optional override functions may modify the generated user before saving.
func (f *Factory) CreateClient(overrides ...func(*models.User)) (*models.User, error) {
	user := &models.User{
		Name:     gofakeit.Name(),
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: f.hashedPassword(),
		UserType: models.UserTypeClient,
	}

	for _, override := range overrides {
		override(user)
	}

	if err := f.db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// CreateTattooer constructs and persists a tattooer user together with
// its profile, the same shape tattooer signup produces.
func (f *Factory) CreateTattooer(overrides ...func(*models.User, *models.Profile)) (*models.User, error) {
	social, _ := json.Marshal(map[string]any{
		"instagram": "@" + gofakeit.Username(),
		"twitter":   "@" + gofakeit.Username(),
	})

	user := &models.User{
		Name:     gofakeit.Name(),
		Username: fmt.Sprintf("%s%d", gofakeit.Username(), gofakeit.Number(100, 999)),
		Email:    gofakeit.Email(),
		Password: f.hashedPassword(),
		UserType: models.UserTypeTattooer,
	}
	profile := &models.Profile{
		Bio:            gofakeit.Sentence(12),
		SocialMedia:    string(social),
		ProfilePicture: fmt.Sprintf("https://i.pravatar.cc/150?u=%s", gofakeit.UUID()),
		Ranking:        gofakeit.Number(0, 100),
		Category:       tattooCategories[rand.Intn(len(tattooCategories))],
	}

	for _, override := range overrides {
		override(user, profile)
	}

	err := f.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile.UserID = user.ID
		return tx.Create(profile).Error
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// CreatePost constructs and persists a sample post for the given user.
func (f *Factory) CreatePost(user *models.User, overrides ...func(*models.Post)) (*models.Post, error) {
	post := &models.Post{
		Image:       fmt.Sprintf("https://picsum.photos/seed/%s/800/800", gofakeit.UUID()),
		Description: gofakeit.Sentence(10),
		Likes:       gofakeit.Number(0, 1000),
		UserID:      user.ID,
	}

	// realistic created_at spread
	maxDays := f.opts.MaxDays
	if maxDays <= 0 {
		maxDays = 90
	}
	post.CreatedAt = time.Now().Add(
		-time.Duration(rand.Intn(maxDays))*24*time.Hour -
			time.Duration(rand.Intn(24))*time.Hour)

	for _, override := range overrides {
		override(post)
	}

	if err := f.db.Create(post).Error; err != nil {
		return nil, err
	}
	return post, nil
}

// CreateReview persists a review from a client about a tattooer.
func (f *Factory) CreateReview(client, tattooer *models.User, overrides ...func(*models.Review)) (*models.Review, error) {
	review := &models.Review{
		Description: gofakeit.Sentence(15),
		Rating:      gofakeit.Number(1, 5),
		UserID:      client.ID,
		TattooerID:  tattooer.ID,
	}

	for _, override := range overrides {
		override(review)
	}

	if err := f.db.Create(review).Error; err != nil {
		return nil, err
	}
	return review, nil
}

// CreateNotification persists a notification for the recipient from the sender.
func (f *Factory) CreateNotification(recipient, sender *models.User, overrides ...func(*models.Notification)) (*models.Notification, error) {
	notification := &models.Notification{
		UserID:   recipient.ID,
		SenderID: sender.ID,
		Message:  gofakeit.Sentence(8),
		Type:     "general",
		IsRead:   gofakeit.Bool(),
		Date:     time.Now(),
	}

	for _, override := range overrides {
		override(notification)
	}

	if err := f.db.Create(notification).Error; err != nil {
		return nil, err
	}
	return notification, nil
}

// CreatePostsBatch persists multiple posts in a single DB call.
func (f *Factory) CreatePostsBatch(posts []*models.Post) error {
	if len(posts) == 0 {
		return nil
	}
	log.Printf("Creating %d posts in batch...", len(posts))
	return f.db.Create(&posts).Error
}
