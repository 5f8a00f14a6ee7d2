package service

import (
	"context"
	"encoding/json"

	"inkspot/internal/cache"
	"inkspot/internal/models"
	"inkspot/internal/repository"
	"inkspot/internal/validation"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// ProfileService handles tattooer signup and profile maintenance. Tattooer
// signup spans two tables, so the service holds the DB handle for transactions.
type ProfileService struct {
	db          *gorm.DB
	userRepo    repository.UserRepository
	profileRepo repository.ProfileRepository
}

// CreateTattooerInput carries the fixed required fields of tattooer signup.
type CreateTattooerInput struct {
	Name           string
	Email          string
	Username       string
	Password       string
	Bio            string
	SocialMedia    map[string]any
	ProfilePicture string
	Category       string
}

// UpdateTattooerProfileInput is a sparse patch. Nil means "leave unchanged";
// SocialMedia is raw so a malformed payload can be rejected before encoding.
type UpdateTattooerProfileInput struct {
	Bio            *string
	SocialMedia    json.RawMessage
	ProfilePicture *string
	Ranking        *int
	Category       *string
}

// NewProfileService returns a new ProfileService.
func NewProfileService(db *gorm.DB, userRepo repository.UserRepository, profileRepo repository.ProfileRepository) *ProfileService {
	return &ProfileService{db: db, userRepo: userRepo, profileRepo: profileRepo}
}

// GetTattooer returns the denormalized user+profile view for a tattooer.
func (s *ProfileService) GetTattooer(ctx context.Context, userID uint) (*models.TattooerView, error) {
	user, err := s.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := models.NewTattooerView(user, profile)
	return &view, nil
}

// CreateTattooer registers a tattooer account together with its profile.
// Both records are created in one transaction so a failure leaves nothing behind.
func (s *ProfileService) CreateTattooer(ctx context.Context, in CreateTattooerInput) (*models.User, error) {
	if err := validation.ValidateEmail(in.Email); err != nil {
		return nil, models.NewValidationError(err.Error())
	}
	if err := validation.ValidateUsername(in.Username); err != nil {
		return nil, models.NewValidationError(err.Error())
	}

	if existing, err := s.userRepo.GetByEmail(ctx, in.Email); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Email or username already registered")
	}
	if existing, err := s.userRepo.GetByUsername(ctx, in.Username); err != nil {
		return nil, err
	} else if existing != nil {
		return nil, models.NewValidationError("Email or username already registered")
	}

	social, err := models.EncodeSocialMedia(in.SocialMedia)
	if err != nil {
		return nil, models.NewValidationError("social_media must be a JSON object")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, models.NewInternalError(err)
	}

	user := &models.User{
		Name:     in.Name,
		Username: in.Username,
		Email:    in.Email,
		Password: string(hashed),
		UserType: models.UserTypeTattooer,
	}

	txErr := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(user).Error; err != nil {
			return err
		}
		profile := &models.Profile{
			UserID:         user.ID,
			Bio:            in.Bio,
			SocialMedia:    social,
			ProfilePicture: in.ProfilePicture,
			Ranking:        0,
			Category:       in.Category,
		}
		return tx.Create(profile).Error
	})
	if txErr != nil {
		return nil, models.NewInternalError(txErr)
	}

	cache.InvalidateTopTattooers(ctx)
	return user, nil
}

// UpdateProfile applies a sparse patch to a tattooer's profile. A present
// but non-object social_media payload is rejected with stored data unchanged.
func (s *ProfileService) UpdateProfile(ctx context.Context, userID uint, in UpdateTattooerProfileInput) (*models.Profile, error) {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	profile, err := s.profileRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if in.SocialMedia != nil {
		social, err := models.DecodeSocialMedia(in.SocialMedia)
		if err != nil {
			return nil, models.NewValidationError("social_media must be a JSON object")
		}
		encoded, err := models.EncodeSocialMedia(social)
		if err != nil {
			return nil, models.NewInternalError(err)
		}
		profile.SocialMedia = encoded
	}
	if in.Bio != nil {
		profile.Bio = *in.Bio
	}
	if in.ProfilePicture != nil {
		profile.ProfilePicture = *in.ProfilePicture
	}
	if in.Ranking != nil {
		profile.Ranking = *in.Ranking
	}
	if in.Category != nil {
		profile.Category = *in.Category
	}

	if err := s.profileRepo.Update(ctx, profile); err != nil {
		return nil, err
	}

	return profile, nil
}

// DeleteProfile removes only the Profile record; the User account remains.
func (s *ProfileService) DeleteProfile(ctx context.Context, userID uint) error {
	if _, err := s.userRepo.GetByID(ctx, userID); err != nil {
		return err
	}
	if _, err := s.profileRepo.GetByUserID(ctx, userID); err != nil {
		return err
	}
	return s.profileRepo.DeleteByUserID(ctx, userID)
}
