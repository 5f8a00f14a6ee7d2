package repository

import (
	"context"
	"errors"

	"inkspot/internal/cache"
	"inkspot/internal/models"

	"gorm.io/gorm"
)

// ProfileRepository defines persistence operations for tattooer profiles.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID uint) (*models.Profile, error)
	ListByCategory(ctx context.Context, category string) ([]models.Profile, error)
	TopRanked(ctx context.Context, limit int) ([]models.Profile, error)
	Create(ctx context.Context, profile *models.Profile) error
	Update(ctx context.Context, profile *models.Profile) error
	DeleteByUserID(ctx context.Context, userID uint) error
}

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository returns a new ProfileRepository implementation.
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

func (r *profileRepository) GetByUserID(ctx context.Context, userID uint) (*models.Profile, error) {
	var profile models.Profile
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).First(&profile).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Profile", userID)
		}
		return nil, models.NewInternalError(err)
	}
	return &profile, nil
}

func (r *profileRepository) ListByCategory(ctx context.Context, category string) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := r.db.WithContext(ctx).Where("category = ?", category).Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) TopRanked(ctx context.Context, limit int) ([]models.Profile, error) {
	profiles := make([]models.Profile, 0)
	if err := r.db.WithContext(ctx).Order("ranking DESC").Limit(limit).Find(&profiles).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return profiles, nil
}

func (r *profileRepository) Create(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Create(profile).Error; err != nil {
		if isUniqueConstraintError(err) {
			return models.NewValidationError("User already has a profile")
		}
		return models.NewInternalError(err)
	}
	cache.InvalidateTopTattooers(ctx)
	return nil
}

func (r *profileRepository) Update(ctx context.Context, profile *models.Profile) error {
	if err := r.db.WithContext(ctx).Save(profile).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTopTattooers(ctx)
	return nil
}

func (r *profileRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	if err := r.db.WithContext(ctx).Where("user_id = ?", userID).Delete(&models.Profile{}).Error; err != nil {
		return models.NewInternalError(err)
	}
	cache.InvalidateTopTattooers(ctx)
	return nil
}
