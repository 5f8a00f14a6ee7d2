package repository

import (
	"context"

	"inkspot/internal/models"

	"gorm.io/gorm"
)

// ReviewRepository defines persistence operations for reviews.
type ReviewRepository interface {
	ListByTattooer(ctx context.Context, tattooerID uint) ([]models.Review, error)
	Create(ctx context.Context, review *models.Review) error
}

type reviewRepository struct {
	db *gorm.DB
}

// NewReviewRepository returns a new ReviewRepository implementation.
func NewReviewRepository(db *gorm.DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) ListByTattooer(ctx context.Context, tattooerID uint) ([]models.Review, error) {
	reviews := make([]models.Review, 0)
	if err := r.db.WithContext(ctx).Where("tattooer_id = ?", tattooerID).Find(&reviews).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return reviews, nil
}

func (r *reviewRepository) Create(ctx context.Context, review *models.Review) error {
	if err := r.db.WithContext(ctx).Create(review).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
