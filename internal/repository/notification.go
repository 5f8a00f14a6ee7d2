package repository

import (
	"context"
	"errors"

	"inkspot/internal/models"

	"gorm.io/gorm"
)

// NotificationRepository defines persistence operations for notifications.
// Reads are always scoped to the recipient.
type NotificationRepository interface {
	ListByRecipient(ctx context.Context, userID uint) ([]models.Notification, error)
	GetForRecipient(ctx context.Context, id, userID uint) (*models.Notification, error)
	Create(ctx context.Context, notification *models.Notification) error
	Update(ctx context.Context, notification *models.Notification) error
}

type notificationRepository struct {
	db *gorm.DB
}

// NewNotificationRepository returns a new NotificationRepository implementation.
func NewNotificationRepository(db *gorm.DB) NotificationRepository {
	return &notificationRepository{db: db}
}

func (r *notificationRepository) ListByRecipient(ctx context.Context, userID uint) ([]models.Notification, error) {
	notifications := make([]models.Notification, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&notifications).Error; err != nil {
		return nil, models.NewInternalError(err)
	}
	return notifications, nil
}

func (r *notificationRepository) GetForRecipient(ctx context.Context, id, userID uint) (*models.Notification, error) {
	var notification models.Notification
	if err := r.db.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, userID).
		First(&notification).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, models.NewNotFoundError("Notification", id)
		}
		return nil, models.NewInternalError(err)
	}
	return &notification, nil
}

func (r *notificationRepository) Create(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Create(notification).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}

func (r *notificationRepository) Update(ctx context.Context, notification *models.Notification) error {
	if err := r.db.WithContext(ctx).Save(notification).Error; err != nil {
		return models.NewInternalError(err)
	}
	return nil
}
