package server

import (
	"time"

	"inkspot/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetNotifications handles GET /api/notifications
// Returns the caller's notifications, newest first. No notifications is not
// an error; the client gets an empty list.
func (s *Server) GetNotifications(c *fiber.Ctx) error {
	userID := currentUserID(c)

	notifications, err := s.notificationRepo.ListByRecipient(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(notifications)
}

// GetNotification handles GET /api/notification/:id
// Notifications are scoped to their recipient; another user's notification
// is indistinguishable from a missing one.
func (s *Server) GetNotification(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.notificationRepo.GetForRecipient(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(notification)
}

// CreateNotification handles POST /api/notification
func (s *Server) CreateNotification(c *fiber.Ctx) error {
	var req struct {
		UserID  uint   `json:"user_id"`
		Message string `json:"message"`
		Type    string `json:"type"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Message == "" || req.UserID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Message and user_id are required"))
	}

	if _, err := s.userRepo.GetByID(c.Context(), req.UserID); err != nil {
		return respondError(c, err)
	}

	notification := &models.Notification{
		UserID:   req.UserID,
		SenderID: currentUserID(c),
		Message:  req.Message,
		Type:     req.Type,
		IsRead:   false,
		Date:     time.Now(),
	}
	if err := s.notificationRepo.Create(c.Context(), notification); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message":      "Notification created successfully",
		"notification": notification,
	})
}

// MarkNotificationRead handles PUT /api/notification/:id
// Marking an already-read notification succeeds without changing anything.
func (s *Server) MarkNotificationRead(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	notification, err := s.notificationRepo.GetForRecipient(c.Context(), id, currentUserID(c))
	if err != nil {
		return respondError(c, err)
	}

	if !notification.IsRead {
		notification.IsRead = true
		if err := s.notificationRepo.Update(c.Context(), notification); err != nil {
			return respondError(c, err)
		}
	}

	return c.JSON(fiber.Map{
		"message":      "Notification marked as read",
		"notification": notification,
	})
}
