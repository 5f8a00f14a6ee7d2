package server

import (
	"inkspot/internal/models"
	"inkspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

// GetCurrentUser handles GET /api/user
func (s *Server) GetCurrentUser(c *fiber.Ctx) error {
	userID := currentUserID(c)

	user, err := s.accountService.GetUser(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"user": user})
}

// UpdateUser handles PUT /api/user
func (s *Server) UpdateUser(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Name     *string `json:"name"`
		Email    *string `json:"email"`
		Password *string `json:"password"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	user, err := s.accountService.UpdateAccount(c.Context(), service.UpdateAccountInput{
		UserID:   userID,
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "User updated",
		"user":    user,
	})
}

// DeleteUser handles DELETE /api/user
func (s *Server) DeleteUser(c *fiber.Ctx) error {
	userID := currentUserID(c)

	if err := s.accountService.DeleteAccount(c.Context(), userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "User deleted"})
}
