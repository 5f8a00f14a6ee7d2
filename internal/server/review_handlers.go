package server

import (
	"inkspot/internal/models"

	"github.com/gofiber/fiber/v2"
)

// GetTattooerReviews handles GET /api/review/:tattooerId
// The tattooer must exist; an existing tattooer with no reviews gets an empty list.
func (s *Server) GetTattooerReviews(c *fiber.Ctx) error {
	tattooerID, err := s.parseID(c, "tattooerId")
	if err != nil {
		return nil
	}

	if _, err := s.userRepo.GetByID(c.Context(), tattooerID); err != nil {
		return respondError(c, err)
	}

	reviews, err := s.reviewRepo.ListByTattooer(c.Context(), tattooerID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(reviews)
}

// CreateReview handles POST /api/review
func (s *Server) CreateReview(c *fiber.Ctx) error {
	var req struct {
		Description string `json:"description"`
		Rating      int    `json:"rating"`
		UserID      uint   `json:"user_id"`
		TattooerID  uint   `json:"tattooer_id"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Description == "" || req.UserID == 0 || req.TattooerID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Description, user_id, and tattooer_id are required"))
	}

	// Both ends of the review must exist before anything is written.
	if _, err := s.userRepo.GetByID(c.Context(), req.UserID); err != nil {
		return respondError(c, err)
	}
	if _, err := s.userRepo.GetByID(c.Context(), req.TattooerID); err != nil {
		return respondError(c, err)
	}

	review := &models.Review{
		Description: req.Description,
		Rating:      req.Rating,
		UserID:      req.UserID,
		TattooerID:  req.TattooerID,
	}
	if err := s.reviewRepo.Create(c.Context(), review); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Review created successfully",
		"review":  review,
	})
}
