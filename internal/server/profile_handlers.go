package server

import (
	"encoding/json"

	"inkspot/internal/cache"
	"inkspot/internal/models"
	"inkspot/internal/service"

	"github.com/gofiber/fiber/v2"
)

const topTattooerLimit = 10

// GetProfile handles GET /api/profile/:id
// Returns the denormalized user+profile view with social media decoded.
func (s *Server) GetProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	view, err := s.profileService.GetTattooer(c.Context(), userID)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(view)
}

// CreateProfile handles POST /api/profile, the tattooer signup flow.
func (s *Server) CreateProfile(c *fiber.Ctx) error {
	var req struct {
		Name           string          `json:"name"`
		Email          string          `json:"email"`
		Username       string          `json:"username"`
		Password       string          `json:"password"`
		Bio            string          `json:"bio"`
		SocialMedia    json.RawMessage `json:"social_media"`
		ProfilePicture string          `json:"profile_picture"`
		Category       string          `json:"category"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Name == "" || req.Email == "" || req.Username == "" ||
		req.Password == "" || req.Bio == "" || req.SocialMedia == nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Name, email, username, password, bio, and social_media are required"))
	}

	social, err := models.DecodeSocialMedia(req.SocialMedia)
	if err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("social_media must be a JSON object"))
	}

	user, err := s.profileService.CreateTattooer(c.Context(), service.CreateTattooerInput{
		Name:           req.Name,
		Email:          req.Email,
		Username:       req.Username,
		Password:       req.Password,
		Bio:            req.Bio,
		SocialMedia:    social,
		ProfilePicture: req.ProfilePicture,
		Category:       req.Category,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Profile created successfully",
		"user":    user,
	})
}

// UpdateProfile handles PUT /api/profile/:id
func (s *Server) UpdateProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Bio            *string         `json:"bio"`
		SocialMedia    json.RawMessage `json:"social_media"`
		ProfilePicture *string         `json:"profile_picture"`
		Ranking        *int            `json:"ranking"`
		Category       *string         `json:"category"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	profile, err := s.profileService.UpdateProfile(c.Context(), userID, service.UpdateTattooerProfileInput{
		Bio:            req.Bio,
		SocialMedia:    req.SocialMedia,
		ProfilePicture: req.ProfilePicture,
		Ranking:        req.Ranking,
		Category:       req.Category,
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Profile updated successfully",
		"profile": profile.View(),
	})
}

// DeleteProfile handles DELETE /api/profile/:id
// Removes only the Profile record; the user account remains.
func (s *Server) DeleteProfile(c *fiber.Ctx) error {
	userID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	if err := s.profileService.DeleteProfile(c.Context(), userID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Profile deleted successfully"})
}

// GetProfilesByCategory handles GET /api/profiles/category/:category
func (s *Server) GetProfilesByCategory(c *fiber.Ctx) error {
	category := c.Params("category")

	profiles, err := s.profileRepo.ListByCategory(c.Context(), category)
	if err != nil {
		return respondError(c, err)
	}
	if len(profiles) == 0 {
		return models.RespondWithError(c, fiber.StatusNotFound,
			models.NewNotFoundError("Profiles for category", category))
	}

	views := make([]models.ProfileView, 0, len(profiles))
	for i := range profiles {
		views = append(views, profiles[i].View())
	}
	return c.JSON(views)
}

// GetTopTattooers handles GET /api/profiles/top-tattooer
// Served cache-aside; profile writes drop the cached projection.
func (s *Server) GetTopTattooers(c *fiber.Ctx) error {
	views := make([]models.ProfileView, 0, topTattooerLimit)
	err := cache.Aside(c.Context(), cache.TopTattooersKey, &views, cache.DiscoveryTTL, func() error {
		profiles, fetchErr := s.profileRepo.TopRanked(c.Context(), topTattooerLimit)
		if fetchErr != nil {
			return fetchErr
		}
		for i := range profiles {
			views = append(views, profiles[i].View())
		}
		return nil
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(views)
}
