package server

import (
	"inkspot/internal/cache"
	"inkspot/internal/models"

	"github.com/gofiber/fiber/v2"
)

const topLikedLimit = 5

// GetPosts handles GET /api/posts
func (s *Server) GetPosts(c *fiber.Ctx) error {
	posts, err := s.postRepo.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), id)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// GetTopLikedPosts handles GET /api/posts/top-likes
// The projection is served cache-aside with a short TTL and dropped on post writes.
func (s *Server) GetTopLikedPosts(c *fiber.Ctx) error {
	posts := make([]models.Post, 0, topLikedLimit)
	err := cache.Aside(c.Context(), cache.TopPostsKey, &posts, cache.DiscoveryTTL, func() error {
		var fetchErr error
		posts, fetchErr = s.postRepo.TopLiked(c.Context(), topLikedLimit)
		return fetchErr
	})
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(posts)
}

// CreatePost handles POST /api/posts
func (s *Server) CreatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)

	var req struct {
		Image       string `json:"image"`
		Description string `json:"description"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Image == "" || req.Description == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image and description are required"))
	}

	post := &models.Post{
		Image:       req.Image,
		Description: req.Description,
		Likes:       0,
		UserID:      userID,
	}

	if err := s.postRepo.Create(c.Context(), post); err != nil {
		return respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	var req struct {
		Image       string `json:"image"`
		Description string `json:"description"`
	}
	if parseErr := c.BodyParser(&req); parseErr != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	// Check ownership
	if post.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only update your own posts"))
	}

	if req.Image == "" || req.Description == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Image and description are required"))
	}

	post.Image = req.Image
	post.Description = req.Description

	if err := s.postRepo.Update(c.Context(), post); err != nil {
		return respondError(c, err)
	}

	return c.JSON(post)
}

// DeletePost handles DELETE /api/posts/:id
func (s *Server) DeletePost(c *fiber.Ctx) error {
	userID := currentUserID(c)
	postID, err := s.parseID(c, "id")
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.Context(), postID)
	if err != nil {
		return respondError(c, err)
	}

	if post.UserID != userID {
		return models.RespondWithError(c, fiber.StatusForbidden,
			models.NewForbiddenError("You can only delete your own posts"))
	}

	if err := s.postRepo.Delete(c.Context(), postID); err != nil {
		return respondError(c, err)
	}

	return c.JSON(fiber.Map{"message": "Post deleted"})
}
