package server

import (
	"inkwell/internal/models"

	"github.com/gofiber/fiber/v2"
)

// CreateLike handles POST /api/likes
// @Summary Like a post
// @Tags likes
// @Accept json
// @Produce json
// @Param request body object{postId=int} true "Like target"
// @Success 201 {object} models.Like
// @Failure 400 {object} models.ErrorResponse
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /likes [post]
func (s *Server) CreateLike(c *fiber.Ctx) error {
	var req struct {
		PostID uint `json:"postId"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.PostID == 0 {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Post ID is required"))
	}

	like := &models.Like{
		PostID: req.PostID,
		UserID: currentUserID(c),
	}

	if err := s.likeRepo.Create(c.UserContext(), like); err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(like)
}

// GetLikes handles GET /api/posts/:id/likes
// @Summary List likes on a post
// @Tags likes
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {array} models.Like
// @Router /posts/{id}/likes [get]
func (s *Server) GetLikes(c *fiber.Ctx) error {
	postID, err := s.parseID(c)
	if err != nil {
		return nil
	}

	likes, err := s.likeRepo.ListByPost(c.UserContext(), postID)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(likes)
}
