package server

import (
	"inkwell/internal/models"
	"inkwell/internal/repository"

	"github.com/gofiber/fiber/v2"
)

// CreatePost handles POST /api/posts
// @Summary Create a post
// @Tags posts
// @Accept json
// @Produce json
// @Param request body object{title=string,content=string,tags=string} true "Post content"
// @Success 201 {object} models.Post
// @Failure 400 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts [post]
func (s *Server) CreatePost(c *fiber.Ctx) error {
	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Tags    string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if req.Title == "" || req.Content == "" {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Title and content are required"))
	}

	post := &models.Post{
		Title:   req.Title,
		Content: req.Content,
		Tags:    req.Tags,
		UserID:  currentUserID(c),
	}

	if err := s.postRepo.Create(c.UserContext(), post); err != nil {
		return s.respondError(c, err)
	}

	return c.Status(fiber.StatusCreated).JSON(post)
}

// GetPosts handles GET /api/posts
// @Summary List posts with optional filters and pagination
// @Tags posts
// @Produce json
// @Param page query int false "Page number (1-indexed)"
// @Param limit query int false "Page size"
// @Param search query string false "Title substring filter"
// @Param tag query string false "Tag substring filter"
// @Success 200 {array} models.Post
// @Router /posts [get]
func (s *Server) GetPosts(c *fiber.Ctx) error {
	q := repository.NewPostQuery(
		c.QueryInt("page", repository.DefaultPage),
		c.QueryInt("limit", repository.DefaultLimit),
		c.Query("search"),
		c.Query("tag"),
	)

	posts, err := s.postRepo.List(c.UserContext(), q)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(posts)
}

// GetPost handles GET /api/posts/:id
// @Summary Get a single post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} models.Post
// @Failure 404 {object} models.ErrorResponse
// @Router /posts/{id} [get]
func (s *Server) GetPost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	post, err := s.postRepo.GetByID(c.UserContext(), id)
	if err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(post)
}

// UpdatePost handles PUT /api/posts/:id
// @Summary Update an owned post
// @Tags posts
// @Accept json
// @Produce json
// @Param id path int true "Post ID"
// @Param request body object{title=string,content=string,tags=string} true "New content"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [put]
func (s *Server) UpdatePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	var req struct {
		Title   string `json:"title"`
		Content string `json:"content"`
		Tags    string `json:"tags"`
	}
	if err := c.BodyParser(&req); err != nil {
		return models.RespondWithError(c, fiber.StatusBadRequest,
			models.NewValidationError("Invalid request body"))
	}

	if err := s.postRepo.UpdateOwned(c.UserContext(), id, currentUserID(c),
		req.Title, req.Content, req.Tags); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post updated successfully",
	})
}

// DeletePost handles DELETE /api/posts/:id
// @Summary Delete an owned post
// @Tags posts
// @Produce json
// @Param id path int true "Post ID"
// @Success 200 {object} object{message=string}
// @Failure 404 {object} models.ErrorResponse
// @Security BearerAuth
// @Router /posts/{id} [delete]
func (s *Server) DeletePost(c *fiber.Ctx) error {
	id, err := s.parseID(c)
	if err != nil {
		return nil
	}

	if err := s.postRepo.DeleteOwned(c.UserContext(), id, currentUserID(c)); err != nil {
		return s.respondError(c, err)
	}

	return c.JSON(fiber.Map{
		"message": "Post deleted successfully",
	})
}
