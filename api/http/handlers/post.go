package handlers

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/surfconnect/backend/api/http/presenter"
	"github.com/surfconnect/backend/pkg/post"
)

type PostHandler struct {
	uc post.UseCase
}

func NewPostHandler(uc post.UseCase) *PostHandler { return &PostHandler{uc: uc} }

type createPostRequest struct {
	Username   string `json:"username"`
	Title      string `json:"title"`
	Location   string `json:"location"`
	SkillLevel string `json:"skillLevel"`
	Content    string `json:"content"`
}

type postResponse struct {
	ID         string `json:"id"`
	PosterID   string `json:"posterId"`
	PosterName string `json:"posterName"`
	Title      string `json:"title"`
	Location   string `json:"location"`
	SkillLevel string `json:"skillLevel"`
	Content    string `json:"content"`
	CreatedAt  string `json:"createdAt"`
}

func toPostResponse(p post.Post) postResponse {
	return postResponse{
		ID:         p.ID.String(),
		PosterID:   p.PosterID.String(),
		PosterName: p.PosterName,
		Title:      p.Title,
		Location:   p.Location,
		SkillLevel: p.SkillLevel,
		Content:    p.Content,
		CreatedAt:  p.CreatedAt.Format("2006-01-02T15:04:05Z07:00"),
	}
}

// Create publishes a spot report on behalf of the authenticated user.
// @Summary Create spot report
// @Tags    posts
// @Accept  json
// @Produce json
// @Param   input body createPostRequest true "post payload"
// @Security BearerAuth
// @Success 201 {object} postResponse
// @Failure 400 {object} presenter.ErrorResponse
// @Failure 401 {object} presenter.ErrorResponse
// @Router  /posts [post]
func (h *PostHandler) Create(c *fiber.Ctx) error {
	var req createPostRequest
	if err := c.BodyParser(&req); err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid JSON payload")
	}
	posterID, err := requireUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "cannot identify user")
	}

	p, err := h.uc.Create(c.Context(), post.Post{
		PosterID:   posterID,
		PosterName: req.Username,
		Title:      req.Title,
		Location:   req.Location,
		SkillLevel: req.SkillLevel,
		Content:    req.Content,
	})
	if err != nil {
		if errors.Is(err, post.ErrInvalidInput) {
			return presenter.Error(c, http.StatusBadRequest, err.Error())
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to create post")
	}
	return presenter.JSON(c, http.StatusCreated, toPostResponse(p))
}

// List returns recent spot reports, newest first.
// @Summary List spot reports
// @Tags    posts
// @Produce json
// @Param   limit  query int false "page size (max 100)"
// @Param   offset query int false "page offset"
// @Security BearerAuth
// @Success 200 {array} postResponse
// @Router  /posts [get]
func (h *PostHandler) List(c *fiber.Ctx) error {
	limit := c.QueryInt("limit", 20)
	offset := c.QueryInt("offset", 0)
	posts, err := h.uc.List(c.Context(), limit, offset)
	if err != nil {
		return presenter.Error(c, http.StatusInternalServerError, "failed to list posts")
	}
	out := make([]postResponse, 0, len(posts))
	for _, p := range posts {
		out = append(out, toPostResponse(p))
	}
	return presenter.JSON(c, http.StatusOK, out)
}

// GetByID returns one spot report.
// @Summary Get spot report by ID
// @Tags    posts
// @Produce json
// @Param   id path string true "post ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} postResponse
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [get]
func (h *PostHandler) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid post id")
	}
	p, err := h.uc.GetByID(c.Context(), id)
	if err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "post not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to get post")
	}
	return presenter.JSON(c, http.StatusOK, toPostResponse(p))
}

// Delete removes the authenticated user's own spot report.
// @Summary Delete own spot report
// @Tags    posts
// @Produce json
// @Param   id path string true "post ID (UUID)"
// @Security BearerAuth
// @Success 200 {object} map[string]string
// @Failure 404 {object} presenter.ErrorResponse
// @Router  /posts/{id} [delete]
func (h *PostHandler) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return presenter.Error(c, http.StatusBadRequest, "invalid post id")
	}
	posterID, err := requireUserID(c)
	if err != nil {
		return presenter.Error(c, http.StatusUnauthorized, "cannot identify user")
	}
	if err := h.uc.Delete(c.Context(), posterID, id); err != nil {
		if errors.Is(err, post.ErrNotFound) {
			return presenter.Error(c, http.StatusNotFound, "post not found")
		}
		return presenter.Error(c, http.StatusInternalServerError, "failed to delete post")
	}
	return presenter.JSON(c, http.StatusOK, fiber.Map{"message": "Post deleted"})
}

func requireUserID(c *fiber.Ctx) (uuid.UUID, error) {
	userIDStr, _ := c.Locals("userId").(string)
	return uuid.Parse(userIDStr)
}
