package handler

import (
	"github.com/gin-gonic/gin"

	"masjid/internal/service"
)

// PostHandler serves news, articles and announcements.
type PostHandler struct {
	postService service.PostService
}

// NewPostHandler creates a new PostHandler.
func NewPostHandler(postService service.PostService) *PostHandler {
	return &PostHandler{postService: postService}
}

// List handles GET /api/v1/posts
// @Summary List posts
// @Tags posts
// @Produce json
// @Param category query string false "Berita, Artikel or Pengumuman"
// @Param q query string false "Search in title and excerpt"
// @Success 200 {object} Response{data=[]domain.Post}
// @Router /posts [get]
func (h *PostHandler) List(c *gin.Context) {
	var filter service.PostFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		respondValidation(c, err)
		return
	}

	posts, err := h.postService.List(c.Request.Context(), filter)
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondList(c, posts, len(posts))
}

// Get handles GET /api/v1/posts/:id
// @Summary Get a post
// @Description Returns the post with its markdown content rendered to sanitized HTML
// @Tags posts
// @Produce json
// @Param id path string true "Post ID"
// @Success 200 {object} Response{data=domain.Post}
// @Failure 404 {object} ErrorResponseBody
// @Router /posts/{id} [get]
func (h *PostHandler) Get(c *gin.Context) {
	post, err := h.postService.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		HandleError(c, err)
		return
	}
	RespondOK(c, post)
}
