package handler_test

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"masjid/internal/domain"
	"masjid/internal/handler"
	"masjid/internal/service"
	"masjid/mocks"
)

func TestPostHandler_List_BindsFilter(t *testing.T) {
	mockPosts := new(mocks.MockPostService)
	h := handler.NewPostHandler(mockPosts)

	mockPosts.On("List", mock.Anything, service.PostFilter{Category: "Berita", Query: "kajian"}).
		Return([]domain.Post{{ID: "1", Title: "Kajian Ahad"}}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/posts?category=Berita&q=kajian", nil)

	h.List(c)

	assert.Equal(t, http.StatusOK, w.Code)
	resp := decode(t, w)
	assert.Equal(t, 1, resp.Meta.Total)
	mockPosts.AssertExpectations(t)
}

func TestPostHandler_Get_NotFound(t *testing.T) {
	mockPosts := new(mocks.MockPostService)
	h := handler.NewPostHandler(mockPosts)

	mockPosts.On("Get", mock.Anything, "99").Return(nil, domain.ErrNotFound)

	c, w := newContext(http.MethodGet, "/api/v1/posts/99", nil)
	c.Params = gin.Params{{Key: "id", Value: "99"}}

	h.Get(c)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestPostHandler_Get(t *testing.T) {
	mockPosts := new(mocks.MockPostService)
	h := handler.NewPostHandler(mockPosts)

	mockPosts.On("Get", mock.Anything, "1").Return(&domain.Post{ID: "1", ContentHTML: "<p>x</p>"}, nil)

	c, w := newContext(http.MethodGet, "/api/v1/posts/1", nil)
	c.Params = gin.Params{{Key: "id", Value: "1"}}

	h.Get(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "<p>", "html must stay escaped on the wire")
	resp := decode(t, w)
	data, ok := resp.Data.(map[string]interface{})
	if assert.True(t, ok) {
		assert.Equal(t, "<p>x</p>", data["contentHtml"])
	}
}
