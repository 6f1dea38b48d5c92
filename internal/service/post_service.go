package service

import (
	"context"
	"fmt"
	"sort"
	"strings"

	"masjid/internal/domain"
	"masjid/internal/port"
	"masjid/internal/richtext"
)

const excerptLength = 160

// PostFilter narrows a post listing. Empty fields match everything.
type PostFilter struct {
	Category domain.PostCategory `form:"category"`
	Query    string              `form:"q"`
}

// PostService defines the news and articles contract.
type PostService interface {
	List(ctx context.Context, filter PostFilter) ([]domain.Post, error)
	Get(ctx context.Context, id string) (*domain.Post, error)
}

type postService struct {
	content port.ContentSource
}

// NewPostService creates a new PostService implementation.
func NewPostService(content port.ContentSource) PostService {
	return &postService{content: content}
}

func (s *postService) List(ctx context.Context, filter PostFilter) ([]domain.Post, error) {
	posts, err := s.content.Posts(ctx)
	if err != nil {
		return nil, fmt.Errorf("post.List: %w", err)
	}

	needle := strings.ToLower(strings.TrimSpace(filter.Query))
	out := make([]domain.Post, 0, len(posts))
	for _, p := range posts {
		if filter.Category != "" && p.Category != filter.Category {
			continue
		}
		if p.Excerpt == "" {
			p.Excerpt = richtext.Excerpt(p.Content, excerptLength)
		}
		if needle != "" &&
			!strings.Contains(strings.ToLower(p.Title), needle) &&
			!strings.Contains(strings.ToLower(p.Excerpt), needle) {
			continue
		}
		out = append(out, p)
	}

	// ISO dates sort lexically.
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	return out, nil
}

func (s *postService) Get(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.content.PostByID(ctx, id)
	if err != nil {
		return nil, err
	}
	html, err := richtext.RenderMarkdown(post.Content)
	if err != nil {
		return nil, fmt.Errorf("post.Get: %w", err)
	}
	post.ContentHTML = html
	if post.Excerpt == "" {
		post.Excerpt = richtext.Excerpt(post.Content, excerptLength)
	}
	return post, nil
}
