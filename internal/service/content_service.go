package service

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"masjid/internal/domain"
	"masjid/internal/port"
)

const homeLatestPosts = 3

// HomeView is everything the landing page shows, fetched in one call.
type HomeView struct {
	PrayerTimes  []domain.PrayerTime  `json:"prayerTimes"`
	Programs     []domain.Program     `json:"programs"`
	LatestPosts  []domain.Post        `json:"latestPosts"`
	BankAccounts []domain.BankAccount `json:"bankAccounts"`
}

// ContentService serves the simple read-only sheet tabs.
type ContentService interface {
	PrayerTimes(ctx context.Context) ([]domain.PrayerTime, error)
	Programs(ctx context.Context) ([]domain.Program, error)
	BankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	Gallery(ctx context.Context) ([]domain.MediaItem, error)
	Home(ctx context.Context) (*HomeView, error)
}

type contentService struct {
	content port.ContentSource
	posts   PostService
}

// NewContentService creates a new ContentService implementation.
func NewContentService(content port.ContentSource, posts PostService) ContentService {
	return &contentService{content: content, posts: posts}
}

func (s *contentService) PrayerTimes(ctx context.Context) ([]domain.PrayerTime, error) {
	items, err := s.content.PrayerTimes(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.PrayerTimes: %w", err)
	}
	return nonNil(items), nil
}

func (s *contentService) Programs(ctx context.Context) ([]domain.Program, error) {
	items, err := s.content.Programs(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.Programs: %w", err)
	}
	return nonNil(items), nil
}

func (s *contentService) BankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	items, err := s.content.BankAccounts(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.BankAccounts: %w", err)
	}
	return nonNil(items), nil
}

func (s *contentService) Gallery(ctx context.Context) ([]domain.MediaItem, error) {
	items, err := s.content.Gallery(ctx)
	if err != nil {
		return nil, fmt.Errorf("content.Gallery: %w", err)
	}
	return nonNil(items), nil
}

// Home fetches the landing page tabs concurrently; any failure fails the call.
func (s *contentService) Home(ctx context.Context) (*HomeView, error) {
	var home HomeView
	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() (err error) {
		home.PrayerTimes, err = s.PrayerTimes(gctx)
		return err
	})
	g.Go(func() (err error) {
		home.Programs, err = s.Programs(gctx)
		return err
	})
	g.Go(func() (err error) {
		home.BankAccounts, err = s.BankAccounts(gctx)
		return err
	})
	g.Go(func() error {
		posts, err := s.posts.List(gctx, PostFilter{})
		if err != nil {
			return err
		}
		if len(posts) > homeLatestPosts {
			posts = posts[:homeLatestPosts]
		}
		home.LatestPosts = posts
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &home, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
