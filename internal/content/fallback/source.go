// Package fallback layers the spreadsheet endpoint over the demo store.
package fallback

import (
	"context"
	"errors"

	"go.uber.org/zap"

	"masjid/internal/domain"
	"masjid/internal/port"
)

// Source reads from primary and serves secondary when primary is unset,
// failing, or returns nothing useful. Writes only fall through to secondary
// when no endpoint is configured.
type Source struct {
	primary   port.ContentSource
	secondary port.ContentSource
	log       *zap.Logger
}

var _ port.ContentSource = (*Source)(nil)

// New creates a Source. A nil logger disables logging.
func New(primary, secondary port.ContentSource, log *zap.Logger) *Source {
	if log == nil {
		log = zap.NewNop()
	}
	return &Source{primary: primary, secondary: secondary, log: log.Named("content")}
}

// readList runs the primary read and decides whether to fall back. An empty
// result falls back unless keepEmpty is set.
func readList[T any](ctx context.Context, s *Source, name string, keepEmpty bool,
	read func(port.ContentSource, context.Context) ([]T, error),
) ([]T, error) {
	items, err := read(s.primary, ctx)
	switch {
	case err != nil:
		s.warn(name, err)
	case len(items) == 0 && !keepEmpty:
		s.log.Debug("empty upstream list, using demo data", zap.String("resource", name))
	default:
		return items, nil
	}
	return read(s.secondary, ctx)
}

func (s *Source) warn(name string, err error) {
	if errors.Is(err, domain.ErrEndpointNotSet) {
		return
	}
	s.log.Warn("content endpoint failed, using demo data", zap.String("resource", name), zap.Error(err))
}

func (s *Source) PrayerTimes(ctx context.Context) ([]domain.PrayerTime, error) {
	return readList(ctx, s, "prayer_times", false, port.ContentSource.PrayerTimes)
}

func (s *Source) Programs(ctx context.Context) ([]domain.Program, error) {
	return readList(ctx, s, "programs", false, port.ContentSource.Programs)
}

func (s *Source) BankAccounts(ctx context.Context) ([]domain.BankAccount, error) {
	return readList(ctx, s, "bank_accounts", false, port.ContentSource.BankAccounts)
}

func (s *Source) Posts(ctx context.Context) ([]domain.Post, error) {
	return readList(ctx, s, "posts", false, port.ContentSource.Posts)
}

func (s *Source) Transactions(ctx context.Context) ([]domain.Transaction, error) {
	return readList(ctx, s, "transactions", false, port.ContentSource.Transactions)
}

func (s *Source) Gallery(ctx context.Context) ([]domain.MediaItem, error) {
	return readList(ctx, s, "gallery", false, port.ContentSource.Gallery)
}

// Consultations trusts an empty upstream list: no questions is a valid state.
func (s *Source) Consultations(ctx context.Context) ([]domain.Consultation, error) {
	return readList(ctx, s, "consultations", true, port.ContentSource.Consultations)
}

func (s *Source) Profile(ctx context.Context) (*domain.Profile, error) {
	profile, err := s.primary.Profile(ctx)
	if err == nil {
		return profile, nil
	}
	s.warn("profile", err)
	return s.secondary.Profile(ctx)
}

func (s *Source) PostByID(ctx context.Context, id string) (*domain.Post, error) {
	post, err := s.primary.PostByID(ctx, id)
	if err == nil {
		return post, nil
	}
	if !errors.Is(err, domain.ErrNotFound) {
		s.warn("post", err)
	}
	return s.secondary.PostByID(ctx, id)
}

func (s *Source) SubmitConsultation(ctx context.Context, input port.SubmitConsultationInput) error {
	err := s.primary.SubmitConsultation(ctx, input)
	if errors.Is(err, domain.ErrEndpointNotSet) {
		return s.secondary.SubmitConsultation(ctx, input)
	}
	return err
}

func (s *Source) AnswerConsultation(ctx context.Context, input port.AnswerConsultationInput) error {
	err := s.primary.AnswerConsultation(ctx, input)
	if errors.Is(err, domain.ErrEndpointNotSet) {
		return s.secondary.AnswerConsultation(ctx, input)
	}
	return err
}

func (s *Source) Login(ctx context.Context, email, password string) (*domain.User, error) {
	user, err := s.primary.Login(ctx, email, password)
	if errors.Is(err, domain.ErrEndpointNotSet) {
		return s.secondary.Login(ctx, email, password)
	}
	return user, err
}
