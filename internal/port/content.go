package port

import (
	"context"

	"masjid/internal/domain"
)

// SubmitConsultationInput carries a new question to the content store.
type SubmitConsultationInput struct {
	UserID   string
	UserName string
	Question string
}

// AnswerConsultationInput carries an ustadz answer to the content store.
type AnswerConsultationInput struct {
	ID         string
	Answer     string
	AnsweredBy string
}

// ContentSource is the portal's content store: the spreadsheet endpoint,
// the in-memory mock data, or a composition of both.
type ContentSource interface {
	PrayerTimes(ctx context.Context) ([]domain.PrayerTime, error)
	Programs(ctx context.Context) ([]domain.Program, error)
	Profile(ctx context.Context) (*domain.Profile, error)
	BankAccounts(ctx context.Context) ([]domain.BankAccount, error)
	Posts(ctx context.Context) ([]domain.Post, error)
	PostByID(ctx context.Context, id string) (*domain.Post, error)
	Transactions(ctx context.Context) ([]domain.Transaction, error)
	Gallery(ctx context.Context) ([]domain.MediaItem, error)
	Consultations(ctx context.Context) ([]domain.Consultation, error)
	SubmitConsultation(ctx context.Context, input SubmitConsultationInput) error
	AnswerConsultation(ctx context.Context, input AnswerConsultationInput) error
	Login(ctx context.Context, email, password string) (*domain.User, error)
}

// EndpointProvider yields the spreadsheet endpoint URL currently in effect.
// An empty string means no endpoint is configured.
type EndpointProvider interface {
	Current() string
}
