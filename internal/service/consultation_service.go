package service

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"masjid/internal/domain"
	"masjid/internal/port"
)

// SubmitConsultationInput is the DTO for new questions.
type SubmitConsultationInput struct {
	Question string `json:"question" binding:"required"`
}

// AnswerConsultationInput is the DTO for ustadz answers.
type AnswerConsultationInput struct {
	Answer string `json:"answer" binding:"required"`
}

// ConsultationService defines the Q&A with ustadz contract.
type ConsultationService interface {
	List(ctx context.Context, user *domain.User) ([]domain.Consultation, error)
	Submit(ctx context.Context, user *domain.User, input SubmitConsultationInput) error
	Answer(ctx context.Context, user *domain.User, id string, input AnswerConsultationInput) error
}

type consultationService struct {
	content    port.ContentSource
	email      port.EmailSender
	notifyAddr string
	log        *zap.Logger
	now        func() time.Time
}

// NewConsultationService creates a new ConsultationService implementation.
// New questions are announced to notifyAddr when it is set.
func NewConsultationService(content port.ContentSource, email port.EmailSender, notifyAddr string, log *zap.Logger) ConsultationService {
	if log == nil {
		log = zap.NewNop()
	}
	return &consultationService{
		content:    content,
		email:      email,
		notifyAddr: strings.TrimSpace(notifyAddr),
		log:        log.Named("consultation"),
		now:        time.Now,
	}
}

// List returns the caller's own questions newest first, or for an ustadz
// or admin every question with pending ones ahead of answered ones.
func (s *consultationService) List(ctx context.Context, user *domain.User) ([]domain.Consultation, error) {
	if user == nil {
		return nil, domain.ErrUnauthorized
	}
	all, err := s.content.Consultations(ctx)
	if err != nil {
		return nil, fmt.Errorf("consultation.List: %w", err)
	}

	sort.SliceStable(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	switch user.View() {
	case domain.ViewUstadz, domain.ViewAdmin:
		sort.SliceStable(all, func(i, j int) bool {
			return all[i].Status == domain.ConsultationPending && all[j].Status != domain.ConsultationPending
		})
		return all, nil
	default:
		own := make([]domain.Consultation, 0, len(all))
		for _, c := range all {
			if c.UserID == user.ID {
				own = append(own, c)
			}
		}
		return own, nil
	}
}

func (s *consultationService) Submit(ctx context.Context, user *domain.User, input SubmitConsultationInput) error {
	if user == nil {
		return domain.ErrUnauthorized
	}
	question := strings.TrimSpace(input.Question)
	if question == "" {
		return domain.ErrEmptyQuestion
	}

	err := s.content.SubmitConsultation(ctx, port.SubmitConsultationInput{
		UserID:   user.ID,
		UserName: user.Name,
		Question: question,
	})
	if err != nil {
		return fmt.Errorf("consultation.Submit: %w", err)
	}

	if s.notifyAddr == "" || s.email == nil {
		return nil
	}
	notice := domain.Consultation{
		UserID:    user.ID,
		UserName:  user.Name,
		Question:  question,
		Status:    domain.ConsultationPending,
		CreatedAt: s.now().UTC(),
	}
	if err := s.email.SendNewConsultationEmail(ctx, s.notifyAddr, notice); err != nil {
		s.log.Warn("failed to send consultation notice", zap.String("to", s.notifyAddr), zap.Error(err))
	}
	return nil
}

func (s *consultationService) Answer(ctx context.Context, user *domain.User, id string, input AnswerConsultationInput) error {
	switch user.View() {
	case domain.ViewUstadz, domain.ViewAdmin:
	case domain.ViewGuest:
		return domain.ErrUnauthorized
	default:
		return domain.ErrUstadzOnly
	}
	answer := strings.TrimSpace(input.Answer)
	if answer == "" {
		return domain.ErrEmptyAnswer
	}

	err := s.content.AnswerConsultation(ctx, port.AnswerConsultationInput{
		ID:         id,
		Answer:     answer,
		AnsweredBy: user.Name,
	})
	if err != nil {
		return fmt.Errorf("consultation.Answer: %w", err)
	}
	return nil
}
