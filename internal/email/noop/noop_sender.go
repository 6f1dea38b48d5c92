package noop

import (
	"context"

	"go.uber.org/zap"

	"masjid/internal/domain"
	"masjid/internal/port"
)

type noopSender struct {
	frontendURL string
	log         *zap.Logger
}

// NewNoopSender creates a no-op EmailSender that only logs what it would send.
func NewNoopSender(frontendURL string, log *zap.Logger) port.EmailSender {
	if log == nil {
		log = zap.NewNop()
	}
	return &noopSender{frontendURL: frontendURL, log: log.Named("email")}
}

func (s *noopSender) SendNewConsultationEmail(_ context.Context, toEmail string, question domain.Consultation) error {
	s.log.Info("[NOOP EMAIL] new consultation",
		zap.String("to", toEmail),
		zap.String("from_user", question.UserName),
		zap.String("question", question.Question),
		zap.String("inbox_url", s.frontendURL+"/konsultasi"),
	)
	return nil
}
