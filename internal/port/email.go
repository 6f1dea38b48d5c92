package port

import (
	"context"

	"masjid/internal/domain"
)

// EmailSender defines the contract for sending emails.
type EmailSender interface {
	SendNewConsultationEmail(ctx context.Context, toEmail string, question domain.Consultation) error
}
