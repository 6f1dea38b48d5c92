package ses

import (
	"context"
	"fmt"
	"html"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/sesv2"
	"github.com/aws/aws-sdk-go-v2/service/sesv2/types"

	"masjid/internal/domain"
	"masjid/internal/port"
)

type sesSender struct {
	client      *sesv2.Client
	fromAddress string
	fromName    string
	frontendURL string
}

// NewSESSender creates a new SES-backed EmailSender.
func NewSESSender(region, fromAddress, fromName, frontendURL string) (port.EmailSender, error) {
	cfg, err := awsconfig.LoadDefaultConfig(context.Background(), awsconfig.WithRegion(region))
	if err != nil {
		return nil, fmt.Errorf("loading AWS config for SES: %w", err)
	}
	return &sesSender{
		client:      sesv2.NewFromConfig(cfg),
		fromAddress: fromAddress,
		fromName:    fromName,
		frontendURL: frontendURL,
	}, nil
}

func (s *sesSender) SendNewConsultationEmail(ctx context.Context, toEmail string, question domain.Consultation) error {
	inboxURL := s.frontendURL + "/konsultasi"

	subject := fmt.Sprintf("Pertanyaan baru dari %s", question.UserName)
	htmlBody := BuildConsultationHTML(question, inboxURL)
	textBody := fmt.Sprintf("Assalamualaikum,\n\n%s mengirim pertanyaan baru:\n\n%s\n\nJawab melalui: %s\n\n%s",
		question.UserName, question.Question, inboxURL, s.fromName)

	from := fmt.Sprintf("%s <%s>", s.fromName, s.fromAddress)

	_, err := s.client.SendEmail(ctx, &sesv2.SendEmailInput{
		FromEmailAddress: &from,
		Destination: &types.Destination{
			ToAddresses: []string{toEmail},
		},
		Content: &types.EmailContent{
			Simple: &types.Message{
				Subject: &types.Content{Data: &subject},
				Body: &types.Body{
					Html: &types.Content{Data: &htmlBody},
					Text: &types.Content{Data: &textBody},
				},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("SES SendEmail: %w", err)
	}
	return nil
}

// BuildConsultationHTML renders the notification body. User text is escaped.
func BuildConsultationHTML(question domain.Consultation, inboxURL string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html>
<head><meta charset="UTF-8"></head>
<body style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; padding: 20px;">
  <h2 style="color: #065f46;">Pertanyaan konsultasi baru</h2>
  <p><strong>%s</strong> bertanya:</p>
  <blockquote style="border-left: 4px solid #10b981; margin: 0; padding: 8px 16px; color: #333; white-space: pre-wrap;">%s</blockquote>
  <p style="text-align: center; margin: 30px 0;">
    <a href="%s" style="background-color: #059669; color: white; padding: 12px 24px; text-decoration: none; border-radius: 6px; display: inline-block;">Jawab Pertanyaan</a>
  </p>
  <hr style="border: none; border-top: 1px solid #eee; margin: 20px 0;">
  <p style="color: #999; font-size: 12px;">Portal Masjid - Layanan Konsultasi Syariah</p>
</body>
</html>`, html.EscapeString(question.UserName), html.EscapeString(question.Question), html.EscapeString(inboxURL))
}
