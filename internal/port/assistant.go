package port

import (
	"context"

	"masjid/internal/domain"
)

// Assistant answers religious questions in a chat conversation.
type Assistant interface {
	Reply(ctx context.Context, history []domain.ChatMessage, message string) (string, error)
}
