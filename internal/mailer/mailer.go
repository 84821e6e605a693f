package mailer

import (
	"context"

	"pourhouse/internal/domain"
)

// Mailer — отправка писем по обращениям с формы обратной связи.
type Mailer interface {
	SendContactNotification(ctx context.Context, to string, submission domain.ContactSubmission) error
	SendContactAutoReply(ctx context.Context, submission domain.ContactSubmission) error
}
