package usecase

import (
	"context"

	"github.com/meridianadvisory/partner-portal/internal/infra/integration/sheets"
	"github.com/meridianadvisory/partner-portal/internal/infra/queue"
)

// EmailSender é satisfeito tanto pelo client HTTP do Brevo quanto pelo
// SMTPSender (gomail). A escolha é feita na configuração.
type EmailSender interface {
	Send(ctx context.Context, to, toName, subject, htmlBody string) error
}

// SpreadsheetMirror espelha cadastros na planilha legada de operações.
type SpreadsheetMirror interface {
	AppendRegistration(ctx context.Context, row sheets.RegistrationRow) error
}

type ReminderEventPublisher interface {
	PublishReminderEvent(ctx context.Context, payload queue.ReminderEventPayload) error
}
