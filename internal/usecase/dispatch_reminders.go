package usecase

import (
	"context"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/meridianadvisory/partner-portal/internal/entity"
	"github.com/meridianadvisory/partner-portal/internal/infra/mail"
	"github.com/meridianadvisory/partner-portal/internal/infra/queue"
)

const DefaultBatchLimit = 200

// DispatchRemindersUseCase executa um passe de lembretes de onboarding:
// varre as linhas pendentes, decide o estágio devido, envia o email do
// estágio e grava o avanço. Cada candidato é independente; falha de um
// não derruba o passe.
type DispatchRemindersUseCase struct {
	Progress entity.OnboardingProgressRepository
	Email    EmailSender
	Events   ReminderEventPublisher // pode ser nil (auditoria desligada)
	Links    mail.PortalLinks

	BatchLimit int
	Now        func() time.Time
}

func NewDispatchRemindersUseCase(
	progress entity.OnboardingProgressRepository,
	email EmailSender,
	events ReminderEventPublisher,
	links mail.PortalLinks,
	batchLimit int,
) *DispatchRemindersUseCase {
	if batchLimit <= 0 {
		batchLimit = DefaultBatchLimit
	}
	return &DispatchRemindersUseCase{
		Progress:   progress,
		Email:      email,
		Events:     events,
		Links:      links,
		BatchLimit: batchLimit,
		Now:        time.Now,
	}
}

func (uc *DispatchRemindersUseCase) Execute(ctx context.Context) (*DispatchSummary, error) {
	now := uc.Now()

	rows, err := uc.Progress.ListPending(ctx, uc.BatchLimit)
	if err != nil {
		return nil, fmt.Errorf("erro ao buscar progresso pendente: %w", err)
	}

	summary := &DispatchSummary{
		Success: true,
		Scanned: len(rows),
		Details: []ReminderDetail{},
	}
	stopped := 0

	for _, row := range rows {
		// 1. Email normalizado; sem email não há o que lembrar
		email := strings.ToLower(strings.TrimSpace(row.PartnerEmail))
		if email == "" {
			continue
		}

		// 2. Anchor ("pendente desde"); sem anchor não dá pra calcular
		anchor := row.Anchor()
		if anchor == nil || anchor.IsZero() {
			continue
		}

		// 3. Horas pendentes desde o anchor
		hoursPending := now.Sub(*anchor).Hours()
		if hoursPending < 0 {
			hoursPending = 0
		}

		// 4. Os dois gates completos => encerra os lembretes, sem email
		if row.OnboardingComplete() {
			uc.stop(ctx, row.PartnerID, now)
			stopped++
			continue
		}

		// 5. Corte de idade máxima: abandona os lembretes mesmo incompleto.
		//    Precede o cálculo de estágio (nada de estágio 3 no dia 14).
		if entity.ShouldStop(hoursPending) {
			uc.stop(ctx, row.PartnerID, now)
			stopped++
			continue
		}

		// 6. Estágio devido; só avança, nunca repete nem regride
		stageDue := entity.StageForHours(hoursPending)
		if stageDue == entity.StageNone || int(stageDue) <= row.LastReminderStage {
			continue
		}

		// 7. Renderiza o conteúdo do estágio
		pendingDays := int(hoursPending / 24)
		if pendingDays < 1 {
			pendingDays = 1
		}
		deadline := anchor.Add(entity.StopAfter).Format("02 Jan 2006")

		subject, html, err := mail.RenderReminder(stageDue, mail.ReminderData{
			Name:          row.PartnerName,
			MaskedEmail:   mail.MaskEmail(email),
			PendingDays:   pendingDays,
			Deadline:      deadline,
			AIDone:        row.AIComplete(),
			AgreementDone: row.AgreementComplete(),
			LoginURL:      uc.Links.LoginURL,
			SupportEmail:  uc.Links.SupportEmail,
			SupportPhone:  uc.Links.SupportPhone,
		})
		if err != nil {
			summary.Failed++
			detail := ReminderDetail{Email: email, Stage: int(stageDue), Status: "failed", Reason: err.Error()}
			summary.Details = append(summary.Details, detail)
			uc.publishEvent(ctx, row.PartnerID, detail, now)
			continue
		}

		// 8. Envia; só grava o estágio depois do envio bem-sucedido
		if err := uc.Email.Send(ctx, email, row.PartnerName, subject, html); err != nil {
			log.Printf("❌ Falha ao enviar lembrete estágio %d para %s: %v", stageDue, mail.MaskEmail(email), err)
			summary.Failed++
			detail := ReminderDetail{Email: email, Stage: int(stageDue), Status: "failed", Reason: err.Error()}
			summary.Details = append(summary.Details, detail)
			uc.publishEvent(ctx, row.PartnerID, detail, now)
			continue
		}

		if err := uc.Progress.RecordReminderSent(ctx, row.PartnerID, stageDue, now); err != nil {
			// Email já saiu; sem o registro o próximo passe pode repetir o
			// estágio. Tolerado pelo design (duplicata rara, não corrompe).
			log.Printf("⚠️ CRITICAL: lembrete enviado mas estágio não gravado para %s: %v", row.PartnerID, err)
		}

		summary.Sent++
		detail := ReminderDetail{Email: email, Stage: int(stageDue), Status: "sent"}
		summary.Details = append(summary.Details, detail)
		uc.publishEvent(ctx, row.PartnerID, detail, now)
	}

	log.Printf("📬 Passe de lembretes: %d varridos, %d enviados, %d falhas, %d encerrados",
		summary.Scanned, summary.Sent, summary.Failed, stopped)

	return summary, nil
}

// stop grava reminders_stopped_at (condicional a ainda ser NULL).
// Falha aqui não é fatal: o próximo passe reavalia e para de novo.
func (uc *DispatchRemindersUseCase) stop(ctx context.Context, partnerID string, at time.Time) {
	if err := uc.Progress.StopReminders(ctx, partnerID, at); err != nil {
		log.Printf("⚠️ Falha ao encerrar lembretes do parceiro %s: %v", partnerID, err)
	}
}

func (uc *DispatchRemindersUseCase) publishEvent(ctx context.Context, partnerID string, d ReminderDetail, at time.Time) {
	if uc.Events == nil {
		return
	}
	payload := queue.ReminderEventPayload{
		PartnerID: partnerID,
		Email:     d.Email,
		Stage:     d.Stage,
		Status:    d.Status,
		Reason:    d.Reason,
		SentAt:    at,
		Origin:    "REMINDER_DISPATCH",
	}
	if err := uc.Events.PublishReminderEvent(ctx, payload); err != nil {
		log.Printf("⚠️ Falha ao publicar evento de auditoria: %v", err)
	}
}
