package entity

import (
	"context"
	"time"
)

// OnboardingProgress é a linha de acompanhamento de onboarding de um parceiro.
// Os campos do perfil (Name, AgreementSigned*) chegam via JOIN com partners.
type OnboardingProgress struct {
	PartnerID    string `json:"partner_id"`
	PartnerName  string `json:"partner_name"`
	PartnerEmail string `json:"partner_email"`

	AIStartedAt      *time.Time `json:"ai_started_at,omitempty"`
	AILastActivityAt *time.Time `json:"ai_last_activity_at,omitempty"`
	AICompletedAt    *time.Time `json:"ai_completed_at,omitempty"`

	AgreementCompletedAt *time.Time `json:"agreement_completed_at,omitempty"`
	AgreementSigned      bool       `json:"agreement_signed"`
	AgreementSignedAt    *time.Time `json:"agreement_signed_at,omitempty"`

	LastReminderStage  int        `json:"last_reminder_stage"`
	LastReminderSentAt *time.Time `json:"last_reminder_sent_at,omitempty"`
	RemindersStoppedAt *time.Time `json:"reminders_stopped_at,omitempty"`

	PartnerCreatedAt *time.Time `json:"partner_created_at,omitempty"`
	UpdatedAt        time.Time  `json:"updated_at"`
}

type OnboardingProgressRepository interface {
	// ListPending retorna linhas com reminders_stopped_at IS NULL,
	// mais recentes primeiro, limitado a `limit`.
	ListPending(ctx context.Context, limit int) ([]*OnboardingProgress, error)
	FindByPartnerID(ctx context.Context, partnerID string) (*OnboardingProgress, error)
	CreateForPartner(ctx context.Context, partnerID string) error
	// StopReminders só escreve se reminders_stopped_at ainda for NULL.
	StopReminders(ctx context.Context, partnerID string, at time.Time) error
	RecordReminderSent(ctx context.Context, partnerID string, stage ReminderStage, at time.Time) error
}

// Anchor é o "pendente desde": última atividade no perfil de IA,
// senão o início do perfil, senão a criação do parceiro.
func (p *OnboardingProgress) Anchor() *time.Time {
	if p.AILastActivityAt != nil {
		return p.AILastActivityAt
	}
	if p.AIStartedAt != nil {
		return p.AIStartedAt
	}
	return p.PartnerCreatedAt
}

func (p *OnboardingProgress) AIComplete() bool {
	return p.AICompletedAt != nil
}

// AgreementComplete mescla as duas fontes do sinal de contrato assinado:
// o timestamp na própria linha de progresso e a flag/timestamp do perfil.
// Qualquer fonte verdadeira => verdadeiro.
func (p *OnboardingProgress) AgreementComplete() bool {
	return p.AgreementCompletedAt != nil || p.AgreementSigned || p.AgreementSignedAt != nil
}

func (p *OnboardingProgress) OnboardingComplete() bool {
	return p.AIComplete() && p.AgreementComplete()
}
