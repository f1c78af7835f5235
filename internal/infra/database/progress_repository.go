package database

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

var ErrProgressNotFound = errors.New("onboarding progress not found")

type ProgressRepository struct {
	DB *sql.DB
}

func NewProgressRepository(db *sql.DB) *ProgressRepository {
	return &ProgressRepository{DB: db}
}

const progressColumns = `
	p.partner_id,
	pr.name,
	p.partner_email,
	p.ai_started_at,
	p.ai_last_activity_at,
	p.ai_completed_at,
	p.agreement_completed_at,
	pr.agreement_signed,
	pr.agreement_signed_at,
	p.last_reminder_stage,
	p.last_reminder_sent_at,
	p.reminders_stopped_at,
	pr.created_at,
	p.updated_at
`

// ListPending busca as linhas ainda não encerradas, mais recentes primeiro.
// O limite é um teto best-effort: quem ficar de fora entra no próximo passe.
func (r *ProgressRepository) ListPending(ctx context.Context, limit int) ([]*entity.OnboardingProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM partner_onboarding_progress p
		JOIN partners pr ON pr.id = p.partner_id
		WHERE p.reminders_stopped_at IS NULL
		ORDER BY p.updated_at DESC
		LIMIT $1
	`

	rows, err := r.DB.QueryContext(ctx, query, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []*entity.OnboardingProgress
	for rows.Next() {
		p, err := scanProgress(rows.Scan)
		if err != nil {
			return nil, err
		}
		result = append(result, p)
	}

	return result, rows.Err()
}

func (r *ProgressRepository) FindByPartnerID(ctx context.Context, partnerID string) (*entity.OnboardingProgress, error) {
	query := `
		SELECT ` + progressColumns + `
		FROM partner_onboarding_progress p
		JOIN partners pr ON pr.id = p.partner_id
		WHERE p.partner_id = $1
	`

	p, err := scanProgress(r.DB.QueryRowContext(ctx, query, partnerID).Scan)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProgressNotFound
		}
		return nil, err
	}

	return p, nil
}

func (r *ProgressRepository) CreateForPartner(ctx context.Context, partnerID string) error {
	query := `
		INSERT INTO partner_onboarding_progress
			(partner_id, partner_email, last_reminder_stage, updated_at)
		SELECT id, email, 0, NOW()
		FROM partners
		WHERE id = $1
	`

	_, err := r.DB.ExecContext(ctx, query, partnerID)
	return err
}

// StopReminders é condicional: só escreve se reminders_stopped_at ainda for
// NULL, para dois passes concorrentes não sobrescreverem o encerramento.
func (r *ProgressRepository) StopReminders(ctx context.Context, partnerID string, at time.Time) error {
	query := `
		UPDATE partner_onboarding_progress
		SET reminders_stopped_at = $2, updated_at = NOW()
		WHERE partner_id = $1
		  AND reminders_stopped_at IS NULL
	`

	_, err := r.DB.ExecContext(ctx, query, partnerID, at)
	return err
}

// RecordReminderSent guarda contra regressão: o estágio só aumenta.
func (r *ProgressRepository) RecordReminderSent(ctx context.Context, partnerID string, stage entity.ReminderStage, at time.Time) error {
	query := `
		UPDATE partner_onboarding_progress
		SET last_reminder_stage = $2, last_reminder_sent_at = $3, updated_at = NOW()
		WHERE partner_id = $1
		  AND last_reminder_stage < $2
	`

	_, err := r.DB.ExecContext(ctx, query, partnerID, int(stage), at)
	return err
}

func scanProgress(scan func(dest ...any) error) (*entity.OnboardingProgress, error) {
	var p entity.OnboardingProgress
	var aiStarted, aiActivity, aiCompleted sql.NullTime
	var agrCompleted, agrSigned sql.NullTime
	var lastSent, stopped, created sql.NullTime

	err := scan(
		&p.PartnerID,
		&p.PartnerName,
		&p.PartnerEmail,
		&aiStarted,
		&aiActivity,
		&aiCompleted,
		&agrCompleted,
		&p.AgreementSigned,
		&agrSigned,
		&p.LastReminderStage,
		&lastSent,
		&stopped,
		&created,
		&p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.AIStartedAt = timePtr(aiStarted)
	p.AILastActivityAt = timePtr(aiActivity)
	p.AICompletedAt = timePtr(aiCompleted)
	p.AgreementCompletedAt = timePtr(agrCompleted)
	p.AgreementSignedAt = timePtr(agrSigned)
	p.LastReminderSentAt = timePtr(lastSent)
	p.RemindersStoppedAt = timePtr(stopped)
	p.PartnerCreatedAt = timePtr(created)

	return &p, nil
}

func timePtr(t sql.NullTime) *time.Time {
	if !t.Valid {
		return nil
	}
	v := t.Time
	return &v
}
