package database

import (
	"context"
	"database/sql"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

type ReminderLogRepository struct {
	DB *sql.DB
}

func NewReminderLogRepository(db *sql.DB) *ReminderLogRepository {
	return &ReminderLogRepository{DB: db}
}

func (r *ReminderLogRepository) Create(ctx context.Context, l *entity.ReminderLog) error {
	query := `
		INSERT INTO reminder_logs (id, partner_id, email, stage, status, reason, sent_at, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`

	_, err := r.DB.ExecContext(ctx, query,
		l.ID,
		l.PartnerID,
		l.Email,
		l.Stage,
		l.Status,
		l.Reason,
		l.SentAt,
		l.CreatedAt,
	)

	return err
}
