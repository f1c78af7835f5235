package database

import (
	"context"
	"database/sql"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

type RequirementRepository struct {
	DB *sql.DB
}

func NewRequirementRepository(db *sql.DB) *RequirementRepository {
	return &RequirementRepository{DB: db}
}

func (r *RequirementRepository) Create(ctx context.Context, req *entity.Requirement) error {
	query := `
		INSERT INTO requirements (id, email, name, phone, message, channel, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		req.ID,
		req.Email,
		nullString(req.Name),
		nullString(req.Phone),
		req.Message,
		req.Channel,
		req.Status,
		req.CreatedAt,
		req.UpdatedAt,
	)

	return err
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
