package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

type PartnerRepository struct {
	DB *sql.DB
}

func NewPartnerRepository(db *sql.DB) *PartnerRepository {
	return &PartnerRepository{DB: db}
}

func (r *PartnerRepository) Create(ctx context.Context, p *entity.Partner) error {
	query := `
		INSERT INTO partners (id, name, email, phone, company, country, status, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`

	_, err := r.DB.ExecContext(ctx, query,
		p.ID,
		p.Name,
		p.Email,
		p.Phone,
		p.Company,
		p.Country,
		p.Status,
		p.CreatedAt,
		p.UpdatedAt,
	)

	if err != nil {

		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) {
			if pgErr.Code == "23505" {
				return entity.ErrEmailAlreadyExists
			}
		}

		log.Printf("Erro crítico no banco: %v", err)
		return err
	}

	return nil
}

func (r *PartnerRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM partners WHERE id = $1`, id)
	return err
}

func (r *PartnerRepository) FindByID(ctx context.Context, id string) (*entity.Partner, error) {
	query := `
		SELECT id, name, email, phone, company, country, status,
		       agreement_signed, agreement_signed_at, created_at, updated_at
		FROM partners
		WHERE id = $1
	`

	var p entity.Partner
	var signedAt sql.NullTime

	err := r.DB.QueryRowContext(ctx, query, id).Scan(
		&p.ID,
		&p.Name,
		&p.Email,
		&p.Phone,
		&p.Company,
		&p.Country,
		&p.Status,
		&p.AgreementSigned,
		&signedAt,
		&p.CreatedAt,
		&p.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrPartnerNotFound
		}
		return nil, err
	}

	if signedAt.Valid {
		p.AgreementSignedAt = &signedAt.Time
	}

	return &p, nil
}
