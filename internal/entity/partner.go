package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	// IMPORTANTE: NÃO adicione imports de usecase ou infra aqui!
)

var ErrEmailAlreadyExists = errors.New("a partner with this email already exists")
var ErrPartnerNotFound = errors.New("partner not found")

// Entidade: Partner
type Partner struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
	Country string `json:"country"`

	Status string `json:"status"` // PENDING_ONBOARDING, ACTIVE, SUSPENDED

	AgreementSigned   bool       `json:"agreement_signed"`
	AgreementSignedAt *time.Time `json:"agreement_signed_at,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type PartnerRepositoryInterface interface {
	Create(ctx context.Context, p *Partner) error
	Delete(ctx context.Context, id string) error
	FindByID(ctx context.Context, id string) (*Partner, error)
}

// Factory
func NewPartner(name, email, phone, company, country string) (*Partner, error) {
	partner := &Partner{
		ID:      uuid.New().String(),
		Name:    name,
		Email:   email,
		Phone:   phone,
		Company: company,
		Country: country,

		Status:    "PENDING_ONBOARDING",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}

	if err := partner.Validate(); err != nil {
		return nil, err
	}

	return partner, nil
}

func (p *Partner) Validate() error {
	if p.Name == "" {
		return errors.New("name is required")
	}
	if p.Email == "" {
		return errors.New("email is required")
	}
	if p.Country == "" {
		return errors.New("country is required")
	}
	return nil
}
