package usecase

import (
	"context"
	"errors"
	"log"
	"time"

	"github.com/meridianadvisory/partner-portal/internal/entity"
	"github.com/meridianadvisory/partner-portal/internal/infra/integration/sheets"
	"github.com/meridianadvisory/partner-portal/internal/infra/mail"
)

type RegisterPartnerUseCase struct {
	Repo         entity.PartnerRepositoryInterface
	ProgressRepo entity.OnboardingProgressRepository
	Sheets       SpreadsheetMirror // pode ser nil (espelho desligado)
	EmailService EmailSender       // pode ser nil
	Links        mail.PortalLinks
}

func NewRegisterPartnerUseCase(
	repo entity.PartnerRepositoryInterface,
	progressRepo entity.OnboardingProgressRepository,
	sheetsMirror SpreadsheetMirror,
	emailService EmailSender,
	links mail.PortalLinks,
) *RegisterPartnerUseCase {
	return &RegisterPartnerUseCase{
		Repo:         repo,
		ProgressRepo: progressRepo,
		Sheets:       sheetsMirror,
		EmailService: emailService,
		Links:        links,
	}
}

func (uc *RegisterPartnerUseCase) Execute(ctx context.Context, input RegisterPartnerInput) (*RegisterPartnerOutput, error) {

	validationErrors := ValidateRegisterPartnerInput(input)
	if len(validationErrors) > 0 {
		errMsg := "validation failed: "
		for _, e := range validationErrors {
			errMsg += e.Field + " (" + e.Message + "), "
		}
		return nil, &DomainError{
			Code:    "VALIDATION_ERROR",
			Message: errMsg,
		}
	}

	partner, err := entity.NewPartner(input.Name, input.Email, input.Phone, input.Company, input.Country)
	if err != nil {
		return nil, &DomainError{
			Code:    "INVALID_PARTNER",
			Message: err.Error(),
		}
	}

	// Parceiro e linha de progresso nascem juntos; se o progresso falhar,
	// a compensação desfaz o parceiro.
	txn := NewTransaction()

	txn.AddOperation("create_partner", func(ctx context.Context) error {
		return uc.Repo.Create(ctx, partner)
	})

	txn.AddCompensation("delete_partner", func(ctx context.Context) error {
		return uc.Repo.Delete(ctx, partner.ID)
	})

	txn.AddOperation("create_progress", func(ctx context.Context) error {
		return uc.ProgressRepo.CreateForPartner(ctx, partner.ID)
	})

	if err := txn.Execute(ctx); err != nil {
		if errors.Is(err, entity.ErrEmailAlreadyExists) {
			return nil, &DomainError{
				Code:    "EMAIL_ALREADY_EXISTS",
				Message: entity.ErrEmailAlreadyExists.Error(),
			}
		}
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to persist partner and onboarding progress: " + err.Error(),
		}
	}

	// Efeitos secundários fora do caminho crítico: espelho na planilha
	// legada e email de boas-vindas.
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 45*time.Second)
		defer cancel()

		if uc.Sheets != nil {
			row := sheets.RegistrationRow{
				PartnerID: partner.ID,
				Name:      partner.Name,
				Email:     partner.Email,
				Phone:     partner.Phone,
				Company:   partner.Company,
				Country:   partner.Country,
				CreatedAt: partner.CreatedAt.Format(time.RFC3339),
			}
			if err := uc.Sheets.AppendRegistration(ctx, row); err != nil {
				log.Printf("⚠️ Falha ao espelhar cadastro na planilha: %v", err)
			}
		}

		if uc.EmailService != nil {
			subject, html, err := mail.RenderWelcome(mail.WelcomeData{
				Name:         partner.Name,
				LoginURL:     uc.Links.LoginURL,
				SupportEmail: uc.Links.SupportEmail,
				SupportPhone: uc.Links.SupportPhone,
			})
			if err == nil {
				err = uc.EmailService.Send(ctx, partner.Email, partner.Name, subject, html)
			}
			if err != nil {
				log.Printf("⚠️ Falha ao enviar boas-vindas para %s: %v", mail.MaskEmail(partner.Email), err)
			}
		}
	}()

	log.Printf("🤝 Parceiro cadastrado: %s (%s)", partner.Name, partner.ID)

	return &RegisterPartnerOutput{
		ID:     partner.ID,
		Name:   partner.Name,
		Email:  partner.Email,
		Status: partner.Status,
		Msg:    "Registration received — check your inbox to continue onboarding.",
	}, nil
}
