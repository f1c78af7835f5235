package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meridianadvisory/partner-portal/internal/entity"
	"github.com/meridianadvisory/partner-portal/internal/infra/mail"
)

type MockPartnerRepo struct {
	mock.Mock
}

func (m *MockPartnerRepo) Create(ctx context.Context, partner *entity.Partner) error {
	args := m.Called(ctx, partner)
	return args.Error(0)
}

func (m *MockPartnerRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPartnerRepo) FindByID(ctx context.Context, id string) (*entity.Partner, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*entity.Partner), args.Error(1)
}

func validRegisterInput() RegisterPartnerInput {
	return RegisterPartnerInput{
		Name:          "Carlos Mendes",
		Email:         "carlos@example.com",
		Phone:         "+5511999990000",
		Company:       "Mendes Consultoria",
		Country:       "Brazil",
		TermsAccepted: true,
	}
}

// Sheets e EmailService ficam nil nos testes para não disparar a goroutine
// de efeitos secundários.
func newRegisterUC(repo *MockPartnerRepo, progress *MockProgressRepo) *RegisterPartnerUseCase {
	return NewRegisterPartnerUseCase(repo, progress, nil, nil, mail.PortalLinks{})
}

func TestRegisterPartnerSuccess(t *testing.T) {
	repo := new(MockPartnerRepo)
	progress := new(MockProgressRepo)

	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Partner")).Return(nil)
	progress.On("CreateForPartner", mock.Anything, mock.AnythingOfType("string")).Return(nil)

	out, err := newRegisterUC(repo, progress).Execute(context.Background(), validRegisterInput())

	assert.NoError(t, err)
	assert.NotNil(t, out)
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "Carlos Mendes", out.Name)
	assert.Equal(t, "carlos@example.com", out.Email)
	assert.Equal(t, "PENDING_ONBOARDING", out.Status)

	repo.AssertCalled(t, "Create", mock.Anything, mock.AnythingOfType("*entity.Partner"))
	progress.AssertCalled(t, "CreateForPartner", mock.Anything, out.ID)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestRegisterPartnerDuplicateEmail(t *testing.T) {
	repo := new(MockPartnerRepo)
	progress := new(MockProgressRepo)

	repo.On("Create", mock.Anything, mock.Anything).Return(entity.ErrEmailAlreadyExists)

	out, err := newRegisterUC(repo, progress).Execute(context.Background(), validRegisterInput())

	assert.Nil(t, out)
	assert.True(t, IsDomainError(err))

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", domainErr.Code)

	progress.AssertNotCalled(t, "CreateForPartner", mock.Anything, mock.Anything)
}

// TestRegisterPartnerCompensatesOnProgressFailure - progresso falhou,
// o parceiro recém-criado é desfeito.
func TestRegisterPartnerCompensatesOnProgressFailure(t *testing.T) {
	repo := new(MockPartnerRepo)
	progress := new(MockProgressRepo)

	repo.On("Create", mock.Anything, mock.Anything).Return(nil)
	repo.On("Delete", mock.Anything, mock.AnythingOfType("string")).Return(nil)
	progress.On("CreateForPartner", mock.Anything, mock.Anything).Return(errors.New("insert failed"))

	out, err := newRegisterUC(repo, progress).Execute(context.Background(), validRegisterInput())

	assert.Nil(t, out)
	assert.True(t, IsTechnicalError(err))

	var techErr *TechnicalError
	assert.True(t, errors.As(err, &techErr))
	assert.Equal(t, "DATABASE_ERROR", techErr.Code)

	repo.AssertCalled(t, "Delete", mock.Anything, mock.AnythingOfType("string"))
}

func TestRegisterPartnerValidationFailure(t *testing.T) {
	repo := new(MockPartnerRepo)
	progress := new(MockProgressRepo)

	input := validRegisterInput()
	input.Email = "not-an-email"
	input.TermsAccepted = false

	out, err := newRegisterUC(repo, progress).Execute(context.Background(), input)

	assert.Nil(t, out)

	var domainErr *DomainError
	assert.True(t, errors.As(err, &domainErr))
	assert.Equal(t, "VALIDATION_ERROR", domainErr.Code)
	assert.Contains(t, domainErr.Message, "email")

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}
