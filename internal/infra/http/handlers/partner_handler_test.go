package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/meridianadvisory/partner-portal/internal/entity"
	"github.com/meridianadvisory/partner-portal/internal/infra/mail"
	"github.com/meridianadvisory/partner-portal/internal/usecase"
)

// Stubs backed por funções: o handler exige o usecase concreto, então os
// dublês ficam na borda dos repositórios.
type stubPartnerRepo struct {
	createFn func(ctx context.Context, partner *entity.Partner) error
	deleted  []string
}

func (s *stubPartnerRepo) Create(ctx context.Context, partner *entity.Partner) error {
	if s.createFn != nil {
		return s.createFn(ctx, partner)
	}
	return nil
}

func (s *stubPartnerRepo) Delete(ctx context.Context, id string) error {
	s.deleted = append(s.deleted, id)
	return nil
}

func (s *stubPartnerRepo) FindByID(ctx context.Context, id string) (*entity.Partner, error) {
	return nil, entity.ErrPartnerNotFound
}

type stubProgressRepo struct {
	createForPartnerFn func(ctx context.Context, partnerID string) error
}

func (s *stubProgressRepo) ListPending(ctx context.Context, limit int) ([]*entity.OnboardingProgress, error) {
	return nil, nil
}

func (s *stubProgressRepo) FindByPartnerID(ctx context.Context, partnerID string) (*entity.OnboardingProgress, error) {
	return nil, nil
}

func (s *stubProgressRepo) CreateForPartner(ctx context.Context, partnerID string) error {
	if s.createForPartnerFn != nil {
		return s.createForPartnerFn(ctx, partnerID)
	}
	return nil
}

func (s *stubProgressRepo) StopReminders(ctx context.Context, partnerID string, at time.Time) error {
	return nil
}

func (s *stubProgressRepo) RecordReminderSent(ctx context.Context, partnerID string, stage entity.ReminderStage, at time.Time) error {
	return nil
}

func newPartnerHandler(partners *stubPartnerRepo, progress *stubProgressRepo) *PartnerHandler {
	uc := usecase.NewRegisterPartnerUseCase(partners, progress, nil, nil, mail.PortalLinks{})
	return NewPartnerHandler(uc)
}

func registerBody() []byte {
	body, _ := json.Marshal(map[string]any{
		"name":           "Carlos Mendes",
		"email":          "carlos@example.com",
		"country":        "Brazil",
		"terms_accepted": true,
	})
	return body
}

func TestHandleRegisterCreated(t *testing.T) {
	handler := newPartnerHandler(&stubPartnerRepo{}, &stubProgressRepo{})

	req := httptest.NewRequest("POST", "/partners/register", bytes.NewReader(registerBody()))
	rec := httptest.NewRecorder()

	handler.HandleRegister(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)

	var out usecase.RegisterPartnerOutput
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	assert.NotEmpty(t, out.ID)
	assert.Equal(t, "PENDING_ONBOARDING", out.Status)
}

func TestHandleRegisterDuplicateEmailConflict(t *testing.T) {
	partners := &stubPartnerRepo{
		createFn: func(ctx context.Context, partner *entity.Partner) error {
			return entity.ErrEmailAlreadyExists
		},
	}
	handler := newPartnerHandler(partners, &stubProgressRepo{})

	req := httptest.NewRequest("POST", "/partners/register", bytes.NewReader(registerBody()))
	rec := httptest.NewRecorder()

	handler.HandleRegister(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "EMAIL_ALREADY_EXISTS", body["error"])
}

func TestHandleRegisterValidationBadRequest(t *testing.T) {
	handler := newPartnerHandler(&stubPartnerRepo{}, &stubProgressRepo{})

	body, _ := json.Marshal(map[string]any{"email": "carlos@example.com"})
	req := httptest.NewRequest("POST", "/partners/register", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.HandleRegister(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp["error"])
}

func TestHandleRegisterInvalidJSON(t *testing.T) {
	handler := newPartnerHandler(&stubPartnerRepo{}, &stubProgressRepo{})

	req := httptest.NewRequest("POST", "/partners/register", bytes.NewReader([]byte("{broken")))
	rec := httptest.NewRecorder()

	handler.HandleRegister(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)

	var resp map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "INVALID_JSON", resp["error"])
}
