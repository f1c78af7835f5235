package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

type MockRequirementRepo struct {
	mock.Mock
}

func (m *MockRequirementRepo) Create(ctx context.Context, requirement *entity.Requirement) error {
	args := m.Called(ctx, requirement)
	return args.Error(0)
}

func intakeRequest(t *testing.T, payload any, ip string) *http.Request {
	t.Helper()
	body, err := json.Marshal(payload)
	assert.NoError(t, err)
	req := httptest.NewRequest("POST", "/intake/requirements", bytes.NewReader(body))
	req.Header.Set("X-Forwarded-For", ip)
	return req
}

func TestCaptureRequirementSuccess(t *testing.T) {
	repo := new(MockRequirementRepo)
	repo.On("Create", mock.Anything, mock.AnythingOfType("*entity.Requirement")).Return(nil)

	handler := NewIntakeHandler(repo)

	req := intakeRequest(t, CaptureRequirementRequest{
		Email:   "lead@example.com",
		Name:    "Bruno Lima",
		Message: "Preciso de assessoria para expansão internacional",
		Channel: "voice",
	}, "10.0.0.1")
	rec := httptest.NewRecorder()

	handler.CaptureRequirement(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp CaptureRequirementResponse
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.NotEmpty(t, resp.ID)
}

func TestCaptureRequirementValidation(t *testing.T) {
	repo := new(MockRequirementRepo)
	handler := NewIntakeHandler(repo)

	tests := []struct {
		name    string
		payload CaptureRequirementRequest
		message string
	}{
		{"sem email", CaptureRequirementRequest{Message: "oi"}, "Email is required"},
		{"sem mensagem", CaptureRequirementRequest{Email: "a@example.com"}, "Message is required"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := intakeRequest(t, tt.payload, fmt.Sprintf("10.0.0.%d", i+2))
			rec := httptest.NewRecorder()

			handler.CaptureRequirement(rec, req)

			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp CaptureRequirementResponse
			assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.False(t, resp.Success)
			assert.Equal(t, tt.message, resp.Message)
		})
	}

	repo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestCaptureRequirementInvalidJSON(t *testing.T) {
	repo := new(MockRequirementRepo)
	handler := NewIntakeHandler(repo)

	req := httptest.NewRequest("POST", "/intake/requirements", bytes.NewReader([]byte("{nope")))
	rec := httptest.NewRecorder()

	handler.CaptureRequirement(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCaptureRequirementRateLimited(t *testing.T) {
	repo := new(MockRequirementRepo)
	repo.On("Create", mock.Anything, mock.Anything).Return(nil)

	handler := NewIntakeHandler(repo)

	payload := CaptureRequirementRequest{Email: "lead@example.com", Message: "hello"}

	var lastCode int
	for i := 0; i < 11; i++ {
		req := intakeRequest(t, payload, "192.168.1.50")
		rec := httptest.NewRecorder()
		handler.CaptureRequirement(rec, req)
		lastCode = rec.Code
	}

	assert.Equal(t, http.StatusTooManyRequests, lastCode)
}

func TestRateLimiterResetsAfterWindow(t *testing.T) {
	rl := NewRateLimiter(2, 50*time.Millisecond)

	assert.True(t, rl.Allow("1.2.3.4"))
	assert.True(t, rl.Allow("1.2.3.4"))
	assert.False(t, rl.Allow("1.2.3.4"))

	time.Sleep(60 * time.Millisecond)
	assert.True(t, rl.Allow("1.2.3.4"))
}
