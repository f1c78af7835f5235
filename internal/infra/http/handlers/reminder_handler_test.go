package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/meridianadvisory/partner-portal/internal/usecase"
)

type MockDispatcher struct {
	mock.Mock
}

func (m *MockDispatcher) Execute(ctx context.Context) (*usecase.DispatchSummary, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*usecase.DispatchSummary), args.Error(1)
}

func TestReminderHandlerMissingCredential(t *testing.T) {
	dispatcher := new(MockDispatcher)
	handler := NewReminderHandler(dispatcher, errors.New("missing email provider api key (BREVO_API_KEY)"))

	req := httptest.NewRequest("POST", "/internal/reminders/run", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]string
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "missing email provider api key (BREVO_API_KEY)", body["error"])

	dispatcher.AssertNotCalled(t, "Execute", mock.Anything)
}

func TestReminderHandlerRuntimeFailure(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Execute", mock.Anything).Return(nil, errors.New("erro ao buscar progresso pendente: connection refused"))

	handler := NewReminderHandler(dispatcher, nil)

	req := httptest.NewRequest("POST", "/internal/reminders/run", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)

	var body map[string]any
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, false, body["success"])
	assert.Contains(t, body["error"], "connection refused")
}

func TestReminderHandlerSuccessSummary(t *testing.T) {
	dispatcher := new(MockDispatcher)
	dispatcher.On("Execute", mock.Anything).Return(&usecase.DispatchSummary{
		Success: true,
		Scanned: 3,
		Sent:    1,
		Failed:  1,
		Details: []usecase.ReminderDetail{
			{Email: "a@example.com", Stage: 1, Status: "sent"},
			{Email: "b@example.com", Stage: 2, Status: "failed", Reason: "timeout"},
		},
	}, nil)

	handler := NewReminderHandler(dispatcher, nil)

	req := httptest.NewRequest("GET", "/internal/reminders/run", nil)
	rec := httptest.NewRecorder()

	handler.Handle(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var body usecase.DispatchSummary
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, 3, body.Scanned)
	assert.Equal(t, 1, body.Sent)
	assert.Equal(t, 1, body.Failed)
	assert.Len(t, body.Details, 2)
	assert.Equal(t, "timeout", body.Details[1].Reason)
}
