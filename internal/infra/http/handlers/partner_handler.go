package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/meridianadvisory/partner-portal/internal/infra/http/middleware"
	"github.com/meridianadvisory/partner-portal/internal/usecase"
)

type PartnerHandler struct {
	RegisterUC *usecase.RegisterPartnerUseCase
}

func NewPartnerHandler(uc *usecase.RegisterPartnerUseCase) *PartnerHandler {
	return &PartnerHandler{RegisterUC: uc}
}

// HandleRegister (POST /partners/register) — passo final do wizard.
func (h *PartnerHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var input usecase.RegisterPartnerInput

	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		writeErrorResponse(w, http.StatusBadRequest, "INVALID_JSON", "invalid JSON body")
		return
	}

	output, err := h.RegisterUC.Execute(r.Context(), input)
	if err != nil {
		var domainErr *usecase.DomainError
		if errors.As(err, &domainErr) {
			status := http.StatusBadRequest
			if domainErr.Code == "EMAIL_ALREADY_EXISTS" {
				status = http.StatusConflict
			}
			writeErrorResponse(w, status, domainErr.Code, domainErr.Message)
			return
		}
		writeErrorResponse(w, http.StatusInternalServerError, "INTERNAL_ERROR", err.Error())
		return
	}

	middleware.RecordPartnerRegistration()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(output)
}

func writeErrorResponse(w http.ResponseWriter, status int, code, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{
		"error":   code,
		"message": message,
	})
}
