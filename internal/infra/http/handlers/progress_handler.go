package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

type ProgressHandler struct {
	ProgressRepo entity.OnboardingProgressRepository
}

func NewProgressHandler(repo entity.OnboardingProgressRepository) *ProgressHandler {
	return &ProgressHandler{ProgressRepo: repo}
}

// HandleGet (GET /partners/{partnerId}/onboarding) — o dashboard do parceiro
// lê daqui o estado dos dois gates e do último lembrete.
func (h *ProgressHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	partnerID := chi.URLParam(r, "partnerId")
	if partnerID == "" {
		http.Error(w, "partner id is required", http.StatusBadRequest)
		return
	}

	progress, err := h.ProgressRepo.FindByPartnerID(r.Context(), partnerID)
	if err != nil {
		http.Error(w, "onboarding progress not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]any{
		"progress":           progress,
		"ai_complete":        progress.AIComplete(),
		"agreement_complete": progress.AgreementComplete(),
	})
}
