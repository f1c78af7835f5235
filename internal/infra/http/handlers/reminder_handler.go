package handlers

import (
	"context"
	"encoding/json"
	"log"
	"net/http"

	"github.com/meridianadvisory/partner-portal/internal/infra/http/middleware"
	"github.com/meridianadvisory/partner-portal/internal/usecase"
)

// ReminderDispatcher é o contrato do passe de lembretes (usecase).
type ReminderDispatcher interface {
	Execute(ctx context.Context) (*usecase.DispatchSummary, error)
}

// ReminderHandler expõe o disparo manual do dispatcher. O scheduler usa o
// mesmo usecase por dentro; esta rota existe para operação e cron externo.
type ReminderHandler struct {
	Dispatcher ReminderDispatcher
	// ConfigErr carrega a credencial faltante detectada no boot.
	// Enquanto não for nil, toda invocação responde 500 sem varrer nada.
	ConfigErr error
}

func NewReminderHandler(dispatcher ReminderDispatcher, configErr error) *ReminderHandler {
	return &ReminderHandler{
		Dispatcher: dispatcher,
		ConfigErr:  configErr,
	}
}

// Handle aceita qualquer método (cron externo usa GET, operação usa POST).
// O preflight OPTIONS é resolvido pelo middleware de CORS.
func (h *ReminderHandler) Handle(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")

	if h.ConfigErr != nil {
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]string{"error": h.ConfigErr.Error()})
		return
	}

	summary, err := h.Dispatcher.Execute(r.Context())
	if err != nil {
		log.Printf("❌ Passe de lembretes falhou: %v", err)
		w.WriteHeader(http.StatusInternalServerError)
		json.NewEncoder(w).Encode(map[string]any{
			"success": false,
			"error":   err.Error(),
		})
		return
	}

	middleware.RecordReminderRun(summary)

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(summary)
}
