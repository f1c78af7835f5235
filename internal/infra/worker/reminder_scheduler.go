package worker

import (
	"context"
	"log"
	"time"

	"github.com/meridianadvisory/partner-portal/internal/infra/http/middleware"
	"github.com/meridianadvisory/partner-portal/internal/usecase"
)

type ReminderDispatcher interface {
	Execute(ctx context.Context) (*usecase.DispatchSummary, error)
}

// ReminderScheduler roda o dispatcher em intervalo fixo. O agendamento é
// explícito e cancelável via ctx; nada de estado global.
type ReminderScheduler struct {
	dispatcher   ReminderDispatcher
	tickInterval time.Duration
}

func NewReminderScheduler(dispatcher ReminderDispatcher, tickInterval time.Duration) *ReminderScheduler {
	if tickInterval <= 0 {
		tickInterval = time.Hour
	}
	return &ReminderScheduler{
		dispatcher:   dispatcher,
		tickInterval: tickInterval,
	}
}

func (w *ReminderScheduler) Start(ctx context.Context) {
	log.Printf("🕒 Reminder Scheduler iniciado (tick %s)", w.tickInterval)

	ticker := time.NewTicker(w.tickInterval)
	defer ticker.Stop()

	w.runPass(ctx)

	for {
		select {
		case <-ctx.Done():
			log.Println("⚠️ Reminder Scheduler encerrado")
			return
		case <-ticker.C:
			w.runPass(ctx)
		}
	}
}

func (w *ReminderScheduler) runPass(ctx context.Context) {
	summary, err := w.dispatcher.Execute(ctx)
	if err != nil {
		log.Printf("❌ Erro no passe agendado de lembretes: %v", err)
		return
	}

	middleware.RecordReminderRun(summary)

	if summary.Sent > 0 || summary.Failed > 0 {
		log.Printf("✅ Passe agendado: %d enviados, %d falhas (de %d varridos)",
			summary.Sent, summary.Failed, summary.Scanned)
	}
}
