package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

// SpreadsheetForwarder define o contrato para o espelho legado de planilha.
type SpreadsheetForwarder interface {
	AppendReminderLog(ctx context.Context, payload ReminderEventPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	LogRepo entity.ReminderLogRepositoryInterface
	Sheets  SpreadsheetForwarder // pode ser nil quando o espelho está desligado
}

func NewWorker(ch *amqp.Channel, logRepo entity.ReminderLogRepositoryInterface, sheets SpreadsheetForwarder) *Worker {
	return &Worker{
		Channel: ch,
		LogRepo: logRepo,
		Sheets:  sheets,
	}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName, // fila
		"",        // consumer
		false,     // auto-ack (manual é mais seguro)
		false,     // exclusive
		false,     // no-local
		false,     // no-wait
		nil,       // args
	)
	if err != nil {
		log.Fatalf("❌ Falha ao registrar consumidor RabbitMQ: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload ReminderEventPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("❌ [AUDIT] JSON Inválido: %s", err)
				// Mensagem podre (malformada). Rejeita sem requeue para não travar a fila.
				d.Nack(false, false)
				continue
			}

			if err := w.processEvent(context.Background(), payload); err != nil {
				log.Printf("❌ [AUDIT] Erro ao registrar evento: %s", err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf(" [*] Worker de auditoria aguardando na fila '%s'", queueName)
	<-forever
}

func (w *Worker) processEvent(ctx context.Context, payload ReminderEventPayload) error {
	logEntry := entity.NewReminderLog(
		payload.PartnerID,
		payload.Email,
		payload.Stage,
		payload.Status,
		payload.Reason,
		payload.SentAt,
	)

	if err := w.LogRepo.Create(ctx, logEntry); err != nil {
		return err
	}

	// Espelho na planilha é best-effort: falha vira log, nunca Nack,
	// senão um Apps Script fora do ar reprocessa auditoria já gravada.
	if w.Sheets != nil {
		if err := w.Sheets.AppendReminderLog(ctx, payload); err != nil {
			log.Printf("⚠️ [AUDIT] Falha ao espelhar na planilha: %v", err)
		}
	}

	return nil
}
