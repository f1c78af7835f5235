package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// ReminderEventPayload é o evento de auditoria de uma tentativa de lembrete.
// O consumidor grava em reminder_logs e espelha na planilha legada.
type ReminderEventPayload struct {
	PartnerID string    `json:"partner_id"`
	Email     string    `json:"email"`
	Stage     int       `json:"stage"`
	Status    string    `json:"status"` // sent, failed
	Reason    string    `json:"reason,omitempty"`
	SentAt    time.Time `json:"sent_at"`
	Origin    string    `json:"origin"` // REMINDER_DISPATCH
}

type ReminderEventPublisherInterface interface {
	PublishReminderEvent(ctx context.Context, payload ReminderEventPayload) error
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{
		Conn: conn,
		Ch:   ch,
	}
}

func (p *RabbitMQProducer) PublishReminderEvent(ctx context.Context, payload ReminderEventPayload) error {

	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao converter payload: %v", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName, // ex.partners
		RoutingKey,   // k.reminder
		false,        // Mandatory
		false,        // Immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent, // Mensagem salva no disco (segurança!)
		},
	)

	if err != nil {
		return fmt.Errorf("falha ao publicar no RabbitMQ: %v", err)
	}

	return nil
}
