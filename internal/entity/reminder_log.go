package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// ReminderLog é o registro de auditoria de cada tentativa de envio.
type ReminderLog struct {
	ID        string    `json:"id"`
	PartnerID string    `json:"partner_id"`
	Email     string    `json:"email"`
	Stage     int       `json:"stage"`
	Status    string    `json:"status"` // sent, failed
	Reason    string    `json:"reason,omitempty"`
	SentAt    time.Time `json:"sent_at"`
	CreatedAt time.Time `json:"created_at"`
}

type ReminderLogRepositoryInterface interface {
	Create(ctx context.Context, l *ReminderLog) error
}

func NewReminderLog(partnerID, email string, stage int, status, reason string, sentAt time.Time) *ReminderLog {
	return &ReminderLog{
		ID:        uuid.New().String(),
		PartnerID: partnerID,
		Email:     email,
		Stage:     stage,
		Status:    status,
		Reason:    reason,
		SentAt:    sentAt,
		CreatedAt: time.Now(),
	}
}
