package entity

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Requirement é uma demanda capturada pelo fluxo de intake (chat ou voz)
// do site público. O transcript já chega pronto do front.
type Requirement struct {
	ID      string `json:"id"`
	Email   string `json:"email"`
	Name    string `json:"name,omitempty"`
	Phone   string `json:"phone,omitempty"`
	Message string `json:"message"`
	Channel string `json:"channel"` // chat, voice

	Status    string    `json:"status"` // PENDING, REVIEWED
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type RequirementRepositoryInterface interface {
	Create(ctx context.Context, req *Requirement) error
}

func NewRequirement(email, name, phone, message, channel string) *Requirement {
	if channel != "voice" {
		channel = "chat"
	}
	return &Requirement{
		ID:        uuid.New().String(),
		Email:     email,
		Name:      name,
		Phone:     phone,
		Message:   message,
		Channel:   channel,
		Status:    "PENDING",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}
}
