package sheets

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/meridianadvisory/partner-portal/internal/infra/queue"
)

// Client fala com o endpoint legado de planilha (Apps Script).
// É best-effort em todos os chamadores: a planilha é espelho, não fonte.
type Client struct {
	webhookURL string
	http       *http.Client
}

func NewClient(webhookURL string) *Client {
	return &Client{
		webhookURL: webhookURL,
		// Apps Script é lento; timeout maior que o padrão das integrações
		http: &http.Client{Timeout: 30 * time.Second},
	}
}

// AppendRegistration espelha um cadastro de parceiro na aba "registrations".
func (c *Client) AppendRegistration(ctx context.Context, row RegistrationRow) error {
	return c.append(ctx, "registrations", map[string]string{
		"partner_id": row.PartnerID,
		"name":       row.Name,
		"email":      row.Email,
		"phone":      row.Phone,
		"company":    row.Company,
		"country":    row.Country,
		"created_at": row.CreatedAt,
	})
}

// AppendReminderLog espelha uma tentativa de lembrete na aba "reminders".
func (c *Client) AppendReminderLog(ctx context.Context, payload queue.ReminderEventPayload) error {
	return c.append(ctx, "reminders", map[string]string{
		"partner_id": payload.PartnerID,
		"email":      payload.Email,
		"stage":      strconv.Itoa(payload.Stage),
		"status":     payload.Status,
		"reason":     payload.Reason,
		"sent_at":    payload.SentAt.Format(time.RFC3339),
	})
}

func (c *Client) append(ctx context.Context, sheet string, row map[string]string) error {
	payload := appendRequest{Sheet: sheet, Row: row}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao marshal linha da planilha: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, "POST", c.webhookURL, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request planilha: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("script da planilha rejeitou (status %d): %s", resp.StatusCode, string(body))
	}

	var response appendResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err == nil && response.Error != "" {
		return fmt.Errorf("script da planilha retornou erro: %s", response.Error)
	}

	return nil
}
