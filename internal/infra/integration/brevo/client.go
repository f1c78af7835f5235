package brevo

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

type Client struct {
	baseURL     string
	apiKey      string
	senderName  string
	senderEmail string
	http        *http.Client
}

func NewClient(apiKey, baseURL, senderName, senderEmail string) *Client {
	return &Client{
		baseURL:     baseURL,
		apiKey:      apiKey,
		senderName:  senderName,
		senderEmail: senderEmail,
		http:        &http.Client{Timeout: 10 * time.Second},
	}
}

// Send: dispara um email transacional pela API HTTP do Brevo.
// Qualquer status fora de 2xx é falha dura para esse destinatário,
// com o corpo da resposta preservado como motivo.
func (c *Client) Send(ctx context.Context, to, toName, subject, htmlContent string) error {
	url := fmt.Sprintf("%s/v3/smtp/email", c.baseURL)

	// 1. Monta o payload
	payload := sendEmailRequest{
		Sender:      sender{Name: c.senderName, Email: c.senderEmail},
		To:          []recipient{{Email: to, Name: toName}},
		Subject:     subject,
		HTMLContent: htmlContent,
	}

	jsonBody, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("erro ao marshal email: %w", err)
	}

	// 2. Cria Request
	req, err := http.NewRequestWithContext(ctx, "POST", url, bytes.NewBuffer(jsonBody))
	if err != nil {
		return err
	}
	c.setHeaders(req)

	// 3. Envia
	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("erro request brevo: %w", err)
	}
	defer resp.Body.Close()

	// 4. Trata Erro
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("brevo rejeitou o envio (status %d): %s", resp.StatusCode, string(body))
	}

	// 5. Decodifica (só para log/debug; o messageId não é persistido)
	var response sendEmailResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		// Resposta 2xx sem corpo JSON ainda conta como sucesso
		return nil
	}

	return nil
}

// setHeaders centraliza os headers obrigatórios
func (c *Client) setHeaders(req *http.Request) {
	req.Header.Set("api-key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", "MeridianPartnerPortal/1.0")
}
