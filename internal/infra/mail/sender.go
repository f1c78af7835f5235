package mail

import (
	"context"
	"fmt"

	"gopkg.in/gomail.v2"
)

func NewSMTPSender(host string, port int, user, password, fromName, fromEmail string) *SMTPSender {
	return &SMTPSender{
		Host:      host,
		Port:      port,
		User:      user,
		Password:  password,
		FromName:  fromName,
		FromEmail: fromEmail,
	}
}

// Send entrega via SMTP. O gomail não aceita context; o ctx fica na assinatura
// para o SMTPSender ser intercambiável com o client HTTP do Brevo.
func (s *SMTPSender) Send(ctx context.Context, to, toName, subject, htmlBody string) error {
	m := gomail.NewMessage()
	m.SetAddressHeader("From", s.FromEmail, s.FromName)
	m.SetAddressHeader("To", to, toName)
	m.SetHeader("Subject", subject)
	m.SetBody("text/html", htmlBody)

	d := gomail.NewDialer(s.Host, s.Port, s.User, s.Password)

	if err := d.DialAndSend(m); err != nil {
		return fmt.Errorf("erro ao enviar email SMTP: %w", err)
	}

	return nil
}
