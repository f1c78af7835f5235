package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/meridianadvisory/partner-portal/internal/entity"
	"github.com/meridianadvisory/partner-portal/internal/infra/integration/brevo"
	"github.com/meridianadvisory/partner-portal/internal/infra/mail"
)

// Harness manual: envia um lembrete de estágio 1 de verdade pelo Brevo.
// Rode com BREVO_API_KEY e TEST_RECIPIENT no .env.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("⚠️  Aviso: arquivo .env não encontrado, usando variáveis de ambiente do sistema")
	}

	if os.Getenv("BREVO_API_KEY") == "" {
		log.Fatal("❌ BREVO_API_KEY deve estar configurado no .env")
	}
	recipient := os.Getenv("TEST_RECIPIENT")
	if recipient == "" {
		log.Fatal("❌ TEST_RECIPIENT deve estar configurado no .env")
	}

	baseURL := os.Getenv("BREVO_URL")
	if baseURL == "" {
		baseURL = "https://api.brevo.com"
	}

	client := brevo.NewClient(
		os.Getenv("BREVO_API_KEY"),
		baseURL,
		"Meridian Advisory Partners",
		"no-reply@meridianadvisory.com",
	)

	subject, html, err := mail.RenderReminder(entity.StageFirst, mail.ReminderData{
		Name:          "Teste da Silva",
		MaskedEmail:   mail.MaskEmail(recipient),
		PendingDays:   2,
		Deadline:      "15 Sep 2026",
		AIDone:        false,
		AgreementDone: true,
		LoginURL:      "https://partners.meridianadvisory.com/login",
		SupportEmail:  "support@meridianadvisory.com",
		SupportPhone:  "+44 20 7946 0857",
	})
	if err != nil {
		log.Fatalf("Erro ao renderizar template: %v", err)
	}

	fmt.Println("🔄 Enviando lembrete de teste via Brevo...")
	fmt.Printf("   Para: %s\n", recipient)
	fmt.Printf("   Assunto: %s\n\n", subject)

	if err := client.Send(context.Background(), recipient, "Teste da Silva", subject, html); err != nil {
		log.Fatalf("Erro ao enviar pelo Brevo: %v", err)
	}

	fmt.Println("Email enviado com sucesso! Confira a caixa de entrada.")
}
