package main

import (
	"context"
	"database/sql"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	amqp "github.com/rabbitmq/amqp091-go"

	"github.com/meridianadvisory/partner-portal/internal/config"
	"github.com/meridianadvisory/partner-portal/internal/infra/database"
	"github.com/meridianadvisory/partner-portal/internal/infra/http/handlers"
	appmw "github.com/meridianadvisory/partner-portal/internal/infra/http/middleware"
	"github.com/meridianadvisory/partner-portal/internal/infra/integration/brevo"
	"github.com/meridianadvisory/partner-portal/internal/infra/integration/sheets"
	"github.com/meridianadvisory/partner-portal/internal/infra/mail"
	"github.com/meridianadvisory/partner-portal/internal/infra/queue"
	"github.com/meridianadvisory/partner-portal/internal/infra/worker"
	"github.com/meridianadvisory/partner-portal/internal/usecase"
)

func main() {
	cfg := config.Load()
	cfgErr := cfg.ReminderConfigError()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// 1. Banco (Supabase Postgres). Sem credencial o serviço sobe mesmo
	// assim: as rotas respondem o erro de configuração, igual à health.
	var db *sql.DB
	if cfg.DatabaseURL != "" {
		var err error
		db, err = database.NewDBConnection(cfg.DatabaseURL)
		if err != nil {
			log.Fatal(err)
		}
		defer db.Close()
	} else {
		log.Println("⚠️ DATABASE_URL ausente; subindo sem banco")
	}

	// 2. RabbitMQ (auditoria de lembretes). Opcional: sem broker o
	// dispatcher roda igual, só sem trilha de eventos.
	var rabbit *queue.RabbitMQ
	if r, err := queue.NewRabbitMQ(cfg.RabbitUser, cfg.RabbitPass, cfg.RabbitHost, cfg.RabbitPort); err != nil {
		log.Printf("⚠️ RabbitMQ indisponível, auditoria desligada: %v", err)
	} else {
		rabbit = r
		defer rabbit.Conn.Close()
		defer rabbit.Ch.Close()
	}

	// 3. Provedor de email
	var emailSender usecase.EmailSender
	switch {
	case cfg.EmailProvider == "smtp" && cfg.MailHost != "":
		emailSender = mail.NewSMTPSender(cfg.MailHost, cfg.MailPort, cfg.MailUser, cfg.MailPass, cfg.FromName, cfg.FromEmail)
	case cfg.BrevoAPIKey != "":
		emailSender = brevo.NewClient(cfg.BrevoAPIKey, cfg.BrevoURL, cfg.FromName, cfg.FromEmail)
	}

	// 4. Espelho legado de planilha (best-effort)
	var sheetsClient *sheets.Client
	if cfg.SheetsWebhookURL != "" {
		sheetsClient = sheets.NewClient(cfg.SheetsWebhookURL)
	}

	var events usecase.ReminderEventPublisher
	if rabbit != nil {
		events = queue.NewProducer(rabbit.Conn, rabbit.Ch)
	}

	links := mail.PortalLinks{
		LoginURL:     cfg.LoginURL,
		SupportEmail: cfg.SupportEmail,
		SupportPhone: cfg.SupportPhone,
	}

	// 5. UseCases + worker de auditoria + scheduler
	var dispatchUC *usecase.DispatchRemindersUseCase
	var registerUC *usecase.RegisterPartnerUseCase
	var progressRepo *database.ProgressRepository

	if db != nil {
		partnerRepo := database.NewPartnerRepository(db)
		progressRepo = database.NewProgressRepository(db)

		var mirror usecase.SpreadsheetMirror
		if sheetsClient != nil {
			mirror = sheetsClient
		}
		registerUC = usecase.NewRegisterPartnerUseCase(partnerRepo, progressRepo, mirror, emailSender, links)

		if emailSender != nil {
			dispatchUC = usecase.NewDispatchRemindersUseCase(progressRepo, emailSender, events, links, cfg.ReminderBatchLimit)

			go worker.NewReminderScheduler(dispatchUC, cfg.ReminderTick).Start(ctx)
		}

		if rabbit != nil {
			var forwarder queue.SpreadsheetForwarder
			if sheetsClient != nil {
				forwarder = sheetsClient
			}
			auditWorker := queue.NewWorker(rabbit.Ch, database.NewReminderLogRepository(db), forwarder)
			go auditWorker.Start(queue.QueueName)
		}
	}

	// 6. Handlers
	reminderHandler := handlers.NewReminderHandler(dispatchUC, cfgErr)

	var rabbitConn *amqp.Connection
	if rabbit != nil {
		rabbitConn = rabbit.Conn
	}
	healthHandler := handlers.NewHealthHandler(db, rabbitConn, emailSender != nil)

	// 7. Router
	r := chi.NewRouter()
	r.Use(chimw.Logger)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders: []string{"*"},
	}))
	r.Use(appmw.Metrics)

	r.HandleFunc("/internal/reminders/run", reminderHandler.Handle)
	r.Get("/health", healthHandler.Handle)
	r.Handle("/metrics", promhttp.Handler())

	if db != nil {
		partnerHandler := handlers.NewPartnerHandler(registerUC)
		progressHandler := handlers.NewProgressHandler(progressRepo)
		intakeHandler := handlers.NewIntakeHandler(database.NewRequirementRepository(db))

		r.Post("/partners/register", partnerHandler.HandleRegister)
		r.Get("/partners/{partnerId}/onboarding", progressHandler.HandleGet)
		r.Post("/intake/requirements", intakeHandler.CaptureRequirement)
	}

	log.Printf("🔥 Partner Portal API rodando em %s", cfg.HTTPAddr)
	http.ListenAndServe(cfg.HTTPAddr, r)
}
