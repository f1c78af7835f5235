package mail

// ReminderData parametriza o email de lembrete de onboarding.
type ReminderData struct {
	Name        string
	MaskedEmail string
	PendingDays int
	Deadline    string // data limite formatada (anchor + 14 dias)

	AIDone        bool
	AgreementDone bool

	LoginURL     string
	SupportEmail string
	SupportPhone string
}

type WelcomeData struct {
	Name         string
	LoginURL     string
	SupportEmail string
	SupportPhone string
}

// PortalLinks agrupa os links/contatos fixos que entram em todo email.
type PortalLinks struct {
	LoginURL     string
	SupportEmail string
	SupportPhone string
}

type SMTPSender struct {
	Host      string
	Port      int
	User      string
	Password  string
	FromName  string
	FromEmail string
}
