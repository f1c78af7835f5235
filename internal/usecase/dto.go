package usecase

// ReminderDetail é uma tentativa de envio dentro de um passe do dispatcher.
// Pulos silenciosos (email vazio, sem anchor, estágio já enviado, stop)
// não entram aqui.
type ReminderDetail struct {
	Email  string `json:"email"`
	Stage  int    `json:"stage"`
	Status string `json:"status"` // sent | failed
	Reason string `json:"reason,omitempty"`
}

type DispatchSummary struct {
	Success bool             `json:"success"`
	Scanned int              `json:"scanned"`
	Sent    int              `json:"sent"`
	Failed  int              `json:"failed"`
	Details []ReminderDetail `json:"details"`
}

type RegisterPartnerInput struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company"`
	Country string `json:"country"`

	TermsAccepted bool `json:"terms_accepted"`
}

type RegisterPartnerOutput struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Email  string `json:"email"`
	Status string `json:"status"`
	Msg    string `json:"msg"`
}
