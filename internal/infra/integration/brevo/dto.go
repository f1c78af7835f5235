package brevo

// --- PAYLOAD: o que mandamos pro Brevo ---
type sendEmailRequest struct {
	Sender      sender      `json:"sender"`
	To          []recipient `json:"to"`
	Subject     string      `json:"subject"`
	HTMLContent string      `json:"htmlContent"`
}

type sender struct {
	Name  string `json:"name"`
	Email string `json:"email"`
}

type recipient struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
}

// --- RESPONSE: o que o Brevo devolve ---
type sendEmailResponse struct {
	MessageID string `json:"messageId"`
}
