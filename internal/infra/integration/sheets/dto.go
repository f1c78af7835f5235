package sheets

// O script legado (Apps Script) recebe um POST único com o nome da aba
// e a linha a anexar. Ele responde 200/302 com um JSON {"result":"ok"}.

type appendRequest struct {
	Sheet string            `json:"sheet"`
	Row   map[string]string `json:"row"`
}

type appendResponse struct {
	Result string `json:"result"`
	Error  string `json:"error,omitempty"`
}

// RegistrationRow é a linha de cadastro espelhada na planilha.
type RegistrationRow struct {
	PartnerID string
	Name      string
	Email     string
	Phone     string
	Company   string
	Country   string
	CreatedAt string
}
