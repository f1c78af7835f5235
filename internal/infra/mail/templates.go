package mail

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

// Os templates ficam embutidos no binário: o dispatcher roda agendado e não
// pode depender de um diretório templates/ presente no working dir.

const reminderTmplSrc = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, Helvetica, sans-serif; background:#f4f5f7; margin:0; padding:24px;">
  <div style="max-width:560px; margin:0 auto; background:#ffffff; border-radius:8px; padding:32px;">
    <h2 style="color:#1a2b4a; margin-top:0;">Hello, {{.Name}}!</h2>

    {{if eq .Stage 1}}
    <p>You started your partner onboarding with Meridian Advisory but haven't finished yet.
    Your application ({{.MaskedEmail}}) has been waiting for {{.PendingDays}} day{{if gt .PendingDays 1}}s{{end}}.</p>
    {{else if eq .Stage 2}}
    <p>Just checking in — your partner onboarding is still incomplete after {{.PendingDays}} days.
    It only takes a few minutes to finish.</p>
    {{else}}
    <p><strong>This is our final reminder.</strong> Your partner application has been pending for
    {{.PendingDays}} days. If onboarding is not completed by <strong>{{.Deadline}}</strong>, your
    application will be set aside and you will need to contact us to resume.</p>
    {{end}}

    <table style="width:100%; margin:24px 0; border-collapse:collapse;">
      <tr>
        <td style="padding:12px; border:1px solid #e3e6ea; border-radius:6px;">
          {{if .AIDone}}
          <span style="color:#1e7e34; font-weight:bold;">&#10004; AI profile &mdash; completed</span>
          {{else}}
          <span style="color:#b8860b; font-weight:bold;">&#9679; AI profile &mdash; pending</span>
          {{end}}
        </td>
        <td style="padding:12px; border:1px solid #e3e6ea; border-radius:6px;">
          {{if .AgreementDone}}
          <span style="color:#1e7e34; font-weight:bold;">&#10004; Partner agreement &mdash; signed</span>
          {{else}}
          <span style="color:#b8860b; font-weight:bold;">&#9679; Partner agreement &mdash; pending</span>
          {{end}}
        </td>
      </tr>
    </table>

    <p style="text-align:center; margin:32px 0;">
      <a href="{{.LoginURL}}" style="background:#1a2b4a; color:#ffffff; padding:12px 28px; border-radius:6px; text-decoration:none; font-weight:bold;">
        Continue onboarding
      </a>
    </p>

    <hr style="border:none; border-top:1px solid #e3e6ea; margin:24px 0;">
    <p style="color:#8a94a6; font-size:12px;">
      Need help? Write to <a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a>
      or call {{.SupportPhone}}.
    </p>
  </div>
</body>
</html>`

const welcomeTmplSrc = `<!DOCTYPE html>
<html>
<body style="font-family: Arial, Helvetica, sans-serif; background:#f4f5f7; margin:0; padding:24px;">
  <div style="max-width:560px; margin:0 auto; background:#ffffff; border-radius:8px; padding:32px;">
    <h2 style="color:#1a2b4a; margin-top:0;">Welcome aboard, {{.Name}}!</h2>
    <p>Your partner registration with Meridian Advisory was received. The next steps are
    completing your AI profile and signing the partner agreement.</p>
    <p style="text-align:center; margin:32px 0;">
      <a href="{{.LoginURL}}" style="background:#1a2b4a; color:#ffffff; padding:12px 28px; border-radius:6px; text-decoration:none; font-weight:bold;">
        Go to your portal
      </a>
    </p>
    <hr style="border:none; border-top:1px solid #e3e6ea; margin:24px 0;">
    <p style="color:#8a94a6; font-size:12px;">
      Need help? Write to <a href="mailto:{{.SupportEmail}}">{{.SupportEmail}}</a>
      or call {{.SupportPhone}}.
    </p>
  </div>
</body>
</html>`

var (
	reminderTmpl = template.Must(template.New("reminder").Parse(reminderTmplSrc))
	welcomeTmpl  = template.Must(template.New("welcome").Parse(welcomeTmplSrc))
)

type reminderTmplData struct {
	ReminderData
	Stage int
}

// RenderReminder monta assunto + corpo HTML do lembrete para o estágio dado.
func RenderReminder(stage entity.ReminderStage, data ReminderData) (string, string, error) {
	var subject string
	switch stage {
	case entity.StageFirst:
		subject = fmt.Sprintf("%s, your partner onboarding is waiting for you", data.Name)
	case entity.StageSecond:
		subject = "Reminder: your Meridian partner profile is still incomplete"
	case entity.StageFinal:
		subject = fmt.Sprintf("Final reminder: complete your onboarding by %s", data.Deadline)
	default:
		return "", "", fmt.Errorf("no reminder template for stage %d", stage)
	}

	var body bytes.Buffer
	if err := reminderTmpl.Execute(&body, reminderTmplData{ReminderData: data, Stage: int(stage)}); err != nil {
		return "", "", fmt.Errorf("erro ao processar template de lembrete: %w", err)
	}

	return subject, body.String(), nil
}

func RenderWelcome(data WelcomeData) (string, string, error) {
	subject := fmt.Sprintf("Welcome to Meridian Advisory, %s!", data.Name)

	var body bytes.Buffer
	if err := welcomeTmpl.Execute(&body, data); err != nil {
		return "", "", fmt.Errorf("erro ao processar template de boas-vindas: %w", err)
	}

	return subject, body.String(), nil
}

// MaskEmail reduz o endereço para exibição no próprio email:
// "joana.silva@firm.com" -> "j***@firm.com".
func MaskEmail(email string) string {
	at := strings.Index(email, "@")
	if at <= 0 {
		return "***"
	}
	return email[:1] + "***" + email[at:]
}
