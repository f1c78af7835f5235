package mail

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/meridianadvisory/partner-portal/internal/entity"
)

func sampleReminderData() ReminderData {
	return ReminderData{
		Name:          "Ana Souza",
		MaskedEmail:   "a***@example.com",
		PendingDays:   3,
		Deadline:      "14 Sep 2026",
		AIDone:        true,
		AgreementDone: false,
		LoginURL:      "https://partners.example.com/login",
		SupportEmail:  "support@example.com",
		SupportPhone:  "+44 20 7946 0857",
	}
}

func TestRenderReminderFirstStage(t *testing.T) {
	subject, html, err := RenderReminder(entity.StageFirst, sampleReminderData())

	assert.NoError(t, err)
	assert.Contains(t, subject, "Ana Souza")
	assert.Contains(t, subject, "waiting for you")
	assert.Contains(t, html, "finished yet")
	assert.Contains(t, html, "a***@example.com")
	assert.Contains(t, html, "https://partners.example.com/login")
	assert.Contains(t, html, "support@example.com")
}

func TestRenderReminderSecondStage(t *testing.T) {
	subject, html, err := RenderReminder(entity.StageSecond, sampleReminderData())

	assert.NoError(t, err)
	assert.Contains(t, subject, "still incomplete")
	assert.Contains(t, html, "Just checking in")
	assert.NotContains(t, html, "final reminder")
}

func TestRenderReminderFinalStage(t *testing.T) {
	subject, html, err := RenderReminder(entity.StageFinal, sampleReminderData())

	assert.NoError(t, err)
	assert.Contains(t, subject, "Final reminder")
	assert.Contains(t, subject, "14 Sep 2026")
	assert.Contains(t, html, "final reminder")
	assert.Contains(t, html, "14 Sep 2026")
}

func TestRenderReminderGateBadges(t *testing.T) {
	data := sampleReminderData()
	data.AIDone = true
	data.AgreementDone = false

	_, html, err := RenderReminder(entity.StageFirst, data)

	assert.NoError(t, err)
	assert.Contains(t, html, "AI profile &mdash; completed")
	assert.Contains(t, html, "Partner agreement &mdash; pending")
}

func TestRenderReminderRejectsStageNone(t *testing.T) {
	_, _, err := RenderReminder(entity.StageNone, sampleReminderData())
	assert.Error(t, err)
}

func TestRenderWelcome(t *testing.T) {
	subject, html, err := RenderWelcome(WelcomeData{
		Name:         "Ana Souza",
		LoginURL:     "https://partners.example.com/login",
		SupportEmail: "support@example.com",
		SupportPhone: "+44 20 7946 0857",
	})

	assert.NoError(t, err)
	assert.Contains(t, subject, "Welcome to Meridian Advisory")
	assert.Contains(t, html, "Welcome aboard, Ana Souza!")
	assert.Contains(t, html, "https://partners.example.com/login")
}

func TestMaskEmail(t *testing.T) {
	assert.Equal(t, "j***@firm.com", MaskEmail("joana.silva@firm.com"))
	assert.Equal(t, "a***@x.io", MaskEmail("a@x.io"))
	assert.Equal(t, "***", MaskEmail("@firm.com"))
	assert.Equal(t, "***", MaskEmail("not-an-email"))
}
