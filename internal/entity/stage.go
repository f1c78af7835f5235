package entity

import "time"

// ReminderStage é o nível de escalonamento do lembrete de onboarding.
type ReminderStage int

const (
	StageNone   ReminderStage = 0
	StageFirst  ReminderStage = 1
	StageSecond ReminderStage = 2
	StageFinal  ReminderStage = 3
)

// Limiares de escalonamento, contados a partir do anchor do parceiro.
const (
	FirstReminderAfter  = 24 * time.Hour
	SecondReminderAfter = 72 * time.Hour
	FinalReminderAfter  = 168 * time.Hour // 7 dias

	// StopAfter: pendente há 14 dias com onboarding incompleto => para de lembrar.
	StopAfter = 336 * time.Hour
)

// StageForHours mapeia horas pendentes para o estágio devido.
// Avaliado do maior para o menor: 200h cai direto no estágio 3.
// Função total, sem erros.
func StageForHours(hoursPending float64) ReminderStage {
	switch {
	case hoursPending >= FinalReminderAfter.Hours():
		return StageFinal
	case hoursPending >= SecondReminderAfter.Hours():
		return StageSecond
	case hoursPending >= FirstReminderAfter.Hours():
		return StageFirst
	default:
		return StageNone
	}
}

// ShouldStop indica o corte final: 14 dias pendente, independente do estágio.
func ShouldStop(hoursPending float64) bool {
	return hoursPending >= StopAfter.Hours()
}
