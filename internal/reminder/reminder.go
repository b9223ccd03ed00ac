package reminder

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

// Offsets são os minutos de antecedência de cada lembrete.
var Offsets = []int{15, 5}

type Reminder struct {
	Key           string    `json:"key"`
	AppointmentID uuid.UUID `json:"appointment_id"`
	OffsetMin     int       `json:"offset_min"`
	FireAt        time.Time `json:"fire_at"`
	Title         string    `json:"title"`
	Body          string    `json:"body"`
}

// Scheduler is the reminder collaborator used by the booking flow.
type Scheduler interface {
	Schedule(ctx context.Context, ap *models.Appointment) error
	Cancel(ctx context.Context, appointmentID uuid.UUID) error
}

// Key identifica um lembrete de forma determinística, sem guardar handles.
func Key(appointmentID uuid.UUID, offsetMin int) string {
	return fmt.Sprintf("%s-%dmin", appointmentID, offsetMin)
}

// Keys devolve todas as chaves possíveis de um agendamento.
func Keys(appointmentID uuid.UUID) []string {
	out := make([]string, 0, len(Offsets))
	for _, off := range Offsets {
		out = append(out, Key(appointmentID, off))
	}
	return out
}

// Plan computes the reminders for ap. Fire times not after now are skipped.
func Plan(ap *models.Appointment, now time.Time) []Reminder {
	start := ap.StartsAt()

	var out []Reminder
	for _, off := range Offsets {
		fireAt := start.Add(-time.Duration(off) * time.Minute)
		if !fireAt.After(now) {
			continue
		}
		out = append(out, Reminder{
			Key:           Key(ap.ID, off),
			AppointmentID: ap.ID,
			OffsetMin:     off,
			FireAt:        fireAt,
			Title:         fmt.Sprintf("Atendimento em %d minutos", off),
			Body:          fmt.Sprintf("%s às %s", ap.CustomerName, ap.Slot()),
		})
	}
	return out
}

// NopScheduler é usado quando os lembretes estão desligados.
type NopScheduler struct{}

func (NopScheduler) Schedule(context.Context, *models.Appointment) error { return nil }
func (NopScheduler) Cancel(context.Context, uuid.UUID) error              { return nil }
