package appointment

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

type AvailabilityInput struct {
	StylistID   uuid.UUID
	Date        time.Time
	DurationMin int
	ExcludeID   uuid.UUID
}

type OpenSlot struct {
	Start string `json:"start"`
	End   string `json:"end"`
}

// Policy é a regra do formulário de agendamento: janela comercial e
// filtro de horário já passado. O detector de conflitos não a conhece.
type Policy struct {
	OpenHour  int
	CloseHour int // última hora de início oferecida, inclusiva
}

func DefaultPolicy() Policy {
	return Policy{OpenHour: 8, CloseHour: 21}
}

func (p Policy) InWindow(s timeslot.TimeSlot) bool {
	return s.Hour() >= p.OpenHour && s.Hour() <= p.CloseHour
}

// CheckNotPast rejeita, no dia corrente, horários iguais ou anteriores a now.
func (p Policy) CheckNotPast(day time.Time, slot timeslot.TimeSlot, now time.Time) error {
	if !sameDay(day, now) {
		return nil
	}
	if !slot.On(day).After(now) {
		return httperr.ErrPastTime()
	}
	return nil
}

// OfferableSlots lista os horários de início que o formulário pode oferecer:
// dentro da janela, ainda não passados hoje e sem conflito para a duração pedida.
func (p Policy) OfferableSlots(
	day time.Time,
	now time.Time,
	existing []models.Appointment,
	durationMin int,
	exclude uuid.UUID,
) []timeslot.TimeSlot {

	today := sameDay(day, now)
	var out []timeslot.TimeSlot

	for s := range timeslot.All() {
		if !p.InWindow(s) {
			continue
		}
		if today && !s.On(day).After(now) {
			continue
		}
		if ValidateSpan(s, durationMin) != nil {
			continue
		}
		if HasConflict(existing, s, durationMin, exclude) {
			continue
		}
		out = append(out, s)
	}

	return out
}

func sameDay(day, now time.Time) bool {
	return day.Format(models.DayLayout) == now.In(day.Location()).Format(models.DayLayout)
}
