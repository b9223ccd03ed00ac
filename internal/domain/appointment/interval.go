package appointment

import (
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
)

// Interval é o intervalo [Start, End) em minutos do dia. Nunca dá a volta na meia-noite.
type Interval struct {
	Start int
	End   int
}

func IntervalOf(start timeslot.TimeSlot, durationMin int) Interval {
	s := start.MinutesOfDay()
	return Interval{Start: s, End: s + durationMin}
}

// Overlaps é o teste de interseção semiaberto: pontas que se tocam não conflitam.
func (i Interval) Overlaps(o Interval) bool {
	return i.Start < o.End && o.Start < i.End
}

func (i Interval) CrossesMidnight() bool {
	return i.End > timeslot.MinutesPerDay
}

// ValidateSpan rejeita duração não positiva e agendamentos que atravessam a meia-noite.
func ValidateSpan(start timeslot.TimeSlot, durationMin int) error {
	if durationMin <= 0 {
		return httperr.ErrValidation("duration_min")
	}
	if IntervalOf(start, durationMin).CrossesMidnight() {
		return httperr.ErrValidation("duration_min")
	}
	return nil
}
