package timeslot

import (
	"fmt"
	"iter"
	"strconv"
	"strings"
	"time"
)

const (
	// SlotMinutes é a granularidade da grade de horários.
	SlotMinutes = 30

	MinutesPerDay = 24 * 60

	// SlotsPerDay cobre 00:00..23:30.
	SlotsPerDay = MinutesPerDay / SlotMinutes
)

// TimeSlot é um ponto da grade de meia hora (HH:00 ou HH:30).
type TimeSlot struct {
	hour   int
	minute int
}

// New panics when hour is outside 0..23 or minute is not 0 or 30.
func New(hour, minute int) TimeSlot {
	if hour < 0 || hour > 23 {
		panic(fmt.Sprintf("timeslot: hour %d out of range 0..23", hour))
	}
	if minute != 0 && minute != 30 {
		panic(fmt.Sprintf("timeslot: minute %d must be 0 or 30", minute))
	}
	return TimeSlot{hour: hour, minute: minute}
}

// FromClock arredonda o minuto para baixo até a borda válida mais próxima.
func FromClock(hour, minute int) TimeSlot {
	if minute < 30 {
		return New(hour, 0)
	}
	return New(hour, 30)
}

func FromTime(t time.Time) TimeSlot {
	return FromClock(t.Hour(), t.Minute())
}

// FromMinutesOfDay is the inverse of MinutesOfDay for grid-aligned values.
func FromMinutesOfDay(m int) TimeSlot {
	return New(m/60, m%60)
}

// Parse lê "HH:MM". Entrada de transporte: erro em vez de panic.
func Parse(s string) (TimeSlot, error) {
	parts := strings.Split(strings.TrimSpace(s), ":")
	if len(parts) != 2 {
		return TimeSlot{}, fmt.Errorf("timeslot: expected HH:MM, got %q", s)
	}

	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return TimeSlot{}, fmt.Errorf("timeslot: invalid hour in %q", s)
	}

	m, err := strconv.Atoi(parts[1])
	if err != nil || (m != 0 && m != 30) {
		return TimeSlot{}, fmt.Errorf("timeslot: minute must be 00 or 30 in %q", s)
	}

	return New(h, m), nil
}

func (s TimeSlot) Hour() int   { return s.hour }
func (s TimeSlot) Minute() int { return s.minute }

func (s TimeSlot) MinutesOfDay() int {
	return s.hour*60 + s.minute
}

func (s TimeSlot) Before(o TimeSlot) bool {
	return Compare(s, o) < 0
}

func (s TimeSlot) String() string {
	return fmt.Sprintf("%02d:%02d", s.hour, s.minute)
}

// On devolve o instante deste horário no dia informado.
func (s TimeSlot) On(day time.Time) time.Time {
	return time.Date(day.Year(), day.Month(), day.Day(), s.hour, s.minute, 0, 0, day.Location())
}

// Compare ordena por hora e depois por minuto.
func Compare(a, b TimeSlot) int {
	if a.hour != b.hour {
		if a.hour < b.hour {
			return -1
		}
		return 1
	}
	switch {
	case a.minute < b.minute:
		return -1
	case a.minute > b.minute:
		return 1
	}
	return 0
}

// All yields the 48 slots of a day in order. Each call starts over.
func All() iter.Seq[TimeSlot] {
	return func(yield func(TimeSlot) bool) {
		for i := 0; i < SlotsPerDay; i++ {
			if !yield(FromMinutesOfDay(i * SlotMinutes)) {
				return
			}
		}
	}
}

// FormatMinutes formata minutos do dia como HH:MM, com volta em 24h (somente exibição).
func FormatMinutes(mins int) string {
	mins %= MinutesPerDay
	if mins < 0 {
		mins += MinutesPerDay
	}
	return fmt.Sprintf("%02d:%02d", mins/60, mins%60)
}
