package timezone

import (
	"fmt"
	"strings"
	"time"
)

const DefaultTimezone = "America/Sao_Paulo"

const dayLayout = "2006-01-02"

func IsValid(tz string) bool {
	if tz == "" {
		return false
	}
	_, err := time.LoadLocation(tz)
	return err == nil
}

func Location(tz string) *time.Location {
	if IsValid(tz) {
		if loc, err := time.LoadLocation(tz); err == nil {
			return loc
		}
	}

	loc, err := time.LoadLocation(DefaultTimezone)
	if err != nil {
		return time.UTC
	}
	return loc
}

func NowIn(tz string) time.Time {
	return time.Now().In(Location(tz))
}

// StartOfDay normaliza t para a meia-noite do seu dia em loc.
func StartOfDay(t time.Time, loc *time.Location) time.Time {
	t = t.In(loc)
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, loc)
}

// ParseDay aceita "today", "tomorrow" ou YYYY-MM-DD e devolve o início do dia.
func ParseDay(s string, now time.Time, loc *time.Location) (time.Time, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "today":
		return StartOfDay(now, loc), nil
	case "tomorrow":
		return StartOfDay(now, loc).AddDate(0, 0, 1), nil
	}

	d, err := time.ParseInLocation(dayLayout, strings.TrimSpace(s), loc)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid day %q: %w", s, err)
	}
	return d, nil
}
