package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/timezone"
)

// --------------------------------------------------
// Parsing de entrada no fuso da barbearia
// --------------------------------------------------

func parseDay(loc *time.Location, s string) (time.Time, error) {
	d, err := timezone.ParseDay(s, time.Now().In(loc), loc)
	if err != nil {
		return time.Time{}, httperr.ErrValidation("date")
	}
	return d, nil
}

func parseSlot(s string) (timeslot.TimeSlot, error) {
	slot, err := timeslot.Parse(s)
	if err != nil {
		return timeslot.TimeSlot{}, httperr.ErrValidation("start")
	}
	return slot, nil
}

func parseID(s, field string) (uuid.UUID, error) {
	id, err := uuid.Parse(s)
	if err != nil {
		return uuid.Nil, httperr.ErrValidation(field)
	}
	return id, nil
}
