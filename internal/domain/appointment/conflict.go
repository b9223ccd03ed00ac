package appointment

import (
	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

// HasConflict reports whether [start, start+duration) intersects any appointment
// in existing other than exclude. Pass uuid.Nil to exclude nothing.
func HasConflict(
	existing []models.Appointment,
	start timeslot.TimeSlot,
	durationMin int,
	exclude uuid.UUID,
) bool {
	return FindConflict(existing, start, durationMin, exclude) != nil
}

// FindConflict devolve o primeiro agendamento em conflito, ou nil.
func FindConflict(
	existing []models.Appointment,
	start timeslot.TimeSlot,
	durationMin int,
	exclude uuid.UUID,
) *models.Appointment {

	candidate := IntervalOf(start, durationMin)

	for i := range existing {
		ap := &existing[i]
		if exclude != uuid.Nil && ap.ID == exclude {
			continue
		}
		if candidate.Overlaps(IntervalOf(ap.Slot(), ap.DurationMin)) {
			return ap
		}
	}

	return nil
}
