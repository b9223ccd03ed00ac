package appointment

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
)

type DeleteAppointment struct {
	repo      domain.Repository
	reminders Reminders
	audit     audit.Sink
}

func NewDeleteAppointment(
	repo domain.Repository,
	reminders Reminders,
	audit audit.Sink,
) *DeleteAppointment {
	return &DeleteAppointment{
		repo:      repo,
		reminders: reminders,
		audit:     audit,
	}
}

// Execute remove o agendamento. Id inexistente → NotFound.
func (uc *DeleteAppointment) Execute(ctx context.Context, id uuid.UUID) error {
	ap, err := uc.repo.GetAppointment(ctx, id)
	if err != nil {
		return err
	}

	err = uc.repo.Atomic(ctx, ap.StylistID, func(tx domain.Repository) error {
		return tx.DeleteAppointment(ctx, id)
	})
	if err != nil {
		return err
	}

	uc.reminders.RequestCancel(id)

	uc.audit.Dispatch(audit.Event{
		Action:   domain.ActionCancelled,
		Entity:   domain.EntityAppointment,
		EntityID: id.String(),
		Metadata: map[string]any{"day": ap.Day, "start": ap.Slot().String()},
	})

	return nil
}
