package stylist

import (
	"context"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
)

// ReminderCanceller cancela lembretes pendentes sem bloquear.
type ReminderCanceller interface {
	RequestCancel(appointmentID uuid.UUID)
}

type DeleteStylist struct {
	repo      domain.Repository
	reminders ReminderCanceller
	audit     audit.Sink
}

func NewDeleteStylist(
	repo domain.Repository,
	reminders ReminderCanceller,
	audit audit.Sink,
) *DeleteStylist {
	return &DeleteStylist{
		repo:      repo,
		reminders: reminders,
		audit:     audit,
	}
}

// Execute apaga o profissional e todos os seus agendamentos numa
// transação; depois cancela os lembretes de cada agendamento removido.
func (uc *DeleteStylist) Execute(ctx context.Context, id uuid.UUID) error {
	var removed []uuid.UUID

	err := uc.repo.Atomic(ctx, id, func(tx domain.Repository) error {
		if _, err := tx.GetStylist(ctx, id); err != nil {
			return err
		}

		ids, err := tx.ListAppointmentIDs(ctx, id)
		if err != nil {
			return err
		}

		if err := tx.DeleteAppointmentsForStylist(ctx, id); err != nil {
			return err
		}
		if err := tx.DeleteStylist(ctx, id); err != nil {
			return err
		}

		removed = ids
		return nil
	})
	if err != nil {
		return err
	}

	for _, apID := range removed {
		uc.reminders.RequestCancel(apID)
	}

	uc.audit.Dispatch(audit.Event{
		Action:   domain.ActionStylistDeleted,
		Entity:   domain.EntityStylist,
		EntityID: id.String(),
		Metadata: map[string]any{"appointments_removed": len(removed)},
	})

	return nil
}
