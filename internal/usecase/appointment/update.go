package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
	"github.com/BruksfildServices01/chair-scheduler/internal/validators"
)

type UpdateAppointmentInput struct {
	ID uuid.UUID

	// StylistID vazio mantém o profissional atual.
	StylistID uuid.UUID

	CustomerName  string
	CustomerPhone string

	Date        time.Time
	Start       timeslot.TimeSlot
	DurationMin int
}

type UpdateAppointment struct {
	repo      domain.Repository
	reminders Reminders
	audit     audit.Sink
	booking   Booking
}

func NewUpdateAppointment(
	repo domain.Repository,
	reminders Reminders,
	audit audit.Sink,
	booking Booking,
) *UpdateAppointment {
	return &UpdateAppointment{
		repo:      repo,
		reminders: reminders,
		audit:     audit,
		booking:   booking,
	}
}

func (uc *UpdateAppointment) Execute(
	ctx context.Context,
	in UpdateAppointmentInput,
) (*models.Appointment, error) {

	name, err := validators.Required("customer_name", in.CustomerName)
	if err != nil {
		return nil, err
	}
	phone, err := validators.Required("customer_phone", in.CustomerPhone)
	if err != nil {
		return nil, err
	}

	if err := domain.ValidateSpan(in.Start, in.DurationMin); err != nil {
		return nil, err
	}

	day := uc.booking.day(in.Date)

	if uc.booking.EnforcePast {
		if err := uc.booking.Policy.CheckNotPast(day, in.Start, uc.booking.now()); err != nil {
			return nil, err
		}
	}

	current, err := uc.repo.GetAppointment(ctx, in.ID)
	if err != nil {
		return nil, err
	}

	stylistID := in.StylistID
	if stylistID == uuid.Nil {
		stylistID = current.StylistID
	}

	var updated *models.Appointment

	err = uc.repo.Atomic(ctx, stylistID, func(tx domain.Repository) error {
		// relê dentro da seção crítica
		ap, err := tx.GetAppointment(ctx, in.ID)
		if err != nil {
			return err
		}
		if _, err := tx.GetStylist(ctx, stylistID); err != nil {
			return err
		}

		existing, err := tx.ListForDay(ctx, stylistID, day)
		if err != nil {
			return err
		}
		if domain.HasConflict(existing, in.Start, in.DurationMin, ap.ID) {
			return httperr.ErrTimeConflict()
		}

		ap.StylistID = stylistID
		ap.CustomerName = name
		ap.CustomerPhone = phone
		ap.Date = day
		ap.Day = day.Format(models.DayLayout)
		ap.DurationMin = in.DurationMin
		ap.SetSlot(in.Start)

		if err := tx.UpdateAppointment(ctx, ap); err != nil {
			return err
		}
		updated = ap
		return nil
	})
	if err != nil {
		return nil, err
	}

	// FIFO: o cancelamento roda antes do novo agendamento
	uc.reminders.RequestCancel(updated.ID)
	uc.reminders.RequestSchedule(*updated)

	uc.audit.Dispatch(audit.Event{
		Action:   domain.ActionRescheduled,
		Entity:   domain.EntityAppointment,
		EntityID: updated.ID.String(),
		Metadata: map[string]any{
			"from": current.Day + " " + current.Slot().String(),
			"to":   updated.Day + " " + updated.Slot().String(),
		},
	})

	return updated, nil
}
