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

// ======================================================
// INPUT
// ======================================================

type CreateAppointmentInput struct {
	StylistID uuid.UUID

	CustomerName  string
	CustomerPhone string

	Date        time.Time
	Start       timeslot.TimeSlot
	DurationMin int
}

// ======================================================
// USE CASE
// ======================================================

type CreateAppointment struct {
	repo      domain.Repository
	reminders Reminders
	audit     audit.Sink
	booking   Booking
}

func NewCreateAppointment(
	repo domain.Repository,
	reminders Reminders,
	audit audit.Sink,
	booking Booking,
) *CreateAppointment {
	return &CreateAppointment{
		repo:      repo,
		reminders: reminders,
		audit:     audit,
		booking:   booking,
	}
}

// ======================================================
// EXECUTE
// ======================================================

func (uc *CreateAppointment) Execute(
	ctx context.Context,
	in CreateAppointmentInput,
) (*models.Appointment, error) {

	// --------------------------------------------------
	// 1️⃣ Campos obrigatórios
	// --------------------------------------------------
	name, err := validators.Required("customer_name", in.CustomerName)
	if err != nil {
		return nil, err
	}
	phone, err := validators.Required("customer_phone", in.CustomerPhone)
	if err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 2️⃣ Duração (sem atravessar a meia-noite)
	// --------------------------------------------------
	if err := domain.ValidateSpan(in.Start, in.DurationMin); err != nil {
		return nil, err
	}

	// --------------------------------------------------
	// 3️⃣ Dia normalizado + horário passado
	// --------------------------------------------------
	day := uc.booking.day(in.Date)

	if uc.booking.EnforcePast {
		if err := uc.booking.Policy.CheckNotPast(day, in.Start, uc.booking.now()); err != nil {
			return nil, err
		}
	}

	ap := &models.Appointment{
		ID:            uuid.New(),
		StylistID:     in.StylistID,
		CustomerName:  name,
		CustomerPhone: phone,
		Date:          day,
		Day:           day.Format(models.DayLayout),
		DurationMin:   in.DurationMin,
	}
	ap.SetSlot(in.Start)

	// --------------------------------------------------
	// 4️⃣ Conflito + gravação (seção crítica)
	// --------------------------------------------------
	var clash *models.Appointment

	err = uc.repo.Atomic(ctx, in.StylistID, func(tx domain.Repository) error {
		if _, err := tx.GetStylist(ctx, in.StylistID); err != nil {
			return err
		}

		existing, err := tx.ListForDay(ctx, in.StylistID, day)
		if err != nil {
			return err
		}

		if clash = domain.FindConflict(existing, in.Start, in.DurationMin, uuid.Nil); clash != nil {
			return httperr.ErrTimeConflict()
		}

		return tx.InsertAppointment(ctx, ap)
	})
	if err != nil {
		if clash != nil {
			uc.audit.Dispatch(audit.Event{
				Action:   domain.ActionConflict,
				Entity:   domain.EntityAppointment,
				EntityID: clash.ID.String(),
				Metadata: map[string]any{"day": ap.Day, "start": in.Start.String(), "duration_min": in.DurationMin},
			})
		}
		return nil, err
	}

	// --------------------------------------------------
	// 5️⃣ Lembretes + auditoria
	// --------------------------------------------------
	uc.reminders.RequestSchedule(*ap)

	uc.audit.Dispatch(audit.Event{
		Action:   domain.ActionBooked,
		Entity:   domain.EntityAppointment,
		EntityID: ap.ID.String(),
		Metadata: map[string]any{"day": ap.Day, "start": in.Start.String(), "duration_min": ap.DurationMin},
	})

	return ap, nil
}
