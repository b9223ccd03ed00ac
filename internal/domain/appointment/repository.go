package appointment

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

type Repository interface {
	// -------- Stylist --------
	ListStylists(ctx context.Context) ([]models.Stylist, error)

	GetStylist(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Stylist, error)

	CreateStylist(
		ctx context.Context,
		s *models.Stylist,
	) error

	DeleteStylist(
		ctx context.Context,
		id uuid.UUID,
	) error

	// -------- Appointment (leitura) --------

	// ListForDay devolve somente o dia e o profissional exatos,
	// ordenados por hora e minuto de início.
	ListForDay(
		ctx context.Context,
		stylistID uuid.UUID,
		day time.Time,
	) ([]models.Appointment, error)

	ListForPeriod(
		ctx context.Context,
		stylistID uuid.UUID,
		start time.Time,
		end time.Time,
	) ([]models.Appointment, error)

	ListAppointmentIDs(
		ctx context.Context,
		stylistID uuid.UUID,
	) ([]uuid.UUID, error)

	GetAppointment(
		ctx context.Context,
		id uuid.UUID,
	) (*models.Appointment, error)

	// -------- Appointment (escrita) --------
	InsertAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	UpdateAppointment(
		ctx context.Context,
		ap *models.Appointment,
	) error

	DeleteAppointment(
		ctx context.Context,
		id uuid.UUID,
	) error

	DeleteAppointmentsForStylist(
		ctx context.Context,
		stylistID uuid.UUID,
	) error

	// Atomic executa fn como seção crítica: nenhuma outra escrita
	// no mesmo profissional intercala entre a checagem e o commit.
	Atomic(
		ctx context.Context,
		stylistID uuid.UUID,
		fn func(tx Repository) error,
	) error
}
