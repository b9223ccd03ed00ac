package repository

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

type ScheduleGormRepository struct {
	db *gorm.DB

	// compartilhado entre o repositório raiz e as cópias presas a uma transação
	mu   *sync.Mutex
	inTx bool
}

func NewScheduleGormRepository(db *gorm.DB) *ScheduleGormRepository {
	return &ScheduleGormRepository{db: db, mu: &sync.Mutex{}}
}

// --------------------------------------------------
// Transação
// --------------------------------------------------

func (r *ScheduleGormRepository) Atomic(
	ctx context.Context,
	stylistID uuid.UUID,
	fn func(tx domain.Repository) error,
) error {

	if r.inTx {
		return fn(r)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if tx.Dialector.Name() == "postgres" && stylistID != uuid.Nil {
			var s models.Stylist
			err := tx.
				Clauses(clause.Locking{Strength: "UPDATE"}).
				Where("id = ?", stylistID).
				Take(&s).Error
			if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}
		}

		return fn(&ScheduleGormRepository{db: tx, mu: r.mu, inTx: true})
	})

	return httperr.ErrPersistence(err)
}

// --------------------------------------------------
// Stylist
// --------------------------------------------------

func (r *ScheduleGormRepository) ListStylists(ctx context.Context) ([]models.Stylist, error) {
	var out []models.Stylist
	if err := r.db.WithContext(ctx).
		Order("name ASC").
		Find(&out).Error; err != nil {
		return nil, httperr.ErrPersistence(err)
	}
	return out, nil
}

func (r *ScheduleGormRepository) GetStylist(
	ctx context.Context,
	id uuid.UUID,
) (*models.Stylist, error) {

	var s models.Stylist
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&s).Error; err != nil {
		return nil, mapErr(err, domain.EntityStylist)
	}
	return &s, nil
}

func (r *ScheduleGormRepository) CreateStylist(
	ctx context.Context,
	s *models.Stylist,
) error {
	return httperr.ErrPersistence(r.db.WithContext(ctx).Create(s).Error)
}

func (r *ScheduleGormRepository) DeleteStylist(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Stylist{})
	if res.Error != nil {
		return httperr.ErrPersistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(domain.EntityStylist)
	}
	return nil
}

// --------------------------------------------------
// Appointment (leitura)
// --------------------------------------------------

func (r *ScheduleGormRepository) ListForDay(
	ctx context.Context,
	stylistID uuid.UUID,
	day time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND day = ?",
			stylistID, day.Format(models.DayLayout),
		).
		Order("start_hour ASC, start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.ErrPersistence(err)
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListForPeriod(
	ctx context.Context,
	stylistID uuid.UUID,
	start time.Time,
	end time.Time,
) ([]models.Appointment, error) {

	var apps []models.Appointment
	if err := r.db.WithContext(ctx).
		Where(
			"stylist_id = ? AND day >= ? AND day < ?",
			stylistID,
			start.Format(models.DayLayout),
			end.Format(models.DayLayout),
		).
		Order("day ASC, start_hour ASC, start_minute ASC").
		Find(&apps).Error; err != nil {
		return nil, httperr.ErrPersistence(err)
	}

	return apps, nil
}

func (r *ScheduleGormRepository) ListAppointmentIDs(
	ctx context.Context,
	stylistID uuid.UUID,
) ([]uuid.UUID, error) {

	var ids []uuid.UUID
	if err := r.db.WithContext(ctx).
		Model(&models.Appointment{}).
		Where("stylist_id = ?", stylistID).
		Pluck("id", &ids).Error; err != nil {
		return nil, httperr.ErrPersistence(err)
	}
	return ids, nil
}

func (r *ScheduleGormRepository) GetAppointment(
	ctx context.Context,
	id uuid.UUID,
) (*models.Appointment, error) {

	var ap models.Appointment
	if err := r.db.WithContext(ctx).
		Where("id = ?", id).
		Take(&ap).Error; err != nil {
		return nil, mapErr(err, domain.EntityAppointment)
	}
	return &ap, nil
}

// --------------------------------------------------
// Appointment (escrita)
// --------------------------------------------------

func (r *ScheduleGormRepository) InsertAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return httperr.ErrPersistence(r.db.WithContext(ctx).Create(ap).Error)
}

func (r *ScheduleGormRepository) UpdateAppointment(
	ctx context.Context,
	ap *models.Appointment,
) error {
	return httperr.ErrPersistence(r.db.WithContext(ctx).Save(ap).Error)
}

func (r *ScheduleGormRepository) DeleteAppointment(
	ctx context.Context,
	id uuid.UUID,
) error {

	res := r.db.WithContext(ctx).Where("id = ?", id).Delete(&models.Appointment{})
	if res.Error != nil {
		return httperr.ErrPersistence(res.Error)
	}
	if res.RowsAffected == 0 {
		return httperr.ErrNotFound(domain.EntityAppointment)
	}
	return nil
}

func (r *ScheduleGormRepository) DeleteAppointmentsForStylist(
	ctx context.Context,
	stylistID uuid.UUID,
) error {
	return httperr.ErrPersistence(
		r.db.WithContext(ctx).
			Where("stylist_id = ?", stylistID).
			Delete(&models.Appointment{}).Error,
	)
}

func mapErr(err error, entity string) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return httperr.ErrNotFound(entity)
	}
	return httperr.ErrPersistence(err)
}

// Compile-time check
var _ domain.Repository = (*ScheduleGormRepository)(nil)
