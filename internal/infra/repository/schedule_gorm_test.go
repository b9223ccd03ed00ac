package repository_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/httperr"
	"github.com/BruksfildServices01/chair-scheduler/internal/infra/repository"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
	"github.com/BruksfildServices01/chair-scheduler/internal/testutil"
)

func setupRepo(t *testing.T) *repository.ScheduleGormRepository {
	t.Helper()
	return repository.NewScheduleGormRepository(testutil.NewSQLite(t))
}

func createTestStylist(t *testing.T, repo *repository.ScheduleGormRepository, name string) *models.Stylist {
	t.Helper()
	s := &models.Stylist{ID: uuid.New(), Name: name}
	if err := repo.CreateStylist(context.Background(), s); err != nil {
		t.Fatalf("CreateStylist failed: %v", err)
	}
	return s
}

func insertTestAppointment(
	t *testing.T,
	repo *repository.ScheduleGormRepository,
	stylistID uuid.UUID,
	day time.Time,
	hh, mm, dur int,
) *models.Appointment {
	t.Helper()
	ap := &models.Appointment{
		ID:            uuid.New(),
		StylistID:     stylistID,
		CustomerName:  "Mert",
		CustomerPhone: "555-0001",
		Date:          day,
		Day:           day.Format(models.DayLayout),
		DurationMin:   dur,
	}
	ap.SetSlot(timeslot.New(hh, mm))
	if err := repo.InsertAppointment(context.Background(), ap); err != nil {
		t.Fatalf("InsertAppointment failed: %v", err)
	}
	return ap
}

func may(d int) time.Time {
	return time.Date(2024, time.May, d, 0, 0, 0, 0, time.UTC)
}

func TestScheduleRepository_ListStylists_OrderedByName(t *testing.T) {
	repo := setupRepo(t)
	createTestStylist(t, repo, "Zeynep")
	createTestStylist(t, repo, "Ayla")
	createTestStylist(t, repo, "Mina")

	list, err := repo.ListStylists(context.Background())
	if err != nil {
		t.Fatalf("ListStylists failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 stylists, got %d", len(list))
	}
	if list[0].Name != "Ayla" || list[1].Name != "Mina" || list[2].Name != "Zeynep" {
		t.Errorf("unexpected order: %s, %s, %s", list[0].Name, list[1].Name, list[2].Name)
	}
}

func TestScheduleRepository_ListForDay_SortedAndScoped(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	ayla := createTestStylist(t, repo, "Ayla")
	mina := createTestStylist(t, repo, "Mina")

	insertTestAppointment(t, repo, ayla.ID, may(1), 14, 0, 30)
	insertTestAppointment(t, repo, ayla.ID, may(1), 9, 30, 30)
	insertTestAppointment(t, repo, ayla.ID, may(1), 9, 0, 30)
	insertTestAppointment(t, repo, ayla.ID, may(2), 9, 0, 30)  // other day
	insertTestAppointment(t, repo, mina.ID, may(1), 10, 0, 30) // other stylist

	list, err := repo.ListForDay(ctx, ayla.ID, may(1))
	if err != nil {
		t.Fatalf("ListForDay failed: %v", err)
	}
	if len(list) != 3 {
		t.Fatalf("expected 3 appointments, got %d", len(list))
	}

	want := []string{"09:00", "09:30", "14:00"}
	for i, ap := range list {
		if ap.Slot().String() != want[i] {
			t.Errorf("position %d: want %s, got %s", i, want[i], ap.Slot())
		}
		if ap.StylistID != ayla.ID {
			t.Errorf("leaked appointment of stylist %s", ap.StylistID)
		}
	}
}

func TestScheduleRepository_ListForPeriod(t *testing.T) {
	repo := setupRepo(t)
	ayla := createTestStylist(t, repo, "Ayla")

	insertTestAppointment(t, repo, ayla.ID, may(1), 9, 0, 30)
	insertTestAppointment(t, repo, ayla.ID, may(31), 9, 0, 30)
	insertTestAppointment(t, repo, ayla.ID, time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC), 9, 0, 30)

	list, err := repo.ListForPeriod(context.Background(), ayla.ID, may(1), may(1).AddDate(0, 1, 0))
	if err != nil {
		t.Fatalf("ListForPeriod failed: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("expected 2 appointments in May, got %d", len(list))
	}
}

func TestScheduleRepository_GetAppointment_NotFound(t *testing.T) {
	repo := setupRepo(t)

	_, err := repo.GetAppointment(context.Background(), uuid.New())
	if !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("expected not_found, got %v", err)
	}
}

func TestScheduleRepository_UpdateAppointment(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	ayla := createTestStylist(t, repo, "Ayla")
	ap := insertTestAppointment(t, repo, ayla.ID, may(1), 9, 0, 60)

	ap.CustomerName = "Deniz"
	ap.SetSlot(timeslot.New(11, 30))
	ap.DurationMin = 90
	if err := repo.UpdateAppointment(ctx, ap); err != nil {
		t.Fatalf("UpdateAppointment failed: %v", err)
	}

	got, err := repo.GetAppointment(ctx, ap.ID)
	if err != nil {
		t.Fatalf("GetAppointment failed: %v", err)
	}
	if got.CustomerName != "Deniz" || got.Slot() != timeslot.New(11, 30) || got.DurationMin != 90 {
		t.Errorf("update not persisted: %+v", got)
	}
}

func TestScheduleRepository_DeleteAppointment(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	ayla := createTestStylist(t, repo, "Ayla")
	ap := insertTestAppointment(t, repo, ayla.ID, may(1), 9, 0, 60)

	if err := repo.DeleteAppointment(ctx, ap.ID); err != nil {
		t.Fatalf("DeleteAppointment failed: %v", err)
	}
	if err := repo.DeleteAppointment(ctx, ap.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Fatalf("second delete: expected not_found, got %v", err)
	}
}

func TestScheduleRepository_ListAppointmentIDsAndCascadeDelete(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	ayla := createTestStylist(t, repo, "Ayla")
	a := insertTestAppointment(t, repo, ayla.ID, may(1), 9, 0, 60)
	b := insertTestAppointment(t, repo, ayla.ID, may(2), 9, 0, 60)

	ids, err := repo.ListAppointmentIDs(ctx, ayla.ID)
	if err != nil {
		t.Fatalf("ListAppointmentIDs failed: %v", err)
	}
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	seen := map[uuid.UUID]bool{ids[0]: true, ids[1]: true}
	if !seen[a.ID] || !seen[b.ID] {
		t.Errorf("unexpected ids %v", ids)
	}

	if err := repo.DeleteAppointmentsForStylist(ctx, ayla.ID); err != nil {
		t.Fatalf("DeleteAppointmentsForStylist failed: %v", err)
	}
	if err := repo.DeleteStylist(ctx, ayla.ID); err != nil {
		t.Fatalf("DeleteStylist failed: %v", err)
	}

	left, _ := repo.ListAppointmentIDs(ctx, ayla.ID)
	if len(left) != 0 {
		t.Errorf("expected no appointments left, got %d", len(left))
	}
	if _, err := repo.GetStylist(ctx, ayla.ID); !httperr.IsBusiness(err, httperr.CodeNotFound) {
		t.Errorf("expected stylist gone, got %v", err)
	}
}

func TestScheduleRepository_Atomic_RollsBackOnError(t *testing.T) {
	repo := setupRepo(t)
	ctx := context.Background()
	ayla := createTestStylist(t, repo, "Ayla")

	boom := errors.New("boom")
	err := repo.Atomic(ctx, ayla.ID, func(tx domain.Repository) error {
		ap := &models.Appointment{
			ID:            uuid.New(),
			StylistID:     ayla.ID,
			CustomerName:  "Mert",
			CustomerPhone: "555-0001",
			Date:          may(1),
			Day:           may(1).Format(models.DayLayout),
			StartHour:     9,
			DurationMin:   60,
		}
		if err := tx.InsertAppointment(ctx, ap); err != nil {
			return err
		}
		return boom
	})
	if !errors.Is(err, boom) {
		t.Fatalf("expected boom, got %v", err)
	}

	list, _ := repo.ListForDay(ctx, ayla.ID, may(1))
	if len(list) != 0 {
		t.Fatalf("expected rollback, found %d appointments", len(list))
	}
}

func TestScheduleRepository_Atomic_PassesBusinessErrors(t *testing.T) {
	repo := setupRepo(t)

	err := repo.Atomic(context.Background(), uuid.Nil, func(tx domain.Repository) error {
		return httperr.ErrTimeConflict()
	})
	if !httperr.IsBusiness(err, httperr.CodeConflict) {
		t.Fatalf("expected time_conflict to pass through, got %v", err)
	}
}
