package reminder

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

func newTestStore(t *testing.T, now time.Time) (*RedisStore, *miniredis.Miniredis) {
	t.Helper()

	mr := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = client.Close() })

	s := NewRedisStore(client)
	s.now = func() time.Time { return now }
	return s, mr
}

func testAppointment(start time.Time) *models.Appointment {
	day := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, start.Location())
	return &models.Appointment{
		ID:           uuid.New(),
		StylistID:    uuid.New(),
		CustomerName: "Ayla",
		Date:         day,
		Day:          day.Format(models.DayLayout),
		StartHour:    start.Hour(),
		StartMinute:  start.Minute(),
		DurationMin:  60,
	}
}

func TestKey_Deterministic(t *testing.T) {
	id := uuid.MustParse("7f1c2d4e-0000-4000-8000-000000000001")
	if got := Key(id, 15); got != "7f1c2d4e-0000-4000-8000-000000000001-15min" {
		t.Fatalf("unexpected key %s", got)
	}
	keys := Keys(id)
	if len(keys) != 2 || keys[0] != Key(id, 15) || keys[1] != Key(id, 5) {
		t.Fatalf("unexpected keys %v", keys)
	}
}

func TestPlan_SkipsPastFireTimes(t *testing.T) {
	start := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	ap := testAppointment(start)

	all := Plan(ap, start.Add(-time.Hour))
	if len(all) != 2 {
		t.Fatalf("want 2 reminders, got %d", len(all))
	}
	if !all[0].FireAt.Equal(start.Add(-15*time.Minute)) || !all[1].FireAt.Equal(start.Add(-5*time.Minute)) {
		t.Fatalf("unexpected fire times %v %v", all[0].FireAt, all[1].FireAt)
	}
	if all[0].Body != "Ayla às 10:00" {
		t.Fatalf("unexpected body %q", all[0].Body)
	}

	// 09:50: o de 15 minutos já passou
	some := Plan(ap, start.Add(-10*time.Minute))
	if len(some) != 1 || some[0].OffsetMin != 5 {
		t.Fatalf("want only the 5min reminder, got %+v", some)
	}

	if none := Plan(ap, start); len(none) != 0 {
		t.Fatalf("want no reminders, got %d", len(none))
	}
}

func TestRedisStore_ScheduleAndCancel(t *testing.T) {
	start := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, mr := newTestStore(t, start.Add(-time.Hour))
	ctx := context.Background()
	ap := testAppointment(start)

	if err := s.Schedule(ctx, ap); err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	members, err := mr.ZMembers(dueKey)
	if err != nil {
		t.Fatalf("ZMembers failed: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("want 2 pending keys, got %v", members)
	}

	// reagendar não duplica
	if err := s.Schedule(ctx, ap); err != nil {
		t.Fatalf("second Schedule failed: %v", err)
	}
	if n, _ := s.Pending(ctx); n != 2 {
		t.Fatalf("want 2 pending after reschedule, got %d", n)
	}

	if err := s.Cancel(ctx, ap.ID); err != nil {
		t.Fatalf("Cancel failed: %v", err)
	}
	if n, _ := s.Pending(ctx); n != 0 {
		t.Fatalf("want 0 pending after cancel, got %d", n)
	}
	if mr.Exists(payloadKey) {
		t.Fatal("payload hash should be empty after cancel")
	}
}

func TestRedisStore_DueClaimsOnce(t *testing.T) {
	start := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, start.Add(-time.Hour))
	ctx := context.Background()
	ap := testAppointment(start)

	if err := s.Schedule(ctx, ap); err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	due, err := s.Due(ctx, start.Add(-10*time.Minute), 10)
	if err != nil {
		t.Fatalf("Due failed: %v", err)
	}
	if len(due) != 1 || due[0].Key != Key(ap.ID, 15) {
		t.Fatalf("want the 15min reminder, got %+v", due)
	}

	again, err := s.Due(ctx, start.Add(-10*time.Minute), 10)
	if err != nil {
		t.Fatalf("Due failed: %v", err)
	}
	if len(again) != 0 {
		t.Fatalf("reminder delivered twice: %+v", again)
	}

	rest, err := s.Due(ctx, start, 10)
	if err != nil {
		t.Fatalf("Due failed: %v", err)
	}
	if len(rest) != 1 || rest[0].OffsetMin != 5 {
		t.Fatalf("want the 5min reminder, got %+v", rest)
	}
}

type recordingNotifier struct {
	mu   sync.Mutex
	keys []string
}

func (n *recordingNotifier) Notify(_ context.Context, r Reminder) error {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.keys = append(n.keys, r.Key)
	return nil
}

func TestDispatcher_TickDeliversDue(t *testing.T) {
	start := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	s, _ := newTestStore(t, start.Add(-time.Hour))
	ctx := context.Background()
	ap := testAppointment(start)

	if err := s.Schedule(ctx, ap); err != nil {
		t.Fatalf("Schedule failed: %v", err)
	}

	n := &recordingNotifier{}
	d := NewDispatcher(s, n, zap.NewNop(), time.Minute)
	d.now = func() time.Time { return start }

	d.tick(ctx)
	d.tick(ctx)

	if len(n.keys) != 2 {
		t.Fatalf("want 2 deliveries, got %v", n.keys)
	}
}

type recordingScheduler struct {
	mu  sync.Mutex
	ops []string
}

func (r *recordingScheduler) Schedule(_ context.Context, ap *models.Appointment) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, "schedule:"+ap.ID.String())
	return nil
}

func (r *recordingScheduler) Cancel(_ context.Context, id uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.ops = append(r.ops, "cancel:"+id.String())
	return nil
}

func TestQueue_FIFO(t *testing.T) {
	rec := &recordingScheduler{}
	q := NewQueue(rec, zap.NewNop())

	ap := testAppointment(time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC))
	q.RequestCancel(ap.ID)
	q.RequestSchedule(*ap)
	q.Close()

	want := []string{"cancel:" + ap.ID.String(), "schedule:" + ap.ID.String()}
	if len(rec.ops) != 2 || rec.ops[0] != want[0] || rec.ops[1] != want[1] {
		t.Fatalf("want %v, got %v", want, rec.ops)
	}
}

func TestNopScheduler(t *testing.T) {
	var s Scheduler = NopScheduler{}
	if err := s.Schedule(context.Background(), &models.Appointment{}); err != nil {
		t.Fatal(err)
	}
	if err := s.Cancel(context.Background(), uuid.New()); err != nil {
		t.Fatal(err)
	}
}
