package audit_test

import (
	"context"
	"testing"

	"go.uber.org/zap"

	"github.com/BruksfildServices01/chair-scheduler/internal/audit"
	"github.com/BruksfildServices01/chair-scheduler/internal/testutil"
)

func TestDispatcher_WritesRows(t *testing.T) {
	db := testutil.NewSQLite(t)
	logger := audit.New(db)
	d := audit.NewDispatcher(logger, zap.NewNop())

	d.Dispatch(audit.Event{Action: "stylist_created", Entity: "stylist", EntityID: "a"})
	d.Dispatch(audit.Event{
		Action:   "appointment_booked",
		Entity:   "appointment",
		EntityID: "b",
		Metadata: map[string]any{"start": "09:00"},
	})
	d.Close()

	all, err := logger.List(context.Background(), "", 0)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(all) != 2 {
		t.Fatalf("want 2 rows, got %d", len(all))
	}
	if all[0].Action != "appointment_booked" {
		t.Fatalf("want newest first, got %s", all[0].Action)
	}
	if all[0].Metadata != `{"start":"09:00"}` {
		t.Fatalf("unexpected metadata %q", all[0].Metadata)
	}

	only, err := logger.List(context.Background(), "stylist", 10)
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(only) != 1 || only[0].EntityID != "a" {
		t.Fatalf("unexpected filtered rows %+v", only)
	}
}
