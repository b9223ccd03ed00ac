package cli

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/google/uuid"

	domain "github.com/BruksfildServices01/chair-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/chair-scheduler/internal/domain/timeslot"
	"github.com/BruksfildServices01/chair-scheduler/internal/models"
)

func init() {
	color.NoColor = true
}

func TestPrintSlots(t *testing.T) {
	var buf bytes.Buffer
	printSlots(&buf, domain.DefaultPolicy())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != timeslot.SlotsPerDay {
		t.Fatalf("want %d lines, got %d", timeslot.SlotsPerDay, len(lines))
	}
	if lines[0] != "00:00" || lines[47] != "23:30" {
		t.Fatalf("unexpected bounds %q %q", lines[0], lines[47])
	}
}

func TestPrintDay(t *testing.T) {
	ap := models.Appointment{
		ID:           uuid.New(),
		CustomerName: "Ayla",
		Date:         time.Date(2024, time.May, 2, 0, 0, 0, 0, time.UTC),
		DurationMin:  60,
	}
	ap.SetSlot(timeslot.New(9, 0))

	var buf bytes.Buffer
	printDay(&buf, []models.Appointment{ap}, domain.DefaultPolicy())

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != timeslot.SlotsPerDay {
		t.Fatalf("want %d lines, got %d", timeslot.SlotsPerDay, len(lines))
	}

	// 09:00 é o índice 18
	if lines[18] != "09:00  ● Ayla (09:00-10:00)" {
		t.Fatalf("unexpected start line %q", lines[18])
	}
	if lines[19] != "09:30  │" {
		t.Fatalf("unexpected continuation %q", lines[19])
	}
	if lines[20] != "10:00  ·" {
		t.Fatalf("want 10:00 free, got %q", lines[20])
	}
	if lines[0] != "00:00" {
		t.Fatalf("want 00:00 outside window, got %q", lines[0])
	}
}
