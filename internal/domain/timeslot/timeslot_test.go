package timeslot

import (
	"testing"
	"time"
)

func TestMinutesOfDay_RoundTrip(t *testing.T) {
	for h := 0; h < 24; h++ {
		for _, m := range []int{0, 30} {
			s := New(h, m)
			back := FromMinutesOfDay(s.MinutesOfDay())
			if back != s {
				t.Fatalf("round trip %s: got %s", s, back)
			}
			if back.Hour() != h || back.Minute() != m {
				t.Fatalf("want %02d:%02d, got %s", h, m, back)
			}
		}
	}
}

func TestFromClock_RoundsDown(t *testing.T) {
	for m := 0; m < 60; m++ {
		got := FromClock(14, m)
		want := New(14, 0)
		if m >= 30 {
			want = New(14, 30)
		}
		if got != want {
			t.Fatalf("FromClock(14, %d): want %s, got %s", m, want, got)
		}
	}
}

func TestFromTime(t *testing.T) {
	ts := time.Date(2024, time.May, 1, 9, 47, 12, 0, time.UTC)
	if got := FromTime(ts); got != New(9, 30) {
		t.Fatalf("want 09:30, got %s", got)
	}
}

func TestNew_PanicsOnInvalidInput(t *testing.T) {
	cases := []struct {
		name         string
		hour, minute int
	}{
		{"negative hour", -1, 0},
		{"hour 24", 24, 0},
		{"minute 15", 10, 15},
		{"minute 60", 10, 60},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Fatalf("expected panic for %d:%d", tc.hour, tc.minute)
				}
			}()
			New(tc.hour, tc.minute)
		})
	}
}

func TestCompare(t *testing.T) {
	a := New(9, 0)
	b := New(9, 30)
	c := New(10, 0)

	if Compare(a, b) >= 0 || Compare(b, c) >= 0 || Compare(a, c) >= 0 {
		t.Fatal("expected a < b < c")
	}
	if Compare(c, a) <= 0 {
		t.Fatal("expected c > a")
	}
	if Compare(b, New(9, 30)) != 0 {
		t.Fatal("expected equal slots to compare 0")
	}
	if !a.Before(b) || b.Before(a) {
		t.Fatal("Before disagrees with Compare")
	}
}

func TestAll_YieldsFortyEightOrderedSlots(t *testing.T) {
	var got []TimeSlot
	for s := range All() {
		got = append(got, s)
	}
	if len(got) != SlotsPerDay {
		t.Fatalf("want %d slots, got %d", SlotsPerDay, len(got))
	}
	if got[0] != New(0, 0) || got[len(got)-1] != New(23, 30) {
		t.Fatalf("unexpected bounds %s..%s", got[0], got[len(got)-1])
	}
	for i := 1; i < len(got); i++ {
		if !got[i-1].Before(got[i]) {
			t.Fatalf("slots not ordered at %d: %s then %s", i, got[i-1], got[i])
		}
	}

	// restartable, and stops early when asked
	n := 0
	for range All() {
		n++
		if n == 3 {
			break
		}
	}
	if n != 3 {
		t.Fatalf("early break: got %d", n)
	}
}

func TestParse(t *testing.T) {
	s, err := Parse("09:30")
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	if s != New(9, 30) {
		t.Fatalf("want 09:30, got %s", s)
	}

	for _, bad := range []string{"", "9", "24:00", "10:15", "aa:00", "10:xx"} {
		if _, err := Parse(bad); err == nil {
			t.Errorf("expected error for %q", bad)
		}
	}
}

func TestFormatMinutes_Wraps(t *testing.T) {
	if got := FormatMinutes(23*60 + 30 + 60); got != "00:30" {
		t.Fatalf("want 00:30, got %s", got)
	}
	if got := FormatMinutes(600); got != "10:00" {
		t.Fatalf("want 10:00, got %s", got)
	}
}

func TestOn(t *testing.T) {
	day := time.Date(2024, time.May, 1, 0, 0, 0, 0, time.UTC)
	got := New(9, 30).On(day)
	want := time.Date(2024, time.May, 1, 9, 30, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("want %v, got %v", want, got)
	}
}
