package schedule

import (
	"reflect"
	"testing"
	"time"
)

func TestDatesSkipsWeekends(t *testing.T) {
	// 2026-08-28 is a Friday.
	now := time.Date(2026, time.August, 28, 12, 0, 0, 0, time.UTC)

	got := Config{}.Dates(now)
	want := []string{
		"2026-08-28", // Fri
		"2026-08-31", // Mon
		"2026-09-01", // Tue
		"2026-09-02", // Wed
		"2026-09-03", // Thu
	}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dates() = %v, want %v", got, want)
	}
}

func TestDatesCustomConfig(t *testing.T) {
	now := time.Date(2026, time.August, 24, 0, 0, 0, 0, time.UTC) // Monday

	cfg := Config{
		HorizonDays: 3,
		Weekdays:    []time.Weekday{time.Monday, time.Wednesday},
		DateLayout:  "02.01.2006",
	}
	got := cfg.Dates(now)
	want := []string{"24.08.2026", "26.08.2026"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Dates() = %v, want %v", got, want)
	}
}

func TestDatesDeterministic(t *testing.T) {
	now := time.Date(2026, time.September, 7, 9, 30, 0, 0, time.UTC)
	cfg := Config{}
	if a, b := cfg.Dates(now), cfg.Dates(now); !reflect.DeepEqual(a, b) {
		t.Errorf("Dates not deterministic: %v vs %v", a, b)
	}
}

func TestSlotDefaults(t *testing.T) {
	cfg := Config{}
	if len(cfg.TimeSlots()) == 0 {
		t.Error("no default time slots")
	}
	if len(cfg.PetLabels()) == 0 {
		t.Error("no default pet labels")
	}
	if !cfg.IsPetLabel("Кошка") {
		t.Error("expected default pet label to match")
	}
	if cfg.IsPetLabel("кошка") {
		t.Error("pet label match must be exact")
	}
}

func TestSlotOverrides(t *testing.T) {
	cfg := Config{Times: []string{"09:00"}, PetTypes: []string{"Хомяк"}}
	if !reflect.DeepEqual(cfg.TimeSlots(), []string{"09:00"}) {
		t.Errorf("TimeSlots override ignored: %v", cfg.TimeSlots())
	}
	if !cfg.IsPetLabel("Хомяк") || cfg.IsPetLabel("Кошка") {
		t.Error("PetTypes override ignored")
	}
}
