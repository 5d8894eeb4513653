package schedule

import "time"

const (
	defaultHorizonDays = 7
	defaultDateLayout  = "2006-01-02"
)

var (
	defaultWeekdays = []time.Weekday{
		time.Monday, time.Tuesday, time.Wednesday, time.Thursday, time.Friday,
	}
	defaultTimes    = []string{"10:00", "12:00", "14:00", "16:00"}
	defaultPetTypes = []string{"Собака", "Кошка", "Птица", "Грызун"}
)

// Config describes the clinic's bookable schedule. Zero values fall
// back to a Mon-Fri week, a 7 day horizon, and the standard slot lists.
type Config struct {
	HorizonDays int
	Weekdays    []time.Weekday
	DateLayout  string
	Times       []string
	PetTypes    []string
}

func (c Config) horizon() int {
	if c.HorizonDays > 0 {
		return c.HorizonDays
	}
	return defaultHorizonDays
}

func (c Config) layout() string {
	if c.DateLayout != "" {
		return c.DateLayout
	}
	return defaultDateLayout
}

func (c Config) weekdaySet() map[time.Weekday]struct{} {
	days := c.Weekdays
	if len(days) == 0 {
		days = defaultWeekdays
	}
	set := make(map[time.Weekday]struct{}, len(days))
	for _, d := range days {
		set[d] = struct{}{}
	}
	return set
}

// Dates walks forward from now over the configured horizon and returns
// the formatted days whose weekday is bookable. Pure function of now
// and the configuration; no availability checks against existing
// appointments are made.
func (c Config) Dates(now time.Time) []string {
	allowed := c.weekdaySet()
	layout := c.layout()

	var out []string
	for i := 0; i < c.horizon(); i++ {
		day := now.AddDate(0, 0, i)
		if _, ok := allowed[day.Weekday()]; !ok {
			continue
		}
		out = append(out, day.Format(layout))
	}
	return out
}

// TimeSlots returns the configured ordered visit time labels.
func (c Config) TimeSlots() []string {
	if len(c.Times) > 0 {
		return c.Times
	}
	return defaultTimes
}

// PetLabels returns the configured ordered pet category labels.
func (c Config) PetLabels() []string {
	if len(c.PetTypes) > 0 {
		return c.PetTypes
	}
	return defaultPetTypes
}

// IsPetLabel reports whether text matches a configured label exactly.
func (c Config) IsPetLabel(text string) bool {
	for _, label := range c.PetLabels() {
		if text == label {
			return true
		}
	}
	return false
}
