package engine

import "github.com/m3rciful/tailtrust/clinic/models"

// Step is the conversation position inferred once per incoming message
// from the shape of the persisted entities. Nothing is cached between
// messages; the enum exists so that dispatch is unambiguous.
type Step int

const (
	// StepIdle means no flow is waiting for input.
	StepIdle Step = iota
	// StepName through StepPhone are the registration flow positions.
	StepName
	StepSurname
	StepPhone
	// StepDate through StepPet are the booking flow positions.
	StepDate
	StepTime
	StepPet
)

var stepNames = map[Step]string{
	StepIdle:    "idle",
	StepName:    "awaiting_name",
	StepSurname: "awaiting_surname",
	StepPhone:   "awaiting_phone",
	StepDate:    "awaiting_date",
	StepTime:    "awaiting_time",
	StepPet:     "awaiting_pet",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return "unknown"
}

// Registration reports whether the step belongs to the registration flow.
func (s Step) Registration() bool {
	return s == StepName || s == StepSurname || s == StepPhone
}

// Booking reports whether the step belongs to the appointment flow.
func (s Step) Booking() bool {
	return s == StepDate || s == StepTime || s == StepPet
}

// InferStep derives the active step from a loaded client and its
// appointments (newest first). Registration fields are consulted in
// fixed order and the first empty one wins; a registered client's step
// comes from the most recent incomplete appointment, if any.
func InferStep(c *models.Client, appts []models.Appointment) Step {
	if c == nil {
		return StepIdle
	}
	switch {
	case c.Name == "":
		return StepName
	case c.Surname == "":
		return StepSurname
	case c.Phone == "":
		return StepPhone
	}
	if a := activeAppointment(appts); a != nil {
		switch {
		case a.Date == "":
			return StepDate
		case a.Time == "":
			return StepTime
		default:
			return StepPet
		}
	}
	return StepIdle
}

// activeAppointment picks the most recent incomplete appointment from a
// newest-first list.
func activeAppointment(appts []models.Appointment) *models.Appointment {
	for i := range appts {
		if appts[i].Stale() {
			return &appts[i]
		}
	}
	return nil
}
