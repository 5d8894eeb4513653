package engine

// Texts holds every user-facing phrase the engine can reply with.
// Wording is supplied by the bot layer; the engine only selects.
type Texts struct {
	Welcome          string
	HelpRegistered   string
	HelpUnregistered string

	AlreadyRegistered string
	NotRegistered     string
	ResetDone         string

	PromptName       string
	PromptSurname    string
	PromptPhone      string
	RegistrationDone string
	ProfileFormat    string // name, surname, phone

	NoClientRecord string
	BadName        string
	BadSurname     string
	BadPhone       string

	PromptDate  string
	PromptTime  string
	PromptPet   string
	BookingDone string

	NoAppointmentRecord string
	BadDate             string
	BadTime             string
	BadPet              string

	NoAppointments     string
	AppointmentsHeader string
	AppointmentFormat  string // date, time, pet type
}
