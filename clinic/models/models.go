package models

// Client is a bot user built up field by field through the registration
// flow. Empty Name, Surname, or Phone means the field is not collected yet.
type Client struct {
	ID      int64  `db:"id"`
	ChatID  int64  `db:"chat_id"`
	Name    string `db:"name"`
	Surname string `db:"surname"`
	Phone   string `db:"phone"`
}

// Registered reports whether all profile fields are collected.
// Registration state is derived from field presence, never stored.
func (c *Client) Registered() bool {
	return c != nil && c.Name != "" && c.Surname != "" && c.Phone != ""
}

// Appointment is a booking owned by a Client, filled in over three
// sequential steps. Empty Date, Time, or PetType means not chosen yet.
type Appointment struct {
	ID       int64  `db:"id"`
	ClientID int64  `db:"client_id"`
	Date     string `db:"visit_date"`
	Time     string `db:"visit_time"`
	PetType  string `db:"pet_type"`
}

// Complete reports whether all booking fields are chosen.
func (a *Appointment) Complete() bool {
	return a != nil && a.Date != "" && a.Time != "" && a.PetType != ""
}

// Stale reports whether the appointment was abandoned mid-flow.
// Stale rows are reaped lazily when the owner lists appointments.
func (a *Appointment) Stale() bool {
	return !a.Complete()
}
