package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"log/slog"

	"github.com/m3rciful/tailtrust/clinic/models"
	"github.com/m3rciful/tailtrust/core/logger"
)

// ErrNotFound is returned when a requested row does not exist.
var ErrNotFound = errors.New("repository: not found")

// Clinic persists clients and their appointments in Postgres.
type Clinic struct {
	db *sqlx.DB
}

// New wraps an established database handle.
func New(db *sqlx.DB) *Clinic {
	return &Clinic{db: db}
}

// ClientByChatID loads a client by the stable Telegram chat identifier.
func (r *Clinic) ClientByChatID(ctx context.Context, chatID int64) (*models.Client, error) {
	var c models.Client
	err := r.db.GetContext(ctx, &c,
		`SELECT id, chat_id, name, surname, phone FROM clients WHERE chat_id = $1`, chatID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("client by chat_id %d: %w", chatID, err)
	}
	return &c, nil
}

// CreateClient inserts an empty client row keyed by chat identifier.
func (r *Clinic) CreateClient(ctx context.Context, chatID int64) (*models.Client, error) {
	c := models.Client{ChatID: chatID}
	err := r.db.GetContext(ctx, &c.ID,
		`INSERT INTO clients (chat_id) VALUES ($1) RETURNING id`, chatID)
	if err != nil {
		return nil, fmt.Errorf("create client %d: %w", chatID, err)
	}
	logger.Debug(ctx, "db.clients", "create",
		slog.Int64("client_id", c.ID),
		slog.Int64("chat_id", chatID),
	)
	return &c, nil
}

// SaveClient persists the client's profile fields.
func (r *Clinic) SaveClient(ctx context.Context, c *models.Client) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE clients SET name = $1, surname = $2, phone = $3 WHERE id = $4`,
		c.Name, c.Surname, c.Phone, c.ID)
	if err != nil {
		return fmt.Errorf("save client %d: %w", c.ID, err)
	}
	return nil
}

// DeleteClient removes the client row. Appointments cascade via the
// foreign key constraint.
func (r *Clinic) DeleteClient(ctx context.Context, c *models.Client) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM clients WHERE id = $1`, c.ID)
	if err != nil {
		return fmt.Errorf("delete client %d: %w", c.ID, err)
	}
	logger.Debug(ctx, "db.clients", "delete",
		slog.Int64("client_id", c.ID),
		slog.Int64("chat_id", c.ChatID),
	)
	return nil
}

// CreateAppointment inserts an empty appointment owned by the client.
func (r *Clinic) CreateAppointment(ctx context.Context, clientID int64) (*models.Appointment, error) {
	a := models.Appointment{ClientID: clientID}
	err := r.db.GetContext(ctx, &a.ID,
		`INSERT INTO appointments (client_id) VALUES ($1) RETURNING id`, clientID)
	if err != nil {
		return nil, fmt.Errorf("create appointment for client %d: %w", clientID, err)
	}
	logger.Debug(ctx, "db.appointments", "create",
		slog.Int64("appointment_id", a.ID),
		slog.Int64("client_id", clientID),
	)
	return &a, nil
}

// SaveAppointment persists the appointment's booking fields.
func (r *Clinic) SaveAppointment(ctx context.Context, a *models.Appointment) error {
	_, err := r.db.ExecContext(ctx,
		`UPDATE appointments SET visit_date = $1, visit_time = $2, pet_type = $3 WHERE id = $4`,
		a.Date, a.Time, a.PetType, a.ID)
	if err != nil {
		return fmt.Errorf("save appointment %d: %w", a.ID, err)
	}
	return nil
}

// AppointmentsByClient returns all appointments of a client, newest first.
func (r *Clinic) AppointmentsByClient(ctx context.Context, clientID int64) ([]models.Appointment, error) {
	var list []models.Appointment
	err := r.db.SelectContext(ctx, &list,
		`SELECT id, client_id, visit_date, visit_time, pet_type
		 FROM appointments WHERE client_id = $1 ORDER BY id DESC`, clientID)
	if err != nil {
		return nil, fmt.Errorf("appointments for client %d: %w", clientID, err)
	}
	return list, nil
}

// DeleteAppointment removes a single appointment row.
func (r *Clinic) DeleteAppointment(ctx context.Context, a *models.Appointment) error {
	_, err := r.db.ExecContext(ctx, `DELETE FROM appointments WHERE id = $1`, a.ID)
	if err != nil {
		return fmt.Errorf("delete appointment %d: %w", a.ID, err)
	}
	logger.Debug(ctx, "db.appointments", "delete",
		slog.Int64("appointment_id", a.ID),
		slog.Int64("client_id", a.ClientID),
	)
	return nil
}
