package engine

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"log/slog"

	"github.com/m3rciful/tailtrust/clinic/models"
	"github.com/m3rciful/tailtrust/clinic/repository"
	"github.com/m3rciful/tailtrust/clinic/schedule"
	"github.com/m3rciful/tailtrust/clinic/validator"
	"github.com/m3rciful/tailtrust/core/logger"
)

// Repository is the persistence contract the engine depends on.
// Appointment listings are expected newest first.
type Repository interface {
	ClientByChatID(ctx context.Context, chatID int64) (*models.Client, error)
	CreateClient(ctx context.Context, chatID int64) (*models.Client, error)
	SaveClient(ctx context.Context, c *models.Client) error
	DeleteClient(ctx context.Context, c *models.Client) error

	CreateAppointment(ctx context.Context, clientID int64) (*models.Appointment, error)
	SaveAppointment(ctx context.Context, a *models.Appointment) error
	AppointmentsByClient(ctx context.Context, clientID int64) ([]models.Appointment, error)
	DeleteAppointment(ctx context.Context, a *models.Appointment) error
}

// Reply is the outgoing message selected by the engine. Options, when
// present, render as a single-column selectable keyboard.
type Reply struct {
	Text          string
	Options       []string
	ClearKeyboard bool
}

// Engine drives both conversational flows. It owns no persistent state;
// the position of every conversation is re-derived from the repository
// on each incoming message.
type Engine struct {
	repo  Repository
	sched schedule.Config
	texts Texts
	now   func() time.Time
	locks chatLocks
}

// Option adjusts engine construction.
type Option func(*Engine)

// WithClock overrides the time source used for candidate date generation.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

// New builds an engine over the given repository and schedule.
func New(repo Repository, sched schedule.Config, texts Texts, opts ...Option) *Engine {
	e := &Engine{
		repo:  repo,
		sched: sched,
		texts: texts,
		now:   time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Welcome returns the greeting sent for /start.
func (e *Engine) Welcome() Reply {
	return Reply{Text: e.texts.Welcome}
}

// Help returns the command list, full for registered clients and
// abbreviated otherwise.
func (e *Engine) Help(ctx context.Context, chatID int64) (Reply, error) {
	c, err := e.loadClient(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if c.Registered() {
		return Reply{Text: e.texts.HelpRegistered}, nil
	}
	return Reply{Text: e.texts.HelpUnregistered}, nil
}

// Profile returns the stored client fields, or "not registered."
func (e *Engine) Profile(ctx context.Context, chatID int64) (Reply, error) {
	c, err := e.loadClient(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if !c.Registered() {
		return Reply{Text: e.texts.NotRegistered}, nil
	}
	return Reply{Text: fmt.Sprintf(e.texts.ProfileFormat, c.Name, c.Surname, c.Phone)}, nil
}

// Reset deletes the client row entirely; appointments cascade with it.
func (e *Engine) Reset(ctx context.Context, chatID int64) (Reply, error) {
	defer e.locks.lock(chatID)()

	c, err := e.loadClient(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if c == nil {
		return Reply{Text: e.texts.NotRegistered}, nil
	}
	if err := e.repo.DeleteClient(ctx, c); err != nil {
		return Reply{}, err
	}
	logger.Info(ctx, "service.clients", "reset",
		slog.Int64("client_id", c.ID),
		slog.String("outcome", "deleted"),
	)
	return Reply{Text: e.texts.ResetDone}, nil
}

// StartRegistration handles /register: short-circuits for fully
// registered clients, otherwise ensures a row exists and prompts for
// the first missing field.
func (e *Engine) StartRegistration(ctx context.Context, chatID int64) (Reply, error) {
	defer e.locks.lock(chatID)()

	c, err := e.loadClient(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if c.Registered() {
		return Reply{Text: e.texts.AlreadyRegistered}, nil
	}
	if c == nil {
		c, err = e.repo.CreateClient(ctx, chatID)
		if err != nil {
			return Reply{}, err
		}
	}

	step := InferStep(c, nil)
	logger.Info(ctx, "service.clients", "registration.start",
		slog.Int64("client_id", c.ID),
		slog.String("step", step.String()),
	)
	return e.registrationPrompt(step), nil
}

// StartBooking handles /appointment: requires full registration, then
// creates an empty appointment and prompts for a date.
func (e *Engine) StartBooking(ctx context.Context, chatID int64) (Reply, error) {
	defer e.locks.lock(chatID)()

	c, err := e.loadClient(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if !c.Registered() {
		return Reply{Text: e.texts.NotRegistered}, nil
	}

	a, err := e.repo.CreateAppointment(ctx, c.ID)
	if err != nil {
		return Reply{}, err
	}
	logger.Info(ctx, "service.appointments", "booking.start",
		slog.Int64("client_id", c.ID),
		slog.Int64("appointment_id", a.ID),
	)
	return Reply{Text: e.texts.PromptDate, Options: e.sched.Dates(e.now())}, nil
}

// Continue handles a non-command message as the input expected by the
// single active flow. The flow is picked by the inferred step, never by
// trying both flows in sequence.
func (e *Engine) Continue(ctx context.Context, chatID int64, text string) (Reply, error) {
	defer e.locks.lock(chatID)()

	text = strings.TrimSpace(text)

	c, err := e.loadClient(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if c == nil {
		return Reply{Text: e.texts.NoClientRecord}, nil
	}

	if !c.Registered() {
		return e.continueRegistration(ctx, c, text)
	}
	return e.continueBooking(ctx, c, text)
}

func (e *Engine) continueRegistration(ctx context.Context, c *models.Client, text string) (Reply, error) {
	step := InferStep(c, nil)

	var (
		ok   bool
		next Reply
	)
	switch step {
	case StepName:
		if ok = validator.Name(text); ok {
			c.Name = text
			next = Reply{Text: e.texts.PromptSurname}
		} else {
			next = Reply{Text: e.texts.BadName}
		}
	case StepSurname:
		if ok = validator.Surname(text); ok {
			c.Surname = text
			next = Reply{Text: e.texts.PromptPhone}
		} else {
			next = Reply{Text: e.texts.BadSurname}
		}
	case StepPhone:
		if ok = validator.Phone(text); ok {
			c.Phone = text
			next = Reply{Text: e.texts.RegistrationDone}
		} else {
			next = Reply{Text: e.texts.BadPhone}
		}
	default:
		return Reply{Text: e.texts.AlreadyRegistered}, nil
	}

	if ok {
		if err := e.repo.SaveClient(ctx, c); err != nil {
			return Reply{}, err
		}
	}
	logger.Info(ctx, "service.clients", "registration.step",
		slog.Int64("client_id", c.ID),
		slog.String("step", step.String()),
		slog.String("outcome", stepOutcome(ok)),
	)
	return next, nil
}

func (e *Engine) continueBooking(ctx context.Context, c *models.Client, text string) (Reply, error) {
	appts, err := e.repo.AppointmentsByClient(ctx, c.ID)
	if err != nil {
		return Reply{}, err
	}
	a := activeAppointment(appts)
	if a == nil {
		return Reply{Text: e.texts.NoAppointmentRecord}, nil
	}

	step := InferStep(c, appts)

	var (
		ok   bool
		next Reply
	)
	switch step {
	case StepDate:
		if ok = validator.Date(text); ok {
			a.Date = text
			next = Reply{Text: e.texts.PromptTime, Options: e.sched.TimeSlots()}
		} else {
			next = Reply{Text: e.texts.BadDate, Options: e.sched.Dates(e.now())}
		}
	case StepTime:
		if ok = validator.Time(text); ok {
			a.Time = text
			next = Reply{Text: e.texts.PromptPet, Options: e.sched.PetLabels()}
		} else {
			next = Reply{Text: e.texts.BadTime, Options: e.sched.TimeSlots()}
		}
	default: // StepPet
		if ok = e.sched.IsPetLabel(text); ok {
			a.PetType = text
			next = Reply{Text: e.texts.BookingDone, ClearKeyboard: true}
		} else {
			next = Reply{Text: e.texts.BadPet, Options: e.sched.PetLabels()}
		}
	}

	if ok {
		if err := e.repo.SaveAppointment(ctx, a); err != nil {
			return Reply{}, err
		}
	}
	logger.Info(ctx, "service.appointments", "booking.step",
		slog.Int64("client_id", c.ID),
		slog.Int64("appointment_id", a.ID),
		slog.String("step", step.String()),
		slog.String("outcome", stepOutcome(ok)),
	)
	return next, nil
}

// Appointments handles /applist: stale appointments are reaped on the
// spot, complete ones are listed newest first.
func (e *Engine) Appointments(ctx context.Context, chatID int64) (Reply, error) {
	defer e.locks.lock(chatID)()

	c, err := e.loadClient(ctx, chatID)
	if err != nil {
		return Reply{}, err
	}
	if !c.Registered() {
		return Reply{Text: e.texts.NotRegistered}, nil
	}

	appts, err := e.repo.AppointmentsByClient(ctx, c.ID)
	if err != nil {
		return Reply{}, err
	}

	var (
		lines  []string
		reaped int
	)
	for i := range appts {
		a := &appts[i]
		if a.Stale() {
			if err := e.repo.DeleteAppointment(ctx, a); err != nil {
				return Reply{}, err
			}
			reaped++
			continue
		}
		lines = append(lines, fmt.Sprintf(e.texts.AppointmentFormat, a.Date, a.Time, a.PetType))
	}
	if reaped > 0 {
		logger.Info(ctx, "service.appointments", "reap",
			slog.Int64("client_id", c.ID),
			slog.Int("count", reaped),
		)
	}

	if len(lines) == 0 {
		return Reply{Text: e.texts.NoAppointments}, nil
	}
	text := e.texts.AppointmentsHeader + strings.Join(lines, "\n")
	return Reply{Text: text}, nil
}

// loadClient turns the repository's not-found sentinel into a nil
// client so callers can branch on presence.
func (e *Engine) loadClient(ctx context.Context, chatID int64) (*models.Client, error) {
	c, err := e.repo.ClientByChatID(ctx, chatID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (e *Engine) registrationPrompt(step Step) Reply {
	switch step {
	case StepSurname:
		return Reply{Text: e.texts.PromptSurname}
	case StepPhone:
		return Reply{Text: e.texts.PromptPhone}
	default:
		return Reply{Text: e.texts.PromptName}
	}
}

func stepOutcome(ok bool) string {
	if ok {
		return "advanced"
	}
	return "rejected"
}
