package engine

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/m3rciful/tailtrust/clinic/models"
	"github.com/m3rciful/tailtrust/clinic/repository"
	"github.com/m3rciful/tailtrust/clinic/schedule"
)

type fakeRepo struct {
	clients map[int64]*models.Client
	appts   []*models.Appointment
	nextID  int64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{clients: make(map[int64]*models.Client)}
}

func (r *fakeRepo) id() int64 {
	r.nextID++
	return r.nextID
}

func (r *fakeRepo) ClientByChatID(_ context.Context, chatID int64) (*models.Client, error) {
	c, ok := r.clients[chatID]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) CreateClient(_ context.Context, chatID int64) (*models.Client, error) {
	c := &models.Client{ID: r.id(), ChatID: chatID}
	r.clients[chatID] = c
	cp := *c
	return &cp, nil
}

func (r *fakeRepo) SaveClient(_ context.Context, c *models.Client) error {
	stored := r.clients[c.ChatID]
	*stored = *c
	return nil
}

func (r *fakeRepo) DeleteClient(_ context.Context, c *models.Client) error {
	delete(r.clients, c.ChatID)
	kept := r.appts[:0]
	for _, a := range r.appts {
		if a.ClientID != c.ID {
			kept = append(kept, a)
		}
	}
	r.appts = kept
	return nil
}

func (r *fakeRepo) CreateAppointment(_ context.Context, clientID int64) (*models.Appointment, error) {
	a := &models.Appointment{ID: r.id(), ClientID: clientID}
	r.appts = append(r.appts, a)
	cp := *a
	return &cp, nil
}

func (r *fakeRepo) SaveAppointment(_ context.Context, a *models.Appointment) error {
	for _, stored := range r.appts {
		if stored.ID == a.ID {
			*stored = *a
			return nil
		}
	}
	return repository.ErrNotFound
}

func (r *fakeRepo) AppointmentsByClient(_ context.Context, clientID int64) ([]models.Appointment, error) {
	var list []models.Appointment
	for i := len(r.appts) - 1; i >= 0; i-- {
		if r.appts[i].ClientID == clientID {
			list = append(list, *r.appts[i])
		}
	}
	return list, nil
}

func (r *fakeRepo) DeleteAppointment(_ context.Context, a *models.Appointment) error {
	for i, stored := range r.appts {
		if stored.ID == a.ID {
			r.appts = append(r.appts[:i], r.appts[i+1:]...)
			return nil
		}
	}
	return repository.ErrNotFound
}

var testTexts = Texts{
	Welcome:             "welcome",
	HelpRegistered:      "help full",
	HelpUnregistered:    "help short",
	AlreadyRegistered:   "already registered",
	NotRegistered:       "not registered",
	ResetDone:           "reset done",
	PromptName:          "name?",
	PromptSurname:       "surname?",
	PromptPhone:         "phone?",
	RegistrationDone:    "registration done",
	ProfileFormat:       "profile %s %s %s",
	NoClientRecord:      "no client record",
	BadName:             "bad name",
	BadSurname:          "bad surname",
	BadPhone:            "bad phone",
	PromptDate:          "date?",
	PromptTime:          "time?",
	PromptPet:           "pet?",
	BookingDone:         "booking done",
	NoAppointmentRecord: "no appointment record",
	BadDate:             "bad date",
	BadTime:             "bad time",
	BadPet:              "bad pet",
	NoAppointments:      "no appointments",
	AppointmentsHeader:  "list:\n",
	AppointmentFormat:   "%s %s %s",
}

func newTestEngine(repo Repository) *Engine {
	// Monday, so the whole default horizon is bookable weekdays.
	now := time.Date(2026, time.August, 24, 10, 0, 0, 0, time.UTC)
	return New(repo, schedule.Config{}, testTexts, WithClock(func() time.Time { return now }))
}

func registerClient(t *testing.T, e *Engine, chatID int64) {
	t.Helper()
	ctx := context.Background()
	if _, err := e.StartRegistration(ctx, chatID); err != nil {
		t.Fatal(err)
	}
	for _, msg := range []string{"Anna", "Ivanova", "+12345678901"} {
		if _, err := e.Continue(ctx, chatID, msg); err != nil {
			t.Fatal(err)
		}
	}
}

func TestRegistrationFlow(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	ctx := context.Background()

	reply, err := e.StartRegistration(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "name?" {
		t.Fatalf("want name prompt, got %q", reply.Text)
	}

	steps := []struct {
		input string
		want  string
	}{
		{"Anna", "surname?"},
		{"Ivanova", "phone?"},
		{"+12345678901", "registration done"},
	}
	for _, s := range steps {
		reply, err = e.Continue(ctx, 42, s.input)
		if err != nil {
			t.Fatal(err)
		}
		if reply.Text != s.want {
			t.Fatalf("after %q: want %q, got %q", s.input, s.want, reply.Text)
		}
	}

	c := repo.clients[42]
	if c.Name != "Anna" || c.Surname != "Ivanova" || c.Phone != "+12345678901" {
		t.Errorf("client not fully stored: %+v", c)
	}
}

func TestRegistrationRejectsInvalidInput(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	ctx := context.Background()

	_, _ = e.StartRegistration(ctx, 42)

	reply, err := e.Continue(ctx, 42, "Anna123")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "bad name" {
		t.Fatalf("want bad name reply, got %q", reply.Text)
	}
	if repo.clients[42].Name != "" {
		t.Error("invalid name must not be stored")
	}

	// Position is unchanged, a valid retry advances.
	reply, _ = e.Continue(ctx, 42, "Anna")
	if reply.Text != "surname?" {
		t.Fatalf("want surname prompt, got %q", reply.Text)
	}
}

func TestRegisterWhenAlreadyRegistered(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)

	reply, err := e.StartRegistration(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "already registered" {
		t.Fatalf("want already registered, got %q", reply.Text)
	}
	if c := repo.clients[42]; c.Name != "Anna" {
		t.Errorf("fields mutated: %+v", c)
	}
}

func TestContinueWithoutClientRecord(t *testing.T) {
	e := newTestEngine(newFakeRepo())

	reply, err := e.Continue(context.Background(), 99, "Anna")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "no client record" {
		t.Fatalf("want no client record, got %q", reply.Text)
	}
}

func TestBookingRequiresRegistration(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)

	reply, err := e.StartBooking(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "not registered" {
		t.Fatalf("want not registered, got %q", reply.Text)
	}
	if len(repo.appts) != 0 {
		t.Error("appointment row must not be created")
	}
}

func TestBookingFlow(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)
	ctx := context.Background()

	reply, err := e.StartBooking(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "date?" {
		t.Fatalf("want date prompt, got %q", reply.Text)
	}
	if len(reply.Options) != 5 {
		t.Fatalf("want 5 candidate dates, got %v", reply.Options)
	}

	reply, _ = e.Continue(ctx, 42, reply.Options[0])
	if reply.Text != "time?" || len(reply.Options) == 0 {
		t.Fatalf("want time prompt with slots, got %+v", reply)
	}

	reply, _ = e.Continue(ctx, 42, "10:00")
	if reply.Text != "pet?" || len(reply.Options) == 0 {
		t.Fatalf("want pet prompt with labels, got %+v", reply)
	}

	reply, _ = e.Continue(ctx, 42, "Кошка")
	if reply.Text != "booking done" {
		t.Fatalf("want booking done, got %q", reply.Text)
	}
	if !reply.ClearKeyboard {
		t.Error("completion must clear the keyboard")
	}

	if len(repo.appts) != 1 || !repo.appts[0].Complete() {
		t.Fatalf("appointment not complete: %+v", repo.appts)
	}
}

func TestBookingRejectsUnmatchedInput(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)
	ctx := context.Background()

	_, _ = e.StartBooking(ctx, 42)

	reply, _ := e.Continue(ctx, 42, "tomorrow")
	if reply.Text != "bad date" {
		t.Fatalf("want bad date, got %q", reply.Text)
	}

	_, _ = e.Continue(ctx, 42, "2026-08-24")
	reply, _ = e.Continue(ctx, 42, "noon")
	if reply.Text != "bad time" {
		t.Fatalf("want bad time, got %q", reply.Text)
	}

	_, _ = e.Continue(ctx, 42, "10:00")
	reply, _ = e.Continue(ctx, 42, "Дракон")
	if reply.Text != "bad pet" {
		t.Fatalf("want bad pet, got %q", reply.Text)
	}
	if repo.appts[0].PetType != "" {
		t.Error("unmatched pet label must not be stored")
	}
}

func TestContinueWithoutActiveAppointment(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)

	reply, err := e.Continue(context.Background(), 42, "hello")
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "no appointment record" {
		t.Fatalf("want no appointment record, got %q", reply.Text)
	}
}

func TestApplistReapsStaleAppointments(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)
	ctx := context.Background()

	// One complete booking.
	_, _ = e.StartBooking(ctx, 42)
	_, _ = e.Continue(ctx, 42, "2026-08-24")
	_, _ = e.Continue(ctx, 42, "10:00")
	_, _ = e.Continue(ctx, 42, "Собака")

	// One abandoned mid-flow.
	_, _ = e.StartBooking(ctx, 42)
	_, _ = e.Continue(ctx, 42, "2026-08-25")

	reply, err := e.Appointments(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(reply.Text, "2026-08-24 10:00 Собака") {
		t.Errorf("complete appointment missing from list: %q", reply.Text)
	}
	if strings.Contains(reply.Text, "2026-08-25") {
		t.Errorf("stale appointment listed: %q", reply.Text)
	}
	if len(repo.appts) != 1 {
		t.Errorf("stale appointment not reaped: %+v", repo.appts)
	}
}

func TestApplistEmpty(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)

	reply, err := e.Appointments(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "no appointments" {
		t.Fatalf("want no appointments, got %q", reply.Text)
	}
}

func TestResetCascades(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)
	ctx := context.Background()

	_, _ = e.StartBooking(ctx, 42)

	reply, err := e.Reset(ctx, 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "reset done" {
		t.Fatalf("want reset done, got %q", reply.Text)
	}
	if len(repo.clients) != 0 || len(repo.appts) != 0 {
		t.Errorf("reset must delete client and appointments: %+v %+v", repo.clients, repo.appts)
	}

	reply, _ = e.Profile(ctx, 42)
	if reply.Text != "not registered" {
		t.Fatalf("want not registered after reset, got %q", reply.Text)
	}
}

func TestResetUnregistered(t *testing.T) {
	e := newTestEngine(newFakeRepo())

	reply, err := e.Reset(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "not registered" {
		t.Fatalf("want not registered, got %q", reply.Text)
	}
}

func TestHelpVariants(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	ctx := context.Background()

	reply, _ := e.Help(ctx, 42)
	if reply.Text != "help short" {
		t.Fatalf("want abbreviated help, got %q", reply.Text)
	}

	registerClient(t, e, 42)
	reply, _ = e.Help(ctx, 42)
	if reply.Text != "help full" {
		t.Fatalf("want full help, got %q", reply.Text)
	}
}

func TestProfile(t *testing.T) {
	repo := newFakeRepo()
	e := newTestEngine(repo)
	registerClient(t, e, 42)

	reply, err := e.Profile(context.Background(), 42)
	if err != nil {
		t.Fatal(err)
	}
	if reply.Text != "profile Anna Ivanova +12345678901" {
		t.Fatalf("unexpected profile: %q", reply.Text)
	}
}

func TestInferStep(t *testing.T) {
	cases := []struct {
		name   string
		client *models.Client
		appts  []models.Appointment
		want   Step
	}{
		{"no client", nil, nil, StepIdle},
		{"empty client", &models.Client{}, nil, StepName},
		{"name set", &models.Client{Name: "A"}, nil, StepSurname},
		{"surname set", &models.Client{Name: "A", Surname: "B"}, nil, StepPhone},
		{"registered idle", &models.Client{Name: "A", Surname: "B", Phone: "1234567890"}, nil, StepIdle},
		{
			"awaiting date",
			&models.Client{Name: "A", Surname: "B", Phone: "1234567890"},
			[]models.Appointment{{}},
			StepDate,
		},
		{
			"awaiting time",
			&models.Client{Name: "A", Surname: "B", Phone: "1234567890"},
			[]models.Appointment{{Date: "2026-08-24"}},
			StepTime,
		},
		{
			"awaiting pet",
			&models.Client{Name: "A", Surname: "B", Phone: "1234567890"},
			[]models.Appointment{{Date: "2026-08-24", Time: "10:00"}},
			StepPet,
		},
		{
			"complete appointment is idle",
			&models.Client{Name: "A", Surname: "B", Phone: "1234567890"},
			[]models.Appointment{{Date: "2026-08-24", Time: "10:00", PetType: "Кошка"}},
			StepIdle,
		},
		{
			"newest incomplete wins",
			&models.Client{Name: "A", Surname: "B", Phone: "1234567890"},
			[]models.Appointment{
				{ID: 2, Date: "2026-08-25"},
				{ID: 1, Date: "2026-08-24", Time: "10:00", PetType: "Кошка"},
			},
			StepTime,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := InferStep(tc.client, tc.appts); got != tc.want {
				t.Errorf("InferStep = %v, want %v", got, tc.want)
			}
		})
	}
}
