package repository

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jmoiron/sqlx"

	"github.com/m3rciful/tailtrust/clinic/models"
)

func newMock(t *testing.T) (*Clinic, sqlmock.Sqlmock) {
	t.Helper()
	raw, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("sqlmock: %v", err)
	}
	t.Cleanup(func() { _ = raw.Close() })
	return New(sqlx.NewDb(raw, "sqlmock")), mock
}

func TestClientByChatID(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "chat_id", "name", "surname", "phone"}).
		AddRow(int64(1), int64(42), "Anna", "Ivanova", "+12345678901")
	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, chat_id, name, surname, phone FROM clients WHERE chat_id = $1`)).
		WithArgs(int64(42)).
		WillReturnRows(rows)

	c, err := repo.ClientByChatID(context.Background(), 42)
	if err != nil {
		t.Fatalf("ClientByChatID: %v", err)
	}
	if c.ChatID != 42 || c.Name != "Anna" || !c.Registered() {
		t.Errorf("unexpected client: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestClientByChatIDNotFound(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`SELECT id, chat_id, name, surname, phone FROM clients WHERE chat_id = $1`)).
		WithArgs(int64(7)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "chat_id", "name", "surname", "phone"}))

	_, err := repo.ClientByChatID(context.Background(), 7)
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("want ErrNotFound, got %v", err)
	}
}

func TestCreateClient(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO clients (chat_id) VALUES ($1) RETURNING id`)).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(5)))

	c, err := repo.CreateClient(context.Background(), 42)
	if err != nil {
		t.Fatalf("CreateClient: %v", err)
	}
	if c.ID != 5 || c.ChatID != 42 || c.Registered() {
		t.Errorf("unexpected client: %+v", c)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestSaveClient(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE clients SET name = $1, surname = $2, phone = $3 WHERE id = $4`)).
		WithArgs("Anna", "Ivanova", "+12345678901", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	c := &models.Client{ID: 5, ChatID: 42, Name: "Anna", Surname: "Ivanova", Phone: "+12345678901"}
	if err := repo.SaveClient(context.Background(), c); err != nil {
		t.Fatalf("SaveClient: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestDeleteClient(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectExec(regexp.QuoteMeta(`DELETE FROM clients WHERE id = $1`)).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.DeleteClient(context.Background(), &models.Client{ID: 5}); err != nil {
		t.Fatalf("DeleteClient: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}

func TestAppointmentsByClientOrder(t *testing.T) {
	repo, mock := newMock(t)

	rows := sqlmock.NewRows([]string{"id", "client_id", "visit_date", "visit_time", "pet_type"}).
		AddRow(int64(9), int64(5), "", "", "").
		AddRow(int64(3), int64(5), "2026-09-01", "10:00", "Кошка")
	mock.ExpectQuery(`SELECT id, client_id, visit_date, visit_time, pet_type`).
		WithArgs(int64(5)).
		WillReturnRows(rows)

	list, err := repo.AppointmentsByClient(context.Background(), 5)
	if err != nil {
		t.Fatalf("AppointmentsByClient: %v", err)
	}
	if len(list) != 2 {
		t.Fatalf("want 2 appointments, got %d", len(list))
	}
	if list[0].ID != 9 || !list[0].Stale() {
		t.Errorf("newest-first ordering broken: %+v", list[0])
	}
	if !list[1].Complete() {
		t.Errorf("want complete appointment, got %+v", list[1])
	}
}

func TestCreateAndSaveAppointment(t *testing.T) {
	repo, mock := newMock(t)

	mock.ExpectQuery(regexp.QuoteMeta(
		`INSERT INTO appointments (client_id) VALUES ($1) RETURNING id`)).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(11)))
	mock.ExpectExec(regexp.QuoteMeta(
		`UPDATE appointments SET visit_date = $1, visit_time = $2, pet_type = $3 WHERE id = $4`)).
		WithArgs("2026-09-01", "", "", int64(11)).
		WillReturnResult(sqlmock.NewResult(0, 1))

	a, err := repo.CreateAppointment(context.Background(), 5)
	if err != nil {
		t.Fatalf("CreateAppointment: %v", err)
	}
	a.Date = "2026-09-01"
	if err := repo.SaveAppointment(context.Background(), a); err != nil {
		t.Fatalf("SaveAppointment: %v", err)
	}
	if err := mock.ExpectationsWereMet(); err != nil {
		t.Error(err)
	}
}
