package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ppandov/trail-service/internal/config"
)

func importConfig(url string) *config.Config {
	return &config.Config{AuthAPIURL: url, AuthAPITimeout: 2 * time.Second}
}

func TestImportUsersCreatesMissingAndSkipsExisting(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`[
			{"name":"Grace Hopper","email":"grace@plymouth.ac.uk","password":"ISAD123!"},
			{"name":"Tim Berners-Lee","email":"tim@plymouth.ac.uk","password":"COMP2001!"}
		]`))
	}))
	defer server.Close()

	db, mock := newTestDB(t)

	mock.ExpectBegin()
	// grace is new
	mock.ExpectQuery(`SELECT \* FROM "app_users" WHERE email = \$1`).
		WillReturnRows(userRows())
	mock.ExpectQuery(`INSERT INTO "app_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(10))
	// tim already exists
	mock.ExpectQuery(`SELECT \* FROM "app_users" WHERE email = \$1`).
		WillReturnRows(userRows().AddRow(3, "Tim Berners-Lee", "tim@plymouth.ac.uk", "hash", "user"))
	mock.ExpectCommit()

	svc := NewImportService(db, importConfig(server.URL))
	imported, err := svc.ImportUsers(context.Background())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(imported) != 1 || imported[0] != "grace@plymouth.ac.uk" {
		t.Fatalf("imported = %v, want only grace", imported)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestImportUsersIdempotent(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"name":"Grace Hopper","email":"grace@plymouth.ac.uk","password":"ISAD123!"}]`))
	}))
	defer server.Close()

	db, mock := newTestDB(t)

	// Second run against an unchanged list: the email is found, nothing is written.
	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT \* FROM "app_users" WHERE email = \$1`).
		WillReturnRows(userRows().AddRow(10, "Grace Hopper", "grace@plymouth.ac.uk", "hash", "user"))
	mock.ExpectCommit()

	svc := NewImportService(db, importConfig(server.URL))
	imported, err := svc.ImportUsers(context.Background())
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if len(imported) != 0 {
		t.Fatalf("expected no duplicates, imported %v", imported)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestImportUsersUpstreamFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer server.Close()

	db, _ := newTestDB(t)
	svc := NewImportService(db, importConfig(server.URL))

	_, err := svc.ImportUsers(context.Background())
	if !errors.Is(err, ErrExternalFetch) {
		t.Fatalf("expected ErrExternalFetch, got %v", err)
	}
}

func TestImportUsersMalformedPayload(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"not":"a list"}`))
	}))
	defer server.Close()

	db, _ := newTestDB(t)
	svc := NewImportService(db, importConfig(server.URL))

	_, err := svc.ImportUsers(context.Background())
	if !errors.Is(err, ErrExternalFetch) {
		t.Fatalf("expected ErrExternalFetch, got %v", err)
	}
}

func TestImportUsersUnreachable(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewImportService(db, importConfig("http://127.0.0.1:1"))

	_, err := svc.ImportUsers(context.Background())
	if !errors.Is(err, ErrExternalFetch) {
		t.Fatalf("expected ErrExternalFetch, got %v", err)
	}
}
