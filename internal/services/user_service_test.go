package services

import (
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/ppandov/trail-service/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

func TestCreateUserValidation(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewUserService(db)

	cases := []struct {
		name string
		req  dto.CreateUserRequest
		want error
	}{
		{"missing username", dto.CreateUserRequest{Email: "a@b.c", Password: "p", Role: "user"}, ErrMissingUserFields},
		{"missing email", dto.CreateUserRequest{Username: "a", Password: "p", Role: "user"}, ErrMissingUserFields},
		{"missing password", dto.CreateUserRequest{Username: "a", Email: "a@b.c", Role: "user"}, ErrMissingUserFields},
		{"bad role", dto.CreateUserRequest{Username: "a", Email: "a@b.c", Password: "p", Role: "superuser"}, ErrInvalidRole},
		{"empty role", dto.CreateUserRequest{Username: "a", Email: "a@b.c", Password: "p"}, ErrInvalidRole},
	}
	for _, tc := range cases {
		if _, err := svc.Create(&tc.req); err != tc.want {
			t.Errorf("%s: got %v, want %v", tc.name, err, tc.want)
		}
	}
}

func TestCreateUserHashesPassword(t *testing.T) {
	db, mock := newTestDB(t)

	var storedHash string
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "app_users"`).
		WillReturnRows(sqlmock.NewRows([]string{"user_id"}).AddRow(5))
	mock.ExpectCommit()

	svc := NewUserService(db)
	user, err := svc.Create(&dto.CreateUserRequest{
		Username: "petar", Email: "petar@example.com", Password: "secret123", Role: "admin",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if user.ID != 5 {
		t.Errorf("user_id = %d, want 5", user.ID)
	}

	storedHash = user.Password
	if storedHash == "secret123" {
		t.Fatalf("password stored in plaintext")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(storedHash), []byte("secret123")); err != nil {
		t.Fatalf("stored credential is not a valid hash of the password: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestGetUserNotFound(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).WillReturnRows(userRows())

	svc := NewUserService(db)
	if _, err := svc.Get(404); err != ErrUserNotFound {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestDeleteUserOwningTrailsRejected(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WillReturnRows(userRows().AddRow(1, "petar", "petar@example.com", "hash", "user"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "trails" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))

	svc := NewUserService(db)
	if err := svc.Delete(1); err != ErrUserOwnsTrails {
		t.Fatalf("expected ErrUserOwnsTrails, got %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestDeleteUser(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "app_users"`).
		WillReturnRows(userRows().AddRow(1, "petar", "petar@example.com", "hash", "user"))
	mock.ExpectQuery(`SELECT count\(\*\) FROM "trails" WHERE user_id = \$1`).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
	mock.ExpectBegin()
	mock.ExpectExec(`DELETE FROM "refresh_tokens" WHERE user_id = \$1`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec(`DELETE FROM "app_users"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	svc := NewUserService(db)
	if err := svc.Delete(1); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}
