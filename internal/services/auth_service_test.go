package services

import (
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/golang-jwt/jwt/v5"
	"github.com/ppandov/trail-service/internal/config"
	"github.com/ppandov/trail-service/internal/dto"
	"golang.org/x/crypto/bcrypt"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:        "test-secret",
		JWTAccessExpiry:  15 * time.Minute,
		JWTRefreshExpiry: 24 * time.Hour,
	}
}

func TestLoginIssuesTokenWithStoredIdentity(t *testing.T) {
	db, mock := newTestDB(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "app_users" WHERE email = \$1`).
		WillReturnRows(userRows().AddRow(42, "petar", "petar@example.com", string(hash), "admin"))
	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "refresh_tokens"`).
		WillReturnRows(sqlmock.NewRows([]string{"revoked"}).AddRow(false))
	mock.ExpectCommit()

	svc := NewAuthService(db, testConfig())
	resp, err := svc.Login(&dto.LoginRequest{Email: "petar@example.com", Password: "password123"})
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	if resp.AccessToken == "" || resp.RefreshToken == "" {
		t.Fatalf("expected token pair")
	}

	parsed, err := jwt.Parse(resp.AccessToken, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !parsed.Valid {
		t.Fatalf("parse access token: %v", err)
	}
	mapClaims := parsed.Claims.(jwt.MapClaims)
	if mapClaims["sub"] != "42" {
		t.Errorf("sub = %v, want 42", mapClaims["sub"])
	}
	if mapClaims["email"] != "petar@example.com" {
		t.Errorf("email = %v", mapClaims["email"])
	}
	if mapClaims["role"] != "admin" {
		t.Errorf("role = %v, want admin", mapClaims["role"])
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Fatalf("unmet expectations: %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	db, mock := newTestDB(t)
	hash, _ := bcrypt.GenerateFromPassword([]byte("correct"), bcrypt.DefaultCost)

	mock.ExpectQuery(`SELECT \* FROM "app_users" WHERE email = \$1`).
		WillReturnRows(userRows().AddRow(1, "petar", "petar@example.com", string(hash), "user"))

	svc := NewAuthService(db, testConfig())
	if _, err := svc.Login(&dto.LoginRequest{Email: "petar@example.com", Password: "wrong"}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginUnknownEmail(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "app_users" WHERE email = \$1`).
		WillReturnRows(userRows())

	svc := NewAuthService(db, testConfig())
	if _, err := svc.Login(&dto.LoginRequest{Email: "nobody@example.com", Password: "x"}); err != ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials, got %v", err)
	}
}

func TestLoginMissingFields(t *testing.T) {
	db, _ := newTestDB(t)
	svc := NewAuthService(db, testConfig())

	if _, err := svc.Login(&dto.LoginRequest{Email: "", Password: "x"}); err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
	if _, err := svc.Login(&dto.LoginRequest{Email: "a@b.c", Password: ""}); err != ErrMissingCredentials {
		t.Fatalf("expected ErrMissingCredentials, got %v", err)
	}
}

func TestRefreshUnknownToken(t *testing.T) {
	db, mock := newTestDB(t)

	mock.ExpectQuery(`SELECT \* FROM "refresh_tokens" WHERE token_hash = \$1 AND revoked = false`).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "token_hash", "expires_at", "revoked"}))

	svc := NewAuthService(db, testConfig())
	if _, err := svc.Refresh(&dto.RefreshRequest{RefreshToken: "bogus"}); err != ErrInvalidToken {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
