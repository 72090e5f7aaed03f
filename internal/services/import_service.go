package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/ppandov/trail-service/internal/config"
	"github.com/ppandov/trail-service/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var ErrExternalFetch = errors.New("failed to fetch users from authenticator API")

// externalUser is one record from the external authenticator API.
type externalUser struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type ImportService struct {
	db     *gorm.DB
	client *http.Client
	url    string
}

func NewImportService(db *gorm.DB, cfg *config.Config) *ImportService {
	return &ImportService{
		db:     db,
		client: &http.Client{Timeout: cfg.AuthAPITimeout},
		url:    cfg.AuthAPIURL,
	}
}

// ImportUsers fetches the candidate list from the authenticator API and
// creates every user whose email is not yet known, with role fixed to "user"
// and the supplied password stored as a bcrypt hash. Existing emails are
// skipped, which makes the operation idempotent. All writes happen in one
// transaction; a fetch or decode failure aborts before anything is written.
func (s *ImportService) ImportUsers(ctx context.Context) ([]string, error) {
	candidates, err := s.fetch(ctx)
	if err != nil {
		return nil, err
	}

	imported := make([]string, 0, len(candidates))
	err = s.db.Transaction(func(tx *gorm.DB) error {
		for _, candidate := range candidates {
			var existing models.User
			err := tx.Where("email = ?", candidate.Email).First(&existing).Error
			if err == nil {
				slog.Info("import: user already exists, skipping", "email", candidate.Email)
				continue
			}
			if !errors.Is(err, gorm.ErrRecordNotFound) {
				return err
			}

			hash, err := bcrypt.GenerateFromPassword([]byte(candidate.Password), bcrypt.DefaultCost)
			if err != nil {
				return fmt.Errorf("failed to hash imported password: %w", err)
			}

			user := models.User{
				Username: candidate.Name,
				Email:    candidate.Email,
				Password: string(hash),
				Role:     models.RoleUser,
			}
			if err := tx.Create(&user).Error; err != nil {
				return err
			}
			imported = append(imported, candidate.Email)
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to import users: %w", err)
	}

	return imported, nil
}

func (s *ImportService) fetch(ctx context.Context) ([]externalUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalFetch, err)
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalFetch, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: unexpected status %d", ErrExternalFetch, resp.StatusCode)
	}

	var candidates []externalUser
	if err := json.NewDecoder(resp.Body).Decode(&candidates); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrExternalFetch, err)
	}

	return candidates, nil
}
