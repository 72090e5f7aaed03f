package services

import (
	"errors"
	"fmt"

	"github.com/ppandov/trail-service/internal/dto"
	"github.com/ppandov/trail-service/internal/models"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrMissingUserFields = errors.New("username, email and password are required")
	ErrInvalidRole       = errors.New("role must be either admin or user")
	ErrUserNotFound      = errors.New("user not found")
	ErrDuplicateUser     = errors.New("username or email already in use")
	ErrUserOwnsTrails    = errors.New("user still owns trails")
)

type UserService struct {
	db *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{db: db}
}

func (s *UserService) List() ([]models.User, error) {
	var users []models.User
	if err := s.db.Order("user_id").Find(&users).Error; err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

func (s *UserService) Get(id uint) (*models.User, error) {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("failed to fetch user: %w", err)
	}
	return &user, nil
}

func (s *UserService) Create(req *dto.CreateUserRequest) (*models.User, error) {
	if req.Username == "" || req.Email == "" || req.Password == "" {
		return nil, ErrMissingUserFields
	}
	if !models.ValidRole(req.Role) {
		return nil, ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := models.User{
		Username: req.Username,
		Email:    req.Email,
		Password: string(hash),
		Role:     req.Role,
	}

	if err := s.db.Create(&user).Error; err != nil {
		if pgErrCode(err) == pgUniqueViolation {
			return nil, ErrDuplicateUser
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &user, nil
}

// Delete removes a user and its refresh tokens. Users still owning trails are
// rejected rather than cascaded, so admin-created trail data cannot vanish
// through a user deletion.
func (s *UserService) Delete(id uint) error {
	var user models.User
	if err := s.db.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrUserNotFound
		}
		return fmt.Errorf("failed to fetch user: %w", err)
	}

	var owned int64
	if err := s.db.Model(&models.Trail{}).Where("user_id = ?", id).Count(&owned).Error; err != nil {
		return fmt.Errorf("failed to count owned trails: %w", err)
	}
	if owned > 0 {
		return ErrUserOwnsTrails
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("user_id = ?", id).Delete(&models.RefreshToken{}).Error; err != nil {
			return err
		}
		return tx.Delete(&user).Error
	})
}
