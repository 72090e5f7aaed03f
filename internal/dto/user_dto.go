package dto

import "github.com/ppandov/trail-service/internal/models"

type CreateUserRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

// UserResponse is the explicit allow-list of user fields exposed externally.
// The credential is deliberately not representable here.
type UserResponse struct {
	ID       uint   `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Role     string `json:"role"`
}

func NewUserResponse(u *models.User) UserResponse {
	return UserResponse{
		ID:       u.ID,
		Username: u.Username,
		Email:    u.Email,
		Role:     u.Role,
	}
}

type ImportUsersResponse struct {
	Message       string   `json:"message"`
	ImportedUsers []string `json:"imported_users"`
}
