package dto

import (
	"github.com/salonsync/salon_management_app/internal/core/domain"
)

// CreateUserRequest defines the data for registering a user.
type CreateUserRequest struct {
	Name     string          `json:"name" binding:"required"`
	Email    string          `json:"email" binding:"required,email"`
	Password string          `json:"password" binding:"required,min=4"`
	Role     domain.UserRole `json:"role" binding:"required,oneof=ADMIN MANAGER RECEPTION"`
}

// UpdateUserRequest defines the data allowed for updating a user.
// Pointers differentiate omitted fields from zero-value fields.
type UpdateUserRequest struct {
	Name     *string          `json:"name"`
	Email    *string          `json:"email" binding:"omitempty,email"`
	Password *string          `json:"password" binding:"omitempty,min=4"`
	Role     *domain.UserRole `json:"role" binding:"omitempty,oneof=ADMIN MANAGER RECEPTION"`
}

// UserResponse is the API representation of a user. The password hash is
// never part of any response.
type UserResponse struct {
	UserID string          `json:"id"`
	Name   string          `json:"name"`
	Email  string          `json:"email"`
	Role   domain.UserRole `json:"role"`
}

// ToUserResponse converts a domain.User to its API representation.
func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		UserID: u.UserID,
		Name:   u.Name,
		Email:  u.Email,
		Role:   u.Role,
	}
}

// ListUsersResponse wraps the list of users.
type ListUsersResponse struct {
	Users []UserResponse `json:"users"`
}

// ToListUsersResponse converts a slice of domain.User.
func ToListUsersResponse(us []domain.User) ListUsersResponse {
	resp := ListUsersResponse{Users: make([]UserResponse, len(us))}
	for i := range us {
		resp.Users[i] = ToUserResponse(&us[i])
	}
	return resp
}

// LoginRequest defines the login credentials.
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse carries the authenticated user's identity and session token.
type LoginResponse struct {
	UserResponse
	Token string `json:"token"`
}
