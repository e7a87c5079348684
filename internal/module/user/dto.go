package user

import (
	"time"

	"github.com/reignite/reignite/internal/domain"
)

// UpdateProfileRequest represents the input for a user editing their own
// profile. Fields left out of the payload stay untouched.
type UpdateProfileRequest struct {
	Name      *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	AvatarURL *string `json:"avatar_url,omitempty" binding:"omitempty,max=500"`
}

// AdminUpdateUserRequest represents the input for an admin editing a user.
type AdminUpdateUserRequest struct {
	Name *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Role *string `json:"role,omitempty" binding:"omitempty,oneof=user admin"`
}

// UserResponse is the public representation of a user.
type UserResponse struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	AvatarURL string    `json:"avatar_url"`
	CreatedAt time.Time `json:"created_at"`
}

// toResponse maps a user entity to its response DTO.
func toResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		AvatarURL: u.AvatarURL,
		CreatedAt: u.CreatedAt,
	}
}
