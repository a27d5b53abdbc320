package identity

import (
	"time"

	"github.com/estoque/backend/internal/domain/identity"
	"github.com/google/uuid"
)

// LoginInput contains login credentials
type LoginInput struct {
	Email    string
	Password string
}

// LoginResult contains the issued token and the authenticated user
type LoginResult struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expires_at"`
	User      UserResponse `json:"user"`
}

// RegisterInput contains the fields of a self-registration request
type RegisterInput struct {
	Name     string
	Email    string
	Password string
}

// CreateUserInput contains the fields for an admin-created account
type CreateUserInput struct {
	Name     string
	Email    string
	Password string
	Role     identity.Role
	Active   bool
}

// UpdateUserInput contains the editable account fields. Nil pointers leave
// the current value unchanged; an empty Password keeps the existing hash.
type UpdateUserInput struct {
	Name     *string
	Email    *string
	Password string
	Role     *identity.Role
	Active   *bool
}

// UserResponse represents a user in API responses
type UserResponse struct {
	ID        uuid.UUID     `json:"id"`
	Name      string        `json:"name"`
	Email     string        `json:"email"`
	Role      identity.Role `json:"role"`
	Active    bool          `json:"active"`
	CreatedAt time.Time     `json:"created_at"`
}

// ToUserResponse converts a domain user to its API representation
func ToUserResponse(u *identity.User) UserResponse {
	return UserResponse{
		ID:        u.ID,
		Name:      u.Name,
		Email:     u.Email,
		Role:      u.Role,
		Active:    u.Active,
		CreatedAt: u.CreatedAt,
	}
}
