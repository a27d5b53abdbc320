package identity

import (
	"context"
	"errors"
	"strings"

	"github.com/estoque/backend/internal/domain/identity"
	"github.com/estoque/backend/internal/domain/shared"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// Default credentials seeded on first access. The well-known dev password
// matches the original deployment; operators are expected to rotate it.
const (
	defaultAdminEmail = "admin@admin.com"
	defaultUserEmail  = "user@user.com"
	defaultPassword   = "123"
)

// UserService handles account administration
type UserService struct {
	userRepo identity.UserRepository
	logger   *zap.Logger
}

// NewUserService creates a new UserService
func NewUserService(userRepo identity.UserRepository, logger *zap.Logger) *UserService {
	return &UserService{
		userRepo: userRepo,
		logger:   logger,
	}
}

// SeedDefaults creates the default admin and user accounts when the user
// collection is empty. Calling it again is a no-op.
func (s *UserService) SeedDefaults(ctx context.Context) error {
	count, err := s.userRepo.Count(ctx)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	admin, err := identity.NewUser("Administrador", defaultAdminEmail, defaultPassword, identity.RoleAdmin, true)
	if err != nil {
		return err
	}
	regular, err := identity.NewUser("Usuário Padrão", defaultUserEmail, defaultPassword, identity.RoleUser, true)
	if err != nil {
		return err
	}

	if err := s.userRepo.Save(ctx, admin); err != nil {
		return err
	}
	if err := s.userRepo.Save(ctx, regular); err != nil {
		return err
	}

	s.logger.Info("Seeded default accounts",
		zap.String("admin", defaultAdminEmail),
		zap.String("user", defaultUserEmail),
	)
	return nil
}

// List returns all accounts
func (s *UserService) List(ctx context.Context) ([]UserResponse, error) {
	users, err := s.userRepo.FindAll(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]UserResponse, 0, len(users))
	for i := range users {
		out = append(out, ToUserResponse(&users[i]))
	}
	return out, nil
}

// Create adds a new account with admin-chosen role and active flag
func (s *UserService) Create(ctx context.Context, input CreateUserInput) (*UserResponse, error) {
	email := strings.ToLower(strings.TrimSpace(input.Email))

	if _, err := s.userRepo.FindByEmail(ctx, email); err == nil {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
	} else if !errors.Is(err, shared.ErrNotFound) {
		return nil, err
	}

	user, err := identity.NewUser(input.Name, email, input.Password, input.Role, input.Active)
	if err != nil {
		return nil, err
	}
	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User created", zap.String("email", email), zap.String("role", string(input.Role)))
	resp := ToUserResponse(user)
	return &resp, nil
}

// Update edits an existing account. The password is only replaced when a
// new one is provided.
func (s *UserService) Update(ctx context.Context, id uuid.UUID, input UpdateUserInput) (*UserResponse, error) {
	user, err := s.userRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if input.Name != nil {
		name := strings.TrimSpace(*input.Name)
		if name == "" {
			return nil, shared.NewDomainError("INVALID_NAME", "Name cannot be empty")
		}
		user.Name = name
	}
	if input.Email != nil && *input.Email != user.Email {
		email := strings.ToLower(strings.TrimSpace(*input.Email))
		if existing, err := s.userRepo.FindByEmail(ctx, email); err == nil && existing.ID != user.ID {
			return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this email already exists")
		} else if err != nil && !errors.Is(err, shared.ErrNotFound) {
			return nil, err
		}
		if err := user.SetEmail(email); err != nil {
			return nil, err
		}
	}
	if input.Role != nil {
		if err := user.SetRole(*input.Role); err != nil {
			return nil, err
		}
	}
	if input.Active != nil {
		user.Active = *input.Active
	}
	if input.Password != "" {
		if err := user.SetPassword(input.Password); err != nil {
			return nil, err
		}
	}

	if err := s.userRepo.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User updated", zap.String("user_id", id.String()))
	resp := ToUserResponse(user)
	return &resp, nil
}

// Delete removes an account. Deleting your own account is refused so an
// admin cannot lock themselves out.
func (s *UserService) Delete(ctx context.Context, id, actorID uuid.UUID) error {
	if id == actorID {
		return shared.NewDomainError("SELF_DELETE", "You cannot delete your own account")
	}
	if _, err := s.userRepo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.userRepo.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("User deleted", zap.String("user_id", id.String()))
	return nil
}
