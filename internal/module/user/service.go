package user

import (
	"context"
	"strings"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

// Service defines the user management operations.
type Service interface {
	GetUser(ctx context.Context, id uint) (*UserResponse, error)
	ListUsers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[UserResponse], error)
	UpdateProfile(ctx context.Context, id uint, req UpdateProfileRequest) (*UserResponse, error)
	AdminUpdateUser(ctx context.Context, id uint, req AdminUpdateUserRequest) (*UserResponse, error)
	DeleteUser(ctx context.Context, id uint) error
}

// userService implements Service.
type userService struct {
	repo domain.UserRepository
}

// NewService creates a new user Service with the given repository.
func NewService(repo domain.UserRepository) Service {
	return &userService{repo: repo}
}

// GetUser retrieves a user by ID.
func (s *userService) GetUser(ctx context.Context, id uint) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(user)
	return &resp, nil
}

// ListUsers returns a paginated list of users mapped to response DTOs.
func (s *userService) ListUsers(ctx context.Context, req domain.PageRequest) (*domain.PageResult[UserResponse], error) {
	result, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return pkg.MapPage(result, func(u domain.User) UserResponse { return toResponse(&u) }), nil
}

// UpdateProfile applies a partial self-service profile update.
func (s *userService) UpdateProfile(ctx context.Context, id uint, req UpdateProfileRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		user.Name = name
	}
	if req.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*req.AvatarURL)
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := toResponse(user)
	return &resp, nil
}

// AdminUpdateUser applies a partial back-office update (name, role).
func (s *userService) AdminUpdateUser(ctx context.Context, id uint, req AdminUpdateUserRequest) (*UserResponse, error) {
	user, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		user.Name = name
	}
	if req.Role != nil {
		switch *req.Role {
		case domain.RoleUser, domain.RoleAdmin:
			user.Role = *req.Role
		default:
			return nil, domain.NewAppError(domain.CodeValidation, "role must be user or admin", nil)
		}
	}

	if err := s.repo.Update(ctx, user); err != nil {
		return nil, err
	}

	resp := toResponse(user)
	return &resp, nil
}

// DeleteUser soft-deletes a user by ID.
func (s *userService) DeleteUser(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
