package hobby

import (
	"context"
	"strings"

	"github.com/reignite/reignite/internal/domain"
)

// CreateHobbyRequest represents the input for creating a hobby.
type CreateHobbyRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" form:"description" binding:"max=1000"`
	ImageURL    string `json:"image_url" form:"image_url" binding:"omitempty,max=500"`
}

// UpdateHobbyRequest represents a partial hobby update.
type UpdateHobbyRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=1000"`
	ImageURL    *string `json:"image_url,omitempty" binding:"omitempty,max=500"`
}

// Service defines the hobby operations.
type Service interface {
	Create(ctx context.Context, req CreateHobbyRequest) (*domain.Hobby, error)
	Get(ctx context.Context, id uint) (*domain.Hobby, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Hobby], error)
	Update(ctx context.Context, id uint, req UpdateHobbyRequest) (*domain.Hobby, error)
	Delete(ctx context.Context, id uint) error
}

// hobbyService implements Service.
type hobbyService struct {
	repo domain.HobbyRepository
}

// NewService creates a new hobby Service with the given repository.
func NewService(repo domain.HobbyRepository) Service {
	return &hobbyService{repo: repo}
}

// Create validates input and persists a new hobby.
func (s *hobbyService) Create(ctx context.Context, req CreateHobbyRequest) (*domain.Hobby, error) {
	hobby := &domain.Hobby{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
		ImageURL:    strings.TrimSpace(req.ImageURL),
	}
	if hobby.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	if err := s.repo.Create(ctx, hobby); err != nil {
		return nil, err
	}
	return hobby, nil
}

// Get retrieves a hobby by ID.
func (s *hobbyService) Get(ctx context.Context, id uint) (*domain.Hobby, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of hobbies.
func (s *hobbyService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Hobby], error) {
	return s.repo.List(ctx, req)
}

// Update applies a partial update to an existing hobby.
func (s *hobbyService) Update(ctx context.Context, id uint, req UpdateHobbyRequest) (*domain.Hobby, error) {
	hobby, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		hobby.Name = name
	}
	if req.Description != nil {
		hobby.Description = strings.TrimSpace(*req.Description)
	}
	if req.ImageURL != nil {
		hobby.ImageURL = strings.TrimSpace(*req.ImageURL)
	}

	if err := s.repo.Update(ctx, hobby); err != nil {
		return nil, err
	}
	return hobby, nil
}

// Delete soft-deletes a hobby unless projects still reference it.
func (s *hobbyService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountProjects(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewDependentConflict("hobby", "project", count)
	}

	return s.repo.Delete(ctx, id)
}
