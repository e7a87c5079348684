package category

import (
	"context"
	"strings"

	"github.com/reignite/reignite/internal/domain"
)

// Service defines the category operations.
type Service interface {
	Create(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error)
	Get(ctx context.Context, id uint) (*domain.Category, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Category], error)
	Update(ctx context.Context, id uint, req UpdateCategoryRequest) (*domain.Category, error)
	Delete(ctx context.Context, id uint) error
}

// categoryService implements Service.
type categoryService struct {
	repo domain.CategoryRepository
}

// NewService creates a new category Service with the given repository.
func NewService(repo domain.CategoryRepository) Service {
	return &categoryService{repo: repo}
}

// Create validates input and persists a new category.
func (s *categoryService) Create(ctx context.Context, req CreateCategoryRequest) (*domain.Category, error) {
	category := &domain.Category{
		Name:        strings.TrimSpace(req.Name),
		Description: strings.TrimSpace(req.Description),
	}
	if category.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	if err := s.repo.Create(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Get retrieves a category by ID.
func (s *categoryService) Get(ctx context.Context, id uint) (*domain.Category, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of categories.
func (s *categoryService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Category], error) {
	return s.repo.List(ctx, req)
}

// Update applies a partial update to an existing category.
func (s *categoryService) Update(ctx context.Context, id uint, req UpdateCategoryRequest) (*domain.Category, error) {
	category, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		category.Name = name
	}
	if req.Description != nil {
		category.Description = strings.TrimSpace(*req.Description)
	}

	if err := s.repo.Update(ctx, category); err != nil {
		return nil, err
	}
	return category, nil
}

// Delete soft-deletes a category unless products still reference it, in
// which case it fails with a Conflict naming the dependent count.
func (s *categoryService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewDependentConflict("category", "product", count)
	}

	return s.repo.Delete(ctx, id)
}
