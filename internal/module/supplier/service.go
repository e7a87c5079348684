package supplier

import (
	"context"
	"strings"

	"github.com/reignite/reignite/internal/domain"
)

// CreateSupplierRequest represents the input for creating a supplier.
type CreateSupplierRequest struct {
	Name  string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Email string `json:"email" form:"email" binding:"omitempty,email"`
	Phone string `json:"phone" form:"phone" binding:"omitempty,max=30"`
}

// UpdateSupplierRequest represents a partial supplier update.
type UpdateSupplierRequest struct {
	Name  *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Email *string `json:"email,omitempty" binding:"omitempty,email"`
	Phone *string `json:"phone,omitempty" binding:"omitempty,max=30"`
}

// Service defines the supplier operations.
type Service interface {
	Create(ctx context.Context, req CreateSupplierRequest) (*domain.Supplier, error)
	Get(ctx context.Context, id uint) (*domain.Supplier, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Supplier], error)
	Update(ctx context.Context, id uint, req UpdateSupplierRequest) (*domain.Supplier, error)
	Delete(ctx context.Context, id uint) error
}

// supplierService implements Service.
type supplierService struct {
	repo domain.SupplierRepository
}

// NewService creates a new supplier Service with the given repository.
func NewService(repo domain.SupplierRepository) Service {
	return &supplierService{repo: repo}
}

// Create validates input and persists a new supplier.
func (s *supplierService) Create(ctx context.Context, req CreateSupplierRequest) (*domain.Supplier, error) {
	supplier := &domain.Supplier{
		Name:  strings.TrimSpace(req.Name),
		Email: strings.TrimSpace(req.Email),
		Phone: strings.TrimSpace(req.Phone),
	}
	if supplier.Name == "" {
		return nil, domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}

	if err := s.repo.Create(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Get retrieves a supplier by ID.
func (s *supplierService) Get(ctx context.Context, id uint) (*domain.Supplier, error) {
	return s.repo.GetByID(ctx, id)
}

// List returns a paginated list of suppliers.
func (s *supplierService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Supplier], error) {
	return s.repo.List(ctx, req)
}

// Update applies a partial update to an existing supplier.
func (s *supplierService) Update(ctx context.Context, id uint, req UpdateSupplierRequest) (*domain.Supplier, error) {
	supplier, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		supplier.Name = name
	}
	if req.Email != nil {
		supplier.Email = strings.TrimSpace(*req.Email)
	}
	if req.Phone != nil {
		supplier.Phone = strings.TrimSpace(*req.Phone)
	}

	if err := s.repo.Update(ctx, supplier); err != nil {
		return nil, err
	}
	return supplier, nil
}

// Delete soft-deletes a supplier unless products still reference it.
func (s *supplierService) Delete(ctx context.Context, id uint) error {
	if _, err := s.repo.GetByID(ctx, id); err != nil {
		return err
	}

	count, err := s.repo.CountProducts(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.NewDependentConflict("supplier", "product", count)
	}

	return s.repo.Delete(ctx, id)
}
