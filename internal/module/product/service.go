package product

import (
	"context"
	"strings"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

// Service defines the product operations.
type Service interface {
	Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error)
	Get(ctx context.Context, id uint) (*ProductResponse, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[ProductResponse], error)
	Update(ctx context.Context, id uint, req UpdateProductRequest) (*ProductResponse, error)
	Delete(ctx context.Context, id uint) error
}

// productService implements Service. Category and supplier repositories are
// needed to validate foreign keys before persisting.
type productService struct {
	repo         domain.ProductRepository
	categoryRepo domain.CategoryRepository
	supplierRepo domain.SupplierRepository
}

// NewService creates a new product Service.
func NewService(repo domain.ProductRepository, categoryRepo domain.CategoryRepository, supplierRepo domain.SupplierRepository) Service {
	return &productService{
		repo:         repo,
		categoryRepo: categoryRepo,
		supplierRepo: supplierRepo,
	}
}

// Create validates referenced foreign keys and persists a new product.
func (s *productService) Create(ctx context.Context, req CreateProductRequest) (*ProductResponse, error) {
	if err := s.checkRefs(ctx, req.CategoryID, req.SupplierID); err != nil {
		return nil, err
	}

	product := &domain.Product{
		Name:          strings.TrimSpace(req.Name),
		Description:   strings.TrimSpace(req.Description),
		PriceCents:    req.PriceCents,
		StockQuantity: req.StockQuantity,
		ImageURL:      strings.TrimSpace(req.ImageURL),
		CategoryID:    req.CategoryID,
		SupplierID:    req.SupplierID,
	}

	if err := s.repo.Create(ctx, product); err != nil {
		return nil, err
	}

	// Re-read to pick up the preloaded category and supplier names.
	return s.Get(ctx, product.ID)
}

// Get retrieves a product by ID, mapped to its response DTO.
func (s *productService) Get(ctx context.Context, id uint) (*ProductResponse, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(product)
	return &resp, nil
}

// List returns a paginated product page mapped to response DTOs.
func (s *productService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[ProductResponse], error) {
	result, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return pkg.MapPage(result, func(p domain.Product) ProductResponse { return toResponse(&p) }), nil
}

// Update applies a partial update to an existing product.
func (s *productService) Update(ctx context.Context, id uint, req UpdateProductRequest) (*ProductResponse, error) {
	product, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.CategoryID != nil || req.SupplierID != nil {
		categoryID := product.CategoryID
		supplierID := product.SupplierID
		if req.CategoryID != nil {
			categoryID = *req.CategoryID
		}
		if req.SupplierID != nil {
			supplierID = *req.SupplierID
		}
		if err := s.checkRefs(ctx, categoryID, supplierID); err != nil {
			return nil, err
		}
		product.CategoryID = categoryID
		product.SupplierID = supplierID
	}

	if req.Name != nil {
		name := strings.TrimSpace(*req.Name)
		if name == "" {
			return nil, domain.NewAppError(domain.CodeValidation, "name must not be blank", nil)
		}
		product.Name = name
	}
	if req.Description != nil {
		product.Description = strings.TrimSpace(*req.Description)
	}
	if req.PriceCents != nil {
		product.PriceCents = *req.PriceCents
	}
	if req.StockQuantity != nil {
		product.StockQuantity = *req.StockQuantity
	}
	if req.ImageURL != nil {
		product.ImageURL = strings.TrimSpace(*req.ImageURL)
	}

	// Drop stale preloads so Save doesn't write the associations back.
	product.Category = nil
	product.Supplier = nil

	if err := s.repo.Update(ctx, product); err != nil {
		return nil, err
	}

	return s.Get(ctx, id)
}

// Delete soft-deletes a product by ID. Order items snapshot product data, so
// nothing dangles when a product is removed from the catalog.
func (s *productService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// checkRefs verifies the referenced category and supplier exist.
func (s *productService) checkRefs(ctx context.Context, categoryID, supplierID uint) error {
	if _, err := s.categoryRepo.GetByID(ctx, categoryID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "category does not exist", nil)
		}
		return err
	}
	if _, err := s.supplierRepo.GetByID(ctx, supplierID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "supplier does not exist", nil)
		}
		return err
	}
	return nil
}
