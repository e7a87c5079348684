package product

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

var (
	allowedSortFields   = []string{"id", "name", "price_cents", "stock_quantity", "created_at"}
	allowedFilterFields = []string{"name", "category_id", "supplier_id"}
)

// productRepository implements domain.ProductRepository over the generic repository.
type productRepository struct {
	base *repository.Repository[domain.Product]
}

// NewRepository creates a new ProductRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.ProductRepository {
	return &productRepository{base: repository.New[domain.Product](db, "product")}
}

func (r *productRepository) Create(ctx context.Context, product *domain.Product) error {
	return r.base.Create(ctx, product)
}

// GetByID retrieves a product with its category and supplier preloaded so
// services can denormalize names into the response DTO.
func (r *productRepository) GetByID(ctx context.Context, id uint) (*domain.Product, error) {
	var product domain.Product
	err := r.base.Queryable(ctx).
		Preload("Category").
		Preload("Supplier").
		First(&product, id).Error
	if err != nil {
		mapped := repository.MapError(err)
		if domain.IsNotFound(mapped) {
			return nil, domain.NewNotFound("product", id)
		}
		return nil, mapped
	}
	return &product, nil
}

// List returns a paginated, sorted, and filtered product page. name filters
// as a substring match; category_id and supplier_id filter by equality.
func (r *productRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	req = likeNameFilter(req)
	query := r.base.Queryable(ctx).
		Preload("Category").
		Preload("Supplier").
		Scopes(
			pkg.Filter(req, allowedFilterFields),
			pkg.Sort(req, allowedSortFields),
		)
	return repository.GetPaged[domain.Product](query, req)
}

func (r *productRepository) Update(ctx context.Context, product *domain.Product) error {
	return r.base.Update(ctx, product)
}

func (r *productRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// likeNameFilter rewrites a plain name filter into a substring match so
// catalog search behaves the way shoppers expect.
func likeNameFilter(req domain.PageRequest) domain.PageRequest {
	if v, ok := req.Filter["name"]; ok {
		filter := make(map[string]string, len(req.Filter))
		for k, val := range req.Filter {
			filter[k] = val
		}
		delete(filter, "name")
		filter["name__like"] = v
		req.Filter = filter
	}
	return req
}
