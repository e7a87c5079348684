package supplier

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

var (
	allowedSortFields   = []string{"id", "name", "created_at"}
	allowedFilterFields = []string{"name", "email"}
)

// supplierRepository implements domain.SupplierRepository over the generic repository.
type supplierRepository struct {
	base    *repository.Repository[domain.Supplier]
	prodSet *repository.Repository[domain.Product]
}

// NewRepository creates a new SupplierRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.SupplierRepository {
	return &supplierRepository{
		base:    repository.New[domain.Supplier](db, "supplier"),
		prodSet: repository.New[domain.Product](db, "product"),
	}
}

func (r *supplierRepository) Create(ctx context.Context, supplier *domain.Supplier) error {
	return r.base.Create(ctx, supplier)
}

func (r *supplierRepository) GetByID(ctx context.Context, id uint) (*domain.Supplier, error) {
	return r.base.GetByID(ctx, id)
}

func (r *supplierRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Supplier], error) {
	query := r.base.Queryable(ctx).Scopes(
		pkg.Filter(req, allowedFilterFields),
		pkg.Sort(req, allowedSortFields),
	)
	return repository.GetPaged[domain.Supplier](query, req)
}

func (r *supplierRepository) Update(ctx context.Context, supplier *domain.Supplier) error {
	return r.base.Update(ctx, supplier)
}

func (r *supplierRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// CountProducts counts active products sourced from the supplier.
func (r *supplierRepository) CountProducts(ctx context.Context, supplierID uint) (int64, error) {
	var count int64
	err := r.prodSet.Queryable(ctx).Where("supplier_id = ?", supplierID).Count(&count).Error
	if err != nil {
		return 0, repository.MapError(err)
	}
	return count, nil
}
