package category

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

var (
	allowedSortFields   = []string{"id", "name", "created_at"}
	allowedFilterFields = []string{"name"}
)

// categoryRepository implements domain.CategoryRepository over the generic repository.
type categoryRepository struct {
	base    *repository.Repository[domain.Category]
	prodSet *repository.Repository[domain.Product]
}

// NewRepository creates a new CategoryRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.CategoryRepository {
	return &categoryRepository{
		base:    repository.New[domain.Category](db, "category"),
		prodSet: repository.New[domain.Product](db, "product"),
	}
}

func (r *categoryRepository) Create(ctx context.Context, category *domain.Category) error {
	return r.base.Create(ctx, category)
}

func (r *categoryRepository) GetByID(ctx context.Context, id uint) (*domain.Category, error) {
	return r.base.GetByID(ctx, id)
}

func (r *categoryRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Category], error) {
	query := r.base.Queryable(ctx).Scopes(
		pkg.Filter(req, allowedFilterFields),
		pkg.Sort(req, allowedSortFields),
	)
	return repository.GetPaged[domain.Category](query, req)
}

func (r *categoryRepository) Update(ctx context.Context, category *domain.Category) error {
	return r.base.Update(ctx, category)
}

func (r *categoryRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// CountProducts counts active products referencing the category. The count
// gates deletion: a category with products may not be removed.
func (r *categoryRepository) CountProducts(ctx context.Context, categoryID uint) (int64, error) {
	var count int64
	err := r.prodSet.Queryable(ctx).Where("category_id = ?", categoryID).Count(&count).Error
	if err != nil {
		return 0, repository.MapError(err)
	}
	return count, nil
}
