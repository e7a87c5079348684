package hobby

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

// hobbyRepository implements domain.HobbyRepository over the generic repository.
type hobbyRepository struct {
	base    *repository.Repository[domain.Hobby]
	projSet *repository.Repository[domain.Project]
}

// NewRepository creates a new HobbyRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.HobbyRepository {
	return &hobbyRepository{
		base:    repository.New[domain.Hobby](db, "hobby"),
		projSet: repository.New[domain.Project](db, "project"),
	}
}

func (r *hobbyRepository) Create(ctx context.Context, hobby *domain.Hobby) error {
	return r.base.Create(ctx, hobby)
}

func (r *hobbyRepository) GetByID(ctx context.Context, id uint) (*domain.Hobby, error) {
	return r.base.GetByID(ctx, id)
}

func (r *hobbyRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Hobby], error) {
	query := r.base.Queryable(ctx).Scopes(
		pkg.Filter(req, allowedFilterFields),
		pkg.Sort(req, allowedSortFields),
	)
	return repository.GetPaged[domain.Hobby](query, req)
}

func (r *hobbyRepository) Update(ctx context.Context, hobby *domain.Hobby) error {
	return r.base.Update(ctx, hobby)
}

func (r *hobbyRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// CountProjects counts active projects linked to the hobby; a hobby with
// showcases may not be deleted.
func (r *hobbyRepository) CountProjects(ctx context.Context, hobbyID uint) (int64, error) {
	var count int64
	err := r.projSet.Queryable(ctx).Where("hobby_id = ?", hobbyID).Count(&count).Error
	if err != nil {
		return 0, repository.MapError(err)
	}
	return count, nil
}
