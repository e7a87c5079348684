package project

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

var (
	projectSortFields   = []string{"id", "title", "created_at", "updated_at"}
	projectFilterFields = []string{"title", "user_id", "hobby_id"}

	reviewSortFields = []string{"id", "rating", "created_at"}
)

// projectRepository implements domain.ProjectRepository over the generic repository.
type projectRepository struct {
	base      *repository.Repository[domain.Project]
	reviewSet *repository.Repository[domain.Review]
}

// NewRepository creates a new ProjectRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.ProjectRepository {
	return &projectRepository{
		base:      repository.New[domain.Project](db, "project"),
		reviewSet: repository.New[domain.Review](db, "review"),
	}
}

func (r *projectRepository) Create(ctx context.Context, project *domain.Project) error {
	return r.base.Create(ctx, project)
}

func (r *projectRepository) GetByID(ctx context.Context, id uint) (*domain.Project, error) {
	var project domain.Project
	err := r.base.Queryable(ctx).
		Preload("User").
		Preload("Hobby").
		Where("id = ?", id).
		First(&project).Error
	if err != nil {
		mapped := repository.MapError(err)
		if domain.IsNotFound(mapped) {
			return nil, domain.NewNotFound("project", id)
		}
		return nil, mapped
	}
	return &project, nil
}

func (r *projectRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Project], error) {
	query := r.base.Queryable(ctx).
		Preload("User").
		Preload("Hobby").
		Scopes(
			pkg.Filter(req, projectFilterFields),
			pkg.Sort(req, projectSortFields),
		)
	return repository.GetPaged[domain.Project](query, req)
}

func (r *projectRepository) Update(ctx context.Context, project *domain.Project) error {
	return r.base.Update(ctx, project)
}

func (r *projectRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// AverageRating averages active review ratings for a project. Soft-deleted
// reviews never count.
func (r *projectRepository) AverageRating(ctx context.Context, projectID uint) (float64, error) {
	var avg *float64
	err := r.reviewSet.Queryable(ctx).
		Where("project_id = ?", projectID).
		Select("AVG(rating)").
		Scan(&avg).Error
	if err != nil {
		return 0, repository.MapError(err)
	}
	if avg == nil {
		return 0, nil
	}
	return *avg, nil
}

// reviewRepository implements domain.ReviewRepository.
type reviewRepository struct {
	base *repository.Repository[domain.Review]
}

// NewReviewRepository creates a new ReviewRepository backed by the given GORM database.
func NewReviewRepository(db *gorm.DB) domain.ReviewRepository {
	return &reviewRepository{base: repository.New[domain.Review](db, "review")}
}

func (r *reviewRepository) Create(ctx context.Context, review *domain.Review) error {
	return r.base.Create(ctx, review)
}

func (r *reviewRepository) GetByID(ctx context.Context, id uint) (*domain.Review, error) {
	return r.base.GetByID(ctx, id)
}

func (r *reviewRepository) ListByProject(ctx context.Context, projectID uint, req domain.PageRequest) (*domain.PageResult[domain.Review], error) {
	query := r.base.Queryable(ctx).
		Preload("User").
		Where("project_id = ?", projectID).
		Scopes(pkg.Sort(req, reviewSortFields))
	return repository.GetPaged[domain.Review](query, req)
}

func (r *reviewRepository) ExistsForUser(ctx context.Context, projectID, userID uint) (bool, error) {
	var count int64
	err := r.base.Queryable(ctx).
		Where("project_id = ? AND user_id = ?", projectID, userID).
		Count(&count).Error
	if err != nil {
		return false, repository.MapError(err)
	}
	return count > 0, nil
}

func (r *reviewRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}
