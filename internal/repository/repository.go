// Package repository provides the generic persistence layer every entity
// module builds on: uniform CRUD, a single soft-delete enforcement point,
// and offset paging over caller-composed queries.
package repository

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

// Repository is a generic GORM-backed store for one entity type.
// Entity modules wrap it and add their entity-specific queries.
type Repository[T any] struct {
	db   *gorm.DB
	name string
}

// New creates a Repository for T. name appears in NotFound messages
// ("product 42 not found").
func New[T any](db *gorm.DB, name string) *Repository[T] {
	return &Repository[T]{db: db, name: name}
}

// Queryable returns the soft-delete-filtered set of entities for caller
// composition before paging. This is the only place the status filter is
// applied; every read path must start here.
func (r *Repository[T]) Queryable(ctx context.Context) *gorm.DB {
	return r.db.WithContext(ctx).Model(new(T)).Where("status = ?", domain.StatusActive)
}

// QueryableTx is Queryable against an explicit transaction handle.
func (r *Repository[T]) QueryableTx(tx *gorm.DB) *gorm.DB {
	return tx.Model(new(T)).Where("status = ?", domain.StatusActive)
}

// GetByID returns the entity if present and not soft-deleted; otherwise a
// NotFound error naming the entity type and id.
func (r *Repository[T]) GetByID(ctx context.Context, id uint) (*T, error) {
	var entity T
	if err := r.Queryable(ctx).First(&entity, id).Error; err != nil {
		return nil, r.mapError(err, id)
	}
	return &entity, nil
}

// Create inserts a new entity. CreatedAt is stamped by GORM. No uniqueness
// checks happen here; callers run business validation first, and constraint
// violations from the database still map to AlreadyExists.
func (r *Repository[T]) Create(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Create(entity).Error; err != nil {
		return r.mapError(err, 0)
	}
	return nil
}

// Update persists the entity as-is. There is no optimistic-concurrency
// token; the last writer's values win.
func (r *Repository[T]) Update(ctx context.Context, entity *T) error {
	if err := r.db.WithContext(ctx).Save(entity).Error; err != nil {
		return r.mapError(err, 0)
	}
	return nil
}

// Delete flips the entity's status to deleted. The row stays in storage for
// referential integrity and audit. A second delete of the same id fails
// NotFound because reads no longer see the row.
func (r *Repository[T]) Delete(ctx context.Context, id uint) error {
	result := r.Queryable(ctx).Where("id = ?", id).Update("status", domain.StatusDeleted)
	if result.Error != nil {
		return r.mapError(result.Error, id)
	}
	if result.RowsAffected == 0 {
		return domain.NewNotFound(r.name, id)
	}
	return nil
}

// GetPaged counts the already-filtered query and returns the requested
// slice. Ordering is the caller's responsibility; apply a deterministic sort
// before paging or pages won't be stable.
func GetPaged[T any](query *gorm.DB, req domain.PageRequest) (*domain.PageResult[T], error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, MapError(err)
	}

	var items []T
	if err := query.Scopes(pkg.Paginate(req)).Find(&items).Error; err != nil {
		return nil, MapError(err)
	}

	return pkg.NewPageResult(items, total, req), nil
}

// mapError adds the entity name and id to NotFound errors.
func (r *Repository[T]) mapError(err error, id uint) error {
	mapped := MapError(err)
	if domain.IsNotFound(mapped) && id != 0 {
		return domain.NewNotFound(r.name, id)
	}
	return mapped
}
