package user

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

// Allowed fields for sorting and filtering in List queries.
var (
	allowedSortFields   = []string{"id", "name", "email", "role", "created_at", "updated_at"}
	allowedFilterFields = []string{"name", "email", "role"}
)

// userRepository implements domain.UserRepository over the generic repository.
type userRepository struct {
	base *repository.Repository[domain.User]
}

// NewUserRepository creates a new UserRepository backed by the given GORM database.
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &userRepository{base: repository.New[domain.User](db, "user")}
}

// Create inserts a new user into the database.
func (r *userRepository) Create(ctx context.Context, user *domain.User) error {
	return r.base.Create(ctx, user)
}

// GetByID retrieves a user by its primary key.
func (r *userRepository) GetByID(ctx context.Context, id uint) (*domain.User, error) {
	return r.base.GetByID(ctx, id)
}

// GetByEmail retrieves a user by email address.
func (r *userRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var user domain.User
	if err := r.base.Queryable(ctx).Where("email = ?", email).First(&user).Error; err != nil {
		return nil, repository.MapError(err)
	}
	return &user, nil
}

// List returns a paginated, sorted, and filtered list of users.
func (r *userRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.User], error) {
	query := r.base.Queryable(ctx).Scopes(
		pkg.Filter(req, allowedFilterFields),
		pkg.Sort(req, allowedSortFields),
	)
	return repository.GetPaged[domain.User](query, req)
}

// Update saves changes to an existing user.
func (r *userRepository) Update(ctx context.Context, user *domain.User) error {
	return r.base.Update(ctx, user)
}

// Delete soft-deletes a user by ID.
func (r *userRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}
