package coupon

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

var (
	allowedSortFields   = []string{"id", "code", "expires_at", "created_at"}
	allowedFilterFields = []string{"code", "discount_type", "active"}
)

// couponRepository implements domain.CouponRepository over the generic repository.
type couponRepository struct {
	base *repository.Repository[domain.Coupon]
}

// NewRepository creates a new CouponRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.CouponRepository {
	return &couponRepository{base: repository.New[domain.Coupon](db, "coupon")}
}

func (r *couponRepository) Create(ctx context.Context, coupon *domain.Coupon) error {
	return r.base.Create(ctx, coupon)
}

func (r *couponRepository) GetByID(ctx context.Context, id uint) (*domain.Coupon, error) {
	return r.base.GetByID(ctx, id)
}

// GetByCode looks a coupon up by its code, case-insensitively.
func (r *couponRepository) GetByCode(ctx context.Context, code string) (*domain.Coupon, error) {
	var coupon domain.Coupon
	err := r.base.Queryable(ctx).
		Where("code = ?", strings.ToUpper(strings.TrimSpace(code))).
		First(&coupon).Error
	if err != nil {
		return nil, repository.MapError(err)
	}
	return &coupon, nil
}

func (r *couponRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Coupon], error) {
	query := r.base.Queryable(ctx).Scopes(
		pkg.Filter(req, allowedFilterFields),
		pkg.Sort(req, allowedSortFields),
	)
	return repository.GetPaged[domain.Coupon](query, req)
}

func (r *couponRepository) Update(ctx context.Context, coupon *domain.Coupon) error {
	return r.base.Update(ctx, coupon)
}

func (r *couponRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}
