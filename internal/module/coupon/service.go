package coupon

import (
	"context"
	"strings"
	"time"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

// Service defines coupon management and validation operations.
type Service interface {
	Create(ctx context.Context, req CreateCouponRequest) (*CouponResponse, error)
	Get(ctx context.Context, id uint) (*CouponResponse, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[CouponResponse], error)
	Update(ctx context.Context, id uint, req UpdateCouponRequest) (*CouponResponse, error)
	Delete(ctx context.Context, id uint) error
	Validate(ctx context.Context, req ValidateCouponRequest) (*ValidateCouponResponse, error)
}

type couponService struct {
	repo domain.CouponRepository
	now  func() time.Time
}

// NewService creates a new coupon Service.
func NewService(repo domain.CouponRepository) Service {
	return &couponService{repo: repo, now: time.Now}
}

func (s *couponService) Create(ctx context.Context, req CreateCouponRequest) (*CouponResponse, error) {
	code := strings.ToUpper(strings.TrimSpace(req.Code))
	if _, err := s.repo.GetByCode(ctx, code); err == nil {
		return nil, domain.NewAppError(domain.CodeConflict, "coupon code already exists", nil)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}
	if req.DiscountType == domain.DiscountPercent && req.Value > 100 {
		return nil, domain.NewAppError(domain.CodeValidation, "percent discount cannot exceed 100", nil)
	}

	coupon := &domain.Coupon{
		Code:         code,
		DiscountType: req.DiscountType,
		Value:        req.Value,
		ExpiresAt:    req.ExpiresAt,
		Active:       true,
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if err := s.repo.Create(ctx, coupon); err != nil {
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeConflict, "coupon code already exists", err)
		}
		return nil, err
	}
	resp := toResponse(coupon)
	return &resp, nil
}

func (s *couponService) Get(ctx context.Context, id uint) (*CouponResponse, error) {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toResponse(coupon)
	return &resp, nil
}

func (s *couponService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[CouponResponse], error) {
	page, err := s.repo.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return pkg.MapPage(page, func(c domain.Coupon) CouponResponse { return toResponse(&c) }), nil
}

func (s *couponService) Update(ctx context.Context, id uint, req UpdateCouponRequest) (*CouponResponse, error) {
	coupon, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if req.DiscountType != nil {
		coupon.DiscountType = *req.DiscountType
	}
	if req.Value != nil {
		coupon.Value = *req.Value
	}
	if coupon.DiscountType == domain.DiscountPercent && coupon.Value > 100 {
		return nil, domain.NewAppError(domain.CodeValidation, "percent discount cannot exceed 100", nil)
	}
	if req.ExpiresAt != nil {
		coupon.ExpiresAt = *req.ExpiresAt
	}
	if req.Active != nil {
		coupon.Active = *req.Active
	}
	if err := s.repo.Update(ctx, coupon); err != nil {
		return nil, err
	}
	resp := toResponse(coupon)
	return &resp, nil
}

func (s *couponService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}

// Validate resolves a code against an order total. Unknown, inactive and
// expired codes all surface as a validation error so the client cannot
// probe which codes exist.
func (s *couponService) Validate(ctx context.Context, req ValidateCouponRequest) (*ValidateCouponResponse, error) {
	coupon, err := s.repo.GetByCode(ctx, req.Code)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "coupon is not valid", err)
		}
		return nil, err
	}
	if !coupon.Usable(s.now()) {
		return nil, domain.NewAppError(domain.CodeValidation, "coupon is not valid", nil)
	}
	discount := coupon.Discount(req.TotalCents)
	return &ValidateCouponResponse{
		Code:          coupon.Code,
		DiscountCents: discount,
		TotalCents:    req.TotalCents,
		PayableCents:  req.TotalCents - discount,
	}, nil
}
