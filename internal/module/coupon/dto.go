package coupon

import (
	"time"

	"github.com/reignite/reignite/internal/domain"
)

// CreateCouponRequest is the payload for creating a coupon.
type CreateCouponRequest struct {
	Code         string    `json:"code" binding:"required,min=3,max=50"`
	DiscountType string    `json:"discount_type" binding:"required,oneof=percent fixed"`
	Value        int64     `json:"value" binding:"required,min=1"`
	ExpiresAt    time.Time `json:"expires_at" binding:"required"`
	Active       *bool     `json:"active"`
}

// UpdateCouponRequest is the payload for partially updating a coupon.
// Nil fields are left unchanged.
type UpdateCouponRequest struct {
	DiscountType *string    `json:"discount_type" binding:"omitempty,oneof=percent fixed"`
	Value        *int64     `json:"value" binding:"omitempty,min=1"`
	ExpiresAt    *time.Time `json:"expires_at"`
	Active       *bool      `json:"active"`
}

// ValidateCouponRequest asks whether a code applies to a given order total.
type ValidateCouponRequest struct {
	Code       string `json:"code" binding:"required"`
	TotalCents int64  `json:"total_cents" binding:"required,min=1"`
}

// CouponResponse is the API representation of a coupon.
type CouponResponse struct {
	ID           uint      `json:"id"`
	Code         string    `json:"code"`
	DiscountType string    `json:"discount_type"`
	Value        int64     `json:"value"`
	ExpiresAt    time.Time `json:"expires_at"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ValidateCouponResponse reports the discount a code yields for a total.
type ValidateCouponResponse struct {
	Code          string `json:"code"`
	DiscountCents int64  `json:"discount_cents"`
	TotalCents    int64  `json:"total_cents"`
	PayableCents  int64  `json:"payable_cents"`
}

func toResponse(c *domain.Coupon) CouponResponse {
	return CouponResponse{
		ID:           c.ID,
		Code:         c.Code,
		DiscountType: c.DiscountType,
		Value:        c.Value,
		ExpiresAt:    c.ExpiresAt,
		Active:       c.Active,
		CreatedAt:    c.CreatedAt,
	}
}
