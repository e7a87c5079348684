package domain

import (
	"context"
	"time"
)

// Discount kinds supported by coupons.
const (
	DiscountPercent = "percent"
	DiscountFixed   = "fixed"
)

// Coupon is a checkout discount identified by a unique code.
// Percent coupons carry a 0–100 value; fixed coupons carry cents.
type Coupon struct {
	BaseModel
	Code         string    `gorm:"size:50;uniqueIndex;not null" json:"code"`
	DiscountType string    `gorm:"size:10;not null" json:"discount_type"`
	Value        int64     `gorm:"not null" json:"value"`
	ExpiresAt    time.Time `json:"expires_at"`
	Active       bool      `gorm:"not null;default:true" json:"active"`
}

// Usable reports whether the coupon may be applied at the given time.
func (c *Coupon) Usable(now time.Time) bool {
	return c.Active && now.Before(c.ExpiresAt)
}

// Discount returns the discount in cents for the given order total.
// The result never exceeds the total.
func (c *Coupon) Discount(totalCents int64) int64 {
	var d int64
	switch c.DiscountType {
	case DiscountPercent:
		d = totalCents * c.Value / 100
	case DiscountFixed:
		d = c.Value
	}
	if d > totalCents {
		d = totalCents
	}
	if d < 0 {
		d = 0
	}
	return d
}

// CouponRepository defines the data access interface for coupons.
type CouponRepository interface {
	Create(ctx context.Context, coupon *Coupon) error
	GetByID(ctx context.Context, id uint) (*Coupon, error)
	GetByCode(ctx context.Context, code string) (*Coupon, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Coupon], error)
	Update(ctx context.Context, coupon *Coupon) error
	Delete(ctx context.Context, id uint) error
}
