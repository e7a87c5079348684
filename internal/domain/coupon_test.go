package domain

import (
	"testing"
	"time"
)

func TestCouponUsable(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name   string
		coupon Coupon
		want   bool
	}{
		{"active and unexpired", Coupon{Active: true, ExpiresAt: now.Add(time.Hour)}, true},
		{"inactive", Coupon{Active: false, ExpiresAt: now.Add(time.Hour)}, false},
		{"expired", Coupon{Active: true, ExpiresAt: now.Add(-time.Minute)}, false},
		{"expires exactly now", Coupon{Active: true, ExpiresAt: now}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.Usable(now); got != tt.want {
				t.Errorf("Usable = %v; want %v", got, tt.want)
			}
		})
	}
}

func TestCouponDiscount(t *testing.T) {
	tests := []struct {
		name   string
		coupon Coupon
		total  int64
		want   int64
	}{
		{"ten percent", Coupon{DiscountType: DiscountPercent, Value: 10}, 1000, 100},
		{"percent rounds down", Coupon{DiscountType: DiscountPercent, Value: 33}, 100, 33},
		{"hundred percent", Coupon{DiscountType: DiscountPercent, Value: 100}, 2599, 2599},
		{"fixed amount", Coupon{DiscountType: DiscountFixed, Value: 500}, 2000, 500},
		{"fixed clamped to total", Coupon{DiscountType: DiscountFixed, Value: 5000}, 2000, 2000},
		{"unknown type is zero", Coupon{DiscountType: "bogus", Value: 500}, 2000, 0},
		{"zero total", Coupon{DiscountType: DiscountFixed, Value: 500}, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.coupon.Discount(tt.total); got != tt.want {
				t.Errorf("Discount(%d) = %d; want %d", tt.total, got, tt.want)
			}
		})
	}
}

func TestRefreshTokenValid(t *testing.T) {
	now := time.Now()
	revoked := now.Add(-time.Minute)

	tests := []struct {
		name  string
		token RefreshToken
		want  bool
	}{
		{"live", RefreshToken{ExpiresAt: now.Add(time.Hour)}, true},
		{"expired", RefreshToken{ExpiresAt: now.Add(-time.Second)}, false},
		{"revoked", RefreshToken{ExpiresAt: now.Add(time.Hour), RevokedAt: &revoked}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.token.Valid(now); got != tt.want {
				t.Errorf("Valid = %v; want %v", got, tt.want)
			}
		})
	}
}
