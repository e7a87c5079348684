package order

import (
	"time"

	"github.com/reignite/reignite/internal/domain"
)

// AddCartItemRequest adds a product to the caller's cart.
type AddCartItemRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required,min=1"`
}

// UpdateCartItemRequest replaces the quantity of one cart line.
type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

// CheckoutRequest turns the caller's cart into an order.
type CheckoutRequest struct {
	CouponCode string `json:"coupon_code" binding:"omitempty,min=3,max=50"`
}

// UpdateOrderStatusRequest moves an order along its lifecycle.
type UpdateOrderStatusRequest struct {
	Status domain.OrderStatus `json:"status" binding:"required,oneof=pending paid shipped delivered cancelled"`
}

// CartItemResponse is one cart line with its current product details.
type CartItemResponse struct {
	ID             uint   `json:"id"`
	ProductID      uint   `json:"product_id"`
	ProductName    string `json:"product_name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
	LineTotalCents int64  `json:"line_total_cents"`
}

// CartResponse is the caller's whole cart with its running total.
type CartResponse struct {
	Items      []CartItemResponse `json:"items"`
	TotalCents int64              `json:"total_cents"`
}

// OrderItemResponse is one purchased line. Name and price are the values
// snapshotted at checkout.
type OrderItemResponse struct {
	ID             uint   `json:"id"`
	ProductID      uint   `json:"product_id"`
	ProductName    string `json:"product_name"`
	UnitPriceCents int64  `json:"unit_price_cents"`
	Quantity       int    `json:"quantity"`
}

// OrderResponse is the API representation of an order.
type OrderResponse struct {
	ID              uint                `json:"id"`
	UserID          uint                `json:"user_id"`
	Status          domain.OrderStatus  `json:"status"`
	TotalCents      int64               `json:"total_cents"`
	DiscountCents   int64               `json:"discount_cents"`
	CouponID        *uint               `json:"coupon_id,omitempty"`
	PaymentIntentID string              `json:"payment_intent_id,omitempty"`
	Items           []OrderItemResponse `json:"items"`
	CreatedAt       time.Time           `json:"created_at"`
	UpdatedAt       time.Time           `json:"updated_at"`
}

// CheckoutResponse pairs the created order with the payment handle the
// client needs to complete the charge.
type CheckoutResponse struct {
	Order               OrderResponse `json:"order"`
	PaymentClientSecret string        `json:"payment_client_secret"`
}

func toCartResponse(items []domain.CartItem) CartResponse {
	resp := CartResponse{Items: make([]CartItemResponse, 0, len(items))}
	for _, item := range items {
		line := CartItemResponse{
			ID:        item.ID,
			ProductID: item.ProductID,
			Quantity:  item.Quantity,
		}
		if item.Product != nil {
			line.ProductName = item.Product.Name
			line.UnitPriceCents = item.Product.PriceCents
			line.LineTotalCents = item.Product.PriceCents * int64(item.Quantity)
		}
		resp.TotalCents += line.LineTotalCents
		resp.Items = append(resp.Items, line)
	}
	return resp
}

func toOrderResponse(o *domain.Order) OrderResponse {
	resp := OrderResponse{
		ID:              o.ID,
		UserID:          o.UserID,
		Status:          o.OrderStatus,
		TotalCents:      o.TotalCents,
		DiscountCents:   o.DiscountCents,
		CouponID:        o.CouponID,
		PaymentIntentID: o.PaymentIntentID,
		Items:           make([]OrderItemResponse, 0, len(o.Items)),
		CreatedAt:       o.CreatedAt,
		UpdatedAt:       o.UpdatedAt,
	}
	for _, item := range o.Items {
		resp.Items = append(resp.Items, OrderItemResponse{
			ID:             item.ID,
			ProductID:      item.ProductID,
			ProductName:    item.ProductName,
			UnitPriceCents: item.UnitPriceCents,
			Quantity:       item.Quantity,
		})
	}
	return resp
}
