package domain

import "context"

// Order lifecycle states. Cancellation restores product stock; the forward
// path is pending → paid → shipped → delivered.
type OrderStatus string

const (
	OrderPending   OrderStatus = "pending"
	OrderPaid      OrderStatus = "paid"
	OrderShipped   OrderStatus = "shipped"
	OrderDelivered OrderStatus = "delivered"
	OrderCancelled OrderStatus = "cancelled"
)

// orderTransitions maps each status to the states it may move to.
var orderTransitions = map[OrderStatus][]OrderStatus{
	OrderPending: {OrderPaid, OrderCancelled},
	OrderPaid:    {OrderShipped, OrderCancelled},
	OrderShipped: {OrderDelivered},
}

// CanTransition reports whether an order in status s may move to next.
func (s OrderStatus) CanTransition(next OrderStatus) bool {
	for _, allowed := range orderTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// CartItem is one line of a user's shopping cart.
type CartItem struct {
	BaseModel
	UserID    uint     `gorm:"not null;index" json:"user_id"`
	ProductID uint     `gorm:"not null;index" json:"product_id"`
	Quantity  int      `gorm:"not null" json:"quantity"`
	Product   *Product `gorm:"foreignKey:ProductID" json:"-"`
}

// Order is a completed checkout. Item rows snapshot the product name and
// unit price at purchase time so later catalog edits don't rewrite history.
type Order struct {
	BaseModel
	UserID          uint        `gorm:"not null;index" json:"user_id"`
	OrderStatus     OrderStatus `gorm:"size:20;not null;default:pending" json:"order_status"`
	TotalCents      int64       `gorm:"not null" json:"total_cents"`
	DiscountCents   int64       `gorm:"not null;default:0" json:"discount_cents"`
	CouponID        *uint       `gorm:"index" json:"coupon_id,omitempty"`
	PaymentIntentID string      `gorm:"size:255" json:"payment_intent_id"`
	Items           []OrderItem `gorm:"foreignKey:OrderID" json:"items"`
}

// OrderItem is one purchased line of an order.
type OrderItem struct {
	BaseModel
	OrderID        uint   `gorm:"not null;index" json:"order_id"`
	ProductID      uint   `gorm:"not null;index" json:"product_id"`
	ProductName    string `gorm:"size:200;not null" json:"product_name"`
	UnitPriceCents int64  `gorm:"not null" json:"unit_price_cents"`
	Quantity       int    `gorm:"not null" json:"quantity"`
}

// CartRepository defines the data access interface for cart lines.
type CartRepository interface {
	ListByUser(ctx context.Context, userID uint) ([]CartItem, error)
	GetByUserAndProduct(ctx context.Context, userID, productID uint) (*CartItem, error)
	Create(ctx context.Context, item *CartItem) error
	Update(ctx context.Context, item *CartItem) error
	Delete(ctx context.Context, id uint) error
	ClearForUser(ctx context.Context, userID uint) error
}

// OrderRepository defines the data access interface for orders.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	GetByID(ctx context.Context, id uint) (*Order, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Order], error)
	ListByUser(ctx context.Context, userID uint, req PageRequest) (*PageResult[Order], error)
	Update(ctx context.Context, order *Order) error
}
