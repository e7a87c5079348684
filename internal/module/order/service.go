package order

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

// Service defines cart, checkout and order lifecycle operations.
type Service interface {
	GetCart(ctx context.Context, userID uint) (*CartResponse, error)
	AddItem(ctx context.Context, userID uint, req AddCartItemRequest) (*CartResponse, error)
	UpdateItem(ctx context.Context, userID, itemID uint, req UpdateCartItemRequest) (*CartResponse, error)
	RemoveItem(ctx context.Context, userID, itemID uint) (*CartResponse, error)
	ClearCart(ctx context.Context, userID uint) error

	Checkout(ctx context.Context, userID uint, req CheckoutRequest) (*CheckoutResponse, error)

	Get(ctx context.Context, actorID uint, actorAdmin bool, id uint) (*OrderResponse, error)
	ListMine(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[OrderResponse], error)
	ListAll(ctx context.Context, req domain.PageRequest) (*domain.PageResult[OrderResponse], error)
	Cancel(ctx context.Context, actorID uint, actorAdmin bool, id uint) (*OrderResponse, error)
	UpdateStatus(ctx context.Context, id uint, req UpdateOrderStatusRequest) (*OrderResponse, error)
}

type orderService struct {
	orders   OrderStore
	carts    domain.CartRepository
	products domain.ProductRepository
	coupons  domain.CouponRepository
	payments domain.PaymentProvider
	currency string
	now      func() time.Time
}

// NewService creates a new order Service. currency is the ISO code payment
// intents are created in.
func NewService(
	orders OrderStore,
	carts domain.CartRepository,
	products domain.ProductRepository,
	coupons domain.CouponRepository,
	payments domain.PaymentProvider,
	currency string,
) Service {
	return &orderService{
		orders:   orders,
		carts:    carts,
		products: products,
		coupons:  coupons,
		payments: payments,
		currency: currency,
		now:      time.Now,
	}
}

func (s *orderService) GetCart(ctx context.Context, userID uint) (*CartResponse, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	resp := toCartResponse(items)
	return &resp, nil
}

func (s *orderService) AddItem(ctx context.Context, userID uint, req AddCartItemRequest) (*CartResponse, error) {
	product, err := s.products.GetByID(ctx, req.ProductID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.NewAppError(domain.CodeValidation, "product does not exist", err)
		}
		return nil, err
	}

	existing, err := s.carts.GetByUserAndProduct(ctx, userID, req.ProductID)
	switch {
	case err == nil:
		wanted := existing.Quantity + req.Quantity
		if err := checkStock(product, wanted); err != nil {
			return nil, err
		}
		existing.Quantity = wanted
		existing.Product = nil
		if err := s.carts.Update(ctx, existing); err != nil {
			return nil, err
		}
	case domain.IsNotFound(err):
		if err := checkStock(product, req.Quantity); err != nil {
			return nil, err
		}
		item := &domain.CartItem{UserID: userID, ProductID: req.ProductID, Quantity: req.Quantity}
		if err := s.carts.Create(ctx, item); err != nil {
			return nil, err
		}
	default:
		return nil, err
	}

	return s.GetCart(ctx, userID)
}

func (s *orderService) UpdateItem(ctx context.Context, userID, itemID uint, req UpdateCartItemRequest) (*CartResponse, error) {
	item, err := s.findOwnItem(ctx, userID, itemID)
	if err != nil {
		return nil, err
	}
	product, err := s.products.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, err
	}
	if err := checkStock(product, req.Quantity); err != nil {
		return nil, err
	}
	item.Quantity = req.Quantity
	item.Product = nil
	if err := s.carts.Update(ctx, item); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *orderService) RemoveItem(ctx context.Context, userID, itemID uint) (*CartResponse, error) {
	if _, err := s.findOwnItem(ctx, userID, itemID); err != nil {
		return nil, err
	}
	if err := s.carts.Delete(ctx, itemID); err != nil {
		return nil, err
	}
	return s.GetCart(ctx, userID)
}

func (s *orderService) ClearCart(ctx context.Context, userID uint) error {
	return s.carts.ClearForUser(ctx, userID)
}

// Checkout snapshots the cart into an order, applies an optional coupon,
// creates the payment intent and clears the cart. Stock is re-checked inside
// the transaction; a concurrent sale fails the whole checkout.
func (s *orderService) Checkout(ctx context.Context, userID uint, req CheckoutRequest) (*CheckoutResponse, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, domain.NewAppError(domain.CodeValidation, "cart is empty", nil)
	}

	order := &domain.Order{
		UserID:      userID,
		OrderStatus: domain.OrderPending,
	}
	decrements := make(map[uint]int, len(items))
	for _, item := range items {
		if item.Product == nil || item.Product.Status != domain.StatusActive {
			return nil, domain.NewAppError(domain.CodeValidation,
				fmt.Sprintf("product %d is no longer available", item.ProductID), nil)
		}
		if err := checkStock(item.Product, item.Quantity); err != nil {
			return nil, err
		}
		order.TotalCents += item.Product.PriceCents * int64(item.Quantity)
		order.Items = append(order.Items, domain.OrderItem{
			ProductID:      item.ProductID,
			ProductName:    item.Product.Name,
			UnitPriceCents: item.Product.PriceCents,
			Quantity:       item.Quantity,
		})
		decrements[item.ProductID] += item.Quantity
	}

	if req.CouponCode != "" {
		coupon, err := s.coupons.GetByCode(ctx, req.CouponCode)
		if err != nil {
			if domain.IsNotFound(err) {
				return nil, domain.NewAppError(domain.CodeValidation, "coupon is not valid", err)
			}
			return nil, err
		}
		if !coupon.Usable(s.now()) {
			return nil, domain.NewAppError(domain.CodeValidation, "coupon is not valid", nil)
		}
		order.DiscountCents = coupon.Discount(order.TotalCents)
		order.CouponID = &coupon.ID
	}

	payable := order.TotalCents - order.DiscountCents
	var clientSecret string
	if payable > 0 {
		intent, err := s.payments.CreateIntent(ctx, payable, s.currency, map[string]string{
			"user_id": strconv.FormatUint(uint64(userID), 10),
		})
		if err != nil {
			return nil, domain.NewAppError(domain.CodeInternal, "payment provider error", err)
		}
		order.PaymentIntentID = intent.ID
		clientSecret = intent.ClientSecret
	}

	if err := s.orders.Checkout(ctx, order, decrements); err != nil {
		return nil, err
	}

	return &CheckoutResponse{
		Order:               toOrderResponse(order),
		PaymentClientSecret: clientSecret,
	}, nil
}

func (s *orderService) Get(ctx context.Context, actorID uint, actorAdmin bool, id uint) (*OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actorAdmin && order.UserID != actorID {
		// Hide other users' orders entirely rather than confirming they exist.
		return nil, domain.NewNotFound("order", id)
	}
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *orderService) ListMine(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[OrderResponse], error) {
	page, err := s.orders.ListByUser(ctx, userID, req)
	if err != nil {
		return nil, err
	}
	return mapOrderPage(page), nil
}

func (s *orderService) ListAll(ctx context.Context, req domain.PageRequest) (*domain.PageResult[OrderResponse], error) {
	page, err := s.orders.List(ctx, req)
	if err != nil {
		return nil, err
	}
	return mapOrderPage(page), nil
}

func (s *orderService) Cancel(ctx context.Context, actorID uint, actorAdmin bool, id uint) (*OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !actorAdmin && order.UserID != actorID {
		return nil, domain.NewNotFound("order", id)
	}
	if !order.OrderStatus.CanTransition(domain.OrderCancelled) {
		return nil, domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("order in status %q cannot be cancelled", order.OrderStatus), nil)
	}
	if err := s.orders.CancelRestock(ctx, order); err != nil {
		return nil, err
	}
	order.OrderStatus = domain.OrderCancelled
	resp := toOrderResponse(order)
	return &resp, nil
}

func (s *orderService) UpdateStatus(ctx context.Context, id uint, req UpdateOrderStatusRequest) (*OrderResponse, error) {
	order, err := s.orders.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if !order.OrderStatus.CanTransition(req.Status) {
		return nil, domain.NewAppError(domain.CodeConflict,
			fmt.Sprintf("order cannot move from %q to %q", order.OrderStatus, req.Status), nil)
	}
	if req.Status == domain.OrderCancelled {
		if err := s.orders.CancelRestock(ctx, order); err != nil {
			return nil, err
		}
	} else {
		order.OrderStatus = req.Status
		order.Items = nil
		if err := s.orders.Update(ctx, order); err != nil {
			return nil, err
		}
	}
	return s.Get(ctx, order.UserID, true, id)
}

// findOwnItem loads a cart line and verifies ownership. Another user's line
// reads as NotFound.
func (s *orderService) findOwnItem(ctx context.Context, userID, itemID uint) (*domain.CartItem, error) {
	items, err := s.carts.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == itemID {
			return &items[i], nil
		}
	}
	return nil, domain.NewNotFound("cart item", itemID)
}

func checkStock(product *domain.Product, wanted int) error {
	if wanted > product.StockQuantity {
		return domain.NewAppError(domain.CodeValidation,
			fmt.Sprintf("insufficient stock for product %q: %d available", product.Name, product.StockQuantity), nil)
	}
	return nil
}

func mapOrderPage(page *domain.PageResult[domain.Order]) *domain.PageResult[OrderResponse] {
	return pkg.MapPage(page, func(o domain.Order) OrderResponse { return toOrderResponse(&o) })
}
