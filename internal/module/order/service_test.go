package order

import (
	"context"
	"testing"
	"time"

	"github.com/reignite/reignite/internal/domain"
)

// --- fakes ---

type fakeProductRepo struct {
	products map[uint]*domain.Product
}

func newFakeProductRepo(products ...*domain.Product) *fakeProductRepo {
	f := &fakeProductRepo{products: make(map[uint]*domain.Product)}
	for _, p := range products {
		f.products[p.ID] = p
	}
	return f
}

func (f *fakeProductRepo) Create(_ context.Context, p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) GetByID(_ context.Context, id uint) (*domain.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, domain.NewNotFound("product", id)
	}
	return p, nil
}
func (f *fakeProductRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.Product], error) {
	return nil, nil
}
func (f *fakeProductRepo) Update(_ context.Context, p *domain.Product) error {
	f.products[p.ID] = p
	return nil
}
func (f *fakeProductRepo) Delete(_ context.Context, id uint) error {
	delete(f.products, id)
	return nil
}

// fakeCartRepo mirrors the real repository's Preload("Product") by
// resolving products from the fake product repo on every list.
type fakeCartRepo struct {
	items    map[uint]*domain.CartItem
	nextID   uint
	products *fakeProductRepo
}

func newFakeCartRepo(products *fakeProductRepo) *fakeCartRepo {
	return &fakeCartRepo{items: make(map[uint]*domain.CartItem), nextID: 1, products: products}
}

func (f *fakeCartRepo) ListByUser(_ context.Context, userID uint) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range f.items {
		if item.UserID == userID {
			line := *item
			line.Product = f.products.products[item.ProductID]
			out = append(out, line)
		}
	}
	return out, nil
}
func (f *fakeCartRepo) GetByUserAndProduct(_ context.Context, userID, productID uint) (*domain.CartItem, error) {
	for _, item := range f.items {
		if item.UserID == userID && item.ProductID == productID {
			return item, nil
		}
	}
	return nil, domain.ErrNotFound
}
func (f *fakeCartRepo) Create(_ context.Context, item *domain.CartItem) error {
	item.ID = f.nextID
	f.nextID++
	f.items[item.ID] = item
	return nil
}
func (f *fakeCartRepo) Update(_ context.Context, item *domain.CartItem) error {
	f.items[item.ID] = item
	return nil
}
func (f *fakeCartRepo) Delete(_ context.Context, id uint) error {
	if _, ok := f.items[id]; !ok {
		return domain.NewNotFound("cart item", id)
	}
	delete(f.items, id)
	return nil
}
func (f *fakeCartRepo) ClearForUser(_ context.Context, userID uint) error {
	for id, item := range f.items {
		if item.UserID == userID {
			delete(f.items, id)
		}
	}
	return nil
}

type fakeCouponRepo struct {
	coupons map[string]*domain.Coupon
}

func (f *fakeCouponRepo) Create(_ context.Context, c *domain.Coupon) error { return nil }
func (f *fakeCouponRepo) GetByID(context.Context, uint) (*domain.Coupon, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeCouponRepo) GetByCode(_ context.Context, code string) (*domain.Coupon, error) {
	c, ok := f.coupons[code]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return c, nil
}
func (f *fakeCouponRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.Coupon], error) {
	return nil, nil
}
func (f *fakeCouponRepo) Update(context.Context, *domain.Coupon) error { return nil }
func (f *fakeCouponRepo) Delete(context.Context, uint) error           { return nil }

// fakeOrderStore records checkout calls and tracks orders in memory.
type fakeOrderStore struct {
	orders       map[uint]*domain.Order
	nextID       uint
	products     *fakeProductRepo
	clearedCarts *fakeCartRepo
}

func newFakeOrderStore(products *fakeProductRepo, carts *fakeCartRepo) *fakeOrderStore {
	return &fakeOrderStore{
		orders:       make(map[uint]*domain.Order),
		nextID:       1,
		products:     products,
		clearedCarts: carts,
	}
}

func (f *fakeOrderStore) Create(_ context.Context, o *domain.Order) error {
	o.ID = f.nextID
	f.nextID++
	f.orders[o.ID] = o
	return nil
}
func (f *fakeOrderStore) GetByID(_ context.Context, id uint) (*domain.Order, error) {
	o, ok := f.orders[id]
	if !ok {
		return nil, domain.NewNotFound("order", id)
	}
	return o, nil
}
func (f *fakeOrderStore) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	return &domain.PageResult[domain.Order]{Items: []domain.Order{}}, nil
}
func (f *fakeOrderStore) ListByUser(_ context.Context, userID uint, _ domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	var items []domain.Order
	for _, o := range f.orders {
		if o.UserID == userID {
			items = append(items, *o)
		}
	}
	return &domain.PageResult[domain.Order]{Items: items, TotalCount: int64(len(items))}, nil
}
func (f *fakeOrderStore) Update(_ context.Context, o *domain.Order) error {
	f.orders[o.ID] = o
	return nil
}

func (f *fakeOrderStore) Checkout(ctx context.Context, order *domain.Order, decrements map[uint]int) error {
	for productID, qty := range decrements {
		p := f.products.products[productID]
		if p == nil || p.StockQuantity < qty {
			return domain.NewAppError(domain.CodeConflict, "insufficient stock", nil)
		}
		p.StockQuantity -= qty
	}
	if err := f.Create(ctx, order); err != nil {
		return err
	}
	return f.clearedCarts.ClearForUser(ctx, order.UserID)
}

func (f *fakeOrderStore) CancelRestock(_ context.Context, order *domain.Order) error {
	for _, item := range order.Items {
		if p := f.products.products[item.ProductID]; p != nil {
			p.StockQuantity += item.Quantity
		}
	}
	order.OrderStatus = domain.OrderCancelled
	f.orders[order.ID] = order
	return nil
}

type fakePaymentProvider struct {
	lastAmount   int64
	lastCurrency string
	err          error
}

func (f *fakePaymentProvider) CreateIntent(_ context.Context, amountCents int64, currency string, _ map[string]string) (*domain.PaymentIntent, error) {
	if f.err != nil {
		return nil, f.err
	}
	f.lastAmount = amountCents
	f.lastCurrency = currency
	return &domain.PaymentIntent{ID: "pi_test", ClientSecret: "pi_test_secret"}, nil
}

// --- helpers ---

func newProduct(id uint, name string, priceCents int64, stock int) *domain.Product {
	p := &domain.Product{Name: name, PriceCents: priceCents, StockQuantity: stock}
	p.ID = id
	return p
}

type testEnv struct {
	svc      Service
	products *fakeProductRepo
	carts    *fakeCartRepo
	orders   *fakeOrderStore
	payments *fakePaymentProvider
	coupons  *fakeCouponRepo
}

func newTestEnv(products ...*domain.Product) *testEnv {
	prodRepo := newFakeProductRepo(products...)
	carts := newFakeCartRepo(prodRepo)
	orders := newFakeOrderStore(prodRepo, carts)
	payments := &fakePaymentProvider{}
	coupons := &fakeCouponRepo{coupons: make(map[string]*domain.Coupon)}
	return &testEnv{
		svc:      NewService(orders, carts, prodRepo, coupons, payments, "usd"),
		products: prodRepo,
		carts:    carts,
		orders:   orders,
		payments: payments,
		coupons:  coupons,
	}
}

func (e *testEnv) addToCart(t *testing.T, userID, productID uint, qty int) {
	t.Helper()
	if _, err := e.svc.AddItem(context.Background(), userID, AddCartItemRequest{ProductID: productID, Quantity: qty}); err != nil {
		t.Fatalf("AddItem: %v", err)
	}
}

// --- cart tests ---

func TestAddItem_NewLine(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))

	cart, err := env.svc.AddItem(context.Background(), 1, AddCartItemRequest{ProductID: 1, Quantity: 2})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("len(Items) = %d; want 1", len(cart.Items))
	}
	if cart.Items[0].Quantity != 2 {
		t.Errorf("Quantity = %d; want 2", cart.Items[0].Quantity)
	}
	if cart.TotalCents != 20000 {
		t.Errorf("TotalCents = %d; want 20000", cart.TotalCents)
	}
}

func TestAddItem_MergesExistingLine(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.addToCart(t, 1, 1, 2)

	cart, err := env.svc.AddItem(context.Background(), 1, AddCartItemRequest{ProductID: 1, Quantity: 3})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("len(Items) = %d; want 1 merged line", len(cart.Items))
	}
	if cart.Items[0].Quantity != 5 {
		t.Errorf("Quantity = %d; want 5", cart.Items[0].Quantity)
	}
}

func TestAddItem_InsufficientStock(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 3))

	_, err := env.svc.AddItem(context.Background(), 1, AddCartItemRequest{ProductID: 1, Quantity: 4})
	if !domain.IsValidation(err) {
		t.Fatalf("error = %v; want Validation", err)
	}
}

func TestAddItem_MergeExceedingStock(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 3))
	env.addToCart(t, 1, 1, 2)

	_, err := env.svc.AddItem(context.Background(), 1, AddCartItemRequest{ProductID: 1, Quantity: 2})
	if !domain.IsValidation(err) {
		t.Fatalf("error = %v; want Validation", err)
	}
}

func TestAddItem_UnknownProduct(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.AddItem(context.Background(), 1, AddCartItemRequest{ProductID: 99, Quantity: 1})
	if !domain.IsValidation(err) {
		t.Fatalf("error = %v; want Validation", err)
	}
}

func TestRemoveItem_OtherUsersLineIsNotFound(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.addToCart(t, 1, 1, 1)

	// User 2 cannot see or remove user 1's line.
	_, err := env.svc.RemoveItem(context.Background(), 2, 1)
	if !domain.IsNotFound(err) {
		t.Fatalf("error = %v; want NotFound", err)
	}
}

// --- checkout tests ---

func TestCheckout_Success(t *testing.T) {
	env := newTestEnv(
		newProduct(1, "Lathe", 10000, 5),
		newProduct(2, "Chisel set", 2500, 10),
	)
	env.addToCart(t, 7, 1, 1)
	env.addToCart(t, 7, 2, 2)

	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Order.TotalCents != 15000 {
		t.Errorf("TotalCents = %d; want 15000", resp.Order.TotalCents)
	}
	if resp.Order.Status != domain.OrderPending {
		t.Errorf("Status = %q; want %q", resp.Order.Status, domain.OrderPending)
	}
	if len(resp.Order.Items) != 2 {
		t.Fatalf("len(Items) = %d; want 2", len(resp.Order.Items))
	}
	if resp.PaymentClientSecret != "pi_test_secret" {
		t.Errorf("client secret = %q; want %q", resp.PaymentClientSecret, "pi_test_secret")
	}
	if env.payments.lastAmount != 15000 {
		t.Errorf("payment amount = %d; want 15000", env.payments.lastAmount)
	}

	// Stock was decremented and the cart cleared.
	if got := env.products.products[1].StockQuantity; got != 4 {
		t.Errorf("stock of product 1 = %d; want 4", got)
	}
	if got := env.products.products[2].StockQuantity; got != 8 {
		t.Errorf("stock of product 2 = %d; want 8", got)
	}
	cart, _ := env.svc.GetCart(context.Background(), 7)
	if len(cart.Items) != 0 {
		t.Errorf("cart still has %d items after checkout", len(cart.Items))
	}
}

func TestCheckout_SnapshotsNameAndPrice(t *testing.T) {
	product := newProduct(1, "Lathe", 10000, 5)
	env := newTestEnv(product)
	env.addToCart(t, 7, 1, 1)

	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	item := resp.Order.Items[0]
	if item.ProductName != "Lathe" || item.UnitPriceCents != 10000 {
		t.Errorf("snapshot = (%q, %d); want (Lathe, 10000)", item.ProductName, item.UnitPriceCents)
	}
}

func TestCheckout_EmptyCart(t *testing.T) {
	env := newTestEnv()

	_, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if !domain.IsValidation(err) {
		t.Fatalf("error = %v; want Validation", err)
	}
}

func TestCheckout_WithPercentCoupon(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	coupon := &domain.Coupon{
		Code:         "SAVE10",
		DiscountType: domain.DiscountPercent,
		Value:        10,
		ExpiresAt:    time.Now().Add(time.Hour),
		Active:       true,
	}
	coupon.ID = 3
	env.coupons.coupons["SAVE10"] = coupon
	env.addToCart(t, 7, 1, 1)

	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{CouponCode: "SAVE10"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if resp.Order.DiscountCents != 1000 {
		t.Errorf("DiscountCents = %d; want 1000", resp.Order.DiscountCents)
	}
	if resp.Order.CouponID == nil || *resp.Order.CouponID != 3 {
		t.Errorf("CouponID = %v; want 3", resp.Order.CouponID)
	}
	if env.payments.lastAmount != 9000 {
		t.Errorf("payment amount = %d; want 9000", env.payments.lastAmount)
	}
}

func TestCheckout_ExpiredCoupon(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.coupons.coupons["OLD"] = &domain.Coupon{
		Code:         "OLD",
		DiscountType: domain.DiscountPercent,
		Value:        10,
		ExpiresAt:    time.Now().Add(-time.Hour),
		Active:       true,
	}
	env.addToCart(t, 7, 1, 1)

	_, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{CouponCode: "OLD"})
	if !domain.IsValidation(err) {
		t.Fatalf("error = %v; want Validation", err)
	}
}

func TestCheckout_FullDiscountSkipsPayment(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.coupons.coupons["FREE"] = &domain.Coupon{
		Code:         "FREE",
		DiscountType: domain.DiscountPercent,
		Value:        100,
		ExpiresAt:    time.Now().Add(time.Hour),
		Active:       true,
	}
	env.addToCart(t, 7, 1, 1)

	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{CouponCode: "FREE"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.PaymentClientSecret != "" {
		t.Error("expected no payment intent for a fully discounted order")
	}
	if resp.Order.PaymentIntentID != "" {
		t.Error("expected empty PaymentIntentID for a fully discounted order")
	}
}

// --- order lifecycle tests ---

func TestGet_OtherUsersOrderIsNotFound(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.addToCart(t, 7, 1, 1)
	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	if _, err := env.svc.Get(context.Background(), 8, false, resp.Order.ID); !domain.IsNotFound(err) {
		t.Errorf("error = %v; want NotFound", err)
	}
	if _, err := env.svc.Get(context.Background(), 8, true, resp.Order.ID); err != nil {
		t.Errorf("admin read failed: %v", err)
	}
}

func TestCancel_RestoresStock(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.addToCart(t, 7, 1, 2)
	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	if got := env.products.products[1].StockQuantity; got != 3 {
		t.Fatalf("stock after checkout = %d; want 3", got)
	}

	cancelled, err := env.svc.Cancel(context.Background(), 7, false, resp.Order.ID)
	if err != nil {
		t.Fatalf("Cancel: %v", err)
	}
	if cancelled.Status != domain.OrderCancelled {
		t.Errorf("Status = %q; want %q", cancelled.Status, domain.OrderCancelled)
	}
	if got := env.products.products[1].StockQuantity; got != 5 {
		t.Errorf("stock after cancel = %d; want 5", got)
	}
}

func TestCancel_DeliveredOrderIsConflict(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.addToCart(t, 7, 1, 1)
	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}
	env.orders.orders[resp.Order.ID].OrderStatus = domain.OrderDelivered

	_, err = env.svc.Cancel(context.Background(), 7, false, resp.Order.ID)
	if !domain.IsConflict(err) {
		t.Fatalf("error = %v; want Conflict", err)
	}
}

func TestUpdateStatus_ValidTransition(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.addToCart(t, 7, 1, 1)
	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	updated, err := env.svc.UpdateStatus(context.Background(), resp.Order.ID, UpdateOrderStatusRequest{Status: domain.OrderPaid})
	if err != nil {
		t.Fatalf("UpdateStatus: %v", err)
	}
	if updated.Status != domain.OrderPaid {
		t.Errorf("Status = %q; want %q", updated.Status, domain.OrderPaid)
	}
}

func TestUpdateStatus_InvalidTransitionIsConflict(t *testing.T) {
	env := newTestEnv(newProduct(1, "Lathe", 10000, 5))
	env.addToCart(t, 7, 1, 1)
	resp, err := env.svc.Checkout(context.Background(), 7, CheckoutRequest{})
	if err != nil {
		t.Fatalf("Checkout: %v", err)
	}

	_, err = env.svc.UpdateStatus(context.Background(), resp.Order.ID, UpdateOrderStatusRequest{Status: domain.OrderDelivered})
	if !domain.IsConflict(err) {
		t.Fatalf("error = %v; want Conflict", err)
	}
}
