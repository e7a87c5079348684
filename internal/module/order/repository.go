package order

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

var (
	orderSortFields   = []string{"id", "total_cents", "created_at", "updated_at"}
	orderFilterFields = []string{"order_status", "user_id"}
)

// cartRepository implements domain.CartRepository.
type cartRepository struct {
	base *repository.Repository[domain.CartItem]
}

// NewCartRepository creates a new CartRepository backed by the given GORM database.
func NewCartRepository(db *gorm.DB) domain.CartRepository {
	return &cartRepository{base: repository.New[domain.CartItem](db, "cart item")}
}

func (r *cartRepository) ListByUser(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	var items []domain.CartItem
	err := r.base.Queryable(ctx).
		Preload("Product").
		Where("user_id = ?", userID).
		Order("id").
		Find(&items).Error
	if err != nil {
		return nil, repository.MapError(err)
	}
	return items, nil
}

func (r *cartRepository) GetByUserAndProduct(ctx context.Context, userID, productID uint) (*domain.CartItem, error) {
	var item domain.CartItem
	err := r.base.Queryable(ctx).
		Where("user_id = ? AND product_id = ?", userID, productID).
		First(&item).Error
	if err != nil {
		return nil, repository.MapError(err)
	}
	return &item, nil
}

func (r *cartRepository) Create(ctx context.Context, item *domain.CartItem) error {
	return r.base.Create(ctx, item)
}

func (r *cartRepository) Update(ctx context.Context, item *domain.CartItem) error {
	return r.base.Update(ctx, item)
}

func (r *cartRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

func (r *cartRepository) ClearForUser(ctx context.Context, userID uint) error {
	err := r.base.Queryable(ctx).
		Where("user_id = ?", userID).
		Update("status", domain.StatusDeleted).Error
	return repository.MapError(err)
}

// OrderStore extends the domain repository with the two multi-write flows
// that must run in a single transaction.
type OrderStore interface {
	domain.OrderRepository
	// Checkout atomically decrements product stock, persists the order with
	// its items and clears the user's cart. Stock decrements are guarded; a
	// concurrent sale that drained stock fails the whole transaction with a
	// Conflict error.
	Checkout(ctx context.Context, order *domain.Order, decrements map[uint]int) error
	// CancelRestock moves the order to cancelled and adds the item
	// quantities back onto product stock, atomically.
	CancelRestock(ctx context.Context, order *domain.Order) error
}

// orderRepository implements OrderStore.
type orderRepository struct {
	db   *gorm.DB
	base *repository.Repository[domain.Order]
}

// NewRepository creates a new OrderStore backed by the given GORM database.
func NewRepository(db *gorm.DB) OrderStore {
	return &orderRepository{db: db, base: repository.New[domain.Order](db, "order")}
}

func (r *orderRepository) Create(ctx context.Context, order *domain.Order) error {
	return r.base.Create(ctx, order)
}

func (r *orderRepository) GetByID(ctx context.Context, id uint) (*domain.Order, error) {
	var order domain.Order
	err := r.base.Queryable(ctx).
		Preload("Items").
		Where("id = ?", id).
		First(&order).Error
	if err != nil {
		mapped := repository.MapError(err)
		if domain.IsNotFound(mapped) {
			return nil, domain.NewNotFound("order", id)
		}
		return nil, mapped
	}
	return &order, nil
}

func (r *orderRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	query := r.base.Queryable(ctx).
		Preload("Items").
		Scopes(
			pkg.Filter(req, orderFilterFields),
			pkg.Sort(req, orderSortFields),
		)
	return repository.GetPaged[domain.Order](query, req)
}

func (r *orderRepository) ListByUser(ctx context.Context, userID uint, req domain.PageRequest) (*domain.PageResult[domain.Order], error) {
	query := r.base.Queryable(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Scopes(
			pkg.Filter(req, []string{"order_status"}),
			pkg.Sort(req, orderSortFields),
		)
	return repository.GetPaged[domain.Order](query, req)
}

func (r *orderRepository) Update(ctx context.Context, order *domain.Order) error {
	return r.base.Update(ctx, order)
}

func (r *orderRepository) Checkout(ctx context.Context, order *domain.Order, decrements map[uint]int) error {
	return pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		for productID, qty := range decrements {
			result := tx.Model(&domain.Product{}).
				Where("id = ? AND status = ? AND stock_quantity >= ?", productID, domain.StatusActive, qty).
				Update("stock_quantity", gorm.Expr("stock_quantity - ?", qty))
			if result.Error != nil {
				return repository.MapError(result.Error)
			}
			if result.RowsAffected == 0 {
				return domain.NewAppError(domain.CodeConflict, "insufficient stock", nil)
			}
		}

		if err := tx.Create(order).Error; err != nil {
			return repository.MapError(err)
		}

		err := tx.Model(&domain.CartItem{}).
			Where("user_id = ? AND status = ?", order.UserID, domain.StatusActive).
			Update("status", domain.StatusDeleted).Error
		return repository.MapError(err)
	})
}

func (r *orderRepository) CancelRestock(ctx context.Context, order *domain.Order) error {
	return pkg.WithTx(ctx, r.db, func(tx *gorm.DB) error {
		for _, item := range order.Items {
			err := tx.Model(&domain.Product{}).
				Where("id = ?", item.ProductID).
				Update("stock_quantity", gorm.Expr("stock_quantity + ?", item.Quantity)).Error
			if err != nil {
				return repository.MapError(err)
			}
		}

		err := tx.Model(&domain.Order{}).
			Where("id = ?", order.ID).
			Update("order_status", domain.OrderCancelled).Error
		return repository.MapError(err)
	})
}
