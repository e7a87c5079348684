package report

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/repository"
)

// Dashboard is the admin overview: headline counts, revenue and sales
// breakdowns. Revenue only counts orders that reached payment.
type Dashboard struct {
	TotalUsers     int64            `json:"total_users"`
	TotalProducts  int64            `json:"total_products"`
	TotalOrders    int64            `json:"total_orders"`
	RevenueCents   int64            `json:"revenue_cents"`
	OrdersByStatus map[string]int64 `json:"orders_by_status"`
	TopProducts    []TopProduct     `json:"top_products"`
}

// TopProduct is one row of the best-sellers breakdown.
type TopProduct struct {
	ProductID    uint   `json:"product_id"`
	ProductName  string `json:"product_name"`
	QuantitySold int64  `json:"quantity_sold"`
}

// Service builds the admin dashboard.
type Service interface {
	Dashboard(ctx context.Context) (*Dashboard, error)
}

type reportService struct {
	db       *gorm.DB
	users    *repository.Repository[domain.User]
	products *repository.Repository[domain.Product]
	orders   *repository.Repository[domain.Order]
}

// NewService creates a new report Service.
func NewService(db *gorm.DB) Service {
	return &reportService{
		db:       db,
		users:    repository.New[domain.User](db, "user"),
		products: repository.New[domain.Product](db, "product"),
		orders:   repository.New[domain.Order](db, "order"),
	}
}

// paidStatuses are the order states that count toward revenue.
var paidStatuses = []domain.OrderStatus{domain.OrderPaid, domain.OrderShipped, domain.OrderDelivered}

func (s *reportService) Dashboard(ctx context.Context) (*Dashboard, error) {
	dash := &Dashboard{OrdersByStatus: make(map[string]int64)}

	if err := s.users.Queryable(ctx).Count(&dash.TotalUsers).Error; err != nil {
		return nil, repository.MapError(err)
	}
	if err := s.products.Queryable(ctx).Count(&dash.TotalProducts).Error; err != nil {
		return nil, repository.MapError(err)
	}
	if err := s.orders.Queryable(ctx).Count(&dash.TotalOrders).Error; err != nil {
		return nil, repository.MapError(err)
	}

	var revenue *int64
	err := s.orders.Queryable(ctx).
		Where("order_status IN ?", paidStatuses).
		Select("SUM(total_cents - discount_cents)").
		Scan(&revenue).Error
	if err != nil {
		return nil, repository.MapError(err)
	}
	if revenue != nil {
		dash.RevenueCents = *revenue
	}

	var byStatus []struct {
		OrderStatus string
		Count       int64
	}
	err = s.orders.Queryable(ctx).
		Select("order_status, COUNT(*) AS count").
		Group("order_status").
		Scan(&byStatus).Error
	if err != nil {
		return nil, repository.MapError(err)
	}
	for _, row := range byStatus {
		dash.OrdersByStatus[row.OrderStatus] = row.Count
	}

	// Top sellers come from order item snapshots, restricted to paid orders.
	err = s.db.WithContext(ctx).
		Model(&domain.OrderItem{}).
		Select("order_items.product_id, order_items.product_name, SUM(order_items.quantity) AS quantity_sold").
		Joins("JOIN orders ON orders.id = order_items.order_id").
		Where("orders.status = ? AND orders.order_status IN ?", domain.StatusActive, paidStatuses).
		Group("order_items.product_id, order_items.product_name").
		Order("quantity_sold DESC").
		Limit(5).
		Scan(&dash.TopProducts).Error
	if err != nil {
		return nil, repository.MapError(err)
	}

	return dash, nil
}
