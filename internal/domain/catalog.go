package domain

import "context"

// Category groups products in the catalog.
type Category struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
}

// Supplier is a vendor that products are sourced from.
type Supplier struct {
	BaseModel
	Name  string `gorm:"size:100;not null" json:"name"`
	Email string `gorm:"size:255" json:"email"`
	Phone string `gorm:"size:30" json:"phone"`
}

// Product is a catalog item. Monetary amounts are stored in cents to avoid
// floating point drift; the payment provider wants cents anyway.
type Product struct {
	BaseModel
	Name          string    `gorm:"size:200;not null;index" json:"name"`
	Description   string    `gorm:"size:2000" json:"description"`
	PriceCents    int64     `gorm:"not null" json:"price_cents"`
	StockQuantity int       `gorm:"not null;default:0" json:"stock_quantity"`
	ImageURL      string    `gorm:"size:500" json:"image_url"`
	CategoryID    uint      `gorm:"not null;index" json:"category_id"`
	SupplierID    uint      `gorm:"not null;index" json:"supplier_id"`
	Category      *Category `gorm:"foreignKey:CategoryID" json:"-"`
	Supplier      *Supplier `gorm:"foreignKey:SupplierID" json:"-"`
}

// CategoryRepository defines the data access interface for categories.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	GetByID(ctx context.Context, id uint) (*Category, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Category], error)
	Update(ctx context.Context, category *Category) error
	Delete(ctx context.Context, id uint) error
	// CountProducts returns the number of active products in the category,
	// used to block deletes that would orphan catalog entries.
	CountProducts(ctx context.Context, categoryID uint) (int64, error)
}

// SupplierRepository defines the data access interface for suppliers.
type SupplierRepository interface {
	Create(ctx context.Context, supplier *Supplier) error
	GetByID(ctx context.Context, id uint) (*Supplier, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Supplier], error)
	Update(ctx context.Context, supplier *Supplier) error
	Delete(ctx context.Context, id uint) error
	CountProducts(ctx context.Context, supplierID uint) (int64, error)
}

// ProductRepository defines the data access interface for products.
// List preloads category and supplier so services can denormalize names.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	GetByID(ctx context.Context, id uint) (*Product, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Product], error)
	Update(ctx context.Context, product *Product) error
	Delete(ctx context.Context, id uint) error
}
