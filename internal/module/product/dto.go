package product

import (
	"time"

	"github.com/reignite/reignite/internal/domain"
)

// CreateProductRequest represents the input for creating a product.
type CreateProductRequest struct {
	Name          string `json:"name" form:"name" binding:"required,min=2,max=200"`
	Description   string `json:"description" form:"description" binding:"max=2000"`
	PriceCents    int64  `json:"price_cents" form:"price_cents" binding:"required,gt=0"`
	StockQuantity int    `json:"stock_quantity" form:"stock_quantity" binding:"gte=0"`
	ImageURL      string `json:"image_url" form:"image_url" binding:"omitempty,max=500"`
	CategoryID    uint   `json:"category_id" form:"category_id" binding:"required"`
	SupplierID    uint   `json:"supplier_id" form:"supplier_id" binding:"required"`
}

// UpdateProductRequest represents a partial product update.
type UpdateProductRequest struct {
	Name          *string `json:"name,omitempty" binding:"omitempty,min=2,max=200"`
	Description   *string `json:"description,omitempty" binding:"omitempty,max=2000"`
	PriceCents    *int64  `json:"price_cents,omitempty" binding:"omitempty,gt=0"`
	StockQuantity *int    `json:"stock_quantity,omitempty" binding:"omitempty,gte=0"`
	ImageURL      *string `json:"image_url,omitempty" binding:"omitempty,max=500"`
	CategoryID    *uint   `json:"category_id,omitempty"`
	SupplierID    *uint   `json:"supplier_id,omitempty"`
}

// ProductResponse is the public representation of a product, with the
// category and supplier names denormalized.
type ProductResponse struct {
	ID            uint      `json:"id"`
	Name          string    `json:"name"`
	Description   string    `json:"description"`
	PriceCents    int64     `json:"price_cents"`
	StockQuantity int       `json:"stock_quantity"`
	ImageURL      string    `json:"image_url"`
	CategoryID    uint      `json:"category_id"`
	CategoryName  string    `json:"category_name"`
	SupplierID    uint      `json:"supplier_id"`
	SupplierName  string    `json:"supplier_name"`
	CreatedAt     time.Time `json:"created_at"`
}

// toResponse maps a product entity to its response DTO.
func toResponse(p *domain.Product) ProductResponse {
	resp := ProductResponse{
		ID:            p.ID,
		Name:          p.Name,
		Description:   p.Description,
		PriceCents:    p.PriceCents,
		StockQuantity: p.StockQuantity,
		ImageURL:      p.ImageURL,
		CategoryID:    p.CategoryID,
		SupplierID:    p.SupplierID,
		CreatedAt:     p.CreatedAt,
	}
	if p.Category != nil {
		resp.CategoryName = p.Category.Name
	}
	if p.Supplier != nil {
		resp.SupplierName = p.Supplier.Name
	}
	return resp
}
