package domain

import "time"

// EntityStatus is the lifecycle state of a persisted record. Deletion never
// removes a row; it flips the status so referential checks and audits keep
// working against the original data.
type EntityStatus int8

const (
	StatusActive  EntityStatus = 0
	StatusDeleted EntityStatus = 1
)

// BaseModel is the common base struct for all domain models.
// It replaces gorm.Model to avoid the implicit soft delete behavior of
// DeletedAt; soft deletion is an explicit Status transition instead.
type BaseModel struct {
	ID        uint         `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
	Status    EntityStatus `gorm:"not null;default:0;index" json:"-"`
}

// PageRequest holds pagination, sorting, and filtering parameters.
type PageRequest struct {
	Page     int
	PageSize int
	Sort     string
	Filter   map[string]string
}

// Offset returns the number of rows to skip for the requested page.
func (r PageRequest) Offset() int {
	return (r.Page - 1) * r.PageSize
}

// PageResult is the envelope returned by every list operation. TotalCount is
// the size of the full filtered set, independent of paging, so clients can
// compute ceil(total/page_size) themselves; TotalPages is included anyway.
type PageResult[T any] struct {
	Items      []T   `json:"items"`
	TotalCount int64 `json:"total_count"`
	PageNumber int   `json:"page_number"`
	PageSize   int   `json:"page_size"`
	TotalPages int   `json:"total_pages"`
}
