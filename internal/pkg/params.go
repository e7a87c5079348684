package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/reignite/reignite/internal/domain"
)

// ParseIDParam extracts a positive integer path parameter, returning a
// Validation error when it is missing or malformed.
func ParseIDParam(c *gin.Context, name string) (uint, error) {
	raw := c.Param(name)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, domain.NewAppError(domain.CodeValidation, "invalid "+name+" parameter", nil)
	}
	return uint(id), nil
}

// MapPage converts a PageResult of entities into one of DTOs, preserving the
// paging metadata.
func MapPage[E, D any](in *domain.PageResult[E], f func(E) D) *domain.PageResult[D] {
	items := make([]D, 0, len(in.Items))
	for _, e := range in.Items {
		items = append(items, f(e))
	}
	return &domain.PageResult[D]{
		Items:      items,
		TotalCount: in.TotalCount,
		PageNumber: in.PageNumber,
		PageSize:   in.PageSize,
		TotalPages: in.TotalPages,
	}
}
