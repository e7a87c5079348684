package category

// CreateCategoryRequest represents the input for creating a category.
type CreateCategoryRequest struct {
	Name        string `json:"name" form:"name" binding:"required,min=2,max=100"`
	Description string `json:"description" form:"description" binding:"max=500"`
}

// UpdateCategoryRequest represents a partial category update.
type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" binding:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty" binding:"omitempty,max=500"`
}
