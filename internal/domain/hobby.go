package domain

import "context"

// Hobby is a community topic. Chat rooms are keyed by hobby id, and project
// showcases link back to the hobby they belong to.
type Hobby struct {
	BaseModel
	Name        string `gorm:"size:100;uniqueIndex;not null" json:"name"`
	Description string `gorm:"size:1000" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
}

// HobbyRepository defines the data access interface for hobbies.
type HobbyRepository interface {
	Create(ctx context.Context, hobby *Hobby) error
	GetByID(ctx context.Context, id uint) (*Hobby, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Hobby], error)
	Update(ctx context.Context, hobby *Hobby) error
	Delete(ctx context.Context, id uint) error
	CountProjects(ctx context.Context, hobbyID uint) (int64, error)
}
