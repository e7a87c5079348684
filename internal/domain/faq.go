package domain

import "context"

// FAQ is a question/answer pair shown on the public help page.
type FAQ struct {
	BaseModel
	Question string `gorm:"size:500;not null" json:"question"`
	Answer   string `gorm:"size:2000;not null" json:"answer"`
}

// FAQRepository defines the data access interface for FAQs.
type FAQRepository interface {
	Create(ctx context.Context, faq *FAQ) error
	GetByID(ctx context.Context, id uint) (*FAQ, error)
	List(ctx context.Context, req PageRequest) (*PageResult[FAQ], error)
	Update(ctx context.Context, faq *FAQ) error
	Delete(ctx context.Context, id uint) error
}
