package domain

import "context"

// Project is a user-owned showcase linked to a hobby.
type Project struct {
	BaseModel
	Title       string `gorm:"size:200;not null" json:"title"`
	Description string `gorm:"size:2000" json:"description"`
	ImageURL    string `gorm:"size:500" json:"image_url"`
	UserID      uint   `gorm:"not null;index" json:"user_id"`
	HobbyID     uint   `gorm:"not null;index" json:"hobby_id"`
	User        *User  `gorm:"foreignKey:UserID" json:"-"`
	Hobby       *Hobby `gorm:"foreignKey:HobbyID" json:"-"`
}

// Review is a rating left on a project. One review per user per project.
type Review struct {
	BaseModel
	ProjectID uint   `gorm:"not null;index" json:"project_id"`
	UserID    uint   `gorm:"not null;index" json:"user_id"`
	Rating    int    `gorm:"not null" json:"rating"`
	Comment   string `gorm:"size:1000" json:"comment"`
	User      *User  `gorm:"foreignKey:UserID" json:"-"`
}

// ProjectRepository defines the data access interface for projects.
type ProjectRepository interface {
	Create(ctx context.Context, project *Project) error
	GetByID(ctx context.Context, id uint) (*Project, error)
	List(ctx context.Context, req PageRequest) (*PageResult[Project], error)
	Update(ctx context.Context, project *Project) error
	Delete(ctx context.Context, id uint) error
	// AverageRating returns the mean active review rating for a project,
	// or 0 when it has no reviews.
	AverageRating(ctx context.Context, projectID uint) (float64, error)
}

// ReviewRepository defines the data access interface for project reviews.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	GetByID(ctx context.Context, id uint) (*Review, error)
	ListByProject(ctx context.Context, projectID uint, req PageRequest) (*PageResult[Review], error)
	ExistsForUser(ctx context.Context, projectID, userID uint) (bool, error)
	Delete(ctx context.Context, id uint) error
}
