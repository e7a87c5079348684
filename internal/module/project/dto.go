package project

import (
	"time"

	"github.com/reignite/reignite/internal/domain"
)

// CreateProjectRequest is the payload for posting a new showcase.
type CreateProjectRequest struct {
	Title       string `json:"title" binding:"required,min=1,max=200"`
	Description string `json:"description" binding:"max=2000"`
	ImageURL    string `json:"image_url" binding:"omitempty,url,max=500"`
	HobbyID     uint   `json:"hobby_id" binding:"required"`
}

// UpdateProjectRequest is the payload for partially updating a showcase.
// Nil fields are left unchanged.
type UpdateProjectRequest struct {
	Title       *string `json:"title" binding:"omitempty,min=1,max=200"`
	Description *string `json:"description" binding:"omitempty,max=2000"`
	ImageURL    *string `json:"image_url" binding:"omitempty,url,max=500"`
	HobbyID     *uint   `json:"hobby_id"`
}

// CreateReviewRequest is the payload for reviewing a project.
type CreateReviewRequest struct {
	Rating  int    `json:"rating" binding:"required,min=1,max=5"`
	Comment string `json:"comment" binding:"max=1000"`
}

// ProjectResponse is the API representation of a project showcase.
type ProjectResponse struct {
	ID            uint      `json:"id"`
	Title         string    `json:"title"`
	Description   string    `json:"description"`
	ImageURL      string    `json:"image_url"`
	UserID        uint      `json:"user_id"`
	UserName      string    `json:"user_name,omitempty"`
	HobbyID       uint      `json:"hobby_id"`
	HobbyName     string    `json:"hobby_name,omitempty"`
	AverageRating float64   `json:"average_rating"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

// ReviewResponse is the API representation of a project review.
type ReviewResponse struct {
	ID        uint      `json:"id"`
	ProjectID uint      `json:"project_id"`
	UserID    uint      `json:"user_id"`
	UserName  string    `json:"user_name,omitempty"`
	Rating    int       `json:"rating"`
	Comment   string    `json:"comment"`
	CreatedAt time.Time `json:"created_at"`
}

func toProjectResponse(p *domain.Project) ProjectResponse {
	resp := ProjectResponse{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		ImageURL:    p.ImageURL,
		UserID:      p.UserID,
		HobbyID:     p.HobbyID,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
	if p.User != nil {
		resp.UserName = p.User.Name
	}
	if p.Hobby != nil {
		resp.HobbyName = p.Hobby.Name
	}
	return resp
}

func toReviewResponse(r *domain.Review) ReviewResponse {
	resp := ReviewResponse{
		ID:        r.ID,
		ProjectID: r.ProjectID,
		UserID:    r.UserID,
		Rating:    r.Rating,
		Comment:   r.Comment,
		CreatedAt: r.CreatedAt,
	}
	if r.User != nil {
		resp.UserName = r.User.Name
	}
	return resp
}
