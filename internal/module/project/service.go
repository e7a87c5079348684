package project

import (
	"context"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

// Service defines project showcase and review operations. Callers identify
// themselves with actorID; actorAdmin widens ownership checks.
type Service interface {
	Create(ctx context.Context, actorID uint, req CreateProjectRequest) (*ProjectResponse, error)
	Get(ctx context.Context, id uint) (*ProjectResponse, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[ProjectResponse], error)
	Update(ctx context.Context, actorID uint, actorAdmin bool, id uint, req UpdateProjectRequest) (*ProjectResponse, error)
	Delete(ctx context.Context, actorID uint, actorAdmin bool, id uint) error

	AddReview(ctx context.Context, actorID, projectID uint, req CreateReviewRequest) (*ReviewResponse, error)
	ListReviews(ctx context.Context, projectID uint, req domain.PageRequest) (*domain.PageResult[ReviewResponse], error)
	DeleteReview(ctx context.Context, actorID uint, actorAdmin bool, reviewID uint) error
}

type projectService struct {
	projects domain.ProjectRepository
	reviews  domain.ReviewRepository
	hobbies  domain.HobbyRepository
}

// NewService creates a new project Service.
func NewService(projects domain.ProjectRepository, reviews domain.ReviewRepository, hobbies domain.HobbyRepository) Service {
	return &projectService{projects: projects, reviews: reviews, hobbies: hobbies}
}

func (s *projectService) Create(ctx context.Context, actorID uint, req CreateProjectRequest) (*ProjectResponse, error) {
	if err := s.checkHobby(ctx, req.HobbyID); err != nil {
		return nil, err
	}
	project := &domain.Project{
		Title:       req.Title,
		Description: req.Description,
		ImageURL:    req.ImageURL,
		UserID:      actorID,
		HobbyID:     req.HobbyID,
	}
	if err := s.projects.Create(ctx, project); err != nil {
		return nil, err
	}
	// Re-read to pick up the user and hobby associations for the response.
	return s.Get(ctx, project.ID)
}

func (s *projectService) Get(ctx context.Context, id uint) (*ProjectResponse, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := toProjectResponse(project)
	if resp.AverageRating, err = s.projects.AverageRating(ctx, id); err != nil {
		return nil, err
	}
	return &resp, nil
}

func (s *projectService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[ProjectResponse], error) {
	page, err := s.projects.List(ctx, req)
	if err != nil {
		return nil, err
	}
	out := pkg.MapPage(page, func(p domain.Project) ProjectResponse { return toProjectResponse(&p) })
	for i := range out.Items {
		avg, err := s.projects.AverageRating(ctx, out.Items[i].ID)
		if err != nil {
			return nil, err
		}
		out.Items[i].AverageRating = avg
	}
	return out, nil
}

func (s *projectService) Update(ctx context.Context, actorID uint, actorAdmin bool, id uint, req UpdateProjectRequest) (*ProjectResponse, error) {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := checkOwnership(project.UserID, actorID, actorAdmin); err != nil {
		return nil, err
	}
	if req.Title != nil {
		project.Title = *req.Title
	}
	if req.Description != nil {
		project.Description = *req.Description
	}
	if req.ImageURL != nil {
		project.ImageURL = *req.ImageURL
	}
	if req.HobbyID != nil && *req.HobbyID != project.HobbyID {
		if err := s.checkHobby(ctx, *req.HobbyID); err != nil {
			return nil, err
		}
		project.HobbyID = *req.HobbyID
	}
	// Drop loaded associations so Save only writes the project row.
	project.User = nil
	project.Hobby = nil
	if err := s.projects.Update(ctx, project); err != nil {
		return nil, err
	}
	return s.Get(ctx, id)
}

func (s *projectService) Delete(ctx context.Context, actorID uint, actorAdmin bool, id uint) error {
	project, err := s.projects.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if err := checkOwnership(project.UserID, actorID, actorAdmin); err != nil {
		return err
	}
	return s.projects.Delete(ctx, id)
}

func (s *projectService) AddReview(ctx context.Context, actorID, projectID uint, req CreateReviewRequest) (*ReviewResponse, error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	exists, err := s.reviews.ExistsForUser(ctx, projectID, actorID)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, domain.NewAppError(domain.CodeConflict, "project already reviewed by this user", nil)
	}

	review := &domain.Review{
		ProjectID: projectID,
		UserID:    actorID,
		Rating:    req.Rating,
		Comment:   req.Comment,
	}
	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	resp := toReviewResponse(review)
	return &resp, nil
}

func (s *projectService) ListReviews(ctx context.Context, projectID uint, req domain.PageRequest) (*domain.PageResult[ReviewResponse], error) {
	if _, err := s.projects.GetByID(ctx, projectID); err != nil {
		return nil, err
	}
	page, err := s.reviews.ListByProject(ctx, projectID, req)
	if err != nil {
		return nil, err
	}
	return pkg.MapPage(page, func(r domain.Review) ReviewResponse { return toReviewResponse(&r) }), nil
}

func (s *projectService) DeleteReview(ctx context.Context, actorID uint, actorAdmin bool, reviewID uint) error {
	review, err := s.reviews.GetByID(ctx, reviewID)
	if err != nil {
		return err
	}
	if err := checkOwnership(review.UserID, actorID, actorAdmin); err != nil {
		return err
	}
	return s.reviews.Delete(ctx, reviewID)
}

func (s *projectService) checkHobby(ctx context.Context, hobbyID uint) error {
	if _, err := s.hobbies.GetByID(ctx, hobbyID); err != nil {
		if domain.IsNotFound(err) {
			return domain.NewAppError(domain.CodeValidation, "hobby does not exist", err)
		}
		return err
	}
	return nil
}

func checkOwnership(ownerID, actorID uint, actorAdmin bool) error {
	if actorAdmin || ownerID == actorID {
		return nil
	}
	return domain.ErrForbidden
}
