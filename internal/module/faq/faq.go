// Package faq implements the public help-page questions and their admin CRUD.
package faq

import (
	"context"
	"strings"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
	"github.com/reignite/reignite/internal/repository"
)

var allowedSortFields = []string{"id", "created_at"}

// faqRepository implements domain.FAQRepository over the generic repository.
type faqRepository struct {
	base *repository.Repository[domain.FAQ]
}

// NewRepository creates a new FAQRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.FAQRepository {
	return &faqRepository{base: repository.New[domain.FAQ](db, "faq")}
}

func (r *faqRepository) Create(ctx context.Context, faq *domain.FAQ) error {
	return r.base.Create(ctx, faq)
}

func (r *faqRepository) GetByID(ctx context.Context, id uint) (*domain.FAQ, error) {
	return r.base.GetByID(ctx, id)
}

func (r *faqRepository) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.FAQ], error) {
	query := r.base.Queryable(ctx).Scopes(pkg.Sort(req, allowedSortFields))
	return repository.GetPaged[domain.FAQ](query, req)
}

func (r *faqRepository) Update(ctx context.Context, faq *domain.FAQ) error {
	return r.base.Update(ctx, faq)
}

func (r *faqRepository) Delete(ctx context.Context, id uint) error {
	return r.base.Delete(ctx, id)
}

// CreateFAQRequest represents the input for creating an FAQ entry.
type CreateFAQRequest struct {
	Question string `json:"question" form:"question" binding:"required,min=5,max=500"`
	Answer   string `json:"answer" form:"answer" binding:"required,min=1,max=2000"`
}

// UpdateFAQRequest represents a partial FAQ update.
type UpdateFAQRequest struct {
	Question *string `json:"question,omitempty" binding:"omitempty,min=5,max=500"`
	Answer   *string `json:"answer,omitempty" binding:"omitempty,min=1,max=2000"`
}

// Service defines the FAQ operations.
type Service interface {
	Create(ctx context.Context, req CreateFAQRequest) (*domain.FAQ, error)
	Get(ctx context.Context, id uint) (*domain.FAQ, error)
	List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.FAQ], error)
	Update(ctx context.Context, id uint, req UpdateFAQRequest) (*domain.FAQ, error)
	Delete(ctx context.Context, id uint) error
}

type faqService struct {
	repo domain.FAQRepository
}

// NewService creates a new FAQ Service with the given repository.
func NewService(repo domain.FAQRepository) Service {
	return &faqService{repo: repo}
}

func (s *faqService) Create(ctx context.Context, req CreateFAQRequest) (*domain.FAQ, error) {
	faq := &domain.FAQ{
		Question: strings.TrimSpace(req.Question),
		Answer:   strings.TrimSpace(req.Answer),
	}
	if err := s.repo.Create(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *faqService) Get(ctx context.Context, id uint) (*domain.FAQ, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *faqService) List(ctx context.Context, req domain.PageRequest) (*domain.PageResult[domain.FAQ], error) {
	return s.repo.List(ctx, req)
}

func (s *faqService) Update(ctx context.Context, id uint, req UpdateFAQRequest) (*domain.FAQ, error) {
	faq, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Question != nil {
		faq.Question = strings.TrimSpace(*req.Question)
	}
	if req.Answer != nil {
		faq.Answer = strings.TrimSpace(*req.Answer)
	}

	if err := s.repo.Update(ctx, faq); err != nil {
		return nil, err
	}
	return faq, nil
}

func (s *faqService) Delete(ctx context.Context, id uint) error {
	return s.repo.Delete(ctx, id)
}
