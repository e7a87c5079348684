package hobby

import (
	"context"
	"testing"

	"github.com/reignite/reignite/internal/domain"
)

type mockHobbyRepo struct {
	hobbies      map[uint]*domain.Hobby
	nextID       uint
	projectCount map[uint]int64
}

func newMockRepo() *mockHobbyRepo {
	return &mockHobbyRepo{
		hobbies:      make(map[uint]*domain.Hobby),
		nextID:       1,
		projectCount: make(map[uint]int64),
	}
}

func (m *mockHobbyRepo) Create(_ context.Context, h *domain.Hobby) error {
	h.ID = m.nextID
	m.nextID++
	m.hobbies[h.ID] = h
	return nil
}

func (m *mockHobbyRepo) GetByID(_ context.Context, id uint) (*domain.Hobby, error) {
	h, ok := m.hobbies[id]
	if !ok {
		return nil, domain.NewNotFound("hobby", id)
	}
	copied := *h
	return &copied, nil
}

func (m *mockHobbyRepo) List(_ context.Context, req domain.PageRequest) (*domain.PageResult[domain.Hobby], error) {
	items := make([]domain.Hobby, 0, len(m.hobbies))
	for _, h := range m.hobbies {
		items = append(items, *h)
	}
	return &domain.PageResult[domain.Hobby]{Items: items, TotalCount: int64(len(items))}, nil
}

func (m *mockHobbyRepo) Update(_ context.Context, h *domain.Hobby) error {
	if _, ok := m.hobbies[h.ID]; !ok {
		return domain.NewNotFound("hobby", h.ID)
	}
	m.hobbies[h.ID] = h
	return nil
}

func (m *mockHobbyRepo) Delete(_ context.Context, id uint) error {
	if _, ok := m.hobbies[id]; !ok {
		return domain.NewNotFound("hobby", id)
	}
	delete(m.hobbies, id)
	return nil
}

func (m *mockHobbyRepo) CountProjects(_ context.Context, hobbyID uint) (int64, error) {
	return m.projectCount[hobbyID], nil
}

func TestCreate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)

	t.Run("success trims whitespace", func(t *testing.T) {
		created, err := svc.Create(context.Background(), CreateHobbyRequest{Name: "  Woodworking  "})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.Name != "Woodworking" {
			t.Errorf("name = %q; want Woodworking", created.Name)
		}
	})

	t.Run("blank name", func(t *testing.T) {
		_, err := svc.Create(context.Background(), CreateHobbyRequest{Name: "   "})
		if !domain.IsValidation(err) {
			t.Errorf("expected validation error, got %v", err)
		}
	})
}

func TestUpdate(t *testing.T) {
	repo := newMockRepo()
	svc := NewService(repo)
	created, err := svc.Create(context.Background(), CreateHobbyRequest{Name: "Woodworking", Description: "Chisels and planes"})
	if err != nil {
		t.Fatalf("setup: %v", err)
	}

	t.Run("partial update", func(t *testing.T) {
		desc := "All things sawdust"
		updated, err := svc.Update(context.Background(), created.ID, UpdateHobbyRequest{Description: &desc})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if updated.Description != "All things sawdust" {
			t.Errorf("description = %q", updated.Description)
		}
		if updated.Name != "Woodworking" {
			t.Errorf("name changed unexpectedly: %q", updated.Name)
		}
	})

	t.Run("not found", func(t *testing.T) {
		name := "X"
		_, err := svc.Update(context.Background(), 9999, UpdateHobbyRequest{Name: &name})
		if !domain.IsNotFound(err) {
			t.Errorf("expected not found error, got %v", err)
		}
	})
}

func TestDelete(t *testing.T) {
	t.Run("blocked by dependent projects", func(t *testing.T) {
		repo := newMockRepo()
		svc := NewService(repo)
		created, _ := svc.Create(context.Background(), CreateHobbyRequest{Name: "Woodworking"})
		repo.projectCount[created.ID] = 2

		if err := svc.Delete(context.Background(), created.ID); !domain.IsConflict(err) {
			t.Fatalf("expected conflict error, got %v", err)
		}
	})

	t.Run("unused hobby deletes", func(t *testing.T) {
		repo := newMockRepo()
		svc := NewService(repo)
		created, _ := svc.Create(context.Background(), CreateHobbyRequest{Name: "Woodworking"})

		if err := svc.Delete(context.Background(), created.ID); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, err := svc.Get(context.Background(), created.ID); !domain.IsNotFound(err) {
			t.Errorf("expected not found after delete, got %v", err)
		}
	})
}
