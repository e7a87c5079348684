package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/pkg"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open test db: %v", err)
	}
	if err := db.AutoMigrate(&domain.Hobby{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func newHobbyRepo(db *gorm.DB) *Repository[domain.Hobby] {
	return New[domain.Hobby](db, "hobby")
}

func TestCreateAndGetByID(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	ctx := context.Background()

	hobby := &domain.Hobby{Name: "Woodworking"}
	if err := repo.Create(ctx, hobby); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if hobby.ID == 0 {
		t.Fatal("expected non-zero ID after Create")
	}

	got, err := repo.GetByID(ctx, hobby.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Woodworking" {
		t.Errorf("Name = %q; want %q", got.Name, "Woodworking")
	}
}

func TestGetByID_NotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)

	_, err := repo.GetByID(context.Background(), 999)
	if !domain.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func TestUpdate_PersistsChanges(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	ctx := context.Background()

	hobby := &domain.Hobby{Name: "Pottery"}
	if err := repo.Create(ctx, hobby); err != nil {
		t.Fatalf("Create: %v", err)
	}

	hobby.Name = "Ceramics"
	if err := repo.Update(ctx, hobby); err != nil {
		t.Fatalf("Update: %v", err)
	}

	got, err := repo.GetByID(ctx, hobby.ID)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if got.Name != "Ceramics" {
		t.Errorf("Name = %q; want %q", got.Name, "Ceramics")
	}
}

func TestDelete_SoftDeleteHidesRow(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	ctx := context.Background()

	hobby := &domain.Hobby{Name: "Origami"}
	if err := repo.Create(ctx, hobby); err != nil {
		t.Fatalf("Create: %v", err)
	}

	if err := repo.Delete(ctx, hobby.ID); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	// Reads no longer see the entity.
	if _, err := repo.GetByID(ctx, hobby.ID); !domain.IsNotFound(err) {
		t.Errorf("GetByID after delete: expected NotFound, got %v", err)
	}

	// The row is still physically present, flagged deleted.
	var raw domain.Hobby
	if err := db.First(&raw, hobby.ID).Error; err != nil {
		t.Fatalf("raw read: %v", err)
	}
	if raw.Status != domain.StatusDeleted {
		t.Errorf("raw Status = %d; want %d", raw.Status, domain.StatusDeleted)
	}
}

func TestDelete_SecondDeleteIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	ctx := context.Background()

	hobby := &domain.Hobby{Name: "Knitting"}
	if err := repo.Create(ctx, hobby); err != nil {
		t.Fatalf("Create: %v", err)
	}
	if err := repo.Delete(ctx, hobby.ID); err != nil {
		t.Fatalf("first Delete: %v", err)
	}

	if err := repo.Delete(ctx, hobby.ID); !domain.IsNotFound(err) {
		t.Errorf("second Delete: expected NotFound, got %v", err)
	}
}

func TestDelete_MissingIDIsNotFound(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)

	if err := repo.Delete(context.Background(), 12345); !domain.IsNotFound(err) {
		t.Errorf("expected NotFound, got %v", err)
	}
}

func seedHobbies(t *testing.T, repo *Repository[domain.Hobby], n int) {
	t.Helper()
	ctx := context.Background()
	for i := 1; i <= n; i++ {
		h := &domain.Hobby{Name: fmt.Sprintf("hobby-%02d", i)}
		if err := repo.Create(ctx, h); err != nil {
			t.Fatalf("seed %d: %v", i, err)
		}
	}
}

func TestGetPaged_PageMath(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	seedHobbies(t, repo, 25)
	ctx := context.Background()

	req := domain.PageRequest{Page: 3, PageSize: 10, Sort: "id:asc"}
	query := repo.Queryable(ctx).Scopes(pkg.Sort(req, []string{"id"}))
	page, err := GetPaged[domain.Hobby](query, req)
	if err != nil {
		t.Fatalf("GetPaged: %v", err)
	}

	if page.TotalCount != 25 {
		t.Errorf("TotalCount = %d; want 25", page.TotalCount)
	}
	if page.TotalPages != 3 {
		t.Errorf("TotalPages = %d; want 3", page.TotalPages)
	}
	if page.PageNumber != 3 {
		t.Errorf("PageNumber = %d; want 3", page.PageNumber)
	}
	if len(page.Items) != 5 {
		t.Fatalf("len(Items) = %d; want 5", len(page.Items))
	}
	if page.Items[0].Name != "hobby-21" {
		t.Errorf("first item = %q; want %q", page.Items[0].Name, "hobby-21")
	}
}

func TestGetPaged_BeyondLastPageIsEmpty(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	seedHobbies(t, repo, 3)
	ctx := context.Background()

	req := domain.PageRequest{Page: 5, PageSize: 10, Sort: "id:asc"}
	query := repo.Queryable(ctx).Scopes(pkg.Sort(req, []string{"id"}))
	page, err := GetPaged[domain.Hobby](query, req)
	if err != nil {
		t.Fatalf("GetPaged: %v", err)
	}

	if len(page.Items) != 0 {
		t.Errorf("len(Items) = %d; want 0", len(page.Items))
	}
	if page.Items == nil {
		t.Error("Items should be an empty slice, not nil")
	}
	if page.TotalCount != 3 {
		t.Errorf("TotalCount = %d; want 3", page.TotalCount)
	}
}

func TestGetPaged_ExcludesSoftDeleted(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	seedHobbies(t, repo, 5)
	ctx := context.Background()

	if err := repo.Delete(ctx, 2); err != nil {
		t.Fatalf("Delete: %v", err)
	}
	if err := repo.Delete(ctx, 4); err != nil {
		t.Fatalf("Delete: %v", err)
	}

	req := domain.PageRequest{Page: 1, PageSize: 10, Sort: "id:asc"}
	query := repo.Queryable(ctx).Scopes(pkg.Sort(req, []string{"id"}))
	page, err := GetPaged[domain.Hobby](query, req)
	if err != nil {
		t.Fatalf("GetPaged: %v", err)
	}

	if page.TotalCount != 3 {
		t.Errorf("TotalCount = %d; want 3", page.TotalCount)
	}
	for _, h := range page.Items {
		if h.ID == 2 || h.ID == 4 {
			t.Errorf("soft-deleted hobby %d present in page", h.ID)
		}
	}
}

func TestGetPaged_FilterLike(t *testing.T) {
	db := setupTestDB(t)
	repo := newHobbyRepo(db)
	ctx := context.Background()

	for _, name := range []string{"Woodworking", "Wood carving", "Pottery"} {
		if err := repo.Create(ctx, &domain.Hobby{Name: name}); err != nil {
			t.Fatalf("Create: %v", err)
		}
	}

	req := domain.PageRequest{
		Page:     1,
		PageSize: 10,
		Sort:     "id:asc",
		Filter:   map[string]string{"name__like": "Wood"},
	}
	query := repo.Queryable(ctx).Scopes(
		pkg.Filter(req, []string{"name"}),
		pkg.Sort(req, []string{"id"}),
	)
	page, err := GetPaged[domain.Hobby](query, req)
	if err != nil {
		t.Fatalf("GetPaged: %v", err)
	}

	if page.TotalCount != 2 {
		t.Errorf("TotalCount = %d; want 2", page.TotalCount)
	}
}

func TestMapError_DuplicateKey(t *testing.T) {
	db := setupTestDB(t)
	if err := db.AutoMigrate(&domain.User{}); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	repo := New[domain.User](db, "user")
	ctx := context.Background()

	u1 := &domain.User{Name: "Alice", Email: "dup@example.com"}
	if err := repo.Create(ctx, u1); err != nil {
		t.Fatalf("first Create: %v", err)
	}

	u2 := &domain.User{Name: "Bob", Email: "dup@example.com"}
	if err := repo.Create(ctx, u2); !domain.IsAlreadyExists(err) {
		t.Errorf("expected AlreadyExists, got %v", err)
	}
}
