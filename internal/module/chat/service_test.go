package chat

import (
	"context"
	"strings"
	"testing"

	"github.com/reignite/reignite/internal/domain"
)

type fakeMessageRepo struct {
	messages []domain.ChatMessage
	nextID   uint
}

func (f *fakeMessageRepo) Create(_ context.Context, msg *domain.ChatMessage) error {
	f.nextID++
	msg.ID = f.nextID
	f.messages = append(f.messages, *msg)
	return nil
}

func (f *fakeMessageRepo) ListRecent(_ context.Context, hobbyID uint, limit int) ([]domain.ChatMessage, error) {
	var out []domain.ChatMessage
	for _, m := range f.messages {
		if m.HobbyID == hobbyID {
			out = append(out, m)
		}
	}
	if len(out) > limit {
		out = out[len(out)-limit:]
	}
	return out, nil
}

type fakeHobbyRepo struct {
	ids map[uint]bool
}

func (f *fakeHobbyRepo) Create(context.Context, *domain.Hobby) error { return nil }
func (f *fakeHobbyRepo) GetByID(_ context.Context, id uint) (*domain.Hobby, error) {
	if !f.ids[id] {
		return nil, domain.NewNotFound("hobby", id)
	}
	h := &domain.Hobby{Name: "Woodworking"}
	h.ID = id
	return h, nil
}
func (f *fakeHobbyRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.Hobby], error) {
	return nil, nil
}
func (f *fakeHobbyRepo) Update(context.Context, *domain.Hobby) error        { return nil }
func (f *fakeHobbyRepo) Delete(context.Context, uint) error                 { return nil }
func (f *fakeHobbyRepo) CountProjects(context.Context, uint) (int64, error) { return 0, nil }

type fakeUserRepo struct {
	names map[uint]string
}

func (f *fakeUserRepo) Create(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) GetByID(_ context.Context, id uint) (*domain.User, error) {
	name, ok := f.names[id]
	if !ok {
		return nil, domain.NewNotFound("user", id)
	}
	u := &domain.User{Name: name}
	u.ID = id
	return u, nil
}
func (f *fakeUserRepo) GetByEmail(context.Context, string) (*domain.User, error) {
	return nil, domain.ErrNotFound
}
func (f *fakeUserRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, uint) error         { return nil }

func newTestService(historyLimit int) (Service, *fakeMessageRepo) {
	messages := &fakeMessageRepo{}
	hobbies := &fakeHobbyRepo{ids: map[uint]bool{1: true}}
	users := &fakeUserRepo{names: map[uint]string{7: "Alice"}}
	return NewService(messages, hobbies, users, historyLimit), messages
}

func TestSaveMessage_Success(t *testing.T) {
	svc, repo := newTestService(50)

	msg, err := svc.SaveMessage(context.Background(), 1, 7, "  anyone restoring a Stanley No. 4?  ")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.Content != "anyone restoring a Stanley No. 4?" {
		t.Errorf("content = %q; want trimmed text", msg.Content)
	}
	if msg.UserName != "Alice" {
		t.Errorf("user name = %q; want Alice", msg.UserName)
	}
	if len(repo.messages) != 1 {
		t.Fatalf("stored %d messages; want 1", len(repo.messages))
	}
}

func TestSaveMessage_LengthLimits(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr bool
	}{
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"single rune", "x", false},
		{"max length", strings.Repeat("a", 500), false},
		{"over max", strings.Repeat("a", 501), true},
		{"multibyte runes count as one", strings.Repeat("木", 500), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, _ := newTestService(50)
			_, err := svc.SaveMessage(context.Background(), 1, 7, tt.content)
			if tt.wantErr && !domain.IsValidation(err) {
				t.Errorf("expected validation error, got %v", err)
			}
			if !tt.wantErr && err != nil {
				t.Errorf("unexpected error: %v", err)
			}
		})
	}
}

func TestSaveMessage_UnknownRoom(t *testing.T) {
	svc, _ := newTestService(50)

	_, err := svc.SaveMessage(context.Background(), 99, 7, "hello")
	if !domain.IsNotFound(err) {
		t.Fatalf("error = %v; want NotFound", err)
	}
}

func TestSaveMessage_UnknownSenderStillDelivers(t *testing.T) {
	svc, _ := newTestService(50)

	msg, err := svc.SaveMessage(context.Background(), 1, 999, "hello")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if msg.UserName != "" {
		t.Errorf("user name = %q; want empty for unknown sender", msg.UserName)
	}
}

func TestHistory_RespectsLimit(t *testing.T) {
	svc, _ := newTestService(3)

	for _, text := range []string{"one", "two", "three", "four", "five"} {
		if _, err := svc.SaveMessage(context.Background(), 1, 7, text); err != nil {
			t.Fatalf("SaveMessage(%q): %v", text, err)
		}
	}

	history, err := svc.History(context.Background(), 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("len(history) = %d; want 3", len(history))
	}
	// Oldest first, keeping the most recent messages.
	want := []string{"three", "four", "five"}
	for i, w := range want {
		if history[i].Content != w {
			t.Errorf("history[%d] = %q; want %q", i, history[i].Content, w)
		}
	}
}

func TestCheckRoom(t *testing.T) {
	svc, _ := newTestService(50)

	if err := svc.CheckRoom(context.Background(), 1); err != nil {
		t.Errorf("existing room: %v", err)
	}
	if err := svc.CheckRoom(context.Background(), 99); !domain.IsNotFound(err) {
		t.Errorf("missing room: error = %v; want NotFound", err)
	}
}
