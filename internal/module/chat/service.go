package chat

import (
	"context"
	"strings"
	"unicode/utf8"

	"github.com/reignite/reignite/internal/domain"
)

// Service validates and persists chat traffic. The hub handles delivery;
// everything stored goes through here first.
type Service interface {
	// SaveMessage validates and stores a message, returning it in delivery form.
	SaveMessage(ctx context.Context, hobbyID, userID uint, content string) (*MessageResponse, error)
	// History returns the recent messages of a room, oldest first.
	History(ctx context.Context, hobbyID uint) ([]MessageResponse, error)
	// CheckRoom verifies the room's hobby exists.
	CheckRoom(ctx context.Context, hobbyID uint) error
}

type chatService struct {
	messages     domain.ChatMessageRepository
	hobbies      domain.HobbyRepository
	users        domain.UserRepository
	historyLimit int
}

// NewService creates a new chat Service. historyLimit caps the messages
// replayed on join.
func NewService(messages domain.ChatMessageRepository, hobbies domain.HobbyRepository, users domain.UserRepository, historyLimit int) Service {
	return &chatService{
		messages:     messages,
		hobbies:      hobbies,
		users:        users,
		historyLimit: historyLimit,
	}
}

func (s *chatService) SaveMessage(ctx context.Context, hobbyID, userID uint, content string) (*MessageResponse, error) {
	content = strings.TrimSpace(content)
	if n := utf8.RuneCountInString(content); n < domain.ChatMessageMinLen || n > domain.ChatMessageMaxLen {
		return nil, domain.NewAppError(domain.CodeValidation, "message must be 1-500 characters", nil)
	}
	if err := s.CheckRoom(ctx, hobbyID); err != nil {
		return nil, err
	}

	msg := &domain.ChatMessage{HobbyID: hobbyID, UserID: userID, Content: content}
	if err := s.messages.Create(ctx, msg); err != nil {
		return nil, err
	}

	resp := toMessageResponse(msg)
	if user, err := s.users.GetByID(ctx, userID); err == nil {
		resp.UserName = user.Name
	}
	return &resp, nil
}

func (s *chatService) History(ctx context.Context, hobbyID uint) ([]MessageResponse, error) {
	messages, err := s.messages.ListRecent(ctx, hobbyID, s.historyLimit)
	if err != nil {
		return nil, err
	}
	out := make([]MessageResponse, 0, len(messages))
	for i := range messages {
		out = append(out, toMessageResponse(&messages[i]))
	}
	return out, nil
}

func (s *chatService) CheckRoom(ctx context.Context, hobbyID uint) error {
	if _, err := s.hobbies.GetByID(ctx, hobbyID); err != nil {
		return err
	}
	return nil
}
