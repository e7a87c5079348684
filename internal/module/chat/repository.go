package chat

import (
	"context"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/repository"
)

// chatRepository implements domain.ChatMessageRepository.
type chatRepository struct {
	base *repository.Repository[domain.ChatMessage]
}

// NewRepository creates a new ChatMessageRepository backed by the given GORM database.
func NewRepository(db *gorm.DB) domain.ChatMessageRepository {
	return &chatRepository{base: repository.New[domain.ChatMessage](db, "chat message")}
}

func (r *chatRepository) Create(ctx context.Context, msg *domain.ChatMessage) error {
	return r.base.Create(ctx, msg)
}

// ListRecent fetches the newest messages for a room and returns them oldest
// first, ready for history replay.
func (r *chatRepository) ListRecent(ctx context.Context, hobbyID uint, limit int) ([]domain.ChatMessage, error) {
	var messages []domain.ChatMessage
	err := r.base.Queryable(ctx).
		Preload("User").
		Where("hobby_id = ?", hobbyID).
		Order("id DESC").
		Limit(limit).
		Find(&messages).Error
	if err != nil {
		return nil, repository.MapError(err)
	}
	for i, j := 0, len(messages)-1; i < j; i, j = i+1, j-1 {
		messages[i], messages[j] = messages[j], messages[i]
	}
	return messages, nil
}
