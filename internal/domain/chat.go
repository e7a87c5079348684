package domain

import "context"

// Chat message length bounds, enforced before persistence and broadcast.
const (
	ChatMessageMinLen = 1
	ChatMessageMaxLen = 500
)

// ChatMessage is one message in a hobby room.
type ChatMessage struct {
	BaseModel
	HobbyID uint   `gorm:"not null;index" json:"hobby_id"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	Content string `gorm:"size:500;not null" json:"content"`
	User    *User  `gorm:"foreignKey:UserID" json:"-"`
}

// ChatMessageRepository defines the data access interface for chat messages.
type ChatMessageRepository interface {
	Create(ctx context.Context, msg *ChatMessage) error
	// ListRecent returns up to limit most recent messages for a hobby room,
	// oldest first, so clients can replay history on join.
	ListRecent(ctx context.Context, hobbyID uint, limit int) ([]ChatMessage, error)
}
