package domain

import (
	"context"
	"time"
)

// RefreshToken is a long-lived credential persisted per user. Unlike other
// records it is never soft-deleted; revocation is a timestamp so token
// history stays auditable.
type RefreshToken struct {
	ID        uint       `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time  `json:"created_at"`
	Token     string     `gorm:"size:64;uniqueIndex;not null" json:"token"`
	UserID    uint       `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time  `gorm:"not null" json:"expires_at"`
	RevokedAt *time.Time `json:"revoked_at,omitempty"`
}

// Valid reports whether the token is usable at the given time.
func (t *RefreshToken) Valid(now time.Time) bool {
	return t.RevokedAt == nil && now.Before(t.ExpiresAt)
}

// RefreshTokenRepository defines the data access interface for refresh tokens.
type RefreshTokenRepository interface {
	Create(ctx context.Context, token *RefreshToken) error
	GetByToken(ctx context.Context, token string) (*RefreshToken, error)
	Revoke(ctx context.Context, token *RefreshToken, at time.Time) error
	RevokeAllForUser(ctx context.Context, userID uint, at time.Time) error
}
