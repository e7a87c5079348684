package auth

import (
	"context"
	"time"

	"gorm.io/gorm"

	"github.com/reignite/reignite/internal/domain"
	"github.com/reignite/reignite/internal/repository"
)

// refreshTokenRepository implements domain.RefreshTokenRepository using GORM.
// Refresh tokens are never soft-deleted or removed; revocation is a timestamp
// so issued-token history stays auditable.
type refreshTokenRepository struct {
	db *gorm.DB
}

// NewRefreshTokenRepository creates a RefreshTokenRepository backed by the given database.
func NewRefreshTokenRepository(db *gorm.DB) domain.RefreshTokenRepository {
	return &refreshTokenRepository{db: db}
}

// Create inserts a new refresh token.
func (r *refreshTokenRepository) Create(ctx context.Context, token *domain.RefreshToken) error {
	if err := r.db.WithContext(ctx).Create(token).Error; err != nil {
		return repository.MapError(err)
	}
	return nil
}

// GetByToken looks a refresh token up by its opaque value.
func (r *refreshTokenRepository) GetByToken(ctx context.Context, token string) (*domain.RefreshToken, error) {
	var rt domain.RefreshToken
	if err := r.db.WithContext(ctx).Where("token = ?", token).First(&rt).Error; err != nil {
		return nil, repository.MapError(err)
	}
	return &rt, nil
}

// Revoke marks a single token revoked at the given time.
func (r *refreshTokenRepository) Revoke(ctx context.Context, token *domain.RefreshToken, at time.Time) error {
	token.RevokedAt = &at
	if err := r.db.WithContext(ctx).Model(token).Update("revoked_at", at).Error; err != nil {
		return repository.MapError(err)
	}
	return nil
}

// RevokeAllForUser marks every live token of a user revoked, used by logout.
func (r *refreshTokenRepository) RevokeAllForUser(ctx context.Context, userID uint, at time.Time) error {
	err := r.db.WithContext(ctx).
		Model(&domain.RefreshToken{}).
		Where("user_id = ? AND revoked_at IS NULL", userID).
		Update("revoked_at", at).Error
	if err != nil {
		return repository.MapError(err)
	}
	return nil
}
