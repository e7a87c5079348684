package auth

import (
	"context"
	"net/mail"
	"strconv"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/reignite/reignite/internal/domain"
)

// Service defines the authentication operations.
type Service interface {
	Register(ctx context.Context, name, email, password string) (*domain.User, error)
	Login(ctx context.Context, email, password string) (*TokenResponse, error)
	Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error)
	Logout(ctx context.Context, userID uint) error
}

// authService implements Service.
type authService struct {
	jwtSvc        jwt.Service
	userRepo      domain.UserRepository
	tokenRepo     domain.RefreshTokenRepository
	tokenExpiry   time.Duration
	refreshExpiry time.Duration
	now           func() time.Time
}

// NewService creates a new auth Service.
func NewService(jwtSvc jwt.Service, userRepo domain.UserRepository, tokenRepo domain.RefreshTokenRepository, tokenExpiry, refreshExpiry time.Duration) Service {
	return &authService{
		jwtSvc:        jwtSvc,
		userRepo:      userRepo,
		tokenRepo:     tokenRepo,
		tokenExpiry:   tokenExpiry,
		refreshExpiry: refreshExpiry,
		now:           time.Now,
	}
}

// Register creates a new user with the given credentials. A duplicate email
// is a Conflict.
func (s *authService) Register(ctx context.Context, name, email, password string) (*domain.User, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(email)
	if err := validateRegisterInput(name, email, password); err != nil {
		return nil, err
	}

	if _, err := s.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, domain.NewAppError(domain.CodeConflict, "email already registered", nil)
	} else if !domain.IsNotFound(err) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to hash password", err)
	}

	user := domain.User{
		Name:         name,
		Email:        email,
		PasswordHash: string(hash),
		Role:         domain.RoleUser,
	}

	if err := s.userRepo.Create(ctx, &user); err != nil {
		// The unique index is the backstop for concurrent registrations.
		if domain.IsAlreadyExists(err) {
			return nil, domain.NewAppError(domain.CodeConflict, "email already registered", err)
		}
		return nil, err
	}

	return &user, nil
}

// Login authenticates a user by email and password and returns a token pair.
func (s *authService) Login(ctx context.Context, email, password string) (*TokenResponse, error) {
	user, err := s.userRepo.GetByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		// Don't reveal whether the user exists — always return unauthorized.
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, domain.ErrUnauthorized
	}

	return s.issueTokens(ctx, user)
}

// Refresh rotates a refresh token: the presented token must exist, be
// unexpired and unrevoked; it is revoked and a fresh pair issued. A reused
// (already revoked) token is rejected, which cuts off stolen-token replay.
func (s *authService) Refresh(ctx context.Context, refreshToken string) (*TokenResponse, error) {
	rt, err := s.tokenRepo.GetByToken(ctx, refreshToken)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	now := s.now()
	if !rt.Valid(now) {
		return nil, domain.ErrUnauthorized
	}

	user, err := s.userRepo.GetByID(ctx, rt.UserID)
	if err != nil {
		if domain.IsNotFound(err) {
			return nil, domain.ErrUnauthorized
		}
		return nil, err
	}

	if err := s.tokenRepo.Revoke(ctx, rt, now); err != nil {
		return nil, err
	}

	return s.issueTokens(ctx, user)
}

// Logout revokes all live refresh tokens of the user.
func (s *authService) Logout(ctx context.Context, userID uint) error {
	return s.tokenRepo.RevokeAllForUser(ctx, userID, s.now())
}

// issueTokens generates an access JWT and persists a new refresh token.
func (s *authService) issueTokens(ctx context.Context, user *domain.User) (*TokenResponse, error) {
	access, err := s.jwtSvc.GenerateToken(
		strconv.FormatUint(uint64(user.ID), 10),
		[]string{user.Role},
		s.tokenExpiry,
	)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to generate token", err)
	}

	parsed, err := s.jwtSvc.ParseToken(access)
	if err != nil {
		return nil, domain.NewAppError(domain.CodeInternal, "failed to parse generated token", err)
	}

	refresh := domain.RefreshToken{
		Token:     uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: s.now().Add(s.refreshExpiry),
	}
	if err := s.tokenRepo.Create(ctx, &refresh); err != nil {
		return nil, err
	}

	return &TokenResponse{
		AccessToken:  access,
		RefreshToken: refresh.Token,
		ExpiresAt:    parsed.ExpiresAt.Unix(),
	}, nil
}

// validateRegisterInput validates registration input. name and email are expected
// to be pre-trimmed by callers; TrimSpace here ensures the validator is self-contained.
func validateRegisterInput(name, email, password string) error {
	nameLen := utf8.RuneCountInString(strings.TrimSpace(name))
	if nameLen == 0 {
		return domain.NewAppError(domain.CodeValidation, "name is required", nil)
	}
	if nameLen > 100 {
		return domain.NewAppError(domain.CodeValidation, "name must not exceed 100 characters", nil)
	}
	trimmedEmail := strings.TrimSpace(email)
	if len(trimmedEmail) == 0 {
		return domain.NewAppError(domain.CodeValidation, "email is required", nil)
	}
	addr, err := mail.ParseAddress(trimmedEmail)
	if err != nil || addr.Name != "" || addr.Address != trimmedEmail {
		return domain.NewAppError(domain.CodeValidation, "email must be a valid email address", nil)
	}
	if len(password) < 8 {
		return domain.NewAppError(domain.CodeValidation, "password must be at least 8 characters", nil)
	}
	if len(password) > 72 {
		return domain.NewAppError(domain.CodeValidation, "password must not exceed 72 characters", nil)
	}
	return nil
}
