package auth

import (
	"context"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/simp-lee/jwt"

	"github.com/reignite/reignite/internal/domain"
)

// --- fakes ---

// fakeJWTService implements jwt.Service for testing.
type fakeJWTService struct {
	token string
	err   error
}

func (f *fakeJWTService) GenerateToken(_ string, _ []string, _ time.Duration) (string, error) {
	return f.token, f.err
}
func (f *fakeJWTService) ValidateToken(string) (*jwt.Token, error)                 { return nil, nil }
func (f *fakeJWTService) ValidateAndParse(string) (*jwt.Token, error)              { return nil, nil }
func (f *fakeJWTService) RefreshToken(string) (string, error)                      { return "", nil }
func (f *fakeJWTService) RefreshTokenExtend(string, time.Duration) (string, error) { return "", nil }
func (f *fakeJWTService) RevokeToken(string) error                                 { return nil }
func (f *fakeJWTService) IsTokenRevoked(string) bool                               { return false }
func (f *fakeJWTService) ParseToken(string) (*jwt.Token, error) {
	return &jwt.Token{ExpiresAt: time.Now().Add(time.Hour)}, nil
}
func (f *fakeJWTService) RevokeAllUserTokens(string) error { return nil }
func (f *fakeJWTService) Close()                           {}

// capturingJWTService captures args passed to GenerateToken.
type capturingJWTService struct {
	fakeJWTService
	capturedUserID string
	capturedRoles  []string
}

func (c *capturingJWTService) GenerateToken(userID string, roles []string, _ time.Duration) (string, error) {
	c.capturedUserID = userID
	c.capturedRoles = roles
	return c.token, nil
}

// fakeUserRepo implements domain.UserRepository for testing.
type fakeUserRepo struct {
	user      *domain.User
	getErr    error
	createErr error
}

func (f *fakeUserRepo) Create(_ context.Context, u *domain.User) error {
	if f.createErr != nil {
		return f.createErr
	}
	u.ID = 1
	return nil
}
func (f *fakeUserRepo) GetByEmail(_ context.Context, _ string) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}
func (f *fakeUserRepo) GetByID(context.Context, uint) (*domain.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.user, nil
}
func (f *fakeUserRepo) List(context.Context, domain.PageRequest) (*domain.PageResult[domain.User], error) {
	return nil, nil
}
func (f *fakeUserRepo) Update(context.Context, *domain.User) error { return nil }
func (f *fakeUserRepo) Delete(context.Context, uint) error         { return nil }

// fakeTokenRepo implements domain.RefreshTokenRepository in memory.
type fakeTokenRepo struct {
	tokens map[string]*domain.RefreshToken
}

func newFakeTokenRepo() *fakeTokenRepo {
	return &fakeTokenRepo{tokens: make(map[string]*domain.RefreshToken)}
}

func (f *fakeTokenRepo) Create(_ context.Context, rt *domain.RefreshToken) error {
	f.tokens[rt.Token] = rt
	return nil
}

func (f *fakeTokenRepo) GetByToken(_ context.Context, token string) (*domain.RefreshToken, error) {
	rt, ok := f.tokens[token]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return rt, nil
}

func (f *fakeTokenRepo) Revoke(_ context.Context, rt *domain.RefreshToken, at time.Time) error {
	rt.RevokedAt = &at
	return nil
}

func (f *fakeTokenRepo) RevokeAllForUser(_ context.Context, userID uint, at time.Time) error {
	for _, rt := range f.tokens {
		if rt.UserID == userID && rt.RevokedAt == nil {
			t := at
			rt.RevokedAt = &t
		}
	}
	return nil
}

// --- helpers ---

func hashPassword(t *testing.T, pw string) string {
	t.Helper()
	h, err := bcrypt.GenerateFromPassword([]byte(pw), bcrypt.DefaultCost)
	if err != nil {
		t.Fatalf("hash password: %v", err)
	}
	return string(h)
}

func newTestService(jwtSvc jwt.Service, users *fakeUserRepo, tokens *fakeTokenRepo) Service {
	return NewService(jwtSvc, users, tokens, time.Hour, 24*time.Hour)
}

// --- Register tests ---

func TestRegister_Success(t *testing.T) {
	users := &fakeUserRepo{getErr: domain.ErrNotFound}
	svc := newTestService(&fakeJWTService{}, users, newFakeTokenRepo())

	user, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if user.ID != 1 {
		t.Errorf("user.ID = %d; want 1", user.ID)
	}
	if user.Role != domain.RoleUser {
		t.Errorf("user.Role = %q; want %q", user.Role, domain.RoleUser)
	}
	if user.PasswordHash == "secret1234" || user.PasswordHash == "" {
		t.Error("password was not hashed")
	}
}

func TestRegister_DuplicateEmail_Conflict(t *testing.T) {
	existing := &domain.User{Email: "alice@example.com"}
	users := &fakeUserRepo{user: existing}
	svc := newTestService(&fakeJWTService{}, users, newFakeTokenRepo())

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1234")
	if !domain.IsConflict(err) {
		t.Fatalf("error = %v; want Conflict", err)
	}
}

func TestRegister_ConcurrentDuplicate_Conflict(t *testing.T) {
	// The precheck misses but the unique index catches the insert.
	users := &fakeUserRepo{
		getErr:    domain.ErrNotFound,
		createErr: domain.NewAppError(domain.CodeAlreadyExists, "already exists", nil),
	}
	svc := newTestService(&fakeJWTService{}, users, newFakeTokenRepo())

	_, err := svc.Register(context.Background(), "Alice", "alice@example.com", "secret1234")
	if !domain.IsConflict(err) {
		t.Fatalf("error = %v; want Conflict", err)
	}
}

func TestRegister_InvalidInput(t *testing.T) {
	tests := []struct {
		name     string
		userName string
		email    string
		password string
	}{
		{"empty name", "", "alice@example.com", "secret1234"},
		{"bad email", "Alice", "not-an-email", "secret1234"},
		{"short password", "Alice", "alice@example.com", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newTestService(&fakeJWTService{}, &fakeUserRepo{getErr: domain.ErrNotFound}, newFakeTokenRepo())
			_, err := svc.Register(context.Background(), tt.userName, tt.email, tt.password)
			if !domain.IsValidation(err) {
				t.Fatalf("error = %v; want Validation", err)
			}
		})
	}
}

// --- Login tests ---

func TestLogin_Success(t *testing.T) {
	pw := "secret1234"
	user := &domain.User{Name: "Alice", Email: "alice@example.com", PasswordHash: hashPassword(t, pw), Role: domain.RoleUser}
	user.ID = 42

	jwtSvc := &capturingJWTService{fakeJWTService: fakeJWTService{token: "jwt-token-abc"}}
	tokens := newFakeTokenRepo()
	svc := newTestService(jwtSvc, &fakeUserRepo{user: user}, tokens)

	resp, err := svc.Login(context.Background(), "alice@example.com", pw)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.AccessToken != "jwt-token-abc" {
		t.Errorf("access token = %q; want %q", resp.AccessToken, "jwt-token-abc")
	}
	if resp.RefreshToken == "" {
		t.Error("refresh token is empty")
	}
	if jwtSvc.capturedUserID != "42" {
		t.Errorf("token subject = %q; want %q", jwtSvc.capturedUserID, "42")
	}
	if len(jwtSvc.capturedRoles) != 1 || jwtSvc.capturedRoles[0] != domain.RoleUser {
		t.Errorf("token roles = %v; want [%q]", jwtSvc.capturedRoles, domain.RoleUser)
	}
	if _, ok := tokens.tokens[resp.RefreshToken]; !ok {
		t.Error("refresh token was not persisted")
	}
}

func TestLogin_WrongPassword_Unauthorized(t *testing.T) {
	user := &domain.User{Email: "alice@example.com", PasswordHash: hashPassword(t, "correct-pw")}
	svc := newTestService(&fakeJWTService{token: "t"}, &fakeUserRepo{user: user}, newFakeTokenRepo())

	_, err := svc.Login(context.Background(), "alice@example.com", "wrong-pw")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("error = %v; want Unauthorized", err)
	}
}

func TestLogin_UnknownEmail_Unauthorized(t *testing.T) {
	svc := newTestService(&fakeJWTService{token: "t"}, &fakeUserRepo{getErr: domain.ErrNotFound}, newFakeTokenRepo())

	_, err := svc.Login(context.Background(), "nobody@example.com", "whatever1")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("error = %v; want Unauthorized", err)
	}
}

// --- Refresh tests ---

func TestRefresh_RotatesToken(t *testing.T) {
	user := &domain.User{Role: domain.RoleUser}
	user.ID = 7
	tokens := newFakeTokenRepo()
	old := &domain.RefreshToken{Token: "old-token", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	tokens.tokens[old.Token] = old

	svc := newTestService(&fakeJWTService{token: "new-access"}, &fakeUserRepo{user: user}, tokens)

	resp, err := svc.Refresh(context.Background(), "old-token")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.RefreshToken == "old-token" {
		t.Error("refresh token was not rotated")
	}
	if old.RevokedAt == nil {
		t.Error("old refresh token was not revoked")
	}
	if _, ok := tokens.tokens[resp.RefreshToken]; !ok {
		t.Error("new refresh token was not persisted")
	}
}

func TestRefresh_ExpiredToken_Unauthorized(t *testing.T) {
	tokens := newFakeTokenRepo()
	tokens.tokens["expired"] = &domain.RefreshToken{
		Token:     "expired",
		UserID:    7,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	svc := newTestService(&fakeJWTService{token: "t"}, &fakeUserRepo{user: &domain.User{}}, tokens)

	_, err := svc.Refresh(context.Background(), "expired")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("error = %v; want Unauthorized", err)
	}
}

func TestRefresh_RevokedToken_Unauthorized(t *testing.T) {
	revokedAt := time.Now().Add(-time.Minute)
	tokens := newFakeTokenRepo()
	tokens.tokens["revoked"] = &domain.RefreshToken{
		Token:     "revoked",
		UserID:    7,
		ExpiresAt: time.Now().Add(time.Hour),
		RevokedAt: &revokedAt,
	}
	svc := newTestService(&fakeJWTService{token: "t"}, &fakeUserRepo{user: &domain.User{}}, tokens)

	_, err := svc.Refresh(context.Background(), "revoked")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("error = %v; want Unauthorized", err)
	}
}

func TestRefresh_UnknownToken_Unauthorized(t *testing.T) {
	svc := newTestService(&fakeJWTService{token: "t"}, &fakeUserRepo{user: &domain.User{}}, newFakeTokenRepo())

	_, err := svc.Refresh(context.Background(), "never-issued")
	if !domain.IsUnauthorized(err) {
		t.Fatalf("error = %v; want Unauthorized", err)
	}
}

// --- Logout tests ---

func TestLogout_RevokesAllUserTokens(t *testing.T) {
	tokens := newFakeTokenRepo()
	tokens.tokens["a"] = &domain.RefreshToken{Token: "a", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	tokens.tokens["b"] = &domain.RefreshToken{Token: "b", UserID: 7, ExpiresAt: time.Now().Add(time.Hour)}
	tokens.tokens["other"] = &domain.RefreshToken{Token: "other", UserID: 8, ExpiresAt: time.Now().Add(time.Hour)}

	svc := newTestService(&fakeJWTService{}, &fakeUserRepo{}, tokens)
	if err := svc.Logout(context.Background(), 7); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if tokens.tokens["a"].RevokedAt == nil || tokens.tokens["b"].RevokedAt == nil {
		t.Error("user tokens were not revoked")
	}
	if tokens.tokens["other"].RevokedAt != nil {
		t.Error("another user's token was revoked")
	}
}
