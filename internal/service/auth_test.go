package service

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"socialnet/internal/config"
	"socialnet/internal/model"
)

// fakeRefreshTokenRepository stores tokens in memory so rotation and reuse
// detection can be exercised across calls.
type fakeRefreshTokenRepository struct {
	nextID int
	tokens map[string]*model.RefreshToken // keyed by token hash

	revokeAllCalls []int64
}

func newFakeRefreshTokenRepository() *fakeRefreshTokenRepository {
	return &fakeRefreshTokenRepository{tokens: make(map[string]*model.RefreshToken)}
}

func (f *fakeRefreshTokenRepository) Create(ctx context.Context, token *model.RefreshToken) error {
	f.nextID++
	token.ID = fmt.Sprintf("tok-%d", f.nextID)
	token.CreatedAt = time.Now()
	f.tokens[token.TokenHash] = token
	return nil
}

func (f *fakeRefreshTokenRepository) FindByTokenHash(ctx context.Context, tokenHash string) (*model.RefreshToken, error) {
	token, ok := f.tokens[tokenHash]
	if !ok {
		return nil, model.ErrRefreshTokenNotFound
	}
	return token, nil
}

func (f *fakeRefreshTokenRepository) Revoke(ctx context.Context, id string, replacedBy *string) error {
	for _, t := range f.tokens {
		if t.ID == id {
			now := time.Now()
			t.RevokedAt = &now
			t.ReplacedBy = replacedBy
			return nil
		}
	}
	return model.ErrRefreshTokenNotFound
}

func (f *fakeRefreshTokenRepository) RevokeAllForUser(ctx context.Context, userID int64) error {
	f.revokeAllCalls = append(f.revokeAllCalls, userID)
	now := time.Now()
	for _, t := range f.tokens {
		if t.UserID == userID && t.RevokedAt == nil {
			t.RevokedAt = &now
		}
	}
	return nil
}

func testAuthConfig() *config.Config {
	return &config.Config{
		JWTSecret:          "test-secret",
		AccessTokenMaxAge:  900,
		RefreshTokenMaxAge: 3600,
	}
}

func TestAuthService_GenerateTokenPair(t *testing.T) {
	repo := newFakeRefreshTokenRepository()
	svc := NewAuthService(repo, testAuthConfig())

	pair, err := svc.GenerateTokenPair(context.Background(), 42, "test-device", "10.0.0.1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if pair.AccessToken == "" || pair.RefreshToken == "" {
		t.Fatal("expected both tokens to be set")
	}
	if pair.ExpiresIn != 900 {
		t.Errorf("expires_in = %d, want 900", pair.ExpiresIn)
	}

	// Access token must be a valid HS256 JWT carrying the user id
	token, err := jwt.Parse(pair.AccessToken, func(token *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil || !token.Valid {
		t.Fatalf("access token should parse and validate: %v", err)
	}
	claims := token.Claims.(jwt.MapClaims)
	if int64(claims["user_id"].(float64)) != 42 {
		t.Errorf("user_id claim = %v, want 42", claims["user_id"])
	}

	// The raw refresh token is never stored; only its hash is
	if _, ok := repo.tokens[pair.RefreshToken]; ok {
		t.Error("raw refresh token must not be stored at rest")
	}
	if len(repo.tokens) != 1 {
		t.Errorf("stored %d tokens, want 1", len(repo.tokens))
	}
}

func TestAuthService_RefreshTokens_Rotation(t *testing.T) {
	repo := newFakeRefreshTokenRepository()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, 1, "", "")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	newPair, userID, err := svc.RefreshTokens(ctx, pair.RefreshToken, "", "")
	if err != nil {
		t.Fatalf("refresh failed: %v", err)
	}
	if userID != 1 {
		t.Errorf("user id = %d, want 1", userID)
	}
	if newPair.RefreshToken == pair.RefreshToken {
		t.Error("rotation must issue a new refresh token")
	}

	// The old token is now revoked and points at its replacement
	old, _ := repo.FindByTokenHash(ctx, svc.hashToken(pair.RefreshToken))
	if !old.IsRevoked() {
		t.Error("rotated token should be revoked")
	}
	if old.ReplacedBy == nil {
		t.Error("rotated token should record its replacement")
	}
}

func TestAuthService_RefreshTokens_ReuseDetection(t *testing.T) {
	repo := newFakeRefreshTokenRepository()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, 1, "", "")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if _, _, err := svc.RefreshTokens(ctx, pair.RefreshToken, "", ""); err != nil {
		t.Fatalf("first refresh failed: %v", err)
	}

	// Presenting the already-rotated token is reuse: the whole family dies
	_, _, err = svc.RefreshTokens(ctx, pair.RefreshToken, "", "")
	if !errors.Is(err, model.ErrRefreshTokenReused) {
		t.Fatalf("error = %v, want %v", err, model.ErrRefreshTokenReused)
	}
	if len(repo.revokeAllCalls) != 1 || repo.revokeAllCalls[0] != 1 {
		t.Errorf("revokeAll calls = %v, want [1]", repo.revokeAllCalls)
	}
}

func TestAuthService_RefreshTokens_Expired(t *testing.T) {
	repo := newFakeRefreshTokenRepository()
	cfg := testAuthConfig()
	cfg.RefreshTokenMaxAge = -1 // already expired on creation
	svc := NewAuthService(repo, cfg)
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, 1, "", "")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	_, _, err = svc.RefreshTokens(ctx, pair.RefreshToken, "", "")
	if !errors.Is(err, model.ErrRefreshTokenExpired) {
		t.Errorf("error = %v, want %v", err, model.ErrRefreshTokenExpired)
	}
}

func TestAuthService_RefreshTokens_Unknown(t *testing.T) {
	svc := NewAuthService(newFakeRefreshTokenRepository(), testAuthConfig())

	_, _, err := svc.RefreshTokens(context.Background(), "never-issued", "", "")
	if !errors.Is(err, model.ErrRefreshTokenNotFound) {
		t.Errorf("error = %v, want %v", err, model.ErrRefreshTokenNotFound)
	}
}

func TestAuthService_RevokeRefreshToken(t *testing.T) {
	repo := newFakeRefreshTokenRepository()
	svc := NewAuthService(repo, testAuthConfig())
	ctx := context.Background()

	pair, err := svc.GenerateTokenPair(ctx, 1, "", "")
	if err != nil {
		t.Fatalf("setup failed: %v", err)
	}

	if err := svc.RevokeRefreshToken(ctx, pair.RefreshToken); err != nil {
		t.Fatalf("revoke failed: %v", err)
	}

	token, _ := repo.FindByTokenHash(ctx, svc.hashToken(pair.RefreshToken))
	if !token.IsRevoked() {
		t.Error("token should be revoked after logout")
	}
}
