package usecase

import (
	"errors"
	"testing"
	"time"

	"product-catalog/internal/data/entity"
	"product-catalog/pkg/utils"
)

func testTokenService(accessExpiry, refreshExpiry time.Duration) TokenService {
	return NewTokenService(utils.JWTConfig{
		AccessSecret:  "access-secret-for-tests",
		RefreshSecret: "refresh-secret-for-tests",
		AccessExpiry:  accessExpiry,
		RefreshExpiry: refreshExpiry,
	})
}

func testUser(role entity.UserRole) *entity.User {
	return &entity.User{
		Base:     entity.Base{ID: utils.GenerateUUIDString()},
		Name:     "Test User",
		Email:    "test@example.com",
		Role:     role,
		IsActive: true,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	ts := testTokenService(time.Minute, time.Hour)
	user := testUser(entity.RoleAdmin)

	raw, err := ts.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	claims, err := ts.VerifyAccessToken(raw)
	if err != nil {
		t.Fatalf("VerifyAccessToken: %v", err)
	}
	if claims.UserID != user.ID {
		t.Errorf("UserID = %q, want %q", claims.UserID, user.ID)
	}
	if claims.Role != "admin" {
		t.Errorf("Role = %q, want %q", claims.Role, "admin")
	}
}

func TestExpiredAccessTokenReturnsSentinel(t *testing.T) {
	ts := testTokenService(-time.Minute, time.Hour)
	raw, err := ts.IssueAccessToken(testUser(entity.RoleUser))
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}

	_, err = ts.VerifyAccessToken(raw)
	if !errors.Is(err, ErrTokenExpired) {
		t.Errorf("VerifyAccessToken error = %v, want ErrTokenExpired", err)
	}
}

func TestMalformedAccessTokenIsNotExpired(t *testing.T) {
	ts := testTokenService(time.Minute, time.Hour)

	_, err := ts.VerifyAccessToken("not-a-jwt")
	if err == nil {
		t.Fatal("VerifyAccessToken accepted garbage")
	}
	if errors.Is(err, ErrTokenExpired) {
		t.Error("garbage token reported as expired")
	}
}

func TestTokenFamiliesUseDistinctSecrets(t *testing.T) {
	ts := testTokenService(time.Minute, time.Hour)
	user := testUser(entity.RoleUser)

	refresh, err := ts.IssueRefreshToken(user)
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	// A refresh token must not pass as an access token
	if _, err := ts.VerifyAccessToken(refresh); err == nil {
		t.Error("refresh token verified as access token")
	}

	access, err := ts.IssueAccessToken(user)
	if err != nil {
		t.Fatalf("IssueAccessToken: %v", err)
	}
	if _, err := ts.VerifyRefreshToken(access); err == nil {
		t.Error("access token verified as refresh token")
	}
}

func TestRefreshTokenCarriesSubject(t *testing.T) {
	ts := testTokenService(time.Minute, time.Hour)
	user := testUser(entity.RoleUser)

	raw, err := ts.IssueRefreshToken(user)
	if err != nil {
		t.Fatalf("IssueRefreshToken: %v", err)
	}

	sub, err := ts.VerifyRefreshToken(raw)
	if err != nil {
		t.Fatalf("VerifyRefreshToken: %v", err)
	}
	if sub != user.ID {
		t.Errorf("subject = %q, want %q", sub, user.ID)
	}
}
