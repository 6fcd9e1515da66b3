package usecase

import (
	"errors"
	"fmt"
	"time"

	"product-catalog/internal/data/entity"
	"product-catalog/pkg/utils"

	"github.com/golang-jwt/jwt/v5"
)

// ErrTokenExpired marks an access token that failed verification only
// because its expiry passed. The auth flow treats this case specially: an
// expired access token plus a refresh token triggers the rotation path.
var ErrTokenExpired = errors.New("token expired")

// AccessClaims is the verified content of an access token.
type AccessClaims struct {
	UserID string
	Role   string
}

// TokenService mints and verifies the two token families. Access and refresh
// tokens are signed with distinct secrets so compromise of one key does not
// allow forging the other type.
type TokenService interface {
	IssueAccessToken(user *entity.User) (string, error)
	IssueRefreshToken(user *entity.User) (string, error)
	VerifyAccessToken(raw string) (*AccessClaims, error)
	VerifyRefreshToken(raw string) (string, error)
}

type tokenService struct {
	accessSecret  []byte
	refreshSecret []byte
	accessExpiry  time.Duration
	refreshExpiry time.Duration
}

func NewTokenService(config utils.JWTConfig) TokenService {
	return &tokenService{
		accessSecret:  []byte(config.AccessSecret),
		refreshSecret: []byte(config.RefreshSecret),
		accessExpiry:  config.AccessExpiry,
		refreshExpiry: config.RefreshExpiry,
	}
}

// IssueAccessToken signs a short-lived token carrying identity and role.
func (ts *tokenService) IssueAccessToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":  user.ID,
		"role": string(user.Role),
		"exp":  now.Add(ts.accessExpiry).Unix(),
		"iat":  now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.accessSecret)
	if err != nil {
		return "", fmt.Errorf("sign access token: %w", err)
	}

	return signed, nil
}

// IssueRefreshToken signs a long-lived token carrying only the subject id.
// Role is deliberately omitted: a refresh token must not carry authorization
// claims, it is only exchangeable for a new pair.
func (ts *tokenService) IssueRefreshToken(user *entity.User) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub": user.ID,
		"exp": now.Add(ts.refreshExpiry).Unix(),
		"iat": now.Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(ts.refreshSecret)
	if err != nil {
		return "", fmt.Errorf("sign refresh token: %w", err)
	}

	return signed, nil
}

func (ts *tokenService) VerifyAccessToken(raw string) (*AccessClaims, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.accessSecret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, fmt.Errorf("parse access token: %w", err)
	}
	if !token.Valid {
		return nil, errors.New("invalid access token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid access token claims")
	}

	sub, _ := claims["sub"].(string)
	role, _ := claims["role"].(string)
	if sub == "" {
		return nil, errors.New("access token missing subject")
	}

	return &AccessClaims{UserID: sub, Role: role}, nil
}

func (ts *tokenService) VerifyRefreshToken(raw string) (string, error) {
	token, err := jwt.Parse(raw, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return ts.refreshSecret, nil
	})
	if err != nil {
		return "", fmt.Errorf("parse refresh token: %w", err)
	}
	if !token.Valid {
		return "", errors.New("invalid refresh token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", errors.New("invalid refresh token claims")
	}

	sub, _ := claims["sub"].(string)
	if sub == "" {
		return "", errors.New("refresh token missing subject")
	}

	return sub, nil
}
