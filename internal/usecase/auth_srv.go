package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"strings"
	"time"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/data/repository"
	"product-catalog/internal/dto/request"
	"product-catalog/internal/dto/response"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

// AuthState is the terminal state of the per-request authentication machine.
type AuthState int

const (
	// StateAdmit lets the request proceed with the resolved identity.
	StateAdmit AuthState = iota
	// StateAdmitWithRotation short-circuits the request: the caller receives
	// a fresh token pair instead of the originally requested resource and
	// must retry with the new access token.
	StateAdmitWithRotation
	// StateReject denies the request with a named reason.
	StateReject
)

type RejectReason string

const (
	ReasonTokenMissing     RejectReason = "TOKEN_MISSING"
	ReasonInvalidToken     RejectReason = "INVALID_TOKEN"
	ReasonSessionExpired   RejectReason = "SESSION_EXPIRED"
	ReasonUserNotFound     RejectReason = "USER_NOT_FOUND"
	ReasonAccountInactive  RejectReason = "ACCOUNT_INACTIVE"
	ReasonInsufficientRole RejectReason = "INSUFFICIENT_PERMISSIONS"
	ReasonGeneralAuthError RejectReason = "GENERAL_AUTH_ERROR"
)

// ReasonMessage maps a rejection reason to its client-facing message.
// Internal error detail never reaches the caller.
func ReasonMessage(reason RejectReason) string {
	switch reason {
	case ReasonTokenMissing:
		return "No access token, authorization denied"
	case ReasonInvalidToken:
		return "Invalid access token"
	case ReasonSessionExpired:
		return "Session expired. Please login again."
	case ReasonUserNotFound:
		return "User not found"
	case ReasonAccountInactive:
		return "Account is inactive"
	case ReasonInsufficientRole:
		return "Insufficient permissions"
	default:
		return "Authentication failed"
	}
}

// AuthResult is the tagged outcome of Authenticate, consumed by the auth
// middleware: exactly one of the three states, with User set on Admit and
// Tokens set on AdmitWithRotation.
type AuthResult struct {
	State  AuthState
	User   *entity.User
	Tokens *response.TokenPair
	Reason RejectReason
}

type AuthService interface {
	Register(ctx context.Context, req *request.RegisterRequest) (*response.UserSummary, error)
	Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error)
	Authenticate(ctx context.Context, accessToken, refreshToken string) AuthResult
}

type authService struct {
	users  repository.UserRepository
	tokens TokenService
	log    *zap.Logger
}

func NewAuthService(users repository.UserRepository, tokens TokenService, log *zap.Logger) AuthService {
	return &authService{
		users:  users,
		tokens: tokens,
		log:    log,
	}
}

func (s *authService) Register(ctx context.Context, req *request.RegisterRequest) (*response.UserSummary, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Register validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to check email")
	}
	if existing != nil {
		return nil, fmt.Errorf("email already registered")
	}

	hashedPassword, err := utils.HashPassword(req.Password)
	if err != nil {
		s.log.Error("Failed to hash password", zap.Error(err))
		return nil, fmt.Errorf("failed to process password")
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         req.Name,
		Email:        email,
		PasswordHash: hashedPassword,
		Role:         entity.RoleUser,
		IsActive:     true,
		ProfileImage: "default-avatar.jpg",
		PhoneNumber:  req.PhoneNumber,
		LastLogin:    &now,
	}

	if err := s.users.Create(ctx, user); err != nil {
		s.log.Error("Failed to create user", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to create account")
	}

	s.log.Info("User registered",
		zap.String("user_id", user.ID),
		zap.String("email", user.Email))

	return &response.UserSummary{
		ID:          user.ID,
		Name:        user.Name,
		Email:       user.Email,
		Role:        string(user.Role),
		PhoneNumber: user.PhoneNumber,
	}, nil
}

func (s *authService) Login(ctx context.Context, req *request.LoginRequest) (*response.LoginResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Login validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	email := strings.ToLower(strings.TrimSpace(req.Email))

	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		s.log.Error("Failed to find user by email", zap.Error(err), zap.String("email", email))
		return nil, fmt.Errorf("failed to find user")
	}

	// Unknown email and wrong password are indistinguishable to the caller.
	if user == nil {
		s.log.Warn("User not found for login", zap.String("email", email))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !utils.CheckPasswordHash(req.Password, user.PasswordHash) {
		s.log.Warn("Invalid password", zap.String("user_id", user.ID))
		return nil, fmt.Errorf("invalid credentials")
	}

	if !user.IsActive {
		s.log.Warn("Inactive user tried to login",
			zap.String("user_id", user.ID),
			zap.Bool("inactive_account", true))
		return nil, fmt.Errorf("account is deactivated")
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return nil, fmt.Errorf("failed to create session")
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		s.log.Error("Failed to update last login", zap.Error(err), zap.String("user_id", user.ID))
	}

	s.log.Info("User logged in", zap.String("user_id", user.ID))

	return &response.LoginResponse{
		User: response.UserSummary{
			ID:          user.ID,
			Name:        user.Name,
			Email:       user.Email,
			Role:        string(user.Role),
			PhoneNumber: user.PhoneNumber,
		},
		Tokens: *pair,
	}, nil
}

// Authenticate runs the per-request session state machine. Every branch is
// terminal; no raw token or database error escapes as anything other than a
// named rejection.
func (s *authService) Authenticate(ctx context.Context, accessToken, refreshToken string) AuthResult {
	if accessToken == "" {
		return reject(ReasonTokenMissing)
	}

	claims, err := s.tokens.VerifyAccessToken(accessToken)
	if err != nil {
		if err == ErrTokenExpired && refreshToken != "" {
			return s.refresh(ctx, refreshToken)
		}
		s.log.Warn("Access token rejected", zap.Error(err))
		return reject(ReasonInvalidToken)
	}

	user, err := s.users.FindByID(ctx, claims.UserID)
	if err != nil {
		s.log.Error("User lookup failed during authentication",
			zap.Error(err), zap.String("user_id", claims.UserID))
		return reject(ReasonGeneralAuthError)
	}
	if user == nil {
		return reject(ReasonUserNotFound)
	}
	if !user.IsActive {
		// Flagged distinctly: a still-valid token used for a deactivated
		// account may indicate compromise.
		s.log.Error("Inactive account access attempt",
			zap.String("user_id", user.ID),
			zap.String("email", user.Email),
			zap.Bool("inactive_account", true))
		return reject(ReasonAccountInactive)
	}

	// Fire-and-forget: the request never waits on, or fails because of,
	// the last-login write.
	go func(id string) {
		bgCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := s.users.UpdateLastLogin(bgCtx, id, time.Now()); err != nil {
			s.log.Error("Failed to update last login", zap.Error(err), zap.String("user_id", id))
		}
	}(user.ID)

	return AuthResult{State: StateAdmit, User: user}
}

// refresh handles the expired-access-token exchange. On success the old
// refresh token is rotated out and the caller gets a brand new pair.
func (s *authService) refresh(ctx context.Context, refreshToken string) AuthResult {
	userID, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		s.log.Warn("Refresh token rejected", zap.Error(err))
		return reject(ReasonSessionExpired)
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("User lookup failed during refresh",
			zap.Error(err), zap.String("user_id", userID))
		return reject(ReasonGeneralAuthError)
	}
	if user == nil {
		return reject(ReasonUserNotFound)
	}
	if !user.IsActive {
		s.log.Error("Inactive account token refresh attempt",
			zap.String("user_id", user.ID),
			zap.String("email", user.Email),
			zap.Bool("inactive_account", true))
		return reject(ReasonAccountInactive)
	}

	// Single-use rotation: only the most recently issued refresh token is
	// honored. A token that was already exchanged no longer matches.
	if user.RefreshTokenHash == "" || hashRefreshToken(refreshToken) != user.RefreshTokenHash {
		s.log.Warn("Rotated or unknown refresh token presented", zap.String("user_id", user.ID))
		return reject(ReasonSessionExpired)
	}

	pair, err := s.issueTokenPair(ctx, user)
	if err != nil {
		return reject(ReasonGeneralAuthError)
	}

	if err := s.users.UpdateLastLogin(ctx, user.ID, time.Now()); err != nil {
		s.log.Error("Failed to update last login on refresh",
			zap.Error(err), zap.String("user_id", user.ID))
	}

	s.log.Info("Token pair rotated", zap.String("user_id", user.ID))

	return AuthResult{
		State:  StateAdmitWithRotation,
		User:   user,
		Tokens: pair,
	}
}

// issueTokenPair mints a new access+refresh pair and persists the refresh
// hash, invalidating any previously issued refresh token.
func (s *authService) issueTokenPair(ctx context.Context, user *entity.User) (*response.TokenPair, error) {
	access, err := s.tokens.IssueAccessToken(user)
	if err != nil {
		s.log.Error("Failed to issue access token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, err
	}

	refresh, err := s.tokens.IssueRefreshToken(user)
	if err != nil {
		s.log.Error("Failed to issue refresh token", zap.Error(err), zap.String("user_id", user.ID))
		return nil, err
	}

	if err := s.users.UpdateRefreshTokenHash(ctx, user.ID, hashRefreshToken(refresh)); err != nil {
		return nil, err
	}

	return &response.TokenPair{AccessToken: access, RefreshToken: refresh}, nil
}

func reject(reason RejectReason) AuthResult {
	return AuthResult{State: StateReject, Reason: reason}
}

// hashRefreshToken returns the SHA-256 hex digest stored server-side; the
// raw token itself is never persisted.
func hashRefreshToken(raw string) string {
	sum := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(sum[:])
}
