package usecase

import (
	"context"
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

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error)
	ListUsers(ctx context.Context) ([]response.AdminUserResponse, error)
	DeleteUser(ctx context.Context, id string) error
	EnsureAdminUser(ctx context.Context, admin utils.AdminConfig) error
}

type userService struct {
	users repository.UserRepository
	log   *zap.Logger
}

func NewUserService(users repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		users: users,
		log:   log,
	}
}

func (s *userService) GetProfile(ctx context.Context, userID string) (*response.ProfileResponse, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return profileResponse(user), nil
}

func (s *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.ProfileResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Profile update validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		s.log.Error("Failed to load user for update", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to load profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	// Partial update: only provided fields change
	if req.Name != "" {
		user.Name = req.Name
	}
	if req.Email != "" {
		email := strings.ToLower(strings.TrimSpace(req.Email))
		if email != user.Email {
			existing, err := s.users.FindByEmail(ctx, email)
			if err != nil {
				s.log.Error("Failed to check email", zap.Error(err), zap.String("email", email))
				return nil, fmt.Errorf("failed to check email")
			}
			if existing != nil {
				return nil, fmt.Errorf("email already registered")
			}
			user.Email = email
		}
	}
	if req.PhoneNumber != "" {
		user.PhoneNumber = req.PhoneNumber
	}
	if req.Address != nil {
		user.Address = &entity.Address{
			Street:  req.Address.Street,
			City:    req.Address.City,
			State:   req.Address.State,
			ZipCode: req.Address.ZipCode,
			Country: req.Address.Country,
		}
	}
	if req.ProfileImage != "" {
		user.ProfileImage = req.ProfileImage
	}
	user.UpdatedAt = time.Now()

	if err := s.users.Update(ctx, user); err != nil {
		s.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update profile")
	}

	s.log.Info("Profile updated", zap.String("user_id", userID))

	return profileResponse(user), nil
}

func (s *userService) ListUsers(ctx context.Context) ([]response.AdminUserResponse, error) {
	users, err := s.users.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list users", zap.Error(err))
		return nil, fmt.Errorf("failed to list users")
	}

	out := make([]response.AdminUserResponse, 0, len(users))
	for _, u := range users {
		item := response.AdminUserResponse{
			ID:          u.ID,
			Name:        u.Name,
			Email:       u.Email,
			Role:        string(u.Role),
			IsActive:    u.IsActive,
			PhoneNumber: u.PhoneNumber,
		}
		if u.LastLogin != nil {
			item.LastLogin = u.LastLogin.Format(time.RFC3339)
		}
		out = append(out, item)
	}

	return out, nil
}

func (s *userService) DeleteUser(ctx context.Context, id string) error {
	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load user for delete", zap.Error(err), zap.String("user_id", id))
		return fmt.Errorf("failed to delete user")
	}
	if user == nil {
		return fmt.Errorf("user not found")
	}

	if err := s.users.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete user", zap.Error(err), zap.String("user_id", id))
		return fmt.Errorf("failed to delete user")
	}

	return nil
}

// EnsureAdminUser creates the bootstrap admin account at startup when the
// configured email is not registered yet. Idempotent.
func (s *userService) EnsureAdminUser(ctx context.Context, admin utils.AdminConfig) error {
	if admin.Email == "" || admin.Password == "" {
		s.log.Debug("Admin bootstrap skipped, credentials not configured")
		return nil
	}

	email := strings.ToLower(strings.TrimSpace(admin.Email))

	existing, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return fmt.Errorf("check admin account: %w", err)
	}
	if existing != nil {
		return nil
	}

	hashed, err := utils.HashPassword(admin.Password)
	if err != nil {
		return fmt.Errorf("hash admin password: %w", err)
	}

	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:         "Admin",
		Email:        email,
		PasswordHash: hashed,
		Role:         entity.RoleAdmin,
		IsActive:     true,
		ProfileImage: "default-avatar.jpg",
	}

	if err := s.users.Create(ctx, user); err != nil {
		return fmt.Errorf("create admin account: %w", err)
	}

	s.log.Info("Admin account created", zap.String("email", email))
	return nil
}

func profileResponse(user *entity.User) *response.ProfileResponse {
	return &response.ProfileResponse{
		ID:           user.ID,
		Name:         user.Name,
		Email:        user.Email,
		Role:         string(user.Role),
		ProfileImage: user.ProfileImage,
		PhoneNumber:  user.PhoneNumber,
		Address:      user.Address,
		FullAddress:  user.FullAddress(),
	}
}
