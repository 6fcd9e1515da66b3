package usecase

import (
	"context"
	"testing"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/dto/request"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

func TestEnsureAdminUserIsIdempotent(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, zap.NewNop())

	admin := utils.AdminConfig{Email: "Admin@Example.com", Password: "admin-secret"}

	if err := service.EnsureAdminUser(context.Background(), admin); err != nil {
		t.Fatalf("EnsureAdminUser: %v", err)
	}

	created, err := repo.FindByEmail(context.Background(), "admin@example.com")
	if err != nil {
		t.Fatalf("FindByEmail: %v", err)
	}
	if created == nil {
		t.Fatal("admin account not created")
	}
	if created.Role != entity.RoleAdmin {
		t.Errorf("role = %q, want admin", created.Role)
	}
	if !utils.CheckPasswordHash("admin-secret", created.PasswordHash) {
		t.Error("admin password not hashed correctly")
	}

	// Second run must not create a duplicate
	if err := service.EnsureAdminUser(context.Background(), admin); err != nil {
		t.Fatalf("second EnsureAdminUser: %v", err)
	}
	all, _ := repo.FindAll(context.Background())
	if len(all) != 1 {
		t.Errorf("accounts = %d, want 1", len(all))
	}
}

func TestEnsureAdminUserSkipsWhenUnconfigured(t *testing.T) {
	repo := newFakeUserRepo()
	service := NewUserService(repo, zap.NewNop())

	if err := service.EnsureAdminUser(context.Background(), utils.AdminConfig{}); err != nil {
		t.Fatalf("EnsureAdminUser: %v", err)
	}
	all, _ := repo.FindAll(context.Background())
	if len(all) != 0 {
		t.Errorf("accounts = %d, want 0", len(all))
	}
}

func TestUpdateProfilePartial(t *testing.T) {
	user := testUser(entity.RoleUser)
	user.Email = "before@example.com"
	user.PhoneNumber = "08123456789"
	repo := newFakeUserRepo(user)
	service := NewUserService(repo, zap.NewNop())

	profile, err := service.UpdateProfile(context.Background(), user.ID, &request.UpdateProfileRequest{
		Name: "New Name",
		Address: &request.AddressRequest{
			Street: "Main St 1",
			City:   "Springfield",
		},
	})
	if err != nil {
		t.Fatalf("UpdateProfile: %v", err)
	}

	if profile.Name != "New Name" {
		t.Errorf("name = %q, want New Name", profile.Name)
	}
	// Untouched fields keep their values
	if profile.Email != "before@example.com" {
		t.Errorf("email = %q, want unchanged", profile.Email)
	}
	if profile.PhoneNumber != "08123456789" {
		t.Errorf("phoneNumber = %q, want unchanged", profile.PhoneNumber)
	}
	if profile.Address == nil || profile.Address.City != "Springfield" {
		t.Errorf("address = %+v, want Springfield", profile.Address)
	}
}

func TestUpdateProfileRejectsTakenEmail(t *testing.T) {
	first := testUser(entity.RoleUser)
	first.Email = "first@example.com"
	second := testUser(entity.RoleUser)
	second.Email = "second@example.com"
	repo := newFakeUserRepo(first, second)
	service := NewUserService(repo, zap.NewNop())

	_, err := service.UpdateProfile(context.Background(), first.ID, &request.UpdateProfileRequest{
		Email: "second@example.com",
	})
	if err == nil || err.Error() != "email already registered" {
		t.Errorf("error = %v, want email already registered", err)
	}
}
