package usecase

import (
	"context"
	"testing"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/dto/request"

	"go.uber.org/zap"
)

func TestCategoryCreateRejectsDuplicateName(t *testing.T) {
	repo := testRepository(nil, nil)
	service := NewCategoryService(repo, nil, zap.NewNop())

	if _, err := service.Create(context.Background(), &request.CategoryRequest{Name: "Apparel"}); err != nil {
		t.Fatalf("Create: %v", err)
	}

	_, err := service.Create(context.Background(), &request.CategoryRequest{Name: "Apparel"})
	if err == nil || err.Error() != "category name already exists" {
		t.Errorf("duplicate create error = %v, want category name already exists", err)
	}
}

func TestCategoryDeleteUnknown(t *testing.T) {
	service := NewCategoryService(testRepository(nil, nil), nil, zap.NewNop())

	err := service.Delete(context.Background(), "missing-id")
	if err == nil || err.Error() != "category not found" {
		t.Errorf("error = %v, want category not found", err)
	}
}

func TestCategoryUpdateKeepingOwnNameIsAllowed(t *testing.T) {
	cat := &entity.Category{Base: entity.Base{ID: "c1"}, Name: "Apparel"}
	repo := testRepository(nil, []*entity.Category{cat})
	service := NewCategoryService(repo, nil, zap.NewNop())

	// Same name, new description: the duplicate check must not trip on itself
	updated, err := service.Update(context.Background(), "c1", &request.CategoryRequest{
		Name:        "Apparel",
		Description: "Clothing and accessories",
	})
	if err != nil {
		t.Fatalf("Update: %v", err)
	}
	if updated.Description != "Clothing and accessories" {
		t.Errorf("description = %q, not updated", updated.Description)
	}
}
