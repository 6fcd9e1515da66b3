package usecase

import (
	"context"
	"fmt"
	"time"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/data/repository"
	"product-catalog/internal/dto/request"
	"product-catalog/pkg/cache"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

type CategoryService interface {
	List(ctx context.Context) ([]*entity.Category, error)
	Get(ctx context.Context, id string) (*entity.Category, error)
	Create(ctx context.Context, req *request.CategoryRequest) (*entity.Category, error)
	Update(ctx context.Context, id string, req *request.CategoryRequest) (*entity.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewCategoryService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) CategoryService {
	return &categoryService{
		repo:  repo,
		cache: c,
		log:   log,
	}
}

func (s *categoryService) List(ctx context.Context) ([]*entity.Category, error) {
	categories, err := s.repo.Category.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list categories")
	}

	return categories, nil
}

func (s *categoryService) Get(ctx context.Context, id string) (*entity.Category, error) {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get category", zap.Error(err), zap.String("category_id", id))
		return nil, fmt.Errorf("failed to get category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	return category, nil
}

func (s *categoryService) Create(ctx context.Context, req *request.CategoryRequest) (*entity.Category, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	existing, err := s.repo.Category.FindByName(ctx, req.Name)
	if err != nil {
		s.log.Error("Failed to check category name", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category")
	}
	if existing != nil {
		return nil, fmt.Errorf("category name already exists")
	}

	now := time.Now()
	category := &entity.Category{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:        req.Name,
		Description: req.Description,
	}

	if err := s.repo.Category.Create(ctx, category); err != nil {
		s.log.Error("Failed to create category", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create category")
	}

	s.log.Info("Category created", zap.String("category_id", category.ID), zap.String("name", category.Name))
	return category, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *request.CategoryRequest) (*entity.Category, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Category validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load category for update", zap.Error(err), zap.String("category_id", id))
		return nil, fmt.Errorf("failed to update category")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	if req.Name != category.Name {
		existing, err := s.repo.Category.FindByName(ctx, req.Name)
		if err != nil {
			s.log.Error("Failed to check category name", zap.Error(err), zap.String("name", req.Name))
			return nil, fmt.Errorf("failed to update category")
		}
		if existing != nil {
			return nil, fmt.Errorf("category name already exists")
		}
	}

	category.Name = req.Name
	category.Description = req.Description
	category.UpdatedAt = time.Now()

	if err := s.repo.Category.Update(ctx, category); err != nil {
		s.log.Error("Failed to update category", zap.Error(err), zap.String("category_id", id))
		return nil, fmt.Errorf("failed to update category")
	}

	s.invalidateReports(ctx)
	s.log.Info("Category updated", zap.String("category_id", id))
	return category, nil
}

// Delete removes a category after nulling out the reference on every product
// pointing at it.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	category, err := s.repo.Category.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load category for delete", zap.Error(err), zap.String("category_id", id))
		return fmt.Errorf("failed to delete category")
	}
	if category == nil {
		return fmt.Errorf("category not found")
	}

	if err := s.repo.Product.ClearCategory(ctx, id); err != nil {
		s.log.Error("Failed to clear category from products", zap.Error(err), zap.String("category_id", id))
		return fmt.Errorf("failed to delete category")
	}

	if err := s.repo.Category.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete category", zap.Error(err), zap.String("category_id", id))
		return fmt.Errorf("failed to delete category")
	}

	s.invalidateReports(ctx)
	s.log.Info("Category deleted", zap.String("category_id", id), zap.String("name", category.Name))
	return nil
}

func (s *categoryService) invalidateReports(ctx context.Context) {
	s.cache.Delete(ctx, reportCacheKeys...)
}
