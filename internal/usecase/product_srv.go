package usecase

import (
	"context"
	"fmt"
	"time"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/data/repository"
	"product-catalog/internal/dto/request"
	"product-catalog/internal/dto/response"
	"product-catalog/pkg/cache"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

type ProductService interface {
	List(ctx context.Context) ([]response.ProductResponse, error)
	Get(ctx context.Context, id string) (*response.ProductResponse, error)
	ListByCategory(ctx context.Context, categoryID string) ([]response.ProductResponse, error)
	Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error)
	Update(ctx context.Context, id string, req *request.ProductRequest) (*response.ProductResponse, error)
	Delete(ctx context.Context, id string) error
}

type productService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewProductService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) ProductService {
	return &productService{
		repo:  repo,
		cache: c,
		log:   log,
	}
}

func (s *productService) List(ctx context.Context) ([]response.ProductResponse, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list products", zap.Error(err))
		return nil, fmt.Errorf("failed to list products")
	}

	return s.toResponses(ctx, products)
}

func (s *productService) Get(ctx context.Context, id string) (*response.ProductResponse, error) {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to get product", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("failed to get product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		s.log.Error("Failed to load categories", zap.Error(err))
		return nil, fmt.Errorf("failed to get product")
	}

	resp := toProductResponse(product, names)
	return &resp, nil
}

func (s *productService) ListByCategory(ctx context.Context, categoryID string) ([]response.ProductResponse, error) {
	category, err := s.repo.Category.FindByID(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to list products")
	}
	if category == nil {
		return nil, fmt.Errorf("category not found")
	}

	products, err := s.repo.Product.FindByCategory(ctx, categoryID)
	if err != nil {
		s.log.Error("Failed to list products by category",
			zap.Error(err), zap.String("category_id", categoryID))
		return nil, fmt.Errorf("failed to list products")
	}

	return s.toResponses(ctx, products)
}

func (s *productService) Create(ctx context.Context, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	var categoryID *string
	if req.Category != "" {
		category, err := s.repo.Category.FindByID(ctx, req.Category)
		if err != nil {
			s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", req.Category))
			return nil, fmt.Errorf("failed to create product")
		}
		if category == nil {
			return nil, fmt.Errorf("category not found")
		}
		categoryID = &req.Category
	}

	now := time.Now()
	product := &entity.Product{
		Base: entity.Base{
			ID:        utils.GenerateUUIDString(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Image:       req.Image,
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		Category:    categoryID,
		Stock:       *req.Stock,
		Variants:    toVariants(req.Variants),
	}

	if err := s.repo.Product.Create(ctx, product); err != nil {
		s.log.Error("Failed to create product", zap.Error(err), zap.String("name", req.Name))
		return nil, fmt.Errorf("failed to create product")
	}

	s.invalidateReports(ctx)
	s.log.Info("Product created", zap.String("product_id", product.ID), zap.String("name", product.Name))

	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		names = map[string]string{}
	}
	resp := toProductResponse(product, names)
	return &resp, nil
}

func (s *productService) Update(ctx context.Context, id string, req *request.ProductRequest) (*response.ProductResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Product validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load product for update", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("failed to update product")
	}
	if product == nil {
		return nil, fmt.Errorf("product not found")
	}

	var categoryID *string
	if req.Category != "" {
		category, err := s.repo.Category.FindByID(ctx, req.Category)
		if err != nil {
			s.log.Error("Failed to check category", zap.Error(err), zap.String("category_id", req.Category))
			return nil, fmt.Errorf("failed to update product")
		}
		if category == nil {
			return nil, fmt.Errorf("category not found")
		}
		categoryID = &req.Category
	}

	product.Name = req.Name
	product.Description = req.Description
	product.Price = *req.Price
	product.Stock = *req.Stock
	product.Category = categoryID
	product.Variants = toVariants(req.Variants)
	if req.Image != "" {
		product.Image = req.Image
	}
	product.UpdatedAt = time.Now()

	if err := s.repo.Product.Update(ctx, product); err != nil {
		s.log.Error("Failed to update product", zap.Error(err), zap.String("product_id", id))
		return nil, fmt.Errorf("failed to update product")
	}

	s.invalidateReports(ctx)
	s.log.Info("Product updated", zap.String("product_id", id))

	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		names = map[string]string{}
	}
	resp := toProductResponse(product, names)
	return &resp, nil
}

func (s *productService) Delete(ctx context.Context, id string) error {
	product, err := s.repo.Product.FindByID(ctx, id)
	if err != nil {
		s.log.Error("Failed to load product for delete", zap.Error(err), zap.String("product_id", id))
		return fmt.Errorf("failed to delete product")
	}
	if product == nil {
		return fmt.Errorf("product not found")
	}

	if err := s.repo.Product.Delete(ctx, id); err != nil {
		s.log.Error("Failed to delete product", zap.Error(err), zap.String("product_id", id))
		return fmt.Errorf("failed to delete product")
	}

	s.invalidateReports(ctx)
	s.log.Info("Product deleted", zap.String("product_id", id))
	return nil
}

func (s *productService) toResponses(ctx context.Context, products []*entity.Product) ([]response.ProductResponse, error) {
	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		s.log.Error("Failed to load categories", zap.Error(err))
		return nil, fmt.Errorf("failed to list products")
	}

	out := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p, names))
	}

	return out, nil
}

func (s *productService) invalidateReports(ctx context.Context) {
	s.cache.Delete(ctx, reportCacheKeys...)
}

func toVariants(reqs []request.VariantRequest) []entity.Variant {
	variants := make([]entity.Variant, 0, len(reqs))
	for _, v := range reqs {
		variants = append(variants, entity.Variant{
			Size:  v.Size,
			Color: v.Color,
			Stock: v.Stock,
		})
	}
	return variants
}

// loadCategoryNames fetches the id→name mapping used to populate category
// references on product payloads.
func loadCategoryNames(ctx context.Context, categories repository.CategoryRepository) (map[string]string, error) {
	all, err := categories.FindAll(ctx)
	if err != nil {
		return nil, err
	}

	names := make(map[string]string, len(all))
	for _, c := range all {
		names[c.ID] = c.Name
	}
	return names, nil
}

func categoryRef(id *string, names map[string]string) *response.CategoryRef {
	if id == nil {
		return nil
	}
	return &response.CategoryRef{ID: *id, Name: names[*id]}
}

func toProductResponse(p *entity.Product, names map[string]string) response.ProductResponse {
	return response.ProductResponse{
		ID:          p.ID,
		Image:       p.Image,
		Name:        p.Name,
		Description: p.Description,
		Price:       p.Price,
		Category:    categoryRef(p.Category, names),
		Stock:       p.Stock,
		Variants:    p.Variants,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}
}
