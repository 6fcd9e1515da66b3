package usecase

import (
	"context"
	"fmt"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/data/repository"
	"product-catalog/internal/dto/response"

	"go.uber.org/zap"
)

// DefaultInventoryThreshold is the cutoff for the inventory low-stock listing.
// Unlike the low-stock report it is exclusive and includes zero-stock items.
const DefaultInventoryThreshold = 10

type InventoryService interface {
	List(ctx context.Context) ([]response.InventoryItem, error)
	LowStock(ctx context.Context, threshold int) ([]response.InventoryItem, error)
}

type inventoryService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewInventoryService(repo *repository.Repository, log *zap.Logger) InventoryService {
	return &inventoryService{
		repo: repo,
		log:  log,
	}
}

func (s *inventoryService) List(ctx context.Context) ([]response.InventoryItem, error) {
	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to list inventory", zap.Error(err))
		return nil, fmt.Errorf("failed to list inventory")
	}

	return s.toItems(ctx, products)
}

// LowStock lists products whose base stock or any variant stock is strictly
// below the threshold. Zero-stock items qualify here. Base-stock matches come
// first, then products that qualify through a variant only.
func (s *inventoryService) LowStock(ctx context.Context, threshold int) ([]response.InventoryItem, error) {
	if threshold <= 0 {
		threshold = DefaultInventoryThreshold
	}

	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Failed to scan inventory for low stock", zap.Error(err))
		return nil, fmt.Errorf("failed to list inventory")
	}

	low := make([]*entity.Product, 0, len(products))
	seen := make(map[string]bool)

	for _, p := range products {
		if p.Stock < threshold {
			low = append(low, p)
			seen[p.ID] = true
		}
	}

	for _, p := range products {
		if seen[p.ID] {
			continue
		}
		for _, v := range p.Variants {
			if v.Stock < threshold {
				low = append(low, p)
				break
			}
		}
	}

	return s.toItems(ctx, low)
}

func (s *inventoryService) toItems(ctx context.Context, products []*entity.Product) ([]response.InventoryItem, error) {
	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		s.log.Error("Failed to load categories for inventory", zap.Error(err))
		return nil, fmt.Errorf("failed to list inventory")
	}

	items := make([]response.InventoryItem, 0, len(products))
	for _, p := range products {
		variants := p.Variants
		if variants == nil {
			variants = []entity.Variant{}
		}
		items = append(items, response.InventoryItem{
			ID:       p.ID,
			Name:     p.Name,
			Stock:    p.Stock,
			Variants: variants,
			Category: categoryRef(p.Category, names),
			Price:    p.Price,
		})
	}

	return items, nil
}
