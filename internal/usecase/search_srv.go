package usecase

import (
	"context"
	"fmt"
	"strings"

	"product-catalog/internal/data/repository"
	"product-catalog/internal/dto/request"
	"product-catalog/internal/dto/response"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

const (
	maxSearchLimit      = 50
	DefaultSuggestLimit = 5
)

type SearchService interface {
	Search(ctx context.Context, query request.SearchQuery) (*response.SearchResponse, error)
	Suggest(ctx context.Context, term string, limit int) ([]response.Suggestion, error)
	SearchVariants(ctx context.Context, size, color string, inStock bool) ([]response.VariantMatch, error)
}

type searchService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewSearchService(repo *repository.Repository, log *zap.Logger) SearchService {
	return &searchService{
		repo: repo,
		log:  log,
	}
}

// Search runs a filtered, sorted, paginated catalog query. Category filters
// accept either a category id or a category name.
func (s *searchService) Search(ctx context.Context, query request.SearchQuery) (*response.SearchResponse, error) {
	if query.Limit > maxSearchLimit {
		query.Limit = maxSearchLimit
	}

	filter := repository.ProductFilter{
		Keyword:  strings.TrimSpace(query.Keyword),
		MinPrice: query.MinPrice,
		MaxPrice: query.MaxPrice,
		InStock:  query.InStock,
		Size:     query.Size,
		Color:    query.Color,
	}

	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		s.log.Error("Failed to load categories for search", zap.Error(err))
		return nil, fmt.Errorf("search failed")
	}

	if query.Category != "" {
		filter.Category = s.resolveCategory(query.Category, names)
		if filter.Category == "" {
			// Unknown category matches nothing.
			return &response.SearchResponse{
				Products: []response.ProductResponse{},
				Page:     query.Page,
				Pages:    0,
				Total:    0,
				HasMore:  false,
			}, nil
		}
	}

	total, err := s.repo.Product.Count(ctx, filter)
	if err != nil {
		s.log.Error("Failed to count search results", zap.Error(err))
		return nil, fmt.Errorf("search failed")
	}

	skip := utils.CalculateOffset(query.Page, query.Limit)
	products, err := s.repo.Product.Search(ctx, filter, repository.ProductSort(query.SortBy), skip, query.Limit)
	if err != nil {
		s.log.Error("Failed to search products", zap.Error(err))
		return nil, fmt.Errorf("search failed")
	}

	out := make([]response.ProductResponse, 0, len(products))
	for _, p := range products {
		out = append(out, toProductResponse(p, names))
	}

	pages := utils.CalculateTotalPages(total, query.Limit)

	return &response.SearchResponse{
		Products: out,
		Page:     query.Page,
		Pages:    pages,
		Total:    total,
		HasMore:  query.Page < pages,
	}, nil
}

// resolveCategory maps an id or a case-insensitive name to a category id.
func (s *searchService) resolveCategory(value string, names map[string]string) string {
	if _, ok := names[value]; ok {
		return value
	}
	for id, name := range names {
		if strings.EqualFold(name, value) {
			return id
		}
	}
	return ""
}

// Suggest returns name completions for an autocomplete box, capped at limit
// (default 5). Terms shorter than two characters yield an empty list.
func (s *searchService) Suggest(ctx context.Context, term string, limit int) ([]response.Suggestion, error) {
	term = strings.TrimSpace(term)
	if len(term) < 2 {
		return []response.Suggestion{}, nil
	}

	if limit <= 0 {
		limit = DefaultSuggestLimit
	}

	products, err := s.repo.Product.Suggest(ctx, term, limit)
	if err != nil {
		s.log.Error("Failed to load suggestions", zap.Error(err), zap.String("term", term))
		return nil, fmt.Errorf("search failed")
	}

	out := make([]response.Suggestion, 0, len(products))
	for _, p := range products {
		out = append(out, response.Suggestion{ID: p.ID, Name: p.Name})
	}

	return out, nil
}

// SearchVariants flattens matching variants into one row each, carrying the
// parent product's details. Requires at least one of size or color.
func (s *searchService) SearchVariants(ctx context.Context, size, color string, inStock bool) ([]response.VariantMatch, error) {
	if size == "" && color == "" {
		return nil, fmt.Errorf("size or color is required")
	}

	products, err := s.repo.Product.FindByVariant(ctx, size, color, inStock)
	if err != nil {
		s.log.Error("Failed to search variants",
			zap.Error(err), zap.String("size", size), zap.String("color", color))
		return nil, fmt.Errorf("search failed")
	}

	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		s.log.Error("Failed to load categories for variant search", zap.Error(err))
		return nil, fmt.Errorf("search failed")
	}

	matches := []response.VariantMatch{}
	for _, p := range products {
		for _, v := range p.Variants {
			if size != "" && v.Size != size {
				continue
			}
			if color != "" && !strings.EqualFold(v.Color, color) {
				continue
			}
			if inStock && v.Stock <= 0 {
				continue
			}
			matches = append(matches, response.VariantMatch{
				ProductID:    p.ID,
				ProductName:  p.Name,
				ProductImage: p.Image,
				ProductPrice: p.Price,
				Category:     categoryRef(p.Category, names),
				Size:         v.Size,
				Color:        v.Color,
				Stock:        v.Stock,
			})
		}
	}

	return matches, nil
}
