package usecase

import (
	"context"
	"testing"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/dto/request"

	"go.uber.org/zap"
)

func TestSuggestRequiresTwoCharacters(t *testing.T) {
	products := []*entity.Product{product("p1", "Shirt", 1, 1, nil)}
	service := NewSearchService(testRepository(products, nil), zap.NewNop())

	suggestions, err := service.Suggest(context.Background(), "s", 5)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) != 0 {
		t.Errorf("suggestions for 1-char term = %d, want 0", len(suggestions))
	}

	suggestions, err = service.Suggest(context.Background(), "sh", 5)
	if err != nil {
		t.Fatalf("Suggest: %v", err)
	}
	if len(suggestions) != 1 || suggestions[0].Name != "Shirt" {
		t.Errorf("suggestions = %+v, want [Shirt]", suggestions)
	}
}

func TestSearchVariantsRequiresSizeOrColor(t *testing.T) {
	service := NewSearchService(testRepository(nil, nil), zap.NewNop())

	_, err := service.SearchVariants(context.Background(), "", "", false)
	if err == nil {
		t.Fatal("SearchVariants accepted empty criteria")
	}
}

func TestSearchVariantsFlattensMatches(t *testing.T) {
	catID := "c1"
	products := []*entity.Product{
		product("p1", "Shirt", 25, 10, &catID,
			entity.Variant{Size: "M", Color: "Red", Stock: 3},
			entity.Variant{Size: "M", Color: "Blue", Stock: 0},
			entity.Variant{Size: "L", Color: "Red", Stock: 7},
		),
	}
	categories := []*entity.Category{
		{Base: entity.Base{ID: catID}, Name: "Apparel"},
	}
	service := NewSearchService(testRepository(products, categories), zap.NewNop())

	matches, err := service.SearchVariants(context.Background(), "M", "", false)
	if err != nil {
		t.Fatalf("SearchVariants: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("matches = %d, want 2 size-M rows", len(matches))
	}
	if matches[0].ProductName != "Shirt" || matches[0].ProductPrice != 25 {
		t.Errorf("match carries wrong parent details: %+v", matches[0])
	}
	if matches[0].Category == nil || matches[0].Category.Name != "Apparel" {
		t.Errorf("category ref = %+v, want Apparel", matches[0].Category)
	}

	// inStock drops the zero-stock row; color matches case-insensitively
	matches, err = service.SearchVariants(context.Background(), "M", "red", true)
	if err != nil {
		t.Fatalf("SearchVariants: %v", err)
	}
	if len(matches) != 1 || matches[0].Stock != 3 {
		t.Errorf("matches = %+v, want single M/Red row with stock 3", matches)
	}
}

func TestSearchUnknownCategoryMatchesNothing(t *testing.T) {
	products := []*entity.Product{product("p1", "Shirt", 1, 1, nil)}
	service := NewSearchService(testRepository(products, nil), zap.NewNop())

	result, err := service.Search(context.Background(), request.SearchQuery{
		Category: "No Such Category",
		Page:     1,
		Limit:    10,
	})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 0 || len(result.Products) != 0 {
		t.Errorf("result = %+v, want empty", result)
	}
}

func TestSearchPaginationMetadata(t *testing.T) {
	products := []*entity.Product{
		product("p1", "Shirt", 1, 1, nil),
		product("p2", "Pants", 1, 1, nil),
		product("p3", "Mug", 1, 1, nil),
	}
	service := NewSearchService(testRepository(products, nil), zap.NewNop())

	result, err := service.Search(context.Background(), request.SearchQuery{Page: 1, Limit: 2})
	if err != nil {
		t.Fatalf("Search: %v", err)
	}
	if result.Total != 3 {
		t.Errorf("total = %d, want 3", result.Total)
	}
	if result.Pages != 2 {
		t.Errorf("pages = %d, want 2", result.Pages)
	}
	if !result.HasMore {
		t.Error("hasMore = false, want true on page 1 of 2")
	}
}
