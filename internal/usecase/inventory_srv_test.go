package usecase

import (
	"context"
	"testing"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/data/repository"

	"go.uber.org/zap"
)

// fakeProductRepo serves a fixed product list; the filter-specific queries
// apply the same predicates the Mongo implementation would.
type fakeProductRepo struct {
	products []*entity.Product
}

func (f *fakeProductRepo) Create(ctx context.Context, p *entity.Product) error {
	f.products = append(f.products, p)
	return nil
}

func (f *fakeProductRepo) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.ID == id {
			return p, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.Category != nil && *p.Category == categoryID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Search(ctx context.Context, filter repository.ProductFilter, sort repository.ProductSort, skip, limit int) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) Count(ctx context.Context, filter repository.ProductFilter) (int64, error) {
	return int64(len(f.products)), nil
}

func (f *fakeProductRepo) Suggest(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindByVariant(ctx context.Context, size, color string, inStock bool) ([]*entity.Product, error) {
	return f.products, nil
}

func (f *fakeProductRepo) FindLowBaseStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		if p.Stock > 0 && p.Stock <= threshold {
			out = append(out, p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) FindLowVariantStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	var out []*entity.Product
	for _, p := range f.products {
		for _, v := range p.Variants {
			if v.Stock > 0 && v.Stock <= threshold {
				out = append(out, p)
				break
			}
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(ctx context.Context, p *entity.Product) error { return nil }

func (f *fakeProductRepo) ClearCategory(ctx context.Context, categoryID string) error { return nil }

func (f *fakeProductRepo) Delete(ctx context.Context, id string) error { return nil }

type fakeCategoryRepo struct {
	categories []*entity.Category
}

func (f *fakeCategoryRepo) Create(ctx context.Context, c *entity.Category) error {
	f.categories = append(f.categories, c)
	return nil
}

func (f *fakeCategoryRepo) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.ID == id {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	for _, c := range f.categories {
		if c.Name == name {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCategoryRepo) FindAll(ctx context.Context) ([]*entity.Category, error) {
	return f.categories, nil
}

func (f *fakeCategoryRepo) Update(ctx context.Context, c *entity.Category) error { return nil }

func (f *fakeCategoryRepo) Delete(ctx context.Context, id string) error { return nil }

func testRepository(products []*entity.Product, categories []*entity.Category) *repository.Repository {
	return &repository.Repository{
		Product:  &fakeProductRepo{products: products},
		Category: &fakeCategoryRepo{categories: categories},
	}
}

func TestInventoryLowStockUsesStrictThreshold(t *testing.T) {
	catID := "c1"
	products := []*entity.Product{
		product("below", "Below", 1, 9, &catID),
		product("at", "AtThreshold", 1, 10, nil),
		product("zero", "Zero", 1, 0, nil),
		product("variant", "ByVariant", 1, 100, nil, entity.Variant{Size: "S", Stock: 4}),
		product("healthy", "Healthy", 1, 100, nil, entity.Variant{Size: "S", Stock: 40}),
	}
	categories := []*entity.Category{
		{Base: entity.Base{ID: catID}, Name: "Apparel"},
	}

	service := NewInventoryService(testRepository(products, categories), zap.NewNop())

	items, err := service.LowStock(context.Background(), 10)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}

	got := map[string]bool{}
	for _, item := range items {
		got[item.ID] = true
	}

	// Strictly below 10 qualifies; exactly 10 does not; zero does.
	for _, want := range []string{"below", "zero", "variant"} {
		if !got[want] {
			t.Errorf("missing %q from low stock list", want)
		}
	}
	for _, exclude := range []string{"at", "healthy"} {
		if got[exclude] {
			t.Errorf("%q should not be in low stock list", exclude)
		}
	}

	// Category reference resolved by name
	for _, item := range items {
		if item.ID == "below" {
			if item.Category == nil || item.Category.Name != "Apparel" {
				t.Errorf("category ref = %+v, want Apparel", item.Category)
			}
		}
	}
}

func TestInventoryLowStockBaseMatchesComeFirst(t *testing.T) {
	// Collection order deliberately puts the variant-only match before the
	// base-stock match; the listing must still lead with base-stock matches.
	products := []*entity.Product{
		product("variantOnly", "ByVariant", 1, 100, nil, entity.Variant{Size: "S", Stock: 2}),
		product("baseLow", "BaseLow", 1, 3, nil),
		product("both", "Both", 1, 4, nil, entity.Variant{Size: "S", Stock: 1}),
	}

	service := NewInventoryService(testRepository(products, nil), zap.NewNop())

	items, err := service.LowStock(context.Background(), 10)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}

	wantOrder := []string{"baseLow", "both", "variantOnly"}
	if len(items) != len(wantOrder) {
		t.Fatalf("items = %d, want %d", len(items), len(wantOrder))
	}
	for i, want := range wantOrder {
		if items[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, items[i].ID, want)
		}
	}
}

func TestInventoryLowStockDefaultsThreshold(t *testing.T) {
	products := []*entity.Product{
		product("p1", "P1", 1, 9, nil),
		product("p2", "P2", 1, 10, nil),
	}

	service := NewInventoryService(testRepository(products, nil), zap.NewNop())

	items, err := service.LowStock(context.Background(), 0)
	if err != nil {
		t.Fatalf("LowStock: %v", err)
	}
	if len(items) != 1 || items[0].ID != "p1" {
		t.Errorf("items = %+v, want only p1 under default threshold 10", items)
	}
}

func TestInventoryListIncludesAllProducts(t *testing.T) {
	products := []*entity.Product{
		product("p1", "P1", 9.99, 3, nil, entity.Variant{Size: "S", Stock: 1}),
		product("p2", "P2", 5, 0, nil),
	}

	service := NewInventoryService(testRepository(products, nil), zap.NewNop())

	items, err := service.List(context.Background())
	if err != nil {
		t.Fatalf("List: %v", err)
	}
	if len(items) != 2 {
		t.Fatalf("items = %d, want 2", len(items))
	}

	// Nil variant slices are normalized for JSON
	if items[1].Variants == nil {
		t.Error("variants should be an empty slice, not nil")
	}
}
