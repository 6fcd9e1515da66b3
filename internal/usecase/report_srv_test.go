package usecase

import (
	"testing"

	"product-catalog/internal/data/entity"
)

func product(id, name string, price float64, stock int, category *string, variants ...entity.Variant) *entity.Product {
	return &entity.Product{
		Base:     entity.Base{ID: id},
		Name:     name,
		Price:    price,
		Stock:    stock,
		Category: category,
		Variants: variants,
	}
}

func TestClassifyStock(t *testing.T) {
	cases := []struct {
		stock int
		want  string
	}{
		{0, StockLevelOut},
		{1, StockLevelLow},
		{5, StockLevelLow},
		{6, StockLevelMedium},
		{20, StockLevelMedium},
		{21, StockLevelHigh},
		{1000, StockLevelHigh},
	}

	for _, tc := range cases {
		if got := ClassifyStock(tc.stock); got != tc.want {
			t.Errorf("ClassifyStock(%d) = %q, want %q", tc.stock, got, tc.want)
		}
	}
}

func TestStockLevelReportCountsBaseAndVariants(t *testing.T) {
	products := []*entity.Product{
		product("p1", "Shirt", 10, 0, nil,
			entity.Variant{Size: "M", Stock: 3},
			entity.Variant{Size: "L", Stock: 25},
		),
		product("p2", "Pants", 20, 10, nil),
	}

	report := buildStockLevelReport(products)

	counts := map[string]int{}
	for _, bucket := range report.StockLevels {
		counts[bucket.Level] = bucket.Count
	}

	// Four observations: base 0, variant 3, variant 25, base 10
	if counts[StockLevelOut] != 1 {
		t.Errorf("out count = %d, want 1", counts[StockLevelOut])
	}
	if counts[StockLevelLow] != 1 {
		t.Errorf("low count = %d, want 1", counts[StockLevelLow])
	}
	if counts[StockLevelMedium] != 1 {
		t.Errorf("medium count = %d, want 1", counts[StockLevelMedium])
	}
	if counts[StockLevelHigh] != 1 {
		t.Errorf("high count = %d, want 1", counts[StockLevelHigh])
	}

	if report.Stats.TotalProducts != 2 {
		t.Errorf("totalProducts = %d, want 2", report.Stats.TotalProducts)
	}
	if report.Stats.TotalStockItems != 38 {
		t.Errorf("totalStockItems = %d, want 38", report.Stats.TotalStockItems)
	}
	if report.Stats.AvgStockPerProduct != 19 {
		t.Errorf("avgStockPerProduct = %v, want 19", report.Stats.AvgStockPerProduct)
	}
	if report.Stats.MaxStock != 25 {
		t.Errorf("maxStock = %d, want 25", report.Stats.MaxStock)
	}
	if report.Stats.MinStock != 0 {
		t.Errorf("minStock = %d, want 0", report.Stats.MinStock)
	}
}

func TestStockLevelReportSampleListsAreProductLevel(t *testing.T) {
	products := make([]*entity.Product, 0, 7)
	for i := 0; i < 7; i++ {
		products = append(products, product(string(rune('a'+i)), "P", 1, 0, nil))
	}

	report := buildStockLevelReport(products)

	for _, bucket := range report.StockLevels {
		if bucket.Level == StockLevelOut {
			if bucket.Count != 7 {
				t.Errorf("out count = %d, want 7", bucket.Count)
			}
			// Samples cap at 5 even when more products qualify
			if len(bucket.Products) != 5 {
				t.Errorf("out samples = %d, want 5", len(bucket.Products))
			}
		} else if len(bucket.Products) != 0 {
			t.Errorf("%s samples = %d, want 0", bucket.Level, len(bucket.Products))
		}
	}
}

func TestStockLevelReportEmptyCatalog(t *testing.T) {
	report := buildStockLevelReport(nil)

	if report.Stats.AvgStockPerProduct != 0 {
		t.Errorf("avg on empty catalog = %v, want 0", report.Stats.AvgStockPerProduct)
	}
	if report.Stats.MinStock != 0 || report.Stats.MaxStock != 0 {
		t.Errorf("min/max on empty catalog = %d/%d, want 0/0",
			report.Stats.MinStock, report.Stats.MaxStock)
	}
	if len(report.StockLevels) != 4 {
		t.Errorf("bucket count = %d, want 4", len(report.StockLevels))
	}
}

func TestInventoryValueReportValuesVariantsAtParentPrice(t *testing.T) {
	catID := "c1"
	products := []*entity.Product{
		product("p1", "Shirt", 10, 3, &catID, entity.Variant{Size: "M", Stock: 2}),
		product("p2", "Mug", 7.56, 1, nil),
	}
	names := map[string]string{"c1": "Apparel"}

	report := buildInventoryValueReport(products, names)

	// p1: 10*3 + 10*2 = 50; p2: 7.56
	if report.TotalValue != 57.56 {
		t.Errorf("totalValue = %v, want 57.56", report.TotalValue)
	}
	if report.ProductCount != 2 {
		t.Errorf("productCount = %d, want 2", report.ProductCount)
	}

	if len(report.Categories) != 2 {
		t.Fatalf("categories = %d, want 2", len(report.Categories))
	}
	if report.Categories[0].Category != "Apparel" || report.Categories[0].Value != 50 {
		t.Errorf("first category = %+v, want Apparel/50", report.Categories[0])
	}
	if report.Categories[1].Category != "Uncategorized" || report.Categories[1].Value != 7.56 {
		t.Errorf("second category = %+v, want Uncategorized/7.56", report.Categories[1])
	}
}

func TestLowStockReportOrdering(t *testing.T) {
	// A: base not low, lowest qualifying variant 4
	a := product("a", "A", 1, 50, nil, entity.Variant{Size: "S", Stock: 4})
	// B: base low at 2
	b := product("b", "B", 1, 2, nil)
	// C: base not low, lowest qualifying variant 1
	c := product("c", "C", 1, 50, nil,
		entity.Variant{Size: "S", Stock: 1},
		entity.Variant{Size: "M", Stock: 3},
	)
	// D: base low at 5, also has a variant
	d := product("d", "D", 1, 5, nil, entity.Variant{Size: "S", Stock: 2})

	report := buildLowStockReport(
		[]*entity.Product{b, d},
		[]*entity.Product{a, c, d},
		nil,
		5,
	)

	if report.Count != 4 {
		t.Fatalf("count = %d, want 4 (d deduplicated)", report.Count)
	}

	// Base-low first ascending (b:2, d:5), then by lowest variant (c:1, a:4)
	wantOrder := []string{"b", "d", "c", "a"}
	for i, want := range wantOrder {
		if report.Products[i].ID != want {
			t.Errorf("position %d = %q, want %q", i, report.Products[i].ID, want)
		}
	}
}

func TestLowStockReportThresholdIsInclusive(t *testing.T) {
	// Stock exactly at the threshold qualifies; zero stock does not.
	atThreshold := product("p1", "AtThreshold", 1, 5, nil)
	outOfStock := product("p2", "OutOfStock", 1, 0, nil)

	report := buildLowStockReport([]*entity.Product{atThreshold}, nil, nil, 5)

	if report.Count != 1 || report.Products[0].ID != "p1" {
		t.Fatalf("report = %+v, want only p1", report.Products)
	}
	if !report.Products[0].MainStock.IsLow {
		t.Error("stock at threshold not flagged low")
	}

	// Zero-stock products never reach the repository result set; even merged
	// in they must not be flagged base-low.
	withZero := buildLowStockReport(nil, []*entity.Product{outOfStock}, nil, 5)
	if len(withZero.Products) == 1 && withZero.Products[0].MainStock.IsLow {
		t.Error("zero stock flagged low")
	}
}

func TestLowStockReportAttachesOnlyQualifyingVariants(t *testing.T) {
	p := product("p1", "P", 1, 2, nil,
		entity.Variant{Size: "S", Stock: 3},
		entity.Variant{Size: "M", Stock: 30},
		entity.Variant{Size: "L", Stock: 0},
	)

	report := buildLowStockReport([]*entity.Product{p}, nil, nil, 5)

	if len(report.Products[0].LowVariants) != 1 {
		t.Fatalf("lowVariants = %d, want 1", len(report.Products[0].LowVariants))
	}
	if report.Products[0].LowVariants[0].Size != "S" {
		t.Errorf("lowVariant size = %q, want S", report.Products[0].LowVariants[0].Size)
	}
}

func TestVariantOnlyItemsWithoutQualifyingVariantSortLast(t *testing.T) {
	withVariant := product("v", "V", 1, 50, nil, entity.Variant{Size: "S", Stock: 2})
	// In practice unreachable from the repository query, but the comparator
	// must still place it after every item with a qualifying variant.
	noQualifying := product("n", "N", 1, 50, nil, entity.Variant{Size: "S", Stock: 0})

	report := buildLowStockReport(nil, []*entity.Product{noQualifying, withVariant}, nil, 5)

	if report.Products[0].ID != "v" || report.Products[1].ID != "n" {
		t.Errorf("order = [%s %s], want [v n]", report.Products[0].ID, report.Products[1].ID)
	}
}
