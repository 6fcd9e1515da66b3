package usecase

import (
	"context"
	"fmt"
	"math"
	"sort"
	"time"

	"product-catalog/internal/data/entity"
	"product-catalog/internal/data/repository"
	"product-catalog/internal/dto/response"
	"product-catalog/pkg/cache"
	"product-catalog/pkg/utils"

	"go.uber.org/zap"
)

// Stock classification tiers with their fixed thresholds.
const (
	StockLevelOut    = "Out of Stock"
	StockLevelLow    = "Low Stock"    // 1..5
	StockLevelMedium = "Medium Stock" // 6..20
	StockLevelHigh   = "High Stock"   // >20
)

const DefaultLowStockThreshold = 5

const (
	cacheKeyStockLevels    = "reports:stock-levels"
	cacheKeyInventoryValue = "reports:inventory-value"
	reportCacheTTL         = 30 * time.Second
)

// reportCacheKeys are the fixed-key report entries invalidated by catalog
// writes. Low-stock entries are threshold-keyed and expire by TTL alone.
var reportCacheKeys = []string{cacheKeyStockLevels, cacheKeyInventoryValue}

// ClassifyStock buckets a single stock count into its tier.
func ClassifyStock(stock int) string {
	switch {
	case stock == 0:
		return StockLevelOut
	case stock <= 5:
		return StockLevelLow
	case stock <= 20:
		return StockLevelMedium
	default:
		return StockLevelHigh
	}
}

type ReportService interface {
	StockLevelReport(ctx context.Context) (*response.StockLevelReport, error)
	InventoryValueReport(ctx context.Context) (*response.InventoryValueReport, error)
	LowStockReport(ctx context.Context, threshold int) (*response.LowStockReport, error)
}

type reportService struct {
	repo  *repository.Repository
	cache *cache.Cache
	log   *zap.Logger
}

func NewReportService(repo *repository.Repository, c *cache.Cache, log *zap.Logger) ReportService {
	return &reportService{
		repo:  repo,
		cache: c,
		log:   log,
	}
}

// StockLevelReport classifies every stock count in the catalog (base stock
// and each variant independently) and aggregates totals across one full scan.
func (s *reportService) StockLevelReport(ctx context.Context) (*response.StockLevelReport, error) {
	var cached response.StockLevelReport
	if s.cache.GetJSON(ctx, cacheKeyStockLevels, &cached) {
		return &cached, nil
	}

	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Stock level report scan failed", zap.Error(err))
		return nil, fmt.Errorf("server error")
	}

	report := buildStockLevelReport(products)

	s.cache.SetJSON(ctx, cacheKeyStockLevels, report, reportCacheTTL)
	return report, nil
}

func buildStockLevelReport(products []*entity.Product) *response.StockLevelReport {
	counts := map[string]int{}
	samples := map[string][]response.StockSample{}

	totalStock := 0
	maxStock := 0
	minStock := 0
	minSet := false

	observe := func(stock int) {
		totalStock += stock
		counts[ClassifyStock(stock)]++
		if stock > maxStock {
			maxStock = stock
		}
		if !minSet || stock < minStock {
			minStock = stock
			minSet = true
		}
	}

	for _, p := range products {
		observe(p.Stock)

		// The per-bucket sample list stays product-level, keyed by base
		// stock; variants have no identity of their own to list.
		level := ClassifyStock(p.Stock)
		if len(samples[level]) < 5 {
			samples[level] = append(samples[level], response.StockSample{
				ID:    p.ID,
				Name:  p.Name,
				Stock: p.Stock,
			})
		}

		for _, v := range p.Variants {
			observe(v.Stock)
		}
	}

	avg := 0.0
	if len(products) > 0 {
		avg = utils.Round2(float64(totalStock) / float64(len(products)))
	}

	levels := []string{StockLevelOut, StockLevelLow, StockLevelMedium, StockLevelHigh}
	buckets := make([]response.StockLevelBucket, 0, len(levels))
	for _, level := range levels {
		bucket := response.StockLevelBucket{
			Level:    level,
			Count:    counts[level],
			Products: samples[level],
		}
		if bucket.Products == nil {
			bucket.Products = []response.StockSample{}
		}
		buckets = append(buckets, bucket)
	}

	return &response.StockLevelReport{
		StockLevels: buckets,
		Stats: response.StockStats{
			TotalProducts:      len(products),
			TotalStockItems:    totalStock,
			AvgStockPerProduct: avg,
			MaxStock:           maxStock,
			MinStock:           minStock,
		},
	}
}

// InventoryValueReport totals price×stock per product, with every variant
// valued at its parent's price, grouped into per-category subtotals.
func (s *reportService) InventoryValueReport(ctx context.Context) (*response.InventoryValueReport, error) {
	var cached response.InventoryValueReport
	if s.cache.GetJSON(ctx, cacheKeyInventoryValue, &cached) {
		return &cached, nil
	}

	products, err := s.repo.Product.FindAll(ctx)
	if err != nil {
		s.log.Error("Inventory value report scan failed", zap.Error(err))
		return nil, fmt.Errorf("server error")
	}

	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		s.log.Error("Inventory value report category load failed", zap.Error(err))
		return nil, fmt.Errorf("server error")
	}

	report := buildInventoryValueReport(products, names)

	s.cache.SetJSON(ctx, cacheKeyInventoryValue, report, reportCacheTTL)
	return report, nil
}

func buildInventoryValueReport(products []*entity.Product, categoryNames map[string]string) *response.InventoryValueReport {
	totalValue := 0.0
	subtotals := map[string]float64{}
	var order []string // first-seen category order

	for _, p := range products {
		itemValue := p.Price * float64(p.Stock)
		for _, v := range p.Variants {
			itemValue += p.Price * float64(v.Stock)
		}
		totalValue += itemValue

		categoryName := "Uncategorized"
		if p.Category != nil {
			if name, ok := categoryNames[*p.Category]; ok && name != "" {
				categoryName = name
			}
		}
		if _, seen := subtotals[categoryName]; !seen {
			order = append(order, categoryName)
		}
		subtotals[categoryName] += itemValue
	}

	categories := make([]response.CategoryValue, 0, len(order))
	for _, name := range order {
		categories = append(categories, response.CategoryValue{
			Category: name,
			Value:    utils.Round2(subtotals[name]),
		})
	}

	return &response.InventoryValueReport{
		TotalValue:   utils.Round2(totalValue),
		Categories:   categories,
		ProductCount: len(products),
	}
}

// LowStockReport lists products whose base stock or any variant stock sits in
// (0, threshold], with only the qualifying variants attached, in a strict
// order: base-stock-low items first ascending by base stock, then items whose
// lowest qualifying variant is smallest, items with no qualifying variant last.
func (s *reportService) LowStockReport(ctx context.Context, threshold int) (*response.LowStockReport, error) {
	if threshold <= 0 {
		threshold = DefaultLowStockThreshold
	}

	key := fmt.Sprintf("reports:low-stock:%d", threshold)
	var cached response.LowStockReport
	if s.cache.GetJSON(ctx, key, &cached) {
		return &cached, nil
	}

	byBase, err := s.repo.Product.FindLowBaseStock(ctx, threshold)
	if err != nil {
		s.log.Error("Low stock report scan failed", zap.Error(err))
		return nil, fmt.Errorf("server error")
	}

	byVariant, err := s.repo.Product.FindLowVariantStock(ctx, threshold)
	if err != nil {
		s.log.Error("Low stock report variant scan failed", zap.Error(err))
		return nil, fmt.Errorf("server error")
	}

	names, err := loadCategoryNames(ctx, s.repo.Category)
	if err != nil {
		s.log.Error("Low stock report category load failed", zap.Error(err))
		return nil, fmt.Errorf("server error")
	}

	report := buildLowStockReport(byBase, byVariant, names, threshold)

	s.cache.SetJSON(ctx, key, report, reportCacheTTL)
	return report, nil
}

func buildLowStockReport(byBase, byVariant []*entity.Product, categoryNames map[string]string, threshold int) *response.LowStockReport {
	// Merge the two match sets, base-stock matches first, deduplicated by id.
	merged := make([]*entity.Product, 0, len(byBase)+len(byVariant))
	seen := make(map[string]bool, len(byBase))
	for _, p := range byBase {
		merged = append(merged, p)
		seen[p.ID] = true
	}
	for _, p := range byVariant {
		if !seen[p.ID] {
			merged = append(merged, p)
			seen[p.ID] = true
		}
	}

	items := make([]response.LowStockProduct, 0, len(merged))
	for _, p := range merged {
		isLow := p.Stock > 0 && p.Stock <= threshold

		lowVariants := []response.LowVariant{}
		for _, v := range p.Variants {
			if v.Stock > 0 && v.Stock <= threshold {
				lowVariants = append(lowVariants, response.LowVariant{
					Size:  v.Size,
					Color: v.Color,
					Stock: v.Stock,
				})
			}
		}

		items = append(items, response.LowStockProduct{
			ID:          p.ID,
			Name:        p.Name,
			MainStock:   response.MainStock{Quantity: p.Stock, IsLow: isLow},
			LowVariants: lowVariants,
			Category:    categoryRef(p.Category, categoryNames),
			Price:       p.Price,
			Image:       p.Image,
		})
	}

	sort.SliceStable(items, func(i, j int) bool {
		a, b := items[i], items[j]
		if a.MainStock.IsLow && b.MainStock.IsLow {
			return a.MainStock.Quantity < b.MainStock.Quantity
		}
		if a.MainStock.IsLow {
			return true
		}
		if b.MainStock.IsLow {
			return false
		}
		return lowestVariantStock(a.LowVariants) < lowestVariantStock(b.LowVariants)
	})

	return &response.LowStockReport{
		Products:  items,
		Count:     len(items),
		Threshold: threshold,
	}
}

// lowestVariantStock returns the smallest qualifying variant stock, or an
// infinite sentinel so variant-less items sort last within their group.
func lowestVariantStock(variants []response.LowVariant) int {
	lowest := math.MaxInt
	for _, v := range variants {
		if v.Stock < lowest {
			lowest = v.Stock
		}
	}
	return lowest
}
