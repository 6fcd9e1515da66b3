package repository

import (
	"context"
	"fmt"
	"regexp"

	"product-catalog/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// ProductFilter holds the search predicates supported by the catalog.
// Pointer fields distinguish "not set" from zero values.
type ProductFilter struct {
	Keyword  string
	Category string
	MinPrice *float64
	MaxPrice *float64
	InStock  *bool
	Size     string
	Color    string
}

type ProductSort string

const (
	SortPriceAsc  ProductSort = "priceAsc"
	SortPriceDesc ProductSort = "priceDesc"
	SortNewest    ProductSort = "newest"
	SortNameAsc   ProductSort = "nameAsc"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	FindByID(ctx context.Context, id string) (*entity.Product, error)
	FindAll(ctx context.Context) ([]*entity.Product, error)
	FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error)
	Search(ctx context.Context, filter ProductFilter, sort ProductSort, skip, limit int) ([]*entity.Product, error)
	Count(ctx context.Context, filter ProductFilter) (int64, error)
	Suggest(ctx context.Context, term string, limit int) ([]*entity.Product, error)
	FindByVariant(ctx context.Context, size, color string, inStock bool) ([]*entity.Product, error)
	FindLowBaseStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	FindLowVariantStock(ctx context.Context, threshold int) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	ClearCategory(ctx context.Context, categoryID string) error
	Delete(ctx context.Context, id string) error
}

type productRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewProductRepository(db *mongo.Database, log *zap.Logger) ProductRepository {
	return &productRepository{
		col: db.Collection("products"),
		log: log,
	}
}

func (pr *productRepository) Create(ctx context.Context, product *entity.Product) error {
	_, err := pr.col.InsertOne(ctx, product)
	if err != nil {
		pr.log.Error("Failed to create product",
			zap.Error(err),
			zap.String("name", product.Name),
		)
		return fmt.Errorf("create product %s: %w", product.Name, err)
	}

	return nil
}

func (pr *productRepository) FindByID(ctx context.Context, id string) (*entity.Product, error) {
	var product entity.Product
	err := pr.col.FindOne(ctx, bson.M{"_id": id}).Decode(&product)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		pr.log.Error("Failed to find product by ID",
			zap.Error(err),
			zap.String("product_id", id),
		)
		return nil, fmt.Errorf("find product by ID %s: %w", id, err)
	}

	return &product, nil
}

func (pr *productRepository) FindAll(ctx context.Context) ([]*entity.Product, error) {
	return pr.findMany(ctx, bson.M{}, nil, "find all products")
}

func (pr *productRepository) FindByCategory(ctx context.Context, categoryID string) ([]*entity.Product, error) {
	return pr.findMany(ctx, bson.M{"category": categoryID}, nil, "find products by category")
}

// buildQuery translates a ProductFilter into a Mongo query document.
func buildQuery(filter ProductFilter) bson.M {
	query := bson.M{}

	if filter.Keyword != "" {
		pattern := primitive.Regex{Pattern: regexp.QuoteMeta(filter.Keyword), Options: "i"}
		query["$or"] = bson.A{
			bson.M{"name": pattern},
			bson.M{"description": pattern},
		}
	}

	if filter.Category != "" {
		query["category"] = filter.Category
	}

	if filter.MinPrice != nil || filter.MaxPrice != nil {
		price := bson.M{}
		if filter.MinPrice != nil {
			price["$gte"] = *filter.MinPrice
		}
		if filter.MaxPrice != nil {
			price["$lte"] = *filter.MaxPrice
		}
		query["price"] = price
	}

	if filter.InStock != nil {
		if *filter.InStock {
			query["stock"] = bson.M{"$gt": 0}
		} else {
			query["stock"] = 0
		}
	}

	if filter.Size != "" || filter.Color != "" {
		elem := bson.M{}
		if filter.Size != "" {
			elem["size"] = filter.Size
		}
		if filter.Color != "" {
			elem["color"] = filter.Color
		}
		if filter.InStock != nil && *filter.InStock {
			elem["stock"] = bson.M{"$gt": 0}
		}
		query["variants"] = bson.M{"$elemMatch": elem}
	}

	return query
}

func sortDoc(sort ProductSort) bson.D {
	switch sort {
	case SortPriceAsc:
		return bson.D{{Key: "price", Value: 1}}
	case SortPriceDesc:
		return bson.D{{Key: "price", Value: -1}}
	case SortNameAsc:
		return bson.D{{Key: "name", Value: 1}}
	default: // newest
		return bson.D{{Key: "createdAt", Value: -1}}
	}
}

func (pr *productRepository) Search(ctx context.Context, filter ProductFilter, sort ProductSort, skip, limit int) ([]*entity.Product, error) {
	opts := options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(int64(skip)).
		SetLimit(int64(limit))

	return pr.findMany(ctx, buildQuery(filter), opts, "search products")
}

func (pr *productRepository) Count(ctx context.Context, filter ProductFilter) (int64, error) {
	count, err := pr.col.CountDocuments(ctx, buildQuery(filter))
	if err != nil {
		pr.log.Error("Failed to count products", zap.Error(err))
		return 0, fmt.Errorf("count products: %w", err)
	}

	return count, nil
}

func (pr *productRepository) Suggest(ctx context.Context, term string, limit int) ([]*entity.Product, error) {
	query := bson.M{
		"name": primitive.Regex{Pattern: regexp.QuoteMeta(term), Options: "i"},
	}
	opts := options.Find().
		SetLimit(int64(limit)).
		SetProjection(bson.M{"name": 1})

	return pr.findMany(ctx, query, opts, "suggest products")
}

func (pr *productRepository) FindByVariant(ctx context.Context, size, color string, inStock bool) ([]*entity.Product, error) {
	elem := bson.M{}
	if size != "" {
		elem["size"] = size
	}
	if color != "" {
		// Anchored, case-insensitive exact match on the color value
		elem["color"] = primitive.Regex{Pattern: "^" + regexp.QuoteMeta(color) + "$", Options: "i"}
	}
	if inStock {
		elem["stock"] = bson.M{"$gt": 0}
	}

	return pr.findMany(ctx, bson.M{"variants": bson.M{"$elemMatch": elem}}, nil, "find products by variant")
}

func (pr *productRepository) FindLowBaseStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := bson.M{"stock": bson.M{"$lte": threshold, "$gt": 0}}
	return pr.findMany(ctx, query, nil, "find low base stock products")
}

func (pr *productRepository) FindLowVariantStock(ctx context.Context, threshold int) ([]*entity.Product, error) {
	query := bson.M{"variants.stock": bson.M{"$lte": threshold, "$gt": 0}}
	return pr.findMany(ctx, query, nil, "find low variant stock products")
}

func (pr *productRepository) Update(ctx context.Context, product *entity.Product) error {
	result, err := pr.col.ReplaceOne(ctx, bson.M{"_id": product.ID}, product)
	if err != nil {
		pr.log.Error("Failed to update product",
			zap.Error(err),
			zap.String("product_id", product.ID),
		)
		return fmt.Errorf("update product %s: %w", product.ID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("product %s not found", product.ID)
	}

	return nil
}

// ClearCategory nulls the category reference on every product pointing at it.
// Used when a category is deleted.
func (pr *productRepository) ClearCategory(ctx context.Context, categoryID string) error {
	_, err := pr.col.UpdateMany(ctx,
		bson.M{"category": categoryID},
		bson.M{"$set": bson.M{"category": nil}},
	)
	if err != nil {
		pr.log.Error("Failed to clear category from products",
			zap.Error(err),
			zap.String("category_id", categoryID),
		)
		return fmt.Errorf("clear category %s from products: %w", categoryID, err)
	}

	return nil
}

func (pr *productRepository) Delete(ctx context.Context, id string) error {
	result, err := pr.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		pr.log.Error("Failed to delete product",
			zap.Error(err),
			zap.String("id", id),
		)
		return fmt.Errorf("delete product %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("product %s not found", id)
	}

	return nil
}

func (pr *productRepository) findMany(ctx context.Context, query bson.M, opts *options.FindOptions, op string) ([]*entity.Product, error) {
	var cursor *mongo.Cursor
	var err error
	if opts != nil {
		cursor, err = pr.col.Find(ctx, query, opts)
	} else {
		cursor, err = pr.col.Find(ctx, query)
	}
	if err != nil {
		pr.log.Error("Product query failed", zap.Error(err), zap.String("op", op))
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	defer cursor.Close(ctx)

	var products []*entity.Product
	if err := cursor.All(ctx, &products); err != nil {
		pr.log.Error("Failed to decode products", zap.Error(err), zap.String("op", op))
		return nil, fmt.Errorf("%s: decode: %w", op, err)
	}

	return products, nil
}
