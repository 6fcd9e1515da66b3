package repository

import (
	"context"
	"fmt"

	"product-catalog/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type CategoryRepository interface {
	Create(ctx context.Context, category *entity.Category) error
	FindByID(ctx context.Context, id string) (*entity.Category, error)
	FindByName(ctx context.Context, name string) (*entity.Category, error)
	FindAll(ctx context.Context) ([]*entity.Category, error)
	Update(ctx context.Context, category *entity.Category) error
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewCategoryRepository(db *mongo.Database, log *zap.Logger) CategoryRepository {
	return &categoryRepository{
		col: db.Collection("categories"),
		log: log,
	}
}

func (cr *categoryRepository) Create(ctx context.Context, category *entity.Category) error {
	_, err := cr.col.InsertOne(ctx, category)
	if err != nil {
		cr.log.Error("Failed to create category",
			zap.Error(err),
			zap.String("name", category.Name),
		)
		return fmt.Errorf("create category %s: %w", category.Name, err)
	}

	return nil
}

func (cr *categoryRepository) FindByID(ctx context.Context, id string) (*entity.Category, error) {
	var category entity.Category
	err := cr.col.FindOne(ctx, bson.M{"_id": id}).Decode(&category)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by ID",
			zap.Error(err),
			zap.String("category_id", id),
		)
		return nil, fmt.Errorf("find category by ID %s: %w", id, err)
	}

	return &category, nil
}

func (cr *categoryRepository) FindByName(ctx context.Context, name string) (*entity.Category, error) {
	var category entity.Category
	err := cr.col.FindOne(ctx, bson.M{"name": name}).Decode(&category)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		cr.log.Error("Failed to find category by name",
			zap.Error(err),
			zap.String("name", name),
		)
		return nil, fmt.Errorf("find category by name %s: %w", name, err)
	}

	return &category, nil
}

func (cr *categoryRepository) FindAll(ctx context.Context) ([]*entity.Category, error) {
	cursor, err := cr.col.Find(ctx, bson.M{})
	if err != nil {
		cr.log.Error("Failed to get all categories", zap.Error(err))
		return nil, fmt.Errorf("find all categories: %w", err)
	}
	defer cursor.Close(ctx)

	var categories []*entity.Category
	if err := cursor.All(ctx, &categories); err != nil {
		cr.log.Error("Failed to decode categories", zap.Error(err))
		return nil, fmt.Errorf("decode categories: %w", err)
	}

	return categories, nil
}

func (cr *categoryRepository) Update(ctx context.Context, category *entity.Category) error {
	result, err := cr.col.ReplaceOne(ctx, bson.M{"_id": category.ID}, category)
	if err != nil {
		cr.log.Error("Failed to update category",
			zap.Error(err),
			zap.String("category_id", category.ID),
		)
		return fmt.Errorf("update category %s: %w", category.ID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("category %s not found", category.ID)
	}

	return nil
}

func (cr *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := cr.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		cr.log.Error("Failed to delete category",
			zap.Error(err),
			zap.String("id", id),
		)
		return fmt.Errorf("delete category %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("category %s not found", id)
	}

	return nil
}
