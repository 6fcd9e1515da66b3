package repository

import (
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Repository struct {
	User     UserRepository
	Product  ProductRepository
	Category CategoryRepository
}

func NewRepository(db *mongo.Database, log *zap.Logger) *Repository {
	return &Repository{
		User:     NewUserRepository(db, log),
		Product:  NewProductRepository(db, log),
		Category: NewCategoryRepository(db, log),
	}
}
