package repository

import (
	"context"
	"fmt"
	"time"

	"product-catalog/internal/data/entity"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context) ([]*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	UpdateLastLogin(ctx context.Context, id string, at time.Time) error
	UpdateRefreshTokenHash(ctx context.Context, id, hash string) error
	Delete(ctx context.Context, id string) error
}

type userRepository struct {
	col *mongo.Collection
	log *zap.Logger
}

func NewUserRepository(db *mongo.Database, log *zap.Logger) UserRepository {
	return &userRepository{
		col: db.Collection("users"),
		log: log,
	}
}

func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := ur.col.InsertOne(ctx, user)
	if err != nil {
		ur.log.Error("Failed to create user",
			zap.Error(err),
			zap.String("email", user.Email),
		)
		return fmt.Errorf("create user %s: %w", user.Email, err)
	}

	return nil
}

func (ur *userRepository) FindByID(ctx context.Context, id string) (*entity.User, error) {
	var user entity.User
	err := ur.col.FindOne(ctx, bson.M{"_id": id}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by ID",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return nil, fmt.Errorf("find user by ID %s: %w", id, err)
	}

	return &user, nil
}

func (ur *userRepository) FindByEmail(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := ur.col.FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user by email",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user by email %s: %w", email, err)
	}

	return &user, nil
}

func (ur *userRepository) FindAll(ctx context.Context) ([]*entity.User, error) {
	cursor, err := ur.col.Find(ctx, bson.M{})
	if err != nil {
		ur.log.Error("Failed to get all users", zap.Error(err))
		return nil, fmt.Errorf("find all users: %w", err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		ur.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	result, err := ur.col.ReplaceOne(ctx, bson.M{"_id": user.ID}, user)
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return fmt.Errorf("update user %s: %w", user.ID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("user %s not found", user.ID)
	}

	return nil
}

func (ur *userRepository) UpdateLastLogin(ctx context.Context, id string, at time.Time) error {
	_, err := ur.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"lastLogin": at}},
	)
	if err != nil {
		return fmt.Errorf("update last login for user %s: %w", id, err)
	}

	return nil
}

func (ur *userRepository) UpdateRefreshTokenHash(ctx context.Context, id, hash string) error {
	_, err := ur.col.UpdateOne(ctx,
		bson.M{"_id": id},
		bson.M{"$set": bson.M{"refreshTokenHash": hash, "updatedAt": time.Now()}},
	)
	if err != nil {
		ur.log.Error("Failed to update refresh token hash",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return fmt.Errorf("update refresh token hash for user %s: %w", id, err)
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id string) error {
	result, err := ur.col.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id),
		)
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("user %s not found", id)
	}

	ur.log.Info("User deleted", zap.String("id", id))
	return nil
}
