package repository

import (
	"context"
	"fmt"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/pkg/database"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

const userCollection = "users"

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	FindByID(ctx context.Context, id string) (*entity.User, error)
	FindByEmail(ctx context.Context, email string) (*entity.User, error)
	FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error)
	CountAll(ctx context.Context) (int64, error)
	Update(ctx context.Context, user *entity.User) error
	UpdatePassword(ctx context.Context, id, passwordHash string) error
	Delete(ctx context.Context, id string) error
	EnsureIndexes(ctx context.Context) error
}

type userRepository struct {
	db  database.MongoIface
	log *zap.Logger
}

func NewUserRepository(db database.MongoIface, log *zap.Logger) UserRepository {
	return &userRepository{
		db:  db,
		log: log,
	}
}

// publicProjection excludes the password hash. Default read path -
// callers needing to verify a password must use the auth view.
var publicProjection = bson.M{"password": 0}

// Create inserts a new user document
func (ur *userRepository) Create(ctx context.Context, user *entity.User) error {
	_, err := ur.db.Collection(userCollection).InsertOne(ctx, user)

	if mongo.IsDuplicateKeyError(err) {
		ur.log.Warn("Duplicate email on create", zap.String("email", user.Email))
		return fmt.Errorf("create user %s: %w", user.Email, entity.ErrDuplicateEmail)
	}
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
	opts := options.FindOne().SetProjection(publicProjection)

	var user entity.User
	err := ur.db.Collection(userCollection).FindOne(ctx, bson.M{"_id": id}, opts).Decode(&user)

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
	opts := options.FindOne().SetProjection(publicProjection)

	var user entity.User
	err := ur.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}, opts).Decode(&user)

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

// FindByEmailWithPassword is the authentication view: the only read
// path that loads the stored hash.
func (ur *userRepository) FindByEmailWithPassword(ctx context.Context, email string) (*entity.User, error) {
	var user entity.User
	err := ur.db.Collection(userCollection).FindOne(ctx, bson.M{"email": email}).Decode(&user)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		ur.log.Error("Failed to find user for auth",
			zap.Error(err),
			zap.String("email", email),
		)
		return nil, fmt.Errorf("find user for auth %s: %w", email, err)
	}

	return &user, nil
}

// FindAll retrieves paginated list of users (public projection)
func (ur *userRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.User, error) {
	opts := options.Find().
		SetProjection(publicProjection).
		SetSort(bson.D{{Key: "created_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := ur.db.Collection(userCollection).Find(ctx, bson.M{}, opts)
	if err != nil {
		ur.log.Error("Failed to get all users",
			zap.Error(err),
			zap.Int("limit", limit),
			zap.Int("offset", offset),
		)
		return nil, fmt.Errorf("find all users limit %d offset %d: %w", limit, offset, err)
	}
	defer cursor.Close(ctx)

	var users []*entity.User
	if err := cursor.All(ctx, &users); err != nil {
		ur.log.Error("Failed to decode users", zap.Error(err))
		return nil, fmt.Errorf("decode users: %w", err)
	}

	return users, nil
}

func (ur *userRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := ur.db.Collection(userCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		ur.log.Error("Failed to count users", zap.Error(err))
		return 0, fmt.Errorf("count all users: %w", err)
	}

	return count, nil
}

// Update writes profile fields only. The password field is deliberately
// not part of the $set: a save that did not change the secret must never
// alter the stored hash. Password changes go through UpdatePassword.
func (ur *userRepository) Update(ctx context.Context, user *entity.User) error {
	update := bson.M{"$set": bson.M{
		"email":      user.Email,
		"name":       user.Name,
		"role":       user.Role,
		"is_active":  user.IsActive,
		"updated_at": user.UpdatedAt,
	}}

	result, err := ur.db.Collection(userCollection).UpdateOne(ctx, bson.M{"_id": user.ID}, update)

	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("update user %s: %w", user.ID, entity.ErrDuplicateEmail)
	}
	if err != nil {
		ur.log.Error("Failed to update user",
			zap.Error(err),
			zap.String("user_id", user.ID),
		)
		return fmt.Errorf("update user %s: %w", user.ID, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update user %s: %w", user.ID, entity.ErrNotFound)
	}

	return nil
}

// UpdatePassword replaces the stored hash. Caller must have hashed the
// plaintext already; this is the only write path touching the secret.
func (ur *userRepository) UpdatePassword(ctx context.Context, id, passwordHash string) error {
	update := bson.M{"$set": bson.M{
		"password":   passwordHash,
		"updated_at": time.Now(),
	}}

	result, err := ur.db.Collection(userCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		ur.log.Error("Failed to update password",
			zap.Error(err),
			zap.String("user_id", id),
		)
		return fmt.Errorf("update password %s: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update password %s: %w", id, entity.ErrNotFound)
	}

	return nil
}

func (ur *userRepository) Delete(ctx context.Context, id string) error {
	result, err := ur.db.Collection(userCollection).DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		ur.log.Error("Failed to delete user",
			zap.Error(err),
			zap.String("id", id),
		)
		return fmt.Errorf("delete user %s: %w", id, err)
	}

	if result.DeletedCount == 0 {
		return fmt.Errorf("delete user %s: %w", id, entity.ErrNotFound)
	}

	ur.log.Info("User deleted", zap.String("id", id))
	return nil
}

// EnsureIndexes creates the unique email index. Emails are stored
// lowercased, so the unique index is effectively case-insensitive.
func (ur *userRepository) EnsureIndexes(ctx context.Context) error {
	_, err := ur.db.Collection(userCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
		{Keys: bson.D{{Key: "role", Value: 1}}},
		{Keys: bson.D{{Key: "is_active", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure user indexes: %w", err)
	}
	return nil
}
