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

const orderCollection = "orders"

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	FindByID(ctx context.Context, id string) (*entity.Order, error)
	FindByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, error)
	CountByUser(ctx context.Context, userID string) (int64, error)
	FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error)
	CountAll(ctx context.Context) (int64, error)
	UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error
	EnsureIndexes(ctx context.Context) error
}

type orderRepository struct {
	db  database.MongoIface
	log *zap.Logger
}

func NewOrderRepository(db database.MongoIface, log *zap.Logger) OrderRepository {
	return &orderRepository{
		db:  db,
		log: log,
	}
}

// Create inserts a new order document. Total must already be computed
// by the caller; the repository never recalculates it.
func (or *orderRepository) Create(ctx context.Context, order *entity.Order) error {
	_, err := or.db.Collection(orderCollection).InsertOne(ctx, order)
	if err != nil {
		or.log.Error("Failed to create order",
			zap.Error(err),
			zap.String("user_id", order.UserID),
		)
		return fmt.Errorf("create order for user %s: %w", order.UserID, err)
	}

	return nil
}

func (or *orderRepository) FindByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	err := or.db.Collection(orderCollection).FindOne(ctx, bson.M{"_id": id}).Decode(&order)

	if err == mongo.ErrNoDocuments {
		return nil, nil
	}
	if err != nil {
		or.log.Error("Failed to find order by ID",
			zap.Error(err),
			zap.String("order_id", id),
		)
		return nil, fmt.Errorf("find order by ID %s: %w", id, err)
	}

	return &order, nil
}

// FindByUser retrieves paginated orders owned by one user
func (or *orderRepository) FindByUser(ctx context.Context, userID string, limit, offset int) ([]*entity.Order, error) {
	return or.find(ctx, bson.M{"user_id": userID}, limit, offset)
}

func (or *orderRepository) CountByUser(ctx context.Context, userID string) (int64, error) {
	count, err := or.db.Collection(orderCollection).CountDocuments(ctx, bson.M{"user_id": userID})
	if err != nil {
		or.log.Error("Failed to count user orders",
			zap.Error(err),
			zap.String("user_id", userID),
		)
		return 0, fmt.Errorf("count orders for user %s: %w", userID, err)
	}

	return count, nil
}

// FindAll retrieves paginated orders across all users (admin listing)
func (or *orderRepository) FindAll(ctx context.Context, limit, offset int) ([]*entity.Order, error) {
	return or.find(ctx, bson.M{}, limit, offset)
}

func (or *orderRepository) CountAll(ctx context.Context) (int64, error) {
	count, err := or.db.Collection(orderCollection).CountDocuments(ctx, bson.M{})
	if err != nil {
		or.log.Error("Failed to count orders", zap.Error(err))
		return 0, fmt.Errorf("count all orders: %w", err)
	}

	return count, nil
}

func (or *orderRepository) find(ctx context.Context, filter bson.M, limit, offset int) ([]*entity.Order, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "placed_at", Value: -1}}).
		SetLimit(int64(limit)).
		SetSkip(int64(offset))

	cursor, err := or.db.Collection(orderCollection).Find(ctx, filter, opts)
	if err != nil {
		or.log.Error("Failed to find orders",
			zap.Error(err),
			zap.Any("filter", filter),
		)
		return nil, fmt.Errorf("find orders: %w", err)
	}
	defer cursor.Close(ctx)

	var orders []*entity.Order
	if err := cursor.All(ctx, &orders); err != nil {
		or.log.Error("Failed to decode orders", zap.Error(err))
		return nil, fmt.Errorf("decode orders: %w", err)
	}

	return orders, nil
}

// UpdateStatus sets the status field only. Total and items are left
// untouched (total is a snapshot from creation time).
func (or *orderRepository) UpdateStatus(ctx context.Context, id string, status entity.OrderStatus) error {
	update := bson.M{"$set": bson.M{
		"status":     status,
		"updated_at": time.Now(),
	}}

	result, err := or.db.Collection(orderCollection).UpdateOne(ctx, bson.M{"_id": id}, update)
	if err != nil {
		or.log.Error("Failed to update order status",
			zap.Error(err),
			zap.String("order_id", id),
			zap.String("status", string(status)),
		)
		return fmt.Errorf("update order %s status: %w", id, err)
	}

	if result.MatchedCount == 0 {
		return fmt.Errorf("update order %s status: %w", id, entity.ErrNotFound)
	}

	return nil
}

func (or *orderRepository) EnsureIndexes(ctx context.Context) error {
	_, err := or.db.Collection(orderCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user_id", Value: 1}}},
		{Keys: bson.D{{Key: "status", Value: 1}}},
		{Keys: bson.D{{Key: "placed_at", Value: -1}}},
	})
	if err != nil {
		return fmt.Errorf("ensure order indexes: %w", err)
	}
	return nil
}
