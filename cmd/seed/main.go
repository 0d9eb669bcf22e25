// Seed script: populates the database with an admin user and some
// sample users/orders.
// Requires env variables: MONGODB_URI, SEED_ADMIN_EMAIL, SEED_ADMIN_PASSWORD
package main

import (
	"context"
	"log"
	"math/rand"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/pkg/database"
	"shop-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

var catalog = []entity.OrderItem{
	{Name: "Pro Subscription", Price: 29.99},
	{Name: "Team Add-on", Price: 9.99},
	{Name: "Analytics Pack", Price: 14.99},
	{Name: "Priority Support", Price: 4.99},
}

var statuses = []entity.OrderStatus{
	entity.StatusPending,
	entity.StatusProcessing,
	entity.StatusCompleted,
	entity.StatusCancelled,
}

func main() {
	config, err := utils.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	logger, err := utils.InitLogger(config.App.LogPath, config.App.Debug)
	if err != nil {
		logger, _ = zap.NewProduction()
	}
	defer logger.Sync()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	mongo := database.NewMongo(config.Database, logger)
	if _, err := mongo.Connect(ctx, ""); err != nil {
		logger.Fatal("Failed to connect to database", zap.Error(err))
	}
	defer func() {
		if err := mongo.Disconnect(context.Background()); err != nil {
			logger.Error("Failed to disconnect", zap.Error(err))
		}
	}()

	repos := repository.NewRepository(mongo, logger)
	if err := repos.EnsureIndexes(ctx); err != nil {
		logger.Fatal("Failed to ensure indexes", zap.Error(err))
	}

	admin, err := ensureAdmin(ctx, repos, config, logger)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	users, err := createSampleUsers(ctx, repos, config, logger)
	if err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	// Orders for everyone, admin included
	users = append(users, admin)
	if err := createOrders(ctx, repos, users, logger); err != nil {
		logger.Fatal("Seeding failed", zap.Error(err))
	}

	logger.Info("Seeding completed successfully")
}

// ensureAdmin creates the admin account, or refreshes its password if
// it already exists.
func ensureAdmin(ctx context.Context, repos *repository.Repository, config *utils.Config, logger *zap.Logger) (*entity.User, error) {
	email := utils.NormalizeEmail(config.Seed.AdminEmail)
	password := config.Seed.AdminPassword

	if email == "" || password == "" {
		logger.Fatal("SEED_ADMIN_EMAIL and SEED_ADMIN_PASSWORD must be set in environment")
	}

	hashed, err := utils.HashPasswordCost(password, config.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	admin, err := repos.User.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}

	if admin == nil {
		now := time.Now()
		admin = &entity.User{
			ID:           uuid.New().String(),
			Email:        email,
			PasswordHash: hashed,
			Name:         "Admin",
			Role:         entity.RoleAdmin,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repos.User.Create(ctx, admin); err != nil {
			return nil, err
		}
		logger.Info("Admin user created", zap.String("email", email))
		return admin, nil
	}

	// Update password if the account was already there
	if err := repos.User.UpdatePassword(ctx, admin.ID, hashed); err != nil {
		return nil, err
	}
	logger.Info("Admin user ensured/updated", zap.String("email", email))
	return admin, nil
}

func createSampleUsers(ctx context.Context, repos *repository.Repository, config *utils.Config, logger *zap.Logger) ([]*entity.User, error) {
	count := config.Seed.SampleUsers

	// All sample users share one hash, no need to pay bcrypt cost per user
	hashed, err := utils.HashPasswordCost("password123", config.Auth.BcryptCost)
	if err != nil {
		return nil, err
	}

	users := make([]*entity.User, 0, count)
	for i := 0; i < count; i++ {
		now := time.Now()
		user := &entity.User{
			ID:           uuid.New().String(),
			Email:        utils.NormalizeEmail(uuid.New().String()[:8] + "@example.com"),
			PasswordHash: hashed,
			Name:         "Sample User",
			Role:         entity.RoleUser,
			IsActive:     true,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := repos.User.Create(ctx, user); err != nil {
			return nil, err
		}
		users = append(users, user)
	}

	logger.Info("Sample users created", zap.Int("count", len(users)))
	return users, nil
}

func createOrders(ctx context.Context, repos *repository.Repository, users []*entity.User, logger *zap.Logger) error {
	totalOrders := 0

	for _, user := range users {
		numOrders := rand.Intn(3) + 1
		for i := 0; i < numOrders; i++ {
			items := makeItems()

			total, err := entity.ComputeTotal(items)
			if err != nil {
				return err
			}

			now := time.Now()
			order := &entity.Order{
				ID:        uuid.New().String(),
				UserID:    user.ID,
				Items:     items,
				Status:    statuses[rand.Intn(len(statuses))],
				Total:     total,
				Currency:  entity.DefaultCurrency,
				PlacedAt:  now.Add(-time.Duration(rand.Intn(30*24)) * time.Hour),
				CreatedAt: now,
				UpdatedAt: now,
			}

			if err := repos.Order.Create(ctx, order); err != nil {
				return err
			}
			totalOrders++
		}
	}

	logger.Info("Sample orders created", zap.Int("count", totalOrders))
	return nil
}

func makeItems() []entity.OrderItem {
	count := rand.Intn(3) + 1
	items := make([]entity.OrderItem, 0, count)
	for i := 0; i < count; i++ {
		item := catalog[rand.Intn(len(catalog))]
		item.Qty = rand.Intn(3) + 1
		items = append(items, item)
	}
	return items
}
