package repository

import (
	"context"

	"shop-backend/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User  UserRepository
	Order OrderRepository
}

func NewRepository(db database.MongoIface, log *zap.Logger) *Repository {
	return &Repository{
		User:  NewUserRepository(db, log),
		Order: NewOrderRepository(db, log),
	}
}

// EnsureIndexes membuat semua index yang dibutuhkan (unique email dll)
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	if err := r.User.EnsureIndexes(ctx); err != nil {
		return err
	}
	return r.Order.EnsureIndexes(ctx)
}
