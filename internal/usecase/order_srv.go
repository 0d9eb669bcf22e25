package usecase

import (
	"context"
	"fmt"
	"time"

	"shop-backend/internal/data/entity"
	"shop-backend/internal/data/repository"
	"shop-backend/internal/dto/request"
	"shop-backend/internal/dto/response"
	"shop-backend/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type OrderService interface {
	CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error)
	GetOrder(ctx context.Context, requesterID string, isAdmin bool, orderID string) (*response.OrderResponse, error)
	GetMyOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error)
	UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error)
}

type orderService struct {
	repo *repository.Repository
	log  *zap.Logger
}

func NewOrderService(repo *repository.Repository, log *zap.Logger) OrderService {
	return &orderService{
		repo: repo,
		log:  log,
	}
}

func (s *orderService) CreateOrder(ctx context.Context, userID string, req *request.CreateOrderRequest) (*response.OrderResponse, error) {
	// 1. Validasi input
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Create order validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	// 2. Convert items
	items := make([]entity.OrderItem, len(req.Items))
	for i, item := range req.Items {
		items[i] = entity.OrderItem{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price,
		}
	}

	// 3. Compute total ONCE at creation. An invalid item fails the
	// whole order here, nothing is clamped.
	total, err := entity.ComputeTotal(items)
	if err != nil {
		s.log.Warn("Order rejected", zap.Error(err), zap.String("user_id", userID))
		return nil, err
	}

	currency := req.Currency
	if currency == "" {
		currency = entity.DefaultCurrency
	}

	// 4. Create order entity
	now := time.Now()
	order := &entity.Order{
		ID:        uuid.New().String(),
		UserID:    userID,
		Items:     items,
		Status:    entity.StatusPending,
		Total:     total,
		Currency:  currency,
		PlacedAt:  now,
		CreatedAt: now,
		UpdatedAt: now,
	}

	// 5. Save order
	if err := s.repo.Order.Create(ctx, order); err != nil {
		s.log.Error("Failed to create order", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to create order")
	}

	s.log.Info("Order created",
		zap.String("order_id", order.ID),
		zap.String("user_id", userID),
		zap.Float64("total", total),
		zap.Int("items", len(items)))

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetOrder(ctx context.Context, requesterID string, isAdmin bool, orderID string) (*response.OrderResponse, error) {
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to get order")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	// Owner atau admin saja
	if !isAdmin && order.UserID != requesterID {
		s.log.Warn("Order access denied",
			zap.String("order_id", orderID),
			zap.String("requester_id", requesterID))
		return nil, ErrForbidden
	}

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func (s *orderService) GetMyOrders(ctx context.Context, userID string, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	orders, err := s.repo.Order.FindByUser(ctx, userID, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get user orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get orders")
	}

	total, err := s.repo.Order.CountByUser(ctx, userID)
	if err != nil {
		s.log.Error("Failed to count user orders", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to count orders")
	}

	return response.NewPaginatedResponse(toOrderResponses(orders), req.Page, req.Limit(), total), nil
}

func (s *orderService) GetAllOrders(ctx context.Context, req *request.PaginatedRequest) (*response.PaginatedResponse[response.OrderResponse], error) {
	if req.Page < 1 {
		req.Page = 1
	}

	orders, err := s.repo.Order.FindAll(ctx, req.Limit(), req.Offset())
	if err != nil {
		s.log.Error("Failed to get all orders", zap.Error(err))
		return nil, fmt.Errorf("failed to get orders")
	}

	total, err := s.repo.Order.CountAll(ctx)
	if err != nil {
		s.log.Error("Failed to count orders", zap.Error(err))
		return nil, fmt.Errorf("failed to count orders")
	}

	return response.NewPaginatedResponse(toOrderResponses(orders), req.Page, req.Limit(), total), nil
}

// UpdateStatus sets any status from the enumerated set. There is no
// transition graph: completed -> pending is as legal as
// pending -> processing. Total stays the creation-time snapshot.
func (s *orderService) UpdateStatus(ctx context.Context, orderID string, req *request.UpdateOrderStatusRequest) (*response.OrderResponse, error) {
	// 1. Validasi
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		s.log.Warn("Update status validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	status := entity.OrderStatus(req.Status)
	if !status.IsValid() {
		return nil, fmt.Errorf("validation failed: invalid status %q", req.Status)
	}

	// 2. Find order
	order, err := s.repo.Order.FindByID(ctx, orderID)
	if err != nil {
		s.log.Error("Failed to find order", zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to get order")
	}
	if order == nil {
		return nil, ErrOrderNotFound
	}

	// 3. Update status
	if err := s.repo.Order.UpdateStatus(ctx, orderID, status); err != nil {
		s.log.Error("Failed to update order status",
			zap.Error(err), zap.String("order_id", orderID))
		return nil, fmt.Errorf("failed to update order")
	}

	s.log.Info("Order status updated",
		zap.String("order_id", orderID),
		zap.String("from", string(order.Status)),
		zap.String("to", string(status)))

	order.Status = status
	order.UpdatedAt = time.Now()

	resp := response.OrderToResponse(order)
	return &resp, nil
}

func toOrderResponses(orders []*entity.Order) []response.OrderResponse {
	responses := make([]response.OrderResponse, len(orders))
	for i, order := range orders {
		responses[i] = response.OrderToResponse(order)
	}
	return responses
}
