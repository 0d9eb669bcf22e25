package response

import (
	"time"

	"shop-backend/internal/data/entity"
)

type OrderItemResponse struct {
	Name  string  `json:"name"`
	Qty   int     `json:"qty"`
	Price float64 `json:"price"`
}

type OrderResponse struct {
	ID        string              `json:"id"`
	UserID    string              `json:"user_id"`
	Items     []OrderItemResponse `json:"items"`
	Status    entity.OrderStatus  `json:"status"`
	Total     float64             `json:"total"`
	Currency  string              `json:"currency"`
	PlacedAt  time.Time           `json:"placed_at"`
	CreatedAt time.Time           `json:"created_at"`
}

func OrderToResponse(order *entity.Order) OrderResponse {
	items := make([]OrderItemResponse, len(order.Items))
	for i, item := range order.Items {
		items[i] = OrderItemResponse{
			Name:  item.Name,
			Qty:   item.Qty,
			Price: item.Price,
		}
	}

	return OrderResponse{
		ID:        order.ID,
		UserID:    order.UserID,
		Items:     items,
		Status:    order.Status,
		Total:     order.Total,
		Currency:  order.Currency,
		PlacedAt:  order.PlacedAt,
		CreatedAt: order.CreatedAt,
	}
}
