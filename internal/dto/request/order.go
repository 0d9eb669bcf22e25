package request

type OrderItemRequest struct {
	Name  string  `json:"name" validate:"required"`
	Qty   int     `json:"qty" validate:"required,min=1"`
	Price float64 `json:"price" validate:"min=0"`
}

type CreateOrderRequest struct {
	Items    []OrderItemRequest `json:"items" validate:"required,min=1,dive"`
	Currency string             `json:"currency,omitempty" validate:"omitempty,len=3"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=pending processing completed cancelled"`
}
