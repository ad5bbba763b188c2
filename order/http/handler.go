package http

import (
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/zenkart/backend/auth"
	"github.com/zenkart/backend/order"
)

type OrderHttpHandler struct {
	orderSrvc *order.OrderSrvc
}

func NewOrderHttpHandler(orderSrvc *order.OrderSrvc) *OrderHttpHandler {
	return &OrderHttpHandler{
		orderSrvc: orderSrvc,
	}
}

// RegisterRoutes mounts the orders endpoints; every one of them requires
// a verified bearer token.
func (h *OrderHttpHandler) RegisterRoutes(r chi.Router) {
	r.Group(func(r chi.Router) {
		r.Use(auth.Require)
		r.Post("/api/orders", h.Create)
		r.Get("/api/orders", h.List)
	})
}

type orderResponse struct {
	ID        int64   `json:"id"`
	UserEmail string  `json:"user_email"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func mapOrder(o *order.Order) orderResponse {
	return orderResponse{
		ID:        o.ID,
		UserEmail: o.UserEmail,
		ProductID: o.ProductID,
		Quantity:  o.Quantity,
		Price:     o.Price,
		Currency:  o.Currency,
		Status:    o.Status,
		CreatedAt: o.CreatedAt.Format(time.RFC3339),
	}
}
