package http

import (
	"encoding/json"
	"net/http"

	"github.com/zenkart/backend/auth"
	"github.com/zenkart/backend/httpjson"
	"github.com/zenkart/backend/logger"
	"github.com/zenkart/backend/order"
)

func (h *OrderHttpHandler) Create(w http.ResponseWriter, r *http.Request) {
	type createOrderRequest struct {
		ProductID int64   `json:"product_id"`
		Quantity  int     `json:"quantity"`
		Price     float64 `json:"price"`
		Currency  string  `json:"currency"`
	}

	var request createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	claims := auth.ClaimsFromContext(r.Context())

	created, err := h.orderSrvc.Create(r.Context(), claims.Email(), order.CreateOrderParams{
		ProductID: request.ProductID,
		Quantity:  request.Quantity,
		Price:     request.Price,
		Currency:  request.Currency,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJsonCode(w, http.StatusCreated, mapOrder(created))
}
