package http

import (
	"net/http"

	"github.com/zenkart/backend/auth"
	"github.com/zenkart/backend/httpjson"
	"github.com/zenkart/backend/logger"
)

func (h *OrderHttpHandler) List(w http.ResponseWriter, r *http.Request) {
	claims := auth.ClaimsFromContext(r.Context())

	orders, err := h.orderSrvc.ListByUser(r.Context(), claims.Email())
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	response := make([]orderResponse, 0, len(orders))
	for i := range orders {
		response = append(response, mapOrder(&orders[i]))
	}

	httpjson.WriteSuccessJson(w, response)
}
