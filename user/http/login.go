package http

import (
	"encoding/json"
	"net/http"

	"github.com/zenkart/backend/httpjson"
	"github.com/zenkart/backend/logger"
)

func (h *UserHttpHandler) Login(w http.ResponseWriter, r *http.Request) {
	type loginRequest struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}

	var request loginRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	token, err := h.userSrvc.Login(r.Context(), request.Email, request.Password)
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJson(w, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
