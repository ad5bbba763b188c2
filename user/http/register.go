package http

import (
	"encoding/json"
	"net/http"

	"github.com/zenkart/backend/httpjson"
	"github.com/zenkart/backend/logger"
	"github.com/zenkart/backend/user"
)

func (h *UserHttpHandler) Register(w http.ResponseWriter, r *http.Request) {
	type registerRequest struct {
		Email     string `json:"email"`
		Password  string `json:"password"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	}

	var request registerRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		http.Error(w, http.StatusText(http.StatusBadRequest), http.StatusBadRequest)
		return
	}

	token, err := h.userSrvc.Register(r.Context(), user.RegisterParams{
		Email:     request.Email,
		Password:  request.Password,
		FirstName: request.FirstName,
		LastName:  request.LastName,
	})
	if err != nil {
		httpjson.HandleError(logger.FromContext(r.Context()), w, err)
		return
	}

	httpjson.WriteSuccessJsonCode(w, http.StatusCreated, tokenResponse{
		AccessToken: token,
		TokenType:   "bearer",
	})
}
