package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/zenkart/backend/auth"
	"github.com/zenkart/backend/user"
)

type UserHttpHandler struct {
	userSrvc *user.UserSrvc
}

func NewUserHttpHandler(userSrvc *user.UserSrvc) *UserHttpHandler {
	return &UserHttpHandler{
		userSrvc: userSrvc,
	}
}

// RegisterRoutes mounts the auth service endpoints. credentialLimit, when
// non-nil, wraps the register/login endpoints (they are the bruteforce
// surface); the profile endpoints sit behind auth.Require.
func (h *UserHttpHandler) RegisterRoutes(r chi.Router, credentialLimit func(http.Handler) http.Handler) {
	r.Group(func(r chi.Router) {
		if credentialLimit != nil {
			r.Use(credentialLimit)
		}
		r.Post("/api/auth/register", h.Register)
		r.Post("/api/auth/login", h.Login)
	})

	r.Group(func(r chi.Router) {
		r.Use(auth.Require)
		r.Get("/api/auth/profile", h.GetProfile)
		r.Put("/api/auth/profile", h.UpdateProfile)
	})
}
