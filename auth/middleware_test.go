package auth_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenkart/backend/auth"
)

func setupAuthedRouter(t *testing.T, codec *auth.Codec) http.Handler {
	t.Helper()
	router := chi.NewRouter()
	router.Use(auth.Middleware(codec))

	router.Get("/public", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("public"))
	})

	router.Group(func(r chi.Router) {
		r.Use(auth.Require)
		r.Get("/private", func(w http.ResponseWriter, r *http.Request) {
			claims := auth.ClaimsFromContext(r.Context())
			w.Write([]byte(claims.Email()))
		})
	})

	return router
}

func doRequest(handler http.Handler, path, bearer string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func assertUnauthorizedEnvelope(t *testing.T, w *httptest.ResponseRecorder) {
	t.Helper()
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	var resp struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &resp)
	require.NoError(t, err, "Failed to unmarshal error response body")
	assert.Equal(t, "error", resp.Status)
	assert.Equal(t, "unauthorized", resp.Code)
}

func TestMiddlewarePassesThroughWithoutToken(t *testing.T) {
	codec := newTestCodec(t, "test-key", time.Hour)
	router := setupAuthedRouter(t, codec)

	w := doRequest(router, "/public", "")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "public", w.Body.String())
}

func TestRequireRejectsMissingToken(t *testing.T) {
	codec := newTestCodec(t, "test-key", time.Hour)
	router := setupAuthedRouter(t, codec)

	w := doRequest(router, "/private", "")
	assertUnauthorizedEnvelope(t, w)
}

func TestMiddlewareAcceptsValidToken(t *testing.T) {
	codec := newTestCodec(t, "test-key", time.Hour)
	router := setupAuthedRouter(t, codec)

	token, err := codec.Encode(auth.Identity{Email: "alice@x.com"})
	require.NoError(t, err)

	w := doRequest(router, "/private", token)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "alice@x.com", w.Body.String())
}

// Every decode failure must collapse into the same response so that
// callers cannot probe which check rejected them.
func TestMiddlewareUniformRejection(t *testing.T) {
	codec := newTestCodec(t, "test-key", time.Hour)
	router := setupAuthedRouter(t, codec)

	otherKey := newTestCodec(t, "other-key", time.Hour)
	forged, err := otherKey.Encode(auth.Identity{Email: "alice@x.com"})
	require.NoError(t, err)

	expiredCodec := newTestCodec(t, "test-key", -time.Second)
	expired, err := expiredCodec.Encode(auth.Identity{Email: "alice@x.com"})
	require.NoError(t, err)

	testCases := []struct {
		name  string
		token string
	}{
		{"Malformed", "garbage"},
		{"WrongKey", forged},
		{"Expired", expired},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			w := doRequest(router, "/private", tc.token)
			assertUnauthorizedEnvelope(t, w)
		})
	}
}
