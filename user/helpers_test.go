package user_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/peterldowns/pgtestdb"
	"github.com/peterldowns/pgtestdb/migrators/golangmigrator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/zenkart/backend/auth"
	"github.com/zenkart/backend/user"
	userhttp "github.com/zenkart/backend/user/http"
)

func newTestPgDb(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ctx := context.Background()
	conf := pgtestdb.Config{
		DriverName: "pgx",
		User:       "zenkart", // local dev pg user
		Password:   "zenkart", // local dev pg password
		Host:       "localhost",
		Port:       "5433",
		Options:    "sslmode=disable",
	}
	gm := golangmigrator.New("../migrate/auth")
	config := pgtestdb.Custom(t, conf, gm)

	pool, err := pgxpool.New(ctx, config.URL())
	if err != nil {
		t.Fatalf("Failed to create connection pool: %v", err)
	}
	t.Cleanup(func() {
		pool.Close()
	})

	return pool
}

type testEnv struct {
	handler http.Handler
	codec   *auth.Codec
}

func setupUserHttp(t *testing.T) testEnv {
	t.Helper()
	pg := newTestPgDb(t)

	codec, err := auth.NewCodec([]byte("test"), "HS256", 30*time.Minute)
	require.NoError(t, err)

	userSrvc := user.NewUserSrvc(pg, codec)
	userHandler := userhttp.NewUserHttpHandler(userSrvc)

	router := chi.NewRouter()
	router.Use(auth.Middleware(codec))
	userHandler.RegisterRoutes(router, nil)

	return testEnv{handler: router, codec: codec}
}

func newJsonReq(method, path, bearer string, body map[string]interface{}) (*http.Request, error) {
	var buf bytes.Buffer
	if body != nil {
		if err := json.NewEncoder(&buf).Encode(body); err != nil {
			return nil, err
		}
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}
	return req, nil
}

func doJson(t *testing.T, handler http.Handler, method, path, bearer string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	req, err := newJsonReq(method, path, bearer, body)
	if err != nil {
		t.Fatalf("Failed to create request: %v", err)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

func register(t *testing.T, handler http.Handler, userData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJson(t, handler, http.MethodPost, "/api/auth/register", "", userData)
}

func login(t *testing.T, handler http.Handler, loginData map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	return doJson(t, handler, http.MethodPost, "/api/auth/login", "", loginData)
}

// extractToken pulls access_token out of a register/login success envelope.
func extractToken(t *testing.T, w *httptest.ResponseRecorder) string {
	t.Helper()

	var responseWrapper struct {
		Status string `json:"status"`
		Data   struct {
			AccessToken string `json:"access_token"`
			TokenType   string `json:"token_type"`
		} `json:"data"`
	}
	err := json.Unmarshal(w.Body.Bytes(), &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")

	assert.Equal(t, "success", responseWrapper.Status)
	assert.Equal(t, "bearer", responseWrapper.Data.TokenType)
	require.NotEmpty(t, responseWrapper.Data.AccessToken)
	return responseWrapper.Data.AccessToken
}

func assertErrorInHttpResponse(t *testing.T, w *httptest.ResponseRecorder, expectedCode string) {
	t.Helper()

	assert.NotEqual(t, http.StatusOK, w.Code, "Expected error status code")

	var errorResponse struct {
		Status  string `json:"status"`
		Code    string `json:"code"`
		Message string `json:"message"`
	}

	err := json.Unmarshal(w.Body.Bytes(), &errorResponse)
	require.NoError(t, err, "Failed to unmarshal error response body")

	assert.Equal(t, "error", errorResponse.Status, "Expected status to be 'error'")
	assert.Equal(t, expectedCode, errorResponse.Code, "Incorrect error code")
	assert.NotEmpty(t, errorResponse.Message, "Expected non-empty error message")
}

func aliceUserData() map[string]interface{} {
	return map[string]interface{}{
		"email":      "alice@x.com",
		"password":   "password123",
		"first_name": "Alice",
		"last_name":  "Apple",
	}
}
