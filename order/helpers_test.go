package order_test

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
	"github.com/zenkart/backend/order"
	orderhttp "github.com/zenkart/backend/order/http"
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
	gm := golangmigrator.New("../migrate/orders")
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

func setupOrderHttp(t *testing.T) testEnv {
	t.Helper()
	pg := newTestPgDb(t)

	codec, err := auth.NewCodec([]byte("test"), "HS256", 30*time.Minute)
	require.NoError(t, err)

	orderSrvc := order.NewOrderSrvc(pg)
	orderHandler := orderhttp.NewOrderHttpHandler(orderSrvc)

	router := chi.NewRouter()
	router.Use(auth.Middleware(codec))
	orderHandler.RegisterRoutes(router)

	return testEnv{handler: router, codec: codec}
}

// issueToken mints a token the way the auth service would; the orders
// service only ever sees the token, never the account.
func issueToken(t *testing.T, codec *auth.Codec, email string) string {
	t.Helper()
	token, err := codec.Encode(auth.Identity{
		Email:     email,
		FirstName: "Test",
		LastName:  "User",
	})
	require.NoError(t, err)
	return token
}

func doJson(t *testing.T, handler http.Handler, method, path, bearer string, body map[string]interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		err := json.NewEncoder(&buf).Encode(body)
		require.NoError(t, err)
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if bearer != "" {
		req.Header.Set("Authorization", "Bearer "+bearer)
	}

	w := httptest.NewRecorder()
	handler.ServeHTTP(w, req)
	return w
}

type orderJson struct {
	ID        int64   `json:"id"`
	UserEmail string  `json:"user_email"`
	ProductID int64   `json:"product_id"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
	Currency  string  `json:"currency"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func parseOrderResponse(t *testing.T, body []byte) orderJson {
	t.Helper()
	var responseWrapper struct {
		Status string    `json:"status"`
		Data   orderJson `json:"data"`
	}
	err := json.Unmarshal(body, &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")
	assert.Equal(t, "success", responseWrapper.Status)
	return responseWrapper.Data
}

func parseOrderListResponse(t *testing.T, body []byte) []orderJson {
	t.Helper()
	var responseWrapper struct {
		Status string      `json:"status"`
		Data   []orderJson `json:"data"`
	}
	err := json.Unmarshal(body, &responseWrapper)
	require.NoError(t, err, "Failed to unmarshal response body")
	assert.Equal(t, "success", responseWrapper.Status)
	return responseWrapper.Data
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
