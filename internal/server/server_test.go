package server_test

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"productsvc/internal/config"
	"productsvc/internal/handlers"
	"productsvc/internal/repositories"
	"productsvc/internal/server"
	"productsvc/internal/services"
	"productsvc/internal/validators"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type failingPinger struct{}

func (failingPinger) Ping(context.Context) error { return errors.New("connection refused") }

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func testConfig() config.Config {
	return config.Config{CORSAllowedOrigins: "http://localhost:4200"}
}

func productHandler() *handlers.ProductHandler {
	v := validators.NewProductValidator()
	svc := services.NewProductService(repositories.NewMockProductRepository(), v)
	return handlers.NewProductHandler(svc, v)
}

func TestHealth(t *testing.T) {
	app := server.New(testConfig(), repositories.NewMockProductRepository())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	var body map[string]string
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	assert.Equal(t, "healthy", body["status"])
}

func TestHealth_StoreDown(t *testing.T) {
	app := server.New(testConfig(), failingPinger{})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/health", nil), -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)
}

func TestCORS_AllowListedOrigin(t *testing.T) {
	app := server.New(testConfig(), repositories.NewMockProductRepository(), productHandler())

	req := httptest.NewRequest(http.MethodOptions, "/api/products", nil)
	req.Header.Set("Origin", "http://localhost:4200")
	req.Header.Set("Access-Control-Request-Method", http.MethodPut)
	req.Header.Set("Access-Control-Request-Headers", "X-Custom-Header")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, http.StatusNoContent, resp.StatusCode)
	assert.Equal(t, "http://localhost:4200", resp.Header.Get("Access-Control-Allow-Origin"))
	assert.Contains(t, resp.Header.Get("Access-Control-Allow-Methods"), http.MethodPut)
	assert.Equal(t, "X-Custom-Header", resp.Header.Get("Access-Control-Allow-Headers"))
}

func TestCORS_OtherOriginNotAllowed(t *testing.T) {
	app := server.New(testConfig(), repositories.NewMockProductRepository(), productHandler())

	req := httptest.NewRequest(http.MethodGet, "/api/products", nil)
	req.Header.Set("Origin", "https://evil.example.com")
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Empty(t, resp.Header.Get("Access-Control-Allow-Origin"))
}

func TestUnknownRouteIsProblem(t *testing.T) {
	app := server.New(testConfig(), repositories.NewMockProductRepository(), productHandler())

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/nothing-here", nil), -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, handlers.MIMEProblemJSON, resp.Header.Get("Content-Type"))
}
