package middleware_test

import (
	"io"
	"log"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"
	"time"

	"productsvc/internal/middleware"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test_jwt_secret"

func TestMain(m *testing.M) {
	log.SetOutput(io.Discard)
	os.Exit(m.Run())
}

func newApp(secret string) *fiber.App {
	app := fiber.New()
	app.Use(middleware.Identity(secret))
	app.Get("/whoami", func(c *fiber.Ctx) error {
		claims, ok := middleware.ClaimsFrom(c)
		if !ok {
			return c.SendString("anonymous")
		}
		return c.SendString(claims["sub"].(string))
	})
	return app
}

func signed(t *testing.T, secret string, exp time.Time) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": "alice",
		"exp": exp.Unix(),
	})
	s, err := token.SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func call(t *testing.T, app *fiber.App, authorization string) (int, string) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, "/whoami", nil)
	if authorization != "" {
		req.Header.Set("Authorization", authorization)
	}
	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func TestIdentity_ValidTokenAttachesClaims(t *testing.T) {
	app := newApp(testSecret)

	status, body := call(t, app, "Bearer "+signed(t, testSecret, time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", body)
}

func TestIdentity_NeverRejects(t *testing.T) {
	app := newApp(testSecret)

	cases := map[string]string{
		"no header":     "",
		"wrong scheme":  "Basic dXNlcjpwYXNz",
		"garbage token": "Bearer not.a.token",
		"wrong secret":  "Bearer " + signed(t, "other_secret", time.Now().Add(time.Hour)),
		"expired":       "Bearer " + signed(t, testSecret, time.Now().Add(-time.Hour)),
	}
	for name, header := range cases {
		t.Run(name, func(t *testing.T) {
			status, body := call(t, app, header)
			assert.Equal(t, http.StatusOK, status)
			assert.Equal(t, "anonymous", body)
		})
	}
}

func TestIdentity_DisabledWithoutSecret(t *testing.T) {
	app := newApp("")

	status, body := call(t, app, "Bearer "+signed(t, testSecret, time.Now().Add(time.Hour)))

	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "anonymous", body)
}
