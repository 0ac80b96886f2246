package middleware

import (
	"fmt"
	"log"
	"strings"

	"github.com/dgrijalva/jwt-go"
	"github.com/gofiber/fiber/v2"
)

// ClaimsKey is the fiber.Ctx Locals key holding the caller's jwt.MapClaims.
const ClaimsKey = "claims"

// Identity is a Fiber middleware that attaches the caller's JWT claims to the
// request when a valid bearer token is present. It enforces nothing: requests
// without a token, or with a bad one, continue anonymously.
// An empty secret disables token parsing entirely.
func Identity(secret string) fiber.Handler {
	key := []byte(secret)
	return func(c *fiber.Ctx) error {
		if len(key) == 0 {
			return c.Next()
		}

		authHeader := c.Get(fiber.HeaderAuthorization)
		if authHeader == "" {
			return c.Next()
		}

		// Expected format: "Bearer <token>"
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Next()
		}

		claims, err := parseToken(parts[1], key)
		if err != nil {
			log.Printf("Ignoring bearer token: %v", err)
			return c.Next()
		}

		c.Locals(ClaimsKey, claims)
		return c.Next()
	}
}

// ClaimsFrom returns the claims stored by Identity, if any.
func ClaimsFrom(c *fiber.Ctx) (jwt.MapClaims, bool) {
	claims, ok := c.Locals(ClaimsKey).(jwt.MapClaims)
	return claims, ok
}

func parseToken(tokenString string, key []byte) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", err)
	}

	if claims, ok := token.Claims.(jwt.MapClaims); ok && token.Valid {
		return claims, nil
	}
	return nil, fmt.Errorf("invalid token")
}
