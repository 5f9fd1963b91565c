// internals/middlewares/auth/auth_middleware.go
package auth

import (
	"errors"
	"log"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"
)

const expLeeway = 30 * time.Second

// AuthMiddleware memverifikasi bearer token (HS256) di setiap route admin.
// Kontrak UI tetap: tanpa sesi valid, klien diarahkan kembali ke login (401).
func AuthMiddleware(secret string, blacklist *TokenBlacklist) fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, err.Error())
		}

		if blacklist != nil && blacklist.Contains(tokenString) {
			log.Println("[WARNING] Token found in blacklist")
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token is revoked")
		}

		if secret == "" {
			log.Println("[ERROR] JWT secret is empty")
			return fiber.NewError(fiber.StatusInternalServerError, "Missing JWT Secret")
		}

		claims := jwt.MapClaims{}
		parser := jwt.Parser{SkipClaimsValidation: true}
		if _, err := parser.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
			if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
				return nil, errors.New("unexpected signing method")
			}
			return []byte(secret), nil
		}); err != nil {
			log.Println("[ERROR] Token parse failed:", err)
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token parse error")
		}

		if err := validateTokenExpiry(claims, expLeeway); err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Token expired")
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "Unauthorized - Invalid or missing user ID")
		}
		c.Locals("user_id", sub)

		if name, ok := claims["user_name"].(string); ok {
			c.Locals("user_name", name)
		}
		if role, ok := claims["role"].(string); ok {
			c.Locals("role", role)
		}
		c.Locals("access_token", tokenString)

		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	header := strings.TrimSpace(c.Get(fiber.HeaderAuthorization))
	if header != "" {
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
			return "", errors.New("Unauthorized - Malformed Authorization header")
		}
		return strings.TrimSpace(parts[1]), nil
	}

	// fallback cookie untuk klien browser
	if cookie := strings.TrimSpace(c.Cookies("access_token")); cookie != "" {
		return cookie, nil
	}
	return "", errors.New("Unauthorized - Missing token")
}

func validateTokenExpiry(claims jwt.MapClaims, leeway time.Duration) error {
	expRaw, ok := claims["exp"]
	if !ok {
		return errors.New("missing exp claim")
	}
	expFloat, ok := expRaw.(float64)
	if !ok {
		return errors.New("invalid exp claim")
	}
	expiresAt := time.Unix(int64(expFloat), 0)
	if time.Now().After(expiresAt.Add(leeway)) {
		return errors.New("token expired")
	}
	return nil
}
