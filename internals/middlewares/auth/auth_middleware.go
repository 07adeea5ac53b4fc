package auth

import (
	"errors"
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt/v4"

	"github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/configs"
	helper "github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/helpers"
)

// AdminAuth requires a valid admin bearer token. The admin id from the sub
// claim is stored in Locals("admin_id").
func AdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, err.Error())
		}

		claims, err := parseClaims(tokenString)
		if err != nil {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, token failed")
		}

		sub, _ := claims["sub"].(string)
		if sub == "" {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Not authorized, invalid token subject")
		}
		c.Locals("admin_id", sub)

		return c.Next()
	}
}

// OptionalAdminAuth sets Locals("admin_id") when a valid bearer token is
// present but never rejects the request. Used where public and admin views of
// the same route differ (course listing).
func OptionalAdminAuth() fiber.Handler {
	return func(c *fiber.Ctx) error {
		tokenString, err := extractBearerToken(c)
		if err != nil {
			return c.Next()
		}
		claims, err := parseClaims(tokenString)
		if err != nil {
			return c.Next()
		}
		if sub, _ := claims["sub"].(string); sub != "" {
			c.Locals("admin_id", sub)
		}
		return c.Next()
	}
}

func extractBearerToken(c *fiber.Ctx) (string, error) {
	authHeader := c.Get(fiber.HeaderAuthorization)
	if authHeader == "" {
		return "", errors.New("Not authorized, no token")
	}
	parts := strings.SplitN(authHeader, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || parts[1] == "" {
		return "", errors.New("Not authorized, malformed token")
	}
	return parts[1], nil
}

func parseClaims(tokenString string) (jwt.MapClaims, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return nil, errors.New("missing JWT secret")
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(secret), nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	if exp, ok := claims["exp"].(float64); ok {
		if time.Now().After(time.Unix(int64(exp), 0)) {
			return nil, errors.New("token expired")
		}
	}
	return claims, nil
}
