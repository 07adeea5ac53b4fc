package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/configs"
)

const tokenTTL = 24 * time.Hour

// GenerateToken issues an HS256 bearer token with the admin id as subject.
func GenerateToken(adminID uuid.UUID) (string, error) {
	secret := configs.JWTSecret
	if secret == "" {
		return "", errors.New("missing JWT secret")
	}

	now := time.Now()
	claims := jwt.MapClaims{
		"sub": adminID.String(),
		"iat": now.Unix(),
		"exp": now.Add(tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}
