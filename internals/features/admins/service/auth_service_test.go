package service

import (
	"testing"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"github.com/OlaiwonAbdullahi/mentle-mentorship-backend/internals/configs"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("s3cret-pass")
	if err != nil {
		t.Fatalf("HashPassword returned error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Error("Expected hash to differ from plaintext")
	}

	if err := CheckPasswordHash(hash, "s3cret-pass"); err != nil {
		t.Errorf("Expected correct password to verify, got %v", err)
	}
	if err := CheckPasswordHash(hash, "wrong-pass"); err == nil {
		t.Error("Expected wrong password to fail verification")
	}
}

func TestGenerateToken(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = "test-secret"
	defer func() { configs.JWTSecret = prev }()

	adminID := uuid.New()
	signed, err := GenerateToken(adminID)
	if err != nil {
		t.Fatalf("GenerateToken returned error: %v", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(signed, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("Token failed to parse: %v", err)
	}
	if !token.Valid {
		t.Fatal("Expected token to be valid")
	}
	if token.Method.Alg() != "HS256" {
		t.Errorf("Expected HS256 signing, got %s", token.Method.Alg())
	}
	if claims["sub"] != adminID.String() {
		t.Errorf("Expected sub claim '%s', got '%v'", adminID, claims["sub"])
	}
	if _, ok := claims["exp"]; !ok {
		t.Error("Expected exp claim to be set")
	}
}

func TestGenerateTokenWithoutSecret(t *testing.T) {
	prev := configs.JWTSecret
	configs.JWTSecret = ""
	defer func() { configs.JWTSecret = prev }()

	if _, err := GenerateToken(uuid.New()); err == nil {
		t.Error("Expected error when JWT secret is missing")
	}
}
