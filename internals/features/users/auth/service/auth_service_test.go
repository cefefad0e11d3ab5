package service

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v4"
	"github.com/google/uuid"

	"englishku_backend/internals/configs"
)

func TestPasswordHashRoundtrip(t *testing.T) {
	hash, err := HashPassword("correct horse battery staple")
	if err != nil {
		t.Fatalf("HashPassword: %v", err)
	}
	if hash == "correct horse battery staple" {
		t.Fatal("password stored in plaintext")
	}
	if !CheckPassword(hash, "correct horse battery staple") {
		t.Fatal("valid password rejected")
	}
	if CheckPassword(hash, "wrong password") {
		t.Fatal("invalid password accepted")
	}
}

func TestGenerateTokenClaims(t *testing.T) {
	configs.JWTSecret = "test-secret"
	userID := uuid.New()

	raw, err := GenerateToken(userID, "admin")
	if err != nil {
		t.Fatalf("GenerateToken: %v", err)
	}

	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(raw, claims, func(tok *jwt.Token) (interface{}, error) {
		return []byte("test-secret"), nil
	})
	if err != nil {
		t.Fatalf("parse token: %v", err)
	}
	if !token.Valid {
		t.Fatal("token is not valid")
	}

	if got := claims["user_id"]; got != userID.String() {
		t.Errorf("user_id claim = %v, want %v", got, userID)
	}
	if got := claims["role"]; got != "admin" {
		t.Errorf("role claim = %v, want admin", got)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		t.Fatal("exp claim missing")
	}
	remaining := time.Until(time.Unix(int64(exp), 0))
	if remaining < 29*24*time.Hour || remaining > 31*24*time.Hour {
		t.Errorf("token lifetime = %v, want about %v", remaining, TokenLifetime)
	}
}
