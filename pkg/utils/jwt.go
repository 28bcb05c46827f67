package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// OwnerClaims represents the claims in an owner token
type OwnerClaims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// JWTManager issues and validates the short-lived owner tokens that gate
// destructive operations (transaction delete, reprint).
type JWTManager struct {
	secretKey   []byte
	tokenExpiry time.Duration
}

// NewJWTManager creates a new JWT manager
func NewJWTManager(secret string, tokenExpiry time.Duration) *JWTManager {
	return &JWTManager{
		secretKey:   []byte(secret),
		tokenExpiry: tokenExpiry,
	}
}

// GenerateOwnerToken generates a new owner token
func (m *JWTManager) GenerateOwnerToken() (string, error) {
	claims := &OwnerClaims{
		Role: "owner",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(m.tokenExpiry)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			NotBefore: jwt.NewNumericDate(time.Now()),
			Issuer:    "kacapos",
			Subject:   "owner",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(m.secretKey)
}

// ValidateOwnerToken validates an owner token and returns the claims
func (m *JWTManager) ValidateOwnerToken(tokenString string) (*OwnerClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &OwnerClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return m.secretKey, nil
	})

	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*OwnerClaims)
	if !ok || !token.Valid || claims.Role != "owner" {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
