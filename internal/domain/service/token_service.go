package service

import (
	"github.com/golang-jwt/jwt/v5"
)

// Claims defines the custom claims for shop-scoped API tokens.
type Claims struct {
	ShopID string   `json:"shop_id"`
	Scopes []string `json:"scopes,omitempty"`
	jwt.RegisteredClaims
}

// TokenService defines the interface for generating and validating JWTs.
type TokenService interface {
	// GenerateToken issues an access token for a shop.
	GenerateToken(shopID string, scopes []string) (string, error)

	// ValidateToken checks the validity of a token string.
	ValidateToken(tokenString string) (*Claims, error)
}
