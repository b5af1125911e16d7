// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"time"

	"slotwise/config"
	"slotwise/internal/domain/service"
	"slotwise/internal/errors"

	"github.com/golang-jwt/jwt/v5"
)

const defaultAccessTTL = 12 * time.Hour

var errMissingShop = errors.New("token has no shop_id claim")

// jwtService issues and checks HS256 tokens scoped to one shop.
type jwtService struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTService is the constructor for jwtService.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}

	return &jwtService{
		secret:    []byte(cfg.SecretKey.Access),
		issuer:    cfg.Env.ServiceName,
		accessTTL: defaultAccessTTL,
		now:       time.Now,
	}, nil
}

// GenerateToken creates an access token for shopID.
func (s *jwtService) GenerateToken(shopID string, scopes []string) (string, error) {
	if shopID == "" {
		return "", errMissingShop
	}

	now := s.now()
	claims := service.Claims{
		ShopID: shopID,
		Scopes: scopes,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   shopID,
			Issuer:    s.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.accessTTL)),
		},
	}

	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}

	return token, nil
}

// ValidateToken parses tokenString and returns its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	claims := &service.Claims{}

	_, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}

		return s.secret, nil
	}, jwt.WithTimeFunc(s.now), jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		return nil, errors.Wrap(err, "invalid token")
	}
	if claims.ShopID == "" {
		return nil, errMissingShop
	}

	return claims, nil
}
