// Package auth provides concrete implementations for authentication-related domain services.
package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"bazaar/config"
	"bazaar/internal/domain/entity"
	"bazaar/internal/domain/service"
)

// jwtService is a concrete implementation of the TokenService interface using the JWT standard.
type jwtService struct {
	secret   string        // Secret key for signing access tokens.
	tokenTTL time.Duration // Time-to-live for access tokens.
}

// NewJWTService is the constructor for jwtService.
// It takes configuration values to create a new token service instance.
func NewJWTService(cfg *config.Config) (service.TokenService, error) {
	if cfg.SecretKey.Access == "" {
		return nil, errors.New("jwt secret must be provided")
	}
	ttl := time.Hour * 24 * 7
	if cfg.Auth != nil && cfg.Auth.TokenTTL > 0 {
		ttl = cfg.Auth.TokenTTL
	}
	return &jwtService{
		secret:   cfg.SecretKey.Access,
		tokenTTL: ttl,
	}, nil
}

// GenerateToken creates a signed access token carrying the account's
// identity claims.
func (s *jwtService) GenerateToken(account *entity.Account) (string, error) {
	now := time.Now()
	claims := jwt.MapClaims{
		"sub":    account.ID.String(),
		"mobile": account.Mobile,
		"role":   account.Role.String(),
		"iat":    now.Unix(),
		"exp":    now.Add(s.tokenTTL).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.secret))
}

// ValidateToken checks the signature and expiry of a token string and
// extracts its claims.
func (s *jwtService) ValidateToken(tokenString string) (*service.Claims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (any, error) {
		// Ensure the signing method is what we expect.
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(s.secret), nil
	})
	if err != nil {
		return nil, err
	}

	mapClaims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}

	sub, err := mapClaims.GetSubject()
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}
	accountID, err := uuid.Parse(sub)
	if err != nil {
		return nil, jwt.ErrTokenInvalidSubject
	}

	mobile, _ := mapClaims["mobile"].(string)
	roleStr, _ := mapClaims["role"].(string)
	role := entity.Role(roleStr)
	if !role.IsValid() {
		return nil, jwt.ErrTokenInvalidClaims
	}

	return &service.Claims{
		AccountID: accountID,
		Mobile:    mobile,
		Role:      role,
	}, nil
}

// GetTokenDuration returns the configured access token lifetime.
func (s *jwtService) GetTokenDuration() time.Duration {
	return s.tokenTTL
}
