package auth

import (
	"testing"
	"time"

	"bazaar/config"
	"bazaar/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func testConfig(secret string, ttl time.Duration) *config.Config {
	cfg := &config.Config{
		Auth: &config.AuthConfig{TokenTTL: ttl},
	}
	cfg.SecretKey.Access = secret

	return cfg
}

func testAccount(role entity.Role) *entity.Account {
	return &entity.Account{
		ID:     uuid.New(),
		Mobile: "9876543210",
		Role:   role,
	}
}

func TestJWTService_GenerateAndValidateToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.NotNil(t, jwtService)

	account := testAccount(entity.RoleVendor)

	token, err := jwtService.GenerateToken(account)
	assert.NoError(t, err)
	assert.NotEmpty(t, token)

	claims, err := jwtService.ValidateToken(token)
	assert.NoError(t, err)
	assert.NotNil(t, claims)
	assert.Equal(t, account.ID, claims.AccountID)
	assert.Equal(t, account.Mobile, claims.Mobile)
	assert.Equal(t, entity.RoleVendor, claims.Role)
}

func TestJWTService_InvalidToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Clearly non-JWT format
	claims, err := jwtService.ValidateToken("clearly-not-a-jwt-token-format")
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_ExpiredToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing", -time.Minute)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(testAccount(entity.RoleCustomer))
	assert.NoError(t, err)

	claims, err := jwtService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_TamperedToken(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	token, err := jwtService.GenerateToken(testAccount(entity.RoleCustomer))
	assert.NoError(t, err)

	// Token signed with a different secret must not validate.
	otherService, err := NewJWTService(testConfig("another_secret_entirely_for_testing", time.Hour))
	assert.NoError(t, err)

	claims, err := otherService.ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}

func TestJWTService_EmptySecret(t *testing.T) {
	cfg := testConfig("", time.Hour)

	jwtService, err := NewJWTService(cfg)
	assert.Error(t, err)
	assert.Nil(t, jwtService)
	assert.Contains(t, err.Error(), "jwt secret must be provided")
}

func TestJWTService_DefaultTokenDuration(t *testing.T) {
	cfg := testConfig("test_access_secret_key_very_long_for_testing", 0)

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)

	// Unset TTL falls back to 7 days.
	assert.Equal(t, time.Hour*24*7, jwtService.GetTokenDuration())
}

func TestJWTService_MissingAuthSection(t *testing.T) {
	cfg := &config.Config{}
	cfg.SecretKey.Access = "test_access_secret_key_very_long_for_testing"

	jwtService, err := NewJWTService(cfg)
	assert.NoError(t, err)
	assert.Equal(t, time.Hour*24*7, jwtService.GetTokenDuration())
}
