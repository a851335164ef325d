package utils_test

import (
	"testing"
	"time"

	"github.com/VisKlo/furniture-inventory/config"
	"github.com/VisKlo/furniture-inventory/internal/utils"

	qt "github.com/frankban/quicktest"
)

func configureSecret(hours int) {
	config.AppConfig = &config.Config{
		Server: config.ServerConfig{
			JWTSecret:          "test-secret",
			JWTExpirationHours: hours,
		},
	}
}

func TestTokenRoundTrip(t *testing.T) {
	c := qt.New(t)
	configureSecret(168)

	token, err := utils.GenerateToken(42)
	c.Assert(err, qt.IsNil)

	claims, err := utils.ValidateToken(token)
	c.Assert(err, qt.IsNil)
	c.Assert(claims.UserID, qt.Equals, uint(42))

	// 7-day expiry
	remaining := time.Until(claims.ExpiresAt.Time)
	c.Assert(remaining > 167*time.Hour, qt.IsTrue)
	c.Assert(remaining <= 168*time.Hour, qt.IsTrue)
}

func TestValidateTokenRejectsTampering(t *testing.T) {
	c := qt.New(t)
	configureSecret(1)

	token, err := utils.GenerateToken(1)
	c.Assert(err, qt.IsNil)

	_, err = utils.ValidateToken(token + "x")
	c.Assert(err, qt.IsNotNil)
}

func TestTokenWithoutSecret(t *testing.T) {
	c := qt.New(t)
	config.AppConfig = &config.Config{}

	_, err := utils.GenerateToken(1)
	c.Assert(err, qt.Equals, utils.ErrSecretNotConfigured)

	_, err = utils.ValidateToken("whatever")
	c.Assert(err, qt.Equals, utils.ErrSecretNotConfigured)
}

func TestPasswordHashing(t *testing.T) {
	c := qt.New(t)

	hash, err := utils.HashPassword("secret123")
	c.Assert(err, qt.IsNil)
	c.Assert(hash, qt.Not(qt.Equals), "secret123")

	c.Assert(utils.CheckPasswordHash("secret123", hash), qt.IsTrue)
	c.Assert(utils.CheckPasswordHash("wrong", hash), qt.IsFalse)
}
