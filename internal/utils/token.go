package utils

import (
	"errors"
	"fmt"
	"time"

	"github.com/VisKlo/furniture-inventory/config"

	"github.com/golang-jwt/jwt/v5"
)

// ErrSecretNotConfigured means JWT_SECRET is missing from the environment.
// The auth guard maps it to a 500 rather than a 401.
var ErrSecretNotConfigured = errors.New("jwt secret not configured")

type Claims struct {
	UserID uint `json:"userId"`
	jwt.RegisteredClaims
}

func GenerateToken(userID uint) (string, error) {
	secret := config.AppConfig.Server.JWTSecret
	if secret == "" {
		return "", ErrSecretNotConfigured
	}

	expiration := time.Duration(config.AppConfig.Server.JWTExpirationHours) * time.Hour
	claims := Claims{
		UserID: userID,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(expiration)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

func ValidateToken(tokenString string) (*Claims, error) {
	secret := config.AppConfig.Server.JWTSecret
	if secret == "" {
		return nil, ErrSecretNotConfigured
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	return claims, nil
}
