package utils

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"tire-shop/config"
)

type CartClaims struct {
	CartID string `json:"cart_id"`
	jwt.RegisteredClaims
}

// GenerateCartToken signs the anonymous cart identifier so clients cannot
// address each other's carts.
func GenerateCartToken(cartID string) (string, error) {
	claims := CartClaims{
		CartID: cartID,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now()),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(config.AppConfig.CartTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(config.AppConfig.JWTSecret))
}

func ValidateCartToken(tokenString string) (string, error) {
	token, err := jwt.ParseWithClaims(tokenString, &CartClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return []byte(config.AppConfig.JWTSecret), nil
	})
	if err != nil {
		return "", err
	}

	claims, ok := token.Claims.(*CartClaims)
	if !ok || !token.Valid || claims.CartID == "" {
		return "", errors.New("invalid cart token")
	}
	return claims.CartID, nil
}
