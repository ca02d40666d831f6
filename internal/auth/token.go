package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	model "service-market/internal/models"
)

// Claims is the signed credential carried by every client. Field names
// match what the web clients already decode.
type Claims struct {
	UserID       string     `json:"id"`
	Name         string     `json:"nome"`
	Email        string     `json:"email"`
	ProfileImage string     `json:"imagemPerfil,omitempty"`
	Role         model.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken signs a credential for a user with the given lifetime.
func GenerateToken(user model.User, secret []byte, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		ProfileImage: user.ProfileImage,
		Role:         user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Issuer:    "service-market",
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ValidateToken parses and verifies a credential, expiry included.
func ValidateToken(tokenString string, secret []byte) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return secret, nil
	})
	if err != nil {
		return nil, err
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, jwt.ErrTokenInvalidClaims
	}
	return claims, nil
}
