package utils

import (
	"fmt"
	"os"
	"time"

	"hotel-reservation/models/user"
	"hotel-reservation/types"

	"github.com/golang-jwt/jwt/v5"
)

func jwtSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		secret = "hotel-reservation-dev-secret"
	}
	return []byte(secret)
}

// GenerateToken issues an HMAC-signed token carrying the user id and role set.
func GenerateToken(u *user.User) (string, error) {
	claims := jwt.MapClaims{
		"sub":      u.ID,
		"username": u.Username,
		"roles":    u.RoleNames(),
		"iat":      time.Now().Unix(),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(jwtSecret())
}

// ParseToken verifies a token and rebuilds the caller's auth context from its
// claims.
func ParseToken(tokenString string) (types.AuthContext, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return jwtSecret(), nil
	})
	if err != nil {
		return types.AuthContext{}, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return types.AuthContext{}, fmt.Errorf("invalid token")
	}

	sub, ok := claims["sub"].(float64)
	if !ok || sub <= 0 {
		return types.AuthContext{}, fmt.Errorf("user id missing in token")
	}

	auth := types.AuthContext{UserID: uint(sub)}
	if username, ok := claims["username"].(string); ok {
		auth.Username = username
	}
	if rawRoles, ok := claims["roles"].([]interface{}); ok {
		for _, r := range rawRoles {
			if role, ok := r.(string); ok {
				auth.Roles = append(auth.Roles, role)
			}
		}
	}
	return auth, nil
}
