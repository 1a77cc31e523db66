package auth

import (
	"errors"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Roles carried in tokens issued by the account service.
const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
)

// Claims is what the storefront needs from a token.
type Claims struct {
	UserID   string
	TenantID string
	Email    string
	Role     string
}

func getJWTSecret() ([]byte, error) {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		return nil, errors.New("JWT_SECRET not set")
	}
	return []byte(secret), nil
}

// GenerateToken issues a 24h token. Login lives in the account service;
// this is used by ops tooling and tests.
func GenerateToken(c Claims) (string, error) {
	if c.UserID == "" {
		return "", errors.New("empty userID passed to GenerateToken")
	}
	if c.TenantID == "" {
		return "", errors.New("empty tenantID passed to GenerateToken")
	}

	secret, err := getJWTSecret()
	if err != nil {
		return "", err
	}

	claims := jwt.MapClaims{
		"userID":   c.UserID,
		"tenantID": c.TenantID,
		"email":    c.Email,
		"role":     c.Role,
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

func ValidateToken(tokenString string) (*Claims, error) {
	secret, err := getJWTSecret()
	if err != nil {
		return nil, err
	}

	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return secret, nil
	})
	if err != nil || !token.Valid {
		return nil, errors.New("invalid token")
	}

	mc, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return nil, errors.New("invalid token claims")
	}

	c := &Claims{}
	c.UserID, _ = mc["userID"].(string)
	c.TenantID, _ = mc["tenantID"].(string)
	c.Email, _ = mc["email"].(string)
	c.Role, _ = mc["role"].(string)

	if c.TenantID == "" {
		return nil, errors.New("token has no tenant")
	}

	return c, nil
}
