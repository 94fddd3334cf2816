package jwt

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	ErrTokenExpired = errors.New("token has expired")
	ErrTokenInvalid = errors.New("token is invalid")
)

// ClaimsVersion is bumped whenever the payload layout changes
const ClaimsVersion = 1

const issuer = "carrental"

// User types carried in the token payload
const (
	UserTypeCustomer = "customer"
	UserTypeEmployee = "employee"
)

// Claims represents the JWT claims
type Claims struct {
	ID       string `json:"_id"`
	UserType string `json:"userType"`
	IsGold   bool   `json:"isGold,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
	Version  int    `json:"ver"`
	jwt.RegisteredClaims
}

// GenerateToken signs a token for the given principal fields.
// A ttl of zero produces a token without an expiry.
func GenerateToken(id, userType string, isGold, isAdmin bool, secret string, ttl time.Duration) (string, error) {
	now := time.Now()

	claims := Claims{
		ID:       id,
		UserType: userType,
		IsGold:   isGold,
		IsAdmin:  isAdmin,
		Version:  ClaimsVersion,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt: jwt.NewNumericDate(now),
			Issuer:   issuer,
			Subject:  id,
		},
	}
	if ttl > 0 {
		claims.ExpiresAt = jwt.NewNumericDate(now.Add(ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken validates a token and returns its claims
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrTokenInvalid
		}
		return []byte(secret), nil
	})

	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, ErrTokenInvalid
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrTokenInvalid
	}

	if claims.ID == "" || claims.Version != ClaimsVersion {
		return nil, ErrTokenInvalid
	}
	if claims.UserType != UserTypeCustomer && claims.UserType != UserTypeEmployee {
		return nil, ErrTokenInvalid
	}

	return claims, nil
}
