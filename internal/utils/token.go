package utils

import (
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"job_portal/internal/model"
)

// SessionClaims are the claims carried by the session cookie token.
// The ID (jti) keys the authoritative server-side session record;
// the identity fields are a convenience copy for debugging, never
// trusted on their own.
type SessionClaims struct {
	UserID   int    `json:"user_id"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenUtil signs and validates session cookie tokens
type TokenUtil struct {
	secretKey string
	ttl       time.Duration
}

// NewTokenUtil creates a new TokenUtil
func NewTokenUtil(secretKey string, ttl time.Duration) *TokenUtil {
	return &TokenUtil{secretKey: secretKey, ttl: ttl}
}

// GenerateToken signs a token binding the session id to the identity.
// Expiry mirrors the session store TTL so the claim and the record
// lapse together.
func (tu *TokenUtil) GenerateToken(sessionID string, identity model.Identity) (string, error) {
	now := time.Now()
	claims := &SessionClaims{
		UserID:   identity.ID,
		Username: identity.Username,
		Role:     identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        sessionID,
			ExpiresAt: jwt.NewNumericDate(now.Add(tu.ttl)),
			IssuedAt:  jwt.NewNumericDate(now),
			Subject:   strconv.Itoa(identity.ID),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString([]byte(tu.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken verifies the signature and expiry of a session token
func (tu *TokenUtil) ValidateToken(tokenString string) (*SessionClaims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &SessionClaims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return []byte(tu.secretKey), nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	if claims, ok := token.Claims.(*SessionClaims); ok && token.Valid {
		return claims, nil
	}

	return nil, fmt.Errorf("invalid token")
}
