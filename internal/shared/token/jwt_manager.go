package token

import (
	"fmt"
	"time"

	"github.com/pmadriaga/studorg/go-api-server/internal/config"
	"github.com/golang-jwt/jwt/v5"
)

// Claims is the authenticated principal carried inside a JWT. StudentNumber
// is empty for admin accounts.
type Claims struct {
	Username      string `json:"username"`
	Role          string `json:"role"`
	StudentNumber string `json:"studentNumber,omitempty"`
	jwt.RegisteredClaims
}

// Manager issues and validates auth tokens
type Manager interface {
	GenerateAccessToken(username, role, studentNumber string) (string, error)
	GenerateRefreshToken(username, role, studentNumber string) (string, error)
	ValidateToken(tokenString string) (*Claims, error)
}

// JWTManager implements Manager with HS256 signing
type JWTManager struct {
	secret        []byte
	expiry        time.Duration
	refreshExpiry time.Duration
	issuer        string
}

func NewJWTManager(cfg *config.Config) *JWTManager {
	return &JWTManager{
		secret:        []byte(cfg.JWT.Secret),
		expiry:        cfg.JWT.Expiry,
		refreshExpiry: cfg.JWT.RefreshExpiry,
		issuer:        cfg.App.Name,
	}
}

func (m *JWTManager) GenerateAccessToken(username, role, studentNumber string) (string, error) {
	return m.generate(username, role, studentNumber, m.expiry)
}

func (m *JWTManager) GenerateRefreshToken(username, role, studentNumber string) (string, error) {
	return m.generate(username, role, studentNumber, m.refreshExpiry)
}

func (m *JWTManager) generate(username, role, studentNumber string, ttl time.Duration) (string, error) {
	now := time.Now()
	claims := &Claims{
		Username:      username,
		Role:          role,
		StudentNumber: studentNumber,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    m.issuer,
			Subject:   username,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateToken parses and verifies a token, returning its claims.
func (m *JWTManager) ValidateToken(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}
