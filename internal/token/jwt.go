package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// Claims represents JWT claims with token type and user ID.
type Claims struct {
	jwt.RegisteredClaims
	UserID    int64  `json:"id"`
	TokenType string `json:"typ"`
}

// JWT implements TokenManager backed by symmetric HMAC.
type JWT struct {
	secretKey string
}

// NewJWT creates a new JWT token manager with the provided secret key.
func NewJWT(secretKey string) model.TokenManager {
	return &JWT{secretKey: secretKey}
}

const (
	accessTTL   = 15 * time.Minute
	connectTTL  = time.Minute
	typeAccess  = "access"
	typeConnect = "connect"
)

// GenerateAccessToken creates a short-lived access token.
func (j *JWT) GenerateAccessToken(userID int64) (string, error) {
	tokenString, _, err := j.sign(userID, typeAccess, accessTTL)
	if err != nil {
		return "", fmt.Errorf("failed to sign access token: %w", err)
	}
	return tokenString, nil
}

// GenerateConnectToken creates a single-purpose token used once to open a
// realtime connection.
func (j *JWT) GenerateConnectToken(userID int64) (string, time.Time, error) {
	tokenString, expiresAt, err := j.sign(userID, typeConnect, connectTTL)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign connect token: %w", err)
	}
	return tokenString, expiresAt, nil
}

// ParseAccessToken validates and extracts the user ID from an access token.
func (j *JWT) ParseAccessToken(tokenString string) (int64, error) {
	userID, err := j.parse(tokenString, typeAccess)
	if err != nil {
		return 0, fmt.Errorf("failed to parse access token: %w", err)
	}
	return userID, nil
}

// ParseConnectToken validates and extracts the user ID from a connect token.
func (j *JWT) ParseConnectToken(tokenString string) (int64, error) {
	userID, err := j.parse(tokenString, typeConnect)
	if err != nil {
		return 0, fmt.Errorf("failed to parse connect token: %w", err)
	}
	return userID, nil
}

func (j *JWT) sign(userID int64, tokenType string, ttl time.Duration) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(ttl)
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
		UserID:    userID,
		TokenType: tokenType,
	})

	tokenString, err := token.SignedString([]byte(j.secretKey))
	if err != nil {
		return "", time.Time{}, err
	}
	return tokenString, expiresAt, nil
}

func (j *JWT) parse(tokenString, tokenType string) (int64, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(j.secretKey), nil
	})
	if err != nil {
		return 0, err
	}
	if !token.Valid {
		return 0, fmt.Errorf("token is invalid")
	}
	if claims.TokenType != tokenType {
		return 0, fmt.Errorf("token type mismatch: %s", claims.TokenType)
	}
	if claims.UserID <= 0 {
		return 0, fmt.Errorf("token has no user id")
	}
	return claims.UserID, nil
}
