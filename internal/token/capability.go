package token

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/Jack-Berry/UMC-Back/internal/model"
)

// DefaultCapabilityTTL is how long a capability token stays valid.
const DefaultCapabilityTTL = 5 * time.Minute

// CapabilityClaims binds a token to an unordered pair of users.
type CapabilityClaims struct {
	jwt.RegisteredClaims
	UserA int64 `json:"userA"`
	UserB int64 `json:"userB"`
}

// Capability issues and verifies pair-bound capability tokens.
type Capability struct {
	secretKey string
	ttl       time.Duration
	now       func() time.Time
}

var _ model.CapabilityVerifier = (*Capability)(nil)

// NewCapability creates a capability manager. A non-positive ttl selects
// DefaultCapabilityTTL.
func NewCapability(secretKey string, ttl time.Duration) *Capability {
	if ttl <= 0 {
		ttl = DefaultCapabilityTTL
	}
	return &Capability{secretKey: secretKey, ttl: ttl, now: time.Now}
}

// Issue signs a capability for the pair {userA, userB}.
func (c *Capability) Issue(userA, userB int64) (string, error) {
	now := c.now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, CapabilityClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
		UserA: userA,
		UserB: userB,
	})

	tokenString, err := token.SignedString([]byte(c.secretKey))
	if err != nil {
		return "", fmt.Errorf("failed to sign capability token: %w", err)
	}
	return tokenString, nil
}

// Parse validates signature and expiry and returns the embedded pair.
func (c *Capability) Parse(tokenString string) (int64, int64, error) {
	claims := &CapabilityClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("wrong signing method %v", t.Header["alg"])
		}
		return []byte(c.secretKey), nil
	}, jwt.WithTimeFunc(c.now), jwt.WithExpirationRequired())
	if err != nil {
		return 0, 0, fmt.Errorf("failed to parse capability token: %w", err)
	}
	if !token.Valid {
		return 0, 0, fmt.Errorf("capability token is invalid")
	}
	return claims.UserA, claims.UserB, nil
}

// VerifyPair reports whether the token is valid for the unordered pair
// {actorID, peerID}.
func (c *Capability) VerifyPair(tokenString string, actorID, peerID int64) bool {
	userA, userB, err := c.Parse(tokenString)
	if err != nil {
		return false
	}
	lowT, highT := model.NormalizePair(userA, userB)
	lowP, highP := model.NormalizePair(actorID, peerID)
	return lowT == lowP && highT == highP
}
