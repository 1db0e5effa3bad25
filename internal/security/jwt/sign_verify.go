package jwtutil

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"os"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Loaded lazily so .env files read at startup are visible.
var cfg = sync.OnceValue(LoadConfig)

// SignAccess issues an HS256 session token for userID.
func SignAccess(userID string, ttl time.Duration) (string, error) {
	jti, err := randJTI()
	if err != nil {
		return "", err
	}
	claims := NewAccessClaims(userID, jti, ttl)
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(cfg().Secret)
}

// ParseAccess verifies the HS256 signature and expiry (with leeway),
// returning the embedded claims.
func ParseAccess(tokenStr string) (*AccessClaims, error) {
	parser := jwt.NewParser(jwt.WithLeeway(cfg().ClockSkew), jwt.WithValidMethods([]string{"HS256"}))
	token, err := parser.ParseWithClaims(tokenStr, &AccessClaims{}, func(t *jwt.Token) (interface{}, error) {
		return cfg().Secret, nil
	})
	if err != nil {
		return nil, err
	}
	claims, ok := token.Claims.(*AccessClaims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}

func randJTI() (string, error) {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		return "", err
	}
	return hex.EncodeToString(b[:]), nil
}

// DefaultAccessTTL is the fixed session lifetime (24h unless overridden).
func DefaultAccessTTL() time.Duration {
	if v := parseDuration("AUTH_ACCESS_TTL", "24h"); v > 0 {
		return v
	}
	return 24 * time.Hour
}

func parseDuration(key, def string) time.Duration {
	s := def
	if v := os.Getenv(key); v != "" {
		s = v
	}
	d, _ := time.ParseDuration(s)
	return d
}
