package auth

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrNoSecret is returned when token issuance or verification is attempted
// without a configured signing secret.
var ErrNoSecret = errors.New("jwt secret is not configured")

type Claims struct {
	jwt.RegisteredClaims
}

// JWTService issues and verifies HS256 session tokens. The subject claim
// carries the authenticated user ID.
type JWTService struct {
	secret        []byte
	issuer        string
	expirySeconds int
}

func NewJWTService(secret, issuer string, expirySeconds int) *JWTService {
	if expirySeconds <= 0 {
		expirySeconds = 3600
	}
	return &JWTService{
		secret:        []byte(secret),
		issuer:        issuer,
		expirySeconds: expirySeconds,
	}
}

func (s *JWTService) Issue(userID uint) (string, error) {
	if len(s.secret) == 0 {
		return "", ErrNoSecret
	}

	now := time.Now()
	claims := &Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.issuer,
			Subject:   strconv.FormatUint(uint64(userID), 10),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(time.Duration(s.expirySeconds) * time.Second)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

func (s *JWTService) Verify(tokenString string) (uint, error) {
	if len(s.secret) == 0 {
		return 0, ErrNoSecret
	}

	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return 0, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return 0, fmt.Errorf("invalid token")
	}

	userID, err := strconv.ParseUint(claims.Subject, 10, 64)
	if err != nil || userID == 0 {
		return 0, fmt.Errorf("invalid token subject")
	}
	return uint(userID), nil
}
