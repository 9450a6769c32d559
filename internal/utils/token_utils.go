package utils

import (
	"errors"
	"time"

	"github.com/SscSPs/bizledger/internal/core/domain"
	"github.com/golang-jwt/jwt/v5"
)

// AccessClaims are the claims carried by an access token. The subject is the
// user ID.
type AccessClaims struct {
	Role domain.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateJWT issues an HS256 access token for userID with the given role.
func GenerateJWT(userID string, role domain.Role, secret string, expiryDuration time.Duration, issuer string) (string, time.Time, error) {
	now := time.Now()
	expiresAt := now.Add(expiryDuration)
	claims := AccessClaims{
		Role: role,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    issuer,
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		return "", time.Time{}, err
	}
	return signed, expiresAt, nil
}

// ParseAndValidateJWT parses a token string, validates its signature and
// standard claims, and returns the session it grants.
func ParseAndValidateJWT(tokenString string, secretKey string) (*domain.Session, error) {
	claims := &AccessClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return []byte(secretKey), nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, jwt.ErrTokenSignatureInvalid
	}

	if claims.Subject == "" {
		return nil, errors.New("token subject missing")
	}
	if !claims.Role.IsValid() {
		return nil, errors.New("token role invalid")
	}

	return &domain.Session{UserID: claims.Subject, Role: claims.Role}, nil
}
