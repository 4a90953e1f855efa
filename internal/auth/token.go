package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"space-catalog/shipyard/internal/errors"
)

const issuer = "shipyard"

// TokenService issues and validates HS256 bearer tokens
type TokenService struct {
	secretKey []byte
	now       func() time.Time
}

// NewTokenService creates a token service signing with secret
func NewTokenService(secret string) *TokenService {
	return &TokenService{
		secretKey: []byte(secret),
		now:       time.Now,
	}
}

// Issue mints a write-scoped token for subject that expires after ttl
func (s *TokenService) Issue(subject string, ttl time.Duration) (string, error) {
	now := s.now()

	claims := Claims{
		Scope: ScopeWrite,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Issuer:    issuer,
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	tokenString, err := token.SignedString(s.secretKey)
	if err != nil {
		return "", errors.Wrap(err, "failed to sign token")
	}
	return tokenString, nil
}

// Validate parses tokenString and checks signature, issuer and expiry
func (s *TokenService) Validate(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.Newf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secretKey, nil
	},
		jwt.WithIssuer(issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(s.now),
	)
	if err != nil {
		return nil, errors.Wrap(err, "failed to parse token")
	}
	if !token.Valid {
		return nil, errors.New("invalid token")
	}
	return claims, nil
}
