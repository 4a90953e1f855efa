package auth

import (
	"context"
)

type contextKey string

var claimsKey contextKey = "token_claims"

func SetClaims(ctx context.Context, claims *Claims) context.Context {
	return context.WithValue(ctx, claimsKey, claims)
}

// GetClaims returns the validated token claims, or nil on unauthenticated requests.
func GetClaims(ctx context.Context) *Claims {
	if claims, ok := ctx.Value(claimsKey).(*Claims); ok {
		return claims
	}
	return nil
}
