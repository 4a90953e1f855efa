package auth

import "github.com/golang-jwt/jwt/v5"

// ScopeWrite allows ship create, update and delete.
const ScopeWrite = "ships:write"

// Claims carried by a shipyard bearer token.
type Claims struct {
	Scope string `json:"scope"`
	jwt.RegisteredClaims
}

// CanWrite reports whether the token grants write access to the catalog.
func (c *Claims) CanWrite() bool {
	return c.Scope == ScopeWrite
}
