package models

import (
	"github.com/golang-jwt/jwt/v5"
)

// Token wraps an administrator JWT.
//
// It embeds [jwt.Token] for signing and parsing and [jwt.RegisteredClaims]
// for claim access. The "sub" claim carries the administrator login.
type Token struct {
	// Token is the underlying JWT. Only the compact string form is meaningful
	// outside the server process.
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	// SignedString is the compact JWS representation
	// (base64url header.payload.signature).
	SignedString string `json:"-"`

	// Login is the administrator login extracted from the "sub" claim.
	Login string `json:"-"`
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
