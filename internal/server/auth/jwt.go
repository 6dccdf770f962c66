// Package auth implements the credential primitives of the POS server:
// a signed bearer-token codec and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"cantina-pos/internal/common"
	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the registered JWT claims plus the authenticated user id.
type Claims struct {
	jwt.RegisteredClaims
	UserID string
}

// TokenCodec issues and verifies stateless HS256 bearer tokens. The signing
// secret and token lifetime are fixed at construction; validity of a token is
// determined purely by its signature and embedded expiry.
type TokenCodec struct {
	secret   []byte
	validity time.Duration
}

func NewTokenCodec(secret []byte, validity time.Duration) *TokenCodec {
	return &TokenCodec{secret: secret, validity: validity}
}

// Issue produces a signed token embedding userID, issued now and expiring
// after the codec's validity window.
func (c *TokenCodec) Issue(userID string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.validity)),
		},
		UserID: userID,
	})

	return token.SignedString(c.secret)
}

// Verify checks the signature and expiry of tokenString and returns the
// embedded user id. Expired tokens yield common.ErrTokenExpired; any other
// failure (bad signature, malformed payload, wrong algorithm) yields
// common.ErrInvalidToken.
func (c *TokenCodec) Verify(tokenString string) (string, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return c.secret, nil
	}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return "", common.ErrTokenExpired
		}
		return "", common.ErrInvalidToken
	}

	if !token.Valid {
		return "", common.ErrInvalidToken
	}

	return claims.UserID, nil
}
