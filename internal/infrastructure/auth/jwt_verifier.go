// Package auth provides the JWT-backed implementation of the TokenVerifier
// port. The access-control pipeline only depends on the port, so a different
// identity provider can be swapped in without touching the middleware.
package auth

import (
	"context"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pawfinder/adoption-platform/internal/core/domain"
)

// JWTVerifier validates HS256 bearer tokens issued by the identity provider.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

// Verify parses and validates token and returns its claims. Any parse,
// signature, or expiry failure is reported as domain.ErrInvalidToken.
func (v *JWTVerifier) Verify(_ context.Context, token string) (*domain.Claims, error) {
	claims := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return v.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}

	email, _ := claims["email"].(string)
	return &domain.Claims{Email: email, Raw: claims}, nil
}
