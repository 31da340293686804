package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/invenco/inventory-system/internal/core/domain"
)

// Claims is the payload carried by every token this service issues. Access
// tokens fill all fields; refresh tokens carry only the registered subject so
// a stolen refresh token cannot authorize anything by itself.
type Claims struct {
	Email  string `json:"email,omitempty"`
	RoleID string `json:"role_id,omitempty"`
	jwt.RegisteredClaims
}

// Codec signs and verifies HS256 tokens for a single secret/TTL pair. The
// service instantiates two codecs: one for access tokens, one for refresh
// tokens.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

func NewCodec(secret string, ttl time.Duration) *Codec {
	return &Codec{secret: []byte(secret), ttl: ttl}
}

// TTL returns the lifetime applied to issued tokens. Used by the transport
// layer to align cookie max-age with token expiry.
func (c *Codec) TTL() time.Duration {
	return c.ttl
}

// Issue signs a token for the given subject. Email and roleID may be empty
// (refresh tokens omit both).
func (c *Codec) Issue(subject, email, roleID string) (string, error) {
	now := time.Now().UTC()
	claims := Claims{
		Email:  email,
		RoleID: roleID,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}

	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(c.secret)
}

// Verify parses and validates a token. It fails closed: any signature
// mismatch, structural corruption, expiry, or wrong signing algorithm yields
// domain.ErrInvalidToken and no claims.
func (c *Codec) Verify(tokenString string) (*Claims, error) {
	claims := &Claims{}
	tkn, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return c.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrInvalidToken
	}
	return claims, nil
}
