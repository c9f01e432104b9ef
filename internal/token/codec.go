package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken covers bad signatures and malformed token strings. It is
// surfaced to callers as an authentication failure, never swallowed.
var ErrInvalidToken = errors.New("invalid token")

// Codec signs and verifies claim sets with a server-held HMAC secret.
type Codec struct {
	secret []byte
	method jwt.SigningMethod
}

func NewCodec(secret string, algorithm string) (*Codec, error) {
	method := jwt.GetSigningMethod(algorithm)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm: %q", algorithm)
	}

	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not HMAC based", algorithm)
	}

	return &Codec{
		secret: []byte(secret),
		method: method,
	}, nil
}

// Encode adds an exp claim at now+ttl and returns the signed token string.
// The caller's claims map is not modified.
func (c *Codec) Encode(claims jwt.MapClaims, ttl time.Duration) (string, error) {
	toEncode := make(jwt.MapClaims, len(claims)+1)
	for key, value := range claims {
		toEncode[key] = value
	}
	toEncode["exp"] = time.Now().Add(ttl).Unix()

	return jwt.NewWithClaims(c.method, toEncode).SignedString(c.secret)
}

// Decode verifies the signature and structure only. A time-expired token
// still decodes; expiry is a separate check layered on top via IsExpired.
func (c *Codec) Decode(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}

	parser := jwt.NewParser(
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithoutClaimsValidation(),
	)

	parsed, err := parser.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return c.secret, nil
	})

	if err != nil || !parsed.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}

// IsExpired compares the exp claim to the current time. Claims without an
// exp entry are treated as non-expired.
func IsExpired(claims jwt.MapClaims) bool {
	exp, err := claims.GetExpirationTime()
	if err != nil || exp == nil {
		return false
	}
	return time.Now().After(exp.Time)
}
