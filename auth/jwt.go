// Package auth implements the bearer-token contract shared between the
// auth and orders services: a symmetric-key JWT codec, the password
// hasher, and the http middleware that verifies inbound tokens.
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Decode failure kinds. Anything facing the network must collapse them
// into one uniform unauthorized response; the split exists for server-side
// logging and for tests.
var (
	ErrTokenMalformed        = errors.New("token is malformed")
	ErrTokenSignatureInvalid = errors.New("token signature is invalid")
	ErrTokenExpired          = errors.New("token is expired")
	ErrTokenMissingClaim     = errors.New("token is missing a required claim")
)

// Claims is the identity claim set both services agree on by contract.
// Subject carries the account email.
type Claims struct {
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
	jwt.RegisteredClaims
}

func (c *Claims) Email() string {
	return c.Subject
}

// Identity is what the issuer asserts about an authenticated account.
type Identity struct {
	Email     string
	FirstName string
	LastName  string
}

// Codec signs and verifies bearer tokens. The key is shared out-of-band
// between services via configuration; no claim obtained from Decode may
// be used unless Decode returned a nil error.
type Codec struct {
	key    []byte
	method jwt.SigningMethod
	ttl    time.Duration
}

func NewCodec(key []byte, alg string, ttl time.Duration) (*Codec, error) {
	method := jwt.GetSigningMethod(alg)
	if method == nil {
		return nil, fmt.Errorf("unknown signing algorithm %q", alg)
	}
	if _, ok := method.(*jwt.SigningMethodHMAC); !ok {
		return nil, fmt.Errorf("signing algorithm %q is not symmetric", alg)
	}
	return &Codec{key: key, method: method, ttl: ttl}, nil
}

// Encode issues a token for id. Expiry is always computed here from the
// configured TTL, never taken from the caller.
func (c *Codec) Encode(id Identity) (string, error) {
	now := time.Now()
	claims := &Claims{
		FirstName: id.FirstName,
		LastName:  id.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   id.Email,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(c.ttl)),
		},
	}
	return jwt.NewWithClaims(c.method, claims).SignedString(c.key)
}

// Decode verifies the signature with the configured key and method before
// trusting any claim, and rejects expired tokens with no grace window.
func (c *Codec) Decode(tokenStr string) (*Claims, error) {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims,
		func(t *jwt.Token) (interface{}, error) { return c.key, nil },
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		// strict base64 so that tokens differing only in unused trailing
		// bits of the signature segment are not accepted as equivalent
		jwt.WithStrictDecoding(),
	)
	if err != nil {
		switch {
		case errors.Is(err, jwt.ErrTokenSignatureInvalid):
			return nil, ErrTokenSignatureInvalid
		case errors.Is(err, jwt.ErrTokenExpired):
			return nil, ErrTokenExpired
		case errors.Is(err, jwt.ErrTokenRequiredClaimMissing):
			return nil, ErrTokenMissingClaim
		default:
			// covers jwt.ErrTokenMalformed and unexpected signing methods
			return nil, ErrTokenMalformed
		}
	}
	if !token.Valid {
		return nil, ErrTokenSignatureInvalid
	}
	if claims.Subject == "" {
		return nil, ErrTokenMissingClaim
	}
	return claims, nil
}
