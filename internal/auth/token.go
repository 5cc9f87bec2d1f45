package auth

import (
	"fmt"
	"time"

	"industry-flow/internal/entities"

	"github.com/golang-jwt/jwt/v4"
)

// Claims is the JWT payload of a session token.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and verifies HS256 session tokens.
type TokenIssuer struct {
	secret []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

// NewTokenIssuer constructs a TokenIssuer.
func NewTokenIssuer(secret string, ttl time.Duration, issuer string) *TokenIssuer {
	return &TokenIssuer{
		secret: []byte(secret),
		ttl:    ttl,
		issuer: issuer,
		now:    time.Now,
	}
}

// Issue returns a signed token for the user and its expiry time.
func (i *TokenIssuer) Issue(user entities.User) (string, time.Time, error) {
	now := i.now()
	exp := now.Add(i.ttl)
	claims := Claims{
		Role: string(user.Role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   user.ID,
			Issuer:    i.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(exp),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, exp, nil
}

// Parse verifies a token and returns the principal it carries.
func (i *TokenIssuer) Parse(token string) (entities.Principal, error) {
	var claims Claims
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return i.secret, nil
	})
	if err != nil {
		return entities.Principal{}, fmt.Errorf("%w: %v", entities.ErrUnauthorized, err)
	}
	if !parsed.Valid {
		return entities.Principal{}, entities.ErrUnauthorized
	}
	if claims.Issuer != i.issuer {
		return entities.Principal{}, fmt.Errorf("%w: issuer mismatch", entities.ErrUnauthorized)
	}

	role := entities.Role(claims.Role)
	if claims.Subject == "" || !role.Valid() {
		return entities.Principal{}, fmt.Errorf("%w: incomplete claims", entities.ErrUnauthorized)
	}
	return entities.Principal{UserID: claims.Subject, Role: role}, nil
}
