package auth

import (
	"strings"
	"testing"
	"time"

	"industry-flow/internal/entities"

	"github.com/golang-jwt/jwt/v4"
	"github.com/stretchr/testify/require"
)

func TestPasswordRoundTrip(t *testing.T) {
	_, err := HashPassword("short")
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	hash, err := HashPassword("correct horse")
	require.NoError(t, err)
	require.NotEqual(t, "correct horse", hash)

	require.NoError(t, CheckPassword(hash, "correct horse"))
	require.ErrorIs(t, CheckPassword(hash, "battery staple"), entities.ErrInvalidCredentials)
	require.ErrorIs(t, CheckPassword("not-a-hash", "correct horse"), entities.ErrInvalidCredentials)
}

func TestHashPasswordLengthLimit(t *testing.T) {
	_, err := HashPassword(strings.Repeat("a", MaxPasswordBytes+8))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)

	_, err = HashPassword(strings.Repeat("a", MaxPasswordBytes))
	require.NoError(t, err)

	// multi-byte runes count by bytes
	_, err = HashPassword(strings.Repeat("ж", 40))
	require.ErrorIs(t, err, entities.ErrInvalidArgument)
}

func TestTokenIssueAndParse(t *testing.T) {
	issuer := NewTokenIssuer("0123456789abcdef", time.Hour, "industry-flow")

	token, exp, err := issuer.Issue(entities.User{ID: "u1", Role: entities.RoleManager})
	require.NoError(t, err)
	require.WithinDuration(t, time.Now().Add(time.Hour), exp, time.Minute)

	p, err := issuer.Parse(token)
	require.NoError(t, err)
	require.Equal(t, entities.Principal{UserID: "u1", Role: entities.RoleManager}, p)
}

func TestTokenRejections(t *testing.T) {
	issuer := NewTokenIssuer("0123456789abcdef", time.Hour, "industry-flow")

	_, err := issuer.Parse("garbage")
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	other := NewTokenIssuer("fedcba9876543210", time.Hour, "industry-flow")
	foreign, _, err := other.Issue(entities.User{ID: "u1", Role: entities.RoleAdmin})
	require.NoError(t, err)
	_, err = issuer.Parse(foreign)
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	expired := NewTokenIssuer("0123456789abcdef", time.Hour, "industry-flow")
	expired.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	old, _, err := expired.Issue(entities.User{ID: "u1", Role: entities.RoleAdmin})
	require.NoError(t, err)
	_, err = issuer.Parse(old)
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	wrongIssuer := NewTokenIssuer("0123456789abcdef", time.Hour, "someone-else")
	tok, _, err := wrongIssuer.Issue(entities.User{ID: "u1", Role: entities.RoleAdmin})
	require.NoError(t, err)
	_, err = issuer.Parse(tok)
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	none, err := jwt.NewWithClaims(jwt.SigningMethodNone, Claims{Role: "admin"}).SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)
	_, err = issuer.Parse(none)
	require.ErrorIs(t, err, entities.ErrUnauthorized)

	badRole, _, err := issuer.Issue(entities.User{ID: "u1", Role: "guest"})
	require.NoError(t, err)
	_, err = issuer.Parse(badRole)
	require.ErrorIs(t, err, entities.ErrUnauthorized)
}
