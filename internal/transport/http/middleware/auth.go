package middleware

import (
	"context"
	"errors"
	"strings"

	"industry-flow/internal/entities"

	"github.com/gofiber/fiber/v2"
)

const principalKey = "principal"

// TokenParser verifies a session token.
type TokenParser interface {
	Parse(token string) (entities.Principal, error)
}

// PrincipalResolver refreshes a token's principal from the account it names,
// so role changes apply to tokens issued before them.
type PrincipalResolver interface {
	ResolvePrincipal(ctx context.Context, p entities.Principal) (entities.Principal, error)
}

// Authenticate resolves the Bearer token of every request into a principal
// stored in c.Locals. Paths listed in public pass through without a token.
func Authenticate(parser TokenParser, accounts PrincipalResolver, public ...string) fiber.Handler {
	open := make(map[string]struct{}, len(public))
	for _, p := range public {
		open[p] = struct{}{}
	}

	return func(c *fiber.Ctx) error {
		if _, ok := open[c.Path()]; ok {
			return c.Next()
		}

		header := c.Get(fiber.HeaderAuthorization)
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			return fiber.NewError(fiber.StatusUnauthorized, "missing bearer token")
		}

		p, err := parser.Parse(strings.TrimSpace(token))
		if err != nil {
			return fiber.NewError(fiber.StatusUnauthorized, "invalid or expired token")
		}
		p, err = accounts.ResolvePrincipal(c.UserContext(), p)
		if errors.Is(err, entities.ErrUnauthorized) {
			return fiber.NewError(fiber.StatusUnauthorized, "account no longer exists")
		}
		if err != nil {
			return err
		}
		c.Locals(principalKey, p)
		return c.Next()
	}
}

// PrincipalFrom returns the caller set by Authenticate, or the zero principal.
func PrincipalFrom(c *fiber.Ctx) entities.Principal {
	p, _ := c.Locals(principalKey).(entities.Principal)
	return p
}
