package middleware

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"industry-flow/internal/auth"
	"industry-flow/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

// accountRoles serves current roles by user id; unknown ids are deleted accounts.
type accountRoles struct {
	mu    sync.Mutex
	roles map[string]entities.Role
}

func newAccountRoles(roles map[string]entities.Role) *accountRoles {
	return &accountRoles{roles: roles}
}

func (a *accountRoles) set(id string, role entities.Role) {
	a.mu.Lock()
	defer a.mu.Unlock()
	a.roles[id] = role
}

func (a *accountRoles) ResolvePrincipal(_ context.Context, p entities.Principal) (entities.Principal, error) {
	a.mu.Lock()
	defer a.mu.Unlock()
	role, ok := a.roles[p.UserID]
	if !ok {
		return entities.Principal{}, entities.ErrUnauthorized
	}
	return entities.Principal{UserID: p.UserID, Role: role}, nil
}

func newAuthApp(t *testing.T, accounts PrincipalResolver) (*fiber.App, *auth.TokenIssuer) {
	t.Helper()
	issuer := auth.NewTokenIssuer("0123456789abcdef", time.Hour, "test")

	app := fiber.New()
	app.Use(Authenticate(issuer, accounts, "/api/auth/login"))
	app.Get("/api/auth/login", func(c *fiber.Ctx) error {
		return c.SendString("open")
	})
	app.Get("/api/me", func(c *fiber.Ctx) error {
		p := PrincipalFrom(c)
		return c.SendString(p.UserID + ":" + string(p.Role))
	})
	app.Delete("/api/projects/:id", func(c *fiber.Ctx) error {
		if !PrincipalFrom(c).Role.Can(entities.PermProjectDelete) {
			return c.SendStatus(http.StatusForbidden)
		}
		return c.SendStatus(http.StatusNoContent)
	})
	return app, issuer
}

func bearer(t *testing.T, app *fiber.App, method, target, token string) *http.Response {
	t.Helper()
	req := httptest.NewRequest(method, target, nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })
	return resp
}

func TestAuthenticatePublicPath(t *testing.T) {
	app, _ := newAuthApp(t, newAccountRoles(map[string]entities.Role{}))

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/api/auth/login", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)
}

func TestAuthenticateRejectsMissingToken(t *testing.T) {
	app, _ := newAuthApp(t, newAccountRoles(map[string]entities.Role{}))

	for _, header := range []string{"", "Bearer", "Basic abc", "Bearer not-a-jwt"} {
		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		if header != "" {
			req.Header.Set("Authorization", header)
		}
		resp, err := app.Test(req)
		require.NoError(t, err)
		resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode, header)
	}
}

func TestAuthenticateStoresPrincipal(t *testing.T) {
	app, issuer := newAuthApp(t, newAccountRoles(map[string]entities.Role{"u1": entities.RoleManager}))
	token, _, err := issuer.Issue(entities.User{ID: "u1", Role: entities.RoleManager})
	require.NoError(t, err)

	resp := bearer(t, app, http.MethodGet, "/api/me", token)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "u1:manager", string(body))
}

func TestAuthenticateAppliesRoleChanges(t *testing.T) {
	accounts := newAccountRoles(map[string]entities.Role{"u1": entities.RoleAdmin})
	app, issuer := newAuthApp(t, accounts)
	token, _, err := issuer.Issue(entities.User{ID: "u1", Role: entities.RoleAdmin})
	require.NoError(t, err)

	resp := bearer(t, app, http.MethodDelete, "/api/projects/p1", token)
	require.Equal(t, http.StatusNoContent, resp.StatusCode)

	accounts.set("u1", entities.RoleMember)

	resp = bearer(t, app, http.MethodDelete, "/api/projects/p1", token)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = bearer(t, app, http.MethodGet, "/api/me", token)
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.Equal(t, "u1:member", string(body))
}

func TestAuthenticateRejectsDeletedAccount(t *testing.T) {
	app, issuer := newAuthApp(t, newAccountRoles(map[string]entities.Role{}))
	token, _, err := issuer.Issue(entities.User{ID: "gone", Role: entities.RoleAdmin})
	require.NoError(t, err)

	resp := bearer(t, app, http.MethodGet, "/api/me", token)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
}

type failingAccounts struct{}

func (failingAccounts) ResolvePrincipal(context.Context, entities.Principal) (entities.Principal, error) {
	return entities.Principal{}, errors.New("select user: connection refused")
}

func TestAuthenticateLookupFailure(t *testing.T) {
	app, issuer := newAuthApp(t, failingAccounts{})
	token, _, err := issuer.Issue(entities.User{ID: "u1", Role: entities.RoleAdmin})
	require.NoError(t, err)

	resp := bearer(t, app, http.MethodGet, "/api/me", token)
	require.Equal(t, http.StatusInternalServerError, resp.StatusCode)
}
