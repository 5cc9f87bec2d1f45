package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"industry-flow/internal/auth"
	"industry-flow/internal/entities"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestRequestLoggerRecordsFinalStatus(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	issuer := auth.NewTokenIssuer("0123456789abcdef", time.Hour, "test")

	app := fiber.New(fiber.Config{
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(http.StatusTeapot).SendString(err.Error())
		},
	})
	app.Use(RequestLogger(zap.New(core).Sugar(), "/healthz"))
	app.Use(Authenticate(issuer, newAccountRoles(map[string]entities.Role{"u7": entities.RoleMember}), "/healthz"))
	app.Get("/healthz", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })
	app.Get("/projects", func(c *fiber.Ctx) error { return c.SendStatus(http.StatusOK) })

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/healthz", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Zero(t, logs.Len())

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/projects", nil))
	require.NoError(t, err)
	resp.Body.Close()
	require.Equal(t, http.StatusTeapot, resp.StatusCode)

	entries := logs.TakeAll()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.WarnLevel, entries[0].Level)
	require.EqualValues(t, http.StatusTeapot, entries[0].ContextMap()["status"])

	token, _, err := issuer.Issue(entities.User{ID: "u7", Role: entities.RoleMember})
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodGet, "/projects", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp, err = app.Test(req)
	require.NoError(t, err)
	resp.Body.Close()

	entries = logs.TakeAll()
	require.Len(t, entries, 1)
	require.Equal(t, zapcore.InfoLevel, entries[0].Level)
	require.Equal(t, "u7", entries[0].ContextMap()["user_id"])
}
