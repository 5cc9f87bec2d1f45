package handlers_fiber

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"industry-flow/internal/entities"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
)

func TestWriteErrorMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    error
		status int
		code   api.ErrorResponseErrorCode
	}{
		{name: "invalid", err: fmt.Errorf("%w: name is required", entities.ErrInvalidArgument), status: http.StatusBadRequest, code: api.INVALIDARGUMENT},
		{name: "currency", err: fmt.Errorf("%w: XYZ", entities.ErrUnsupportedCurrency), status: http.StatusBadRequest, code: api.UNSUPPORTEDCURRENCY},
		{name: "project", err: entities.ErrProjectNotFound, status: http.StatusNotFound, code: api.NOTFOUND},
		{name: "document", err: entities.ErrDocumentNotFound, status: http.StatusNotFound, code: api.NOTFOUND},
		{name: "wrapped task", err: fmt.Errorf("move task: %w", entities.ErrTaskNotFound), status: http.StatusNotFound, code: api.NOTFOUND},
		{name: "email", err: entities.ErrEmailTaken, status: http.StatusConflict, code: api.CONFLICT},
		{name: "member", err: entities.ErrMemberExists, status: http.StatusConflict, code: api.CONFLICT},
		{name: "stage", err: fmt.Errorf("%w: lead -> proposal", entities.ErrStageSkip), status: http.StatusConflict, code: api.STAGESKIP},
		{name: "credentials", err: entities.ErrInvalidCredentials, status: http.StatusUnauthorized, code: api.UNAUTHORIZED},
		{name: "forbidden", err: fmt.Errorf("%w: team:write", entities.ErrForbidden), status: http.StatusForbidden, code: api.FORBIDDEN},
		{name: "integration", err: entities.ErrIntegrationDisabled, status: http.StatusServiceUnavailable, code: api.INTEGRATIONDISABLED},
		{name: "unknown", err: fmt.Errorf("dial tcp: refused"), status: http.StatusInternalServerError, code: api.INTERNAL},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/", func(c *fiber.Ctx) error {
				return writeError(c, tt.err)
			})

			resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
			require.NoError(t, err)
			defer resp.Body.Close()

			require.Equal(t, tt.status, resp.StatusCode)

			var body api.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
			require.Equal(t, tt.code, body.Error.Code)
		})
	}
}

func TestWriteErrorHidesInternalDetails(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return writeError(c, fmt.Errorf("select projects: password authentication failed"))
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/", nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, "internal error", body.Error.Message)
}

func TestErrorHandlerRendersFiberErrors(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	app.Get("/bad", func(c *fiber.Ctx) error {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid format for parameter limit")
	})

	resp, err := app.Test(httptest.NewRequest(http.MethodGet, "/bad", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)

	var body api.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.INVALIDARGUMENT, body.Error.Code)
	require.Equal(t, "Invalid format for parameter limit", body.Error.Message)

	resp, err = app.Test(httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.NoError(t, err)
	defer resp.Body.Close()
	require.Equal(t, http.StatusNotFound, resp.StatusCode)
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	require.Equal(t, api.NOTFOUND, body.Error.Code)
}
