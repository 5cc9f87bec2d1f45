package handlers_fiber

import (
	"errors"
	"net/http"

	"industry-flow/internal/entities"
	api "industry-flow/internal/oapi"
	"industry-flow/internal/transport/http/middleware"

	"github.com/gofiber/fiber/v2"
)

func writeError(c *fiber.Ctx, err error) error {
	status := http.StatusInternalServerError
	code := api.INTERNAL
	msg := "internal error"

	switch {
	case errors.Is(err, entities.ErrInvalidArgument):
		status = http.StatusBadRequest
		code = api.INVALIDARGUMENT
		msg = err.Error()
	case errors.Is(err, entities.ErrUnsupportedCurrency):
		status = http.StatusBadRequest
		code = api.UNSUPPORTEDCURRENCY
		msg = err.Error()
	case errors.Is(err, entities.ErrNotFound):
		status = http.StatusNotFound
		code = api.NOTFOUND
		msg = err.Error()
	case errors.Is(err, entities.ErrEmailTaken):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = "email already registered"
	case errors.Is(err, entities.ErrMemberExists):
		status = http.StatusConflict
		code = api.CONFLICT
		msg = "team member with this email exists"
	case errors.Is(err, entities.ErrStageSkip):
		status = http.StatusConflict
		code = api.STAGESKIP
		msg = err.Error()
	case errors.Is(err, entities.ErrInvalidCredentials):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "invalid email or password"
	case errors.Is(err, entities.ErrUnauthorized):
		status = http.StatusUnauthorized
		code = api.UNAUTHORIZED
		msg = "authentication required"
	case errors.Is(err, entities.ErrForbidden):
		status = http.StatusForbidden
		code = api.FORBIDDEN
		msg = err.Error()
	case errors.Is(err, entities.ErrIntegrationDisabled):
		status = http.StatusServiceUnavailable
		code = api.INTEGRATIONDISABLED
		msg = err.Error()
	}

	return c.Status(status).JSON(errorResponse(code, msg))
}

func errorResponse(code api.ErrorResponseErrorCode, msg string) api.ErrorResponse {
	return api.ErrorResponse{Error: struct {
		Code    api.ErrorResponseErrorCode `json:"code"`
		Message string                     `json:"message"`
	}{Code: code, Message: msg}}
}

func badBody(c *fiber.Ctx) error {
	return c.Status(http.StatusBadRequest).JSON(errorResponse(api.INVALIDARGUMENT, "invalid body"))
}

func principal(c *fiber.Ctx) entities.Principal {
	return middleware.PrincipalFrom(c)
}

// ErrorHandler renders errors that escape handlers, such as parameter binding
// and authentication failures, in the API error format.
func ErrorHandler(c *fiber.Ctx, err error) error {
	var fe *fiber.Error
	if !errors.As(err, &fe) {
		return writeError(c, err)
	}

	code := api.INTERNAL
	switch fe.Code {
	case fiber.StatusBadRequest:
		code = api.INVALIDARGUMENT
	case fiber.StatusUnauthorized:
		code = api.UNAUTHORIZED
	case fiber.StatusForbidden:
		code = api.FORBIDDEN
	case fiber.StatusNotFound, fiber.StatusMethodNotAllowed:
		code = api.NOTFOUND
	}
	return c.Status(fe.Code).JSON(errorResponse(code, fe.Message))
}
