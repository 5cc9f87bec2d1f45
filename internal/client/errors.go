package client

import (
	"industry-flow/internal/entities"
	api "industry-flow/internal/oapi"
)

// APIError is an error response of the REST API.
type APIError struct {
	Code    api.ErrorResponseErrorCode
	Message string
}

func (e *APIError) Error() string {
	return string(e.Code) + ": " + e.Message
}

// Unwrap exposes the matching domain sentinel so callers can use errors.Is.
func (e *APIError) Unwrap() error {
	switch e.Code {
	case api.INVALIDARGUMENT:
		return entities.ErrInvalidArgument
	case api.UNAUTHORIZED:
		return entities.ErrUnauthorized
	case api.FORBIDDEN:
		return entities.ErrForbidden
	case api.NOTFOUND:
		return entities.ErrNotFound
	case api.CONFLICT:
		return entities.ErrConflict
	case api.STAGESKIP:
		return entities.ErrStageSkip
	case api.UNSUPPORTEDCURRENCY:
		return entities.ErrUnsupportedCurrency
	case api.INTEGRATIONDISABLED:
		return entities.ErrIntegrationDisabled
	}
	return nil
}
