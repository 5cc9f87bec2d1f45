package handlers_fiber

import (
	"net/http"

	"industry-flow/internal/entities"
	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// PostAuthRegister creates an account.
func (h *Handler) PostAuthRegister(c *fiber.Ctx) error {
	var body api.PostAuthRegisterJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	user, err := h.uc.Register(c.Context(), body.Email, body.Name, body.Password)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIUser(*user))
}

// PostAuthLogin exchanges credentials for a session token.
func (h *Handler) PostAuthLogin(c *fiber.Ctx) error {
	var body api.PostAuthLoginJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	session, err := h.uc.Login(c.Context(), body.Email, body.Password)
	if err != nil {
		h.log.Infow("login failed", "error", err)
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISession(session))
}

// GetAuthMe returns the caller's account.
func (h *Handler) GetAuthMe(c *fiber.Ctx) error {
	user, err := h.uc.Me(c.Context(), principal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIUser(*user))
}

// PatchUsersIdRole changes the role of another account.
func (h *Handler) PatchUsersIdRole(c *fiber.Ctx, id string) error {
	var body api.PatchUsersIdRoleJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	user, err := h.uc.SetUserRole(c.Context(), principal(c), id, entities.Role(body.Role))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIUser(*user))
}
