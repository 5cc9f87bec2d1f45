package handlers_fiber

import (
	"net/http"

	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListProjectDocuments returns documents linked to a project.
func (h *Handler) ListProjectDocuments(c *fiber.Ctx, id string) error {
	docs, err := h.uc.ListDocuments(c.Context(), principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIDocumentList(docs))
}

// AddProjectDocument links a document, resolving OneDrive metadata when possible.
func (h *Handler) AddProjectDocument(c *fiber.Ctx, id string) error {
	var body api.AddProjectDocumentJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	name := ""
	if body.Name != nil {
		name = *body.Name
	}
	doc, err := h.uc.AddDocument(c.Context(), principal(c), id, name, body.Url)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIDocument(*doc))
}

// DeleteDocument unlinks a document.
func (h *Handler) DeleteDocument(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteDocument(c.Context(), principal(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
