package handlers_fiber

import (
	"net/http"

	"industry-flow/internal/entities"
	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListTeamMembers returns the team directory.
func (h *Handler) ListTeamMembers(c *fiber.Ctx, params api.ListTeamMembersParams) error {
	filter := entities.MemberFilter{}
	if params.Department != nil {
		filter.Department = *params.Department
	}
	if params.ActiveOnly != nil {
		filter.ActiveOnly = *params.ActiveOnly
	}

	list, err := h.uc.ListMembers(c.Context(), principal(c), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIMemberList(list))
}

// CreateTeamMember adds a member to the directory.
func (h *Handler) CreateTeamMember(c *fiber.Ctx) error {
	var body api.CreateTeamMemberJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	member, err := h.uc.CreateMember(c.Context(), principal(c), mapper.FromOAPIMember(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIMember(*member))
}

// GetTeamMember returns one member.
func (h *Handler) GetTeamMember(c *fiber.Ctx, id string) error {
	member, err := h.uc.GetMember(c.Context(), principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIMember(*member))
}

// UpdateTeamMember replaces member details.
func (h *Handler) UpdateTeamMember(c *fiber.Ctx, id string) error {
	var body api.UpdateTeamMemberJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	in := mapper.FromOAPIMember(body)
	in.ID = id
	member, err := h.uc.UpdateMember(c.Context(), principal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIMember(*member))
}

// DeleteTeamMember removes a member; their tasks become unassigned.
func (h *Handler) DeleteTeamMember(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteMember(c.Context(), principal(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
