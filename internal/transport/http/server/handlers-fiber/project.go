package handlers_fiber

import (
	"net/http"

	"industry-flow/internal/entities"
	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListProjects returns filtered projects.
func (h *Handler) ListProjects(c *fiber.Ctx, params api.ListProjectsParams) error {
	list, err := h.uc.ListProjects(c.Context(), principal(c), mapper.ProjectFilterFromParams(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIProjectList(list))
}

// CreateProject adds a project at the first pipeline stage.
func (h *Handler) CreateProject(c *fiber.Ctx) error {
	var body api.CreateProjectJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	project, err := h.uc.CreateProject(c.Context(), principal(c), mapper.FromOAPIProject(body))
	if err != nil {
		return writeError(c, err)
	}
	h.log.Infow("project created", "project_id", project.ID)
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPIProject(*project))
}

// GetProject returns one project.
func (h *Handler) GetProject(c *fiber.Ctx, id string) error {
	project, err := h.uc.GetProject(c.Context(), principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIProject(*project))
}

// UpdateProject replaces project details.
func (h *Handler) UpdateProject(c *fiber.Ctx, id string) error {
	var body api.UpdateProjectJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	in := mapper.FromOAPIProject(body)
	in.ID = id
	project, err := h.uc.UpdateProject(c.Context(), principal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIProject(*project))
}

// DeleteProject removes a project.
func (h *Handler) DeleteProject(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteProject(c.Context(), principal(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}

// ChangeProjectStage moves a project through the pipeline.
func (h *Handler) ChangeProjectStage(c *fiber.Ctx, id string) error {
	var body api.ChangeProjectStageJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	change, err := h.uc.ChangeProjectStage(c.Context(), principal(c), id, entities.PipelineStage(body.Stage))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIStageChange(change))
}

// ListPipelineStages returns the stages in order.
func (h *Handler) ListPipelineStages(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIStages(h.uc.PipelineStages()))
}
