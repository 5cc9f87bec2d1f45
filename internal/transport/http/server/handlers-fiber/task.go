package handlers_fiber

import (
	"net/http"

	"industry-flow/internal/entities"
	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListTasks returns tasks for the board and calendar views.
func (h *Handler) ListTasks(c *fiber.Ctx, params api.ListTasksParams) error {
	list, err := h.uc.ListTasks(c.Context(), principal(c), mapper.TaskFilterFromParams(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITaskList(list, h.now()))
}

// CreateTask adds a task to a project.
func (h *Handler) CreateTask(c *fiber.Ctx) error {
	var body api.CreateTaskJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	task, err := h.uc.CreateTask(c.Context(), principal(c), mapper.FromOAPITask(body))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusCreated).JSON(mapper.ToOAPITask(*task, h.now()))
}

// GetTask returns one task.
func (h *Handler) GetTask(c *fiber.Ctx, id string) error {
	task, err := h.uc.GetTask(c.Context(), principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITask(*task, h.now()))
}

// UpdateTask replaces task details.
func (h *Handler) UpdateTask(c *fiber.Ctx, id string) error {
	var body api.UpdateTaskJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	in := mapper.FromOAPITask(body)
	in.ID = id
	task, err := h.uc.UpdateTask(c.Context(), principal(c), in)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITask(*task, h.now()))
}

// MoveTask drags a task to another column or position.
func (h *Handler) MoveTask(c *fiber.Ctx, id string) error {
	var body api.MoveTaskJSONRequestBody
	if err := c.BodyParser(&body); err != nil {
		return badBody(c)
	}

	task, err := h.uc.MoveTask(c.Context(), principal(c), id, entities.TaskStatus(body.Status), body.Position)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPITask(*task, h.now()))
}

// DeleteTask removes a task.
func (h *Handler) DeleteTask(c *fiber.Ctx, id string) error {
	if err := h.uc.DeleteTask(c.Context(), principal(c), id); err != nil {
		return writeError(c, err)
	}
	return c.SendStatus(http.StatusNoContent)
}
