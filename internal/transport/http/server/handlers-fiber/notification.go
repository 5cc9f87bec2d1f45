package handlers_fiber

import (
	"net/http"

	"industry-flow/internal/entities"
	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// ListNotifications returns the caller's notifications, newest first.
func (h *Handler) ListNotifications(c *fiber.Ctx, params api.ListNotificationsParams) error {
	filter := entities.NotificationFilter{}
	if params.UnreadOnly != nil {
		filter.UnreadOnly = *params.UnreadOnly
	}
	if params.Limit != nil {
		filter.Limit = *params.Limit
	}

	list, err := h.uc.ListNotifications(c.Context(), principal(c), filter)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPINotificationList(list))
}

// MarkNotificationRead flags one notification as read.
func (h *Handler) MarkNotificationRead(c *fiber.Ctx, id string) error {
	n, err := h.uc.MarkNotificationRead(c.Context(), principal(c), id)
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPINotification(*n))
}

// MarkAllNotificationsRead flags every unread notification of the caller.
func (h *Handler) MarkAllNotificationsRead(c *fiber.Ctx) error {
	updated, err := h.uc.MarkAllNotificationsRead(c.Context(), principal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(api.MarkAllReadResponse{Updated: updated})
}
