package handlers_fiber

import (
	"net/http"

	"industry-flow/internal/mapper"
	api "industry-flow/internal/oapi"

	"github.com/gofiber/fiber/v2"
)

// GetRevenue returns revenue, cost and profit grouped by the requested key.
func (h *Handler) GetRevenue(c *fiber.Ctx, params api.GetRevenueParams) error {
	report, err := h.uc.Revenue(c.Context(), principal(c), mapper.RevenueQueryFromParams(params))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPIRevenueReport(report))
}

// GetSummary returns dashboard counters.
func (h *Handler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.uc.Summary(c.Context(), principal(c))
	if err != nil {
		return writeError(c, err)
	}
	return c.Status(http.StatusOK).JSON(mapper.ToOAPISummary(summary))
}

// ListCurrencies returns the currencies with a configured rate.
func (h *Handler) ListCurrencies(c *fiber.Ctx) error {
	return c.Status(http.StatusOK).JSON(api.CurrenciesResponse{Currencies: h.uc.Currencies()})
}
