package handlers

import (
	"github.com/gigwallet/insights/internal/models"
	"github.com/gofiber/fiber/v2"
)

// ForecastEarnings handles earnings forecast requests
// POST /v1/forecast/earnings
func (h *Handler) ForecastEarnings(c *fiber.Ctx) error {
	var body models.EarningsForecastRequest
	if err := c.BodyParser(&body); err != nil {
		return badJSON(c, err)
	}

	result, err := h.forecastService.Earnings(c.UserContext(), &body)
	if err != nil {
		return serviceError(c, err, "FORECAST_FAILED")
	}

	return c.JSON(result)
}

// ForecastExpenses handles expense forecast requests
// POST /v1/forecast/expenses
func (h *Handler) ForecastExpenses(c *fiber.Ctx) error {
	var body models.ExpenseForecastRequest
	if err := c.BodyParser(&body); err != nil {
		return badJSON(c, err)
	}

	result, err := h.forecastService.Expenses(c.UserContext(), &body)
	if err != nil {
		return serviceError(c, err, "FORECAST_FAILED")
	}

	return c.JSON(result)
}

// ForecastVelocity handles income velocity requests
// POST /v1/forecast/velocity
func (h *Handler) ForecastVelocity(c *fiber.Ctx) error {
	var body models.VelocityRequest
	if err := c.BodyParser(&body); err != nil {
		return badJSON(c, err)
	}

	result, err := h.forecastService.Velocity(c.UserContext(), &body)
	if err != nil {
		return serviceError(c, err, "FORECAST_FAILED")
	}

	return c.JSON(result)
}
