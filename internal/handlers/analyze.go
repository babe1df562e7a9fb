package handlers

import (
	"github.com/gigwallet/insights/internal/models"
	"github.com/gigwallet/insights/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Analyze handles anomaly analysis requests
// POST /v1/analyze
func (h *Handler) Analyze(c *fiber.Ctx) error {
	var body models.AnalyzeRequest
	if err := c.BodyParser(&body); err != nil {
		return badJSON(c, err)
	}

	result, err := h.analysisService.Execute(c.UserContext(), &body)
	if err != nil {
		return serviceError(c, err, "ANALYSIS_FAILED")
	}

	return c.JSON(result)
}

// badJSON replies 400 for an unparseable request body
func badJSON(c *fiber.Ctx, err error) error {
	return c.Status(fiber.StatusBadRequest).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    "INVALID_JSON",
			Message: "Failed to parse JSON body",
			Details: map[string]interface{}{"error": err.Error()},
		},
	})
}

// serviceError maps a service layer error onto an HTTP status. Unknown errors
// become a 500 with the given fallback code.
func serviceError(c *fiber.Ctx, err error, fallbackCode string) error {
	if svcErr, ok := err.(*services.ServiceError); ok {
		status := fiber.StatusInternalServerError
		switch svcErr.Code {
		case services.CodeEmptyRequest, services.CodeInvalidDate:
			status = fiber.StatusBadRequest
		case services.CodeTooManyRecords:
			status = fiber.StatusRequestEntityTooLarge
		case services.CodeInsufficientData:
			status = fiber.StatusUnprocessableEntity
		}
		return c.Status(status).JSON(models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    svcErr.Code,
				Message: svcErr.Message,
				Details: svcErr.Details,
			},
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(models.ErrorResponse{
		Error: models.ErrorDetail{
			Code:    fallbackCode,
			Message: err.Error(),
		},
	})
}
