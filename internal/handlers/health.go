package handlers

import (
	"github.com/gofiber/fiber/v2"
	"github.com/localnerve/shift-schedule/internal/utils"
)

// GetHealth handles GET /api/health
// @Summary Liveness check
// @Tags Health
// @Produce json
// @Success 200 {object} utils.StatusResponseStruct
// @Router /health [get]
func GetHealth(c *fiber.Ctx) error {
	return utils.SuccessResponse(c, utils.StatusResponseStruct{Status: "ok"}, fiber.StatusOK)
}
