package utils

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse sends data as JSON with the given status
func SuccessResponse(c *fiber.Ctx, data interface{}, status int) error {
	return c.Status(status).JSON(data)
}

// ErrorResponse sends the standard error body {"error": message}
func ErrorResponse(c *fiber.Ctx, message string, status int) error {
	return c.Status(status).JSON(ErrorResponseStruct{Error: message})
}

// OKResponse sends {"ok": true} for a completed write
func OKResponse(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(OKResponseStruct{OK: true})
}

// NotFoundResponse sends a 404 not found response
func NotFoundResponse(c *fiber.Ctx) error {
	return ErrorResponse(c, "Not Found", fiber.StatusNotFound)
}

// ErrorResponseStruct defines the schema for error responses
type ErrorResponseStruct struct {
	Error string `json:"error"`
}

// OKResponseStruct defines the schema for write success responses
type OKResponseStruct struct {
	OK bool `json:"ok"`
}

// StatusResponseStruct defines the schema for the health response
type StatusResponseStruct struct {
	Status string `json:"status"`
}
