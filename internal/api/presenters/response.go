package presenters

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

type (
	ErrorBody struct {
		Error string `json:"error"`
	}

	OkBody struct {
		Ok bool `json:"ok"`
	}
)

func SuccessResponse(c *fiber.Ctx, data any, statusCode int) error {
	return c.Status(statusCode).JSON(data)
}

func OkResponse(c *fiber.Ctx) error {
	return SuccessResponse(c, OkBody{Ok: true}, fiber.StatusOK)
}

// ErrorResponse writes {"error": ...}. Server errors carry the underlying
// message and are logged with the operation message.
func ErrorResponse(c *fiber.Ctx, statusCode int, message string, err error) error {
	if statusCode >= fiber.StatusInternalServerError {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
	}
	body := ErrorBody{Error: message}
	if err != nil {
		body.Error = err.Error()
	}
	return c.Status(statusCode).JSON(body)
}
