package handlers_fiber

import (
	"github.com/alkharfy/cveeez-dash/internal/api"
	"github.com/gofiber/fiber/v2"
)

// respond writes the uniform envelope. data, error and message keys are
// always present; message is null when empty.
func respond(c *fiber.Ctx, status int, data any) error {
	return c.Status(status).JSON(api.Envelope{Data: data})
}

func respondMessage(c *fiber.Ctx, status int, data any, message string) error {
	env := api.Envelope{Data: data}
	if message != "" {
		env.Message = &message
	}
	return c.Status(status).JSON(env)
}

func respondError(c *fiber.Ctx, status int, msg string) error {
	return c.Status(status).JSON(api.Envelope{Error: &msg})
}
