// Package middleware contains HTTP middlewares for delivery.
package middleware

import (
	"time"

	"github.com/alkharfy/cveeez-dash/internal/entities"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RequestLogger logs HTTP requests with method, path, status, duration and,
// once the auth gate has run, the acting user.
func RequestLogger(log *zap.SugaredLogger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		err := c.Next()
		dur := time.Since(start)
		reqID, _ := c.Locals("requestid").(string)
		if reqID == "" {
			reqID = c.Get(fiber.HeaderXRequestID)
		}
		fields := []any{
			"method", c.Method(),
			"path", c.OriginalURL(),
			"status", c.Response().StatusCode(),
			"duration_ms", float64(dur.Microseconds())/1000.0,
			"request_id", reqID,
		}
		if p, ok := c.Locals(PrincipalKey).(entities.Principal); ok {
			fields = append(fields, "user_id", p.ID)
		}
		log.Infow("http", fields...)
		return err
	}
}
