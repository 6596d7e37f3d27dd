package serverutils

import (
	"errors"
	"strings"
	"time"

	"housing-empire-ai/internal/pkg/logger"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandler is the last stop for errors handlers did not render
// themselves. API routes get the JSON envelope, pages get plain text.
func ErrorHandler(log logger.ILogger) fiber.ErrorHandler {
	return func(ctx *fiber.Ctx, err error) error {
		code := fiber.StatusInternalServerError
		message := "Internal server error"

		var fe *fiber.Error
		if errors.As(err, &fe) {
			code = fe.Code
			message = fe.Message
		}

		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled request error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err.Error(),
			})
		}

		if strings.HasPrefix(ctx.Path(), "/api") {
			return ctx.Status(code).JSON(ErrorResponse(code, message))
		}
		return ctx.Status(code).SendString(message)
	}
}

// RequestLogger writes one line per request.
func RequestLogger(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		start := time.Now()
		err := ctx.Next()

		status := ctx.Response().StatusCode()
		var fe *fiber.Error
		if errors.As(err, &fe) {
			status = fe.Code
		}

		log.Info("HTTP", "Request handled", map[string]interface{}{
			"request_id": ctx.Locals("requestid"),
			"method":     ctx.Method(),
			"path":       ctx.Path(),
			"status":     status,
			"latency_ms": time.Since(start).Milliseconds(),
		})
		return err
	}
}
