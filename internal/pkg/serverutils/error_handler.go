package serverutils

import (
	"errors"

	"elevennote-be/internal/pkg/logger"
	"elevennote-be/internal/repository/contract"

	"github.com/gofiber/fiber/v2"
)

func ErrorHandlerMiddleware(log logger.ILogger) fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		err := ctx.Next()
		if err == nil {
			return nil
		}

		code, message := resolveError(err)
		if code >= fiber.StatusInternalServerError {
			log.Error("HTTP", "Unhandled request error", map[string]interface{}{
				"method": ctx.Method(),
				"path":   ctx.Path(),
				"error":  err,
			})
		}

		return ctx.Status(code).JSON(ErrorResponse(code, message))
	}
}

func resolveError(err error) (int, string) {
	var fiberErr *fiber.Error
	switch {
	case errors.As(err, &fiberErr):
		return fiberErr.Code, fiberErr.Message
	case errors.Is(err, contract.ErrNoteNotFound):
		return fiber.StatusNotFound, "Note not found"
	case errors.Is(err, contract.ErrNoteNotUnique):
		return fiber.StatusConflict, "Note lookup is ambiguous"
	case errors.Is(err, ErrMissingUser):
		return fiber.StatusUnauthorized, "Unauthorized"
	default:
		return fiber.StatusInternalServerError, "Internal server error"
	}
}
