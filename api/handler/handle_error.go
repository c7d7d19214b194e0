package handler

import (
	"errors"
	"log/slog"

	"github.com/gofiber/fiber/v2"
	"github.com/sunthewhat/easy-cred-api/internal/apperror"
	"github.com/sunthewhat/easy-cred-api/type/response"
)

// StatusOf maps an engine error kind to its HTTP status.
func StatusOf(err error) int {
	switch apperror.KindOf(err) {
	case apperror.KindValidation:
		return fiber.StatusBadRequest
	case apperror.KindNotFound:
		return fiber.StatusNotFound
	case apperror.KindAuth:
		return fiber.StatusUnauthorized
	case apperror.KindRender:
		return fiber.StatusUnprocessableEntity
	default:
		return fiber.StatusInternalServerError
	}
}

func HandleError(c *fiber.Ctx, err error) error {
	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		return c.Status(fiberErr.Code).JSON(
			response.Error(fiberErr.Message),
		)
	}

	status := StatusOf(err)
	if status >= fiber.StatusInternalServerError || apperror.KindOf(err) == apperror.KindRender {
		slog.Error("Request failed", "error", err, "method", c.Method(), "path", c.Path())
	}

	return c.Status(status).JSON(
		response.FieldError(apperror.Message(err), apperror.FieldOf(err)),
	)
}
