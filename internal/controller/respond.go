package controller

import (
	"errors"

	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

// statusFromError maps service sentinel errors onto HTTP status codes.
func statusFromError(err error) int {
	switch {
	case errors.Is(err, service.ErrValidation):
		return fiber.StatusBadRequest
	case errors.Is(err, service.ErrUnauthorized):
		return fiber.StatusUnauthorized
	case errors.Is(err, service.ErrForbidden):
		return fiber.StatusForbidden
	case errors.Is(err, service.ErrNotFound):
		return fiber.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return fiber.StatusConflict
	default:
		return fiber.StatusInternalServerError
	}
}

func fail(ctx *fiber.Ctx, err error) error {
	code := statusFromError(err)
	message := err.Error()
	if code == fiber.StatusInternalServerError {
		// Internal details stay in the logs.
		message = "Internal server error"
	}
	return ctx.Status(code).JSON(fiber.Map{
		"success": false,
		"code":    code,
		"message": message,
	})
}

func ok(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.JSON(fiber.Map{
		"success": true,
		"code":    200,
		"message": message,
		"data":    data,
	})
}

func created(ctx *fiber.Ctx, message string, data interface{}) error {
	return ctx.Status(fiber.StatusCreated).JSON(fiber.Map{
		"success": true,
		"code":    201,
		"message": message,
		"data":    data,
	})
}

func badRequest(ctx *fiber.Ctx, err error) error {
	return ctx.Status(fiber.StatusBadRequest).JSON(fiber.Map{
		"success": false,
		"code":    400,
		"message": err.Error(),
	})
}
