package serverutils

import (
	"log"

	"github.com/gofiber/fiber/v2"
)

// ErrorHandlerMiddleware recovers from panics and normalizes unhandled
// errors into the JSON envelope.
func ErrorHandlerMiddleware() fiber.Handler {
	return func(ctx *fiber.Ctx) error {
		defer func() {
			if r := recover(); r != nil {
				log.Printf("[PANIC] %v", r)
				_ = ctx.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
					"success": false,
					"code":    500,
					"message": "Internal server error",
				})
			}
		}()

		if err := ctx.Next(); err != nil {
			code := fiber.StatusInternalServerError
			if fe, ok := err.(*fiber.Error); ok {
				code = fe.Code
			}
			return ctx.Status(code).JSON(fiber.Map{
				"success": false,
				"code":    code,
				"message": err.Error(),
			})
		}
		return nil
	}
}
