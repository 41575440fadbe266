package controller

import (
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/serverutils"
	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IPaymentController interface {
	RegisterRoutes(r fiber.Router)
	Checkout(ctx *fiber.Ctx) error
	Webhook(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	Refund(ctx *fiber.Ctx) error
}

type paymentController struct {
	service service.IPaymentService
}

func NewPaymentController(service service.IPaymentService) IPaymentController {
	return &paymentController{service: service}
}

func (c *paymentController) RegisterRoutes(r fiber.Router) {
	// Midtrans calls the webhook unauthenticated; the signature check
	// inside the service is the gate.
	r.Post("/payments/webhook", c.Webhook)

	h := r.Group("/payments", serverutils.JwtMiddleware)
	h.Post("/checkout/:bookingId", c.Checkout)
	h.Get("/:id", c.Get)
	h.Post("/:id/refund", c.Refund)
}

func (c *paymentController) Checkout(ctx *fiber.Ctx) error {
	studentId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	bookingId, err := uuid.Parse(ctx.Params("bookingId"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	res, err := c.service.Checkout(ctx.Context(), studentId, bookingId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Checkout created", res)
}

func (c *paymentController) Webhook(ctx *fiber.Ctx) error {
	var req dto.MidtransWebhookRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}

	if err := c.service.HandleNotification(ctx.Context(), &req); err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Notification processed", nil)
}

func (c *paymentController) Get(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	paymentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	res, err := c.service.Get(ctx.Context(), userId, paymentId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Payment fetched", res)
}

func (c *paymentController) Refund(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	paymentId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	var req dto.RefundRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Refund(ctx.Context(), userId, paymentId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Payment refunded", res)
}
