package controller

import (
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/serverutils"
	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IBookingController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Get(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Confirm(ctx *fiber.Ctx) error
	Complete(ctx *fiber.Ctx) error
	Cancel(ctx *fiber.Ctx) error
	Rate(ctx *fiber.Ctx) error
}

type bookingController struct {
	service service.IBookingService
}

func NewBookingController(service service.IBookingService) IBookingController {
	return &bookingController{service: service}
}

func (c *bookingController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/bookings", serverutils.JwtMiddleware)
	h.Post("/", serverutils.RequireRole("student"), c.Create)
	h.Get("/", c.List)
	h.Get("/:id", c.Get)
	h.Post("/:id/confirm", c.Confirm)
	h.Post("/:id/complete", c.Complete)
	h.Post("/:id/cancel", c.Cancel)
	h.Post("/:id/rating", c.Rate)
}

func (c *bookingController) Create(ctx *fiber.Ctx) error {
	studentId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}

	var req dto.CreateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Create(ctx.Context(), studentId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return created(ctx, "Booking created", res)
}

func (c *bookingController) Get(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	bookingId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	res, err := c.service.Get(ctx.Context(), userId, bookingId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Booking fetched", res)
}

// List returns the caller's bookings, as student or as tutor depending
// on the role claim.
func (c *bookingController) List(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 20)

	var res []dto.BookingResponse
	if ctx.Locals("role") == "tutor" {
		res, err = c.service.ListForTutor(ctx.Context(), userId, page, limit)
	} else {
		res, err = c.service.ListForStudent(ctx.Context(), userId, page, limit)
	}
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Bookings fetched", res)
}

func (c *bookingController) Confirm(ctx *fiber.Ctx) error {
	tutorId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	bookingId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	res, err := c.service.Confirm(ctx.Context(), tutorId, bookingId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Booking confirmed", res)
}

func (c *bookingController) Complete(ctx *fiber.Ctx) error {
	tutorId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	bookingId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	res, err := c.service.Complete(ctx.Context(), tutorId, bookingId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Booking completed", res)
}

func (c *bookingController) Cancel(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	bookingId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	res, err := c.service.Cancel(ctx.Context(), userId, bookingId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Booking cancelled", res)
}

func (c *bookingController) Rate(ctx *fiber.Ctx) error {
	studentId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	bookingId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	var req dto.RateBookingRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Rate(ctx.Context(), studentId, bookingId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Booking rated", res)
}
