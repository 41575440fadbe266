package controller

import (
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/serverutils"
	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAvailabilityController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	ListForTutor(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
}

type availabilityController struct {
	service service.IAvailabilityService
}

func NewAvailabilityController(service service.IAvailabilityService) IAvailabilityController {
	return &availabilityController{service: service}
}

func (c *availabilityController) RegisterRoutes(r fiber.Router) {
	r.Get("/tutors/:id/availabilities", c.ListForTutor)

	h := r.Group("/availabilities", serverutils.JwtMiddleware, serverutils.RequireRole("tutor"))
	h.Post("/", c.Create)
	h.Delete("/:id", c.Delete)
}

func (c *availabilityController) Create(ctx *fiber.Ctx) error {
	tutorId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}

	var req dto.CreateAvailabilityRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Create(ctx.Context(), tutorId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return created(ctx, "Availability slot created", res)
}

func (c *availabilityController) ListForTutor(ctx *fiber.Ctx) error {
	tutorId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	onlyOpen := ctx.QueryBool("open", false)
	res, err := c.service.ListForTutor(ctx.Context(), tutorId, onlyOpen)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Availability fetched", res)
}

func (c *availabilityController) Delete(ctx *fiber.Ctx) error {
	tutorId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	slotId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	if err := c.service.Delete(ctx.Context(), tutorId, slotId); err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Availability slot deleted", nil)
}
