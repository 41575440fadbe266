package controller

import (
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/serverutils"
	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IReviewController interface {
	RegisterRoutes(r fiber.Router)
	Create(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	ListByTutor(ctx *fiber.Ctx) error
}

type reviewController struct {
	service service.IReviewService
}

func NewReviewController(service service.IReviewService) IReviewController {
	return &reviewController{service: service}
}

func (c *reviewController) RegisterRoutes(r fiber.Router) {
	r.Get("/reviews/tutor/:tutorId", c.ListByTutor)

	h := r.Group("/reviews", serverutils.JwtMiddleware, serverutils.RequireRole("student"))
	h.Post("/", c.Create)
	h.Put("/:id", c.Update)
	h.Delete("/:id", c.Delete)
}

func (c *reviewController) ListByTutor(ctx *fiber.Ctx) error {
	tutorId, err := uuid.Parse(ctx.Params("tutorId"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	var req dto.ListReviewsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.ListForTutor(ctx.Context(), tutorId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Reviews fetched", res)
}

func (c *reviewController) Create(ctx *fiber.Ctx) error {
	studentId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}

	var req dto.CreateReviewRequest
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
	return created(ctx, "Review created", res)
}

func (c *reviewController) Update(ctx *fiber.Ctx) error {
	studentId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	reviewId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	var req dto.UpdateReviewRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Update(ctx.Context(), studentId, reviewId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Review updated", res)
}

func (c *reviewController) Delete(ctx *fiber.Ctx) error {
	studentId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	reviewId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	if err := c.service.Delete(ctx.Context(), studentId, reviewId); err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Review deleted", nil)
}
