package controller

import (
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/serverutils"
	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ITutorController interface {
	RegisterRoutes(r fiber.Router)
	UpsertProfile(ctx *fiber.Ctx) error
	GetProfile(ctx *fiber.Ctx) error
	ListTutors(ctx *fiber.Ctx) error
}

type tutorController struct {
	service       service.ITutorService
	reviewService service.IReviewService
}

func NewTutorController(service service.ITutorService, reviewService service.IReviewService) ITutorController {
	return &tutorController{
		service:       service,
		reviewService: reviewService,
	}
}

func (c *tutorController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tutors")
	h.Get("/", c.ListTutors)
	h.Get("/:id", c.GetProfile)
	h.Get("/:id/reviews", c.ListReviews)
	h.Put("/me/profile", serverutils.JwtMiddleware, c.UpsertProfile)
}

func (c *tutorController) UpsertProfile(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}

	var req dto.UpsertTutorProfileRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.UpsertProfile(ctx.Context(), userId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Tutor profile saved", res)
}

func (c *tutorController) GetProfile(ctx *fiber.Ctx) error {
	tutorId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	res, err := c.service.GetProfile(ctx.Context(), tutorId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Tutor profile fetched", res)
}

func (c *tutorController) ListTutors(ctx *fiber.Ctx) error {
	var req dto.ListTutorsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return badRequest(ctx, err)
	}

	tutors, total, err := c.service.ListTutors(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Tutors fetched", fiber.Map{
		"tutors": tutors,
		"total":  total,
	})
}

func (c *tutorController) ListReviews(ctx *fiber.Ctx) error {
	tutorId, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	var req dto.ListReviewsRequest
	if err := ctx.QueryParser(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.reviewService.ListForTutor(ctx.Context(), tutorId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Reviews fetched", res)
}
