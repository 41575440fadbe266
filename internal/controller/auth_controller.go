package controller

import (
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/serverutils"
	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IAuthController interface {
	RegisterRoutes(r fiber.Router)
	Register(ctx *fiber.Ctx) error
	Login(ctx *fiber.Ctx) error
	Refresh(ctx *fiber.Ctx) error
	Logout(ctx *fiber.Ctx) error
}

type authController struct {
	service service.IAuthService
}

func NewAuthController(service service.IAuthService) IAuthController {
	return &authController{service: service}
}

func (c *authController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/auth")
	h.Post("/register", c.Register)
	h.Post("/login", c.Login)
	h.Post("/refresh-token", c.Refresh)
	h.Post("/logout", c.Logout)
}

func (c *authController) Register(ctx *fiber.Ctx) error {
	var req dto.RegisterRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Register(ctx.Context(), &req)
	if err != nil {
		return fail(ctx, err)
	}
	return created(ctx, "User registered successfully", res)
}

func (c *authController) Login(ctx *fiber.Ctx) error {
	var req dto.LoginRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Login(ctx.Context(), &req, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Login successful", res)
}

func (c *authController) Refresh(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Refresh(ctx.Context(), req.RefreshToken, ctx.IP(), ctx.Get("User-Agent"))
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Token refreshed", res)
}

func (c *authController) Logout(ctx *fiber.Ctx) error {
	var req dto.RefreshRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}

	if err := c.service.Logout(ctx.Context(), req.RefreshToken); err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Logged out", nil)
}
