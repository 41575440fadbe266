package controller

import (
	"tutorhive-be/internal/dto"
	"tutorhive-be/internal/pkg/serverutils"
	"tutorhive-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IChatController interface {
	RegisterRoutes(r fiber.Router)
	Send(ctx *fiber.Ctx) error
	GetConversation(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	MarkRead(ctx *fiber.Ctx) error
}

type chatController struct {
	service service.IChatService
}

func NewChatController(service service.IChatService) IChatController {
	return &chatController{service: service}
}

func (c *chatController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/chat", serverutils.JwtMiddleware)
	h.Post("/messages", c.Send)
	h.Get("/conversations", c.ListConversations)
	h.Get("/conversations/:partnerId", c.GetConversation)
	h.Post("/conversations/:partnerId/read", c.MarkRead)
}

func (c *chatController) Send(ctx *fiber.Ctx) error {
	senderId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}

	var req dto.SendMessageRequest
	if err := ctx.BodyParser(&req); err != nil {
		return badRequest(ctx, err)
	}
	if err := serverutils.ValidateStruct(&req); err != nil {
		return badRequest(ctx, err)
	}

	res, err := c.service.Send(ctx.Context(), senderId, &req)
	if err != nil {
		return fail(ctx, err)
	}
	return created(ctx, "Message sent", res)
}

func (c *chatController) GetConversation(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	partnerId, err := uuid.Parse(ctx.Params("partnerId"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	page := ctx.QueryInt("page", 1)
	limit := ctx.QueryInt("limit", 50)

	messages, total, err := c.service.GetConversation(ctx.Context(), userId, partnerId, page, limit)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Conversation fetched", fiber.Map{
		"messages": messages,
		"total":    total,
	})
}

func (c *chatController) ListConversations(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}

	res, err := c.service.ListConversations(ctx.Context(), userId)
	if err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Conversations fetched", res)
}

func (c *chatController) MarkRead(ctx *fiber.Ctx) error {
	userId, err := serverutils.UserID(ctx)
	if err != nil {
		return fail(ctx, service.ErrUnauthorized)
	}
	partnerId, err := uuid.Parse(ctx.Params("partnerId"))
	if err != nil {
		return fail(ctx, service.ErrNotFound)
	}

	if err := c.service.MarkRead(ctx.Context(), userId, partnerId); err != nil {
		return fail(ctx, err)
	}
	return ok(ctx, "Conversation marked read", nil)
}
