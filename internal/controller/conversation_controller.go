package controller

import (
	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IConversationController interface {
	RegisterRoutes(r fiber.Router)
	StartDirect(ctx *fiber.Ctx) error
	End(ctx *fiber.Ctx) error
}

type conversationController struct {
	conversationService service.IConversationService
}

func NewConversationController(conversationService service.IConversationService) IConversationController {
	return &conversationController{
		conversationService: conversationService,
	}
}

func (c *conversationController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/conversation/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Post("", c.StartDirect)
	h.Post("end", c.End)
}

func (c *conversationController) StartDirect(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.StartDirectConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	res, err := c.conversationService.StartDirect(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Conversation started", res))
}

func (c *conversationController) End(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.EndConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	if err := c.conversationService.End(ctx.Context(), userId, &req); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Conversation ended", struct{}{}))
}
