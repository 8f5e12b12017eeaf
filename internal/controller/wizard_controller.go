package controller

import (
	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IWizardController interface {
	RegisterRoutes(r fiber.Router)
	GetState(ctx *fiber.Ctx) error
	UpdateStep(ctx *fiber.Ctx) error
	Next(ctx *fiber.Ctx) error
	Previous(ctx *fiber.Ctx) error
	GoTo(ctx *fiber.Ctx) error
	Submit(ctx *fiber.Ctx) error
	Discard(ctx *fiber.Ctx) error
}

type wizardController struct {
	wizardService service.IWizardService
}

func NewWizardController(wizardService service.IWizardService) IWizardController {
	return &wizardController{
		wizardService: wizardService,
	}
}

func (c *wizardController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/wizard/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("", c.GetState)
	h.Put("step", c.UpdateStep)
	h.Post("next", c.Next)
	h.Post("previous", c.Previous)
	h.Post("goto", c.GoTo)
	h.Post("submit", c.Submit)
	h.Delete("", c.Discard)
}

func (c *wizardController) GetState(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.wizardService.GetState(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *wizardController) UpdateStep(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.UpdateWizardStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.wizardService.UpdateStep(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Step saved", res))
}

func (c *wizardController) Next(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.wizardService.Next(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *wizardController) Previous(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.wizardService.Previous(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *wizardController) GoTo(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.GoToWizardStepRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.wizardService.GoTo(ctx.Context(), userId, req.Step)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *wizardController) Submit(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	res, err := c.wizardService.Submit(ctx.Context(), userId)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Clone pipeline completed", res))
}

func (c *wizardController) Discard(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	if err := c.wizardService.Discard(ctx.Context(), userId); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Draft discarded", struct{}{}))
}
