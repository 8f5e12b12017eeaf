package controller

import (
	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/service"

	"github.com/gofiber/fiber/v2"
)

type IResourceController interface {
	RegisterRoutes(r fiber.Router)
	ListResources(ctx *fiber.Ctx) error
	CreatePersona(ctx *fiber.Ctx) error
}

type resourceController struct {
	resourceService service.IResourceService
}

func NewResourceController(resourceService service.IResourceService) IResourceController {
	return &resourceController{
		resourceService: resourceService,
	}
}

func (c *resourceController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/tavus/v1")
	h.Use(serverutils.JwtMiddleware)
	h.Get("resources", c.ListResources)

	p := r.Group("/persona/v1")
	p.Use(serverutils.JwtMiddleware)
	p.Post("", c.CreatePersona)
}

func (c *resourceController) ListResources(ctx *fiber.Ctx) error {
	var req dto.ListResourcesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewValidationError("invalid query parameters")
	}

	res, err := c.resourceService.ListResources(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *resourceController) CreatePersona(ctx *fiber.Ctx) error {
	var req dto.CreatePersonaRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.resourceService.CreatePersona(ctx.Context(), &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Persona created", res))
}
