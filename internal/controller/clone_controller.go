package controller

import (
	"ai-salesclone-be/internal/dto"
	"ai-salesclone-be/internal/pkg/serverutils"
	"ai-salesclone-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type ICloneController interface {
	RegisterRoutes(r fiber.Router)
	CreateFullPipeline(ctx *fiber.Ctx) error
	Create(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Update(ctx *fiber.Ctx) error
	Delete(ctx *fiber.Ctx) error
	Status(ctx *fiber.Ctx) error
	StartConversation(ctx *fiber.Ctx) error
	ListConversations(ctx *fiber.Ctx) error
	UpsertIntegration(ctx *fiber.Ctx) error
	ListIntegrations(ctx *fiber.Ctx) error
}

type cloneController struct {
	cloneService        service.ICloneService
	conversationService service.IConversationService
	integrationService  service.IIntegrationService
}

func NewCloneController(
	cloneService service.ICloneService,
	conversationService service.IConversationService,
	integrationService service.IIntegrationService,
) ICloneController {
	return &cloneController{
		cloneService:        cloneService,
		conversationService: conversationService,
		integrationService:  integrationService,
	}
}

func (c *cloneController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/clone/v1")
	h.Use(serverutils.JwtMiddleware)
	// The bare POST runs the provisioning pipeline; create-full-pipeline
	// registers an already provisioned persona/replica pair. Route names kept
	// for dashboard client compatibility.
	h.Post("", c.CreateFullPipeline)
	h.Post("create-full-pipeline", c.Create)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Patch(":id", c.Update)
	h.Delete(":id", c.Delete)
	h.Get(":id/status", c.Status)
	h.Post(":id/conversation", c.StartConversation)
	h.Get(":id/conversations", c.ListConversations)
	h.Post(":id/integrations", c.UpsertIntegration)
	h.Get(":id/integrations", c.ListIntegrations)
}

func currentUserId(ctx *fiber.Ctx) uuid.UUID {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	return userId
}

func (c *cloneController) CreateFullPipeline(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateClonePipelineRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cloneService.CreateFullPipeline(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Clone pipeline completed", res))
}

func (c *cloneController) Create(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.CreateCloneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cloneService.Create(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Clone created", res))
}

func (c *cloneController) List(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	var req dto.ListClonesRequest
	if err := ctx.QueryParser(&req); err != nil {
		return serverutils.NewValidationError("invalid query parameters")
	}

	res, err := c.cloneService.List(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *cloneController) Show(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	res, err := c.cloneService.Show(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *cloneController) Update(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	var req dto.UpdateCloneRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	req.Id = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.cloneService.Update(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Clone updated", res))
}

func (c *cloneController) Delete(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	if err := c.cloneService.Delete(ctx.Context(), userId, id); err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Clone deleted", struct{}{}))
}

func (c *cloneController) Status(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	poll := ctx.QueryBool("poll", false)

	res, err := c.cloneService.RefreshStatus(ctx.Context(), userId, id, poll)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *cloneController) StartConversation(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	var req dto.StartCloneConversationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	req.CloneId = id

	res, err := c.conversationService.StartForClone(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.Status(fiber.StatusCreated).JSON(serverutils.SuccessResponse("Conversation started", res))
}

func (c *cloneController) ListConversations(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	res, err := c.conversationService.ListForClone(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}

func (c *cloneController) UpsertIntegration(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	var req dto.UpsertIntegrationRequest
	if err := ctx.BodyParser(&req); err != nil {
		return serverutils.NewValidationError("invalid request body")
	}
	req.CloneId = id

	if err := serverutils.ValidateRequest(req); err != nil {
		return err
	}

	res, err := c.integrationService.Upsert(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Integration saved", res))
}

func (c *cloneController) ListIntegrations(ctx *fiber.Ctx) error {
	userId := currentUserId(ctx)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return serverutils.NewValidationError("invalid clone id")
	}

	res, err := c.integrationService.ListForClone(ctx.Context(), userId, id)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success", res))
}
