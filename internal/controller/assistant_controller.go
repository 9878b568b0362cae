package controller

import (
	"errors"

	"ai-onboarding-be/internal/dto"
	"ai-onboarding-be/internal/pkg/serverutils"
	"ai-onboarding-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IAssistantController interface {
	RegisterRoutes(r fiber.Router)
	Ask(ctx *fiber.Ctx) error
	Search(ctx *fiber.Ctx) error
}

type assistantController struct {
	assistantService service.IAssistantService
	authMiddleware   fiber.Handler
}

func NewAssistantController(assistantService service.IAssistantService, authMiddleware fiber.Handler) IAssistantController {
	return &assistantController{
		assistantService: assistantService,
		authMiddleware:   authMiddleware,
	}
}

func (c *assistantController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/assistant/v1")
	h.Use(c.authMiddleware)
	h.Post("ask", c.Ask)
	h.Get("search", c.Search)
}

func (c *assistantController) Ask(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)
	role, _ := ctx.Locals("role").(string)

	var req dto.AskRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.assistantService.Ask(ctx.Context(), userId, role, &req)
	if err != nil {
		if errors.Is(err, service.ErrQuotaExceeded) {
			return ctx.Status(fiber.StatusTooManyRequests).
				JSON(serverutils.ErrorResponse(fiber.StatusTooManyRequests, "Daily question limit reached"))
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success answer question", res))
}

func (c *assistantController) Search(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)

	q := ctx.Query("q", "")

	res, err := c.assistantService.Search(ctx.Context(), role, q)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success search documents", res))
}
