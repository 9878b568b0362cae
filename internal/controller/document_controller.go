package controller

import (
	"errors"

	"ai-onboarding-be/internal/dto"
	"ai-onboarding-be/internal/pkg/serverutils"
	"ai-onboarding-be/internal/service"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

type IDocumentController interface {
	RegisterRoutes(r fiber.Router)
	Store(ctx *fiber.Ctx) error
	BulkStore(ctx *fiber.Ctx) error
	List(ctx *fiber.Ctx) error
	Show(ctx *fiber.Ctx) error
	Versions(ctx *fiber.Ctx) error
	Stats(ctx *fiber.Ctx) error
}

type documentController struct {
	documentService service.IDocumentService
	authMiddleware  fiber.Handler
}

func NewDocumentController(documentService service.IDocumentService, authMiddleware fiber.Handler) IDocumentController {
	return &documentController{
		documentService: documentService,
		authMiddleware:  authMiddleware,
	}
}

func (c *documentController) RegisterRoutes(r fiber.Router) {
	h := r.Group("/document/v1")
	h.Use(c.authMiddleware)

	// Static segments first so they are not swallowed by :id
	h.Get("stats", c.Stats)
	h.Get("", c.List)
	h.Get(":id", c.Show)
	h.Get(":id/versions", c.Versions)

	// Only administrators may change the corpus
	h.Post("", serverutils.RequireRole("admin"), c.Store)
	h.Post("bulk", serverutils.RequireRole("admin"), c.BulkStore)
}

func (c *documentController) Store(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.StoreDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.documentService.Store(ctx.Context(), userId, &req)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success store document", res))
}

func (c *documentController) BulkStore(ctx *fiber.Ctx) error {
	userIdStr, _ := ctx.Locals("user_id").(string)
	userId, _ := uuid.Parse(userIdStr)

	var req dto.BulkStoreDocumentRequest
	if err := ctx.BodyParser(&req); err != nil {
		return err
	}

	err := serverutils.ValidateRequest(req)
	if err != nil {
		return err
	}

	res, err := c.documentService.BulkStore(ctx.Context(), userId, &req)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success store documents", res))
}

func (c *documentController) List(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)

	category := ctx.Query("category", "")
	limit := ctx.QueryInt("limit", 50)
	offset := ctx.QueryInt("offset", 0)

	res, err := c.documentService.List(ctx.Context(), role, category, limit, offset)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list documents", res))
}

func (c *documentController) Show(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	res, err := c.documentService.Show(ctx.Context(), role, id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success show document", res))
}

func (c *documentController) Versions(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)

	id, err := uuid.Parse(ctx.Params("id"))
	if err != nil {
		return fiber.NewError(fiber.StatusBadRequest, "Invalid document id")
	}

	res, err := c.documentService.Versions(ctx.Context(), role, id)
	if err != nil {
		if errors.Is(err, service.ErrDocumentNotFound) {
			return fiber.NewError(fiber.StatusNotFound, "Document not found")
		}
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success list document versions", res))
}

func (c *documentController) Stats(ctx *fiber.Ctx) error {
	role, _ := ctx.Locals("role").(string)

	res, err := c.documentService.Stats(ctx.Context(), role)
	if err != nil {
		return err
	}

	return ctx.JSON(serverutils.SuccessResponse("Success document stats", res))
}
