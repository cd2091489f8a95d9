package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

type categoryRequest struct {
	Name        string `json:"name" validate:"required"`
	BillboardID string `json:"billboardId" validate:"required"`
}

// CategoryHandler handles HTTP requests for categories.
type CategoryHandler struct {
	resource
	service *services.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler.
func NewCategoryHandler(service *services.CategoryService, opts Options) *CategoryHandler {
	return &CategoryHandler{
		resource: newResource("Category", opts),
		service:  service,
	}
}

// RegisterRoutes registers the category routes.
func (h *CategoryHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	categoryRoutes := router.Group("/:storeId/categories")
	categoryRoutes.Get("/", h.HandleList)
	categoryRoutes.Get("/:categoryId", h.HandleGet)
	categoryRoutes.Post("/", auth, h.HandleCreate)
	categoryRoutes.Patch("/:categoryId", auth, h.HandleUpdate)
	categoryRoutes.Delete("/:categoryId", auth, h.HandleDelete)
}

func (h *CategoryHandler) HandleList(c *fiber.Ctx) error {
	categories, err := h.service.ListCategories(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.fail(c, "CATEGORIES_GET", err)
	}
	return c.JSON(categories)
}

func (h *CategoryHandler) HandleGet(c *fiber.Ctx) error {
	categories, err := h.service.GetCategory(c.UserContext(), c.Params("categoryId"))
	if err != nil {
		return h.fail(c, "CATEGORY_GET", err)
	}
	return c.JSON(categories)
}

// HandleCreate creates a category. The billboard must exist; the database enforces it.
func (h *CategoryHandler) HandleCreate(c *fiber.Ctx) error {
	var req categoryRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	category := &models.Category{
		StoreID:     c.Params("storeId"),
		BillboardID: req.BillboardID,
		Name:        req.Name,
	}
	if err := h.service.CreateCategory(c.UserContext(), userID(c), category); err != nil {
		return h.fail(c, "CATEGORIES_POST", err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleUpdate(c *fiber.Ctx) error {
	var req categoryRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	category := &models.Category{
		ID:          c.Params("categoryId"),
		StoreID:     c.Params("storeId"),
		BillboardID: req.BillboardID,
		Name:        req.Name,
	}
	if err := h.service.UpdateCategory(c.UserContext(), userID(c), category); err != nil {
		return h.fail(c, "CATEGORY_PATCH", err)
	}
	return c.JSON(category)
}

func (h *CategoryHandler) HandleDelete(c *fiber.Ctx) error {
	count, err := h.service.DeleteCategory(c.UserContext(), userID(c), c.Params("storeId"), c.Params("categoryId"))
	if err != nil {
		return h.fail(c, "CATEGORY_DELETE", err)
	}
	return c.JSON(fiber.Map{"count": count})
}
