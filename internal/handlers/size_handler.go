package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

type sizeRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required"`
}

// SizeHandler handles HTTP requests for sizes.
type SizeHandler struct {
	resource
	service *services.SizeService
}

// NewSizeHandler creates a new SizeHandler.
func NewSizeHandler(service *services.SizeService, opts Options) *SizeHandler {
	return &SizeHandler{
		resource: newResource("Size", opts),
		service:  service,
	}
}

// RegisterRoutes registers the size routes.
func (h *SizeHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	sizeRoutes := router.Group("/:storeId/sizes")
	sizeRoutes.Get("/", h.HandleList)
	sizeRoutes.Get("/:sizeId", h.HandleGet)
	sizeRoutes.Post("/", auth, h.HandleCreate)
	sizeRoutes.Patch("/:sizeId", auth, h.HandleUpdate)
	sizeRoutes.Delete("/:sizeId", auth, h.HandleDelete)
}

func (h *SizeHandler) HandleList(c *fiber.Ctx) error {
	sizes, err := h.service.ListSizes(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.fail(c, "SIZES_GET", err)
	}
	return c.JSON(sizes)
}

func (h *SizeHandler) HandleGet(c *fiber.Ctx) error {
	sizes, err := h.service.GetSize(c.UserContext(), c.Params("sizeId"))
	if err != nil {
		return h.fail(c, "SIZE_GET", err)
	}
	return c.JSON(sizes)
}

func (h *SizeHandler) HandleCreate(c *fiber.Ctx) error {
	var req sizeRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	size := &models.Size{StoreID: c.Params("storeId"), Name: req.Name, Value: req.Value}
	if err := h.service.CreateSize(c.UserContext(), userID(c), size); err != nil {
		return h.fail(c, "SIZES_POST", err)
	}
	return c.JSON(size)
}

func (h *SizeHandler) HandleUpdate(c *fiber.Ctx) error {
	var req sizeRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	size := &models.Size{ID: c.Params("sizeId"), StoreID: c.Params("storeId"), Name: req.Name, Value: req.Value}
	if err := h.service.UpdateSize(c.UserContext(), userID(c), size); err != nil {
		return h.fail(c, "SIZE_PATCH", err)
	}
	return c.JSON(size)
}

func (h *SizeHandler) HandleDelete(c *fiber.Ctx) error {
	count, err := h.service.DeleteSize(c.UserContext(), userID(c), c.Params("storeId"), c.Params("sizeId"))
	if err != nil {
		return h.fail(c, "SIZE_DELETE", err)
	}
	return c.JSON(fiber.Map{"count": count})
}
