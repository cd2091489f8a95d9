package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

// colorRequest accepts short and long hex codes: "#fff", "#00ff00".
type colorRequest struct {
	Name  string `json:"name" validate:"required"`
	Value string `json:"value" validate:"required,min=4,max=7,startswith=#"`
}

// ColorHandler handles HTTP requests for colors.
type ColorHandler struct {
	resource
	service *services.ColorService
}

// NewColorHandler creates a new ColorHandler.
func NewColorHandler(service *services.ColorService, opts Options) *ColorHandler {
	return &ColorHandler{
		resource: newResource("Color", opts),
		service:  service,
	}
}

// RegisterRoutes registers the color routes.
func (h *ColorHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	colorRoutes := router.Group("/:storeId/colors")
	colorRoutes.Get("/", h.HandleList)
	colorRoutes.Get("/:colorId", h.HandleGet)
	colorRoutes.Post("/", auth, h.HandleCreate)
	colorRoutes.Patch("/:colorId", auth, h.HandleUpdate)
	colorRoutes.Delete("/:colorId", auth, h.HandleDelete)
}

// HandleList returns all colors of a store.
func (h *ColorHandler) HandleList(c *fiber.Ctx) error {
	colors, err := h.service.ListColors(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.fail(c, "COLORS_GET", err)
	}
	return c.JSON(colors)
}

// HandleGet returns the colors matching the id as an array.
func (h *ColorHandler) HandleGet(c *fiber.Ctx) error {
	colors, err := h.service.GetColor(c.UserContext(), c.Params("colorId"))
	if err != nil {
		return h.fail(c, "COLOR_GET", err)
	}
	return c.JSON(colors)
}

// HandleCreate creates a color in an owned store.
func (h *ColorHandler) HandleCreate(c *fiber.Ctx) error {
	var req colorRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	color := &models.Color{StoreID: c.Params("storeId"), Name: req.Name, Value: req.Value}
	if err := h.service.CreateColor(c.UserContext(), userID(c), color); err != nil {
		return h.fail(c, "COLORS_POST", err)
	}
	return c.JSON(color)
}

// HandleUpdate rewrites the name and value of a color.
func (h *ColorHandler) HandleUpdate(c *fiber.Ctx) error {
	var req colorRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	color := &models.Color{ID: c.Params("colorId"), StoreID: c.Params("storeId"), Name: req.Name, Value: req.Value}
	if err := h.service.UpdateColor(c.UserContext(), userID(c), color); err != nil {
		return h.fail(c, "COLOR_PATCH", err)
	}
	return c.JSON(color)
}

// HandleDelete deletes a color that no product uses anymore.
func (h *ColorHandler) HandleDelete(c *fiber.Ctx) error {
	count, err := h.service.DeleteColor(c.UserContext(), userID(c), c.Params("storeId"), c.Params("colorId"))
	if err != nil {
		return h.fail(c, "COLOR_DELETE", err)
	}
	return c.JSON(fiber.Map{"count": count})
}
