package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

type billboardRequest struct {
	Label    string `json:"label" validate:"required"`
	ImageURL string `json:"imageUrl" validate:"required"`
}

// BillboardHandler handles HTTP requests for billboards.
type BillboardHandler struct {
	resource
	service *services.BillboardService
}

// NewBillboardHandler creates a new BillboardHandler.
func NewBillboardHandler(service *services.BillboardService, opts Options) *BillboardHandler {
	return &BillboardHandler{
		resource: newResource("Billboard", opts),
		service:  service,
	}
}

// RegisterRoutes registers the billboard routes. Reads are public, mutations go through auth.
func (h *BillboardHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	billboardRoutes := router.Group("/:storeId/billboards")
	billboardRoutes.Get("/", h.HandleList)
	billboardRoutes.Get("/:billboardId", h.HandleGet)
	billboardRoutes.Post("/", auth, h.HandleCreate)
	billboardRoutes.Patch("/:billboardId", auth, h.HandleUpdate)
	billboardRoutes.Delete("/:billboardId", auth, h.HandleDelete)
}

// HandleList returns all billboards of a store.
func (h *BillboardHandler) HandleList(c *fiber.Ctx) error {
	billboards, err := h.service.ListBillboards(c.UserContext(), c.Params("storeId"))
	if err != nil {
		return h.fail(c, "BILLBOARDS_GET", err)
	}
	return c.JSON(billboards)
}

// HandleGet returns the billboards matching the id as an array.
func (h *BillboardHandler) HandleGet(c *fiber.Ctx) error {
	billboards, err := h.service.GetBillboard(c.UserContext(), c.Params("billboardId"))
	if err != nil {
		return h.fail(c, "BILLBOARD_GET", err)
	}
	return c.JSON(billboards)
}

// HandleCreate creates a billboard in an owned store.
func (h *BillboardHandler) HandleCreate(c *fiber.Ctx) error {
	var req billboardRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	billboard := &models.Billboard{
		StoreID:  c.Params("storeId"),
		Label:    req.Label,
		ImageURL: req.ImageURL,
	}
	if err := h.service.CreateBillboard(c.UserContext(), userID(c), billboard); err != nil {
		return h.fail(c, "BILLBOARDS_POST", err)
	}
	return c.JSON(billboard)
}

// HandleUpdate rewrites the label and image of a billboard.
func (h *BillboardHandler) HandleUpdate(c *fiber.Ctx) error {
	var req billboardRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	billboard := &models.Billboard{
		ID:       c.Params("billboardId"),
		StoreID:  c.Params("storeId"),
		Label:    req.Label,
		ImageURL: req.ImageURL,
	}
	if err := h.service.UpdateBillboard(c.UserContext(), userID(c), billboard); err != nil {
		return h.fail(c, "BILLBOARD_PATCH", err)
	}
	return c.JSON(billboard)
}

// HandleDelete deletes a billboard. Billboards still used by a category cannot be deleted.
func (h *BillboardHandler) HandleDelete(c *fiber.Ctx) error {
	count, err := h.service.DeleteBillboard(c.UserContext(), userID(c), c.Params("storeId"), c.Params("billboardId"))
	if err != nil {
		return h.fail(c, "BILLBOARD_DELETE", err)
	}
	return c.JSON(fiber.Map{"count": count})
}
