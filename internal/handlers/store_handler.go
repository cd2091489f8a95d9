package handlers

import (
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
)

type storeRequest struct {
	Name string `json:"name" validate:"required"`
}

// StoreHandler handles HTTP requests for the stores a user owns.
type StoreHandler struct {
	resource
	service *services.StoreService
}

// NewStoreHandler creates a new StoreHandler.
func NewStoreHandler(service *services.StoreService, opts Options) *StoreHandler {
	return &StoreHandler{
		resource: newResource("Store", opts),
		service:  service,
	}
}

// RegisterRoutes registers the store routes. Every store route requires an identity.
func (h *StoreHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	storeRoutes := router.Group("/stores", auth)
	storeRoutes.Post("/", h.HandleCreate)
	storeRoutes.Get("/", h.HandleList)
	storeRoutes.Get("/:storeId", h.HandleGet)
	storeRoutes.Patch("/:storeId", h.HandleRename)
	storeRoutes.Delete("/:storeId", h.HandleDelete)
}

// HandleCreate creates a store owned by the caller.
func (h *StoreHandler) HandleCreate(c *fiber.Ctx) error {
	var req storeRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	store, err := h.service.CreateStore(c.UserContext(), userID(c), req.Name)
	if err != nil {
		return h.fail(c, "STORES_POST", err)
	}
	return c.JSON(store)
}

// HandleList returns the caller's stores. An empty array means onboarding is not done yet.
func (h *StoreHandler) HandleList(c *fiber.Ctx) error {
	stores, err := h.service.ListUserStores(c.UserContext(), userID(c))
	if err != nil {
		return h.fail(c, "STORES_GET", err)
	}
	return c.JSON(stores)
}

// HandleGet returns one store to its owner.
func (h *StoreHandler) HandleGet(c *fiber.Ctx) error {
	store, err := h.service.GetStore(c.UserContext(), userID(c), c.Params("storeId"))
	if err != nil {
		return h.fail(c, "STORE_GET", err)
	}
	return c.JSON(store)
}

// HandleRename changes the store's name.
func (h *StoreHandler) HandleRename(c *fiber.Ctx) error {
	var req storeRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	store, err := h.service.RenameStore(c.UserContext(), userID(c), c.Params("storeId"), req.Name)
	if err != nil {
		return h.fail(c, "STORE_PATCH", err)
	}
	return c.JSON(store)
}

// HandleDelete deletes a store and everything in it.
func (h *StoreHandler) HandleDelete(c *fiber.Ctx) error {
	count, err := h.service.DeleteStore(c.UserContext(), userID(c), c.Params("storeId"))
	if err != nil {
		return h.fail(c, "STORE_DELETE", err)
	}
	return c.JSON(fiber.Map{"count": count})
}
