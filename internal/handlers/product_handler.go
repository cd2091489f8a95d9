package handlers

import (
	"tokoadmin/internal/models"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/services"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

type imageRequest struct {
	URL string `json:"url" validate:"required"`
}

// productRequest lists its fields in the order they are validated.
type productRequest struct {
	Images     []imageRequest   `json:"images" validate:"required,min=1,dive"`
	Name       string           `json:"name" validate:"required"`
	Price      *decimal.Decimal `json:"price" validate:"required,price"`
	CategoryID string           `json:"categoryId" validate:"required"`
	ColorID    string           `json:"colorId" validate:"required"`
	SizeID     string           `json:"sizeId" validate:"required"`
	IsFeatured *bool            `json:"isFeatured"`
	// Older storefront builds send the misspelled key.
	IsFeauturedLegacy *bool `json:"isFeautured"`
	IsArchived        bool  `json:"isArchived"`
}

func (r productRequest) featured() bool {
	if r.IsFeatured != nil {
		return *r.IsFeatured
	}
	if r.IsFeauturedLegacy != nil {
		return *r.IsFeauturedLegacy
	}
	return false
}

func (r productRequest) toProduct(storeID string) *models.Product {
	images := make([]models.Image, 0, len(r.Images))
	for _, image := range r.Images {
		images = append(images, models.Image{URL: image.URL})
	}
	return &models.Product{
		StoreID:    storeID,
		CategoryID: r.CategoryID,
		ColorID:    r.ColorID,
		SizeID:     r.SizeID,
		Name:       r.Name,
		Price:      *r.Price,
		IsFeatured: r.featured(),
		IsArchived: r.IsArchived,
		Images:     images,
	}
}

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	resource
	service *services.ProductService
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, opts Options) *ProductHandler {
	return &ProductHandler{
		resource: newResource("Product", opts),
		service:  service,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router, auth fiber.Handler) {
	productRoutes := router.Group("/:storeId/products")
	productRoutes.Get("/", h.HandleList)
	productRoutes.Get("/:productId", h.HandleGet)
	productRoutes.Post("/", auth, h.HandleCreate)
	productRoutes.Patch("/:productId", auth, h.HandleUpdate)
	productRoutes.Delete("/:productId", auth, h.HandleDelete)
}

// HandleList returns the store's unarchived products, newest first.
// categoryId, colorId and sizeId narrow the result; any value of isFeatured
// (or the legacy isFeautured) restricts it to featured products.
func (h *ProductHandler) HandleList(c *fiber.Ctx) error {
	filter := repositories.ProductFilter{
		CategoryID:   c.Query("categoryId"),
		ColorID:      c.Query("colorId"),
		SizeID:       c.Query("sizeId"),
		FeaturedOnly: c.Query("isFeatured") != "" || c.Query("isFeautured") != "",
	}

	products, err := h.service.ListProducts(c.UserContext(), c.Params("storeId"), filter)
	if err != nil {
		return h.fail(c, "PRODUCTS_GET", err)
	}
	return c.JSON(products)
}

// HandleGet returns the products matching the id, with images, category, color and size.
func (h *ProductHandler) HandleGet(c *fiber.Ctx) error {
	products, err := h.service.GetProduct(c.UserContext(), c.Params("productId"))
	if err != nil {
		return h.fail(c, "PRODUCT_GET", err)
	}
	return c.JSON(products)
}

// HandleCreate creates a product and its images.
func (h *ProductHandler) HandleCreate(c *fiber.Ctx) error {
	var req productRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	product := req.toProduct(c.Params("storeId"))
	if err := h.service.CreateProduct(c.UserContext(), userID(c), product); err != nil {
		return h.fail(c, "PRODUCTS_POST", err)
	}
	return c.JSON(product)
}

// HandleUpdate rewrites a product. The submitted images replace the stored ones.
func (h *ProductHandler) HandleUpdate(c *fiber.Ctx) error {
	var req productRequest
	if msg, ok := h.bind(c, &req); !ok {
		return h.badRequest(c, msg)
	}

	product := req.toProduct(c.Params("storeId"))
	product.ID = c.Params("productId")
	if err := h.service.UpdateProduct(c.UserContext(), userID(c), product); err != nil {
		return h.fail(c, "PRODUCT_PATCH", err)
	}
	return c.JSON(product)
}

// HandleDelete deletes a product together with its images.
func (h *ProductHandler) HandleDelete(c *fiber.Ctx) error {
	count, err := h.service.DeleteProduct(c.UserContext(), userID(c), c.Params("storeId"), c.Params("productId"))
	if err != nil {
		return h.fail(c, "PRODUCT_DELETE", err)
	}
	return c.JSON(fiber.Map{"count": count})
}
