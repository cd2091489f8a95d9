package handlers

import (
	"errors"
	"fmt"
	"log"
	"reflect"

	"tokoadmin/internal/middleware"
	"tokoadmin/internal/repositories"
	"tokoadmin/internal/services"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
)

// Options tunes the HTTP contract shared by all resource handlers.
type Options struct {
	// Strict answers a non-owner with 403 instead of 400, accepts a zero price
	// and rejects negative prices. The default keeps the storefront-compatible behavior.
	Strict bool
}

var fieldMessages = map[string]string{
	"Label.required":       "Label is required",
	"ImageURL.required":    "Image URL is required",
	"Name.required":        "Name is required",
	"BillboardID.required": "Billboard ID is required",
	"Value.required":       "Value is required",
	"Value.min":            "Value must be a valid hex code",
	"Value.max":            "Value must be a valid hex code",
	"Value.startswith":     "Value must be a valid hex code",
	"Images.required":      "Images are required",
	"Images.min":           "Images are required",
	"URL.required":         "Image URL is required",
	"Price.required":       "Price is required",
	"Price.price":          "Price must not be negative",
	"CategoryID.required":  "Category ID is required",
	"ColorID.required":     "Color ID is required",
	"SizeID.required":      "Size ID is required",
}

// resource carries what every store-scoped handler shares: the payload validator,
// the entity name used in messages and the error contract.
type resource struct {
	entity   string
	validate *validator.Validate
	opts     Options
}

func newResource(entity string, opts Options) resource {
	return resource{
		entity:   entity,
		validate: newValidator(opts),
		opts:     opts,
	}
}

func newValidator(opts Options) *validator.Validate {
	v := validator.New()
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// A missing price is caught by "required"; "price" judges the amount itself.
	_ = v.RegisterValidation("price", func(fl validator.FieldLevel) bool {
		if fl.Field().Kind() != reflect.Float64 {
			return false
		}
		amount := fl.Field().Float()
		if opts.Strict {
			return amount >= 0
		}
		return amount != 0
	})
	return v
}

// bind parses the JSON body into req and validates it. On failure it returns the
// message of the first offending field in declaration order.
func (r resource) bind(c *fiber.Ctx, req interface{}) (string, bool) {
	if err := c.BodyParser(req); err != nil {
		log.Printf("Error parsing %s request body: %v", r.entity, err)
		return "Invalid request body", false
	}
	if err := r.validate.Struct(req); err != nil {
		var validationErrors validator.ValidationErrors
		if !errors.As(err, &validationErrors) || len(validationErrors) == 0 {
			return "Invalid request body", false
		}
		return r.message(validationErrors[0]), false
	}
	return "", true
}

func (r resource) message(fe validator.FieldError) string {
	if fe.Field() == "Price" && fe.Tag() == "price" && !r.opts.Strict {
		return "Price is required"
	}
	if msg, ok := fieldMessages[fe.Field()+"."+fe.Tag()]; ok {
		return msg
	}
	return fmt.Sprintf("%s is invalid", fe.Field())
}

func (r resource) badRequest(c *fiber.Ctx, message string) error {
	return c.Status(fiber.StatusBadRequest).SendString(message)
}

// fail translates a service error into the plain-text error contract.
// Anything unexpected is logged under tag and answered with a generic 500.
func (r resource) fail(c *fiber.Ctx, tag string, err error) error {
	switch {
	case errors.Is(err, services.ErrUnauthenticated):
		return c.Status(fiber.StatusUnauthorized).SendString("Unauthenticated")
	case errors.Is(err, services.ErrUnauthorized):
		status := fiber.StatusBadRequest
		if r.opts.Strict {
			status = fiber.StatusForbidden
		}
		return c.Status(status).SendString("Unauthorized")
	case errors.Is(err, repositories.ErrNotFound):
		return c.Status(fiber.StatusNotFound).SendString(r.entity + " not found")
	default:
		log.Printf("[%s] %v", tag, err)
		return c.Status(fiber.StatusInternalServerError).SendString("Internal Error")
	}
}

func userID(c *fiber.Ctx) string {
	return middleware.UserID(c)
}
