package handlers

import (
	"errors"
	"fmt"
	"log"
	"net/url"
	"strings"

	"productsvc/internal/dto"
	"productsvc/internal/repositories"
	"productsvc/internal/services"
	"productsvc/internal/validators"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// ProductHandler handles HTTP requests for products.
type ProductHandler struct {
	service   *services.ProductService
	validator *validators.ProductValidator
}

// NewProductHandler creates a new ProductHandler.
func NewProductHandler(service *services.ProductService, validator *validators.ProductValidator) *ProductHandler {
	return &ProductHandler{
		service:   service,
		validator: validator,
	}
}

// RegisterRoutes registers the product routes with the Fiber app.
func (h *ProductHandler) RegisterRoutes(router fiber.Router) {
	productRoutes := router.Group("/products")
	productRoutes.Get("/", h.HandleGetProducts)
	productRoutes.Get("/search/:text", h.HandleSearchProducts)
	productRoutes.Get("/:id", h.HandleGetProductByID)
	productRoutes.Post("/", h.HandleCreateProduct)
	productRoutes.Put("/", h.HandleUpdateProduct)
	productRoutes.Delete("/:id", h.HandleDeleteProduct)
}

// HandleGetProducts retrieves all products.
func (h *ProductHandler) HandleGetProducts(c *fiber.Ctx) error {
	products, err := h.service.GetProducts(c.UserContext())
	if err != nil {
		log.Printf("Error getting all products: %v", err)
		return WriteProblem(c, fiber.StatusInternalServerError, "Could not retrieve products.")
	}
	return c.JSON(products)
}

// HandleGetProductByID retrieves a single product by its ID.
func (h *ProductHandler) HandleGetProductByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return WriteProblem(c, fiber.StatusBadRequest, "Product ID must be a valid UUID.")
	}

	product, err := h.service.GetProductByCondition(c.UserContext(), repositories.ByID(id.String()))
	if err != nil {
		if services.KindOf(err) == services.KindNotFound {
			return WriteProblem(c, fiber.StatusNotFound, fmt.Sprintf("Product with ID %s not found.", id))
		}
		log.Printf("Error getting product by ID %s: %v", id, err)
		return WriteProblem(c, fiber.StatusInternalServerError, "Could not retrieve product.")
	}
	return c.JSON(product)
}

// HandleSearchProducts returns products whose name or category contains the
// search text, ignoring case. A product matching both appears once.
func (h *ProductHandler) HandleSearchProducts(c *fiber.Ctx) error {
	text, err := url.PathUnescape(c.Params("text"))
	if err != nil {
		return WriteProblem(c, fiber.StatusBadRequest, "Invalid search text.")
	}

	byName, err := h.service.GetProductsByCondition(c.UserContext(), repositories.NameContains(text))
	if err != nil {
		log.Printf("Error searching products by name %q: %v", text, err)
		return WriteProblem(c, fiber.StatusInternalServerError, "Could not search products.")
	}
	byCategory, err := h.service.GetProductsByCondition(c.UserContext(), repositories.CategoryContains(text))
	if err != nil {
		log.Printf("Error searching products by category %q: %v", text, err)
		return WriteProblem(c, fiber.StatusInternalServerError, "Could not search products.")
	}

	return c.JSON(union(byName, byCategory))
}

// HandleCreateProduct creates a new product.
func (h *ProductHandler) HandleCreateProduct(c *fiber.Ctx) error {
	var req *dto.ProductAddRequest
	if len(c.Body()) == 0 {
		return WriteProblem(c, fiber.StatusBadRequest, "Product data is required.")
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body: %v", err)
		return WriteProblem(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if req == nil {
		return WriteProblem(c, fiber.StatusBadRequest, "Product data is required.")
	}

	if res := h.validator.ValidateAdd(req); !res.Valid {
		return WriteValidationProblem(c, res.ByField())
	}

	created, err := h.service.AddProduct(c.UserContext(), req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		return writeServiceError(c, err, "Failed to add product.")
	}

	c.Location(strings.TrimSuffix(c.Path(), "/") + "/" + created.ProductID)
	return c.Status(fiber.StatusCreated).JSON(created)
}

// HandleUpdateProduct updates the product named by the body's productId.
func (h *ProductHandler) HandleUpdateProduct(c *fiber.Ctx) error {
	var req *dto.ProductUpdateRequest
	if len(c.Body()) == 0 {
		return WriteProblem(c, fiber.StatusBadRequest, "Product data is required.")
	}
	if err := c.BodyParser(&req); err != nil {
		log.Printf("Error parsing request body for update: %v", err)
		return WriteProblem(c, fiber.StatusBadRequest, "Invalid request body.")
	}
	if req == nil {
		return WriteProblem(c, fiber.StatusBadRequest, "Product data is required.")
	}
	if id, err := uuid.Parse(req.ProductID); err == nil {
		req.ProductID = id.String()
	}

	if res := h.validator.ValidateUpdate(req); !res.Valid {
		return WriteValidationProblem(c, res.ByField())
	}

	updated, err := h.service.UpdateProduct(c.UserContext(), req)
	if err != nil {
		log.Printf("Error updating product %s: %v", req.ProductID, err)
		return writeServiceError(c, err, "Failed to update product.")
	}
	return c.JSON(updated)
}

// HandleDeleteProduct deletes a product by its ID and answers true on success.
func (h *ProductHandler) HandleDeleteProduct(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return WriteProblem(c, fiber.StatusBadRequest, "Product ID must be a valid UUID.")
	}

	deleted, err := h.service.DeleteProduct(c.UserContext(), id.String())
	if err != nil {
		log.Printf("Error deleting product %s: %v", id, err)
		switch services.KindOf(err) {
		case services.KindNotFound:
			return WriteProblem(c, fiber.StatusNotFound, fmt.Sprintf("Product with ID %s not found.", id))
		case services.KindArgumentInvalid:
			return WriteProblem(c, fiber.StatusBadRequest, "Failed to delete product.")
		default:
			return WriteProblem(c, fiber.StatusInternalServerError, "Failed to delete product.")
		}
	}
	if !deleted {
		return WriteProblem(c, fiber.StatusInternalServerError, "Failed to delete product.")
	}
	return c.JSON(true)
}

// writeServiceError answers a failed add or update. Validation failures keep
// their field map; every other failure is a 400 carrying the service message.
func writeServiceError(c *fiber.Ctx, err error, fallback string) error {
	var se *services.Error
	if !errors.As(err, &se) {
		return WriteProblem(c, fiber.StatusBadRequest, fallback)
	}
	if se.Kind == services.KindValidationFailed {
		return WriteValidationProblem(c, se.Fields)
	}
	return WriteProblem(c, fiber.StatusBadRequest, se.Message)
}

func union(lists ...[]dto.ProductResponse) []dto.ProductResponse {
	seen := make(map[string]struct{})
	out := make([]dto.ProductResponse, 0)
	for _, list := range lists {
		for _, p := range list {
			if _, dup := seen[p.ProductID]; dup {
				continue
			}
			seen[p.ProductID] = struct{}{}
			out = append(out, p)
		}
	}
	return out
}
