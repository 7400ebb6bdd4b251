package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/features/catalog/service"
)

// CatalogHandler handles HTTP requests for product browsing.
type CatalogHandler struct {
	service *service.CatalogService
}

// NewCatalogHandler creates a new instance of CatalogHandler.
func NewCatalogHandler(s *service.CatalogService) *CatalogHandler {
	return &CatalogHandler{service: s}
}

// ListProducts handles the request to browse the catalog.
// @Summary List products
// @Description Browse the catalog with optional category/subcategory filter, search query, max price and sort order.
// @Produce json
// @Param category query string false "Category filter"
// @Param subcategory query string false "Subcategory filter"
// @Param q query string false "Search query"
// @Param max_price query number false "Maximum base price"
// @Param sort query string false "Sort order: recommended, price-low, price-high, rating"
// @Success 200 {array} domain.Product
// @Router /products [get]
func (h *CatalogHandler) ListProducts(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	f := service.Filter{
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Query:       c.Query("q"),
		Sort:        c.Query("sort"),
	}
	if raw := c.Query("max_price"); raw != "" {
		maxPrice, err := decimal.NewFromString(raw)
		if err != nil {
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Invalid max_price",
				RayID:   rayID,
			})
		}
		f.MaxPrice = maxPrice
	}

	products, err := h.service.List(f)
	if err != nil {
		logger.Get().Error("Failed to list products",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(products)
}

// GetProduct handles the request to fetch a single product.
// @Summary Get product by ID
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Product
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (h *CatalogHandler) GetProduct(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Product ID must be numeric",
			RayID:   rayID,
		})
	}

	product, err := h.service.Find(id)
	if err != nil {
		if errors.Is(err, service.ErrProductNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Product not found",
				RayID:   rayID,
			})
		}
		logger.Get().Error("Failed to fetch product",
			zap.Int("product_id", id),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(product)
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
