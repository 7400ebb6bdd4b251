package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	catalogservice "storefront-core/internal/features/catalog/service"
	"storefront-core/internal/features/wishlist/service"
)

// WishlistHandler handles HTTP requests for the wishlist.
type WishlistHandler struct {
	wishlist *service.WishlistService
	catalog  *catalogservice.CatalogService
}

// NewWishlistHandler creates a new instance of WishlistHandler.
func NewWishlistHandler(w *service.WishlistService, catalog *catalogservice.CatalogService) *WishlistHandler {
	return &WishlistHandler{wishlist: w, catalog: catalog}
}

// toggleResponse reports the wishlist after a toggle plus what happened.
type toggleResponse struct {
	Result string      `json:"result"`
	Items  interface{} `json:"items"`
}

// GetWishlist handles the request to read the wishlist.
// @Summary Get wishlist
// @Produce json
// @Success 200 {object} domain.Wishlist
// @Router /wishlist [get]
func (h *WishlistHandler) GetWishlist(c *fiber.Ctx) error {
	rayID := rayID(c)

	w, err := h.wishlist.Items(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load wishlist",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}
	return c.Status(http.StatusOK).JSON(w)
}

// Toggle handles the request to flip a product's wishlist membership.
// @Summary Toggle wishlist membership
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} toggleResponse
// @Router /wishlist/toggle/{id} [post]
func (h *WishlistHandler) Toggle(c *fiber.Ctx) error {
	rayID := rayID(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Product ID must be numeric",
			RayID:   rayID,
		})
	}

	product, err := h.catalog.Find(id)
	if err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			// Toggling an unknown product is a silent no-op.
			w, loadErr := h.wishlist.Items(c.Context())
			if loadErr == nil {
				return c.Status(http.StatusOK).JSON(toggleResponse{Result: "ignored", Items: w.Items})
			}
			err = loadErr
		}
		logger.Get().Error("Failed to toggle wishlist item",
			zap.Int("product_id", id),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	w, result, err := h.wishlist.Toggle(c.Context(), *product)
	if err != nil {
		logger.Get().Error("Failed to toggle wishlist item",
			zap.Int("product_id", id),
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(toggleResponse{Result: string(result), Items: w.Items})
}

func rayID(c *fiber.Ctx) string {
	if id, ok := c.Locals("requestid").(string); ok {
		return id
	}
	return "unknown"
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
