package handler

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/features/cart/domain"
	cartservice "storefront-core/internal/features/cart/service"
	catalogservice "storefront-core/internal/features/catalog/service"
)

// CartHandler handles HTTP requests for one cart namespace. The storefront
// and legacy carts each get their own handler instance.
type CartHandler struct {
	carts   *cartservice.CartService
	catalog *catalogservice.CatalogService
}

// NewCartHandler creates a new instance of CartHandler.
func NewCartHandler(carts *cartservice.CartService, catalog *catalogservice.CatalogService) *CartHandler {
	return &CartHandler{carts: carts, catalog: catalog}
}

// addItemRequest is the body of POST /cart/items.
type addItemRequest struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// setQuantityRequest is the body of PUT /cart/items/:id.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GetCart handles the request to read the current cart.
// @Summary Get cart
// @Produce json
// @Success 200 {object} domain.Cart
// @Router /cart [get]
func (h *CartHandler) GetCart(c *fiber.Ctx) error {
	rayID := rayID(c)

	cart, err := h.carts.Items(c.Context())
	if err != nil {
		return h.storeError(c, rayID, "Failed to load cart", err)
	}
	return c.Status(http.StatusOK).JSON(cart)
}

// AddItem handles the request to add a product to the cart. An unknown
// product id leaves the cart unchanged; the current cart is returned either
// way so the caller can re-render.
// @Summary Add product to cart
// @Accept json
// @Produce json
// @Param request body addItemRequest true "Product and quantity"
// @Success 200 {object} domain.Cart
// @Router /cart/items [post]
func (h *CartHandler) AddItem(c *fiber.Ctx) error {
	rayID := rayID(c)

	var req addItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	product, err := h.catalog.Find(req.ProductID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrProductNotFound) {
			// Unknown products degrade to a no-op, mirroring the
			// silent-failure policy of cart mutations.
			cart, loadErr := h.carts.Items(c.Context())
			if loadErr != nil {
				return h.storeError(c, rayID, "Failed to load cart", loadErr)
			}
			return c.Status(http.StatusOK).JSON(cart)
		}
		return h.storeError(c, rayID, "Failed to resolve product", err)
	}

	cart, err := h.carts.AddItem(c.Context(), *product, req.Quantity)
	if err != nil {
		return h.storeError(c, rayID, "Failed to add cart item", err)
	}
	return c.Status(http.StatusOK).JSON(cart)
}

// SetQuantity handles the request to set a line item's quantity absolutely.
// Quantity <= 0 removes the item.
// @Summary Set cart item quantity
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param request body setQuantityRequest true "New quantity"
// @Success 200 {object} domain.Cart
// @Router /cart/items/{id} [put]
func (h *CartHandler) SetQuantity(c *fiber.Ctx) error {
	rayID := rayID(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Product ID must be numeric",
			RayID:   rayID,
		})
	}

	var req setQuantityRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	cart, err := h.carts.SetQuantity(c.Context(), id, req.Quantity)
	if err != nil {
		return h.storeError(c, rayID, "Failed to update cart item", err)
	}
	return c.Status(http.StatusOK).JSON(cart)
}

// RemoveItem handles the request to remove a line item.
// @Summary Remove cart item
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} domain.Cart
// @Router /cart/items/{id} [delete]
func (h *CartHandler) RemoveItem(c *fiber.Ctx) error {
	rayID := rayID(c)

	id, err := strconv.Atoi(c.Params("id"))
	if err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Product ID must be numeric",
			RayID:   rayID,
		})
	}

	cart, err := h.carts.RemoveItem(c.Context(), id)
	if err != nil {
		return h.storeError(c, rayID, "Failed to remove cart item", err)
	}
	return c.Status(http.StatusOK).JSON(cart)
}

// GetTotals handles the request to price the cart.
// @Summary Get cart totals
// @Produce json
// @Param strategy query string false "Pricing strategy: checkout (default) or flat_gst"
// @Success 200 {object} domain.Totals
// @Router /cart/totals [get]
func (h *CartHandler) GetTotals(c *fiber.Ctx) error {
	rayID := rayID(c)

	strategy := domain.PricingStrategy(c.Query("strategy", string(domain.PricingCheckout)))

	totals, err := h.carts.Totals(c.Context(), strategy, decimal.Zero)
	if err != nil {
		return h.storeError(c, rayID, "Failed to compute totals", err)
	}
	return c.Status(http.StatusOK).JSON(totals)
}

func (h *CartHandler) storeError(c *fiber.Ctx, rayID, msg string, err error) error {
	logger.Get().Error(msg,
		zap.String("namespace", string(h.carts.Namespace())),
		zap.String("ray_id", rayID),
		zap.Error(err),
	)
	return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
		Message: "Internal Server Error",
		RayID:   rayID,
	})
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
