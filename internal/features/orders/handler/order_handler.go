package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	couponservice "storefront-core/internal/features/coupons/service"
	"storefront-core/internal/features/orders/domain"
	"storefront-core/internal/features/orders/service"
)

// OrderHandler handles HTTP requests for order placement and history.
type OrderHandler struct {
	orders *service.OrderService
}

// NewOrderHandler creates a new instance of OrderHandler.
func NewOrderHandler(orders *service.OrderService) *OrderHandler {
	return &OrderHandler{orders: orders}
}

// PlaceOrder handles the request to place an order from the current cart.
// @Summary Place order
// @Description Validates the customer details, assembles the order, persists it, and hands it off to the merchant.
// @Accept json
// @Produce json
// @Param request body service.PlaceOrderInput true "Checkout form"
// @Success 201 {object} service.PlaceOrderResult
// @Failure 400 {object} ErrorResponse
// @Failure 422 {object} ValidationErrorResponse
// @Router /orders [post]
func (h *OrderHandler) PlaceOrder(c *fiber.Ctx) error {
	rayID := rayID(c)

	var input service.PlaceOrderInput
	if err := c.BodyParser(&input); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	result, err := h.orders.PlaceOrder(c.Context(), input)
	if err != nil {
		var verrs domain.ValidationErrors
		switch {
		case errors.As(err, &verrs):
			return c.Status(http.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
				Message: "Please correct the highlighted fields",
				Fields:  verrs,
				RayID:   rayID,
			})
		case errors.Is(err, service.ErrEmptyCart):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Your cart is empty",
				RayID:   rayID,
			})
		case errors.Is(err, service.ErrPaymentNotConfirmed):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Please complete the payment and check the confirmation box.",
				RayID:   rayID,
			})
		case errors.Is(err, couponservice.ErrInvalidCoupon), errors.Is(err, couponservice.ErrEmptyCode):
			return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
				Message: "Invalid coupon code",
				RayID:   rayID,
			})
		default:
			logger.Get().Error("Failed to place order",
				zap.String("ray_id", rayID),
				zap.Error(err),
			)
			return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
				Message: "Internal Server Error",
				RayID:   rayID,
			})
		}
	}

	return c.Status(http.StatusCreated).JSON(result)
}

// ListOrders handles the request to read the order history.
// @Summary List orders
// @Produce json
// @Success 200 {array} domain.Order
// @Router /orders [get]
func (h *OrderHandler) ListOrders(c *fiber.Ctx) error {
	rayID := rayID(c)

	orders, err := h.orders.History(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load order history",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}
	return c.Status(http.StatusOK).JSON(orders)
}

// GetOrder handles the request to read a single order from the history.
// @Summary Get order
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} domain.Order
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (h *OrderHandler) GetOrder(c *fiber.Ctx) error {
	rayID := rayID(c)

	order, err := h.orders.FindByID(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, service.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID,
			})
		}
		logger.Get().Error("Failed to load order",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}
	return c.Status(http.StatusOK).JSON(order)
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

// ValidationErrorResponse carries per-field validation failures.
type ValidationErrorResponse struct {
	Message string                  `json:"message"`
	Fields  domain.ValidationErrors `json:"fields"`
	RayID   string                  `json:"ray_id"`
}
