package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	ordersdomain "storefront-core/internal/features/orders/domain"
	orderservice "storefront-core/internal/features/orders/service"
	"storefront-core/internal/features/returns/domain"
	"storefront-core/internal/features/returns/service"
)

// ReturnHandler handles HTTP requests for the return request flow.
type ReturnHandler struct {
	returns *service.ReturnService
}

// NewReturnHandler creates a new instance of ReturnHandler.
func NewReturnHandler(returns *service.ReturnService) *ReturnHandler {
	return &ReturnHandler{returns: returns}
}

// Submit handles the request to submit a return request.
// @Summary Submit return request
// @Accept json
// @Produce json
// @Param request body domain.ReturnRequest true "Return form"
// @Success 200 {object} service.SubmitResult
// @Failure 422 {object} ValidationErrorResponse
// @Router /returns [post]
func (h *ReturnHandler) Submit(c *fiber.Ctx) error {
	rayID := rayID(c)

	var req domain.ReturnRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	result, err := h.returns.Submit(c.Context(), req)
	if err != nil {
		var verrs ordersdomain.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(http.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
				Message: "Please correct the highlighted fields",
				Fields:  verrs,
				RayID:   rayID,
			})
		}
		logger.Get().Error("Failed to submit return request",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(result)
}

// GetOrder handles the request to pre-fill the return form from a past order.
// @Summary Find order for return
// @Produce json
// @Param id path string true "Order ID"
// @Success 200 {object} ordersdomain.Order
// @Failure 404 {object} ErrorResponse
// @Router /returns/orders/{id} [get]
func (h *ReturnHandler) GetOrder(c *fiber.Ctx) error {
	rayID := rayID(c)

	order, err := h.returns.FindOrder(c.Context(), c.Params("id"))
	if err != nil {
		if errors.Is(err, orderservice.ErrOrderNotFound) {
			return c.Status(http.StatusNotFound).JSON(ErrorResponse{
				Message: "Order not found",
				RayID:   rayID,
			})
		}
		logger.Get().Error("Failed to load order for return",
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
	Message string                        `json:"message"`
	Fields  ordersdomain.ValidationErrors `json:"fields"`
	RayID   string                        `json:"ray_id"`
}
