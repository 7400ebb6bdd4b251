package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	"storefront-core/internal/features/contact/domain"
	"storefront-core/internal/features/contact/service"
	ordersdomain "storefront-core/internal/features/orders/domain"
)

// ContactHandler handles HTTP requests for the contact form.
type ContactHandler struct {
	contact *service.ContactService
}

// NewContactHandler creates a new instance of ContactHandler.
func NewContactHandler(contact *service.ContactService) *ContactHandler {
	return &ContactHandler{contact: contact}
}

// Send handles the request to send a contact message.
// @Summary Send contact message
// @Accept json
// @Produce json
// @Param request body domain.Message true "Contact form"
// @Success 200 {object} service.SendResult
// @Failure 422 {object} ValidationErrorResponse
// @Router /contact [post]
func (h *ContactHandler) Send(c *fiber.Ctx) error {
	rayID := rayID(c)

	var msg domain.Message
	if err := c.BodyParser(&msg); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	result, err := h.contact.Send(c.Context(), msg)
	if err != nil {
		var verrs ordersdomain.ValidationErrors
		if errors.As(err, &verrs) {
			return c.Status(http.StatusUnprocessableEntity).JSON(ValidationErrorResponse{
				Message: "Please correct the highlighted fields",
				Fields:  verrs,
				RayID:   rayID,
			})
		}
		logger.Get().Error("Failed to send contact message",
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
