package handler

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
	cartservice "storefront-core/internal/features/cart/service"
	"storefront-core/internal/features/coupons/service"
)

// CouponHandler handles HTTP requests for coupon application. It prices the
// current cart so the discount always reflects the live subtotal.
type CouponHandler struct {
	coupons *service.CouponService
	carts   *cartservice.CartService
}

// NewCouponHandler creates a new instance of CouponHandler.
func NewCouponHandler(coupons *service.CouponService, carts *cartservice.CartService) *CouponHandler {
	return &CouponHandler{coupons: coupons, carts: carts}
}

// applyRequest is the body of POST /coupons/apply.
type applyRequest struct {
	Code string `json:"code"`
}

// Apply handles the request to resolve a coupon against the current cart.
// @Summary Apply coupon
// @Description Resolves the code case-insensitively and computes the discount for the current cart subtotal.
// @Accept json
// @Produce json
// @Param request body applyRequest true "Coupon code"
// @Success 200 {object} service.Applied
// @Failure 400 {object} ErrorResponse
// @Router /coupons/apply [post]
func (h *CouponHandler) Apply(c *fiber.Ctx) error {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		rayID = "unknown"
	}

	var req applyRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: "Invalid request body",
			RayID:   rayID,
		})
	}

	cart, err := h.carts.Items(c.Context())
	if err != nil {
		logger.Get().Error("Failed to load cart for coupon",
			zap.String("ray_id", rayID),
			zap.Error(err),
		)
		return c.Status(http.StatusInternalServerError).JSON(ErrorResponse{
			Message: "Internal Server Error",
			RayID:   rayID,
		})
	}

	applied, err := h.coupons.Apply(req.Code, cart.Subtotal())
	if err != nil {
		msg := "Invalid coupon code"
		if errors.Is(err, service.ErrEmptyCode) {
			msg = "Please enter a coupon code"
		}
		return c.Status(http.StatusBadRequest).JSON(ErrorResponse{
			Message: msg,
			RayID:   rayID,
		})
	}

	return c.Status(http.StatusOK).JSON(applied)
}

// ErrorResponse represents the structure of an error response.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for debugging.
	RayID string `json:"ray_id"`
}
