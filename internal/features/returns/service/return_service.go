package service

import (
	"context"
	"time"

	"go.uber.org/zap"

	"storefront-core/internal/core/config"
	"storefront-core/internal/core/logger"
	handoffdomain "storefront-core/internal/features/handoff/domain"
	ordersdomain "storefront-core/internal/features/orders/domain"
	orderservice "storefront-core/internal/features/orders/service"
	"storefront-core/internal/features/returns/domain"
)

// Dispatcher routes return request text to the merchant.
type Dispatcher interface {
	Dispatch(text, subject string) handoffdomain.Result
}

// SubmitResult is the outcome of a submitted return request. Text is always
// present so a failed hand-off can fall back to manual copy.
type SubmitResult struct {
	Result handoffdomain.Result `json:"result"`
	Text   string               `json:"text"`
}

// ReturnService validates return requests and hands them off to the
// merchant. Unlike orders, return requests are not persisted; the hand-off
// channel is the system of record.
type ReturnService struct {
	orders   *orderservice.OrderService
	dispatch Dispatcher
	merchant config.MerchantConfig
	now      func() time.Time
}

// NewReturnService creates a new instance of ReturnService.
func NewReturnService(orders *orderservice.OrderService, dispatch Dispatcher, merchant config.MerchantConfig) *ReturnService {
	return &ReturnService{
		orders:   orders,
		dispatch: dispatch,
		merchant: merchant,
		now:      time.Now,
	}
}

// Submit validates the request and hands it off to the merchant.
func (s *ReturnService) Submit(_ context.Context, req domain.ReturnRequest) (*SubmitResult, error) {
	if errs := req.Validate(s.merchant.OrderPrefix); errs != nil {
		return nil, errs
	}

	text := req.Text(s.merchant.StoreName, s.now())
	result := s.dispatch.Dispatch(text, "Return Request")

	logger.Get().Info("Return request submitted",
		zap.String("order_id", req.OrderID),
		zap.String("option", string(req.Option)),
		zap.String("result", string(result)),
	)

	return &SubmitResult{Result: result, Text: text}, nil
}

// FindOrder looks an order up in the history so the return form can be
// pre-filled with the customer details.
func (s *ReturnService) FindOrder(ctx context.Context, orderID string) (*ordersdomain.Order, error) {
	return s.orders.FindByID(ctx, orderID)
}

// OrderChoices returns the order history for the order id picker.
func (s *ReturnService) OrderChoices(ctx context.Context) ([]ordersdomain.Order, error) {
	return s.orders.History(ctx)
}
