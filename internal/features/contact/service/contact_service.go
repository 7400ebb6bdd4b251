package service

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront-core/internal/core/config"
	"storefront-core/internal/core/logger"
	"storefront-core/internal/features/contact/domain"
	"storefront-core/internal/features/contact/ports"
	handoffdomain "storefront-core/internal/features/handoff/domain"
	handoffports "storefront-core/internal/features/handoff/ports"
	handoffservice "storefront-core/internal/features/handoff/service"
)

// SendResult is the outcome of a sent contact message.
type SendResult struct {
	Result handoffdomain.Result `json:"result"`
}

// ContactService sends contact messages to the merchant over email and keeps
// a backup copy. The backup is best effort; a store failure never blocks the
// hand-off.
type ContactService struct {
	repo     ports.MessageRepository
	opener   handoffports.LinkOpener
	merchant config.MerchantConfig
	now      func() time.Time
}

// NewContactService creates a new instance of ContactService.
func NewContactService(repo ports.MessageRepository, opener handoffports.LinkOpener, merchant config.MerchantConfig) *ContactService {
	return &ContactService{
		repo:     repo,
		opener:   opener,
		merchant: merchant,
		now:      time.Now,
	}
}

// Send validates the message, backs it up, and opens the email hand-off.
func (s *ContactService) Send(ctx context.Context, msg domain.Message) (*SendResult, error) {
	if errs := msg.Validate(); errs != nil {
		return nil, errs
	}
	msg.Timestamp = s.now()

	if err := s.repo.Save(ctx, msg); err != nil {
		logger.Get().Warn("Failed to back up contact message", zap.Error(err))
	}

	if strings.Contains(s.merchant.Email, "example.com") {
		logger.Get().Warn("Merchant email is a placeholder, skipping contact hand-off")
		return &SendResult{Result: handoffdomain.ResultFailedNeedsFallback}, nil
	}

	mailto := handoffservice.MailtoURL(s.merchant.Email, "Contact Form: "+msg.Subject, msg.Body)
	if err := s.opener.Open(mailto); err != nil {
		logger.Get().Warn("Contact hand-off was blocked", zap.Error(err))
		return &SendResult{Result: handoffdomain.ResultFailedNeedsFallback}, nil
	}

	return &SendResult{Result: handoffdomain.ResultDelivered}, nil
}

// Messages returns the backed-up messages, newest first.
func (s *ContactService) Messages(ctx context.Context) ([]domain.Message, error) {
	return s.repo.List(ctx)
}
