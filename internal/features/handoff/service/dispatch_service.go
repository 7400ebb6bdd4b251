package service

import (
	"strings"
	"time"

	"go.uber.org/zap"

	"storefront-core/internal/core/config"
	"storefront-core/internal/core/logger"
	"storefront-core/internal/features/handoff/domain"
	"storefront-core/internal/features/handoff/ports"
)

// defaultEmailDelay staggers the email link behind the chat link so the two
// navigations do not race for the same window.
const defaultEmailDelay = time.Second

// DispatchService routes assembled order text to the merchant over the
// configured side channels. The chat link is the primary channel; email is a
// best-effort backup and never influences the reported result.
type DispatchService struct {
	opener     ports.LinkOpener
	merchant   config.MerchantConfig
	emailDelay time.Duration
}

// NewDispatchService creates a new instance of DispatchService. A zero
// emailDelay falls back to the default stagger.
func NewDispatchService(opener ports.LinkOpener, merchant config.MerchantConfig, emailDelay time.Duration) *DispatchService {
	if emailDelay <= 0 {
		emailDelay = defaultEmailDelay
	}
	return &DispatchService{
		opener:     opener,
		merchant:   merchant,
		emailDelay: emailDelay,
	}
}

// MerchantReachable reports whether the configured merchant contact details
// are real. Deployments that never replaced the placeholder phone or email
// cannot receive orders over the side channels.
func (s *DispatchService) MerchantReachable() bool {
	if strings.Contains(s.merchant.Phone, "XXXX") {
		return false
	}
	if strings.Contains(s.merchant.Email, "example.com") {
		return false
	}
	return true
}

// Dispatch opens the chat link with the given text and schedules the backup
// email. It reports ResultDelivered only when the chat link was opened; a
// blocked navigation or placeholder merchant contact yields
// ResultFailedNeedsFallback so the caller can surface the text for manual
// copy.
func (s *DispatchService) Dispatch(text, subject string) domain.Result {
	if !s.MerchantReachable() {
		logger.Get().Warn("Merchant contact is a placeholder, skipping hand-off",
			zap.String("phone", s.merchant.Phone),
			zap.String("email", s.merchant.Email),
		)
		return domain.ResultFailedNeedsFallback
	}

	chatErr := s.opener.Open(WhatsAppURL(s.merchant.Phone, text))
	if chatErr != nil {
		logger.Get().Warn("Chat hand-off was blocked",
			zap.Error(chatErr),
		)
	}

	mailto := MailtoURL(s.merchant.Email, subject, text)
	time.AfterFunc(s.emailDelay, func() {
		if err := s.opener.Open(mailto); err != nil {
			logger.Get().Warn("Email hand-off was blocked",
				zap.Error(err),
			)
		}
	})

	if chatErr != nil {
		return domain.ResultFailedNeedsFallback
	}
	return domain.ResultDelivered
}
