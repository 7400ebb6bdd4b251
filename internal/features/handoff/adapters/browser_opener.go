package adapter

import (
	"fmt"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"go.uber.org/zap"

	"storefront-core/internal/core/logger"
)

// openTimeout bounds a single link navigation. Deep links resolve fast; a
// hang means the target app intercepted the navigation.
const openTimeout = 15 * time.Second

// BrowserOpener opens deep links in a headless Chromium instance. The browser
// is launched once on construction and reused for every link.
type BrowserOpener struct {
	browser *rod.Browser
	logger  *zap.Logger
}

// NewBrowserOpener launches the browser and connects to it.
func NewBrowserOpener() (*BrowserOpener, error) {
	l := launcher.New().
		Headless(true).
		NoSandbox(true)

	u, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("failed to launch browser: %w", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	return &BrowserOpener{
		browser: browser,
		logger:  logger.Get(),
	}, nil
}

// Open navigates a fresh tab to the URL. The tab stays open so the target
// application can take over the hand-off.
func (o *BrowserOpener) Open(url string) error {
	browser := o.browser.Timeout(openTimeout)

	page, err := browser.Page(proto.TargetCreateTarget{URL: url})
	if err != nil {
		return fmt.Errorf("failed to open link: %w", err)
	}

	o.logger.Debug("Opened hand-off link",
		zap.String("target_id", string(page.TargetID)),
	)
	return nil
}

// Close shuts the browser down.
func (o *BrowserOpener) Close() error {
	return o.browser.Close()
}
