// Package browser owns the single shared browsing context the pipeline
// drives. Every extraction step mutates this focus state, which is why
// listings are processed strictly one at a time.
package browser

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/input"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"

	"github.com/blausm/dentscout/internal/config"
	"github.com/blausm/dentscout/internal/types"
)

const mapsURL = "https://www.google.com/maps"

// fieldTimeout bounds individual element lookups. Field-level misses are
// expected and recovered with defaults, so this stays short.
const fieldTimeout = 5 * time.Second

// Session wraps one headless browser with a single page whose focus
// state is shared by all extraction steps.
type Session struct {
	browser *rod.Browser
	page    *rod.Page
	cfg     config.BrowserConfig
	logger  *slog.Logger
}

// NewSession launches a Chromium instance and opens a stealth page.
func NewSession(cfg config.BrowserConfig, logger *slog.Logger) (*Session, error) {
	l := launcher.New().
		Headless(cfg.Headless).
		Set("disable-gpu").
		Set("disable-dev-shm-usage").
		Set("no-sandbox").
		Set("disable-setuid-sandbox").
		Set("disable-blink-features", "AutomationControlled")
	if cfg.WindowSize != "" {
		l = l.Set("window-size", cfg.WindowSize)
	}

	launchURL, err := l.Launch()
	if err != nil {
		return nil, fmt.Errorf("launch browser: %w", err)
	}

	b := rod.New().ControlURL(launchURL)
	if err := b.Connect(); err != nil {
		return nil, fmt.Errorf("connect browser: %w", err)
	}

	page, err := stealth.Page(b)
	if err != nil {
		_ = b.Close()
		return nil, fmt.Errorf("stealth page: %w", err)
	}

	logger.Info("browser session ready", "headless", cfg.Headless)

	return &Session{
		browser: b,
		page:    page,
		cfg:     cfg,
		logger:  logger.With("component", "browser"),
	}, nil
}

// Close shuts down the browser and releases resources.
func (s *Session) Close() error {
	if s.page != nil {
		_ = s.page.Close()
	}
	if s.browser != nil {
		return s.browser.Close()
	}
	return nil
}

// Page exposes the underlying rod page for feed adapters.
func (s *Session) Page() *rod.Page { return s.page }

// OpenSearch navigates to the map surface, submits the query, and waits
// for the result feed to appear.
func (s *Session) OpenSearch(query string) error {
	s.logger.Info("opening search", "query", query)

	if err := s.page.Timeout(s.cfg.NavTimeout).Navigate(mapsURL); err != nil {
		return fmt.Errorf("navigate to maps: %w", err)
	}
	s.Settle()

	box, err := s.page.Timeout(s.cfg.NavTimeout).Element("#searchboxinput")
	if err != nil {
		return fmt.Errorf("search box: %w", types.ErrNavTimeout)
	}
	if err := box.Input(query); err != nil {
		return fmt.Errorf("type query: %w", err)
	}
	if err := s.page.Keyboard.Press(input.Enter); err != nil {
		return fmt.Errorf("submit query: %w", err)
	}

	if _, err := s.page.Timeout(s.cfg.NavTimeout).Element("div[role='feed']"); err != nil {
		return fmt.Errorf("result feed: %w", types.ErrNavTimeout)
	}
	s.Settle()

	s.logger.Debug("search results loaded")
	return nil
}

// Back navigates one step back in history and lets the UI settle. It is
// the recovery path restoring the shared focus to the list view.
func (s *Session) Back() error {
	if err := s.page.Timeout(s.cfg.NavTimeout).NavigateBack(); err != nil {
		return fmt.Errorf("navigate back: %w", err)
	}
	s.Settle()
	return nil
}

// Settle waits out the configured post-navigation delay plus DOM
// stability.
func (s *Session) Settle() {
	time.Sleep(s.cfg.SettleDelay)
	_ = s.page.Timeout(s.cfg.SettleDelay + time.Second).WaitStable(300 * time.Millisecond)
}

// CurrentURL reports the page's URL after any redirects.
func (s *Session) CurrentURL() string {
	info, err := s.page.Info()
	if err != nil || info == nil {
		return ""
	}
	return info.URL
}

// HTML snapshots the current DOM for out-of-browser parsing.
func (s *Session) HTML() (string, error) {
	html, err := s.page.HTML()
	if err != nil {
		return "", fmt.Errorf("snapshot page: %w", err)
	}
	return html, nil
}

// --- Declarative field helpers ---
//
// Every lookup below returns its fallback on any capability failure, so
// extractor bodies stay declarative: a missing field is a default, never
// an abort.

// TextOr returns the text of the first element matching the CSS
// selector, or fallback when absent.
func (s *Session) TextOr(selector, fallback string) string {
	el, err := s.page.Timeout(fieldTimeout).Element(selector)
	if err != nil {
		return fallback
	}
	text, err := el.Text()
	if err != nil || text == "" {
		return fallback
	}
	return text
}

// AttrOr returns an attribute of the first element matching the CSS
// selector, or fallback when absent or empty.
func (s *Session) AttrOr(selector, attr, fallback string) string {
	el, err := s.page.Timeout(fieldTimeout).Element(selector)
	if err != nil {
		return fallback
	}
	v, err := el.Attribute(attr)
	if err != nil || v == nil || *v == "" {
		return fallback
	}
	return *v
}

// ClickXPath clicks the first element matching the XPath expression and
// reports whether the click happened. Used for text-anchored controls
// such as the About, Hours and Reviews tabs.
func (s *Session) ClickXPath(expr string) bool {
	el, err := s.page.Timeout(fieldTimeout).ElementX(expr)
	if err != nil {
		return false
	}
	if err := el.Click(proto.InputMouseButtonLeft, 1); err != nil {
		s.logger.Debug("click failed", "xpath", expr, "error", err)
		return false
	}
	s.Settle()
	return true
}

// ClickNth clicks the n-th (0-based) element matching the CSS selector.
func (s *Session) ClickNth(selector string, n int) error {
	els, err := s.page.Timeout(fieldTimeout).Elements(selector)
	if err != nil {
		return fmt.Errorf("%s: %w", selector, types.ErrNotFound)
	}
	if n >= len(els) {
		return fmt.Errorf("%s[%d] of %d: %w", selector, n, len(els), types.ErrNotFound)
	}
	if err := els[n].Click(proto.InputMouseButtonLeft, 1); err != nil {
		return fmt.Errorf("click %s[%d]: %w", selector, n, err)
	}
	s.Settle()
	return nil
}

// CountElements reports how many elements match the CSS selector right
// now, without waiting.
func (s *Session) CountElements(selector string) (int, error) {
	els, err := s.page.Elements(selector)
	if err != nil {
		return 0, fmt.Errorf("count %s: %w", selector, err)
	}
	return len(els), nil
}

// ScrollFeedBottom scrolls the container matching the selector to its
// own bottom, triggering the next virtualized load.
func (s *Session) ScrollFeedBottom(selector string) error {
	js := fmt.Sprintf(
		`() => { const el = document.querySelector(%q); if (el) el.scrollTop = el.scrollHeight; }`,
		selector,
	)
	if _, err := s.page.Eval(js); err != nil {
		return fmt.Errorf("scroll %s: %w", selector, err)
	}
	return nil
}
