package fetch

import (
	"context"
	"strings"
	"time"

	"bazaarbot/logger"
	"bazaarbot/pkg/errors"
	"bazaarbot/services/cache"

	"github.com/PuerkitoBio/goquery"
	"github.com/chromedp/chromedp"
)

// ChromeFetcher renders JS-driven listing pages in headless Chrome
// before handing the DOM to goquery. The storefront fills product
// grids client-side, so a plain GET sees empty shells.
type ChromeFetcher struct {
	userAgent string
	timeout   time.Duration
	waitFor   string
	cacheSvc  cache.CacheService
	blockTime time.Duration
	log       *logger.Logger
}

// NewChromeFetcher creates a renderer-backed fetcher. waitFor is the
// selector whose appearance marks the page as loaded; empty means
// wait only for document readiness.
func NewChromeFetcher(timeout time.Duration, waitFor string, cacheSvc cache.CacheService, blockTime time.Duration) *ChromeFetcher {
	return &ChromeFetcher{
		userAgent: userAgents[0],
		timeout:   timeout,
		waitFor:   waitFor,
		cacheSvc:  cacheSvc,
		blockTime: blockTime,
		log:       logger.ForComponent("chrome"),
	}
}

// Fetch navigates to pageURL in a fresh headless browser context and
// returns the rendered DOM.
func (f *ChromeFetcher) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	if key, guarded := guardKey(f.cacheSvc, pageURL); guarded {
		if _, err := f.cacheSvc.Get(key); err == nil {
			return nil, errors.NewRateLimit(pageURL, f.blockTime)
		}
	}

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.UserAgent(f.userAgent),
		chromedp.WindowSize(1280, 800),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	renderCtx, cancelRender := context.WithTimeout(browserCtx, f.timeout)
	defer cancelRender()

	actions := []chromedp.Action{
		chromedp.Navigate(pageURL),
	}
	if f.waitFor != "" {
		actions = append(actions, chromedp.WaitReady(f.waitFor, chromedp.ByQuery))
	} else {
		actions = append(actions, chromedp.WaitReady("body", chromedp.ByQuery))
	}

	var html string
	actions = append(actions, chromedp.Evaluate(`document.documentElement.outerHTML`, &html))

	if err := chromedp.Run(renderCtx, actions...); err != nil {
		return nil, errors.NewFetch(pageURL, "render failed", err)
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return nil, errors.NewFetch(pageURL, "HTML parsing failed", err)
	}
	return doc, nil
}
