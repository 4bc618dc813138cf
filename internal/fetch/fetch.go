package fetch

import (
	"bytes"
	"context"
	"fmt"
	"io"
	mathrand "math/rand"
	"net/http"
	"net/url"
	"slices"
	"time"

	"bazaarbot/logger"
	"bazaarbot/pkg/errors"
	"bazaarbot/services/cache"

	"github.com/PuerkitoBio/goquery"
	"github.com/go-resty/resty/v2"
	"golang.org/x/net/html/charset"
)

// Fetcher loads a page and returns its parsed document. The core
// consumes only the parsed-DOM abstraction; how the HTML was obtained
// (plain GET or a rendering browser) is this package's concern.
type Fetcher interface {
	Fetch(ctx context.Context, pageURL string) (*goquery.Document, error)
}

var (
	userAgents = []string{
		"Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/112.0.0.0 Safari/537.36",
		"Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/14.0.3 Safari/605.1.15",
	}

	referers = []string{
		"https://www.google.com/",
		"https://www.bing.com/",
		"https://duckduckgo.com/",
	}
)

// Client fetches pages over plain HTTP with browser-like headers. A
// cache-backed guard blocks a host for BlockTime after the upstream
// starts rate limiting, so consecutive scheduled runs back off too.
type Client struct {
	http      *resty.Client
	cacheSvc  cache.CacheService
	blockTime time.Duration
	log       *logger.Logger
}

// NewClient creates a fetch client. cacheSvc may be nil, which
// disables the cross-run rate-limit guard.
func NewClient(timeout time.Duration, cacheSvc cache.CacheService, blockTime time.Duration) *Client {
	rnd := mathrand.New(mathrand.NewSource(time.Now().UnixNano()))

	c := resty.New()
	c.SetTimeout(timeout)
	c.SetHeader("User-Agent", userAgents[rnd.Intn(len(userAgents))])
	c.SetHeader("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")
	c.SetHeader("Accept-Language", "en-IN,en;q=0.9,hi;q=0.8")
	c.SetHeader("Referer", referers[rnd.Intn(len(referers))])
	c.SetHeader("Cache-Control", "no-cache")
	c.SetHeader("Upgrade-Insecure-Requests", "1")

	return &Client{
		http:      c,
		cacheSvc:  cacheSvc,
		blockTime: blockTime,
		log:       logger.ForComponent("fetch"),
	}
}

// Fetch performs a GET, converts the body to UTF-8 if needed and
// parses it with goquery.
func (c *Client) Fetch(ctx context.Context, pageURL string) (*goquery.Document, error) {
	key, guarded := guardKey(c.cacheSvc, pageURL)
	if guarded {
		if _, err := c.cacheSvc.Get(key); err == nil {
			return nil, errors.NewRateLimit(pageURL, c.blockTime)
		}
	}

	resp, err := c.http.R().SetContext(ctx).Get(pageURL)
	if err != nil {
		return nil, errors.NewFetch(pageURL, "request failed", err)
	}

	if slices.Contains([]int{http.StatusTooManyRequests, http.StatusServiceUnavailable}, resp.StatusCode()) {
		if guarded {
			if err := c.cacheSvc.Set(key, []byte("1"), c.blockTime); err != nil {
				c.log.Warn().Err(err).Str("key", key).Msg("Failed to set rate-limit guard")
			}
		}
		return nil, errors.NewRateLimit(pageURL, c.blockTime)
	}
	if !resp.IsSuccess() {
		return nil, errors.NewFetch(pageURL, fmt.Sprintf("unexpected status code %d", resp.StatusCode()), nil)
	}

	body, err := toUTF8(resp.Body(), resp.Header().Get("Content-Type"))
	if err != nil {
		return nil, errors.NewFetch(pageURL, "charset conversion failed", err)
	}

	doc, err := goquery.NewDocumentFromReader(body)
	if err != nil {
		return nil, errors.NewFetch(pageURL, "HTML parsing failed", err)
	}
	return doc, nil
}

// guardKey derives the per-host rate-limit cache key
func guardKey(cacheSvc cache.CacheService, pageURL string) (string, bool) {
	if cacheSvc == nil {
		return "", false
	}
	u, err := url.Parse(pageURL)
	if err != nil || u.Host == "" {
		return "", false
	}
	return "fetch_block:" + u.Host, true
}

// toUTF8 converts a response body to UTF-8 based on the Content-Type
// header and the body content.
func toUTF8(body []byte, contentType string) (io.Reader, error) {
	encoding, name, _ := charset.DetermineEncoding(body, contentType)
	if name == "utf-8" || name == "UTF-8" {
		return bytes.NewReader(body), nil
	}

	utf8Reader := encoding.NewDecoder().Reader(bytes.NewReader(body))
	var buf bytes.Buffer
	if _, err := io.Copy(&buf, utf8Reader); err != nil {
		return nil, fmt.Errorf("failed to read converted UTF-8 body: %w", err)
	}
	return &buf, nil
}
