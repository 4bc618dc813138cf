package extract

import (
	"net/url"
)

// affiliateParam is the storefront's tracking query parameter.
const affiliateParam = "tag"

// WithAffiliateTag returns rawURL with the affiliate tag parameter set
// to tag, overwriting any existing value (last write wins, never
// appended twice). Applying it again yields the same URL. Input that
// is not a well-formed absolute URL is returned unchanged.
func WithAffiliateTag(rawURL, tag string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return rawURL
	}
	q := u.Query()
	q.Set(affiliateParam, tag)
	u.RawQuery = q.Encode()
	return u.String()
}

// ShortenURL canonicalizes a product URL to its clean "path + tag"
// form, dropping session and ranking noise from the query string.
// Malformed input is returned unchanged.
func ShortenURL(rawURL, tag string) string {
	u, err := url.Parse(rawURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return rawURL
	}
	q := url.Values{}
	q.Set(affiliateParam, tag)
	short := url.URL{
		Scheme:   u.Scheme,
		Host:     u.Host,
		Path:     u.Path,
		RawQuery: q.Encode(),
	}
	return short.String()
}

// ResolveHref resolves a possibly relative href against the listing
// page's base URL. Unresolvable input comes back unchanged.
func ResolveHref(baseURL, href string) string {
	if href == "" {
		return href
	}
	base, err := url.Parse(baseURL)
	if err != nil {
		return href
	}
	ref, err := url.Parse(href)
	if err != nil {
		return href
	}
	return base.ResolveReference(ref).String()
}
