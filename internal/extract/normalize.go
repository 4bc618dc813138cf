package extract

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	currencyRe   = regexp.MustCompile(`[0-9][0-9,]*(?:\.[0-9]+)?`)
	ratingRe     = regexp.MustCompile(`([0-9]+(?:\.[0-9]+)?)\s*(?:out of|/)\s*5`)
	bracketRe    = regexp.MustCompile(`\([^)]*\)|\[[^\]]*\]`)
	nonAlnumRe   = regexp.MustCompile(`[^a-z0-9\s]`)
	whitespaceRe = regexp.MustCompile(`\s+`)
	htmlEscapeRe = regexp.MustCompile(`&(?:amp|lt|gt|quot|#39|#[0-9]+);|[&<>"]`)
)

// variantWords are title fragments that distinguish variants of the
// same logical product. They are stripped from the dedup key only; the
// displayed title keeps them.
var variantWords = []string{
	"black", "blue", "pink", "red", "green", "white", "yellow", "grey", "gray",
	"silver", "gold", "beige", "brown", "purple", "orange",
	"128gb", "256gb", "512gb", "1tb",
	"12gb", "8gb", "6gb", "4gb", "3gb", "2gb",
	"ram", "rom", "storage", "variant", "pack of", "combo of",
}

// ParseCurrency converts a raw price string ("₹1,499", "Rs. 1,499.00")
// to a decimal amount. Returns false for non-numeric input.
func ParseCurrency(text string) (decimal.Decimal, bool) {
	m := currencyRe.FindString(text)
	if m == "" {
		return decimal.Decimal{}, false
	}
	d, err := decimal.NewFromString(strings.ReplaceAll(m, ",", ""))
	if err != nil {
		return decimal.Decimal{}, false
	}
	return d, true
}

// ParseRating extracts a 0-5 scale rating from free text such as
// "4.3 out of 5 stars" or a bare "4.3". Returns false when the text
// carries no usable rating.
func ParseRating(text string) (float64, bool) {
	if m := ratingRe.FindStringSubmatch(text); m != nil {
		v, err := strconv.ParseFloat(m[1], 64)
		if err == nil && v >= 0 && v <= 5 {
			return v, true
		}
		return 0, false
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || v < 0 || v > 5 {
		return 0, false
	}
	return v, true
}

// ComputeDiscount derives the rounded discount percentage from a price
// pair. Returns false unless originalPrice > price > 0 and the rounded
// percentage is positive.
func ComputeDiscount(price, originalPrice decimal.Decimal) (int, bool) {
	if !price.IsPositive() || originalPrice.LessThanOrEqual(price) {
		return 0, false
	}
	pct := originalPrice.Sub(price).
		Div(originalPrice).
		Mul(decimal.NewFromInt(100)).
		Round(0).
		IntPart()
	if pct <= 0 {
		return 0, false
	}
	return int(pct), true
}

// SimplifyTitle reduces a display title to the deduplication key:
// lowercase, bracketed content removed, variant words removed,
// punctuation stripped, whitespace collapsed. Never shown to users.
func SimplifyTitle(title string) string {
	t := strings.ToLower(title)
	t = bracketRe.ReplaceAllString(t, " ")
	for _, w := range variantWords {
		t = strings.ReplaceAll(t, w, " ")
	}
	t = nonAlnumRe.ReplaceAllString(t, "")
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(t, " "))
}

// CleanText collapses runs of whitespace (including newlines and tabs)
// into single spaces and trims the result.
func CleanText(text string) string {
	return strings.TrimSpace(whitespaceRe.ReplaceAllString(text, " "))
}

// markdownSpecials are the characters Telegram's Markdown treats as
// formatting metacharacters.
const markdownSpecials = "_*[]()~`>#+-=|{}.!"

// EscapeMarkdown escapes Markdown metacharacters in user-derived text.
// Already-escaped sequences pass through untouched so the function is
// idempotent and safe to apply at the render boundary.
func EscapeMarkdown(text string) string {
	var b strings.Builder
	b.Grow(len(text) + len(text)/4)
	escaped := false
	for _, r := range text {
		if escaped {
			b.WriteRune(r)
			escaped = false
			continue
		}
		if r == '\\' {
			b.WriteRune(r)
			escaped = true
			continue
		}
		if strings.ContainsRune(markdownSpecials, r) {
			b.WriteRune('\\')
		}
		b.WriteRune(r)
	}
	return b.String()
}

// EscapeHTML escapes &, <, > and " for an HTML render target without
// double-escaping existing entities, so repeated application is a
// no-op.
func EscapeHTML(text string) string {
	return htmlEscapeRe.ReplaceAllStringFunc(text, func(m string) string {
		switch m {
		case "&":
			return "&amp;"
		case "<":
			return "&lt;"
		case ">":
			return "&gt;"
		case `"`:
			return "&quot;"
		default:
			// an entity matched whole; leave it alone
			return m
		}
	})
}

// TruncateWords shortens text to at most limit runes, cutting at the
// last word boundary and appending an ellipsis when anything was
// dropped.
func TruncateWords(text string, limit int) string {
	text = strings.TrimSpace(text)
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	cut := string(runes[:limit])
	if idx := strings.LastIndex(cut, " "); idx > 0 {
		cut = cut[:idx]
	}
	return cut + "..."
}
