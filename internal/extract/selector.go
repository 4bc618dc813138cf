package extract

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Field names one semantic value to pull out of a product card.
type Field string

const (
	FieldTitle         Field = "title"
	FieldLink          Field = "link"
	FieldPrice         Field = "price"
	FieldPriceWhole    Field = "price_whole"
	FieldPriceFraction Field = "price_fraction"
	FieldOriginalPrice Field = "original_price"
	FieldImage         Field = "image"
	FieldRating        Field = "rating"
	FieldBankOffer     Field = "bank_offer"
	FieldCashbackOffer Field = "cashback_offer"
)

// Pattern is one query in a field's fallback chain. When Attr is empty
// the element text is used, otherwise the named attribute.
type Pattern struct {
	Query string
	Attr  string
}

// SelectorSet maps each field to an ordered fallback chain, most
// specific (current markup) first, most generic (legacy markup) last.
// The upstream site changes its markup without notice; a prioritized
// chain per field is the only resilience available to a scraper with
// no markup-change signal.
type SelectorSet map[Field][]Pattern

// Resolve returns the first non-empty match for the field within the
// card fragment, or "" when no pattern matches. Absence is an expected
// outcome, never an error.
func (ss SelectorSet) Resolve(card *goquery.Selection, field Field) string {
	for _, p := range ss[field] {
		found := card.Find(p.Query)
		if found.Length() == 0 {
			continue
		}
		var value string
		if p.Attr != "" {
			value, _ = found.First().Attr(p.Attr)
		} else {
			value = found.First().Text()
		}
		value = strings.TrimSpace(value)
		if value != "" {
			return value
		}
	}
	return ""
}

// Has reports whether the set carries any patterns for the field
func (ss SelectorSet) Has(field Field) bool {
	return len(ss[field]) > 0
}
