package section

import (
	"bazaarbot/internal/extract"
)

// Profile bundles every selector the pipeline needs for one
// storefront. Chains run most-specific first; entries further down
// cover older markup revisions that still appear on some pages.
type Profile struct {
	// BestsellerCards locates product tiles on bestseller grid pages
	BestsellerCards []string

	// SearchCards locates product tiles on search result pages
	SearchCards []string

	// WaitFor marks a rendered page as loaded for the Chrome fetcher
	WaitFor string

	// Card resolves fields within one listing tile
	Card extract.SelectorSet

	// Detail resolves fields on a product's own page
	Detail extract.SelectorSet
}

// DefaultProfile returns the stock storefront selector tables.
// These rot as the upstream markup drifts; extend the chains rather
// than replacing entries that still match legacy pages.
func DefaultProfile() Profile {
	return Profile{
		BestsellerCards: []string{
			"div.p13n-sc-uncoverable-faceout",
			"div.zg-grid-general-faceout",
			"li.zg-item-immersion",
		},
		SearchCards: []string{
			"div.s-main-slot div[data-component-type='s-search-result']",
			"div.s-result-item[data-asin]",
		},
		WaitFor: "div.p13n-sc-uncoverable-faceout, div.s-main-slot",
		Card: extract.SelectorSet{
			extract.FieldTitle: {
				{Query: "h2 a span"},
				{Query: "div.p13n-sc-truncate-desktop-type2"},
				{Query: "span.p13n-sc-truncate"},
				{Query: "a.a-link-normal span.a-text-normal"},
				{Query: "img", Attr: "alt"},
			},
			extract.FieldLink: {
				{Query: "h2 a", Attr: "href"},
				{Query: "a.a-link-normal[href*='/dp/']", Attr: "href"},
				{Query: "a.a-link-normal", Attr: "href"},
			},
			extract.FieldPriceWhole: {
				{Query: "span.a-price-whole"},
			},
			extract.FieldPriceFraction: {
				{Query: "span.a-price-fraction"},
			},
			extract.FieldPrice: {
				{Query: "span.a-price span.a-offscreen"},
				{Query: "span.p13n-sc-price"},
				{Query: "span._cDEzb_p13n-sc-price_3mJ9Z"},
				{Query: "span.a-color-price"},
			},
			extract.FieldOriginalPrice: {
				{Query: "span.a-price.a-text-price span.a-offscreen"},
				{Query: "span.a-text-strike"},
			},
			extract.FieldImage: {
				{Query: "img.s-image", Attr: "src"},
				{Query: "img.p13n-product-image", Attr: "src"},
				{Query: "img", Attr: "src"},
			},
			extract.FieldRating: {
				{Query: "span.a-icon-alt"},
				{Query: "i.a-icon-star-small span"},
			},
		},
		Detail: extract.SelectorSet{
			extract.FieldOriginalPrice: {
				{Query: "span.a-price.a-text-price[data-a-strike='true'] span.a-offscreen"},
				{Query: "span.basisPrice span.a-offscreen"},
				{Query: "td.a-span12.a-color-secondary span.a-price span.a-offscreen"},
			},
			extract.FieldBankOffer: {
				{Query: "div#itembox-InstantBankDiscount span.a-truncate-full"},
				{Query: "div#itembox-InstantBankDiscount p"},
			},
			extract.FieldCashbackOffer: {
				{Query: "div#itembox-Cashback span.a-truncate-full"},
				{Query: "div#itembox-Cashback p"},
			},
			extract.FieldImage: {
				{Query: "img#landingImage", Attr: "src"},
			},
		},
	}
}
