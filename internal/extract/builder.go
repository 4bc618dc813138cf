package extract

import (
	"context"

	"github.com/PuerkitoBio/goquery"
	"github.com/shopspring/decimal"
)

// DetailFetcher loads a product's own detail page for fields the
// listing card does not carry (MRP, bank offers, cashback). It obeys
// the same timeout policy as listing fetches.
type DetailFetcher func(ctx context.Context, url string) (*goquery.Document, error)

// Builder assembles ProductRecords from card fragments. Card selectors
// run against the listing tile; detail selectors run against the
// product page when a detail fetch is configured.
type Builder struct {
	Selectors       SelectorSet
	DetailSelectors SelectorSet
	AffiliateTag    string
	BaseURL         string
	FetchDetail     DetailFetcher
}

// Build extracts one ProductRecord from a card fragment. It returns
// nil exactly when one of the three mandatory fields (title, link,
// price) cannot be resolved; a missing optional field never fails the
// record. Optional-field trouble, including a detail-page fetch
// timeout, degrades to a null field and extraction continues.
func (b *Builder) Build(ctx context.Context, card *goquery.Selection, category, sourcePage string) *ProductRecord {
	title := CleanText(b.Selectors.Resolve(card, FieldTitle))
	link := b.Selectors.Resolve(card, FieldLink)
	price, ok := b.resolvePrice(card)
	if title == "" || link == "" || !ok {
		return nil
	}
	link = ResolveHref(b.BaseURL, link)

	rec := &ProductRecord{
		Title:      title,
		URL:        WithAffiliateTag(link, b.AffiliateTag),
		Price:      price,
		Category:   category,
		SourcePage: sourcePage,
	}

	if img := b.Selectors.Resolve(card, FieldImage); img != "" {
		rec.ImageURL = ResolveHref(b.BaseURL, img)
	}
	if raw := b.Selectors.Resolve(card, FieldRating); raw != "" {
		if v, ok := ParseRating(raw); ok {
			rec.Rating = v
		}
	}
	if raw := b.Selectors.Resolve(card, FieldOriginalPrice); raw != "" {
		if v, ok := ParseCurrency(raw); ok {
			rec.OriginalPrice = decimal.NullDecimal{Decimal: v, Valid: true}
		}
	}
	rec.BankOffer = CleanText(b.Selectors.Resolve(card, FieldBankOffer))
	rec.CashbackOffer = CleanText(b.Selectors.Resolve(card, FieldCashbackOffer))

	if b.needsDetail(rec) {
		b.enrichFromDetail(ctx, link, rec)
	}

	if rec.OriginalPrice.Valid {
		if pct, ok := ComputeDiscount(rec.Price, rec.OriginalPrice.Decimal); ok {
			rec.DiscountPercent = pct
		} else {
			// MRP at or below the selling price carries no information
			rec.OriginalPrice = decimal.NullDecimal{}
		}
	}

	return rec
}

// resolvePrice composes the split whole+fraction price spans when the
// markup renders them separately, falling back to the single-element
// price chain.
func (b *Builder) resolvePrice(card *goquery.Selection) (decimal.Decimal, bool) {
	if b.Selectors.Has(FieldPriceWhole) {
		whole := b.Selectors.Resolve(card, FieldPriceWhole)
		if whole != "" {
			raw := whole
			if frac := b.Selectors.Resolve(card, FieldPriceFraction); frac != "" {
				raw = whole + "." + frac
			}
			if v, ok := ParseCurrency(raw); ok {
				return v, true
			}
		}
	}
	raw := b.Selectors.Resolve(card, FieldPrice)
	if raw == "" {
		return decimal.Decimal{}, false
	}
	return ParseCurrency(raw)
}

// needsDetail reports whether a detail-page visit could still fill
// missing optional fields.
func (b *Builder) needsDetail(rec *ProductRecord) bool {
	if b.FetchDetail == nil || len(b.DetailSelectors) == 0 {
		return false
	}
	if !rec.OriginalPrice.Valid && b.DetailSelectors.Has(FieldOriginalPrice) {
		return true
	}
	if rec.BankOffer == "" && b.DetailSelectors.Has(FieldBankOffer) {
		return true
	}
	if rec.CashbackOffer == "" && b.DetailSelectors.Has(FieldCashbackOffer) {
		return true
	}
	return false
}

// enrichFromDetail fills record gaps from the product's own page.
// Fetch failure leaves the fields null; the record survives.
func (b *Builder) enrichFromDetail(ctx context.Context, link string, rec *ProductRecord) {
	doc, err := b.FetchDetail(ctx, link)
	if err != nil || doc == nil {
		return
	}
	root := doc.Selection
	if !rec.OriginalPrice.Valid {
		if raw := b.DetailSelectors.Resolve(root, FieldOriginalPrice); raw != "" {
			if v, ok := ParseCurrency(raw); ok {
				rec.OriginalPrice = decimal.NullDecimal{Decimal: v, Valid: true}
			}
		}
	}
	if rec.BankOffer == "" {
		rec.BankOffer = CleanText(b.DetailSelectors.Resolve(root, FieldBankOffer))
	}
	if rec.CashbackOffer == "" {
		rec.CashbackOffer = CleanText(b.DetailSelectors.Resolve(root, FieldCashbackOffer))
	}
	if rec.ImageURL == "" {
		if img := b.DetailSelectors.Resolve(root, FieldImage); img != "" {
			rec.ImageURL = ResolveHref(b.BaseURL, img)
		}
	}
}

// BuildAll runs Build over every card in the selection, in DOM order,
// dropping cards that fail the mandatory-field gate.
func (b *Builder) BuildAll(ctx context.Context, cards *goquery.Selection, category, sourcePage string) ListingBatch {
	var batch ListingBatch
	cards.Each(func(_ int, card *goquery.Selection) {
		if rec := b.Build(ctx, card, category, sourcePage); rec != nil {
			batch = append(batch, *rec)
		}
	})
	return batch
}
