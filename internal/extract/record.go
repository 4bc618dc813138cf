package extract

import (
	"github.com/shopspring/decimal"
)

// ProductRecord is the canonical unit of scraped product data. Title
// and URL are mandatory; a card that cannot produce both (plus a
// parseable price) never becomes a record.
type ProductRecord struct {
	Title           string              `json:"title"`
	URL             string              `json:"url"`
	ImageURL        string              `json:"image_url,omitempty"`
	Price           decimal.Decimal     `json:"price"`
	OriginalPrice   decimal.NullDecimal `json:"original_price,omitempty"`
	DiscountPercent int                 `json:"discount_percent,omitempty"`
	Rating          float64             `json:"rating,omitempty"`
	BankOffer       string              `json:"bank_offer,omitempty"`
	CashbackOffer   string              `json:"cashback_offer,omitempty"`
	Category        string              `json:"category"`
	SourcePage      string              `json:"source_page"`
}

// HasDiscount reports whether the record carries a displayable discount
func (r ProductRecord) HasDiscount() bool {
	return r.DiscountPercent > 0 && r.OriginalPrice.Valid
}

// Rated reports whether a rating was parsed for the record
func (r ProductRecord) Rated() bool {
	return r.Rating > 0
}

// ListingBatch is an ordered sequence of records extracted from one
// listing page. Order follows DOM order of the cards.
type ListingBatch []ProductRecord

// Deduplicate collapses near-duplicate variants (same product in a
// different color, storage size or packaging) to one record per
// simplified title. The first record seen wins so the batch keeps the
// page's own ranking; the pass is stable and order-preserving.
func Deduplicate(batch ListingBatch) ListingBatch {
	seen := make(map[string]struct{}, len(batch))
	out := make(ListingBatch, 0, len(batch))
	for _, r := range batch {
		key := SimplifyTitle(r.Title)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		out = append(out, r)
	}
	return out
}

// Top returns at most n leading records without reordering
func (b ListingBatch) Top(n int) ListingBatch {
	if n >= len(b) {
		return b
	}
	return b[:n]
}

// HighestRated returns the record with the best rating, preferring the
// earlier record on ties. Returns nil for an empty batch.
func (b ListingBatch) HighestRated() *ProductRecord {
	if len(b) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(b); i++ {
		if b[i].Rating > b[best].Rating {
			best = i
		}
	}
	return &b[best]
}

// HighestDiscount returns the record with the largest discount percent,
// preferring the earlier record on ties. Returns nil for an empty batch.
func (b ListingBatch) HighestDiscount() *ProductRecord {
	if len(b) == 0 {
		return nil
	}
	best := 0
	for i := 1; i < len(b); i++ {
		if b[i].DiscountPercent > b[best].DiscountPercent {
			best = i
		}
	}
	return &b[best]
}
