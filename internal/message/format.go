package message

import (
	"fmt"
	"strings"

	"bazaarbot/config"
	"bazaarbot/internal/extract"
)

// Formatter renders ProductRecords into chat-ready message bodies.
// All user-derived text (titles, offer text) is escaped for the render
// target here, exactly once, at this boundary.
type Formatter struct {
	Currency     string
	AffiliateTag string
}

// TopFive renders one category's deduplicated top picks as HTML.
func (f Formatter) TopFive(category string, batch extract.ListingBatch) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>📢 %s DEALS</b>\n\n", extract.EscapeHTML(strings.ToUpper(category)))
	for i, rec := range batch {
		b.WriteString(f.productHTML(rec, rankLabel(i)))
		b.WriteString("\n\n")
	}
	return strings.TrimSpace(b.String())
}

// BudgetPicks renders the under-budget list as HTML.
func (f Formatter) BudgetPicks(batch extract.ListingBatch, cap int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>💸 Top Budget Picks (Under %s%d)</b>\n", f.Currency, cap)
	for _, rec := range batch {
		short := extract.ShortenURL(rec.URL, f.AffiliateTag)
		fmt.Fprintf(&b, "\n<a href=\"%s\">%s</a>\n", short, extract.EscapeHTML(rec.Title))
		b.WriteString(f.priceLineHTML(rec))
		if rec.Rated() {
			fmt.Fprintf(&b, "   ⭐ %.1f", rec.Rating)
		}
		b.WriteString("\n")
	}
	return strings.TrimSpace(b.String())
}

// PrebuiltLinks renders the daily static category links as HTML.
func (f Formatter) PrebuiltLinks(links []config.CategoryLink) string {
	var b strings.Builder
	b.WriteString("💥 <b>Top Trending Deal Zones!</b>\n")
	b.WriteString("Click a category to unlock today's hottest finds:\n\n")
	for i, link := range links {
		tagged := extract.WithAffiliateTag(link.URL, f.AffiliateTag)
		fmt.Fprintf(&b, "%d. <b>%s</b>\n   👉 <a href=\"%s\">Shop This Zone</a>\n\n",
			i+1, extract.EscapeHTML(link.Label), tagged)
	}
	b.WriteString("⏳ <b>Deals update daily—check back tomorrow for fresh picks!</b>")
	return b.String()
}

// FlashDeals renders the static deals-hub links as HTML.
func (f Formatter) FlashDeals(links []config.CategoryLink) string {
	var b strings.Builder
	b.WriteString("⚡ <b>FLASH DEALS ALERT!</b>\n\n")
	for _, link := range links {
		tagged := extract.WithAffiliateTag(link.URL, f.AffiliateTag)
		fmt.Fprintf(&b, "%s\n🔗 <a href=\"%s\">View Deals</a>\n\n",
			extract.EscapeHTML(link.Label), tagged)
	}
	return strings.TrimSpace(b.String())
}

// HiddenGemCaption renders the photo caption for the hidden gem pick
// in Markdown.
func (f Formatter) HiddenGemCaption(label string, rec extract.ProductRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "*%s*\n\n", extract.EscapeMarkdown(label))
	fmt.Fprintf(&b, "🛒 *%s*\n", extract.EscapeMarkdown(extract.TruncateWords(rec.Title, 80)))
	b.WriteString(f.priceLineMarkdown(rec))
	b.WriteString("\n")
	if rec.Rated() {
		fmt.Fprintf(&b, "⭐ %.1f\n", rec.Rating)
	}
	b.WriteString(f.offerLinesMarkdown(rec))
	fmt.Fprintf(&b, "[🔗 View Deal](%s)", extract.ShortenURL(rec.URL, f.AffiliateTag))
	return b.String()
}

// ProductOfDayCaption renders the product-of-the-day photo caption in
// Markdown.
func (f Formatter) ProductOfDayCaption(rec extract.ProductRecord) string {
	var b strings.Builder
	b.WriteString("🔍 *Product of the Day*\n\n")
	fmt.Fprintf(&b, "*%s*\n", extract.EscapeMarkdown(extract.TruncateWords(rec.Title, 80)))
	b.WriteString(f.priceLineMarkdown(rec))
	b.WriteString("\n")
	if rec.Rated() {
		fmt.Fprintf(&b, "⭐ %.1f\n", rec.Rating)
	}
	b.WriteString(f.offerLinesMarkdown(rec))
	fmt.Fprintf(&b, "[🔗 View Deal](%s)", extract.ShortenURL(rec.URL, f.AffiliateTag))
	return b.String()
}

// ComboCaption renders the combo-deal photo caption in Markdown, with
// a browse-more link back to the listing page the batch came from.
func (f Formatter) ComboCaption(label string, rec extract.ProductRecord) string {
	var b strings.Builder
	fmt.Fprintf(&b, "🎯 *Combo Deal – %s*\n\n", extract.EscapeMarkdown(label))
	fmt.Fprintf(&b, "*%s*\n", extract.EscapeMarkdown(extract.TruncateWords(rec.Title, 80)))
	b.WriteString(f.priceLineMarkdown(rec))
	b.WriteString("\n")
	if rec.Rated() {
		fmt.Fprintf(&b, "⭐ %.1f\n", rec.Rating)
	}
	fmt.Fprintf(&b, "[🛒 Grab Now](%s)\n\n", extract.ShortenURL(rec.URL, f.AffiliateTag))
	browse := extract.WithAffiliateTag(rec.SourcePage, f.AffiliateTag)
	fmt.Fprintf(&b, "_🔎 Explore more:_ [Browse Category](%s)", browse)
	return b.String()
}

// NoResults is the consistent signal a section emits when it found
// nothing usable, so the audience never sees a silent gap.
func (f Formatter) NoResults(section string) string {
	return fmt.Sprintf("😔 No %s today. Check back tomorrow!", section)
}

// productHTML renders one record as an HTML block with its rank label.
func (f Formatter) productHTML(rec extract.ProductRecord, label string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "<b>%s</b>\n", label)
	fmt.Fprintf(&b, "<a href=\"%s\">%s</a>\n",
		extract.ShortenURL(rec.URL, f.AffiliateTag), extract.EscapeHTML(rec.Title))
	b.WriteString(f.priceLineHTML(rec))
	b.WriteString("\n")
	if rec.Rated() {
		fmt.Fprintf(&b, "⭐ %.1f\n", rec.Rating)
	}
	if rec.BankOffer != "" {
		fmt.Fprintf(&b, "🏦 %s\n", extract.EscapeHTML(rec.BankOffer))
	}
	if rec.CashbackOffer != "" {
		fmt.Fprintf(&b, "💳 %s\n", extract.EscapeHTML(rec.CashbackOffer))
	}
	return strings.TrimSpace(b.String())
}

// priceLineHTML renders the price with a struck-through original and a
// discount badge when a real discount exists.
func (f Formatter) priceLineHTML(rec extract.ProductRecord) string {
	if rec.HasDiscount() {
		return fmt.Sprintf("💰 <b>%s%s</b> <s>%s%s</s> (%d%% off)",
			f.Currency, rec.Price.StringFixed(0),
			f.Currency, rec.OriginalPrice.Decimal.StringFixed(0),
			rec.DiscountPercent)
	}
	return fmt.Sprintf("💰 <b>%s%s</b>", f.Currency, rec.Price.StringFixed(0))
}

// priceLineMarkdown is the Markdown counterpart of priceLineHTML.
func (f Formatter) priceLineMarkdown(rec extract.ProductRecord) string {
	if rec.HasDiscount() {
		return fmt.Sprintf("💰 ~~%s%s~~ → *%s%s* (`%d%% off`)",
			f.Currency, rec.OriginalPrice.Decimal.StringFixed(0),
			f.Currency, rec.Price.StringFixed(0),
			rec.DiscountPercent)
	}
	return fmt.Sprintf("💰 *%s%s*", f.Currency, rec.Price.StringFixed(0))
}

// offerLinesMarkdown renders the optional offer lines, if any.
func (f Formatter) offerLinesMarkdown(rec extract.ProductRecord) string {
	var b strings.Builder
	if rec.BankOffer != "" {
		fmt.Fprintf(&b, "🏦 %s\n", extract.EscapeMarkdown(rec.BankOffer))
	}
	if rec.CashbackOffer != "" {
		fmt.Fprintf(&b, "💳 %s\n", extract.EscapeMarkdown(rec.CashbackOffer))
	}
	return b.String()
}

// rankLabel maps a record's position in the batch to its display label.
func rankLabel(index int) string {
	switch index {
	case 0:
		return "🔥 Hot Deal"
	case 1:
		return "💸 Premium Pick"
	default:
		return "⭐ Top Rated"
	}
}
