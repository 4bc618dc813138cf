package message

import (
	"strings"
	"testing"

	"bazaarbot/config"
	"bazaarbot/internal/extract"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func testFormatter() Formatter {
	return Formatter{Currency: "₹", AffiliateTag: "bazaar-21"}
}

func discounted(title string) extract.ProductRecord {
	return extract.ProductRecord{
		Title:           title,
		URL:             "https://www.amazon.in/dp/B0TEST?qid=123",
		Price:           decimal.RequireFromString("1499"),
		OriginalPrice:   decimal.NullDecimal{Decimal: decimal.RequireFromString("1999"), Valid: true},
		DiscountPercent: 25,
		Rating:          4.3,
		Category:        "electronics",
		SourcePage:      "https://www.amazon.in/gp/bestsellers/electronics",
	}
}

func TestTopFive(t *testing.T) {
	batch := extract.ListingBatch{
		discounted("Widget Pro"),
		discounted("Widget Mini"),
		discounted("Widget Max"),
	}

	out := testFormatter().TopFive("electronics", batch)
	assert.Contains(t, out, "<b>📢 ELECTRONICS DEALS</b>")
	assert.Contains(t, out, "🔥 Hot Deal")
	assert.Contains(t, out, "💸 Premium Pick")
	assert.Contains(t, out, "⭐ Top Rated")
	assert.Contains(t, out, "<b>₹1499</b> <s>₹1999</s> (25% off)")
	// links are canonicalized to the clean tagged form
	assert.Contains(t, out, `href="https://www.amazon.in/dp/B0TEST?tag=bazaar-21"`)
	assert.NotContains(t, out, "qid=123")
}

func TestTopFive_EscapesTitle(t *testing.T) {
	rec := discounted(`Kettle <1.5L> & "Steel"`)
	out := testFormatter().TopFive("home", extract.ListingBatch{rec})
	assert.Contains(t, out, "Kettle &lt;1.5L&gt; &amp; &quot;Steel&quot;")
	assert.NotContains(t, out, "<1.5L>")
}

func TestBudgetPicks(t *testing.T) {
	under := extract.ProductRecord{
		Title:  "Budget Earphones",
		URL:    "https://www.amazon.in/dp/B0CHEAP",
		Price:  decimal.RequireFromString("499"),
		Rating: 4.1,
	}

	out := testFormatter().BudgetPicks(extract.ListingBatch{under}, 999)
	assert.Contains(t, out, "Top Budget Picks (Under ₹999)")
	assert.Contains(t, out, "Budget Earphones")
	assert.Contains(t, out, "<b>₹499</b>")
	assert.Contains(t, out, "⭐ 4.1")
}

func TestPrebuiltLinks(t *testing.T) {
	links := []config.CategoryLink{
		{Label: "Electronics", URL: "https://www.amazon.in/gp/bestsellers/electronics"},
		{Label: "Kitchen", URL: "https://www.amazon.in/gp/bestsellers/kitchen"},
	}

	out := testFormatter().PrebuiltLinks(links)
	assert.Contains(t, out, "1. <b>Electronics</b>")
	assert.Contains(t, out, "2. <b>Kitchen</b>")
	assert.Contains(t, out, "tag=bazaar-21")
	assert.Contains(t, out, "Deals update daily")
}

func TestFlashDeals(t *testing.T) {
	links := []config.CategoryLink{
		{Label: "⚡ Deals Hub", URL: "https://www.amazon.in/deals"},
	}

	out := testFormatter().FlashDeals(links)
	assert.Contains(t, out, "FLASH DEALS ALERT")
	assert.Contains(t, out, `<a href="https://www.amazon.in/deals?tag=bazaar-21">View Deals</a>`)
}

func TestHiddenGemCaption(t *testing.T) {
	rec := discounted("Widget Pro (Black)")
	rec.BankOffer = "10% off with HDFC cards"

	out := testFormatter().HiddenGemCaption("💎 Hidden Gem: Electronics", rec)
	assert.True(t, strings.HasPrefix(out, "*💎 Hidden Gem: Electronics*"))
	assert.Contains(t, out, `Widget Pro \(Black\)`)
	assert.Contains(t, out, "~~₹1999~~ → *₹1499* (`25% off`)")
	assert.Contains(t, out, "⭐ 4.3")
	assert.Contains(t, out, "🏦 10% off with HDFC cards")
	assert.Contains(t, out, "[🔗 View Deal](https://www.amazon.in/dp/B0TEST?tag=bazaar-21)")
}

func TestProductOfDayCaption_NoDiscount(t *testing.T) {
	rec := extract.ProductRecord{
		Title: "Widget Pro",
		URL:   "https://www.amazon.in/dp/B0TEST",
		Price: decimal.RequireFromString("1499"),
	}

	out := testFormatter().ProductOfDayCaption(rec)
	assert.Contains(t, out, "*Product of the Day*")
	assert.Contains(t, out, "💰 *₹1499*")
	assert.NotContains(t, out, "% off")
	assert.NotContains(t, out, "⭐")
}

func TestComboCaption(t *testing.T) {
	rec := discounted("Widget Pro")

	out := testFormatter().ComboCaption("Kitchen Combos", rec)
	assert.Contains(t, out, "🎯 *Combo Deal – Kitchen Combos*")
	assert.Contains(t, out, "[🛒 Grab Now](https://www.amazon.in/dp/B0TEST?tag=bazaar-21)")
	assert.Contains(t, out, "[Browse Category](https://www.amazon.in/gp/bestsellers/electronics?tag=bazaar-21)")
}

func TestNoResults(t *testing.T) {
	out := testFormatter().NoResults("budget picks")
	assert.Equal(t, "😔 No budget picks today. Check back tomorrow!", out)
}

func TestCaptionsStayUnderTelegramLimit(t *testing.T) {
	rec := discounted(strings.Repeat("Very Long Product Name ", 30))
	rec.BankOffer = strings.Repeat("offer text ", 10)

	out := testFormatter().HiddenGemCaption("💎 Hidden Gem", rec)
	// titles are word-truncated so a caption fits Telegram's 1024 limit
	assert.Less(t, len(out), 1024)
	assert.Contains(t, out, "...")
}
