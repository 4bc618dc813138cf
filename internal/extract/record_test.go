package extract

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestDeduplicate_VariantsCollapse(t *testing.T) {
	batch := ListingBatch{
		{Title: "Widget Pro (Black, 128GB Storage)", URL: "https://example.in/dp/1"},
		{Title: "Widget Pro (Blue, 256GB Storage)", URL: "https://example.in/dp/2"},
		{Title: "Other Gadget", URL: "https://example.in/dp/3"},
		{Title: "Widget Pro (Silver, 512GB Storage)", URL: "https://example.in/dp/4"},
	}

	out := Deduplicate(batch)
	assert.Len(t, out, 2)
	// first-seen variant wins and page order survives
	assert.Equal(t, "Widget Pro (Black, 128GB Storage)", out[0].Title)
	assert.Equal(t, "Other Gadget", out[1].Title)
}

func TestDeduplicate_Idempotent(t *testing.T) {
	batch := ListingBatch{
		{Title: "Kettle 1.5L Black"},
		{Title: "Kettle 1.5L White"},
		{Title: "Toaster"},
	}

	once := Deduplicate(batch)
	twice := Deduplicate(once)
	assert.Equal(t, once, twice)
}

func TestDeduplicate_Empty(t *testing.T) {
	assert.Empty(t, Deduplicate(nil))
}

func TestListingBatch_Top(t *testing.T) {
	batch := ListingBatch{{Title: "a"}, {Title: "b"}, {Title: "c"}}

	assert.Len(t, batch.Top(2), 2)
	assert.Equal(t, "a", batch.Top(2)[0].Title)
	assert.Len(t, batch.Top(5), 3)
}

func TestListingBatch_HighestRated(t *testing.T) {
	batch := ListingBatch{
		{Title: "first", Rating: 4.1},
		{Title: "best", Rating: 4.7},
		{Title: "tied", Rating: 4.7},
	}

	best := batch.HighestRated()
	assert.NotNil(t, best)
	assert.Equal(t, "best", best.Title)

	assert.Nil(t, ListingBatch{}.HighestRated())
}

func TestListingBatch_HighestDiscount(t *testing.T) {
	batch := ListingBatch{
		{Title: "small", DiscountPercent: 10},
		{Title: "big", DiscountPercent: 45},
		{Title: "also big", DiscountPercent: 45},
	}

	best := batch.HighestDiscount()
	assert.NotNil(t, best)
	assert.Equal(t, "big", best.Title)

	assert.Nil(t, ListingBatch{}.HighestDiscount())
}

func TestProductRecord_HasDiscount(t *testing.T) {
	rec := ProductRecord{
		Price:           decimal.RequireFromString("1499"),
		OriginalPrice:   decimal.NullDecimal{Decimal: decimal.RequireFromString("1999"), Valid: true},
		DiscountPercent: 25,
	}
	assert.True(t, rec.HasDiscount())

	assert.False(t, ProductRecord{DiscountPercent: 25}.HasDiscount())
	assert.False(t, ProductRecord{}.HasDiscount())
}
