package config

// CategoryLink pairs a display label with a listing page URL.
type CategoryLink struct {
	Label string
	URL   string
}

// Catalog holds every category table the rotation draws from. It is
// built once and passed into the pipeline so tests can run against
// fixture catalogs instead of package-level state.
type Catalog struct {
	// Fixed categories always used for the fixed top-5 sections
	Fixed []CategoryLink

	// Rotating categories sampled for the rotating top-5 and budget sections
	Rotating []CategoryLink

	// HiddenGems round-robined across runs via the rotation index file
	HiddenGems []CategoryLink

	// Combos sampled for the combo-deal section
	Combos []CategoryLink

	// Prebuilt static links rotated three-per-day by day ordinal
	Prebuilt []CategoryLink

	// Flash static deals-hub links, no scraping involved
	Flash []CategoryLink
}

// DefaultCatalog returns the stock category tables rooted at baseURL.
func DefaultCatalog(baseURL string) Catalog {
	return Catalog{
		Fixed: []CategoryLink{
			{Label: "Electronics", URL: baseURL + "/gp/bestsellers/electronics/"},
			{Label: "Beauty", URL: baseURL + "/gp/bestsellers/beauty/"},
			{Label: "Home & Kitchen", URL: baseURL + "/gp/bestsellers/kitchen/"},
		},
		Rotating: []CategoryLink{
			{Label: "Men's Fashion", URL: baseURL + "/gp/bestsellers/apparel/1968024031/"},
			{Label: "Women's Fashion", URL: baseURL + "/gp/bestsellers/apparel/1968023031/"},
			{Label: "Footwear", URL: baseURL + "/gp/bestsellers/shoes/"},
			{Label: "Grocery", URL: baseURL + "/gp/bestsellers/grocery/"},
			{Label: "Books", URL: baseURL + "/gp/most-gifted/books/"},
			{Label: "Toys", URL: baseURL + "/gp/bestsellers/toys/"},
			{Label: "Home Decor", URL: baseURL + "/gp/bestsellers/home-improvement/"},
			{Label: "Watches", URL: baseURL + "/gp/bestsellers/watches/"},
			{Label: "Mobiles", URL: baseURL + "/gp/bestsellers/electronics/1805560031/"},
			{Label: "Earphones", URL: baseURL + "/gp/bestsellers/electronics/1388921031/"},
			{Label: "Chargers", URL: baseURL + "/gp/bestsellers/electronics/1389396031/"},
			{Label: "Sports", URL: baseURL + "/gp/bestsellers/sports/"},
			{Label: "Gaming", URL: baseURL + "/gp/bestsellers/videogames/"},
			{Label: "Car Accessories", URL: baseURL + "/gp/bestsellers/automotive/"},
			{Label: "Kitchen Tools", URL: baseURL + "/gp/bestsellers/kitchen/1380442031/"},
		},
		HiddenGems: []CategoryLink{
			{Label: "Smart Home Gadgets", URL: baseURL + "/b?node=1629826031"},
			{Label: "Outdoor & Travel Gear", URL: baseURL + "/b?node=1984443031"},
			{Label: "Work from Home Essentials", URL: baseURL + "/b?node=2088643031"},
			{Label: "Baby Must-Haves", URL: baseURL + "/b?node=1571274031"},
			{Label: "Tools & Hardware", URL: baseURL + "/b?node=4286640031"},
			{Label: "Stationery & Supplies", URL: baseURL + "/s?k=stationery"},
		},
		Combos: []CategoryLink{
			{Label: "Self-Care Combo", URL: baseURL + "/s?k=self+care+combo"},
			{Label: "Men's Grooming Combo", URL: baseURL + "/s?k=mens+grooming+combo"},
			{Label: "Baby Care Starter Pack", URL: baseURL + "/s?k=baby+care+pack"},
			{Label: "Glow-Up Kit", URL: baseURL + "/s?k=glow+up+kit"},
			{Label: "Spa-at-Home Bundle", URL: baseURL + "/s?k=home+spa+kit"},
			{Label: "Fitness Fuel Combo", URL: baseURL + "/s?k=fitness+fuel+combo"},
		},
		Prebuilt: []CategoryLink{
			{Label: "🛋️ Trending in Home Decor", URL: baseURL + "/b?node=1380374031"},
			{Label: "🧴 Top Beauty Essentials", URL: baseURL + "/b?node=1374357031"},
			{Label: "👕 Best Fashion Picks", URL: baseURL + "/b?node=1968024031"},
			{Label: "🍳 Kitchen Tools You'll Love", URL: baseURL + "/b?node=1380441031"},
			{Label: "🎧 Headphones & Speakers", URL: baseURL + "/b?node=1388921031"},
			{Label: "🖥️ Work from Home Essentials", URL: baseURL + "/b?node=2088643031"},
			{Label: "👶 Baby Must-Haves", URL: baseURL + "/b?node=1571274031"},
			{Label: "🚗 Car Accessories Deals", URL: baseURL + "/b?node=5257479031"},
			{Label: "🎮 Gaming Accessories", URL: baseURL + "/b?node=4092115031"},
			{Label: "🏠 Smart Home Gadgets", URL: baseURL + "/b?node=1629826031"},
			{Label: "📱 Smartphone Accessories", URL: baseURL + "/b?node=1389401031"},
			{Label: "🏕️ Outdoor & Travel Gear", URL: baseURL + "/b?node=1984443031"},
		},
		Flash: []CategoryLink{
			{Label: "🟡 Lightning Deals", URL: baseURL + "/deals"},
			{Label: "🛍️ Today's Deals", URL: baseURL + "/gp/goldbox"},
		},
	}
}

// PrebuiltPicks returns n prebuilt links chosen by day ordinal so the
// selection advances one slot per calendar day and wraps around.
func (c Catalog) PrebuiltPicks(dayOrdinal, n int) []CategoryLink {
	if len(c.Prebuilt) == 0 || n <= 0 {
		return nil
	}
	picks := make([]CategoryLink, 0, n)
	for i := 0; i < n; i++ {
		picks = append(picks, c.Prebuilt[(dayOrdinal+i)%len(c.Prebuilt)])
	}
	return picks
}
