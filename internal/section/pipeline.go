package section

import (
	"context"
	"encoding/json"
	mathrand "math/rand"
	"time"

	"bazaarbot/config"
	"bazaarbot/internal/extract"
	"bazaarbot/internal/fetch"
	"bazaarbot/internal/message"
	"bazaarbot/internal/rotation"
	"bazaarbot/logger"
	"bazaarbot/services/publisher"
	"bazaarbot/services/telegram"

	"github.com/PuerkitoBio/goquery"
)

// Pipeline wires one scrape-extract-format-deliver pass per section.
// All sections share the same fetchers, sender and archive; a Pipeline
// is built once per run.
type Pipeline struct {
	cfg     config.Config
	catalog config.Catalog
	profile Profile
	fetcher fetch.Fetcher
	detail  fetch.Fetcher
	sender  telegram.Sender
	archive publisher.Publisher
	state   *rotation.IndexState
	rng     *mathrand.Rand
	now     func() time.Time
	log     *logger.Logger
}

// NewPipeline creates a pipeline over the given collaborators. detail
// may equal fetcher; it exists separately because detail pages do not
// need a rendering browser.
func NewPipeline(
	cfg config.Config,
	catalog config.Catalog,
	profile Profile,
	fetcher fetch.Fetcher,
	detail fetch.Fetcher,
	sender telegram.Sender,
	archive publisher.Publisher,
	state *rotation.IndexState,
) *Pipeline {
	return &Pipeline{
		cfg:     cfg,
		catalog: catalog,
		profile: profile,
		fetcher: fetcher,
		detail:  detail,
		sender:  sender,
		archive: archive,
		state:   state,
		rng:     mathrand.New(mathrand.NewSource(time.Now().UnixNano())),
		now:     time.Now,
		log:     logger.ForComponent("pipeline"),
	}
}

// formatter returns the render configuration shared by all sections
func (p *Pipeline) formatter() message.Formatter {
	return message.Formatter{Currency: p.cfg.CurrencySymbol, AffiliateTag: p.cfg.AffiliateTag}
}

// scrapeListing fetches one listing page and extracts its deduplicated
// batch. cardSelectors is the ordered chain of card-list queries;
// withDetail enables the per-product detail-page visit for offer
// fields. A fetch failure propagates; an empty page yields an empty
// batch without error.
func (p *Pipeline) scrapeListing(ctx context.Context, cardSelectors []string, category, pageURL string, withDetail bool) (extract.ListingBatch, error) {
	doc, err := p.fetcher.Fetch(ctx, pageURL)
	if err != nil {
		return nil, err
	}

	var cards *goquery.Selection
	for _, sel := range cardSelectors {
		cards = doc.Find(sel)
		if cards.Length() > 0 {
			break
		}
	}
	if cards == nil || cards.Length() == 0 {
		return nil, nil
	}
	if cards.Length() > p.cfg.ScanLimit {
		cards = cards.Slice(0, p.cfg.ScanLimit)
	}

	builder := &extract.Builder{
		Selectors:    p.profile.Card,
		AffiliateTag: p.cfg.AffiliateTag,
		BaseURL:      p.cfg.StorefrontBaseURL,
	}
	if withDetail {
		builder.DetailSelectors = p.profile.Detail
		builder.FetchDetail = p.detail.Fetch
	}

	batch := builder.BuildAll(ctx, cards, category, pageURL)
	return extract.Deduplicate(batch), nil
}

// archiveBatch records delivered products on the archive stream.
// Best-effort: failures are logged and never affect the section.
func (p *Pipeline) archiveBatch(ctx context.Context, batch extract.ListingBatch) {
	for _, rec := range batch {
		payload, err := json.Marshal(rec)
		if err != nil {
			p.log.Warn().Err(err).Str("title", rec.Title).Msg("Failed to marshal record for archive")
			continue
		}
		if err := p.archive.Publish(ctx, rec.Category, payload); err != nil {
			p.log.Warn().Err(err).Str("category", rec.Category).Msg("Archive publish failed")
		}
	}
}

// pickRotating samples n distinct rotating categories
func (p *Pipeline) pickRotating(n int) []config.CategoryLink {
	cats := p.catalog.Rotating
	if n >= len(cats) {
		return cats
	}
	idx := p.rng.Perm(len(cats))[:n]
	picks := make([]config.CategoryLink, 0, n)
	for _, i := range idx {
		picks = append(picks, cats[i])
	}
	return picks
}
