package section

import (
	"context"

	"bazaarbot/config"
	"bazaarbot/services/telegram"
)

// rotatingTopFive is how many rotating categories a non-fixed top-5
// evening covers.
const rotatingTopFive = 3

// RunTopFiveFixed posts the top picks for the fixed category set.
func (p *Pipeline) RunTopFiveFixed(ctx context.Context) error {
	return p.runTopFive(ctx, p.catalog.Fixed)
}

// RunTopFiveRotating posts the top picks for a sample of rotating
// categories.
func (p *Pipeline) RunTopFiveRotating(ctx context.Context) error {
	return p.runTopFive(ctx, p.pickRotating(rotatingTopFive))
}

func (p *Pipeline) runTopFive(ctx context.Context, cats []config.CategoryLink) error {
	if err := p.sender.SendMessage(ctx, "🛒 <b>Top 5 Per Category</b>", telegram.ParseModeHTML); err != nil {
		return err
	}

	sent := 0
	for _, cat := range cats {
		batch, err := p.scrapeListing(ctx, p.profile.BestsellerCards, cat.Label, cat.URL, false)
		if err != nil {
			p.log.Warn().Err(err).Str("category", cat.Label).Msg("Top-5 scrape failed")
			continue
		}
		if len(batch) == 0 {
			p.log.Info().Str("category", cat.Label).Msg("No products found")
			continue
		}

		top := batch.Top(p.cfg.DisplayLimit)
		if err := p.sender.SendMessage(ctx, p.formatter().TopFive(cat.Label, top), telegram.ParseModeHTML); err != nil {
			p.log.Error().Err(err).Str("category", cat.Label).Msg("Top-5 delivery failed")
			continue
		}
		p.archiveBatch(ctx, top)
		sent++
	}

	if sent == 0 {
		return p.sender.SendMessage(ctx, p.formatter().NoResults("top picks"), telegram.ParseModeHTML)
	}
	return nil
}
