package section

import (
	"context"

	"bazaarbot/internal/extract"
	"bazaarbot/services/telegram"
)

// comboAttempts bounds how many combo categories one run tries before
// giving up.
const comboAttempts = 3

// RunComboDeal posts one bundled-product deal from a randomly chosen
// combo category, retrying over different categories when a listing
// comes back empty. Within the batch the highest-discount record is
// the one displayed; deduplication itself stays first-seen.
func (p *Pipeline) RunComboDeal(ctx context.Context) error {
	if len(p.catalog.Combos) == 0 {
		return p.sender.SendMessage(ctx, p.formatter().NoResults("combo deals"), telegram.ParseModeHTML)
	}

	var lastErr error
	for attempt := 0; attempt < comboAttempts; attempt++ {
		cat := p.catalog.Combos[p.rng.Intn(len(p.catalog.Combos))]
		p.log.Info().Int("attempt", attempt+1).Str("category", cat.Label).Msg("Trying combo category")

		batch, err := p.scrapeListing(ctx, p.profile.SearchCards, cat.Label, cat.URL, true)
		if err != nil {
			lastErr = err
			continue
		}
		rec := batch.HighestDiscount()
		if rec == nil {
			continue
		}

		caption := p.formatter().ComboCaption(cat.Label, *rec)
		if rec.ImageURL != "" {
			err = p.sender.SendPhoto(ctx, rec.ImageURL, caption, telegram.ParseModeMarkdown)
		} else {
			err = p.sender.SendMessage(ctx, caption, telegram.ParseModeMarkdown)
		}
		if err != nil {
			return err
		}

		p.archiveBatch(ctx, extract.ListingBatch{*rec})
		return nil
	}

	if sendErr := p.sender.SendMessage(ctx, p.formatter().NoResults("combo deals"), telegram.ParseModeHTML); sendErr != nil {
		return sendErr
	}
	return lastErr
}
