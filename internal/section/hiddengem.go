package section

import (
	"context"
	"time"

	"bazaarbot/services/telegram"
)

// gemLabels are the display labels the hidden gem post cycles through.
var gemLabels = []string{"💎 Hidden Gem", "🆕 Niche Find", "💡 Smart Buy"}

// RunHiddenGem posts one product from the round-robin hidden-gem
// category. The category pointer comes from the rotation index file,
// so consecutive runs walk the list instead of repeating a favorite.
func (p *Pipeline) RunHiddenGem(ctx context.Context) error {
	cats := p.catalog.HiddenGems
	if len(cats) == 0 {
		return p.sender.SendMessage(ctx, p.formatter().NoResults("hidden gems"), telegram.ParseModeHTML)
	}

	cat := cats[p.state.Current(len(cats))]
	p.state.Advance(len(cats))

	selectors := append(append([]string{}, p.profile.BestsellerCards...), p.profile.SearchCards...)
	batch, err := p.scrapeListing(ctx, selectors, cat.Label, cat.URL, true)
	if err != nil || len(batch) == 0 {
		if sendErr := p.sender.SendMessage(ctx, p.formatter().NoResults("hidden gems"), telegram.ParseModeHTML); sendErr != nil {
			return sendErr
		}
		return err
	}

	rec := batch[0]
	label := gemLabels[p.rng.Intn(len(gemLabels))]
	caption := p.formatter().HiddenGemCaption(label, rec)

	if rec.ImageURL != "" {
		err = p.sender.SendPhoto(ctx, rec.ImageURL, caption, telegram.ParseModeMarkdown)
	} else {
		err = p.sender.SendMessage(ctx, caption, telegram.ParseModeMarkdown)
	}
	if err != nil {
		return err
	}

	p.archiveBatch(ctx, batch.Top(1))
	return nil
}

// dayOrdinal counts whole days since the Unix epoch in local time
func dayOrdinal(t time.Time) int {
	year, month, day := t.Date()
	midnight := time.Date(year, month, day, 0, 0, 0, 0, t.Location())
	return int(midnight.Unix() / (24 * 60 * 60))
}
