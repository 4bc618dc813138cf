package section

import (
	"context"

	"bazaarbot/internal/extract"
	"bazaarbot/services/telegram"
)

// RunProductOfDay posts the single highest-rated product from one
// randomly chosen rotating category.
func (p *Pipeline) RunProductOfDay(ctx context.Context) error {
	cats := p.pickRotating(1)
	if len(cats) == 0 {
		return p.sender.SendMessage(ctx, p.formatter().NoResults("product of the day"), telegram.ParseModeHTML)
	}
	cat := cats[0]

	batch, err := p.scrapeListing(ctx, p.profile.BestsellerCards, cat.Label, cat.URL, true)
	rec := batch.HighestRated()
	if err != nil || rec == nil {
		if sendErr := p.sender.SendMessage(ctx, p.formatter().NoResults("product of the day"), telegram.ParseModeHTML); sendErr != nil {
			return sendErr
		}
		return err
	}

	caption := p.formatter().ProductOfDayCaption(*rec)
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
