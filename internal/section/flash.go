package section

import (
	"context"

	"bazaarbot/services/telegram"
)

// RunFlashDeals sends the static deals-hub links. The hubs change
// their contents server-side, so there is nothing to scrape.
func (p *Pipeline) RunFlashDeals(ctx context.Context) error {
	if len(p.catalog.Flash) == 0 {
		return p.sender.SendMessage(ctx, p.formatter().NoResults("flash deals"), telegram.ParseModeHTML)
	}
	return p.sender.SendMessage(ctx, p.formatter().FlashDeals(p.catalog.Flash), telegram.ParseModeHTML)
}
