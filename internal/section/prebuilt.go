package section

import (
	"context"

	"bazaarbot/services/telegram"
)

// prebuiltDaily is how many static category links go out each morning.
const prebuiltDaily = 3

// RunPrebuiltLinks sends the daily rotating static category links.
// No scraping is involved; the selection advances by day ordinal so
// every link gets its turn.
func (p *Pipeline) RunPrebuiltLinks(ctx context.Context) error {
	picks := p.catalog.PrebuiltPicks(dayOrdinal(p.now()), prebuiltDaily)
	if len(picks) == 0 {
		return p.sender.SendMessage(ctx, p.formatter().NoResults("deal zones"), telegram.ParseModeHTML)
	}
	return p.sender.SendMessage(ctx, p.formatter().PrebuiltLinks(picks), telegram.ParseModeHTML)
}
