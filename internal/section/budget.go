package section

import (
	"context"

	"bazaarbot/internal/extract"
	"bazaarbot/services/telegram"

	"github.com/shopspring/decimal"
)

// budgetCategories is how many rotating categories the budget section scans.
const budgetCategories = 5

// RunBudgetPicks scans a handful of rotating categories and posts the
// first product under the budget cap from each. Categories that fetch
// poorly or carry nothing affordable are skipped, not fatal.
func (p *Pipeline) RunBudgetPicks(ctx context.Context) error {
	cap := decimal.NewFromInt(int64(p.cfg.BudgetCap))
	var picks extract.ListingBatch

	for _, cat := range p.pickRotating(budgetCategories) {
		batch, err := p.scrapeListing(ctx, p.profile.BestsellerCards, cat.Label, cat.URL, false)
		if err != nil {
			p.log.Warn().Err(err).Str("category", cat.Label).Msg("Budget scan failed")
			continue
		}
		for _, rec := range batch {
			if rec.Price.LessThanOrEqual(cap) {
				picks = append(picks, rec)
				break
			}
		}
	}

	if len(picks) == 0 {
		return p.sender.SendMessage(ctx, p.formatter().NoResults("budget picks"), telegram.ParseModeHTML)
	}

	if err := p.sender.SendMessage(ctx, p.formatter().BudgetPicks(picks, p.cfg.BudgetCap), telegram.ParseModeHTML); err != nil {
		return err
	}

	p.archiveBatch(ctx, picks)
	return nil
}
