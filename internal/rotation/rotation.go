package rotation

import (
	"context"
	"time"

	"bazaarbot/logger"
)

// TimeOfDay names the two scheduled invocations.
type TimeOfDay string

const (
	Morning TimeOfDay = "morning"
	Evening TimeOfDay = "evening"
)

// SectionID identifies one content section in the dispatch tables.
type SectionID string

const (
	SectionPrebuiltLinks  SectionID = "prebuilt_links"
	SectionHiddenGem      SectionID = "hidden_gem"
	SectionBudgetPicks    SectionID = "budget_picks"
	SectionTopFiveFixed   SectionID = "top5_fixed"
	SectionTopFiveRolling SectionID = "top5_rotating"
	SectionFlashDeals     SectionID = "flash_deals"
	SectionProductOfDay   SectionID = "product_of_day"
	SectionComboDeal      SectionID = "combo_deal"
)

// Schedule maps a weekday to the ordered section list for one time of
// day. Order is delivery order; there is no reordering downstream.
type Schedule map[time.Weekday][]SectionID

// MorningSchedule returns the static morning dispatch table.
func MorningSchedule() Schedule {
	return Schedule{
		time.Monday:    {SectionPrebuiltLinks, SectionHiddenGem},
		time.Tuesday:   {SectionPrebuiltLinks, SectionBudgetPicks},
		time.Wednesday: {SectionPrebuiltLinks, SectionHiddenGem},
		time.Thursday:  {SectionPrebuiltLinks, SectionBudgetPicks},
		time.Friday:    {SectionPrebuiltLinks, SectionHiddenGem},
		time.Saturday:  {SectionPrebuiltLinks, SectionBudgetPicks},
		time.Sunday:    {SectionPrebuiltLinks, SectionHiddenGem},
	}
}

// EveningSchedule returns the static evening dispatch table.
func EveningSchedule() Schedule {
	return Schedule{
		time.Monday:    {SectionTopFiveFixed},
		time.Tuesday:   {SectionFlashDeals, SectionProductOfDay},
		time.Wednesday: {SectionTopFiveRolling},
		time.Thursday:  {SectionFlashDeals, SectionProductOfDay},
		time.Friday:    {SectionTopFiveFixed, SectionComboDeal},
		time.Saturday:  {SectionFlashDeals, SectionProductOfDay},
		time.Sunday:    {SectionTopFiveRolling, SectionComboDeal},
	}
}

// RunFunc executes one section end to end.
type RunFunc func(ctx context.Context) error

// Runner walks a day's section list sequentially. Each section is its
// own failure domain: an error is logged and the runner proceeds to
// the next section, so a run where every section failed still
// completes.
type Runner struct {
	sections map[SectionID]RunFunc
	state    *IndexState
	log      *logger.Logger
}

// NewRunner creates a runner over the registered sections. state may
// be nil when no section needs the rotation pointer.
func NewRunner(sections map[SectionID]RunFunc, state *IndexState) *Runner {
	return &Runner{
		sections: sections,
		state:    state,
		log:      logger.ForComponent("rotation"),
	}
}

// Run executes the schedule entry for the given weekday. The rotation
// index is loaded before the first section and persisted after the
// last, regardless of section outcomes.
func (r *Runner) Run(ctx context.Context, schedule Schedule, day time.Weekday) {
	if r.state != nil {
		r.state.Load()
	}

	ids := schedule[day]
	r.log.Info().
		Str("day", day.String()).
		Int("sections", len(ids)).
		Msg("Starting rotation run")

	for _, id := range ids {
		run, ok := r.sections[id]
		if !ok {
			r.log.Warn().Str("section", string(id)).Msg("Section not registered")
			continue
		}

		start := time.Now()
		if err := run(ctx); err != nil {
			r.log.Error().
				Err(err).
				Str("section", string(id)).
				Msg("Section failed")
			continue
		}
		r.log.Info().
			Str("section", string(id)).
			Dur("elapsed", time.Since(start)).
			Msg("Section completed")
	}

	if r.state != nil {
		if err := r.state.Store(); err != nil {
			r.log.Error().Err(err).Msg("Failed to persist rotation index")
		}
	}
}
