package rotation

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestMorningSchedule_CoversEveryWeekday(t *testing.T) {
	schedule := MorningSchedule()
	for d := time.Sunday; d <= time.Saturday; d++ {
		ids := schedule[d]
		assert.NotEmpty(t, ids, "day %s", d)
		// the prebuilt links post leads every morning
		assert.Equal(t, SectionPrebuiltLinks, ids[0], "day %s", d)
	}

	// hidden gem and budget picks alternate and never share a day
	for d := time.Sunday; d <= time.Saturday; d++ {
		ids := schedule[d]
		assert.Len(t, ids, 2, "day %s", d)
		second := ids[1]
		assert.Contains(t, []SectionID{SectionHiddenGem, SectionBudgetPicks}, second, "day %s", d)
	}
	assert.Equal(t, SectionHiddenGem, schedule[time.Monday][1])
	assert.Equal(t, SectionBudgetPicks, schedule[time.Tuesday][1])
}

func TestEveningSchedule_CoversEveryWeekday(t *testing.T) {
	schedule := EveningSchedule()
	for d := time.Sunday; d <= time.Saturday; d++ {
		assert.NotEmpty(t, schedule[d], "day %s", d)
	}

	assert.Equal(t, []SectionID{SectionTopFiveFixed}, schedule[time.Monday])
	assert.Equal(t, []SectionID{SectionFlashDeals, SectionProductOfDay}, schedule[time.Tuesday])
	assert.Equal(t, []SectionID{SectionTopFiveRolling}, schedule[time.Wednesday])
	assert.Equal(t, []SectionID{SectionTopFiveFixed, SectionComboDeal}, schedule[time.Friday])
	assert.Equal(t, []SectionID{SectionTopFiveRolling, SectionComboDeal}, schedule[time.Sunday])
}

func TestRunner_SectionFailureDoesNotStopRun(t *testing.T) {
	var order []SectionID
	sections := map[SectionID]RunFunc{
		SectionPrebuiltLinks: func(ctx context.Context) error {
			order = append(order, SectionPrebuiltLinks)
			return errors.New("fetch blew up")
		},
		SectionHiddenGem: func(ctx context.Context) error {
			order = append(order, SectionHiddenGem)
			return nil
		},
	}

	schedule := Schedule{
		time.Monday: {SectionPrebuiltLinks, SectionHiddenGem},
	}

	runner := NewRunner(sections, nil)
	runner.Run(context.Background(), schedule, time.Monday)

	assert.Equal(t, []SectionID{SectionPrebuiltLinks, SectionHiddenGem}, order)
}

func TestRunner_UnregisteredSectionSkipped(t *testing.T) {
	ran := false
	sections := map[SectionID]RunFunc{
		SectionFlashDeals: func(ctx context.Context) error {
			ran = true
			return nil
		},
	}

	schedule := Schedule{
		time.Tuesday: {SectionComboDeal, SectionFlashDeals},
	}

	NewRunner(sections, nil).Run(context.Background(), schedule, time.Tuesday)
	assert.True(t, ran)
}

func TestRunner_PersistsStateAfterRun(t *testing.T) {
	path := filepath.Join(t.TempDir(), "index.txt")
	state := NewIndexState(path)

	sections := map[SectionID]RunFunc{
		SectionHiddenGem: func(ctx context.Context) error {
			state.Advance(4)
			return nil
		},
	}
	schedule := Schedule{time.Monday: {SectionHiddenGem}}

	NewRunner(sections, state).Run(context.Background(), schedule, time.Monday)

	reloaded := NewIndexState(path)
	reloaded.Load()
	assert.Equal(t, 1, reloaded.Current(4))
}

func TestRunner_RunsInScheduleOrder(t *testing.T) {
	var order []SectionID
	record := func(id SectionID) RunFunc {
		return func(ctx context.Context) error {
			order = append(order, id)
			return nil
		}
	}
	sections := map[SectionID]RunFunc{
		SectionFlashDeals:   record(SectionFlashDeals),
		SectionProductOfDay: record(SectionProductOfDay),
	}

	NewRunner(sections, nil).Run(context.Background(), EveningSchedule(), time.Thursday)
	assert.Equal(t, []SectionID{SectionFlashDeals, SectionProductOfDay}, order)
}
