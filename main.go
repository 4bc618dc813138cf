package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"bazaarbot/config"
	"bazaarbot/internal/fetch"
	"bazaarbot/internal/rotation"
	"bazaarbot/internal/section"
	"bazaarbot/logger"
	"bazaarbot/services/cache"
	"bazaarbot/services/publisher"
	"bazaarbot/services/telegram"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "bazaarbot",
	Short: "bazaarbot scrapes storefront deals and posts them to a Telegram channel on a weekday rotation.",
}

var morningCmd = &cobra.Command{
	Use:   "morning [weekday]",
	Short: "Run the morning rotation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRotation(cmd.Context(), rotation.Morning, args)
	},
}

var eveningCmd = &cobra.Command{
	Use:   "evening [weekday]",
	Short: "Run the evening rotation",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runRotation(cmd.Context(), rotation.Evening, args)
	},
}

func main() {
	godotenv.Load()
	logger.Init()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd.AddCommand(morningCmd, eveningCmd)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// runRotation wires the services and walks one scheduled invocation.
func runRotation(ctx context.Context, tod rotation.TimeOfDay, args []string) error {
	log := logger.Default

	cfg := config.LoadConfig()
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}

	day, err := resolveWeekday(args)
	if err != nil {
		return err
	}

	log.Info().
		Str("time_of_day", string(tod)).
		Str("day", day.String()).
		Str("environment", cfg.Environment).
		Msg("Starting rotation")

	catalog := config.DefaultCatalog(cfg.StorefrontBaseURL)
	profile := section.DefaultProfile()

	var cacheSvc cache.CacheService
	if cfg.MemcacheAddr != "" {
		cacheSvc = cache.NewMemcacheService(cfg.MemcacheAddr)
		log.Info().Str("addr", cfg.MemcacheAddr).Msg("Connected to Memcache")
	}

	var lister fetch.Fetcher
	if cfg.UseChrome {
		lister = fetch.NewChromeFetcher(cfg.RenderTimeout, profile.WaitFor, cacheSvc, cfg.FetchBlockTime)
	} else {
		lister = fetch.NewClient(cfg.FetchTimeout, cacheSvc, cfg.FetchBlockTime)
	}
	detail := fetch.NewClient(cfg.FetchTimeout, cacheSvc, cfg.FetchBlockTime)

	sender := telegram.NewClient(cfg.TelegramAPIURL, cfg.TelegramToken, cfg.TelegramChatID, cfg.FetchTimeout)

	var archive publisher.Publisher = publisher.Noop{}
	if cfg.RedisAddr != "" {
		redisPub := publisher.NewRedisPublisher(cfg.RedisAddr, cfg.RedisDB, cfg.RedisStream, cfg.RedisStreamMaxLen)
		archive = redisPub
		log.Info().Str("addr", cfg.RedisAddr).Str("stream", cfg.RedisStream).Msg("Connected to Redis archive")
	}
	defer archive.Close()

	state := rotation.NewIndexState(cfg.RotationIndexFile)
	pipe := section.NewPipeline(cfg, catalog, profile, lister, detail, sender, archive, state)

	sections := map[rotation.SectionID]rotation.RunFunc{
		rotation.SectionPrebuiltLinks:  pipe.RunPrebuiltLinks,
		rotation.SectionHiddenGem:      pipe.RunHiddenGem,
		rotation.SectionBudgetPicks:    pipe.RunBudgetPicks,
		rotation.SectionTopFiveFixed:   pipe.RunTopFiveFixed,
		rotation.SectionTopFiveRolling: pipe.RunTopFiveRotating,
		rotation.SectionFlashDeals:     pipe.RunFlashDeals,
		rotation.SectionProductOfDay:   pipe.RunProductOfDay,
		rotation.SectionComboDeal:      pipe.RunComboDeal,
	}

	schedule := rotation.MorningSchedule()
	if tod == rotation.Evening {
		schedule = rotation.EveningSchedule()
	}

	rotation.NewRunner(sections, state).Run(ctx, schedule, day)

	if err := archive.Trim(ctx); err != nil {
		log.Warn().Err(err).Msg("Archive trim failed")
	}

	log.Info().Msg("Rotation finished")
	return nil
}

// resolveWeekday parses an explicit weekday argument, defaulting to
// the current day.
func resolveWeekday(args []string) (time.Weekday, error) {
	if len(args) == 0 {
		return time.Now().Weekday(), nil
	}
	name := strings.ToLower(args[0])
	for d := time.Sunday; d <= time.Saturday; d++ {
		if strings.ToLower(d.String()) == name {
			return d, nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", args[0])
}
