package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config represents the application configuration
type Config struct {
	// Telegram delivery
	TelegramToken  string
	TelegramChatID string
	TelegramAPIURL string

	// Affiliate link rewriting
	AffiliateTag string

	// Redis archive stream (optional, disabled when RedisAddr is empty)
	RedisAddr         string
	RedisDB           int
	RedisStream       string
	RedisStreamMaxLen int

	// Memcache fetch guard (optional, disabled when MemcacheAddr is empty)
	MemcacheAddr string

	// Fetching
	StorefrontBaseURL string
	FetchTimeout      time.Duration
	RenderTimeout     time.Duration
	FetchBlockTime    time.Duration
	UseChrome         bool

	// Result shaping
	ScanLimit      int
	DisplayLimit   int
	BudgetCap      int // budget-picks price cap in whole currency units
	CurrencySymbol string

	// Rotation
	RotationIndexFile string

	// Environment
	Environment string
}

// LoadConfig loads the configuration from environment variables with defaults
func LoadConfig() Config {
	redisDB, _ := strconv.Atoi(getEnv("REDIS_DB", "0"))
	streamMaxLen, _ := strconv.Atoi(getEnv("REDIS_STREAM_MAXLEN", "500"))
	fetchTimeout, _ := strconv.Atoi(getEnv("FETCH_TIMEOUT_SECONDS", "30"))
	renderTimeout, _ := strconv.Atoi(getEnv("RENDER_TIMEOUT_SECONDS", "60"))
	blockTime, _ := strconv.Atoi(getEnv("FETCH_BLOCK_SECONDS", "300"))
	scanLimit, _ := strconv.Atoi(getEnv("SCAN_LIMIT", "15"))
	displayLimit, _ := strconv.Atoi(getEnv("DISPLAY_LIMIT", "5"))
	budgetCap, _ := strconv.Atoi(getEnv("BUDGET_CAP", "999"))

	return Config{
		TelegramToken:     getEnv("TELEGRAM_BOT_TOKEN", ""),
		TelegramChatID:    getEnv("TELEGRAM_CHAT_ID", ""),
		TelegramAPIURL:    getEnv("TELEGRAM_API_URL", "https://api.telegram.org"),
		AffiliateTag:      getEnv("AFFILIATE_TAG", ""),
		RedisAddr:         getEnv("REDIS_ADDR", ""),
		RedisDB:           redisDB,
		RedisStream:       getEnv("REDIS_STREAM", "bazaarbot:posted"),
		RedisStreamMaxLen: streamMaxLen,
		MemcacheAddr:      getEnv("MEMCACHE_ADDR", ""),
		StorefrontBaseURL: getEnv("STOREFRONT_BASE_URL", "https://www.amazon.in"),
		FetchTimeout:      time.Duration(fetchTimeout) * time.Second,
		RenderTimeout:     time.Duration(renderTimeout) * time.Second,
		FetchBlockTime:    time.Duration(blockTime) * time.Second,
		UseChrome:         getEnv("USE_CHROME", "true") == "true",
		ScanLimit:         scanLimit,
		DisplayLimit:      displayLimit,
		BudgetCap:         budgetCap,
		CurrencySymbol:    getEnv("CURRENCY_SYMBOL", "₹"),
		RotationIndexFile: getEnv("ROTATION_INDEX_FILE", "rotation_index.txt"),
		Environment:       getEnv("BAZAARBOT_ENVIRONMENT", "development"),
	}
}

// Validate checks that the configuration is usable
func (c Config) Validate() error {
	if c.TelegramToken == "" {
		return fmt.Errorf("TELEGRAM_BOT_TOKEN is required")
	}
	if c.TelegramChatID == "" {
		return fmt.Errorf("TELEGRAM_CHAT_ID is required")
	}
	if c.AffiliateTag == "" {
		return fmt.Errorf("AFFILIATE_TAG is required")
	}
	if c.ScanLimit <= 0 || c.DisplayLimit <= 0 {
		return fmt.Errorf("scan and display limits must be positive")
	}
	if c.DisplayLimit > c.ScanLimit {
		return fmt.Errorf("display limit %d exceeds scan limit %d", c.DisplayLimit, c.ScanLimit)
	}
	return nil
}

// getEnv retrieves an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
