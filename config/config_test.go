package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadConfig(t *testing.T) {
	// Test with default values
	config := LoadConfig()
	assert.Equal(t, "https://api.telegram.org", config.TelegramAPIURL)
	assert.Equal(t, "https://www.amazon.in", config.StorefrontBaseURL)
	assert.Equal(t, "bazaarbot:posted", config.RedisStream)
	assert.Equal(t, 500, config.RedisStreamMaxLen)
	assert.Equal(t, 30*time.Second, config.FetchTimeout)
	assert.Equal(t, 60*time.Second, config.RenderTimeout)
	assert.Equal(t, 300*time.Second, config.FetchBlockTime)
	assert.Equal(t, 15, config.ScanLimit)
	assert.Equal(t, 5, config.DisplayLimit)
	assert.Equal(t, 999, config.BudgetCap)
	assert.Equal(t, "₹", config.CurrencySymbol)
	assert.Equal(t, "rotation_index.txt", config.RotationIndexFile)
	assert.True(t, config.UseChrome)

	// Test with environment variables
	os.Setenv("TELEGRAM_BOT_TOKEN", "123:abc")
	os.Setenv("TELEGRAM_CHAT_ID", "@dealschannel")
	os.Setenv("AFFILIATE_TAG", "bazaar-21")
	os.Setenv("STOREFRONT_BASE_URL", "https://storefront.example")
	os.Setenv("FETCH_TIMEOUT_SECONDS", "10")
	os.Setenv("USE_CHROME", "false")
	os.Setenv("BUDGET_CAP", "499")

	config = LoadConfig()
	assert.Equal(t, "123:abc", config.TelegramToken)
	assert.Equal(t, "@dealschannel", config.TelegramChatID)
	assert.Equal(t, "bazaar-21", config.AffiliateTag)
	assert.Equal(t, "https://storefront.example", config.StorefrontBaseURL)
	assert.Equal(t, 10*time.Second, config.FetchTimeout)
	assert.Equal(t, 499, config.BudgetCap)
	assert.False(t, config.UseChrome)

	// Clean up
	os.Unsetenv("TELEGRAM_BOT_TOKEN")
	os.Unsetenv("TELEGRAM_CHAT_ID")
	os.Unsetenv("AFFILIATE_TAG")
	os.Unsetenv("STOREFRONT_BASE_URL")
	os.Unsetenv("FETCH_TIMEOUT_SECONDS")
	os.Unsetenv("USE_CHROME")
	os.Unsetenv("BUDGET_CAP")
}

func TestConfig_Validate(t *testing.T) {
	valid := Config{
		TelegramToken:  "123:abc",
		TelegramChatID: "@dealschannel",
		AffiliateTag:   "bazaar-21",
		ScanLimit:      15,
		DisplayLimit:   5,
	}
	assert.NoError(t, valid.Validate())

	missingToken := valid
	missingToken.TelegramToken = ""
	assert.Error(t, missingToken.Validate())

	missingChat := valid
	missingChat.TelegramChatID = ""
	assert.Error(t, missingChat.Validate())

	missingTag := valid
	missingTag.AffiliateTag = ""
	assert.Error(t, missingTag.Validate())

	badLimits := valid
	badLimits.DisplayLimit = 20
	assert.Error(t, badLimits.Validate())

	zeroLimits := valid
	zeroLimits.ScanLimit = 0
	assert.Error(t, zeroLimits.Validate())
}
