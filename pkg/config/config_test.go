package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "8080", cfg.HTTP.Port)
		assert.Equal(t, "auctions", cfg.DynamoDB.AuctionsTable)
		assert.Equal(t, 5, cfg.Bidding.MaxAttempts)
		assert.Equal(t, int64(10), cfg.Fees.CommunityFeePercent)
		assert.Equal(t, int64(3), cfg.Fees.PlatformFeePercent)
		assert.Equal(t, 20*time.Minute, cfg.Jobs.StalledPayoutAge)
		assert.Equal(t, 10*time.Second, cfg.Whop.Timeout)
	})

	t.Run("Environment Overrides", func(t *testing.T) {
		t.Setenv("HTTP_PORT", "9090")
		t.Setenv("DYNAMODB_BIDS_TABLE_NAME", "bids-test")
		t.Setenv("SQS_PAYOUT_QUEUE_URL", "https://sqs.local/payouts")
		t.Setenv("BID_MAX_ATTEMPTS", "5")
		t.Setenv("WHOP_API_TIMEOUT", "3s")

		cfg, err := Load()

		require.NoError(t, err)
		assert.Equal(t, "9090", cfg.HTTP.Port)
		assert.Equal(t, "bids-test", cfg.DynamoDB.BidsTable)
		assert.Equal(t, "https://sqs.local/payouts", cfg.SQS.PayoutQueueURL)
		assert.Equal(t, 5, cfg.Bidding.MaxAttempts)
		assert.Equal(t, 3*time.Second, cfg.Whop.Timeout)
	})

	t.Run("Invalid Value", func(t *testing.T) {
		t.Setenv("BID_MAX_ATTEMPTS", "many")

		_, err := Load()

		assert.Error(t, err)
	})
}
