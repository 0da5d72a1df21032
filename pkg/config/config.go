package config

import (
	"fmt"
	"time"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

type HTTPConfig struct {
	Port         string        `env:"HTTP_PORT" env-default:"8080"`
	ReadTimeout  time.Duration `env:"HTTP_READ_TIMEOUT" env-default:"10s"`
	WriteTimeout time.Duration `env:"HTTP_WRITE_TIMEOUT" env-default:"10s"`
}

type LoggerConfig struct {
	Level string `env:"LOG_LEVEL" env-default:"info"`
}

type DynamoDBConfig struct {
	AuctionsTable     string `env:"DYNAMODB_AUCTIONS_TABLE_NAME" env-default:"auctions"`
	BidsTable         string `env:"DYNAMODB_BIDS_TABLE_NAME" env-default:"bids"`
	BarracksTable     string `env:"DYNAMODB_BARRACKS_TABLE_NAME" env-default:"barracks"`
	FulfillmentsTable string `env:"DYNAMODB_FULFILLMENTS_TABLE_NAME" env-default:"fulfillments"`
	SettlementsTable  string `env:"DYNAMODB_SETTLEMENTS_TABLE_NAME" env-default:"settlements"`
	ConnectionsTable  string `env:"DYNAMODB_CONNECTIONS_TABLE_NAME" env-default:"connections"`
}

type SQSConfig struct {
	PayoutQueueURL       string `env:"SQS_PAYOUT_QUEUE_URL"`
	NotificationQueueURL string `env:"SQS_NOTIFICATION_QUEUE_URL"`
}

type WhopConfig struct {
	BaseURL        string        `env:"WHOP_API_BASE_URL" env-default:"https://api.whop.com"`
	APIKey         string        `env:"WHOP_API_KEY"`
	AppID          string        `env:"WHOP_APP_ID"`
	TokenPublicKey string        `env:"WHOP_TOKEN_PUBLIC_KEY"`
	Timeout        time.Duration `env:"WHOP_API_TIMEOUT" env-default:"10s"`
}

type S3Config struct {
	Bucket          string        `env:"S3_ASSETS_BUCKET"`
	Region          string        `env:"S3_REGION" env-default:"us-east-1"`
	Endpoint        string        `env:"S3_BASE_ENDPOINT"`
	AccessKeyID     string        `env:"S3_ACCESS_KEY_ID"`
	SecretAccessKey string        `env:"S3_SECRET_ACCESS_KEY"`
	URLExpiry       time.Duration `env:"S3_URL_EXPIRY" env-default:"15m"`
}

// WebSocketConfig selects how live auction updates reach clients. With no API endpoint the
// HTTP server keeps the connections itself.
type WebSocketConfig struct {
	APIEndpoint string `env:"WEBSOCKET_API_ENDPOINT"`
}

type BiddingConfig struct {
	MaxAttempts int `env:"BID_MAX_ATTEMPTS" env-default:"5"`
}

type FeeConfig struct {
	CommunityFeePercent int64 `env:"DEFAULT_COMMUNITY_FEE_PERCENT" env-default:"10"`
	PlatformFeePercent  int64 `env:"DEFAULT_PLATFORM_FEE_PERCENT" env-default:"3"`
}

type JobsConfig struct {
	BatchSize          int32         `env:"JOB_BATCH_SIZE" env-default:"50"`
	PaymentLookupLimit time.Duration `env:"PAYMENT_LOOKUP_TIMEOUT" env-default:"10s"`
	StalledPayoutAge   time.Duration `env:"STALLED_PAYOUT_AGE" env-default:"20m"`
}

type Config struct {
	Env      string `env:"ENV" env-default:"local"`
	HTTP     HTTPConfig
	Logger   LoggerConfig
	DynamoDB DynamoDBConfig
	SQS      SQSConfig
	Whop     WhopConfig
	S3       S3Config
	WS       WebSocketConfig
	Bidding  BiddingConfig
	Fees     FeeConfig
	Jobs     JobsConfig
}

// Load reads a local .env file when present and then the environment.
func Load() (*Config, error) {
	_ = godotenv.Load()

	var cfg Config
	if err := cleanenv.ReadEnv(&cfg); err != nil {
		return nil, fmt.Errorf("failed to read config from environment: %w", err)
	}
	return &cfg, nil
}
