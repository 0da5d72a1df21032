package main

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/bidding-wars/pkg/config"
	"github.com/chris/bidding-wars/pkg/lifecycle"
	"github.com/chris/bidding-wars/pkg/logging"
	"github.com/chris/bidding-wars/pkg/notify"
	dydbstore "github.com/chris/bidding-wars/pkg/storage/dynamodb"
	"github.com/chris/bidding-wars/pkg/websockets"
	"github.com/chris/bidding-wars/pkg/whop"
)

type ender interface {
	EndDue(ctx context.Context, limit int32) (*lifecycle.BatchResult, error)
	ChargeWinners(ctx context.Context, limit int32) (*lifecycle.BatchResult, error)
}

type job struct {
	auctions  ender
	batchSize int32
	logger    *slog.Logger
}

func newJob() *job {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		os.Exit(1)
	}
	logger := logging.New(cfg.Logger.Level)

	awsCfg, err := awsconfig.LoadDefaultConfig(context.Background())
	if err != nil {
		logger.Error("unable to load SDK config", slog.Any("error", err))
		os.Exit(1)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Auctions:     cfg.DynamoDB.AuctionsTable,
		Bids:         cfg.DynamoDB.BidsTable,
		Barracks:     cfg.DynamoDB.BarracksTable,
		Fulfillments: cfg.DynamoDB.FulfillmentsTable,
		Settlements:  cfg.DynamoDB.SettlementsTable,
		Connections:  cfg.DynamoDB.ConnectionsTable,
	})
	var notifier notify.Dispatcher = &notify.NoOpDispatcher{}
	if cfg.SQS.NotificationQueueURL != "" {
		notifier = notify.NewSQSDispatcher(sqs.NewFromConfig(awsCfg), cfg.SQS.NotificationQueueURL)
	}
	platform := whop.NewClient(cfg.Whop.BaseURL, cfg.Whop.APIKey, cfg.Whop.Timeout)

	machine := lifecycle.NewMachine(store, platform, nil, notifier, nil, logger, lifecycle.FeeDefaults{
		CommunityFeePercent: cfg.Fees.CommunityFeePercent,
		PlatformFeePercent:  cfg.Fees.PlatformFeePercent,
	})
	if cfg.WS.APIEndpoint != "" {
		feed, err := websockets.NewAPIGatewayPublisher(context.Background(), store, cfg.WS.APIEndpoint, logger)
		if err != nil {
			logger.Error("failed to configure websocket publisher", slog.Any("error", err))
			os.Exit(1)
		}
		machine.Feed = feed
	}
	return &job{auctions: machine, batchSize: cfg.Jobs.BatchSize, logger: logger}
}

// HandleRequest is triggered by an EventBridge Schedule. It ends every auction past its end time,
// then retries the charge of winners an earlier run could not bill.
func (j *job) HandleRequest(ctx context.Context) error {
	ended, endErr := j.auctions.EndDue(ctx, j.batchSize)
	if ended != nil {
		j.logger.Info("ended due auctions", slog.Int("processed", ended.Processed), slog.Int("failed", ended.Failed))
	}

	charged, chargeErr := j.auctions.ChargeWinners(ctx, j.batchSize)
	if charged != nil {
		j.logger.Info("charged pending winners", slog.Int("processed", charged.Processed), slog.Int("failed", charged.Failed))
	}

	// Per-auction failures are retried on the next tick; only report them.
	if err := errors.Join(endErr, chargeErr); err != nil {
		j.logger.Error("ending run finished with failures", slog.Any("error", err))
	}
	return nil
}

func main() {
	lambda.Start(newJob().HandleRequest)
}
