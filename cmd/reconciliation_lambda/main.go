package main

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"time"

	"github.com/aws/aws-lambda-go/lambda"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/dynamodb"
	"github.com/aws/aws-sdk-go-v2/service/sqs"
	"github.com/chris/bidding-wars/pkg/config"
	"github.com/chris/bidding-wars/pkg/logging"
	"github.com/chris/bidding-wars/pkg/notify"
	"github.com/chris/bidding-wars/pkg/scheduler"
	"github.com/chris/bidding-wars/pkg/settlement"
	dydbstore "github.com/chris/bidding-wars/pkg/storage/dynamodb"
	"github.com/chris/bidding-wars/pkg/whop"
)

type reconciler interface {
	ReconcilePending(ctx context.Context, limit int32) (*settlement.BatchResult, error)
	RequeueStalledPayouts(ctx context.Context, maxAge time.Duration, limit int32) (int, error)
}

type job struct {
	reconciler       reconciler
	batchSize        int32
	stalledPayoutAge time.Duration
	logger           *slog.Logger
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

	if cfg.SQS.PayoutQueueURL == "" {
		logger.Error("SQS_PAYOUT_QUEUE_URL environment variable not set")
		os.Exit(1)
	}
	sqsClient := sqs.NewFromConfig(awsCfg)
	payouts := scheduler.NewSQSPayoutScheduler(sqsClient, cfg.SQS.PayoutQueueURL)

	var notifier notify.Dispatcher = &notify.NoOpDispatcher{}
	if cfg.SQS.NotificationQueueURL != "" {
		notifier = notify.NewSQSDispatcher(sqsClient, cfg.SQS.NotificationQueueURL)
	}

	store := dydbstore.New(dynamodb.NewFromConfig(awsCfg), dydbstore.Tables{
		Auctions:     cfg.DynamoDB.AuctionsTable,
		Bids:         cfg.DynamoDB.BidsTable,
		Barracks:     cfg.DynamoDB.BarracksTable,
		Fulfillments: cfg.DynamoDB.FulfillmentsTable,
		Settlements:  cfg.DynamoDB.SettlementsTable,
		Connections:  cfg.DynamoDB.ConnectionsTable,
	})
	platform := whop.NewClient(cfg.Whop.BaseURL, cfg.Whop.APIKey, cfg.Whop.Timeout)

	r := settlement.NewReconciler(store, platform, payouts, notifier, nil, logger)
	r.LookupTimeout = cfg.Jobs.PaymentLookupLimit
	return &job{
		reconciler:       r,
		batchSize:        cfg.Jobs.BatchSize,
		stalledPayoutAge: cfg.Jobs.StalledPayoutAge,
		logger:           logger,
	}
}

// HandleRequest is triggered by an EventBridge Schedule. It confirms purchases whose payment
// has cleared, then re-enqueues payouts that have been stuck longer than the stalled age.
func (j *job) HandleRequest(ctx context.Context) error {
	j.logger.Info("starting reconciliation")

	batch, reconcileErr := j.reconciler.ReconcilePending(ctx, j.batchSize)
	if batch != nil {
		j.logger.Info("reconciled pending purchases",
			slog.Int("confirmed", batch.Confirmed),
			slog.Int("already_paid", batch.AlreadyPaid),
			slog.Int("not_yet_paid", batch.NotYetPaid),
			slog.Int("failed", batch.Failed),
		)
	}

	requeued, requeueErr := j.reconciler.RequeueStalledPayouts(ctx, j.stalledPayoutAge, j.batchSize)
	if requeued > 0 {
		j.logger.Info("re-enqueued stalled payouts", slog.Int("count", requeued))
	}

	// Don't let one failed record fail the schedule; the next run picks it up again.
	if err := errors.Join(reconcileErr, requeueErr); err != nil {
		j.logger.Error("reconciliation finished with failures", slog.Any("error", err))
	}
	return nil
}

func main() {
	lambda.Start(newJob().HandleRequest)
}
